package domain

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CustomerInfo is the contact and delivery data collected at checkout.
type CustomerInfo struct {
	Name          string `json:"customerName" validate:"required,min=2"`
	Phone         string `json:"phone" validate:"required,my_phone"`
	Email         string `json:"email" validate:"required,email"`
	Address       string `json:"address" validate:"required"`
	City          string `json:"city" validate:"required"`
	Postcode      string `json:"postcode" validate:"required,postcode"`
	State         string `json:"state" validate:"required"`
	PaymentMethod string `json:"paymentMethod" validate:"required"`
	Notes         string `json:"notes"`
}

var (
	phonePattern    = regexp.MustCompile(`^(\+?60|0)1\d{8,9}$`)
	postcodePattern = regexp.MustCompile(`^\d{5}$`)
	phoneSeparators = strings.NewReplacer(" ", "", "-", "")

	validate = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	mustRegister(v, "my_phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(phoneSeparators.Replace(fl.Field().String()))
	})
	mustRegister(v, "postcode", func(fl validator.FieldLevel) bool {
		return postcodePattern.MatchString(fl.Field().String())
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

// Normalize trims surrounding whitespace from every field.
func (c CustomerInfo) Normalize() CustomerInfo {
	return CustomerInfo{
		Name:          strings.TrimSpace(c.Name),
		Phone:         strings.TrimSpace(c.Phone),
		Email:         strings.TrimSpace(c.Email),
		Address:       strings.TrimSpace(c.Address),
		City:          strings.TrimSpace(c.City),
		Postcode:      strings.TrimSpace(c.Postcode),
		State:         strings.TrimSpace(c.State),
		PaymentMethod: strings.TrimSpace(c.PaymentMethod),
		Notes:         strings.TrimSpace(c.Notes),
	}
}

// Validate checks every field independently and returns a *ValidationError
// listing each failing field, or nil.
func (c CustomerInfo) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	ve := &ValidationError{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		ve.Fields[fe.Field()] = fieldMessage(fe)
	}
	return ve
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Please enter a valid email address"
	case "my_phone":
		return "Please enter a valid Malaysian phone number"
	case "postcode":
		return "Postcode must be 5 digits"
	case "min":
		return fmt.Sprintf("Name must be at least %s characters", fe.Param())
	default:
		return "Invalid value"
	}
}

// ComposedAddress joins the delivery fields into the single address line
// stored on the order.
func (c CustomerInfo) ComposedAddress() string {
	return fmt.Sprintf("%s, %s, %s %s", c.Address, c.City, c.Postcode, c.State)
}
