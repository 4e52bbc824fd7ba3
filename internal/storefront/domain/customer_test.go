package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerInfoValidate_OK(t *testing.T) {
	assert.NoError(t, validCustomer().Validate())

	info := validCustomer()
	info.Phone = "+60123456789"
	assert.NoError(t, info.Validate())
}

func TestCustomerInfoValidate_FieldsReportedIndependently(t *testing.T) {
	info := CustomerInfo{
		Name:          "A",
		Phone:         "12345",
		Email:         "not-an-email",
		Address:       "1 Road",
		City:          "Ipoh",
		Postcode:      "1234",
		State:         "",
		PaymentMethod: "card",
	}

	err := info.Validate()
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))

	assert.Equal(t, map[string]string{
		"customerName": "Name must be at least 2 characters",
		"phone":        "Please enter a valid Malaysian phone number",
		"email":        "Please enter a valid email address",
		"postcode":     "Postcode must be 5 digits",
		"state":        "This field is required",
	}, ve.Fields)
	assert.Contains(t, ve.Error(), "postcode: Postcode must be 5 digits")
}

func TestCustomerInfoNormalize(t *testing.T) {
	info := validCustomer()
	info.Name = "  Li  "
	info.Postcode = " 50450 "

	n := info.Normalize()
	assert.Equal(t, "Li", n.Name)
	assert.Equal(t, "50450", n.Postcode)
	assert.NoError(t, n.Validate())
}
