package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// LowStockThreshold is the stock level at and below which a book is shown
// as running out.
const LowStockThreshold = 10

type Book struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Author      string          `json:"author"`
	Genre       string          `json:"genre"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Rating      float64         `json:"rating"`
	Reviews     int             `json:"reviews"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
}

type StockLevel string

const (
	StockOut StockLevel = "out-of-stock"
	StockLow StockLevel = "low-stock"
	StockIn  StockLevel = "in-stock"
)

// StockStatus is the display label and level for a stock quantity.
type StockStatus struct {
	Level StockLevel `json:"level"`
	Label string     `json:"label"`
}

func StockStatusOf(stock int) StockStatus {
	switch {
	case stock <= 0:
		return StockStatus{Level: StockOut, Label: "Out of Stock"}
	case stock <= LowStockThreshold:
		return StockStatus{Level: StockLow, Label: fmt.Sprintf("Only %d left", stock)}
	default:
		return StockStatus{Level: StockIn, Label: fmt.Sprintf("%d in stock", stock)}
	}
}

// BookStats summarises the inventory for the admin dashboard.
type BookStats struct {
	TotalBooks   int             `json:"totalBooks"`
	TotalStock   int             `json:"totalStock"`
	AveragePrice decimal.Decimal `json:"averagePrice"`
}

func ComputeBookStats(books []Book) BookStats {
	stats := BookStats{TotalBooks: len(books), AveragePrice: decimal.Zero}
	if len(books) == 0 {
		return stats
	}
	sum := decimal.Zero
	for _, b := range books {
		stats.TotalStock += b.Stock
		sum = sum.Add(b.Price)
	}
	stats.AveragePrice = sum.Div(decimal.NewFromInt(int64(len(books)))).Round(2)
	return stats
}
