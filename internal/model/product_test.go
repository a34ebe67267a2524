package model

import (
	"testing"
)

func TestProduct_GetDisplayName(t *testing.T) {
	tests := []struct {
		id       int64
		name     string
		expected string
	}{
		{1, "Chai", "Chai"},
		{2, "  Chang  ", "Chang"},
		{7, "", "Product #7"},
		{8, "   ", "Product #8"},
	}

	for _, test := range tests {
		p := &Product{ID: test.id, Name: test.name}
		result := p.GetDisplayName()
		if result != test.expected {
			t.Errorf("GetDisplayName() with id=%d, name=%q = %q, expected %q",
				test.id, test.name, result, test.expected)
		}
	}
}

func TestProduct_GetPriceString(t *testing.T) {
	tests := []struct {
		price    float64
		expected string
	}{
		{0, "—"},
		{-1, "—"},
		{18, "18.00"},
		{19.5, "19.50"},
		{263.5, "263.50"},
	}

	for _, test := range tests {
		p := &Product{UnitPrice: test.price}
		result := p.GetPriceString()
		if result != test.expected {
			t.Errorf("GetPriceString() with price=%v = %q, expected %q",
				test.price, result, test.expected)
		}
	}
}

func TestProduct_GetStockString(t *testing.T) {
	tests := []struct {
		stock    int
		expected string
	}{
		{0, "out of stock"},
		{-3, "out of stock"},
		{1, "1 in stock"},
		{39, "39 in stock"},
	}

	for _, test := range tests {
		p := &Product{UnitsInStock: test.stock}
		result := p.GetStockString()
		if result != test.expected {
			t.Errorf("GetStockString() with stock=%d = %q, expected %q",
				test.stock, result, test.expected)
		}
	}
}
