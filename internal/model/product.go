package model

import (
	"fmt"
	"strings"
)

// Product represents a single catalog item belonging to one category.
type Product struct {
	ID           int64
	Name         string
	UnitPrice    float64
	UnitsInStock int
}

// GetDisplayName returns the product name trimmed for list display, falling
// back to the identifier when the name is blank.
func (p *Product) GetDisplayName() string {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return fmt.Sprintf("Product #%d", p.ID)
	}
	return name
}

// GetPriceString returns the unit price formatted for display, or "—" when
// the price is not set.
func (p *Product) GetPriceString() string {
	if p.UnitPrice <= 0 {
		return "—"
	}
	return fmt.Sprintf("%.2f", p.UnitPrice)
}

// GetStockString returns the stock level formatted for display. Zero stock
// is a valid value and renders as "out of stock".
func (p *Product) GetStockString() string {
	if p.UnitsInStock <= 0 {
		return "out of stock"
	}
	return fmt.Sprintf("%d in stock", p.UnitsInStock)
}
