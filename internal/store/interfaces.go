package store

import (
	"context"

	"github.com/catview/catalog-browser/internal/model"
)

// Reader defines the read operations the UI needs from the catalog store.
type Reader interface {
	// Categories returns every category row in declared table order.
	Categories(ctx context.Context) ([]model.Category, error)

	// ProductsByCategory returns the products belonging to the given
	// category, in declared table order. An unknown category yields an
	// empty slice, not an error.
	ProductsByCategory(ctx context.Context, categoryID int64) ([]model.Product, error)
}
