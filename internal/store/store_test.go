package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "catalog.db")
	s, err := Open(context.Background(), path, zerolog.Nop())
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpen_SeedsEmptyDatabase(t *testing.T) {
	s := openTestStore(t)

	categories, err := s.Categories(context.Background())
	if err != nil {
		t.Fatalf("Categories() failed: %v", err)
	}
	if len(categories) != len(seedCategories) {
		t.Errorf("Expected %d seeded categories, got %d", len(seedCategories), len(categories))
	}
	for i, c := range categories {
		if c.Name != seedCategories[i] {
			t.Errorf("Category %d = %q, expected %q", i, c.Name, seedCategories[i])
		}
		if c.ID <= 0 {
			t.Errorf("Category %q has non-positive id %d", c.Name, c.ID)
		}
	}
}

func TestOpen_DoesNotReseed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")

	s, err := Open(context.Background(), path, zerolog.Nop())
	if err != nil {
		t.Fatalf("first Open() failed: %v", err)
	}
	s.Close()

	s, err = Open(context.Background(), path, zerolog.Nop())
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer s.Close()

	categories, err := s.Categories(context.Background())
	if err != nil {
		t.Fatalf("Categories() failed: %v", err)
	}
	if len(categories) != len(seedCategories) {
		t.Errorf("Reopen duplicated seed: expected %d categories, got %d",
			len(seedCategories), len(categories))
	}
}

func TestProductsByCategory(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	categories, err := s.Categories(ctx)
	if err != nil {
		t.Fatalf("Categories() failed: %v", err)
	}
	if len(categories) == 0 {
		t.Fatal("Expected seeded categories")
	}

	// Every seeded product must land under its seeded category.
	total := 0
	for _, c := range categories {
		products, err := s.ProductsByCategory(ctx, c.ID)
		if err != nil {
			t.Fatalf("ProductsByCategory(%d) failed: %v", c.ID, err)
		}
		for _, p := range products {
			if p.Name == "" {
				t.Errorf("Product %d in category %q has empty name", p.ID, c.Name)
			}
		}
		total += len(products)
	}
	if total != len(seedProducts) {
		t.Errorf("Expected %d products across all categories, got %d", len(seedProducts), total)
	}
}

func TestProductsByCategory_OrderedByID(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	categories, err := s.Categories(ctx)
	if err != nil {
		t.Fatalf("Categories() failed: %v", err)
	}

	products, err := s.ProductsByCategory(ctx, categories[0].ID)
	if err != nil {
		t.Fatalf("ProductsByCategory() failed: %v", err)
	}
	for i := 1; i < len(products); i++ {
		if products[i].ID <= products[i-1].ID {
			t.Errorf("Products out of order: id %d follows id %d", products[i].ID, products[i-1].ID)
		}
	}
}

func TestProductsByCategory_UnknownCategoryIsEmpty(t *testing.T) {
	s := openTestStore(t)

	products, err := s.ProductsByCategory(context.Background(), 999999)
	if err != nil {
		t.Fatalf("ProductsByCategory(unknown) failed: %v", err)
	}
	if len(products) != 0 {
		t.Errorf("Expected empty result for unknown category, got %d products", len(products))
	}
}

func TestDataError_Matching(t *testing.T) {
	s := openTestStore(t)
	s.Close() // force subsequent reads to fail

	_, err := s.Categories(context.Background())
	if err == nil {
		t.Fatal("Expected error from closed store")
	}

	var de *DataError
	if !errors.As(err, &de) {
		t.Fatalf("Expected DataError, got %T: %v", err, err)
	}
	if de.Op != "categories" {
		t.Errorf("DataError.Op = %q, expected %q", de.Op, "categories")
	}
	if de.Unwrap() == nil {
		t.Error("DataError should wrap the driver error")
	}
}
