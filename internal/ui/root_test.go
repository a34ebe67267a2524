package ui

import (
	"context"
	"errors"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/rs/zerolog"

	"github.com/catview/catalog-browser/internal/model"
	"github.com/catview/catalog-browser/internal/store"
)

// fakeReader serves canned catalog data to the UI under test.
type fakeReader struct {
	categories    []model.Category
	products      map[int64][]model.Product
	categoriesErr error
	productsErr   error
}

var _ store.Reader = (*fakeReader)(nil)

func (f *fakeReader) Categories(ctx context.Context) ([]model.Category, error) {
	if f.categoriesErr != nil {
		return nil, f.categoriesErr
	}
	return f.categories, nil
}

func (f *fakeReader) ProductsByCategory(ctx context.Context, categoryID int64) ([]model.Product, error) {
	if f.productsErr != nil {
		return nil, f.productsErr
	}
	return f.products[categoryID], nil
}

func newTestRootUI(t *testing.T, reader store.Reader) *RootUI {
	t.Helper()

	app := test.NewApp()
	window := app.NewWindow("test")
	t.Cleanup(window.Close)

	ui, err := NewRootUI(window, app, reader, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewRootUI() failed: %v", err)
	}
	return ui
}

func northwindReader() *fakeReader {
	return &fakeReader{
		categories: []model.Category{
			{ID: 1, Name: "Beverages"},
			{ID: 2, Name: "Condiments"},
		},
		products: map[int64][]model.Product{
			1: {
				{ID: 1, Name: "Chai", UnitPrice: 18, UnitsInStock: 39},
				{ID: 2, Name: "Chang", UnitPrice: 19, UnitsInStock: 17},
			},
			// Category 2 has no products on purpose
		},
	}
}

func TestRootUI_GeneratesOneButtonPerCategory(t *testing.T) {
	ui := newTestRootUI(t, northwindReader())

	buttons := ui.factory.Buttons()
	if len(buttons) != 2 {
		t.Fatalf("Expected 2 generated buttons, got %d", len(buttons))
	}

	top := float32(ui.settings.GetButtonTop())
	spacing := float32(ui.settings.GetButtonSpacing())

	if buttons[0].CategoryID != 1 || buttons[0].Text != "Beverages" {
		t.Errorf("First button = (%d, %q), expected (1, Beverages)", buttons[0].CategoryID, buttons[0].Text)
	}
	if buttons[1].CategoryID != 2 || buttons[1].Text != "Condiments" {
		t.Errorf("Second button = (%d, %q), expected (2, Condiments)", buttons[1].CategoryID, buttons[1].Text)
	}
	if got := buttons[0].Position().Y; got != top {
		t.Errorf("First button Y = %v, expected %v", got, top)
	}
	if got := buttons[1].Position().Y; got != top+spacing {
		t.Errorf("Second button Y = %v, expected %v", got, top+spacing)
	}
}

func TestRootUI_EmptyCatalogYieldsNoButtons(t *testing.T) {
	ui := newTestRootUI(t, &fakeReader{})

	if n := len(ui.factory.Buttons()); n != 0 {
		t.Errorf("Expected no buttons for empty catalog, got %d", n)
	}
}

func TestRootUI_StartupReadErrorPropagates(t *testing.T) {
	app := test.NewApp()
	window := app.NewWindow("test")
	defer window.Close()

	wantErr := errors.New("connection refused")
	_, err := NewRootUI(window, app, &fakeReader{categoriesErr: wantErr}, zerolog.Nop())
	if !errors.Is(err, wantErr) {
		t.Errorf("NewRootUI() error = %v, expected to wrap %v", err, wantErr)
	}
}

func TestRootUI_TapReplacesProductList(t *testing.T) {
	reader := northwindReader()
	ui := newTestRootUI(t, reader)

	buttons := ui.factory.Buttons()
	test.Tap(buttons[0])

	if !buttons[0].Selected() {
		t.Error("Tapped button should carry the selection marker")
	}

	expected := reader.products[1]
	if len(ui.products) != len(expected) {
		t.Fatalf("Product list has %d entries, expected %d", len(ui.products), len(expected))
	}
	for i := range expected {
		if ui.products[i].ID != expected[i].ID || ui.products[i].Name != expected[i].Name {
			t.Errorf("Product %d = (%d, %q), expected (%d, %q)",
				i, ui.products[i].ID, ui.products[i].Name, expected[i].ID, expected[i].Name)
		}
	}
}

func TestRootUI_TapMovesSelectionMarker(t *testing.T) {
	ui := newTestRootUI(t, northwindReader())
	buttons := ui.factory.Buttons()

	test.Tap(buttons[0])
	test.Tap(buttons[1])

	if buttons[0].Selected() {
		t.Error("First button should be unmarked after tapping the second")
	}
	if !buttons[1].Selected() {
		t.Error("Second button should be marked after tapping it")
	}
	if ui.factory.SelectedButton() != buttons[1] {
		t.Error("Factory should report the second button as selected")
	}
}

func TestRootUI_EmptyCategoryEmptiesList(t *testing.T) {
	ui := newTestRootUI(t, northwindReader())
	buttons := ui.factory.Buttons()

	// Fill the list first, then switch to the empty category
	test.Tap(buttons[0])
	if len(ui.products) == 0 {
		t.Fatal("Expected products after tapping Beverages")
	}

	test.Tap(buttons[1])
	if len(ui.products) != 0 {
		t.Errorf("Expected empty product list for Condiments, got %d entries", len(ui.products))
	}
}

func TestRootUI_ReadFailureLeavesListStale(t *testing.T) {
	reader := northwindReader()
	ui := newTestRootUI(t, reader)
	buttons := ui.factory.Buttons()

	test.Tap(buttons[0])
	before := len(ui.products)

	reader.productsErr = errors.New("disk I/O error")
	test.Tap(buttons[1])

	// Marker moved, list unchanged
	if !buttons[1].Selected() || buttons[0].Selected() {
		t.Error("Selection marker should move even when the read fails")
	}
	if len(ui.products) != before {
		t.Errorf("Product list should stay stale on read failure: had %d, now %d",
			before, len(ui.products))
	}
}

func TestRootUI_DetailOnEmptyListIsNoOp(t *testing.T) {
	ui := newTestRootUI(t, northwindReader())

	// No products loaded; activation indices must be guarded
	ui.showProductDetail(0)
	ui.showProductDetail(-1)
	ui.showProductDetail(42)
}

func TestRootUI_RebuildAppliesNewLayout(t *testing.T) {
	ui := newTestRootUI(t, northwindReader())

	test.Tap(ui.factory.Buttons()[0])
	ui.settings.SetButtonSpacing(60)
	ui.settings.SetButtonTop(30)

	ui.rebuildButtons()

	buttons := ui.factory.Buttons()
	if len(buttons) != 2 {
		t.Fatalf("Expected 2 buttons after rebuild, got %d", len(buttons))
	}
	if got := buttons[0].Position().Y; got != 30 {
		t.Errorf("First button Y after rebuild = %v, expected 30", got)
	}
	if got := buttons[1].Position().Y; got != 90 {
		t.Errorf("Second button Y after rebuild = %v, expected 90", got)
	}
	if len(ui.products) != 0 {
		t.Error("Rebuild should clear the product list")
	}
	if ui.factory.SelectedButton() != nil {
		t.Error("Rebuild should drop the previous selection")
	}
}
