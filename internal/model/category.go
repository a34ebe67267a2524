package model

// Category represents one product grouping row from the catalog database.
// Each category becomes exactly one generated button in the UI.
type Category struct {
	ID   int64
	Name string
}
