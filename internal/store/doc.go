package store

// Package store provides read access to the catalog database: the category
// listing that drives button generation and the per-category product query.
// It opens a SQLite file via database/sql and applies the schema plus a demo
// seed on first use so the sample runs against an empty path out of the box.
