package store

import "context"

const schemaDDL = `
CREATE TABLE IF NOT EXISTS categories (
	id   INTEGER PRIMARY KEY,
	name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS products (
	id             INTEGER PRIMARY KEY,
	name           TEXT NOT NULL,
	unit_price     REAL NOT NULL DEFAULT 0,
	units_in_stock INTEGER NOT NULL DEFAULT 0,
	category_id    INTEGER NOT NULL REFERENCES categories(id)
);

CREATE INDEX IF NOT EXISTS idx_products_category ON products(category_id);
`

// seedRow pairs a product with its owning category for the demo fixture.
type seedRow struct {
	name     string
	price    float64
	stock    int
	category string
}

var seedCategories = []string{
	"Beverages",
	"Condiments",
	"Confections",
	"Dairy Products",
	"Seafood",
}

var seedProducts = []seedRow{
	{"Chai", 18.00, 39, "Beverages"},
	{"Chang", 19.00, 17, "Beverages"},
	{"Guaraná Fantástica", 4.50, 20, "Beverages"},
	{"Aniseed Syrup", 10.00, 13, "Condiments"},
	{"Chef Anton's Cajun Seasoning", 22.00, 53, "Condiments"},
	{"Grandma's Boysenberry Spread", 25.00, 120, "Condiments"},
	{"Pavlova", 17.45, 29, "Confections"},
	{"Teatime Chocolate Biscuits", 9.20, 25, "Confections"},
	{"Queso Cabrales", 21.00, 22, "Dairy Products"},
	{"Mozzarella di Giovanni", 34.80, 14, "Dairy Products"},
	{"Ikura", 31.00, 31, "Seafood"},
	{"Boston Crab Meat", 18.40, 123, "Seafood"},
}

// ensureSchema applies the DDL. Safe to run on every open.
func (s *Store) ensureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schemaDDL); err != nil {
		return dataErr("ensure schema", err)
	}
	return nil
}

// seedIfEmpty inserts the demo catalog when the categories table has no
// rows. An already-populated database is left untouched.
func (s *Store) seedIfEmpty(ctx context.Context) error {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories`).Scan(&count); err != nil {
		return dataErr("seed check", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return dataErr("seed begin", err)
	}
	defer tx.Rollback()

	categoryIDs := make(map[string]int64, len(seedCategories))
	for _, name := range seedCategories {
		res, err := tx.ExecContext(ctx, `INSERT INTO categories (name) VALUES (?)`, name)
		if err != nil {
			return dataErr("seed categories", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return dataErr("seed categories", err)
		}
		categoryIDs[name] = id
	}

	for _, row := range seedProducts {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO products (name, unit_price, units_in_stock, category_id) VALUES (?, ?, ?, ?)`,
			row.name, row.price, row.stock, categoryIDs[row.category])
		if err != nil {
			return dataErr("seed products", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return dataErr("seed commit", err)
	}

	s.log.Info().
		Int("categories", len(seedCategories)).
		Int("products", len(seedProducts)).
		Msg("seeded demo catalog")
	return nil
}
