package store

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite" // register the pure-Go sqlite driver

	"github.com/catview/catalog-browser/internal/model"
)

const driverName = "sqlite"

// Store reads the catalog out of a SQLite database. It keeps no state
// between calls beyond the connection pool; every read is an independent
// synchronous round trip.
type Store struct {
	db  *sql.DB
	log zerolog.Logger
}

// Compile-time check that Store satisfies the Reader contract.
var _ Reader = (*Store)(nil)

// Open opens (or creates) the catalog database at path, applies the schema,
// and seeds the demo catalog when the database is empty.
func Open(ctx context.Context, path string, log zerolog.Logger) (*Store, error) {
	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, dataErr("open", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, dataErr("open", err)
	}

	s := &Store{db: db, log: log}
	if err := s.ensureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	if err := s.seedIfEmpty(ctx); err != nil {
		db.Close()
		return nil, err
	}

	log.Debug().Str("path", path).Msg("catalog database opened")
	return s, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// Categories returns every category row in primary-key order.
func (s *Store) Categories(ctx context.Context) ([]model.Category, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM categories ORDER BY id`)
	if err != nil {
		return nil, dataErr("categories", err)
	}
	defer rows.Close()

	categories := []model.Category{}
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, dataErr("categories", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, dataErr("categories", err)
	}
	return categories, nil
}

// ProductsByCategory returns the products of one category in primary-key
// order. Zero matching rows is a valid empty result.
func (s *Store) ProductsByCategory(ctx context.Context, categoryID int64) ([]model.Product, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, unit_price, units_in_stock FROM products WHERE category_id = ? ORDER BY id`,
		categoryID)
	if err != nil {
		return nil, dataErr("products", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.UnitPrice, &p.UnitsInStock); err != nil {
			return nil, dataErr("products", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, dataErr("products", err)
	}
	return products, nil
}
