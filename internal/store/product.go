// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store contains the data access layer. Stores own all SQL and
// return fully enriched models; lookups report a missing record as a
// nil result, which handlers translate to 404.
package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"storefront/internal/models"
)

// ProductFilter narrows a product listing. The zero value matches every
// product; ActiveOnly is set by every public-facing caller.
type ProductFilter struct {
	ActiveOnly bool
	CategoryID *uuid.UUID
	Search     string
}

// ProductStore handles all product database operations.
type ProductStore struct {
	db *sql.DB
}

// NewProductStore creates a new ProductStore with the given database connection.
func NewProductStore(db *sql.DB) *ProductStore {
	return &ProductStore{db: db}
}

const productColumns = `p.id, p.name, p.description, p.price, p.stock_quantity,
	p.is_active, p.category_id, p.created_at, c.name`

// scanProduct scans a joined product row, including the category name.
func scanProduct(scanner interface{ Scan(...any) error }) (*models.Product, error) {
	var p models.Product
	err := scanner.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.StockQuantity,
		&p.IsActive, &p.CategoryID, &p.CreatedAt, &p.CategoryName,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// likeEscaper escapes ILIKE pattern metacharacters so a search term
// matches as a literal substring.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// buildWhere translates a ProductFilter into a WHERE clause and its
// arguments. The search term matches name OR description, case
// insensitively; category and search compose with AND.
func buildWhere(f ProductFilter) (string, []any) {
	var conds []string
	var args []any

	if f.ActiveOnly {
		conds = append(conds, "p.is_active = TRUE")
	}
	if f.CategoryID != nil {
		args = append(args, *f.CategoryID)
		conds = append(conds, fmt.Sprintf("p.category_id = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+likeEscaper.Replace(f.Search)+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(`(p.name ILIKE $%d ESCAPE '\' OR p.description ILIKE $%d ESCAPE '\')`, n, n))
	}

	if len(conds) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

// List returns products matching the filter together with the total
// match count, each joined with its category name in a single query.
// Ordered by creation date descending with id as tiebreak so repeated
// calls paginate identically. A limit of zero disables pagination.
func (s *ProductStore) List(f ProductFilter, offset, limit int) ([]models.Product, int, error) {
	where, args := buildWhere(f)

	var total int
	err := s.db.QueryRow(`
		SELECT COUNT(*)
		FROM products p
		JOIN categories c ON c.id = p.category_id
		`+where, args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	query := `
		SELECT ` + productColumns + `
		FROM products p
		JOIN categories c ON c.id = p.category_id
		` + where + `
		ORDER BY p.created_at DESC, p.id`
	if limit > 0 {
		args = append(args, limit, offset)
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var items []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		items = append(items, *p)
	}
	return items, total, rows.Err()
}

// FindByID retrieves a product by ID with its category name. Returns nil
// if not found.
func (s *ProductStore) FindByID(id uuid.UUID) (*models.Product, error) {
	row := s.db.QueryRow(`
		SELECT `+productColumns+`
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1
	`, id)
	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find product by id: %w", err)
	}
	return p, nil
}

// Recent returns the n newest active products, used by the homepage.
func (s *ProductStore) Recent(n int) ([]models.Product, error) {
	items, _, err := s.List(ProductFilter{ActiveOnly: true}, 0, n)
	return items, err
}

// Count returns the total number of products, active or not.
func (s *ProductStore) Count() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return count, nil
}
