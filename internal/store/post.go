// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"storefront/internal/models"
)

// PostStore handles all blog post database operations.
type PostStore struct {
	db *sql.DB
}

// NewPostStore creates a new PostStore with the given database connection.
func NewPostStore(db *sql.DB) *PostStore {
	return &PostStore{db: db}
}

const postColumns = `b.id, b.title, b.body, b.author_id, b.category_id,
	b.is_published, b.published_at, b.created_at, u.display_name, c.name`

// scanPost scans a joined post row, including author display name and
// the optional category name.
func scanPost(scanner interface{ Scan(...any) error }) (*models.BlogPost, error) {
	var p models.BlogPost
	var categoryName sql.NullString
	err := scanner.Scan(
		&p.ID, &p.Title, &p.Body, &p.AuthorID, &p.CategoryID,
		&p.IsPublished, &p.PublishedAt, &p.CreatedAt, &p.AuthorName, &categoryName,
	)
	if err != nil {
		return nil, err
	}
	p.CategoryName = categoryName.String
	return &p, nil
}

// ListPublished returns published posts with the total published count,
// each enriched with author display name and category name. Ordered by
// creation date descending; the store default was never meaningful, so
// the ordering is pinned here. A limit of zero disables pagination.
func (s *PostStore) ListPublished(offset, limit int) ([]models.BlogPost, int, error) {
	var total int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM posts WHERE is_published = TRUE`).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count published posts: %w", err)
	}

	query := `
		SELECT ` + postColumns + `
		FROM posts b
		JOIN users u ON u.id = b.author_id
		LEFT JOIN categories c ON c.id = b.category_id
		WHERE b.is_published = TRUE
		ORDER BY b.created_at DESC, b.id`
	args := []any{}
	if limit > 0 {
		args = append(args, limit, offset)
		query += " LIMIT $1 OFFSET $2"
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list published posts: %w", err)
	}
	defer rows.Close()

	var items []models.BlogPost
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan post: %w", err)
		}
		items = append(items, *p)
	}
	return items, total, rows.Err()
}

// FindByID retrieves a post by ID regardless of publish state, matching
// the listing-only scope of the published filter. Returns nil if not found.
func (s *PostStore) FindByID(id uuid.UUID) (*models.BlogPost, error) {
	row := s.db.QueryRow(`
		SELECT `+postColumns+`
		FROM posts b
		JOIN users u ON u.id = b.author_id
		LEFT JOIN categories c ON c.id = b.category_id
		WHERE b.id = $1
	`, id)
	p, err := scanPost(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find post by id: %w", err)
	}
	return p, nil
}

// Recent returns the n newest published posts, used by the homepage.
func (s *PostStore) Recent(n int) ([]models.BlogPost, error) {
	items, _, err := s.ListPublished(0, n)
	return items, err
}

// Count returns the total number of posts, published or not.
func (s *PostStore) Count() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM posts`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return count, nil
}
