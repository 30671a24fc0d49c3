// store_test.go provides a shared test database helper for all store
// integration tests. Tests are skipped if PostgreSQL is not available.
package store

import (
	"database/sql"
	"os"
	"testing"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"storefront/internal/database"
	"storefront/internal/models"
)

// testDSN returns the PostgreSQL connection string for testing.
// Uses environment variables with defaults matching docker-compose.yml.
func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "storefront")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "storefront")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test database and runs migrations.
// If the database is unavailable, the test is skipped. A cleanup
// function is registered to close the connection when the test finishes.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := testDSN()
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}

	// Run migrations to ensure the schema is current.
	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	// Reset goose global state so repeated calls stay independent.
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// createCategory inserts a test category and registers cleanup.
func createCategory(t *testing.T, db *sql.DB, name string) uuid.UUID {
	t.Helper()
	var id uuid.UUID
	err := db.QueryRow(`
		INSERT INTO categories (name, description)
		VALUES ($1, $2)
		RETURNING id
	`, name, "test category").Scan(&id)
	if err != nil {
		t.Fatalf("create category %q: %v", name, err)
	}
	t.Cleanup(func() { db.Exec("DELETE FROM categories WHERE id = $1", id) })
	return id
}

// createProduct inserts a test product and registers cleanup.
func createProduct(t *testing.T, db *sql.DB, name, description, price string, stock int, active bool, categoryID uuid.UUID) uuid.UUID {
	t.Helper()
	var id uuid.UUID
	err := db.QueryRow(`
		INSERT INTO products (name, description, price, stock_quantity, is_active, category_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, name, description, price, stock, active, categoryID).Scan(&id)
	if err != nil {
		t.Fatalf("create product %q: %v", name, err)
	}
	t.Cleanup(func() { db.Exec("DELETE FROM products WHERE id = $1", id) })
	return id
}

// createAuthor inserts a test user and registers cleanup.
func createAuthor(t *testing.T, db *sql.DB, displayName string) uuid.UUID {
	t.Helper()
	var id uuid.UUID
	err := db.QueryRow(`
		INSERT INTO users (email, password_hash, display_name)
		VALUES ($1, 'x', $2)
		RETURNING id
	`, "test-"+uuid.NewString()[:8]+"@storefront.local", displayName).Scan(&id)
	if err != nil {
		t.Fatalf("create author: %v", err)
	}
	t.Cleanup(func() { db.Exec("DELETE FROM users WHERE id = $1", id) })
	return id
}

// createPost inserts a test post and registers cleanup.
func createPost(t *testing.T, db *sql.DB, title string, authorID uuid.UUID, categoryID *uuid.UUID, published bool) uuid.UUID {
	t.Helper()
	var id uuid.UUID
	err := db.QueryRow(`
		INSERT INTO posts (title, body, author_id, category_id, is_published, published_at)
		VALUES ($1, 'test body', $2, $3, $4, CASE WHEN $4 THEN NOW() ELSE NULL END)
		RETURNING id
	`, title, authorID, categoryID, published).Scan(&id)
	if err != nil {
		t.Fatalf("create post %q: %v", title, err)
	}
	t.Cleanup(func() { db.Exec("DELETE FROM posts WHERE id = $1", id) })
	return id
}

// containsProduct reports whether the listing includes a product by id.
func containsProduct(items []models.Product, id uuid.UUID) bool {
	for _, p := range items {
		if p.ID == id {
			return true
		}
	}
	return false
}
