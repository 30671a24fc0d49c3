package database

import (
	"database/sql"
	"fmt"
	"log/slog"
	"math/rand"

	"golang.org/x/crypto/bcrypt"
)

// seedProductCount is how many sample products Seed creates, drawn
// randomly from the fixed pool below.
const seedProductCount = 10

type seedCategory struct {
	name        string
	description string
}

type seedProduct struct {
	name        string
	description string
	price       string
	category    string
}

var seedCategories = []seedCategory{
	{"Electronics", "Electronic devices and gadgets"},
	{"Clothing", "Fashion and apparel"},
	{"Books", "Books and educational materials"},
	{"Home & Garden", "Home improvement and gardening supplies"},
	{"Sports", "Sports equipment and accessories"},
}

var seedProducts = []seedProduct{
	{"Smartphone", "Latest generation smartphone with advanced features", "599.99", "Electronics"},
	{"Laptop", "High-performance laptop for work and gaming", "1299.99", "Electronics"},
	{"Wireless Headphones", "Noise-cancelling wireless headphones", "199.99", "Electronics"},
	{"T-Shirt", "Comfortable cotton t-shirt", "19.99", "Clothing"},
	{"Jeans", "Classic denim jeans", "49.99", "Clothing"},
	{"Sneakers", "Comfortable running sneakers", "79.99", "Clothing"},
	{"Go Programming Book", "Complete guide to Go programming", "39.99", "Books"},
	{"Web Development Handbook", "Learn modern web development from the ground up", "44.99", "Books"},
	{"Garden Tools Set", "Complete set of gardening tools", "89.99", "Home & Garden"},
	{"Yoga Mat", "Non-slip yoga mat for exercise", "29.99", "Sports"},
}

var seedPosts = []struct {
	title    string
	body     string
	category string
}{
	{
		"Getting Started with the Storefront",
		"The storefront is a small catalog and blog application. It serves " +
			"server-rendered pages alongside a JSON API, so you can browse the " +
			"catalog in a browser or consume it programmatically.",
		"Books",
	},
	{
		"Browsing the Catalog over JSON",
		"Every product and category is available as JSON. Filter products by " +
			"category or free-text search:\n\n```\nGET /api/products/?search=phone\n```\n\n" +
			"List endpoints always return a valid collection, even when empty.",
		"Books",
	},
	{
		"Modern Web Development Practices",
		"Modern web development involves using contemporary tools, frameworks, " +
			"and practices to build scalable, maintainable applications.",
		"Books",
	},
}

// Seed populates the database with sample development data: categories,
// a pool-drawn set of products, an author user, and published blog posts.
// It is a no-op when categories already exist.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM categories").Scan(&count); err != nil {
		return fmt.Errorf("seed check categories: %w", err)
	}
	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	// Categories first — products and posts reference them by name.
	categoryIDs := make(map[string]string, len(seedCategories))
	for _, c := range seedCategories {
		var id string
		err := db.QueryRow(`
			INSERT INTO categories (name, description)
			VALUES ($1, $2)
			RETURNING id
		`, c.name, c.description).Scan(&id)
		if err != nil {
			return fmt.Errorf("seed category %q: %w", c.name, err)
		}
		categoryIDs[c.name] = id
	}

	// Products drawn from the pool with random stock; mostly active.
	for i := 0; i < seedProductCount; i++ {
		p := seedProducts[rand.Intn(len(seedProducts))]
		_, err := db.Exec(`
			INSERT INTO products (name, description, price, stock_quantity, is_active, category_id)
			VALUES ($1, $2, $3, $4, $5, $6)
		`,
			fmt.Sprintf("%s #%d", p.name, i+1), p.description, p.price,
			rand.Intn(101), rand.Intn(4) != 0, categoryIDs[p.category],
		)
		if err != nil {
			return fmt.Errorf("seed product %q: %w", p.name, err)
		}
	}

	// Author user for the blog posts.
	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}
	var authorID string
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash, display_name)
		VALUES ($1, $2, $3)
		RETURNING id
	`, "admin@storefront.local", string(hash), "Admin").Scan(&authorID)
	if err != nil {
		return fmt.Errorf("seed insert author: %w", err)
	}

	for _, post := range seedPosts {
		_, err := db.Exec(`
			INSERT INTO posts (title, body, author_id, category_id, is_published, published_at)
			VALUES ($1, $2, $3, $4, TRUE, NOW())
		`, post.title, post.body, authorID, categoryIDs[post.category])
		if err != nil {
			return fmt.Errorf("seed post %q: %w", post.title, err)
		}
	}

	slog.Info("database seeded with sample data",
		"categories", len(seedCategories),
		"products", seedProductCount,
		"posts", len(seedPosts),
	)

	return nil
}
