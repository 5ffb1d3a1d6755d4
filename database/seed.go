package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"easygames/config"
	"easygames/utils"
)

// Seed fills an empty database with a usable storefront: the default admin
// account and a starter catalog. Existing rows are left alone, so it is safe
// to run on every startup.
func Seed(ctx context.Context) error {
	if err := seedAdmin(ctx); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if err := seedCatalog(ctx); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	return nil
}

func seedAdmin(ctx context.Context) error {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@easygames.local"
	}

	var exists int
	if err := config.DB.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE email = $1`, email).Scan(&exists); err != nil {
		return err
	}
	if exists > 0 {
		return nil
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "Admin@123"
		log.Println("ADMIN_PASSWORD not set, seeding admin with the default password")
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	now := time.Now()
	_, err = config.DB.Exec(ctx,
		`INSERT INTO users (email, password, full_name, role, created_at, updated_at)
		 VALUES ($1, $2, $3, 'admin', $4, $5)`,
		email, hash, "Store Admin", now, now)
	if err != nil {
		return err
	}

	log.Printf("Seeded admin account %s", email)
	return nil
}

func seedCatalog(ctx context.Context) error {
	var categories int
	if err := config.DB.QueryRow(ctx, `SELECT COUNT(*) FROM categories`).Scan(&categories); err != nil {
		return err
	}
	if categories > 0 {
		return nil
	}

	now := time.Now()
	categoryIDs := map[string]int{}
	for _, name := range []string{"Books", "Games", "Toys"} {
		var id int
		err := config.DB.QueryRow(ctx,
			`INSERT INTO categories (name, created_at) VALUES ($1, $2) RETURNING id`,
			name, now).Scan(&id)
		if err != nil {
			return err
		}
		categoryIDs[name] = id
	}

	items := []struct {
		title       string
		description string
		category    string
		price       float64
		quantity    int
	}{
		{"The Hobbit", "Classic fantasy novel by J.R.R. Tolkien", "Books", 14.99, 25},
		{"Dune", "Science fiction epic by Frank Herbert", "Books", 12.50, 18},
		{"Catan", "Strategy board game for 3-4 players", "Games", 39.99, 12},
		{"Ticket to Ride", "Cross-country train adventure game", "Games", 44.95, 8},
		{"Chess Set", "Wooden tournament chess set", "Games", 29.00, 15},
		{"LEGO City Set", "Building blocks set, 500 pieces", "Toys", 59.99, 10},
		{"Rubik's Cube", "The original 3x3 puzzle cube", "Toys", 9.99, 40},
	}

	for _, item := range items {
		_, err := config.DB.Exec(ctx,
			`INSERT INTO stock_items (title, description, category_id, price, quantity, image_url, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, '', $6, $7)`,
			item.title, item.description, categoryIDs[item.category], item.price, item.quantity, now, now)
		if err != nil {
			return err
		}
	}

	log.Printf("Seeded %d categories and %d stock items", len(categoryIDs), len(items))
	return nil
}
