package repositories

import (
	"context"
	"errors"
	"time"

	"easygames/config"
	"easygames/models"

	"github.com/jackc/pgx/v5"
)

type CategoryRepository struct{}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{}
}

func (r *CategoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	query := `SELECT id, name, created_at FROM categories ORDER BY name`

	rows, err := config.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var cat models.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int) (*models.Category, error) {
	var cat models.Category
	err := config.DB.QueryRow(ctx,
		`SELECT id, name, created_at FROM categories WHERE id = $1`, id,
	).Scan(&cat.ID, &cat.Name, &cat.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *CategoryRepository) Create(ctx context.Context, cat *models.Category) error {
	return config.DB.QueryRow(ctx,
		`INSERT INTO categories (name, created_at) VALUES ($1, $2) RETURNING id, created_at`,
		cat.Name, time.Now(),
	).Scan(&cat.ID, &cat.CreatedAt)
}

func (r *CategoryRepository) Update(ctx context.Context, cat *models.Category) error {
	tag, err := config.DB.Exec(ctx,
		`UPDATE categories SET name = $1 WHERE id = $2`, cat.Name, cat.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrItemNotFound
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id int) error {
	tag, err := config.DB.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrItemNotFound
	}
	return nil
}

func (r *CategoryRepository) Count(ctx context.Context) (int, error) {
	var total int
	err := config.DB.QueryRow(ctx, `SELECT COUNT(*) FROM categories`).Scan(&total)
	return total, err
}
