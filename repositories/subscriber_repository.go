package repositories

import (
	"context"
	"time"

	"easygames/config"
	"easygames/models"
)

type SubscriberRepository struct{}

func NewSubscriberRepository() *SubscriberRepository {
	return &SubscriberRepository{}
}

func (r *SubscriberRepository) GetAll(ctx context.Context) ([]models.Subscriber, error) {
	rows, err := config.DB.Query(ctx,
		`SELECT id, email, created_at FROM subscribers ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subs := []models.Subscriber{}
	for rows.Next() {
		var sub models.Subscriber
		if err := rows.Scan(&sub.ID, &sub.Email, &sub.CreatedAt); err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

func (r *SubscriberRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int
	err := config.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM subscribers WHERE email = $1`, email).Scan(&count)
	return count > 0, err
}

func (r *SubscriberRepository) Create(ctx context.Context, sub *models.Subscriber) error {
	return config.DB.QueryRow(ctx,
		`INSERT INTO subscribers (email, created_at) VALUES ($1, $2) RETURNING id, created_at`,
		sub.Email, time.Now(),
	).Scan(&sub.ID, &sub.CreatedAt)
}

func (r *SubscriberRepository) Delete(ctx context.Context, id int) error {
	tag, err := config.DB.Exec(ctx, `DELETE FROM subscribers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrItemNotFound
	}
	return nil
}

func (r *SubscriberRepository) Count(ctx context.Context) (int, error) {
	var total int
	err := config.DB.QueryRow(ctx, `SELECT COUNT(*) FROM subscribers`).Scan(&total)
	return total, err
}
