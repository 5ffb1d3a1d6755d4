package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"easygames/config"
	"easygames/models"

	"github.com/jackc/pgx/v5"
)

type StockRepository struct{}

func NewStockRepository() *StockRepository {
	return &StockRepository{}
}

const stockItemColumns = `s.id, s.title, s.description, s.category_id, c.name, s.price, s.quantity, s.image_url, s.created_at, s.updated_at`

func scanStockItem(row pgx.Row) (*models.StockItem, error) {
	var item models.StockItem
	err := row.Scan(
		&item.ID, &item.Title, &item.Description, &item.CategoryID, &item.CategoryName,
		&item.Price, &item.Quantity, &item.ImageURL, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *StockRepository) FindStockItem(ctx context.Context, id int) (*models.StockItem, error) {
	query := `SELECT ` + stockItemColumns + `
	          FROM stock_items s JOIN categories c ON s.category_id = c.id
	          WHERE s.id = $1`

	item, err := scanStockItem(config.DB.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

// FindStockItems batch-reads the given products. IDs with no matching row
// are simply absent from the result; the caller detects gaps.
func (r *StockRepository) FindStockItems(ctx context.Context, ids []int) (map[int]models.StockItem, error) {
	items := make(map[int]models.StockItem, len(ids))
	if len(ids) == 0 {
		return items, nil
	}

	query := `SELECT ` + stockItemColumns + `
	          FROM stock_items s JOIN categories c ON s.category_id = c.id
	          WHERE s.id = ANY($1)`

	rows, err := config.DB.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		item, err := scanStockItem(rows)
		if err != nil {
			return nil, err
		}
		items[item.ID] = *item
	}
	return items, rows.Err()
}

// ApplyDecrements commits a checkout against the shared quantity counters.
// Each affected row is re-read under FOR UPDATE and re-validated inside the
// transaction, so two sessions checking out the same product serialize here
// and the loser gets InsufficientStockError instead of a negative counter.
// The transaction is all-or-nothing: one failing line rolls back every line.
func (r *StockRepository) ApplyDecrements(ctx context.Context, decrements map[int]int) error {
	if len(decrements) == 0 {
		return nil
	}

	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin checkout transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	for productID, amount := range decrements {
		var title string
		var onHand int
		err := tx.QueryRow(ctx,
			`SELECT title, quantity FROM stock_items WHERE id = $1 FOR UPDATE`,
			productID,
		).Scan(&title, &onHand)
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ErrItemNotFound
		}
		if err != nil {
			return fmt.Errorf("lock stock row %d: %w", productID, err)
		}

		if onHand < amount {
			return &models.InsufficientStockError{ProductID: productID, Title: title}
		}

		_, err = tx.Exec(ctx,
			`UPDATE stock_items SET quantity = quantity - $1, updated_at = $2 WHERE id = $3`,
			amount, now, productID,
		)
		if err != nil {
			return fmt.Errorf("decrement stock row %d: %w", productID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit checkout transaction: %w", err)
	}
	return nil
}

// List supports the public catalog: optional category filter and title or
// description search, paginated.
func (r *StockRepository) List(ctx context.Context, categoryID int, search string, page, limit int) ([]models.StockItem, int, error) {
	offset := (page - 1) * limit

	conditions := []string{}
	args := []interface{}{}
	argIndex := 1

	if categoryID > 0 {
		conditions = append(conditions, fmt.Sprintf("s.category_id = $%d", argIndex))
		args = append(args, categoryID)
		argIndex++
	}
	if search != "" {
		conditions = append(conditions, fmt.Sprintf("(s.title ILIKE $%d OR s.description ILIKE $%d)", argIndex, argIndex))
		args = append(args, "%"+search+"%")
		argIndex++
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM stock_items s` + where
	if err := config.DB.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + stockItemColumns + `
	          FROM stock_items s JOIN categories c ON s.category_id = c.id` + where +
		fmt.Sprintf(" ORDER BY s.created_at DESC LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, limit, offset)

	rows, err := config.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := []models.StockItem{}
	for rows.Next() {
		item, err := scanStockItem(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, *item)
	}
	return items, total, rows.Err()
}

// WhatsNew returns the newest in-stock items for the home page.
func (r *StockRepository) WhatsNew(ctx context.Context, limit int) ([]models.StockItem, error) {
	query := `SELECT ` + stockItemColumns + `
	          FROM stock_items s JOIN categories c ON s.category_id = c.id
	          WHERE s.quantity > 0 ORDER BY s.created_at DESC LIMIT $1`
	return r.queryItems(ctx, query, limit)
}

// Trending returns in-stock items with the least stock left, a cheap proxy
// for what sells.
func (r *StockRepository) Trending(ctx context.Context, limit int) ([]models.StockItem, error) {
	query := `SELECT ` + stockItemColumns + `
	          FROM stock_items s JOIN categories c ON s.category_id = c.id
	          WHERE s.quantity > 0 ORDER BY s.quantity ASC LIMIT $1`
	return r.queryItems(ctx, query, limit)
}

func (r *StockRepository) LowStock(ctx context.Context, threshold int) ([]models.StockItem, error) {
	query := `SELECT ` + stockItemColumns + `
	          FROM stock_items s JOIN categories c ON s.category_id = c.id
	          WHERE s.quantity <= $1 ORDER BY s.quantity ASC, s.title ASC`
	return r.queryItems(ctx, query, threshold)
}

func (r *StockRepository) queryItems(ctx context.Context, query string, args ...interface{}) ([]models.StockItem, error) {
	rows, err := config.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.StockItem{}
	for rows.Next() {
		item, err := scanStockItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (r *StockRepository) Create(ctx context.Context, item *models.StockItem) error {
	query := `
		INSERT INTO stock_items (title, description, category_id, price, quantity, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return config.DB.QueryRow(ctx, query,
		item.Title, item.Description, item.CategoryID, item.Price, item.Quantity, item.ImageURL, now, now,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

func (r *StockRepository) Update(ctx context.Context, item *models.StockItem) error {
	query := `UPDATE stock_items SET title = $1, description = $2, category_id = $3, price = $4,
	          quantity = $5, image_url = $6, updated_at = $7 WHERE id = $8`
	_, err := config.DB.Exec(ctx, query,
		item.Title, item.Description, item.CategoryID, item.Price,
		item.Quantity, item.ImageURL, time.Now(), item.ID,
	)
	return err
}

func (r *StockRepository) Delete(ctx context.Context, id int) error {
	tag, err := config.DB.Exec(ctx, `DELETE FROM stock_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrItemNotFound
	}
	return nil
}

func (r *StockRepository) Count(ctx context.Context) (int, error) {
	var total int
	err := config.DB.QueryRow(ctx, `SELECT COUNT(*) FROM stock_items`).Scan(&total)
	return total, err
}
