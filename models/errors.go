package models

import (
	"errors"
	"fmt"
)

// ErrItemNotFound is returned when a referenced product does not exist in
// the stock_items table.
var ErrItemNotFound = errors.New("item not found")

// InsufficientStockError is returned by checkout when a cart line asks for
// more units than the product has on hand. It carries the product identity
// so callers can tell the user which item was the problem.
type InsufficientStockError struct {
	ProductID int
	Title     string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock for %s", e.Title)
}
