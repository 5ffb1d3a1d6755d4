package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"easygames/models"
	"easygames/repositories"
)

// InventoryStore is the cart engine's view of the stock_items table. Batch
// reads leave missing IDs out of the result; ApplyDecrements is all-or-nothing
// and re-validates quantities under a row lock before committing.
type InventoryStore interface {
	FindStockItem(ctx context.Context, id int) (*models.StockItem, error)
	FindStockItems(ctx context.Context, ids []int) (map[int]models.StockItem, error)
	ApplyDecrements(ctx context.Context, decrements map[int]int) error
}

// CartService owns the session carts: it derives cart contents from user
// actions, reconciles them against live stock on add/update, and commits
// checkouts. Mutations on the same session are serialized through a keyed
// mutex so concurrent requests cannot lose each other's writes.
type CartService struct {
	inventory InventoryStore
	store     repositories.CartStore
	locks     sessionLocks
}

func NewCartService(inventory InventoryStore, store repositories.CartStore) *CartService {
	return &CartService{
		inventory: inventory,
		store:     store,
		locks:     sessionLocks{locks: make(map[string]*sync.Mutex)},
	}
}

type sessionLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (l *sessionLocks) forSession(sessionID string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	lock, ok := l.locks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[sessionID] = lock
	}
	return lock
}

// Add puts qty more units of a product into the session's cart, clamped to
// the stock on hand. Title and price are snapshotted from the current catalog
// row; an existing line keeps at least quantity 1 even when stock ran out.
func (s *CartService) Add(ctx context.Context, sessionID string, productID, qty int) error {
	lock := s.locks.forSession(sessionID)
	lock.Lock()
	defer lock.Unlock()

	stock, err := s.inventory.FindStockItem(ctx, productID)
	if err != nil {
		return err
	}

	cart, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return err
	}

	line := cart.Line(productID)

	currentQty := 0
	if line != nil {
		currentQty = line.Quantity
	}
	desired := currentQty + max(1, qty)
	desired = min(desired, stock.Quantity)

	if line == nil {
		// Zero stock means zero desired: nothing is added.
		if desired > 0 {
			cart.Lines = append(cart.Lines, models.CartLine{
				ProductID:    stock.ID,
				Title:        stock.Title,
				UnitPrice:    stock.Price,
				Quantity:     desired,
				MaxAvailable: stock.Quantity,
			})
		}
	} else {
		line.Quantity = max(1, desired)
		line.MaxAvailable = stock.Quantity
	}

	return s.store.Save(ctx, sessionID, cart)
}

// Update sets a line's quantity directly, clamped to [1, stock on hand].
// Unknown products and missing lines are silent no-ops: update forms get
// resubmitted, and a redundant update is not a fault.
func (s *CartService) Update(ctx context.Context, sessionID string, productID, qty int) error {
	lock := s.locks.forSession(sessionID)
	lock.Lock()
	defer lock.Unlock()

	cart, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return err
	}

	if line := cart.Line(productID); line != nil {
		stock, err := s.inventory.FindStockItem(ctx, productID)
		switch {
		case errors.Is(err, models.ErrItemNotFound):
			// Product vanished from the catalog; leave the line for
			// checkout to arbitrate.
		case err != nil:
			return err
		default:
			line.Quantity = min(max(1, qty), stock.Quantity)
			line.MaxAvailable = stock.Quantity
		}
	}

	return s.store.Save(ctx, sessionID, cart)
}

// Remove drops a product's line from the cart. Removing an absent line is a
// no-op, so double-submitted remove forms stay harmless.
func (s *CartService) Remove(ctx context.Context, sessionID string, productID int) error {
	lock := s.locks.forSession(sessionID)
	lock.Lock()
	defer lock.Unlock()

	cart, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return err
	}

	cart.RemoveLine(productID)
	return s.store.Save(ctx, sessionID, cart)
}

func (s *CartService) Items(ctx context.Context, sessionID string) ([]models.CartLine, error) {
	cart, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return cart.Lines, nil
}

func (s *CartService) Total(ctx context.Context, sessionID string) (float64, error) {
	cart, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return cart.Total(), nil
}

// CanCheckout reports whether every line fits within live stock right now.
// It is advisory only: nothing is locked or reserved, and checkout performs
// its own authoritative validation. Infrastructure errors read as false.
func (s *CartService) CanCheckout(ctx context.Context, sessionID string) bool {
	cart, err := s.store.Load(ctx, sessionID)
	if err != nil {
		log.Printf("can-checkout: load cart: %v", err)
		return false
	}
	if cart.IsEmpty() {
		return true
	}

	stocks, err := s.inventory.FindStockItems(ctx, productIDs(cart))
	if err != nil {
		log.Printf("can-checkout: read stock: %v", err)
		return false
	}

	for _, line := range cart.Lines {
		stock, ok := stocks[line.ProductID]
		if !ok || stock.Quantity < line.Quantity {
			return false
		}
	}
	return true
}

// Checkout commits the cart against inventory: a validation pass over all
// lines first, then one all-or-nothing decrement transaction, then the cart
// is cleared. A failed checkout leaves both inventory and cart untouched.
// It returns the lines that were checked out.
func (s *CartService) Checkout(ctx context.Context, sessionID string) ([]models.CartLine, error) {
	lock := s.locks.forSession(sessionID)
	lock.Lock()
	defer lock.Unlock()

	cart, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, nil
	}

	stocks, err := s.inventory.FindStockItems(ctx, productIDs(cart))
	if err != nil {
		return nil, fmt.Errorf("read stock for checkout: %w", err)
	}

	// Validation pass over every line before any decrement is attempted.
	decrements := make(map[int]int, len(cart.Lines))
	for _, line := range cart.Lines {
		stock, ok := stocks[line.ProductID]
		if !ok {
			return nil, &models.InsufficientStockError{ProductID: line.ProductID, Title: line.Title}
		}
		if stock.Quantity < line.Quantity {
			return nil, &models.InsufficientStockError{ProductID: stock.ID, Title: stock.Title}
		}
		decrements[line.ProductID] = line.Quantity
	}

	// Commit pass. ApplyDecrements re-validates under row locks, so a
	// concurrent checkout that beat us to the stock fails here instead of
	// driving a counter negative.
	if err := s.inventory.ApplyDecrements(ctx, decrements); err != nil {
		return nil, err
	}

	// Inventory is durably decremented; only now may the cart be reset.
	if err := s.store.Clear(ctx, sessionID); err != nil {
		return cart.Lines, fmt.Errorf("checkout committed but clearing cart failed: %w", err)
	}

	return cart.Lines, nil
}

func productIDs(cart *models.Cart) []int {
	ids := make([]int, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		ids = append(ids, line.ProductID)
	}
	return ids
}
