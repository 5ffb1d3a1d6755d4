package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"easygames/models"
	"easygames/repositories"
)

// fakeInventory backs CartService tests with an in-memory stock table. Its
// ApplyDecrements mirrors the SQL path: validate every row first, then apply,
// so a failed checkout leaves all quantities untouched.
type fakeInventory struct {
	mu      sync.Mutex
	items   map[int]models.StockItem
	findErr error
}

func newFakeInventory(items ...models.StockItem) *fakeInventory {
	inv := &fakeInventory{items: make(map[int]models.StockItem)}
	for _, item := range items {
		inv.items[item.ID] = item
	}
	return inv
}

func (f *fakeInventory) FindStockItem(_ context.Context, id int) (*models.StockItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.findErr != nil {
		return nil, f.findErr
	}
	item, ok := f.items[id]
	if !ok {
		return nil, models.ErrItemNotFound
	}
	return &item, nil
}

func (f *fakeInventory) FindStockItems(_ context.Context, ids []int) (map[int]models.StockItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	found := make(map[int]models.StockItem, len(ids))
	for _, id := range ids {
		if item, ok := f.items[id]; ok {
			found[id] = item
		}
	}
	return found, nil
}

func (f *fakeInventory) ApplyDecrements(_ context.Context, decrements map[int]int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for id, qty := range decrements {
		item, ok := f.items[id]
		if !ok {
			return &models.InsufficientStockError{ProductID: id}
		}
		if item.Quantity < qty {
			return &models.InsufficientStockError{ProductID: id, Title: item.Title}
		}
	}
	for id, qty := range decrements {
		item := f.items[id]
		item.Quantity -= qty
		f.items[id] = item
	}
	return nil
}

func (f *fakeInventory) quantity(id int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.items[id].Quantity
}

func newTestCartService(items ...models.StockItem) *CartService {
	return NewCartService(newFakeInventory(items...), repositories.NewMemoryCartStore())
}

// failingClearStore simulates a cart backend that accepts writes but cannot
// clear, the situation a checkout hits when Redis drops mid-request.
type failingClearStore struct {
	repositories.CartStore
}

func (s *failingClearStore) Clear(context.Context, string) error {
	return errors.New("cart store unavailable")
}

func TestCartServiceAdd(t *testing.T) {
	ctx := context.Background()
	game := models.StockItem{ID: 1, Title: "Chess Deluxe", Price: 10, Quantity: 5}

	t.Run("adds a new line with a snapshot of title and price", func(t *testing.T) {
		svc := newTestCartService(game)

		require.NoError(t, svc.Add(ctx, "s1", 1, 2))

		lines, err := svc.Items(ctx, "s1")
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, "Chess Deluxe", lines[0].Title)
		assert.Equal(t, 10.0, lines[0].UnitPrice)
		assert.Equal(t, 2, lines[0].Quantity)
		assert.Equal(t, 5, lines[0].MaxAvailable)
	})

	t.Run("clamps requested quantity to stock on hand", func(t *testing.T) {
		svc := newTestCartService(game)

		require.NoError(t, svc.Add(ctx, "s1", 1, 10))

		lines, err := svc.Items(ctx, "s1")
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, 5, lines[0].Quantity)
	})

	t.Run("accumulates quantity across adds, clamped to stock", func(t *testing.T) {
		svc := newTestCartService(game)

		require.NoError(t, svc.Add(ctx, "s1", 1, 3))
		require.NoError(t, svc.Add(ctx, "s1", 1, 3))

		lines, err := svc.Items(ctx, "s1")
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, 5, lines[0].Quantity)
	})

	t.Run("non-positive quantity counts as one", func(t *testing.T) {
		svc := newTestCartService(game)

		require.NoError(t, svc.Add(ctx, "s1", 1, 0))
		require.NoError(t, svc.Add(ctx, "s1", 1, -4))

		lines, err := svc.Items(ctx, "s1")
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, 2, lines[0].Quantity)
	})

	t.Run("out-of-stock product adds nothing", func(t *testing.T) {
		svc := newTestCartService(models.StockItem{ID: 2, Title: "Sold Out", Price: 5, Quantity: 0})

		require.NoError(t, svc.Add(ctx, "s1", 2, 1))

		lines, err := svc.Items(ctx, "s1")
		require.NoError(t, err)
		assert.Empty(t, lines)
	})

	t.Run("existing line keeps quantity one when stock ran out", func(t *testing.T) {
		inv := newFakeInventory(game)
		svc := NewCartService(inv, repositories.NewMemoryCartStore())

		require.NoError(t, svc.Add(ctx, "s1", 1, 2))

		inv.mu.Lock()
		inv.items[1] = models.StockItem{ID: 1, Title: "Chess Deluxe", Price: 10, Quantity: 0}
		inv.mu.Unlock()

		require.NoError(t, svc.Add(ctx, "s1", 1, 1))

		lines, err := svc.Items(ctx, "s1")
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, 1, lines[0].Quantity)
	})

	t.Run("unknown product returns not found", func(t *testing.T) {
		svc := newTestCartService(game)

		err := svc.Add(ctx, "s1", 99, 1)
		assert.ErrorIs(t, err, models.ErrItemNotFound)
	})

	t.Run("sessions do not see each other's carts", func(t *testing.T) {
		svc := newTestCartService(game)

		require.NoError(t, svc.Add(ctx, "s1", 1, 2))

		lines, err := svc.Items(ctx, "s2")
		require.NoError(t, err)
		assert.Empty(t, lines)
	})
}

func TestCartServiceUpdate(t *testing.T) {
	ctx := context.Background()
	game := models.StockItem{ID: 1, Title: "Chess Deluxe", Price: 10, Quantity: 5}

	tests := []struct {
		name    string
		qty     int
		wantQty int
	}{
		{"sets quantity within stock", 4, 4},
		{"clamps above stock to stock", 9, 5},
		{"floors zero to one", 0, 1},
		{"floors negative to one", -3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestCartService(game)
			require.NoError(t, svc.Add(ctx, "s1", 1, 2))

			require.NoError(t, svc.Update(ctx, "s1", 1, tt.qty))

			lines, err := svc.Items(ctx, "s1")
			require.NoError(t, err)
			require.Len(t, lines, 1)
			assert.Equal(t, tt.wantQty, lines[0].Quantity)
		})
	}

	t.Run("deleted product leaves the line untouched", func(t *testing.T) {
		inv := newFakeInventory(game)
		svc := NewCartService(inv, repositories.NewMemoryCartStore())
		require.NoError(t, svc.Add(ctx, "s1", 1, 2))

		inv.mu.Lock()
		delete(inv.items, 1)
		inv.mu.Unlock()

		require.NoError(t, svc.Update(ctx, "s1", 1, 4))

		lines, err := svc.Items(ctx, "s1")
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, 2, lines[0].Quantity)
	})

	t.Run("stock read failure surfaces instead of passing silently", func(t *testing.T) {
		inv := newFakeInventory(game)
		svc := NewCartService(inv, repositories.NewMemoryCartStore())
		require.NoError(t, svc.Add(ctx, "s1", 1, 2))

		readErr := errors.New("connection reset")
		inv.mu.Lock()
		inv.findErr = readErr
		inv.mu.Unlock()

		assert.ErrorIs(t, svc.Update(ctx, "s1", 1, 4), readErr)
	})

	t.Run("updating a line that is not in the cart is a no-op", func(t *testing.T) {
		svc := newTestCartService(game)
		require.NoError(t, svc.Add(ctx, "s1", 1, 2))

		require.NoError(t, svc.Update(ctx, "s1", 42, 3))

		lines, err := svc.Items(ctx, "s1")
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, 2, lines[0].Quantity)
	})
}

func TestCartServiceRemove(t *testing.T) {
	ctx := context.Background()
	svc := newTestCartService(
		models.StockItem{ID: 1, Title: "Chess Deluxe", Price: 10, Quantity: 5},
		models.StockItem{ID: 2, Title: "Puzzle Box", Price: 15, Quantity: 10},
	)

	require.NoError(t, svc.Add(ctx, "s1", 1, 1))
	require.NoError(t, svc.Add(ctx, "s1", 2, 1))

	require.NoError(t, svc.Remove(ctx, "s1", 1))

	lines, err := svc.Items(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].ProductID)

	// Removing again, or removing something never added, stays harmless.
	require.NoError(t, svc.Remove(ctx, "s1", 1))
	require.NoError(t, svc.Remove(ctx, "s1", 99))

	lines, err = svc.Items(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, lines, 1)
}

func TestCartServiceTotal(t *testing.T) {
	ctx := context.Background()
	svc := newTestCartService(
		models.StockItem{ID: 1, Title: "Chess Deluxe", Price: 10, Quantity: 5},
		models.StockItem{ID: 2, Title: "Puzzle Box", Price: 15, Quantity: 10},
	)

	total, err := svc.Total(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 0.0, total)

	require.NoError(t, svc.Add(ctx, "s1", 1, 2)) // 2 x 10
	require.NoError(t, svc.Add(ctx, "s1", 2, 1)) // 1 x 15

	total, err = svc.Total(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 35.0, total)
}

func TestCartServiceCanCheckout(t *testing.T) {
	ctx := context.Background()

	t.Run("empty cart can check out", func(t *testing.T) {
		svc := newTestCartService()
		assert.True(t, svc.CanCheckout(ctx, "s1"))
	})

	t.Run("true while every line fits within stock", func(t *testing.T) {
		svc := newTestCartService(models.StockItem{ID: 1, Title: "Chess Deluxe", Price: 10, Quantity: 5})
		require.NoError(t, svc.Add(ctx, "s1", 1, 5))

		assert.True(t, svc.CanCheckout(ctx, "s1"))
	})

	t.Run("false when stock dropped below a line's quantity", func(t *testing.T) {
		inv := newFakeInventory(models.StockItem{ID: 1, Title: "Chess Deluxe", Price: 10, Quantity: 5})
		svc := NewCartService(inv, repositories.NewMemoryCartStore())
		require.NoError(t, svc.Add(ctx, "s1", 1, 5))

		inv.mu.Lock()
		inv.items[1] = models.StockItem{ID: 1, Title: "Chess Deluxe", Price: 10, Quantity: 3}
		inv.mu.Unlock()

		assert.False(t, svc.CanCheckout(ctx, "s1"))
	})

	t.Run("false when a line's product was deleted", func(t *testing.T) {
		inv := newFakeInventory(models.StockItem{ID: 1, Title: "Chess Deluxe", Price: 10, Quantity: 5})
		svc := NewCartService(inv, repositories.NewMemoryCartStore())
		require.NoError(t, svc.Add(ctx, "s1", 1, 1))

		inv.mu.Lock()
		delete(inv.items, 1)
		inv.mu.Unlock()

		assert.False(t, svc.CanCheckout(ctx, "s1"))
	})
}

func TestCartServiceCheckout(t *testing.T) {
	ctx := context.Background()

	t.Run("empty cart checks out as a no-op", func(t *testing.T) {
		svc := newTestCartService()

		lines, err := svc.Checkout(ctx, "s1")
		require.NoError(t, err)
		assert.Empty(t, lines)
	})

	t.Run("success decrements stock and clears the cart", func(t *testing.T) {
		inv := newFakeInventory(
			models.StockItem{ID: 1, Title: "Chess Deluxe", Price: 10, Quantity: 5},
			models.StockItem{ID: 2, Title: "Puzzle Box", Price: 15, Quantity: 10},
		)
		svc := NewCartService(inv, repositories.NewMemoryCartStore())
		require.NoError(t, svc.Add(ctx, "s1", 1, 2))
		require.NoError(t, svc.Add(ctx, "s1", 2, 3))

		lines, err := svc.Checkout(ctx, "s1")
		require.NoError(t, err)
		assert.Len(t, lines, 2)

		assert.Equal(t, 3, inv.quantity(1))
		assert.Equal(t, 7, inv.quantity(2))

		remaining, err := svc.Items(ctx, "s1")
		require.NoError(t, err)
		assert.Empty(t, remaining)

		total, err := svc.Total(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, 0.0, total)
	})

	t.Run("one short line fails the whole checkout and touches nothing", func(t *testing.T) {
		inv := newFakeInventory(
			models.StockItem{ID: 1, Title: "Chess Deluxe", Price: 10, Quantity: 5},
			models.StockItem{ID: 2, Title: "Puzzle Box", Price: 15, Quantity: 10},
		)
		svc := NewCartService(inv, repositories.NewMemoryCartStore())
		require.NoError(t, svc.Add(ctx, "s1", 1, 5))
		require.NoError(t, svc.Add(ctx, "s1", 2, 3))

		// Another sale drains product 1 after the lines were added.
		inv.mu.Lock()
		inv.items[1] = models.StockItem{ID: 1, Title: "Chess Deluxe", Price: 10, Quantity: 2}
		inv.mu.Unlock()

		lines, err := svc.Checkout(ctx, "s1")
		assert.Nil(t, lines)

		var stockErr *models.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, 1, stockErr.ProductID)
		assert.Equal(t, "Chess Deluxe", stockErr.Title)

		// No partial decrement, and the cart is still intact.
		assert.Equal(t, 2, inv.quantity(1))
		assert.Equal(t, 10, inv.quantity(2))

		remaining, err := svc.Items(ctx, "s1")
		require.NoError(t, err)
		assert.Len(t, remaining, 2)
	})

	t.Run("deleted product fails checkout with its cart snapshot title", func(t *testing.T) {
		inv := newFakeInventory(models.StockItem{ID: 1, Title: "Chess Deluxe", Price: 10, Quantity: 5})
		svc := NewCartService(inv, repositories.NewMemoryCartStore())
		require.NoError(t, svc.Add(ctx, "s1", 1, 1))

		inv.mu.Lock()
		delete(inv.items, 1)
		inv.mu.Unlock()

		_, err := svc.Checkout(ctx, "s1")

		var stockErr *models.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, "Chess Deluxe", stockErr.Title)
	})

	t.Run("failed cart reset still reports the committed lines", func(t *testing.T) {
		inv := newFakeInventory(models.StockItem{ID: 1, Title: "Chess Deluxe", Price: 10, Quantity: 5})
		svc := NewCartService(inv, &failingClearStore{CartStore: repositories.NewMemoryCartStore()})
		require.NoError(t, svc.Add(ctx, "s1", 1, 2))

		lines, err := svc.Checkout(ctx, "s1")

		// The decrement committed, so this is not a stock refusal: callers
		// get the checked-out lines back and must not retry.
		require.Error(t, err)
		var stockErr *models.InsufficientStockError
		assert.False(t, errors.As(err, &stockErr))

		require.Len(t, lines, 1)
		assert.Equal(t, 2, lines[0].Quantity)
		assert.Equal(t, 3, inv.quantity(1))
	})

	t.Run("concurrent checkouts never drive stock negative", func(t *testing.T) {
		inv := newFakeInventory(models.StockItem{ID: 1, Title: "Chess Deluxe", Price: 10, Quantity: 5})
		svc := NewCartService(inv, repositories.NewMemoryCartStore())

		require.NoError(t, svc.Add(ctx, "a", 1, 4))
		require.NoError(t, svc.Add(ctx, "b", 1, 4))

		var wg sync.WaitGroup
		errs := make([]error, 2)
		for i, sid := range []string{"a", "b"} {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, errs[i] = svc.Checkout(ctx, sid)
			}()
		}
		wg.Wait()

		var failed int
		var stockErr *models.InsufficientStockError
		for _, err := range errs {
			if err != nil {
				require.ErrorAs(t, err, &stockErr)
				failed++
			}
		}
		assert.Equal(t, 1, failed)
		assert.Equal(t, 1, inv.quantity(1))
	})
}

func TestInsufficientStockErrorMessage(t *testing.T) {
	err := &models.InsufficientStockError{ProductID: 7, Title: "Puzzle Box"}
	assert.Equal(t, "not enough stock for Puzzle Box", err.Error())
	assert.True(t, errors.As(error(err), new(*models.InsufficientStockError)))
}
