package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"easygames/middleware"
	"easygames/models"
	"easygames/repositories"
	"easygames/services"
)

type stubInventory struct {
	items map[int]models.StockItem
}

func (s *stubInventory) FindStockItem(_ context.Context, id int) (*models.StockItem, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, models.ErrItemNotFound
	}
	return &item, nil
}

func (s *stubInventory) FindStockItems(_ context.Context, ids []int) (map[int]models.StockItem, error) {
	found := make(map[int]models.StockItem, len(ids))
	for _, id := range ids {
		if item, ok := s.items[id]; ok {
			found[id] = item
		}
	}
	return found, nil
}

func (s *stubInventory) ApplyDecrements(_ context.Context, decrements map[int]int) error {
	for id, qty := range decrements {
		item := s.items[id]
		item.Quantity -= qty
		s.items[id] = item
	}
	return nil
}

type clearFailStore struct {
	repositories.CartStore
}

func (s *clearFailStore) Clear(context.Context, string) error {
	return errors.New("redis: connection refused")
}

func checkoutRequest(t *testing.T, sessionID string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/cart/checkout", nil)
	c.Set(middleware.SessionKey, sessionID)
	return c, w
}

// A cart reset failure after the inventory decrement committed must still
// confirm the order; a 500 here invites a retry that charges stock twice.
func TestCheckoutConfirmsWhenCartResetFails(t *testing.T) {
	gin.SetMode(gin.TestMode)

	inv := &stubInventory{items: map[int]models.StockItem{
		1: {ID: 1, Title: "Chess Deluxe", Price: 10, Quantity: 5},
	}}
	cartService := services.NewCartService(inv, &clearFailStore{CartStore: repositories.NewMemoryCartStore()})
	require.NoError(t, cartService.Add(context.Background(), "s1", 1, 2))

	ctrl := NewCartController(cartService, services.NewCatalogService(nil), nil)

	c, w := checkoutRequest(t, "s1")
	ctrl.Checkout(c)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "Order placed successfully", body.Message)

	assert.Equal(t, 3, inv.items[1].Quantity)
}

func TestCheckoutRejectsShortStockWithConflict(t *testing.T) {
	gin.SetMode(gin.TestMode)

	inv := &stubInventory{items: map[int]models.StockItem{
		1: {ID: 1, Title: "Chess Deluxe", Price: 10, Quantity: 5},
	}}
	cartService := services.NewCartService(inv, repositories.NewMemoryCartStore())
	require.NoError(t, cartService.Add(context.Background(), "s1", 1, 5))

	inv.items[1] = models.StockItem{ID: 1, Title: "Chess Deluxe", Price: 10, Quantity: 2}

	ctrl := NewCartController(cartService, services.NewCatalogService(nil), nil)

	c, w := checkoutRequest(t, "s1")
	ctrl.Checkout(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, 2, inv.items[1].Quantity)
}
