package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"easygames/models"
)

func TestMemoryCartStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryCartStore()

	cart, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())

	saved := &models.Cart{Lines: []models.CartLine{
		{ProductID: 1, Title: "Chess Deluxe", UnitPrice: 10, Quantity: 2, MaxAvailable: 5},
		{ProductID: 2, Title: "Puzzle Box", UnitPrice: 15, Quantity: 1, MaxAvailable: 10},
	}}
	require.NoError(t, store.Save(ctx, "s1", saved))

	loaded, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, saved.Lines, loaded.Lines)

	// Stored lines must not alias the caller's slice.
	saved.Lines[0].Quantity = 99
	loaded, err = store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Lines[0].Quantity)
}

func TestMemoryCartStoreIsolatesSessions(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryCartStore()

	require.NoError(t, store.Save(ctx, "s1", &models.Cart{Lines: []models.CartLine{
		{ProductID: 1, Title: "Chess Deluxe", UnitPrice: 10, Quantity: 1},
	}}))

	other, err := store.Load(ctx, "s2")
	require.NoError(t, err)
	assert.True(t, other.IsEmpty())
}

func TestMemoryCartStoreClear(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryCartStore()

	require.NoError(t, store.Save(ctx, "s1", &models.Cart{Lines: []models.CartLine{
		{ProductID: 1, Title: "Chess Deluxe", UnitPrice: 10, Quantity: 1},
	}}))
	require.NoError(t, store.Clear(ctx, "s1"))

	cart, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())

	// Clearing an unknown session is fine.
	require.NoError(t, store.Clear(ctx, "nope"))
}
