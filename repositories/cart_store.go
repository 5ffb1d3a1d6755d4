package repositories

import (
	"context"

	"easygames/models"
)

// CartStore keeps one cart per browsing session. A session that has never
// stored a cart loads an empty one; Clear resets the session back to that
// state. Implementations must round-trip lines losslessly.
type CartStore interface {
	Load(ctx context.Context, sessionID string) (*models.Cart, error)
	Save(ctx context.Context, sessionID string, cart *models.Cart) error
	Clear(ctx context.Context, sessionID string) error
}
