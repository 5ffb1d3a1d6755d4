package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"easygames/models"
)

type fakeSubscriberStore struct {
	emails map[string]bool
}

func newFakeSubscriberStore(emails ...string) *fakeSubscriberStore {
	store := &fakeSubscriberStore{emails: make(map[string]bool)}
	for _, email := range emails {
		store.emails[email] = true
	}
	return store
}

func (f *fakeSubscriberStore) ExistsByEmail(_ context.Context, email string) (bool, error) {
	return f.emails[email], nil
}

func (f *fakeSubscriberStore) Create(_ context.Context, sub *models.Subscriber) error {
	f.emails[sub.Email] = true
	sub.ID = len(f.emails)
	return nil
}

func (f *fakeSubscriberStore) GetAll(context.Context) ([]models.Subscriber, error) {
	subs := make([]models.Subscriber, 0, len(f.emails))
	for email := range f.emails {
		subs = append(subs, models.Subscriber{Email: email})
	}
	return subs, nil
}

func (f *fakeSubscriberStore) Delete(context.Context, int) error {
	return models.ErrItemNotFound
}

func TestSubscriberServiceSubscribe(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a new email", func(t *testing.T) {
		svc := &SubscriberService{repo: newFakeSubscriberStore()}

		sub, err := svc.Subscribe(ctx, "reader@example.com")
		require.NoError(t, err)
		assert.Equal(t, "reader@example.com", sub.Email)
		assert.NotZero(t, sub.ID)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		svc := &SubscriberService{repo: newFakeSubscriberStore("reader@example.com")}

		sub, err := svc.Subscribe(ctx, "reader@example.com")
		assert.Nil(t, sub)
		assert.ErrorIs(t, err, ErrAlreadySubscribed)
	})
}
