package services

import (
	"context"
	"errors"
	"log"

	"easygames/models"
	"easygames/repositories"
)

// ErrAlreadySubscribed marks a duplicate subscription attempt; callers treat
// it as a conflict, not a server fault.
var ErrAlreadySubscribed = errors.New("subscriber already exists")

// subscriberStore is the service's view of the subscribers table.
type subscriberStore interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, sub *models.Subscriber) error
	GetAll(ctx context.Context) ([]models.Subscriber, error)
	Delete(ctx context.Context, id int) error
}

type SubscriberService struct {
	repo   subscriberStore
	mailer *EmailService
}

// NewSubscriberService wires the mailer if SMTP is configured; without it
// subscriptions still work, they just skip the welcome email.
func NewSubscriberService() *SubscriberService {
	mailer, err := NewEmailService()
	if err != nil {
		log.Println("SMTP not configured, welcome emails disabled:", err)
		mailer = nil
	}

	return &SubscriberService{
		repo:   repositories.NewSubscriberRepository(),
		mailer: mailer,
	}
}

func (s *SubscriberService) Subscribe(ctx context.Context, email string) (*models.Subscriber, error) {
	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadySubscribed
	}

	sub := &models.Subscriber{Email: email}
	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, err
	}

	if s.mailer != nil {
		go func(to string) {
			if err := s.mailer.SendWelcomeEmail(to); err != nil {
				log.Printf("welcome email to %s failed: %v", to, err)
			}
		}(sub.Email)
	}

	return sub, nil
}

func (s *SubscriberService) GetAll(ctx context.Context) ([]models.Subscriber, error) {
	return s.repo.GetAll(ctx)
}

func (s *SubscriberService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
