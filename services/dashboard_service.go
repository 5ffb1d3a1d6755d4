package services

import (
	"context"

	"easygames/config"
	"easygames/models"
	"easygames/repositories"
)

type DashboardService struct {
	userRepo       *repositories.UserRepository
	categoryRepo   *repositories.CategoryRepository
	stockRepo      *repositories.StockRepository
	subscriberRepo *repositories.SubscriberRepository
}

func NewDashboardService() *DashboardService {
	return &DashboardService{
		userRepo:       repositories.NewUserRepository(),
		categoryRepo:   repositories.NewCategoryRepository(),
		stockRepo:      repositories.NewStockRepository(),
		subscriberRepo: repositories.NewSubscriberRepository(),
	}
}

func (s *DashboardService) Overview(ctx context.Context) (*models.AdminDashboard, error) {
	totalUsers, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalCategories, err := s.categoryRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalStockItems, err := s.stockRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalSubscribers, err := s.subscriberRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	threshold := config.AppConfig.LowStockThreshold
	lowStock, err := s.stockRepo.LowStock(ctx, threshold)
	if err != nil {
		return nil, err
	}

	return &models.AdminDashboard{
		TotalUsers:        totalUsers,
		TotalCategories:   totalCategories,
		TotalStockItems:   totalStockItems,
		TotalSubscribers:  totalSubscribers,
		LowStock:          lowStock,
		LowStockThreshold: threshold,
	}, nil
}
