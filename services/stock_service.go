package services

import (
	"context"

	"easygames/models"
	"easygames/repositories"
)

// StockService is the admin-side CRUD over stock items. Writes invalidate
// the catalog's cached detail entries.
type StockService struct {
	stockRepo *repositories.StockRepository
	catalog   *CatalogService
}

func NewStockService(catalog *CatalogService) *StockService {
	return &StockService{
		stockRepo: repositories.NewStockRepository(),
		catalog:   catalog,
	}
}

func (s *StockService) CreateStockItem(ctx context.Context, req models.CreateStockItemRequest) (*models.StockItem, error) {
	item := &models.StockItem{
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Price:       req.Price,
		Quantity:    req.Quantity,
		ImageURL:    req.ImageURL,
	}

	if err := s.stockRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *StockService) UpdateStockItem(ctx context.Context, id int, req models.UpdateStockItemRequest) (*models.StockItem, error) {
	item, err := s.stockRepo.FindStockItem(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		item.Title = req.Title
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.CategoryID > 0 {
		item.CategoryID = req.CategoryID
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.ImageURL != "" {
		item.ImageURL = req.ImageURL
	}

	if err := s.stockRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	s.catalog.InvalidateItems(id)
	return item, nil
}

func (s *StockService) DeleteStockItem(ctx context.Context, id int) error {
	if err := s.stockRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.catalog.InvalidateItems(id)
	return nil
}
