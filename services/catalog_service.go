package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"easygames/models"
	"easygames/repositories"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

const (
	stockItemCachePrefix = "stock_item:"
	stockItemCacheTTL    = time.Minute
)

// CatalogService serves the public browse surface. Item detail reads go
// through Redis with a singleflight guard so a cache miss on a hot product
// produces one database read, not one per waiting request. The cache client
// may be nil, in which case every read hits the database.
type CatalogService struct {
	stockRepo    *repositories.StockRepository
	categoryRepo *repositories.CategoryRepository
	cache        *redis.Client
	sfg          singleflight.Group
}

func NewCatalogService(cache *redis.Client) *CatalogService {
	return &CatalogService{
		stockRepo:    repositories.NewStockRepository(),
		categoryRepo: repositories.NewCategoryRepository(),
		cache:        cache,
	}
}

func (s *CatalogService) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepo.GetAll(ctx)
}

func (s *CatalogService) CreateCategory(ctx context.Context, req models.CategoryRequest) (*models.Category, error) {
	cat := &models.Category{Name: req.Name}
	if err := s.categoryRepo.Create(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id int, req models.CategoryRequest) (*models.Category, error) {
	cat, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	cat.Name = req.Name
	if err := s.categoryRepo.Update(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id int) error {
	return s.categoryRepo.Delete(ctx, id)
}

func (s *CatalogService) ListStockItems(ctx context.Context, categoryID int, search string, page, limit int) (*models.PaginationResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	items, total, err := s.stockRepo.List(ctx, categoryID, search, page, limit)
	if err != nil {
		return nil, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	return &models.PaginationResponse{
		Success: true,
		Message: "Stock items retrieved successfully",
		Data:    items,
		Meta: models.MetaData{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: totalPages,
		},
	}, nil
}

func (s *CatalogService) GetStockItemByID(ctx context.Context, id int) (*models.StockItem, error) {
	if s.cache == nil {
		return s.stockRepo.FindStockItem(ctx, id)
	}

	key := fmt.Sprintf("%s%d", stockItemCachePrefix, id)

	v, err, _ := s.sfg.Do(key, func() (interface{}, error) {
		raw, err := s.cache.Get(ctx, key).Bytes()
		if err == nil {
			var item models.StockItem
			if err := json.Unmarshal(raw, &item); err == nil {
				return &item, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			log.Printf("catalog cache get error: %v", err)
		}

		item, err := s.stockRepo.FindStockItem(ctx, id)
		if err != nil {
			return nil, err
		}

		go func() {
			cacheCtx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			raw, err := json.Marshal(item)
			if err != nil {
				return
			}
			if err := s.cache.Set(cacheCtx, key, raw, stockItemCacheTTL).Err(); err != nil {
				log.Printf("catalog cache set error: %v", err)
			}
		}()

		return item, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.StockItem), nil
}

// InvalidateItems drops cached detail entries, called after admin writes and
// after a checkout decrements stock.
func (s *CatalogService) InvalidateItems(ids ...int) {
	if s.cache == nil || len(ids) == 0 {
		return
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, fmt.Sprintf("%s%d", stockItemCachePrefix, id))
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.cache.Del(ctx, keys...).Err(); err != nil {
		log.Printf("catalog cache invalidate error: %v", err)
	}
}

// Home assembles the storefront landing data: category list, newest in-stock
// arrivals and the nearly-sold-out "trending" shelf.
func (s *CatalogService) Home(ctx context.Context) (*models.HomeData, error) {
	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	whatsNew, err := s.stockRepo.WhatsNew(ctx, 8)
	if err != nil {
		return nil, err
	}

	trending, err := s.stockRepo.Trending(ctx, 8)
	if err != nil {
		return nil, err
	}

	return &models.HomeData{
		Categories: categories,
		WhatsNew:   whatsNew,
		Trending:   trending,
	}, nil
}
