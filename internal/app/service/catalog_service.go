package service

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/yasminebk/beautyuniverse-backend/internal/app/model"
	"github.com/yasminebk/beautyuniverse-backend/internal/app/repository"
	"github.com/yasminebk/beautyuniverse-backend/internal/cart"
	"github.com/yasminebk/beautyuniverse-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrProductInactive = errors.New("product is not active")
	ErrInvalidCategory = errors.New("invalid product category")
)

// bestSellersKey caches the ranked product ids refreshed by the scheduler
const bestSellersKey = "catalog:bestsellers"

type CatalogService interface {
	ListProducts(filter repository.ProductFilter) ([]model.Product, error)
	GetProductByID(id uint) (*model.Product, error)
	GetBestSellers(limit int) ([]model.Product, error)
	RefreshBestSellers() error
	CreateProduct(product *model.Product) error
	UpdateProduct(product *model.Product) error
	DeleteProduct(id uint) error
}

type catalogService struct {
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	redisClient *redis.Client // nil disables the best-seller cache
}

func NewCatalogService(
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	redisClient *redis.Client,
) CatalogService {
	return &catalogService{
		productRepo: productRepo,
		orderRepo:   orderRepo,
		redisClient: redisClient,
	}
}

func (s *catalogService) ListProducts(filter repository.ProductFilter) ([]model.Product, error) {
	products, err := s.productRepo.FindAll(filter)
	if err != nil {
		logger.Error("Failed to list products", err, nil)
		return nil, err
	}

	logger.Debug("Products listed", map[string]interface{}{
		"count": len(products),
	})
	return products, nil
}

func (s *catalogService) GetProductByID(id uint) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		logger.Error("Failed to fetch product", err, map[string]interface{}{
			"product_id": id,
		})
		return nil, err
	}
	return product, nil
}

// GetBestSellers returns the top selling active products. Served from the
// cached ranking when available, recomputed on a cold cache.
func (s *catalogService) GetBestSellers(limit int) ([]model.Product, error) {
	ids := s.cachedRanking()
	if ids == nil {
		sales, err := s.orderRepo.TopProducts(limit)
		if err != nil {
			return nil, err
		}
		for _, sale := range sales {
			if id, err := strconv.ParseUint(sale.ProductID, 10, 32); err == nil {
				ids = append(ids, uint(id))
			}
		}
	}

	if len(ids) > limit {
		ids = ids[:limit]
	}

	products, err := s.productRepo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}

	// Preserve ranking order, hide inactive products
	byID := make(map[uint]model.Product, len(products))
	for _, p := range products {
		if p.IsActive {
			byID[p.ID] = p
		}
	}
	ranked := make([]model.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			ranked = append(ranked, p)
		}
	}
	return ranked, nil
}

// RefreshBestSellers recomputes the sales ranking and caches it. Invoked
// by the daily scheduler.
func (s *catalogService) RefreshBestSellers() error {
	sales, err := s.orderRepo.TopProducts(50)
	if err != nil {
		return err
	}

	ids := make([]uint, 0, len(sales))
	for _, sale := range sales {
		if id, err := strconv.ParseUint(sale.ProductID, 10, 32); err == nil {
			ids = append(ids, uint(id))
		}
	}

	if s.redisClient == nil {
		return nil
	}

	data, err := json.Marshal(ids)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := s.redisClient.Set(ctx, bestSellersKey, data, 48*time.Hour).Err(); err != nil {
		logger.Error("Failed to cache best-seller ranking", err, nil)
		return err
	}

	logger.Info("Best-seller ranking refreshed", map[string]interface{}{
		"count": len(ids),
	})
	return nil
}

func (s *catalogService) cachedRanking() []uint {
	if s.redisClient == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	data, err := s.redisClient.Get(ctx, bestSellersKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Warn("Best-seller cache read failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
		return nil
	}

	var ids []uint
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil
	}
	return ids
}

func (s *catalogService) CreateProduct(product *model.Product) error {
	if !model.ValidCategory(product.Category) {
		return ErrInvalidCategory
	}

	if err := s.productRepo.Create(product); err != nil {
		return err
	}

	logger.Info("Product created", map[string]interface{}{
		"product_id": product.ID,
		"name":       product.Name,
	})
	return nil
}

func (s *catalogService) UpdateProduct(product *model.Product) error {
	if !model.ValidCategory(product.Category) {
		return ErrInvalidCategory
	}

	if _, err := s.productRepo.FindByID(product.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	if err := s.productRepo.Update(product); err != nil {
		return err
	}

	logger.Info("Product updated", map[string]interface{}{
		"product_id": product.ID,
	})
	return nil
}

func (s *catalogService) DeleteProduct(id uint) error {
	if _, err := s.productRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	if err := s.productRepo.Delete(id); err != nil {
		return err
	}

	logger.Info("Product deleted", map[string]interface{}{
		"product_id": id,
	})
	return nil
}

// CartRef converts a catalog product into the reference the cart captures
// at add time
func CartRef(p *model.Product) cart.ProductRef {
	return cart.ProductRef{
		ID:            strconv.FormatUint(uint64(p.ID), 10),
		Name:          p.Name,
		NameAr:        p.NameAr,
		UnitPrice:     p.Price,
		OriginalPrice: p.OriginalPrice,
		ImageURL:      p.ImageURL,
	}
}
