package repository

import (
	"github.com/yasminebk/beautyuniverse-backend/internal/app/model"
	"github.com/yasminebk/beautyuniverse-backend/pkg/logger"
	"gorm.io/gorm"
)

// ProductSales aggregates sold quantities per product for the best-seller
// ranking
type ProductSales struct {
	ProductID string `json:"product_id"`
	Sold      int    `json:"sold"`
}

type OrderRepository interface {
	Create(order *model.Order) error
	FindByID(id uint) (*model.Order, error)
	FindAll(status model.OrderStatus) ([]model.Order, error)
	UpdateStatus(id uint, status model.OrderStatus) error
	TopProducts(limit int) ([]ProductSales, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(order *model.Order) error {
	// Creates the order and its item snapshots in one transaction
	if err := r.db.Create(order).Error; err != nil {
		logger.Error("Failed to create order in database", err, map[string]interface{}{
			"customer": order.CustomerName,
			"wilaya":   order.Wilaya,
		})
		return err
	}

	logger.Debug("Order created in database", map[string]interface{}{
		"order_id":   order.ID,
		"item_count": len(order.Items),
		"total":      order.TotalAmount,
	})
	return nil
}

func (r *orderRepository) FindByID(id uint) (*model.Order, error) {
	var order model.Order
	if err := r.db.Preload("Items").First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) FindAll(status model.OrderStatus) ([]model.Order, error) {
	query := r.db.Preload("Items").Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var orders []model.Order
	if err := query.Find(&orders).Error; err != nil {
		logger.Error("Failed to list orders from database", err, nil)
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) UpdateStatus(id uint, status model.OrderStatus) error {
	result := r.db.Model(&model.Order{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		logger.Error("Failed to update order status in database", result.Error, map[string]interface{}{
			"order_id": id,
			"status":   status,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *orderRepository) TopProducts(limit int) ([]ProductSales, error) {
	var sales []ProductSales
	err := r.db.Model(&model.OrderItem{}).
		Select("product_id, SUM(quantity) AS sold").
		Group("product_id").
		Order("sold DESC").
		Limit(limit).
		Scan(&sales).Error
	if err != nil {
		logger.Error("Failed to aggregate product sales", err, nil)
		return nil, err
	}
	return sales, nil
}
