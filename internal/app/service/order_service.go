package service

import (
	"errors"
	"strings"

	"github.com/yasminebk/beautyuniverse-backend/internal/app/model"
	"github.com/yasminebk/beautyuniverse-backend/internal/app/repository"
	"github.com/yasminebk/beautyuniverse-backend/internal/cart"
	"github.com/yasminebk/beautyuniverse-backend/pkg/logger"
	"github.com/yasminebk/beautyuniverse-backend/pkg/util"
	"gorm.io/gorm"
)

var (
	ErrCartEmpty           = errors.New("cart is empty")
	ErrMissingCustomerInfo = errors.New("customer name and phone are required")
	ErrInvalidWilaya       = errors.New("invalid wilaya")
	ErrInvalidPhone        = errors.New("invalid phone number")
	ErrInvalidDeliveryType = errors.New("invalid delivery type")
	ErrOrderNotFound       = errors.New("order not found")
	ErrInvalidOrderStatus  = errors.New("invalid order status")
)

// CheckoutInput carries the cash-on-delivery form fields
type CheckoutInput struct {
	CustomerName string
	Phone        string
	Wilaya       string
	DeliveryType model.DeliveryType
	Address      string
	Notes        string
}

// OrderEvents receives order lifecycle notifications, typically fanned out
// to connected admin dashboards
type OrderEvents interface {
	OrderCreated(order *model.Order)
	OrderStatusChanged(order *model.Order)
}

type OrderService interface {
	Checkout(input CheckoutInput, cartStore *cart.Store) (*model.Order, error)
	GetOrders(status model.OrderStatus) ([]model.Order, error)
	GetOrderByID(id uint) (*model.Order, error)
	UpdateOrderStatus(id uint, status model.OrderStatus) (*model.Order, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	events    OrderEvents // nil when no dashboard is listening
}

func NewOrderService(orderRepo repository.OrderRepository, events OrderEvents) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		events:    events,
	}
}

// Checkout validates the customer form, transcribes the cart contents into
// order item snapshots and clears the cart once the order is stored.
func (s *orderService) Checkout(input CheckoutInput, cartStore *cart.Store) (*model.Order, error) {
	input.CustomerName = strings.TrimSpace(input.CustomerName)
	input.Phone = util.NormalizePhone(input.Phone)

	if input.CustomerName == "" || input.Phone == "" {
		return nil, ErrMissingCustomerInfo
	}
	if !util.IsValidAlgerianPhone(input.Phone) {
		return nil, ErrInvalidPhone
	}
	if !model.ValidWilaya(input.Wilaya) {
		return nil, ErrInvalidWilaya
	}
	if !model.ValidDeliveryType(input.DeliveryType) {
		return nil, ErrInvalidDeliveryType
	}

	items := cartStore.Items()
	if len(items) == 0 {
		return nil, ErrCartEmpty
	}

	order := &model.Order{
		CustomerName: input.CustomerName,
		Phone:        input.Phone,
		Wilaya:       input.Wilaya,
		DeliveryType: input.DeliveryType,
		Address:      strings.TrimSpace(input.Address),
		Notes:        strings.TrimSpace(input.Notes),
		TotalAmount:  cartStore.TotalPrice(),
		Status:       model.OrderStatusPending,
		Items:        make([]model.OrderItem, 0, len(items)),
	}
	for _, item := range items {
		order.Items = append(order.Items, model.OrderItem{
			ProductID: item.ID,
			Name:      item.Name,
			NameAr:    item.NameAr,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			ImageURL:  item.ImageURL,
		})
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	cartStore.Clear()

	logger.Info("Order placed", map[string]interface{}{
		"order_id": order.ID,
		"wilaya":   order.Wilaya,
		"delivery": order.DeliveryType,
		"total":    order.TotalAmount,
		"items":    len(order.Items),
	})

	if s.events != nil {
		s.events.OrderCreated(order)
	}
	return order, nil
}

func (s *orderService) GetOrders(status model.OrderStatus) ([]model.Order, error) {
	if status != "" && !model.ValidOrderStatus(status) {
		return nil, ErrInvalidOrderStatus
	}
	return s.orderRepo.FindAll(status)
}

func (s *orderService) GetOrderByID(id uint) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *orderService) UpdateOrderStatus(id uint, status model.OrderStatus) (*model.Order, error) {
	if !model.ValidOrderStatus(status) {
		return nil, ErrInvalidOrderStatus
	}

	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	logger.Info("Order status updated", map[string]interface{}{
		"order_id": id,
		"status":   status,
	})

	if s.events != nil {
		s.events.OrderStatusChanged(order)
	}
	return order, nil
}
