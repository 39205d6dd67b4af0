package model

import (
	"time"

	"gorm.io/gorm"
)

type OrderStatus string
type DeliveryType string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"

	DeliveryHome     DeliveryType = "home"      // door-to-door courier
	DeliveryStopDesk DeliveryType = "stop_desk" // pickup at the carrier's desk
)

// Order is a cash-on-delivery order. Payment happens at handover, so there
// is no payment state beyond the order status itself.
type Order struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	CustomerName string         `gorm:"not null" json:"customer_name"`
	Phone        string         `gorm:"not null;index" json:"phone"`
	Wilaya       string         `gorm:"not null" json:"wilaya"`
	DeliveryType DeliveryType   `gorm:"type:varchar(20);default:'home'" json:"delivery_type"`
	Address      string         `gorm:"type:text" json:"address,omitempty"`
	Notes        string         `gorm:"type:text" json:"notes,omitempty"`
	TotalAmount  float64        `gorm:"not null" json:"total_amount"`
	Status       OrderStatus    `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem snapshots a cart line item at checkout time. Display text and
// unit price are copied, not joined, so later catalog edits cannot rewrite
// past orders.
type OrderItem struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	OrderID   uint           `gorm:"not null;index" json:"order_id"`
	ProductID string         `gorm:"not null;index" json:"product_id"`
	Name      string         `gorm:"not null" json:"name"`
	NameAr    string         `json:"name_ar"`
	UnitPrice float64        `gorm:"not null" json:"unit_price"`
	Quantity  int            `gorm:"not null" json:"quantity"`
	ImageURL  string         `json:"image_url"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Order Order `gorm:"foreignKey:OrderID" json:"-"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

// ValidOrderStatus reports whether s is a known order status
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// ValidDeliveryType reports whether d is a known delivery type
func ValidDeliveryType(d DeliveryType) bool {
	return d == DeliveryHome || d == DeliveryStopDesk
}
