package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yasminebk/beautyuniverse-backend/internal/app/model"
	"github.com/yasminebk/beautyuniverse-backend/internal/app/service"
	"github.com/yasminebk/beautyuniverse-backend/internal/cart"
	apperrors "github.com/yasminebk/beautyuniverse-backend/internal/errors"
	"github.com/yasminebk/beautyuniverse-backend/internal/export"
	"github.com/yasminebk/beautyuniverse-backend/internal/middleware"
	"github.com/yasminebk/beautyuniverse-backend/pkg/i18n"
)

type OrderController struct {
	orderService service.OrderService
	manager      *cart.Manager
}

func NewOrderController(orderService service.OrderService, manager *cart.Manager) *OrderController {
	return &OrderController{
		orderService: orderService,
		manager:      manager,
	}
}

type CheckoutRequest struct {
	CustomerName string `json:"customer_name" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	Wilaya       string `json:"wilaya" binding:"required"`
	DeliveryType string `json:"delivery_type" binding:"required"`
	Address      string `json:"address"`
	Notes        string `json:"notes"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Checkout places a cash-on-delivery order from the guest's cart
// POST /api/v1/checkout
func (ctrl *OrderController) Checkout(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationRequired, "validation.required")
		return
	}

	token, _ := middleware.GetCartToken(c)
	store := ctrl.manager.Get(token)

	order, err := ctrl.orderService.Checkout(service.CheckoutInput{
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Wilaya:       req.Wilaya,
		DeliveryType: model.DeliveryType(req.DeliveryType),
		Address:      req.Address,
		Notes:        req.Notes,
	}, store)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCartEmpty):
			apperrors.BadRequest(c, apperrors.CartEmpty, "cart.empty")
		case errors.Is(err, service.ErrMissingCustomerInfo):
			apperrors.BadRequest(c, apperrors.ValidationRequired, "validation.required")
		case errors.Is(err, service.ErrInvalidPhone):
			apperrors.BadRequest(c, apperrors.ValidationInvalidPhone, "validation.invalid_phone")
		case errors.Is(err, service.ErrInvalidWilaya):
			apperrors.BadRequest(c, apperrors.ValidationInvalidWilaya, "validation.invalid_wilaya")
		case errors.Is(err, service.ErrInvalidDeliveryType):
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "validation.invalid_input")
		default:
			log.Error("Checkout failed", err, map[string]interface{}{
				"wilaya": req.Wilaya,
			})
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "checkout")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": i18n.T(apperrors.RequestLang(c), "order.created"),
		"order":   order,
	})
}

// ListOrders returns orders for the back office, optionally filtered by
// status
// GET /api/v1/admin/orders
func (ctrl *OrderController) ListOrders(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	orders, err := ctrl.orderService.GetOrders(model.OrderStatus(c.Query("status")))
	if err != nil {
		if errors.Is(err, service.ErrInvalidOrderStatus) {
			apperrors.BadRequest(c, apperrors.OrderInvalidStatus, "order.invalid_status")
			return
		}
		log.Error("Failed to list orders", err, nil)
		apperrors.InternalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"count":  len(orders),
	})
}

// GetOrder returns one order with its item snapshots
// GET /api/v1/admin/orders/:id
func (ctrl *OrderController) GetOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "validation.invalid_id")
		return
	}

	order, err := ctrl.orderService.GetOrderByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			apperrors.NotFound(c, apperrors.OrderNotFound, "order.not_found")
			return
		}
		apperrors.InternalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": order})
}

// UpdateStatus moves an order along its lifecycle
// PUT /api/v1/admin/orders/:id/status
func (ctrl *OrderController) UpdateStatus(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "validation.invalid_id")
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "validation.invalid_input")
		return
	}

	order, err := ctrl.orderService.UpdateOrderStatus(uint(id), model.OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			apperrors.NotFound(c, apperrors.OrderNotFound, "order.not_found")
		case errors.Is(err, service.ErrInvalidOrderStatus):
			apperrors.BadRequest(c, apperrors.OrderInvalidStatus, "order.invalid_status")
		default:
			log.Error("Failed to update order status", err, map[string]interface{}{
				"order_id": id,
			})
			apperrors.InternalError(c)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": order})
}

// ExportOrders streams the order book as an xlsx download
// GET /api/v1/admin/orders/export
func (ctrl *OrderController) ExportOrders(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	orders, err := ctrl.orderService.GetOrders(model.OrderStatus(c.Query("status")))
	if err != nil {
		if errors.Is(err, service.ErrInvalidOrderStatus) {
			apperrors.BadRequest(c, apperrors.OrderInvalidStatus, "order.invalid_status")
			return
		}
		apperrors.InternalError(c)
		return
	}

	workbook, err := export.OrdersWorkbook(orders)
	if err != nil {
		log.Error("Failed to build order export", err, nil)
		apperrors.InternalError(c)
		return
	}
	defer workbook.Close()

	filename := fmt.Sprintf("commandes-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := workbook.Write(c.Writer); err != nil {
		log.Error("Failed to stream order export", err, nil)
	}
}
