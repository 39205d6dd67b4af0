package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yasminebk/beautyuniverse-backend/internal/app/service"
	"github.com/yasminebk/beautyuniverse-backend/internal/cart"
	apperrors "github.com/yasminebk/beautyuniverse-backend/internal/errors"
	"github.com/yasminebk/beautyuniverse-backend/internal/middleware"
)

// CartController exposes the guest cart over HTTP. Every response carries
// the full cart state so the storefront can rerender item lines, the badge
// count and the slide-over panel from one payload.
type CartController struct {
	manager        *cart.Manager
	catalogService service.CatalogService
}

func NewCartController(manager *cart.Manager, catalogService service.CatalogService) *CartController {
	return &CartController{
		manager:        manager,
		catalogService: catalogService,
	}
}

type AddToCartRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type PanelRequest struct {
	IsOpen bool `json:"is_open"`
}

func (ctrl *CartController) store(c *gin.Context) *cart.Store {
	token, _ := middleware.GetCartToken(c)
	return ctrl.manager.Get(token)
}

// GetCart returns the current cart state
// GET /api/v1/cart
func (ctrl *CartController) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cart": ctrl.store(c).State()})
}

// AddItem adds a product to the cart, merging with an existing line item.
// The product's display data is captured from the catalog at add time.
// POST /api/v1/cart/items
func (ctrl *CartController) AddItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "validation.invalid_input")
		return
	}

	product, err := ctrl.catalogService.GetProductByID(req.ProductID)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "product.not_found")
			return
		}
		apperrors.InternalError(c)
		return
	}
	if !product.IsActive {
		apperrors.BadRequest(c, apperrors.ProductInactive, "product.inactive")
		return
	}

	store := ctrl.store(c)
	if err := store.AddItem(service.CartRef(product), req.Quantity); err != nil {
		log.Warn("Cart rejected product ref", map[string]interface{}{
			"product_id": req.ProductID,
			"error":      err.Error(),
		})
		apperrors.BadRequest(c, apperrors.CartMissingProduct, "cart.missing_product")
		return
	}

	c.JSON(http.StatusOK, gin.H{"cart": store.State()})
}

// UpdateQuantity sets a line item's quantity; zero or less removes it
// PUT /api/v1/cart/items/:id
func (ctrl *CartController) UpdateQuantity(c *gin.Context) {
	id := c.Param("id")
	if _, err := strconv.ParseUint(id, 10, 64); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "validation.invalid_id")
		return
	}

	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "validation.invalid_input")
		return
	}

	store := ctrl.store(c)
	store.UpdateQuantity(id, req.Quantity)

	c.JSON(http.StatusOK, gin.H{"cart": store.State()})
}

// RemoveItem deletes one line item. Removing an id that is not in the cart
// is not an error; the response is the unchanged state.
// DELETE /api/v1/cart/items/:id
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	store := ctrl.store(c)
	store.RemoveItem(c.Param("id"))

	c.JSON(http.StatusOK, gin.H{"cart": store.State()})
}

// ClearCart empties the cart
// DELETE /api/v1/cart
func (ctrl *CartController) ClearCart(c *gin.Context) {
	store := ctrl.store(c)
	store.Clear()

	c.JSON(http.StatusOK, gin.H{"cart": store.State()})
}

// SetPanel opens or closes the slide-over cart panel. Presentation state
// only: it never touches the persisted snapshot.
// PUT /api/v1/cart/panel
func (ctrl *CartController) SetPanel(c *gin.Context) {
	var req PanelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "validation.invalid_input")
		return
	}

	store := ctrl.store(c)
	store.SetOpen(req.IsOpen)

	c.JSON(http.StatusOK, gin.H{"cart": store.State()})
}
