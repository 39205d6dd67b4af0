package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yasminebk/beautyuniverse-backend/internal/app/model"
	"github.com/yasminebk/beautyuniverse-backend/internal/app/repository"
	"github.com/yasminebk/beautyuniverse-backend/internal/app/service"
	apperrors "github.com/yasminebk/beautyuniverse-backend/internal/errors"
	"github.com/yasminebk/beautyuniverse-backend/internal/middleware"
)

type CatalogController struct {
	catalogService service.CatalogService
}

func NewCatalogController(catalogService service.CatalogService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

type ProductRequest struct {
	Name          string   `json:"name" binding:"required"`
	NameAr        string   `json:"name_ar"`
	Description   string   `json:"description"`
	DescriptionAr string   `json:"description_ar"`
	Price         float64  `json:"price" binding:"required,gt=0"`
	OriginalPrice *float64 `json:"original_price"`
	Category      string   `json:"category" binding:"required"`
	CategoryAr    string   `json:"category_ar"`
	ImageURL      string   `json:"image_url"`
	Rating        *float64 `json:"rating"`
	IsNew         bool     `json:"is_new"`
	IsSale        bool     `json:"is_sale"`
	IsActive      *bool    `json:"is_active"`
	Stock         int      `json:"stock"`
}

// ListProducts returns the public catalog, filterable by category, search
// term and price range
// GET /api/v1/products
func (ctrl *CatalogController) ListProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	filter := repository.ProductFilter{
		Category:   model.ProductCategory(c.Query("category")),
		Search:     c.Query("search"),
		ActiveOnly: true,
		OnSale:     c.Query("on_sale") == "true",
		NewOnly:    c.Query("new") == "true",
	}
	if v := c.Query("min_price"); v != "" {
		filter.MinPrice, _ = strconv.ParseFloat(v, 64)
	}
	if v := c.Query("max_price"); v != "" {
		filter.MaxPrice, _ = strconv.ParseFloat(v, 64)
	}

	products, err := ctrl.catalogService.ListProducts(filter)
	if err != nil {
		log.Error("Failed to list products", err, nil)
		apperrors.InternalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// GetProduct returns one product by id
// GET /api/v1/products/:id
func (ctrl *CatalogController) GetProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "validation.invalid_id")
		return
	}

	product, err := ctrl.catalogService.GetProductByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "product.not_found")
			return
		}
		apperrors.InternalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}

// GetBestSellers returns the top selling products
// GET /api/v1/products/best-sellers
func (ctrl *CatalogController) GetBestSellers(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	limit := 8
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 50 {
			limit = n
		}
	}

	products, err := ctrl.catalogService.GetBestSellers(limit)
	if err != nil {
		log.Error("Failed to fetch best sellers", err, nil)
		apperrors.InternalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// AdminListProducts returns the full catalog including inactive products
// GET /api/v1/admin/products
func (ctrl *CatalogController) AdminListProducts(c *gin.Context) {
	filter := repository.ProductFilter{
		Category: model.ProductCategory(c.Query("category")),
		Search:   c.Query("search"),
	}

	products, err := ctrl.catalogService.ListProducts(filter)
	if err != nil {
		apperrors.InternalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// CreateProduct creates a catalog product
// POST /api/v1/admin/products
func (ctrl *CatalogController) CreateProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "validation.invalid_input")
		return
	}

	product := productFromRequest(&req)
	if err := ctrl.catalogService.CreateProduct(product); err != nil {
		if errors.Is(err, service.ErrInvalidCategory) {
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "validation.invalid_input")
			return
		}
		log.Error("Failed to create product", err, map[string]interface{}{
			"name": req.Name,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "create product")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"product": product})
}

// UpdateProduct replaces a product's catalog fields
// PUT /api/v1/admin/products/:id
func (ctrl *CatalogController) UpdateProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "validation.invalid_id")
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "validation.invalid_input")
		return
	}

	product := productFromRequest(&req)
	product.ID = uint(id)
	if err := ctrl.catalogService.UpdateProduct(product); err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			apperrors.NotFound(c, apperrors.ProductNotFound, "product.not_found")
		case errors.Is(err, service.ErrInvalidCategory):
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "validation.invalid_input")
		default:
			log.Error("Failed to update product", err, map[string]interface{}{
				"product_id": id,
			})
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "update product")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}

// DeleteProduct removes a product from the catalog
// DELETE /api/v1/admin/products/:id
func (ctrl *CatalogController) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "validation.invalid_id")
		return
	}

	if err := ctrl.catalogService.DeleteProduct(uint(id)); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "product.not_found")
			return
		}
		apperrors.InternalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}

func productFromRequest(req *ProductRequest) *model.Product {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return &model.Product{
		Name:          req.Name,
		NameAr:        req.NameAr,
		Description:   req.Description,
		DescriptionAr: req.DescriptionAr,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Category:      model.ProductCategory(req.Category),
		CategoryAr:    req.CategoryAr,
		ImageURL:      req.ImageURL,
		Rating:        req.Rating,
		IsNew:         req.IsNew,
		IsSale:        req.IsSale,
		IsActive:      active,
		Stock:         req.Stock,
	}
}
