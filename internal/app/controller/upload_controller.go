package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/yasminebk/beautyuniverse-backend/internal/errors"
	"github.com/yasminebk/beautyuniverse-backend/internal/middleware"
	"github.com/yasminebk/beautyuniverse-backend/internal/storage"
)

type UploadController struct {
	storage *storage.S3Storage
}

func NewUploadController(s3Storage *storage.S3Storage) *UploadController {
	return &UploadController{
		storage: s3Storage,
	}
}

type PresignRequest struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
	Size        int64  `json:"size" binding:"required,gt=0"`
}

// PresignProductImage hands the admin browser a presigned PUT URL so the
// image bytes go straight to S3
// POST /api/v1/admin/uploads/product-image
func (ctrl *UploadController) PresignProductImage(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req PresignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "validation.invalid_input")
		return
	}

	if err := ctrl.storage.ValidateFileSize(req.Size); err != nil {
		apperrors.BadRequest(c, apperrors.UploadInvalidFileType, "upload.invalid_type")
		return
	}

	resp, err := ctrl.storage.PresignProductImage(c.Request.Context(), req.Filename, req.ContentType)
	if err != nil {
		log.Error("Failed to presign product image upload", err, map[string]interface{}{
			"filename":     req.Filename,
			"content_type": req.ContentType,
		})
		apperrors.RespondWithError(c, http.StatusBadRequest, apperrors.UploadFailed, "upload.failed")
		return
	}

	c.JSON(http.StatusOK, resp)
}
