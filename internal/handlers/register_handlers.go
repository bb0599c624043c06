package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/payservice/receipt_payments_app/internal/apperrors"
	portssvc "github.com/payservice/receipt_payments_app/internal/core/ports/services"
	"github.com/payservice/receipt_payments_app/internal/dto"
	"github.com/payservice/receipt_payments_app/pkg/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, services)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(r *gin.Engine, services *portssvc.ServiceContainer) {
	v1 := r.Group("/api/v1")

	registerPaymentRoutes(v1, services.Payment)
	registerReceiptRoutes(v1, services.Receipt)
	registerServiceRoutes(v1, services.Service)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// respondError translates a service error into the uniform error body.
// EmptyResult intentionally carries no body.
func respondError(c *gin.Context, err error) {
	var status int
	switch {
	case errors.Is(err, apperrors.ErrEmptyResult):
		c.Status(http.StatusNoContent)
		return
	case errors.Is(err, apperrors.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrPendingObligation):
		status = http.StatusConflict
	case errors.Is(err, apperrors.ErrOverpayment):
		status = http.StatusUnprocessableEntity
	default:
		c.JSON(http.StatusInternalServerError,
			dto.NewErrorResponse(http.StatusInternalServerError, "unexpected error, please contact the administrator", c.Request.URL.Path))
		return
	}
	c.JSON(status, dto.NewErrorResponse(status, err.Error(), c.Request.URL.Path))
}
