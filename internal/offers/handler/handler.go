// Package handler exposes the offers HTTP endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"leadscoring_backend/internal/offers/repository"
	"leadscoring_backend/internal/offers/service"
	"leadscoring_backend/internal/offers/transport"
	"leadscoring_backend/platform/httpkit"
	"leadscoring_backend/platform/validator"
)

// Handler handles offer requests.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new offers handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterRoutes mounts offer routes on the provided group.
func (h *Handler) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("", h.HandleCreate)
	group.GET("", h.HandleGetCurrent)
}

// HandleCreate registers the offer used as scoring context.
func (h *Handler) HandleCreate(c *gin.Context) {
	var req transport.CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	offer, err := h.svc.Create(c.Request.Context(), repository.CreateParams{
		Name:          req.Name,
		ValueProps:    req.ValueProps,
		IdealUseCases: req.IdealUseCases,
	})
	if httpkit.HandleError(c, err) {
		return
	}

	c.JSON(http.StatusCreated, transport.ToOfferResponse(offer))
}

// HandleGetCurrent returns the current offer, 404 when none is configured.
func (h *Handler) HandleGetCurrent(c *gin.Context) {
	offer, err := h.svc.GetCurrent(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.ToOfferResponse(offer))
}
