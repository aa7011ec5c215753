// Package handler exposes the leads HTTP endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"leadscoring_backend/internal/leads/service"
	"leadscoring_backend/internal/leads/transport"
	"leadscoring_backend/platform/httpkit"
)

// MaxUploadSize caps uploaded CSV files at 10 MiB.
const MaxUploadSize = 10 << 20

// Handler handles lead requests.
type Handler struct {
	svc *service.Service
}

// New creates a new leads handler.
func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts lead routes on the provided group.
func (h *Handler) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/upload", h.HandleUpload)
	group.GET("", h.HandleList)
}

// HandleUpload ingests a CSV file of leads under the multipart field "file".
func (h *Handler) HandleUpload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "missing file", "multipart field \"file\" is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "unreadable file", err.Error())
		return
	}
	defer file.Close()

	leads, err := h.svc.ImportCSV(c.Request.Context(), file, fileHeader.Filename)
	if httpkit.HandleError(c, err) {
		return
	}

	c.JSON(http.StatusCreated, transport.UploadResponse{
		Imported: len(leads),
		Leads:    transport.ToLeadResponses(leads),
	})
}

// HandleList returns all uploaded leads in insertion order.
func (h *Handler) HandleList(c *gin.Context) {
	leads, err := h.svc.List(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.ToLeadResponses(leads))
}
