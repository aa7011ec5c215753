// Package handler exposes the scoring HTTP endpoints.
package handler

import (
	"encoding/csv"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"leadscoring_backend/internal/scoring/repository"
	"leadscoring_backend/internal/scoring/service"
	"leadscoring_backend/internal/scoring/transport"
	"leadscoring_backend/platform/httpkit"
	"leadscoring_backend/platform/logger"
)

// Handler handles scoring requests.
type Handler struct {
	svc *service.Service
	log *logger.Logger
}

// New creates a new scoring handler.
func New(svc *service.Service, log *logger.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// RegisterRoutes mounts scoring routes on the provided groups.
func (h *Handler) RegisterRoutes(scoreGroup, resultsGroup *gin.RouterGroup) {
	scoreGroup.POST("", h.HandleScore)
	resultsGroup.GET("", h.HandleResults)
	resultsGroup.GET("/export", h.HandleExport)
}

// HandleScore runs one scoring batch over all uploaded leads against the
// current offer and persists the outcome.
func (h *Handler) HandleScore(c *gin.Context) {
	scored, err := h.svc.ScoreAll(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}

	scoredAt := time.Now().UTC()
	results := make([]transport.ScoredLeadResponse, 0, len(scored))
	for _, sl := range scored {
		results = append(results, transport.FromScoredLead(sl, scoredAt))
	}

	httpkit.OK(c, transport.ScoreRunResponse{
		Scored:  len(results),
		Results: results,
	})
}

// HandleResults returns persisted scoring results, highest score first.
func (h *Handler) HandleResults(c *gin.Context) {
	results, err := h.svc.Results(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.FromResults(results))
}

// HandleExport streams persisted scoring results as a CSV attachment.
func (h *Handler) HandleExport(c *gin.Context) {
	results, err := h.svc.Results(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename=lead-scores.csv")

	log := h.log.WithContext(c.Request.Context())
	writer := csv.NewWriter(c.Writer)
	if err := writer.Write(exportHeader()); err != nil {
		log.Error("results export write failed", "error", err)
		return
	}
	for _, res := range results {
		if err := writer.Write(exportRow(res)); err != nil {
			log.Error("results export write failed", "error", err)
			return
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Error("results export flush failed", "error", err)
	}
}

func exportHeader() []string {
	return []string{
		"name", "role", "company", "industry", "location",
		"rule_score", "ai_score", "final_score", "intent", "reasoning",
	}
}

func exportRow(res repository.Result) []string {
	return []string{
		res.Name,
		res.Role,
		res.Company,
		res.Industry,
		res.Location,
		strconv.Itoa(res.RuleScore),
		strconv.Itoa(res.AIScore),
		strconv.Itoa(res.FinalScore),
		res.Intent,
		res.Reasoning,
	}
}
