package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/feedback-analyzer/internal/adapters/http/dto"
	"github.com/jsamuelsen/feedback-analyzer/internal/adapters/http/middleware"
	"github.com/jsamuelsen/feedback-analyzer/internal/app"
)

// SummaryHandler serves extractive summaries. All routes require an admin session.
type SummaryHandler struct {
	service *app.FeedbackService
}

// NewSummaryHandler creates a summary handler.
func NewSummaryHandler(service *app.FeedbackService) *SummaryHandler {
	return &SummaryHandler{service: service}
}

// Summarize handles GET /api/v1/feedback/:id/summary.
//
// @Summary Summarize one feedback record
// @Tags summaries
// @Produce json
// @Param id path int true "Feedback ID"
// @Param sentences query int false "Number of sentences"
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/feedback/{id}/summary [get]
func (h *SummaryHandler) Summarize(c *gin.Context) {
	id, ok := feedbackID(c)
	if !ok {
		return
	}

	var q dto.SummaryQuery
	if err := dto.BindQueryAndValidate(c, &q); err != nil {
		dto.RespondWithBindError(c, err)
		return
	}

	s, err := h.service.Summarize(c.Request.Context(), id, q.Sentences)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromSummary(s))
}

// SummarizeBatch handles POST /api/v1/summaries. Each record is summarized
// on its own; per-record failures are reported inline.
func (h *SummaryHandler) SummarizeBatch(c *gin.Context) {
	var req dto.BatchSummaryRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondWithBindError(c, err)
		return
	}

	results, err := h.service.SummarizeBatch(c.Request.Context(), req.IDs, req.Sentences)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromBatch(results))
}

// RegisterSummaryRoutes registers the summary routes on rg.
func (h *SummaryHandler) RegisterSummaryRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("", middleware.RequireAdmin())
	admin.GET("/feedback/:id/summary", h.Summarize)
	admin.POST("/summaries", h.SummarizeBatch)
}
