package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/feedback-analyzer/internal/adapters/http/dto"
	"github.com/jsamuelsen/feedback-analyzer/internal/adapters/http/middleware"
	"github.com/jsamuelsen/feedback-analyzer/internal/analysis/export"
	"github.com/jsamuelsen/feedback-analyzer/internal/app"
)

// ExportHandler serves downloadable exports of every record. Admin only.
type ExportHandler struct {
	service *app.FeedbackService
}

// NewExportHandler creates an export handler.
func NewExportHandler(service *app.FeedbackService) *ExportHandler {
	return &ExportHandler{service: service}
}

// CSV handles GET /api/v1/export/csv.
func (h *ExportHandler) CSV(c *gin.Context) {
	h.serve(c, h.service.ExportCSV, "text/csv; charset=utf-8", export.CSVFilename)
}

// JSON handles GET /api/v1/export/json.
func (h *ExportHandler) JSON(c *gin.Context) {
	h.serve(c, h.service.ExportJSON, "application/json; charset=utf-8", export.JSONFilename)
}

func (h *ExportHandler) serve(c *gin.Context, render func(context.Context) ([]byte, error), contentType, filename string) {
	body, err := render(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, body)
}

// RegisterExportRoutes registers the export routes on rg.
func (h *ExportHandler) RegisterExportRoutes(rg *gin.RouterGroup) {
	exports := rg.Group("/export", middleware.RequireAdmin())
	exports.GET("/csv", h.CSV)
	exports.GET("/json", h.JSON)
}
