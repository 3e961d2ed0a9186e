package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/feedback-analyzer/internal/adapters/http/dto"
	"github.com/jsamuelsen/feedback-analyzer/internal/adapters/http/middleware"
	"github.com/jsamuelsen/feedback-analyzer/internal/app"
	"github.com/jsamuelsen/feedback-analyzer/internal/domain"
)

// screenshotField is the multipart part carrying the optional screenshot.
const screenshotField = "screenshot"

// FeedbackHandler serves feedback submission, listing and deletion.
type FeedbackHandler struct {
	service       *app.FeedbackService
	uploadsPrefix string
}

// NewFeedbackHandler creates a feedback handler. Screenshot references are
// rendered under uploadsPrefix, dto.DefaultUploadsPrefix when empty.
func NewFeedbackHandler(service *app.FeedbackService, uploadsPrefix string) *FeedbackHandler {
	if uploadsPrefix == "" {
		uploadsPrefix = dto.DefaultUploadsPrefix
	}

	return &FeedbackHandler{
		service:       service,
		uploadsPrefix: uploadsPrefix,
	}
}

// Submit handles POST /api/v1/feedback.
//
// @Summary Submit feedback
// @Tags feedback
// @Accept multipart/form-data
// @Produce json
// @Param text formData string true "Feedback text"
// @Param category formData string false "Category"
// @Param screenshot formData file false "Screenshot"
// @Success 201 {object} dto.FeedbackResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 413 {object} dto.ErrorResponse
// @Router /api/v1/feedback [post]
func (h *FeedbackHandler) Submit(c *gin.Context) {
	var req dto.SubmitFeedbackRequest
	if err := dto.BindFormAndValidate(c, &req); err != nil {
		dto.RespondWithBindError(c, err)
		return
	}

	in := app.SubmitInput{Text: req.Text, Category: req.Category}

	fh, err := c.FormFile(screenshotField)

	switch {
	case err == nil:
		file, openErr := fh.Open()
		if openErr != nil {
			dto.HandleError(c, openErr)
			return
		}
		defer file.Close()

		in.Screenshot = &app.Upload{Name: fh.Filename, Content: file}
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
	default:
		dto.RespondWithBindError(c, err)
		return
	}

	record, err := h.service.Submit(c.Request.Context(), in, middleware.GetPrincipal(c))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromFeedback(record, h.uploadsPrefix))
}

// List handles GET /api/v1/feedback, oldest first.
//
// @Summary List feedback
// @Tags feedback
// @Produce json
// @Param limit query int false "Page size (1-100)"
// @Param cursor query string false "Cursor from a previous page"
// @Success 200 {object} dto.PaginatedResponse[dto.FeedbackResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/feedback [get]
func (h *FeedbackHandler) List(c *gin.Context) {
	var req dto.PaginationRequest
	if err := dto.BindQueryAndValidate(c, &req); err != nil {
		dto.RespondWithBindError(c, err)
		return
	}

	after, err := req.After()
	if err != nil {
		dto.AbortWithCode(c, dto.ErrorCodeBadRequest, "invalid cursor")
		return
	}

	limit := req.GetLimit()

	records, err := h.service.List(c.Request.Context(), after, limit+1)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	items := dto.FromFeedbackList(records, h.uploadsPrefix)
	c.JSON(http.StatusOK, dto.NewPaginatedResponse(items, limit, func(r dto.FeedbackResponse) domain.FeedbackID {
		return r.ID
	}))
}

// Get handles GET /api/v1/feedback/:id.
func (h *FeedbackHandler) Get(c *gin.Context) {
	id, ok := feedbackID(c)
	if !ok {
		return
	}

	record, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromFeedback(record, h.uploadsPrefix))
}

// Delete handles DELETE /api/v1/feedback/:id. Admin only.
//
// @Summary Delete feedback
// @Tags feedback
// @Produce json
// @Param id path int true "Feedback ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/feedback/{id} [delete]
func (h *FeedbackHandler) Delete(c *gin.Context) {
	id, ok := feedbackID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Feedback deleted"})
}

// Stats handles GET /api/v1/stats.
func (h *FeedbackHandler) Stats(c *gin.Context) {
	report, err := h.service.Stats(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromReport(report))
}

// RegisterFeedbackRoutes registers the feedback and stats routes on rg.
func (h *FeedbackHandler) RegisterFeedbackRoutes(rg *gin.RouterGroup) {
	feedback := rg.Group("/feedback")
	feedback.POST("", h.Submit)
	feedback.GET("", h.List)
	feedback.GET("/:id", h.Get)
	feedback.DELETE("/:id", middleware.RequireAdmin(), h.Delete)

	rg.GET("/stats", h.Stats)
}

// feedbackID parses the :id path parameter, responding 400 when malformed.
func feedbackID(c *gin.Context) (domain.FeedbackID, bool) {
	id, err := domain.ParseFeedbackID(c.Param("id"))
	if err != nil {
		dto.HandleError(c, err)
		return 0, false
	}

	return id, true
}
