package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/feedback-analyzer/internal/adapters/http/dto"
	"github.com/jsamuelsen/feedback-analyzer/internal/ports"
)

// UploadsHandler serves stored screenshots.
type UploadsHandler struct {
	store ports.AttachmentStore
}

// NewUploadsHandler creates an uploads handler.
func NewUploadsHandler(store ports.AttachmentStore) *UploadsHandler {
	return &UploadsHandler{store: store}
}

// Serve handles GET /uploads/:name. Names that do not resolve to a stored
// file, including traversal attempts, are 404.
func (h *UploadsHandler) Serve(c *gin.Context) {
	p, err := h.store.Path(c.Request.Context(), c.Param("name"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Header("X-Content-Type-Options", "nosniff")
	c.File(p)
}

// RegisterUploadRoutes registers the file route under prefix on engine.
func (h *UploadsHandler) RegisterUploadRoutes(engine *gin.Engine, prefix string) {
	if prefix == "" {
		prefix = dto.DefaultUploadsPrefix
	}

	engine.GET(prefix+"/:name", h.Serve)
}
