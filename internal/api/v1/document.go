package v1

import (
	"fmt"
	"net/http"

	"github.com/billfold/billfold/internal/api/dto"
	ierr "github.com/billfold/billfold/internal/errors"
	"github.com/billfold/billfold/internal/logger"
	"github.com/billfold/billfold/internal/service"
	"github.com/gin-gonic/gin"
)

type DocumentHandler struct {
	service service.PDFService
	log     *logger.Logger
}

func NewDocumentHandler(service service.PDFService, log *logger.Logger) *DocumentHandler {
	return &DocumentHandler{service: service, log: log}
}

// @Summary Render a financial document
// @Description Renders an invoice, quote or receipt into a paginated PDF. Pass meta=true to receive artifact metadata as JSON instead of the PDF bytes.
// @Tags Documents
// @Accept json
// @Produce application/pdf
// @Param request body dto.RenderDocumentRequest true "Render payload"
// @Param meta query bool false "Return artifact metadata instead of the PDF"
// @Success 200 {file} binary
// @Router /documents/render [post]
func (h *DocumentHandler) RenderDocument(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.RenderDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	artifact, err := h.service.RenderDocument(ctx, &req)
	if err != nil {
		h.log.Error("Failed to render document", "error", err, "kind", req.Kind)
		c.Error(err)
		return
	}

	if c.Query("meta") == "true" {
		c.JSON(http.StatusOK, dto.NewRenderDocumentResponse(artifact))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename()))
	c.Data(http.StatusOK, "application/pdf", artifact.Bytes())
}
