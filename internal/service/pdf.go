package service

import (
	"context"
	"time"

	"github.com/billfold/billfold/internal/api/dto"
	"github.com/billfold/billfold/internal/config"
	"github.com/billfold/billfold/internal/httpclient"
	"github.com/billfold/billfold/internal/logger"
	"github.com/billfold/billfold/internal/pdfgen"
	"github.com/billfold/billfold/internal/types"
)

// PDFService renders financial documents into paginated PDF artifacts
type PDFService interface {
	RenderDocument(ctx context.Context, req *dto.RenderDocumentRequest) (*pdfgen.Artifact, error)
}

type pdfService struct {
	cfg    *config.Configuration
	engine pdfgen.Renderer
	client httpclient.Client
	log    *logger.Logger
}

// NewPDFService creates a new PDF rendering service
func NewPDFService(
	cfg *config.Configuration,
	engine pdfgen.Renderer,
	client httpclient.Client,
	log *logger.Logger,
) PDFService {
	return &pdfService{
		cfg:    cfg,
		engine: engine,
		client: client,
		log:    log,
	}
}

// RenderDocument validates the payload, resolves the logo asset and hands
// the assembled input to the engine. The logo fetch is awaited before layout
// begins and is bounded by the configured timeout; a failed fetch degrades
// to a no-logo render and is logged as a warning, never surfaced as an
// error.
func (s *pdfService) RenderDocument(ctx context.Context, req *dto.RenderDocumentRequest) (*pdfgen.Artifact, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	in := req.ToRenderInput()

	if in.Company != nil && in.Company.Branding != nil && in.Company.Branding.LogoURL != "" {
		fetchCtx, cancel := context.WithTimeout(ctx, s.cfg.Assets.LogoFetchTimeout)
		defer cancel()
		in.Logo = pdfgen.FetchLogo(fetchCtx, s.client, in.Company.Branding.LogoURL, s.log)
	}

	renderID := types.GenerateUUIDWithPrefix(types.UUID_PREFIX_RENDER)
	start := time.Now()

	artifact, err := s.engine.Render(ctx, in)
	if err != nil {
		return nil, err
	}

	s.log.Infow("rendered document",
		"render_id", renderID,
		"kind", artifact.Kind,
		"number", artifact.Number,
		"pages", artifact.PageCount,
		"size_bytes", artifact.Size(),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return artifact, nil
}
