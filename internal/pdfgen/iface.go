package pdfgen

import (
	"context"

	"github.com/billfold/billfold/internal/domain/company"
	"github.com/billfold/billfold/internal/domain/document"
	ierr "github.com/billfold/billfold/internal/errors"
	"github.com/billfold/billfold/internal/types"
)

// Renderer produces a paginated PDF artifact from a document record and the
// issuing company's profile
type Renderer interface {
	Render(ctx context.Context, in *RenderInput) (*Artifact, error)
}

// RenderInput carries everything one render call needs. It is assembled by
// the caller; the engine itself performs no reads against any store.
type RenderInput struct {
	Kind     types.DocumentType
	Document *document.DocumentRecord
	Company  *company.CompanyProfile

	// Payment is attached at render time for receipts only
	Payment *document.PaymentDetails

	// Logo is the pre-fetched embeddable asset, nil for a no-logo render.
	// Fetching happens before layout begins; see FetchLogo.
	Logo *LogoAsset
}

func (in *RenderInput) Validate() error {
	if err := in.Kind.Validate(); err != nil {
		return err
	}
	if in.Document == nil {
		return ierr.NewError("missing document record").
			WithHint("A document record is required to render").
			Mark(ierr.ErrValidation)
	}
	if in.Document.Status != "" {
		if err := in.Document.Status.Validate(); err != nil {
			return err
		}
	}
	return nil
}
