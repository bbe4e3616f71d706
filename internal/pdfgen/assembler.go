package pdfgen

import (
	"bytes"
	"context"
	"time"

	"github.com/billfold/billfold/internal/config"
	"github.com/billfold/billfold/internal/domain/company"
	ierr "github.com/billfold/billfold/internal/errors"
	"github.com/billfold/billfold/internal/logger"
	"github.com/billfold/billfold/internal/types"
	"github.com/jung-kurt/gofpdf"
)

// Section names recorded on the artifact, in emission order
const (
	SectionHeader        = "header"
	SectionCompanyInfo   = "company_info"
	SectionCustomerInfo  = "customer_info"
	SectionDates         = "dates"
	SectionLineItems     = "line_items"
	SectionTotals        = "totals"
	SectionPaymentInfo   = "payment_info"
	SectionNotes         = "notes"
	SectionContactFooter = "contact_footer"
)

const logoImageName = "company-logo"

// Engine assembles financial documents into paginated PDFs. It holds only
// immutable configuration; every render call builds its own cursor, template
// and PDF instance, so concurrent renders need no locking.
type Engine struct {
	cfg *config.Configuration
	log *logger.Logger
}

// NewEngine creates the document rendering engine
func NewEngine(cfg *config.Configuration, log *logger.Logger) Renderer {
	return &Engine{cfg: cfg, log: log}
}

// Render assembles the document sections in fixed order, each gated by the
// resolved template's visibility flags, paging through the layout cursor
// whenever a block would overflow. Data irregularities (missing dates,
// missing amounts, missing logo) degrade to documented fallbacks; only a
// structurally malformed template fails the call.
func (e *Engine) Render(ctx context.Context, in *RenderInput) (*Artifact, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	comp := in.Company
	if comp == nil {
		comp = &company.CompanyProfile{}
	}

	tpl := ResolveTemplate(DefaultTemplate(), comp.Branding)
	if err := tpl.Validate(); err != nil {
		return nil, err
	}

	geom := pageGeometry{
		width:  e.cfg.PDF.PageWidth,
		height: e.cfg.PDF.PageHeight,
		margin: e.cfg.PDF.Margin,
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: geom.width, Ht: geom.height},
	})
	// the cursor owns pagination; the backend must never break pages itself
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(geom.margin, geom.margin, geom.margin)
	pdf.AliasNbPages("")

	cur, err := newLayoutCursor(geom, nil)
	if err != nil {
		return nil, err
	}
	cur.onPageBreak = func(*layoutCursor) {
		pdf.AddPage()
	}

	r := &renderContext{
		pdf:  pdf,
		cur:  cur,
		tpl:  tpl,
		geom: geom,
		font: e.cfg.PDF.FontFamily,
		in:   in,
		comp: comp,
		now:  time.Now(),
	}

	if tpl.ShowFooter {
		pdf.SetFooterFunc(r.drawPageFooter)
	}

	pdf.AddPage()
	r.assemble()

	if pdf.Err() {
		return nil, ierr.WithError(pdf.Error()).
			WithHint("PDF backend failed").
			Mark(ierr.ErrSystem)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to serialize PDF").
			Mark(ierr.ErrSystem)
	}

	return &Artifact{
		Kind:             in.Kind,
		Number:           in.Document.Number,
		PageCount:        cur.pages(),
		Sections:         r.sections,
		LineItemRows:     r.rows,
		TableHeaderCount: r.tableHeaders,
		data:             buf.Bytes(),
	}, nil
}

// renderContext is the per-call state threaded through every emission step.
// It is created at the start of a render and discarded when it completes.
type renderContext struct {
	pdf  *gofpdf.Fpdf
	cur  *layoutCursor
	tpl  types.Template
	geom pageGeometry
	font string
	in   *RenderInput
	comp *company.CompanyProfile
	now  time.Time

	sections     []string
	rows         int
	tableHeaders int
}

func (r *renderContext) assemble() {
	doc := r.in.Document

	if r.tpl.HeaderStyle != types.HeaderStyleNone {
		r.renderHeader()
		r.mark(SectionHeader)
	}
	if r.tpl.ShowCompanyDetails && r.comp.Name != "" {
		r.renderCompanyInfo()
		r.mark(SectionCompanyInfo)
	}
	if r.tpl.ShowCustomerDetails {
		r.renderCustomerInfo()
		r.mark(SectionCustomerInfo)
	}
	if r.tpl.ShowDates {
		r.renderDates()
		r.mark(SectionDates)
	}
	if r.tpl.ShowLineItems {
		r.rows = r.renderLineItemsTable()
		r.mark(SectionLineItems)
	}
	if r.tpl.ShowTotals {
		r.renderTotals()
		r.mark(SectionTotals)
	}
	if r.tpl.ShowPaymentInfo && r.includePaymentInfo() {
		r.renderPaymentInfo()
		r.mark(SectionPaymentInfo)
	}
	if r.tpl.ShowNotes && (doc.Notes != "" || doc.Terms != "") {
		r.renderNotes()
		r.mark(SectionNotes)
	}
	if r.tpl.ShowFooter && r.hasContactDetails() {
		r.renderContactFooter()
		r.mark(SectionContactFooter)
	}
}

// includePaymentInfo applies the conditional-inclusion rule: invoices carry
// the payment block until they are paid, receipts always carry it, quotes
// never do.
func (r *renderContext) includePaymentInfo() bool {
	switch r.in.Kind {
	case types.DocumentTypeInvoice:
		return r.in.Document.Status != types.DocumentStatusPaid
	case types.DocumentTypeReceipt:
		return true
	default:
		return false
	}
}

func (r *renderContext) hasContactDetails() bool {
	return r.comp.Phone != "" || r.comp.Email != "" || r.comp.Website != ""
}

func (r *renderContext) mark(section string) {
	r.sections = append(r.sections, section)
}

func (r *renderContext) setTextColor(c RGB) {
	r.pdf.SetTextColor(int(c.R), int(c.G), int(c.B))
}

func (r *renderContext) setDrawColor(c RGB) {
	r.pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
}

func (r *renderContext) setFillColor(c RGB) {
	r.pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
}

func titleFor(kind types.DocumentType) string {
	switch kind {
	case types.DocumentTypeQuote:
		return "QUOTE"
	case types.DocumentTypeReceipt:
		return "RECEIPT"
	default:
		return "INVOICE"
	}
}

func recipientLabelFor(kind types.DocumentType) string {
	if kind == types.DocumentTypeReceipt {
		return "Paid By"
	}
	return "Bill To"
}

func secondaryDateLabelFor(kind types.DocumentType) string {
	switch kind {
	case types.DocumentTypeInvoice:
		return "Due Date"
	case types.DocumentTypeQuote:
		return "Valid Until"
	default:
		return ""
	}
}
