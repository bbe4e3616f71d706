package types

import (
	ierr "github.com/billfold/billfold/internal/errors"
	"github.com/samber/lo"
)

// HeaderStyle controls how the document header band is drawn
type HeaderStyle string

const (
	// HeaderStyleMinimal draws the header as plain text on a white background
	HeaderStyleMinimal HeaderStyle = "minimal"
	// HeaderStyleColored draws the header on a filled band in the primary color
	HeaderStyleColored HeaderStyle = "colored"
	// HeaderStyleNone suppresses the header band entirely
	HeaderStyleNone HeaderStyle = "none"
)

func (h HeaderStyle) String() string {
	return string(h)
}

func (h HeaderStyle) Validate() error {
	allowed := []HeaderStyle{
		HeaderStyleMinimal,
		HeaderStyleColored,
		HeaderStyleNone,
	}
	if !lo.Contains(allowed, h) {
		return ierr.NewError("invalid header style").
			WithHint("Please provide a valid header style").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// LogoPosition controls which side of the header the logo is placed on
type LogoPosition string

const (
	LogoPositionLeft  LogoPosition = "left"
	LogoPositionRight LogoPosition = "right"
)

// Template is the merged set of layout, visibility and color flags that
// controls how a document renders. It is built once per render call and is
// read-only afterwards.
type Template struct {
	HeaderStyle HeaderStyle
	UseColor    bool
	Monochrome  bool

	// Colors are hex strings ("#RRGGBB"); invalid values fall back to
	// engine defaults at resolution time.
	PrimaryColor    string
	HeaderTextColor string
	BodyTextColor   string
	AccentTextColor string
	FooterTextColor string

	ShowCompanyDetails  bool
	ShowCustomerDetails bool
	ShowDates           bool
	ShowLineItems       bool
	ShowTotals          bool
	ShowPaymentInfo     bool
	ShowNotes           bool
	ShowFooter          bool

	// Spacing constants in points
	SectionSpacing float64
	LineSpacing    float64
	RowHeight      float64

	LogoWidth    float64
	LogoPosition LogoPosition
}

// TemplateOverride is the company-level override object. Nil fields keep
// the default template's value.
type TemplateOverride struct {
	HeaderStyle *HeaderStyle `json:"header_style,omitempty"`
	UseColor    *bool        `json:"use_color,omitempty"`
	Monochrome  *bool        `json:"monochrome,omitempty"`

	PrimaryColor    *string `json:"primary_color,omitempty"`
	HeaderTextColor *string `json:"header_text_color,omitempty"`
	BodyTextColor   *string `json:"body_text_color,omitempty"`
	AccentTextColor *string `json:"accent_text_color,omitempty"`
	FooterTextColor *string `json:"footer_text_color,omitempty"`

	ShowCompanyDetails  *bool `json:"show_company_details,omitempty"`
	ShowCustomerDetails *bool `json:"show_customer_details,omitempty"`
	ShowDates           *bool `json:"show_dates,omitempty"`
	ShowLineItems       *bool `json:"show_line_items,omitempty"`
	ShowTotals          *bool `json:"show_totals,omitempty"`
	ShowPaymentInfo     *bool `json:"show_payment_info,omitempty"`
	ShowNotes           *bool `json:"show_notes,omitempty"`
	ShowFooter          *bool `json:"show_footer,omitempty"`

	SectionSpacing *float64 `json:"section_spacing,omitempty"`
	LineSpacing    *float64 `json:"line_spacing,omitempty"`
	RowHeight      *float64 `json:"row_height,omitempty"`

	LogoWidth    *float64      `json:"logo_width,omitempty"`
	LogoPosition *LogoPosition `json:"logo_position,omitempty"`
}

// Validate checks the structural layout constants of a resolved template.
// A template failing this check is an engine misconfiguration, not bad
// business data, so callers treat it as fatal.
func (t Template) Validate() error {
	if t.SectionSpacing <= 0 || t.LineSpacing <= 0 || t.RowHeight <= 0 {
		return ierr.NewError("unresolvable template layout constants").
			WithHint("Template spacing constants must be positive").
			WithReportableDetails(map[string]any{
				"section_spacing": t.SectionSpacing,
				"line_spacing":    t.LineSpacing,
				"row_height":      t.RowHeight,
			}).
			Mark(ierr.ErrConfiguration)
	}
	if err := t.HeaderStyle.Validate(); err != nil {
		return err
	}
	return nil
}
