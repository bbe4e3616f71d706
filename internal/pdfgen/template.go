package pdfgen

import (
	"github.com/billfold/billfold/internal/domain/company"
	"github.com/billfold/billfold/internal/types"
)

// Engine default palette and layout constants. These are the values a
// company with no branding renders with.
const (
	defaultAccentColor = "#2563eb"
	defaultHeaderText  = "#111827"
	defaultBodyText    = "#1f2937"
	defaultFooterText  = "#6b7280"
)

// DefaultTemplate returns the hard-coded base template. Overrides are merged
// on top of a fresh copy per render call; there is no shared template state.
func DefaultTemplate() types.Template {
	return types.Template{
		HeaderStyle: types.HeaderStyleColored,
		UseColor:    true,
		Monochrome:  false,

		PrimaryColor:    defaultAccentColor,
		HeaderTextColor: defaultHeaderText,
		BodyTextColor:   defaultBodyText,
		AccentTextColor: defaultAccentColor,
		FooterTextColor: defaultFooterText,

		ShowCompanyDetails:  true,
		ShowCustomerDetails: true,
		ShowDates:           true,
		ShowLineItems:       true,
		ShowTotals:          true,
		ShowPaymentInfo:     true,
		ShowNotes:           true,
		ShowFooter:          true,

		SectionSpacing: 14,
		LineSpacing:    12,
		RowHeight:      18,

		LogoWidth:    90,
		LogoPosition: types.LogoPositionRight,
	}
}

// ResolveTemplate merges the company's override object on top of the default
// template, field by field. Absent override fields keep the default value.
// The effective primary color follows a three-level fallback chain: the
// override's template-level color, then the company's general brand color,
// then the default accent. Resolution is deterministic: identical inputs
// always produce identical templates.
func ResolveTemplate(defaults types.Template, branding *company.Branding) types.Template {
	tpl := defaults

	if branding != nil {
		if branding.PrimaryColor != "" {
			tpl.PrimaryColor = branding.PrimaryColor
		}
		if o := branding.Template; o != nil {
			applyOverride(&tpl, o)
		}
	}

	if tpl.Monochrome {
		tpl = monochromeTransform(tpl)
	}

	return tpl
}

func applyOverride(tpl *types.Template, o *types.TemplateOverride) {
	if o.HeaderStyle != nil {
		tpl.HeaderStyle = *o.HeaderStyle
	}
	if o.UseColor != nil {
		tpl.UseColor = *o.UseColor
	}
	if o.Monochrome != nil {
		tpl.Monochrome = *o.Monochrome
	}

	if o.PrimaryColor != nil {
		tpl.PrimaryColor = *o.PrimaryColor
	}
	if o.HeaderTextColor != nil {
		tpl.HeaderTextColor = *o.HeaderTextColor
	}
	if o.BodyTextColor != nil {
		tpl.BodyTextColor = *o.BodyTextColor
	}
	if o.AccentTextColor != nil {
		tpl.AccentTextColor = *o.AccentTextColor
	}
	if o.FooterTextColor != nil {
		tpl.FooterTextColor = *o.FooterTextColor
	}

	if o.ShowCompanyDetails != nil {
		tpl.ShowCompanyDetails = *o.ShowCompanyDetails
	}
	if o.ShowCustomerDetails != nil {
		tpl.ShowCustomerDetails = *o.ShowCustomerDetails
	}
	if o.ShowDates != nil {
		tpl.ShowDates = *o.ShowDates
	}
	if o.ShowLineItems != nil {
		tpl.ShowLineItems = *o.ShowLineItems
	}
	if o.ShowTotals != nil {
		tpl.ShowTotals = *o.ShowTotals
	}
	if o.ShowPaymentInfo != nil {
		tpl.ShowPaymentInfo = *o.ShowPaymentInfo
	}
	if o.ShowNotes != nil {
		tpl.ShowNotes = *o.ShowNotes
	}
	if o.ShowFooter != nil {
		tpl.ShowFooter = *o.ShowFooter
	}

	if o.SectionSpacing != nil {
		tpl.SectionSpacing = *o.SectionSpacing
	}
	if o.LineSpacing != nil {
		tpl.LineSpacing = *o.LineSpacing
	}
	if o.RowHeight != nil {
		tpl.RowHeight = *o.RowHeight
	}

	if o.LogoWidth != nil {
		tpl.LogoWidth = *o.LogoWidth
	}
	if o.LogoPosition != nil {
		tpl.LogoPosition = *o.LogoPosition
	}
}

// monochromeTransform derives the grayscale form of a template. Every color
// field is forced to an equal-channel gray and colored header rendering is
// disabled. The transform is pure, total and idempotent.
func monochromeTransform(tpl types.Template) types.Template {
	out := tpl

	out.PrimaryColor = grayHex(tpl.PrimaryColor, defaultAccentColor)
	out.HeaderTextColor = grayHex(tpl.HeaderTextColor, defaultHeaderText)
	out.BodyTextColor = grayHex(tpl.BodyTextColor, defaultBodyText)
	out.AccentTextColor = grayHex(tpl.AccentTextColor, defaultAccentColor)
	out.FooterTextColor = grayHex(tpl.FooterTextColor, defaultFooterText)

	out.UseColor = false
	if out.HeaderStyle == types.HeaderStyleColored {
		out.HeaderStyle = types.HeaderStyleMinimal
	}

	return out
}

func grayHex(hex string, fallback string) string {
	return resolveColor(hex, fallback).Grayscale().Hex()
}
