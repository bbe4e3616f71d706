package pdfgen

import (
	"testing"

	"github.com/billfold/billfold/internal/domain/company"
	"github.com/billfold/billfold/internal/types"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestResolveTemplateNoBranding(t *testing.T) {
	tpl := ResolveTemplate(DefaultTemplate(), nil)
	assert.Equal(t, DefaultTemplate(), tpl)
	assert.NoError(t, tpl.Validate())
}

func TestResolveTemplateEmptyOverride(t *testing.T) {
	branding := &company.Branding{Template: &types.TemplateOverride{}}
	tpl := ResolveTemplate(DefaultTemplate(), branding)
	assert.Equal(t, DefaultTemplate(), tpl)
}

func TestResolveTemplateDeterministic(t *testing.T) {
	branding := &company.Branding{
		PrimaryColor: "#ff0000",
		Template: &types.TemplateOverride{
			HeaderStyle: lo.ToPtr(types.HeaderStyleMinimal),
			ShowNotes:   lo.ToPtr(false),
			RowHeight:   lo.ToPtr(24.0),
		},
	}
	first := ResolveTemplate(DefaultTemplate(), branding)
	second := ResolveTemplate(DefaultTemplate(), branding)
	assert.Equal(t, first, second)
}

func TestResolveTemplatePrimaryColorFallback(t *testing.T) {
	// no branding at all: default accent
	tpl := ResolveTemplate(DefaultTemplate(), nil)
	assert.Equal(t, defaultAccentColor, tpl.PrimaryColor)

	// brand color without a template override
	tpl = ResolveTemplate(DefaultTemplate(), &company.Branding{PrimaryColor: "#ff0000"})
	assert.Equal(t, "#ff0000", tpl.PrimaryColor)

	// template-level color wins over the brand color
	tpl = ResolveTemplate(DefaultTemplate(), &company.Branding{
		PrimaryColor: "#ff0000",
		Template: &types.TemplateOverride{
			PrimaryColor: lo.ToPtr("#00ff00"),
		},
	})
	assert.Equal(t, "#00ff00", tpl.PrimaryColor)
}

func TestResolveTemplateOverrideFields(t *testing.T) {
	branding := &company.Branding{
		Template: &types.TemplateOverride{
			HeaderStyle:     lo.ToPtr(types.HeaderStyleNone),
			UseColor:        lo.ToPtr(false),
			ShowLineItems:   lo.ToPtr(false),
			ShowPaymentInfo: lo.ToPtr(false),
			SectionSpacing:  lo.ToPtr(20.0),
			LogoPosition:    lo.ToPtr(types.LogoPositionLeft),
		},
	}
	tpl := ResolveTemplate(DefaultTemplate(), branding)

	assert.Equal(t, types.HeaderStyleNone, tpl.HeaderStyle)
	assert.False(t, tpl.UseColor)
	assert.False(t, tpl.ShowLineItems)
	assert.False(t, tpl.ShowPaymentInfo)
	assert.Equal(t, 20.0, tpl.SectionSpacing)
	assert.Equal(t, types.LogoPositionLeft, tpl.LogoPosition)

	// untouched fields keep their defaults
	assert.True(t, tpl.ShowTotals)
	assert.Equal(t, DefaultTemplate().RowHeight, tpl.RowHeight)
}

func TestMonochromeTransform(t *testing.T) {
	branding := &company.Branding{
		PrimaryColor: "#ff0000",
		Template: &types.TemplateOverride{
			Monochrome: lo.ToPtr(true),
		},
	}
	tpl := ResolveTemplate(DefaultTemplate(), branding)

	for name, hex := range map[string]string{
		"primary": tpl.PrimaryColor,
		"header":  tpl.HeaderTextColor,
		"body":    tpl.BodyTextColor,
		"accent":  tpl.AccentTextColor,
		"footer":  tpl.FooterTextColor,
	} {
		c, ok := parseHexColor(hex)
		assert.True(t, ok, name)
		assert.Equal(t, c.R, c.G, name)
		assert.Equal(t, c.G, c.B, name)
	}

	assert.False(t, tpl.UseColor)
	assert.Equal(t, types.HeaderStyleMinimal, tpl.HeaderStyle)

	// applying the transform again is a no-op
	assert.Equal(t, tpl, monochromeTransform(tpl))
}

func TestMonochromeKeepsExplicitHeaderStyle(t *testing.T) {
	branding := &company.Branding{
		Template: &types.TemplateOverride{
			Monochrome:  lo.ToPtr(true),
			HeaderStyle: lo.ToPtr(types.HeaderStyleNone),
		},
	}
	tpl := ResolveTemplate(DefaultTemplate(), branding)
	assert.Equal(t, types.HeaderStyleNone, tpl.HeaderStyle)
}

func TestTemplateValidate(t *testing.T) {
	tpl := DefaultTemplate()
	assert.NoError(t, tpl.Validate())

	tpl.SectionSpacing = 0
	assert.Error(t, tpl.Validate())

	tpl = DefaultTemplate()
	tpl.HeaderStyle = "gradient"
	assert.Error(t, tpl.Validate())
}
