package pdfgen

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/billfold/billfold/internal/config"
	"github.com/billfold/billfold/internal/domain/company"
	"github.com/billfold/billfold/internal/domain/document"
	ierr "github.com/billfold/billfold/internal/errors"
	"github.com/billfold/billfold/internal/logger"
	"github.com/billfold/billfold/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) Renderer {
	t.Helper()
	return NewEngine(config.GetDefaultConfig(), logger.L)
}

func invoiceRecord(items int) *document.DocumentRecord {
	issue := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	due := issue.AddDate(0, 1, 0)

	lineItems := make([]document.LineItem, 0, items)
	for i := 0; i < items; i++ {
		lineItems = append(lineItems, document.LineItem{
			Description: fmt.Sprintf("Consulting block %d", i+1),
			Quantity:    decimal.NewFromInt(1),
			UnitPrice:   decimal.NewFromInt(100),
			Amount:      decimal.NewFromInt(100),
		})
	}

	subtotal := decimal.NewFromInt(int64(items) * 100)
	return &document.DocumentRecord{
		Number:    "INV-2024-001",
		Customer:  document.Customer{Name: "Acme Corp", AddressLines: []string{"1 Main St", "Springfield"}},
		IssueDate: &issue,
		DueDate:   &due,
		LineItems: lineItems,
		Subtotal:  subtotal,
		TaxRate:   decimal.NewFromInt(21),
		Total:     subtotal.Mul(decimal.RequireFromString("1.21")).Round(2),
		Currency:  "usd",
		Status:    types.DocumentStatusSent,
		Notes:     "Thank you for your business.",
	}
}

func companyProfile() *company.CompanyProfile {
	return &company.CompanyProfile{
		Name: "Billfold GmbH",
		Address: company.Address{
			Street:     "Invalidenstr. 1",
			City:       "Berlin",
			PostalCode: "10115",
			Country:    "Germany",
		},
		Phone:   "+49 30 1234567",
		Email:   "billing@billfold.example",
		Website: "billfold.example",
	}
}

func TestRenderSingleItemInvoice(t *testing.T) {
	engine := newTestEngine(t)

	artifact, err := engine.Render(context.Background(), &RenderInput{
		Kind:     types.DocumentTypeInvoice,
		Document: invoiceRecord(1),
		Company:  companyProfile(),
	})
	require.NoError(t, err)

	assert.Equal(t, types.DocumentTypeInvoice, artifact.Kind)
	assert.Equal(t, "INV-2024-001", artifact.Number)
	assert.Equal(t, 1, artifact.PageCount)
	assert.Equal(t, 1, artifact.LineItemRows)
	assert.Equal(t, 1, artifact.TableHeaderCount)
	assert.Greater(t, artifact.Size(), 0)

	assert.Equal(t, []string{
		SectionHeader,
		SectionCompanyInfo,
		SectionCustomerInfo,
		SectionDates,
		SectionLineItems,
		SectionTotals,
		SectionPaymentInfo,
		SectionNotes,
		SectionContactFooter,
	}, artifact.Sections)
}

func TestRenderManyItemsFlowsAcrossPages(t *testing.T) {
	engine := newTestEngine(t)

	artifact, err := engine.Render(context.Background(), &RenderInput{
		Kind:     types.DocumentTypeInvoice,
		Document: invoiceRecord(60),
		Company:  companyProfile(),
	})
	require.NoError(t, err)

	assert.GreaterOrEqual(t, artifact.PageCount, 2)
	assert.Equal(t, 60, artifact.LineItemRows)

	// the column header repeats on every page the table reaches
	assert.GreaterOrEqual(t, artifact.TableHeaderCount, 2)

	// flowing across pages does not duplicate the section itself
	assert.Equal(t, 1, lo.Count(artifact.Sections, SectionLineItems))
}

func TestRenderWithoutCompany(t *testing.T) {
	engine := newTestEngine(t)

	artifact, err := engine.Render(context.Background(), &RenderInput{
		Kind:     types.DocumentTypeInvoice,
		Document: invoiceRecord(1),
	})
	require.NoError(t, err)

	assert.False(t, artifact.HasSection(SectionCompanyInfo))
	assert.False(t, artifact.HasSection(SectionContactFooter))
	assert.True(t, artifact.HasSection(SectionLineItems))
}

func TestRenderPaymentInfoInclusion(t *testing.T) {
	engine := newTestEngine(t)

	render := func(kind types.DocumentType, status types.DocumentStatus, payment *document.PaymentDetails) *Artifact {
		doc := invoiceRecord(1)
		doc.Status = status
		artifact, err := engine.Render(context.Background(), &RenderInput{
			Kind:     kind,
			Document: doc,
			Company:  companyProfile(),
			Payment:  payment,
		})
		require.NoError(t, err)
		return artifact
	}

	// unpaid invoices carry the payment block
	assert.True(t, render(types.DocumentTypeInvoice, types.DocumentStatusSent, nil).HasSection(SectionPaymentInfo))
	assert.True(t, render(types.DocumentTypeInvoice, types.DocumentStatusOverdue, nil).HasSection(SectionPaymentInfo))

	// paid invoices drop it
	assert.False(t, render(types.DocumentTypeInvoice, types.DocumentStatusPaid, nil).HasSection(SectionPaymentInfo))

	// quotes never carry it
	assert.False(t, render(types.DocumentTypeQuote, types.DocumentStatusDraft, nil).HasSection(SectionPaymentInfo))

	// receipts always do
	payment := &document.PaymentDetails{Method: "card", Reference: "ch_123"}
	assert.True(t, render(types.DocumentTypeReceipt, types.DocumentStatusPaid, payment).HasSection(SectionPaymentInfo))
}

func TestRenderDeterministicMetadata(t *testing.T) {
	engine := newTestEngine(t)

	in := func() *RenderInput {
		return &RenderInput{
			Kind:     types.DocumentTypeInvoice,
			Document: invoiceRecord(10),
			Company:  companyProfile(),
		}
	}

	first, err := engine.Render(context.Background(), in())
	require.NoError(t, err)
	second, err := engine.Render(context.Background(), in())
	require.NoError(t, err)

	assert.Equal(t, first.PageCount, second.PageCount)
	assert.Equal(t, first.Sections, second.Sections)
	assert.Equal(t, first.LineItemRows, second.LineItemRows)
	assert.Equal(t, first.TableHeaderCount, second.TableHeaderCount)
}

func TestRenderSectionVisibilityOverrides(t *testing.T) {
	engine := newTestEngine(t)

	comp := companyProfile()
	comp.Branding = &company.Branding{
		Template: &types.TemplateOverride{
			HeaderStyle:   lo.ToPtr(types.HeaderStyleNone),
			ShowLineItems: lo.ToPtr(false),
			ShowNotes:     lo.ToPtr(false),
		},
	}

	artifact, err := engine.Render(context.Background(), &RenderInput{
		Kind:     types.DocumentTypeInvoice,
		Document: invoiceRecord(5),
		Company:  comp,
	})
	require.NoError(t, err)

	assert.False(t, artifact.HasSection(SectionHeader))
	assert.False(t, artifact.HasSection(SectionLineItems))
	assert.False(t, artifact.HasSection(SectionNotes))
	assert.Equal(t, 0, artifact.LineItemRows)
	assert.Equal(t, 0, artifact.TableHeaderCount)
	assert.True(t, artifact.HasSection(SectionTotals))
}

func TestRenderMonochrome(t *testing.T) {
	engine := newTestEngine(t)

	comp := companyProfile()
	comp.Branding = &company.Branding{
		PrimaryColor: "#ff0000",
		Template: &types.TemplateOverride{
			Monochrome: lo.ToPtr(true),
		},
	}

	artifact, err := engine.Render(context.Background(), &RenderInput{
		Kind:     types.DocumentTypeReceipt,
		Document: invoiceRecord(3),
		Company:  comp,
	})
	require.NoError(t, err)
	assert.Greater(t, artifact.Size(), 0)
}

func TestRenderWithLogo(t *testing.T) {
	engine := newTestEngine(t)

	artifact, err := engine.Render(context.Background(), &RenderInput{
		Kind:     types.DocumentTypeInvoice,
		Document: invoiceRecord(1),
		Company:  companyProfile(),
		Logo: &LogoAsset{
			Data:   pngBytes(t, 120, 40),
			Format: "PNG",
			Width:  120,
			Height: 40,
		},
	})
	require.NoError(t, err)
	assert.True(t, artifact.HasSection(SectionHeader))
	assert.Greater(t, artifact.Size(), 0)
}

func TestRenderEmptyLineItems(t *testing.T) {
	engine := newTestEngine(t)

	doc := invoiceRecord(0)
	artifact, err := engine.Render(context.Background(), &RenderInput{
		Kind:     types.DocumentTypeInvoice,
		Document: doc,
		Company:  companyProfile(),
	})
	require.NoError(t, err)

	// an empty list still renders the column header
	assert.True(t, artifact.HasSection(SectionLineItems))
	assert.Equal(t, 0, artifact.LineItemRows)
	assert.Equal(t, 1, artifact.TableHeaderCount)
}

func TestRenderInvalidKind(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.Render(context.Background(), &RenderInput{
		Kind:     "memo",
		Document: invoiceRecord(1),
	})
	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
}

func TestRenderMissingDocument(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.Render(context.Background(), &RenderInput{Kind: types.DocumentTypeInvoice})
	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
}

func TestRenderBrokenTemplateIsFatal(t *testing.T) {
	engine := newTestEngine(t)

	comp := companyProfile()
	comp.Branding = &company.Branding{
		Template: &types.TemplateOverride{
			RowHeight: lo.ToPtr(0.0),
		},
	}

	_, err := engine.Render(context.Background(), &RenderInput{
		Kind:     types.DocumentTypeInvoice,
		Document: invoiceRecord(1),
		Company:  comp,
	})
	require.Error(t, err)
	assert.True(t, ierr.IsConfiguration(err))
}
