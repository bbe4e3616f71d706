package dto

import (
	"time"

	"github.com/billfold/billfold/internal/domain/company"
	"github.com/billfold/billfold/internal/domain/document"
	"github.com/billfold/billfold/internal/pdfgen"
	"github.com/billfold/billfold/internal/types"
	"github.com/billfold/billfold/internal/validator"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// RenderDocumentRequest is the full render payload: the business record, the
// issuing company's profile and, for receipts, the payment details attached
// at render time.
type RenderDocumentRequest struct {
	Kind           types.DocumentType      `json:"kind" validate:"required"`
	Document       DocumentPayload         `json:"document" validate:"required"`
	Company        *CompanyPayload         `json:"company,omitempty"`
	PaymentDetails *PaymentDetailsPayload  `json:"payment_details,omitempty"`
}

type DocumentPayload struct {
	Number       string               `json:"number" validate:"required"`
	Customer     CustomerPayload      `json:"customer"`
	IssueDate    *time.Time           `json:"issue_date,omitempty"`
	DueDate      *time.Time           `json:"due_date,omitempty"`
	LineItems    []LineItemPayload    `json:"line_items"`
	Subtotal     decimal.Decimal      `json:"subtotal"`
	TaxRate      decimal.Decimal      `json:"tax_rate"`
	TaxAmount    *decimal.Decimal     `json:"tax_amount,omitempty"`
	Total        decimal.Decimal      `json:"total"`
	Notes        string               `json:"notes,omitempty"`
	Terms        string               `json:"terms,omitempty"`
	Currency     string               `json:"currency" validate:"omitempty,len=3"`
	Status       types.DocumentStatus `json:"status,omitempty"`
	PaymentLink  string               `json:"payment_link,omitempty"`
}

type CustomerPayload struct {
	Name         string   `json:"name"`
	AddressLines []string `json:"address_lines,omitempty"`
	Email        string   `json:"email,omitempty"`
}

type LineItemPayload struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
}

type CompanyPayload struct {
	Name     string           `json:"name"`
	Address  AddressPayload   `json:"address"`
	Phone    string           `json:"phone,omitempty"`
	Email    string           `json:"email,omitempty"`
	Website  string           `json:"website,omitempty"`
	Branding *BrandingPayload `json:"branding,omitempty"`
}

type AddressPayload struct {
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country,omitempty"`
}

type BrandingPayload struct {
	LogoURL      string                  `json:"logo_url,omitempty"`
	PrimaryColor string                  `json:"primary_color,omitempty"`
	Template     *types.TemplateOverride `json:"template,omitempty"`
}

type PaymentDetailsPayload struct {
	Method    string `json:"method,omitempty"`
	Reference string `json:"reference,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

func (r *RenderDocumentRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if err := r.Kind.Validate(); err != nil {
		return err
	}
	if r.Document.Status != "" {
		if err := r.Document.Status.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ToRenderInput maps the payload onto the engine's domain input
func (r *RenderDocumentRequest) ToRenderInput() *pdfgen.RenderInput {
	in := &pdfgen.RenderInput{
		Kind:     r.Kind,
		Document: r.Document.toDomain(),
	}

	if r.Company != nil {
		in.Company = r.Company.toDomain()
	}
	if r.PaymentDetails != nil {
		in.Payment = &document.PaymentDetails{
			Method:    r.PaymentDetails.Method,
			Reference: r.PaymentDetails.Reference,
			Notes:     r.PaymentDetails.Notes,
		}
	}

	return in
}

func (p DocumentPayload) toDomain() *document.DocumentRecord {
	return &document.DocumentRecord{
		Number: p.Number,
		Customer: document.Customer{
			Name:         p.Customer.Name,
			AddressLines: p.Customer.AddressLines,
			Email:        p.Customer.Email,
		},
		IssueDate: p.IssueDate,
		DueDate:   p.DueDate,
		LineItems: lo.Map(p.LineItems, func(item LineItemPayload, _ int) document.LineItem {
			return document.LineItem{
				Description: item.Description,
				Quantity:    item.Quantity,
				UnitPrice:   item.UnitPrice,
				Amount:      item.Amount,
			}
		}),
		Subtotal:    p.Subtotal,
		TaxRate:     p.TaxRate,
		TaxAmount:   p.TaxAmount,
		Total:       p.Total,
		Notes:       p.Notes,
		Terms:       p.Terms,
		Currency:    p.Currency,
		Status:      p.Status,
		PaymentLink: p.PaymentLink,
	}
}

func (p CompanyPayload) toDomain() *company.CompanyProfile {
	profile := &company.CompanyProfile{
		Name: p.Name,
		Address: company.Address{
			Street:     p.Address.Street,
			City:       p.Address.City,
			State:      p.Address.State,
			PostalCode: p.Address.PostalCode,
			Country:    p.Address.Country,
		},
		Phone:   p.Phone,
		Email:   p.Email,
		Website: p.Website,
	}
	if p.Branding != nil {
		profile.Branding = &company.Branding{
			LogoURL:      p.Branding.LogoURL,
			PrimaryColor: p.Branding.PrimaryColor,
			Template:     p.Branding.Template,
		}
	}
	return profile
}

// RenderDocumentResponse is the metadata view of a rendered artifact,
// returned when the caller asks for meta instead of the PDF bytes
type RenderDocumentResponse struct {
	FileName  string   `json:"file_name"`
	Kind      string   `json:"kind"`
	Number    string   `json:"number"`
	PageCount int      `json:"page_count"`
	SizeBytes int      `json:"size_bytes"`
	Sections  []string `json:"sections"`
}

func NewRenderDocumentResponse(a *pdfgen.Artifact) *RenderDocumentResponse {
	return &RenderDocumentResponse{
		FileName:  a.Filename(),
		Kind:      a.Kind.String(),
		Number:    a.Number,
		PageCount: a.PageCount,
		SizeBytes: a.Size(),
		Sections:  a.Sections,
	}
}
