package document

import (
	"time"

	"github.com/billfold/billfold/internal/types"
	"github.com/shopspring/decimal"
)

// DocumentRecord is the structured business record a render call works from.
// The engine trusts the recorded amounts and never recomputes them, except
// for the tax amount fallback when no explicit amount is present.
type DocumentRecord struct {
	Number       string
	Customer     Customer
	IssueDate    *time.Time
	DueDate      *time.Time
	LineItems    []LineItem
	Subtotal     decimal.Decimal
	TaxRate      decimal.Decimal
	TaxAmount    *decimal.Decimal
	Total        decimal.Decimal
	Notes        string
	Terms        string
	Currency     string
	Status       types.DocumentStatus
	PaymentLink  string
}

// Customer identifies the document recipient
type Customer struct {
	Name         string
	AddressLines []string
	Email        string
}

// LineItem is one row of a document's itemized charges. Order is significant
// and preserved by the renderer.
type LineItem struct {
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Amount      decimal.Decimal
}

// PaymentDetails carries the payment block attached to receipts at render
// time. It is never persisted by the engine.
type PaymentDetails struct {
	Method    string
	Reference string
	Notes     string
}

// EffectiveTaxAmount returns the explicit tax amount when recorded, else
// derives subtotal × rate / 100 rounded to two decimal places.
func (d *DocumentRecord) EffectiveTaxAmount() decimal.Decimal {
	if d.TaxAmount != nil {
		return *d.TaxAmount
	}
	return d.Subtotal.Mul(d.TaxRate).Div(decimal.NewFromInt(100)).Round(2)
}

// EffectiveIssueDate substitutes the current date when the record has none
func (d *DocumentRecord) EffectiveIssueDate(now time.Time) time.Time {
	if d.IssueDate != nil {
		return *d.IssueDate
	}
	return now
}
