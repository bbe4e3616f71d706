package types

import (
	ierr "github.com/billfold/billfold/internal/errors"
	"github.com/samber/lo"
)

// DocumentType selects the labels and section set used when rendering a
// financial document. The layout algorithm is the same for every type.
type DocumentType string

const (
	DocumentTypeInvoice DocumentType = "invoice"
	DocumentTypeQuote   DocumentType = "quote"
	DocumentTypeReceipt DocumentType = "receipt"
)

func (t DocumentType) String() string {
	return string(t)
}

func (t DocumentType) Validate() error {
	allowed := []DocumentType{
		DocumentTypeInvoice,
		DocumentTypeQuote,
		DocumentTypeReceipt,
	}
	if !lo.Contains(allowed, t) {
		return ierr.NewError("invalid document type").
			WithHint("Please provide a valid document type").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// DocumentStatus represents the lifecycle state of a document
type DocumentStatus string

const (
	DocumentStatusDraft     DocumentStatus = "draft"
	DocumentStatusSent      DocumentStatus = "sent"
	DocumentStatusPaid      DocumentStatus = "paid"
	DocumentStatusOverdue   DocumentStatus = "overdue"
	DocumentStatusCancelled DocumentStatus = "cancelled"
)

func (s DocumentStatus) String() string {
	return string(s)
}

func (s DocumentStatus) Validate() error {
	allowed := []DocumentStatus{
		DocumentStatusDraft,
		DocumentStatusSent,
		DocumentStatusPaid,
		DocumentStatusOverdue,
		DocumentStatusCancelled,
	}
	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid document status").
			WithHint("Please provide a valid document status").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}
