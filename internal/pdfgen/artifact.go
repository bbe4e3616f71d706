package pdfgen

import (
	"fmt"
	"time"

	"github.com/billfold/billfold/internal/types"
)

// Artifact is the finished multi-page PDF document plus the metadata callers
// use for naming, auditing and tests.
type Artifact struct {
	Kind      types.DocumentType
	Number    string
	PageCount int

	// Sections lists the section names emitted during assembly, in order.
	// Repeated table headers do not appear here.
	Sections []string

	// LineItemRows is the number of item rows drawn in the table
	LineItemRows int

	// TableHeaderCount is the number of times the table header row was
	// drawn: once, plus once per page the table flowed onto
	TableHeaderCount int

	data []byte
}

// Bytes returns the raw PDF bytes, for embedding or emailing rather than
// saving to disk
func (a *Artifact) Bytes() []byte {
	return a.data
}

// Size returns the artifact size in bytes
func (a *Artifact) Size() int {
	return len(a.data)
}

// Filename combines document kind, number and the current date
func (a *Artifact) Filename() string {
	return a.FilenameAt(time.Now())
}

// FilenameAt is Filename with an explicit date, for deterministic callers
func (a *Artifact) FilenameAt(t time.Time) string {
	return fmt.Sprintf("%s-%s-%s.pdf", a.Kind, a.Number, t.Format("2006-01-02"))
}

// HasSection reports whether a section was emitted during assembly
func (a *Artifact) HasSection(name string) bool {
	for _, s := range a.Sections {
		if s == name {
			return true
		}
	}
	return false
}

// ReceiptNumber derives a receipt number by prefixing the source invoice
// number, e.g. INV-2024-001 -> RCT-INV-2024-001
func ReceiptNumber(invoiceNumber string) string {
	return "RCT-" + invoiceNumber
}
