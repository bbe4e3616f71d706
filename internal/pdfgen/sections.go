package pdfgen

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/billfold/billfold/internal/types"
	"github.com/jung-kurt/gofpdf"
)

const (
	headerHeight = 64.0
	dateFormat   = "Jan 02, 2006"
)

func (r *renderContext) renderHeader() {
	y := r.cur.advance(headerHeight)

	colored := r.tpl.HeaderStyle == types.HeaderStyleColored && r.tpl.UseColor
	primary := resolveColor(r.tpl.PrimaryColor, defaultAccentColor)

	if colored {
		r.setFillColor(primary)
		r.pdf.Rect(0, 0, r.geom.width, y+headerHeight-10, "F")
		r.setTextColor(RGB{R: 255, G: 255, B: 255})
	} else {
		r.setTextColor(resolveColor(r.tpl.HeaderTextColor, defaultHeaderText))
	}

	// the logo shifts the title to the free side; with no logo the title
	// sits at the margin (the no-logo baseline)
	titleX := r.geom.margin
	titleAlign := "L"
	if r.in.Logo != nil {
		logoW := r.tpl.LogoWidth
		logoH := logoW
		if r.in.Logo.Width > 0 {
			logoH = logoW * float64(r.in.Logo.Height) / float64(r.in.Logo.Width)
		}
		opts := gofpdf.ImageOptions{ImageType: r.in.Logo.Format}
		r.pdf.RegisterImageOptionsReader(logoImageName, opts, bytes.NewReader(r.in.Logo.Data))

		logoX := r.geom.width - r.geom.margin - logoW
		if r.tpl.LogoPosition == types.LogoPositionLeft {
			logoX = r.geom.margin
			titleX = r.geom.margin + logoW + 12
		}
		r.pdf.ImageOptions(logoImageName, logoX, y+4, logoW, logoH, false, opts, 0, "")
	}

	title := titleFor(r.in.Kind)
	r.pdf.SetFont(r.font, "B", 22)
	r.pdf.SetXY(titleX, y+8)
	r.pdf.CellFormat(r.geom.contentWidth()*0.6, 24, title, "", 0, titleAlign, false, 0, "")

	if number := r.in.Document.Number; number != "" {
		r.pdf.SetFont(r.font, "", 11)
		r.pdf.SetXY(titleX, y+34)
		r.pdf.CellFormat(r.geom.contentWidth()*0.6, 12, "# "+number, "", 0, titleAlign, false, 0, "")
	}

	r.cur.gap(r.tpl.SectionSpacing)
}

func (r *renderContext) renderCompanyInfo() {
	lines := r.comp.Address.Lines()
	blockH := r.tpl.LineSpacing*float64(1+len(lines)) + 2
	y := r.cur.advance(blockH)

	r.pdf.SetFont(r.font, "B", 10)
	r.setTextColor(resolveColor(r.tpl.HeaderTextColor, defaultHeaderText))
	r.pdf.SetXY(r.geom.margin, y)
	r.pdf.CellFormat(r.geom.contentWidth(), r.tpl.LineSpacing, r.comp.Name, "", 0, "L", false, 0, "")

	r.pdf.SetFont(r.font, "", 9)
	r.setTextColor(resolveColor(r.tpl.BodyTextColor, defaultBodyText))
	for i, line := range lines {
		r.pdf.SetXY(r.geom.margin, y+r.tpl.LineSpacing*float64(1+i))
		r.pdf.CellFormat(r.geom.contentWidth(), r.tpl.LineSpacing, line, "", 0, "L", false, 0, "")
	}

	r.cur.gap(r.tpl.SectionSpacing)
}

func (r *renderContext) renderCustomerInfo() {
	cust := r.in.Document.Customer
	lines := cust.AddressLines
	blockH := r.tpl.LineSpacing*float64(2+len(lines)) + 2
	y := r.cur.advance(blockH)

	r.pdf.SetFont(r.font, "B", 8)
	r.setTextColor(resolveColor(r.tpl.AccentTextColor, defaultAccentColor))
	r.pdf.SetXY(r.geom.margin, y)
	label := strings.ToUpper(recipientLabelFor(r.in.Kind))
	r.pdf.CellFormat(r.geom.contentWidth(), r.tpl.LineSpacing, label, "", 0, "L", false, 0, "")

	r.pdf.SetFont(r.font, "B", 10)
	r.setTextColor(resolveColor(r.tpl.HeaderTextColor, defaultHeaderText))
	r.pdf.SetXY(r.geom.margin, y+r.tpl.LineSpacing)
	r.pdf.CellFormat(r.geom.contentWidth(), r.tpl.LineSpacing, cust.Name, "", 0, "L", false, 0, "")

	r.pdf.SetFont(r.font, "", 9)
	r.setTextColor(resolveColor(r.tpl.BodyTextColor, defaultBodyText))
	for i, line := range lines {
		r.pdf.SetXY(r.geom.margin, y+r.tpl.LineSpacing*float64(2+i))
		r.pdf.CellFormat(r.geom.contentWidth(), r.tpl.LineSpacing, line, "", 0, "L", false, 0, "")
	}

	r.cur.gap(r.tpl.SectionSpacing)
}

func (r *renderContext) renderDates() {
	doc := r.in.Document
	entries := []string{
		fmt.Sprintf("Issue Date: %s", doc.EffectiveIssueDate(r.now).Format(dateFormat)),
	}
	if label := secondaryDateLabelFor(r.in.Kind); label != "" && doc.DueDate != nil {
		entries = append(entries, fmt.Sprintf("%s: %s", label, doc.DueDate.Format(dateFormat)))
	}

	blockH := r.tpl.LineSpacing*float64(len(entries)) + 2
	y := r.cur.advance(blockH)

	r.pdf.SetFont(r.font, "", 9)
	r.setTextColor(resolveColor(r.tpl.BodyTextColor, defaultBodyText))
	for i, entry := range entries {
		r.pdf.SetXY(r.geom.margin, y+r.tpl.LineSpacing*float64(i))
		r.pdf.CellFormat(r.geom.contentWidth(), r.tpl.LineSpacing, entry, "", 0, "L", false, 0, "")
	}

	r.cur.gap(r.tpl.SectionSpacing)
}

func (r *renderContext) renderTotals() {
	doc := r.in.Document
	tax := doc.EffectiveTaxAmount()

	type totalRow struct {
		label string
		value string
		em    bool
	}
	rows := []totalRow{
		{label: "Subtotal", value: formatAmount(doc.Subtotal, doc.Currency)},
		{label: fmt.Sprintf("Tax (%s)", formatRate(doc.TaxRate)), value: formatAmount(tax, doc.Currency)},
		{label: "Total", value: formatAmount(doc.Total, doc.Currency), em: true},
	}

	const labelW, valueW = 110.0, 100.0
	blockH := r.tpl.LineSpacing*float64(len(rows)) + 8
	y := r.cur.advance(blockH)

	labelX := r.geom.width - r.geom.margin - valueW - labelW
	valueX := r.geom.width - r.geom.margin - valueW

	for i, row := range rows {
		rowY := y + r.tpl.LineSpacing*float64(i)
		if row.em {
			r.setDrawColor(resolveColor(r.tpl.AccentTextColor, defaultAccentColor))
			r.pdf.Line(labelX, rowY+1, r.geom.width-r.geom.margin, rowY+1)
			r.pdf.SetFont(r.font, "B", 10)
			r.setTextColor(resolveColor(r.tpl.AccentTextColor, defaultAccentColor))
		} else {
			r.pdf.SetFont(r.font, "", 9)
			r.setTextColor(resolveColor(r.tpl.BodyTextColor, defaultBodyText))
		}
		r.pdf.SetXY(labelX, rowY+2)
		r.pdf.CellFormat(labelW, r.tpl.LineSpacing, row.label, "", 0, "L", false, 0, "")
		r.pdf.SetXY(valueX, rowY+2)
		r.pdf.CellFormat(valueW, r.tpl.LineSpacing, row.value, "", 0, "R", false, 0, "")
	}

	r.cur.gap(r.tpl.SectionSpacing)
}

func (r *renderContext) renderPaymentInfo() {
	doc := r.in.Document

	var entries []string
	if r.in.Kind == types.DocumentTypeReceipt && r.in.Payment != nil {
		if r.in.Payment.Method != "" {
			entries = append(entries, "Method: "+r.in.Payment.Method)
		}
		if r.in.Payment.Reference != "" {
			entries = append(entries, "Reference: "+r.in.Payment.Reference)
		}
		if r.in.Payment.Notes != "" {
			entries = append(entries, r.in.Payment.Notes)
		}
	}
	if doc.PaymentLink != "" {
		entries = append(entries, "Pay online: "+doc.PaymentLink)
	}
	if len(entries) == 0 {
		entries = append(entries, fmt.Sprintf("Please reference %s with your payment.", doc.Number))
	}

	heading := "Payment Details"
	if r.in.Kind == types.DocumentTypeReceipt {
		heading = "Payment Received"
	}

	blockH := r.tpl.LineSpacing*float64(1+len(entries)) + 2
	y := r.cur.advance(blockH)

	r.pdf.SetFont(r.font, "B", 9)
	r.setTextColor(resolveColor(r.tpl.AccentTextColor, defaultAccentColor))
	r.pdf.SetXY(r.geom.margin, y)
	r.pdf.CellFormat(r.geom.contentWidth(), r.tpl.LineSpacing, heading, "", 0, "L", false, 0, "")

	r.pdf.SetFont(r.font, "", 9)
	r.setTextColor(resolveColor(r.tpl.BodyTextColor, defaultBodyText))
	for i, entry := range entries {
		r.pdf.SetXY(r.geom.margin, y+r.tpl.LineSpacing*float64(1+i))
		r.pdf.CellFormat(r.geom.contentWidth(), r.tpl.LineSpacing, entry, "", 0, "L", false, 0, "")
	}

	r.cur.gap(r.tpl.SectionSpacing)
}

func (r *renderContext) renderNotes() {
	doc := r.in.Document

	blocks := []struct {
		heading string
		text    string
	}{
		{heading: "Notes", text: doc.Notes},
		{heading: "Terms", text: doc.Terms},
	}

	for _, block := range blocks {
		if block.text == "" {
			continue
		}
		r.pdf.SetFont(r.font, "", 9)
		lines := r.pdf.SplitText(block.text, r.geom.contentWidth())

		blockH := r.tpl.LineSpacing*float64(1+len(lines)) + 2
		y := r.cur.advance(blockH)

		r.pdf.SetFont(r.font, "B", 9)
		r.setTextColor(resolveColor(r.tpl.AccentTextColor, defaultAccentColor))
		r.pdf.SetXY(r.geom.margin, y)
		r.pdf.CellFormat(r.geom.contentWidth(), r.tpl.LineSpacing, block.heading, "", 0, "L", false, 0, "")

		r.pdf.SetFont(r.font, "", 9)
		r.setTextColor(resolveColor(r.tpl.BodyTextColor, defaultBodyText))
		for i, line := range lines {
			r.pdf.SetXY(r.geom.margin, y+r.tpl.LineSpacing*float64(1+i))
			r.pdf.CellFormat(r.geom.contentWidth(), r.tpl.LineSpacing, line, "", 0, "L", false, 0, "")
		}

		r.cur.gap(r.tpl.SectionSpacing)
	}
}

func (r *renderContext) renderContactFooter() {
	var parts []string
	if r.comp.Phone != "" {
		parts = append(parts, r.comp.Phone)
	}
	if r.comp.Email != "" {
		parts = append(parts, r.comp.Email)
	}
	if r.comp.Website != "" {
		parts = append(parts, r.comp.Website)
	}

	y := r.cur.advance(r.tpl.LineSpacing + 2)

	r.pdf.SetFont(r.font, "", 8)
	r.setTextColor(resolveColor(r.tpl.FooterTextColor, defaultFooterText))
	r.pdf.SetXY(r.geom.margin, y)
	r.pdf.CellFormat(r.geom.contentWidth(), r.tpl.LineSpacing, strings.Join(parts, "  ·  "), "", 0, "C", false, 0, "")
}

// drawPageFooter runs via the backend's footer hook on every page close,
// inside the bottom margin band
func (r *renderContext) drawPageFooter() {
	r.pdf.SetFont(r.font, "", 8)
	r.setTextColor(resolveColor(r.tpl.FooterTextColor, defaultFooterText))
	r.pdf.SetXY(r.geom.margin, r.geom.height-r.geom.margin+4)
	r.pdf.CellFormat(r.geom.contentWidth(), 10, fmt.Sprintf("Page %d of {nb}", r.pdf.PageNo()), "", 0, "C", false, 0, "")
}
