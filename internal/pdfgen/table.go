package pdfgen

import (
	"github.com/billfold/billfold/internal/domain/document"
)

// tableLayout holds the fixed column positions of the line-item table.
// Columns are derived once from page width and margin and are identical for
// every row; there is no per-row width negotiation.
type tableLayout struct {
	descX   float64
	descW   float64
	qtyX    float64
	qtyW    float64
	priceX  float64
	priceW  float64
	amountX float64
	amountW float64

	headerHeight float64
}

func newTableLayout(geom pageGeometry, rowHeight float64) tableLayout {
	const (
		qtyW    = 50.0
		priceW  = 80.0
		amountW = 90.0
	)
	descW := geom.contentWidth() - qtyW - priceW - amountW
	x := geom.margin
	return tableLayout{
		descX:   x,
		descW:   descW,
		qtyX:    x + descW,
		qtyW:    qtyW,
		priceX:  x + descW + qtyW,
		priceW:  priceW,
		amountX: x + descW + qtyW + priceW,
		amountW: amountW,

		headerHeight: rowHeight,
	}
}

// renderLineItemsTable renders the header row once, then each item in input
// order, paging through the cursor when a row no longer fits. The header row
// is repeated at the top of every page the table flows onto. An empty item
// list renders only the header. Returns the number of item rows drawn.
func (r *renderContext) renderLineItemsTable() int {
	cols := newTableLayout(r.geom, r.tpl.RowHeight)

	r.drawTableHeader(cols)

	prev := r.cur.onPageBreak
	r.cur.onPageBreak = func(c *layoutCursor) {
		if prev != nil {
			prev(c)
		}
		r.drawTableHeader(cols)
	}
	defer func() { r.cur.onPageBreak = prev }()

	rows := 0
	for _, item := range r.in.Document.LineItems {
		r.drawTableRow(cols, item)
		rows++
	}

	r.cur.gap(r.tpl.SectionSpacing)
	return rows
}

func (r *renderContext) drawTableHeader(cols tableLayout) {
	y := r.cur.advance(cols.headerHeight)
	r.tableHeaders++

	accent := resolveColor(r.tpl.AccentTextColor, defaultAccentColor)
	r.setTextColor(accent)
	r.pdf.SetFont(r.font, "B", 9)

	r.pdf.SetXY(cols.descX, y+2)
	r.pdf.CellFormat(cols.descW-4, r.tpl.LineSpacing, "Description", "", 0, "L", false, 0, "")
	r.pdf.SetXY(cols.qtyX, y+2)
	r.pdf.CellFormat(cols.qtyW, r.tpl.LineSpacing, "Qty", "", 0, "R", false, 0, "")
	r.pdf.SetXY(cols.priceX, y+2)
	r.pdf.CellFormat(cols.priceW, r.tpl.LineSpacing, "Unit Price", "", 0, "R", false, 0, "")
	r.pdf.SetXY(cols.amountX, y+2)
	r.pdf.CellFormat(cols.amountW, r.tpl.LineSpacing, "Amount", "", 0, "R", false, 0, "")

	r.setDrawColor(accent)
	lineY := y + cols.headerHeight - 3
	r.pdf.Line(r.geom.margin, lineY, r.geom.width-r.geom.margin, lineY)
}

func (r *renderContext) drawTableRow(cols tableLayout, item document.LineItem) {
	// the fits-check happens once per row; a single wrapped description
	// taller than the row height overflows into the space below, which can
	// run into the bottom margin on the last row of a page
	y := r.cur.advance(r.tpl.RowHeight)

	body := resolveColor(r.tpl.BodyTextColor, defaultBodyText)
	r.setTextColor(body)
	r.pdf.SetFont(r.font, "", 9)

	lines := r.pdf.SplitText(item.Description, cols.descW-4)
	if len(lines) == 0 {
		lines = []string{""}
	}
	for i, line := range lines {
		r.pdf.SetXY(cols.descX, y+2+float64(i)*r.tpl.LineSpacing)
		r.pdf.CellFormat(cols.descW-4, r.tpl.LineSpacing, line, "", 0, "L", false, 0, "")
	}

	currency := r.in.Document.Currency
	r.pdf.SetXY(cols.qtyX, y+2)
	r.pdf.CellFormat(cols.qtyW, r.tpl.LineSpacing, formatQuantity(item.Quantity), "", 0, "R", false, 0, "")
	r.pdf.SetXY(cols.priceX, y+2)
	r.pdf.CellFormat(cols.priceW, r.tpl.LineSpacing, formatAmount(item.UnitPrice, currency), "", 0, "R", false, 0, "")
	r.pdf.SetXY(cols.amountX, y+2)
	r.pdf.CellFormat(cols.amountW, r.tpl.LineSpacing, formatAmount(item.Amount, currency), "", 0, "R", false, 0, "")

	r.setDrawColor(resolveColor(r.tpl.FooterTextColor, defaultFooterText))
	lineY := y + r.tpl.RowHeight - 2
	r.pdf.Line(r.geom.margin, lineY, r.geom.width-r.geom.margin, lineY)
}
