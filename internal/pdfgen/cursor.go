package pdfgen

import (
	ierr "github.com/billfold/billfold/internal/errors"
)

// pageGeometry holds the fixed page dimensions and margin for a render call,
// in points.
type pageGeometry struct {
	width  float64
	height float64
	margin float64
}

func (g pageGeometry) contentWidth() float64 {
	return g.width - 2*g.margin
}

func (g pageGeometry) contentHeight() float64 {
	return g.height - 2*g.margin
}

func (g pageGeometry) contentBottom() float64 {
	return g.height - g.margin
}

// layoutCursor tracks the current page index and vertical offset of a render
// in progress. It is created fresh per render call and never shared.
//
// Pagination checks happen before writing a block, never after, so a block
// is never split across a page boundary. The onPageBreak hook fires after
// the cursor has been reset to the top margin of the new page; it may move
// the cursor further down (the line-item table uses this to repeat its
// header row).
type layoutCursor struct {
	geom        pageGeometry
	page        int
	y           float64
	onPageBreak func(c *layoutCursor)
}

func newLayoutCursor(geom pageGeometry, onPageBreak func(*layoutCursor)) (*layoutCursor, error) {
	if geom.contentHeight() <= 0 || geom.contentWidth() <= 0 {
		return nil, ierr.NewError("page geometry leaves no content area").
			WithHint("Page dimensions must exceed twice the margin").
			WithReportableDetails(map[string]any{
				"width":  geom.width,
				"height": geom.height,
				"margin": geom.margin,
			}).
			Mark(ierr.ErrConfiguration)
	}
	return &layoutCursor{
		geom:        geom,
		y:           geom.margin,
		onPageBreak: onPageBreak,
	}, nil
}

// fits reports whether a block of the given height fits above the content
// bottom at the current offset
func (c *layoutCursor) fits(height float64) bool {
	return c.y+height <= c.geom.contentBottom()
}

// advance reserves a block of the given height and moves the cursor past it,
// emitting a page break first when the block would cross the content bottom.
// It returns the vertical offset the block should be drawn at. A block
// taller than a whole page still gets exactly one break and then overflows;
// the caller owns that trade-off.
func (c *layoutCursor) advance(height float64) float64 {
	if !c.fits(height) {
		c.newPage()
	}
	y := c.y
	c.y += height
	return y
}

// newPage forces a page break and resets the cursor to the top margin
func (c *layoutCursor) newPage() {
	c.page++
	c.y = c.geom.margin
	if c.onPageBreak != nil {
		c.onPageBreak(c)
	}
}

// gap moves the cursor down without reserving a drawable block, clamping at
// the content bottom so trailing spacing never forces an empty page.
func (c *layoutCursor) gap(height float64) {
	c.y += height
	if c.y > c.geom.contentBottom() {
		c.y = c.geom.contentBottom()
	}
}

// pages returns the number of pages emitted so far
func (c *layoutCursor) pages() int {
	return c.page + 1
}
