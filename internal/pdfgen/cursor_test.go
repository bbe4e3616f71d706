package pdfgen

import (
	"math"
	"testing"

	ierr "github.com/billfold/billfold/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGeometry() pageGeometry {
	return pageGeometry{width: 595.28, height: 841.89, margin: 20}
}

func TestNewLayoutCursorRejectsDegenerateGeometry(t *testing.T) {
	_, err := newLayoutCursor(pageGeometry{width: 100, height: 100, margin: 60}, nil)
	require.Error(t, err)
	assert.True(t, ierr.IsConfiguration(err))

	_, err = newLayoutCursor(testGeometry(), nil)
	assert.NoError(t, err)
}

func TestCursorStartsAtTopMargin(t *testing.T) {
	cur, err := newLayoutCursor(testGeometry(), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, cur.pages())
	assert.Equal(t, testGeometry().margin, cur.y)
}

func TestAdvanceReturnsDrawOffset(t *testing.T) {
	cur, err := newLayoutCursor(testGeometry(), nil)
	require.NoError(t, err)

	y1 := cur.advance(100)
	y2 := cur.advance(50)
	assert.Equal(t, testGeometry().margin, y1)
	assert.Equal(t, testGeometry().margin+100, y2)
	assert.Equal(t, 1, cur.pages())
}

func TestAdvanceNeverSplitsABlock(t *testing.T) {
	geom := testGeometry()
	cur, err := newLayoutCursor(geom, nil)
	require.NoError(t, err)

	// fill the page to just short of the bottom
	cur.advance(geom.contentHeight() - 10)
	require.Equal(t, 1, cur.pages())

	// the next block does not fit; it moves whole to the next page
	y := cur.advance(30)
	assert.Equal(t, 2, cur.pages())
	assert.Equal(t, geom.margin, y)
}

func TestAdvancePageCountMatchesRowArithmetic(t *testing.T) {
	geom := testGeometry()
	const rowHeight = 18.0

	rowsPerPage := int(math.Floor(geom.contentHeight() / rowHeight))

	for _, rows := range []int{1, rowsPerPage, rowsPerPage + 1, 3 * rowsPerPage} {
		cur, err := newLayoutCursor(geom, nil)
		require.NoError(t, err)

		for i := 0; i < rows; i++ {
			cur.advance(rowHeight)
		}

		want := int(math.Ceil(float64(rows) / float64(rowsPerPage)))
		assert.Equal(t, want, cur.pages(), "rows=%d", rows)
	}
}

func TestOversizedBlockBreaksOnce(t *testing.T) {
	geom := testGeometry()
	cur, err := newLayoutCursor(geom, nil)
	require.NoError(t, err)

	cur.advance(10)
	y := cur.advance(geom.contentHeight() + 500)

	// exactly one break, then the block overflows below the margin
	assert.Equal(t, 2, cur.pages())
	assert.Equal(t, geom.margin, y)
}

func TestOnPageBreakHook(t *testing.T) {
	geom := testGeometry()
	var breaks int
	cur, err := newLayoutCursor(geom, func(c *layoutCursor) {
		breaks++
		// the cursor has already been reset when the hook fires
		assert.Equal(t, geom.margin, c.y)
	})
	require.NoError(t, err)

	cur.advance(geom.contentHeight())
	assert.Equal(t, 0, breaks)

	cur.advance(1)
	assert.Equal(t, 1, breaks)
}

func TestHookMayConsumeSpaceOnNewPage(t *testing.T) {
	geom := testGeometry()
	cur, err := newLayoutCursor(geom, nil)
	require.NoError(t, err)

	// a hook that reserves a header row at the top of every new page
	cur.onPageBreak = func(c *layoutCursor) {
		c.advance(18)
	}

	cur.advance(geom.contentHeight())
	y := cur.advance(18)
	assert.Equal(t, 2, cur.pages())
	assert.Equal(t, geom.margin+18, y)
}

func TestGapClampsAtContentBottom(t *testing.T) {
	geom := testGeometry()
	cur, err := newLayoutCursor(geom, nil)
	require.NoError(t, err)

	cur.advance(geom.contentHeight() - 5)
	cur.gap(100)

	// trailing spacing never forces an empty page
	assert.Equal(t, 1, cur.pages())
	assert.Equal(t, geom.contentBottom(), cur.y)
}
