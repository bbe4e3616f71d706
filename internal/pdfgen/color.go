package pdfgen

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB is a resolved 8-bit color triple
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// resolveColor parses a hex color string, falling back to the default hex
// when the input is absent or invalid. It never fails: an unparseable
// fallback resolves to black.
func resolveColor(hex string, fallback string) RGB {
	if c, ok := parseHexColor(hex); ok {
		return c
	}
	if c, ok := parseHexColor(fallback); ok {
		return c
	}
	return RGB{}
}

// parseHexColor accepts "#RRGGBB", "RRGGBB" and the "#RGB" shorthand
func parseHexColor(s string) (RGB, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
	default:
		return RGB{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, false
	}
	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, true
}

// Grayscale returns the luminance-weighted gray of the color. Equal-channel
// inputs map to themselves, which keeps the monochrome transform idempotent.
func (c RGB) Grayscale() RGB {
	v := uint8((299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000)
	return RGB{R: v, G: v, B: v}
}

// Hex returns the "#rrggbb" form of the color
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
