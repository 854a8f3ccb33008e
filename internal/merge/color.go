package merge

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// DefaultBackground is the fill used when no background color is configured:
// opaque white.
var DefaultBackground = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// ParseBackground parses a background fill from a hex color string.
//
// Accepted forms, with or without the leading "#":
//   - "#RGB" and "#RRGGBB" for an opaque color
//   - "#RRGGBBAA" with an explicit alpha pair (00 = transparent, FF = opaque)
//
// Hex digits are case-insensitive.
func ParseBackground(s string) (color.NRGBA, error) {
	hex := strings.TrimSpace(s)
	if hex == "" {
		return color.NRGBA{}, fmt.Errorf("empty background color")
	}
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}

	alpha := uint8(255)
	if len(hex) == 9 {
		a, err := strconv.ParseUint(hex[7:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid background color %q: bad alpha: %v", s, err)
		}
		alpha = uint8(a)
		hex = hex[:7]
	}

	// colorful.Hex scans leniently, so pin the accepted lengths here.
	if l := len(hex); l != 4 && l != 7 {
		return color.NRGBA{}, fmt.Errorf("invalid background color %q: want #RGB, #RRGGBB or #RRGGBBAA", s)
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid background color %q: %v", s, err)
	}

	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}
