package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	// Remove leading # if present
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	// Parse RGB components
	r, err := strconv.ParseUint(hex[0:2], 16, 8)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid red component in %s: %w", hex, err)
	}

	g, err := strconv.ParseUint(hex[2:4], 16, 8)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid green component in %s: %w", hex, err)
	}

	b, err := strconv.ParseUint(hex[4:6], 16, 8)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid blue component in %s: %w", hex, err)
	}

	return tcell.NewRGBColor(int32(r), int32(g), int32(b)), nil
}

// MustParseHexColor converts a hex color string to tcell.Color, panicking on error.
func MustParseHexColor(hex string) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		panic(err)
	}
	return color
}

// BlendHex mixes two hex colors in RGB space. t=0 yields a, t=1 yields b.
// The renderer uses this for the frightened end-of-window flash.
func BlendHex(a, b string, t float64) tcell.Color {
	ca, errA := colorful.Hex(normalizeHex(a))
	cb, errB := colorful.Hex(normalizeHex(b))
	if errA != nil || errB != nil {
		return tcell.ColorWhite
	}
	mixed := ca.BlendRgb(cb, t)
	r, g, bl := mixed.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(bl))
}

// normalizeHex ensures the leading # that colorful.Hex requires.
func normalizeHex(hex string) string {
	if strings.HasPrefix(hex, "#") {
		return hex
	}
	return "#" + hex
}
