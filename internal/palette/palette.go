// Package palette maps Pokémon types to their display colors and picks a
// legible border color for each of them.
package palette

import (
	"errors"
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrUnknownCategory is returned when a category has no palette entry.
var ErrUnknownCategory = errors.New("unknown category")

// RGB is an 8-bit sRGB color.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// CategoryStyle is the derived theme of a category.
type CategoryStyle struct {
	Category string
	Base     RGB
	Border   Border
}

// order is the canonical type order used by the games.
var order = []string{
	"normal", "fire", "water", "electric", "grass", "ice",
	"fighting", "poison", "ground", "flying", "psychic", "bug",
	"rock", "ghost", "dragon", "dark", "steel", "fairy",
}

var hexByCategory = map[string]string{
	"normal":   "#A8A77A",
	"fire":     "#EE8130",
	"water":    "#6390F0",
	"electric": "#F7D02C",
	"grass":    "#7AC74C",
	"ice":      "#96D9D6",
	"fighting": "#C22E28",
	"poison":   "#A33EA1",
	"ground":   "#E2BF65",
	"flying":   "#A98FF3",
	"psychic":  "#F95587",
	"bug":      "#A6B91A",
	"rock":     "#B6A136",
	"ghost":    "#735797",
	"dragon":   "#6F35FC",
	"dark":     "#705746",
	"steel":    "#B7B7CE",
	"fairy":    "#D685AD",
}

var colors = mustParse(hexByCategory)

func mustParse(src map[string]string) map[string]RGB {
	out := make(map[string]RGB, len(src))
	for name, hex := range src {
		c, err := colorful.Hex(hex)
		if err != nil {
			panic(fmt.Sprintf("palette: bad color %q for %s: %v", hex, name, err))
		}
		r, g, b := c.RGB255()
		out[name] = RGB{R: r, G: g, B: b}
	}
	return out
}

// ColorOf returns the base color for category. Lookup ignores case and
// surrounding whitespace; anything outside the fixed palette is an error.
func ColorOf(category string) (RGB, error) {
	key := strings.ToLower(strings.TrimSpace(category))
	c, ok := colors[key]
	if !ok {
		return RGB{}, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	return c, nil
}

// Style returns the base and border colors for category.
func Style(category string) (CategoryStyle, error) {
	base, err := ColorOf(category)
	if err != nil {
		return CategoryStyle{}, err
	}
	return CategoryStyle{
		Category: strings.ToLower(strings.TrimSpace(category)),
		Base:     base,
		Border:   ContrastBorder(base),
	}, nil
}

// Names returns the palette categories in canonical order.
func Names() []string {
	out := make([]string, len(order))
	copy(out, order)
	return out
}
