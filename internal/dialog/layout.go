package dialog

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Face is the proportional-ish bitmap font used to lay out dialog text;
// the HUD (component J) measures against the same Face so icon and text
// positions agree (spec.md §4.I/§4.J share one font surface).
var Face font.Face = basicfont.Face7x13

// MeasureLine returns the pixel width s would occupy when drawn with
// Face, used to center lines and to place the end-of-message arrow.
func MeasureLine(s string) int {
	return font.MeasureString(Face, s).Round()
}

// GlyphAdvances returns, for each rune of s in order, the cumulative
// pixel x-offset of its right edge. Used to place a drawing cursor
// mid-reveal without re-measuring the whole line every frame.
func GlyphAdvances(s string) []int {
	advances := make([]int, 0, len(s))
	x := 0
	for _, r := range s {
		adv, ok := Face.GlyphAdvance(r)
		if !ok {
			adv = Face.Metrics().Height
		}
		x += adv.Round()
		advances = append(advances, x)
	}
	return advances
}
