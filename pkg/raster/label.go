package raster

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// labelFace is the fixed-size face used for all raster text.
var labelFace = basicfont.Face7x13

// Label draws text with its baseline starting at (x, y).
func Label(img *image.RGBA, text string, x, y int, col color.Color) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: labelFace,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// LabelCentered draws text centered horizontally and vertically on (cx, cy).
func LabelCentered(img *image.RGBA, text string, cx, cy int, col color.Color) {
	w := font.MeasureString(labelFace, text).Ceil()
	m := labelFace.Metrics()
	h := m.Ascent.Ceil() + m.Descent.Ceil()
	Label(img, text, cx-w/2, cy-h/2+m.Ascent.Ceil(), col)
}

// LabelWidth returns the pixel width of text rendered with the label face.
func LabelWidth(text string) int {
	return font.MeasureString(labelFace, text).Ceil()
}
