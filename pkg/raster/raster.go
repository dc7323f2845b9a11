// Package raster provides pixel drawing primitives for RGBA images.
//
// These are the only drawing operations the editor performs: lines,
// rectangles, circles, polylines, and text labels. Everything renders
// directly into an *image.RGBA that is handed to the display layer.
package raster

import (
	"image"
	"image/color"
)

// Line draws a line from (x1, y1) to (x2, y2) with the given stroke width.
func Line(img *image.RGBA, x1, y1, x2, y2 int, col color.Color, width int) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy

	x, y := x1, y1
	for {
		plot(img, x, y, col, width)
		if x == x2 && y == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// Polyline draws connected line segments through the given points.
func Polyline(img *image.RGBA, pts []image.Point, col color.Color, width int) {
	for i := 1; i < len(pts); i++ {
		Line(img, pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y, col, width)
	}
}

// StrokeRect draws a rectangle outline.
func StrokeRect(img *image.RGBA, x, y, w, h int, col color.Color, width int) {
	Line(img, x, y, x+w-1, y, col, width)
	Line(img, x, y+h-1, x+w-1, y+h-1, col, width)
	Line(img, x, y, x, y+h-1, col, width)
	Line(img, x+w-1, y, x+w-1, y+h-1, col, width)
}

// FillRect fills a rectangle with a solid color.
func FillRect(img *image.RGBA, x, y, w, h int, col color.Color) {
	bounds := img.Bounds()
	for py := y; py < y+h; py++ {
		if py < bounds.Min.Y || py >= bounds.Max.Y {
			continue
		}
		for px := x; px < x+w; px++ {
			if px < bounds.Min.X || px >= bounds.Max.X {
				continue
			}
			img.Set(px, py, col)
		}
	}
}

// Circle draws a circle outline centered at (cx, cy).
func Circle(img *image.RGBA, cx, cy, radius int, col color.Color, width int) {
	for r := radius; r > radius-width && r > 0; r-- {
		circleOutline(img, cx, cy, r, col)
	}
}

// circleOutline draws a one-pixel circle using the midpoint algorithm.
func circleOutline(img *image.RGBA, cx, cy, r int, col color.Color) {
	x, y := r, 0
	err := 1 - r
	for x >= y {
		plot(img, cx+x, cy+y, col, 1)
		plot(img, cx+y, cy+x, col, 1)
		plot(img, cx-y, cy+x, col, 1)
		plot(img, cx-x, cy+y, col, 1)
		plot(img, cx-x, cy-y, col, 1)
		plot(img, cx-y, cy-x, col, 1)
		plot(img, cx+y, cy-x, col, 1)
		plot(img, cx+x, cy-y, col, 1)
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
}

// plot sets a square of side width centered on (x, y), clipped to the image.
func plot(img *image.RGBA, x, y int, col color.Color, width int) {
	if width <= 1 {
		if image.Pt(x, y).In(img.Bounds()) {
			img.Set(x, y, col)
		}
		return
	}
	half := width / 2
	bounds := img.Bounds()
	for py := y - half; py <= y+half; py++ {
		for px := x - half; px <= x+half; px++ {
			if px >= bounds.Min.X && px < bounds.Max.X &&
				py >= bounds.Min.Y && py < bounds.Max.Y {
				img.Set(px, py, col)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
