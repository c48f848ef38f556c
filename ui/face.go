package ui

import (
	"image/color"
	"math"
)

const (
	// faceScale keeps the rotated square inside the raster (side*sqrt2 <= 1).
	faceScale  = 0.7
	faceBorder = 0.04
	pipRadius  = 0.125
)

var (
	faceColor   = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	pipColor    = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	borderColor = pipColor
)

// Pips returns the pip centres of a face in unit die coordinates, origin top
// left. Values outside 1..6 have no pips.
func Pips(value int) [][2]float64 {
	const lo, mid, hi = 0.25, 0.5, 0.75
	switch value {
	case 1:
		return [][2]float64{{mid, mid}}
	case 2:
		return [][2]float64{{lo, lo}, {hi, hi}}
	case 3:
		return [][2]float64{{lo, lo}, {mid, mid}, {hi, hi}}
	case 4:
		return [][2]float64{{lo, lo}, {hi, lo}, {lo, hi}, {hi, hi}}
	case 5:
		return [][2]float64{{lo, lo}, {hi, lo}, {mid, mid}, {lo, hi}, {hi, hi}}
	case 6:
		return [][2]float64{{lo, lo}, {hi, lo}, {lo, mid}, {hi, mid}, {lo, hi}, {hi, hi}}
	}
	return nil
}

// FacePixel returns the colour of pixel (x, y) of a w*h raster showing value
// rotated clockwise by deg degrees around the raster centre.
func FacePixel(value int, deg float64, x, y, w, h int) color.Color {
	side := faceScale * float64(min(w, h))
	if side <= 0 {
		return color.Transparent
	}
	dx := float64(x) + 0.5 - float64(w)/2
	dy := float64(y) + 0.5 - float64(h)/2

	// Undo the rotation to land in die coordinates.
	sin, cos := math.Sincos(deg * math.Pi / 180)
	u := (dx*cos+dy*sin)/side + 0.5
	v := (-dx*sin+dy*cos)/side + 0.5

	if u < 0 || u > 1 || v < 0 || v > 1 {
		return color.Transparent
	}
	if u < faceBorder || u > 1-faceBorder || v < faceBorder || v > 1-faceBorder {
		return borderColor
	}
	for _, p := range Pips(value) {
		if math.Hypot(u-p[0], v-p[1]) <= pipRadius {
			return pipColor
		}
	}
	return faceColor
}
