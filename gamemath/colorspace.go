package gamemath

import (
	"image/color"
	"math"
	"math/rand"
)

// RGBToHSV converts 8-bit RGB to hue [0,360), saturation and value [0,1].
func RGBToHSV(r, g, b uint8) (h, s, v float64) {
	rf := float64(r) / 255
	gf := float64(g) / 255
	bf := float64(b) / 255

	max := math.Max(rf, math.Max(gf, bf))
	min := math.Min(rf, math.Min(gf, bf))
	delta := max - min

	switch {
	case delta == 0:
		h = 0
	case max == rf:
		h = 60 * math.Mod((gf-bf)/delta, 6)
	case max == gf:
		h = 60 * ((bf-rf)/delta + 2)
	default:
		h = 60 * ((rf-gf)/delta + 4)
	}
	if h < 0 {
		h += 360
	}

	if max > 0 {
		s = delta / max
	}
	return h, s, max
}

// HSVToRGB converts hue [0,360), saturation and value [0,1] to 8-bit RGB.
func HSVToRGB(h, s, v float64) (r, g, b uint8) {
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var rf, gf, bf float64
	switch {
	case h < 60:
		rf, gf, bf = c, x, 0
	case h < 120:
		rf, gf, bf = x, c, 0
	case h < 180:
		rf, gf, bf = 0, c, x
	case h < 240:
		rf, gf, bf = 0, x, c
	case h < 300:
		rf, gf, bf = x, 0, c
	default:
		rf, gf, bf = c, 0, x
	}

	r = uint8(math.Round((rf + m) * 255))
	g = uint8(math.Round((gf + m) * 255))
	b = uint8(math.Round((bf + m) * 255))
	return r, g, b
}

// JitterColor perturbs a color in HSV space by up to +-scale/2 per channel,
// clamping to the valid range. Particle emitters use this so bursts of one
// base color do not look uniform.
func JitterColor(c color.RGBA, scale float64, rnd *rand.Rand) color.RGBA {
	h, s, v := RGBToHSV(c.R, c.G, c.B)
	h = clamp(h+(rnd.Float64()-0.5)*scale, 0, 360)
	s = clamp(s+(rnd.Float64()-0.5)*scale, 0, 1)
	v = clamp(v+(rnd.Float64()-0.5)*scale, 0, 1)
	r, g, b := HSVToRGB(h, s, v)
	return color.RGBA{R: r, G: g, B: b, A: c.A}
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
