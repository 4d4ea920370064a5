// Package palette computes the beam color palettes uploaded to the
// video peripheral: 16 intensity levels by 16 hues.
package palette

import "math"

// NumIntensity and NumHue are the palette RAM dimensions.
const (
	NumIntensity = 16
	NumHue       = 16
)

// Palette selects one of the built-in color mappings.
type Palette uint8

const (
	Exp Palette = iota
	Linear
	Gray
	InvGray
)

func (p Palette) String() string {
	switch p {
	case Exp:
		return "exp"
	case Linear:
		return "linear"
	case Gray:
		return "gray"
	case InvGray:
		return "inv-gray"
	default:
		return "?"
	}
}

// Palettes returns the variant set in iteration order.
func Palettes() []Palette {
	return []Palette{Exp, Linear, Gray, InvGray}
}

// RGB is an 8-bit-per-channel color.
type RGB struct {
	R, G, B uint8
}

func hue2rgb(p, q, t float32) float32 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	if t < 1.0/6.0 {
		return p + (q-p)*6*t
	}
	if t < 0.5 {
		return q
	}
	if t < 2.0/3.0 {
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}

// HSL2RGB converts an HSL color to RGB. h, s and l are in [0,1];
// channels come back in [0,255].
func HSL2RGB(h, s, l float32) RGB {
	if s == 0 {
		gray := uint8(l * 255)
		return RGB{R: gray, G: gray, B: gray}
	}

	var q float32
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return RGB{
		R: uint8(hue2rgb(p, q, h+1.0/3.0) * 255),
		G: uint8(hue2rgb(p, q, h) * 255),
		B: uint8(hue2rgb(p, q, h-1.0/3.0) * 255),
	}
}

// Compute returns the palette entry for one intensity/hue coordinate.
func Compute(i, h int, p Palette) RGB {
	switch p {
	case Exp:
		const fac = 1.35
		hue := float32(h) / NumHue
		intensity := float32(math.Pow(fac, float64(i+1)) / math.Pow(fac, NumIntensity))
		return HSL2RGB(hue, 0.9, intensity)
	case Linear:
		return HSL2RGB(float32(h)/NumHue, 0.9, float32(i)/NumIntensity)
	case Gray:
		return RGB{R: uint8(i * 16), G: uint8(i * 16), B: uint8(i * 16)}
	case InvGray:
		gray := 255 - uint8(i*16)
		return RGB{R: gray, G: gray, B: gray}
	default:
		return RGB{}
	}
}
