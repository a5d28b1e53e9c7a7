package rtk

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGBA color stored in linear space.
// Components are conceptually in [0, 1] but are not clamped on construction.
type Color struct {
	R, G, B, A float32
}

// Common colors.
var (
	ColorBlack   = Gray(0)
	ColorWhite   = Gray(1)
	ColorRed     = RGB(1, 0, 0)
	ColorGreen   = RGB(0, 1, 0)
	ColorBlue    = RGB(0, 0, 1)
	ColorCyan    = RGB(0, 1, 1)
	ColorMagenta = RGB(1, 0, 1)
	ColorYellow  = RGB(1, 1, 0)
)

// RGBA creates a color from linear-space components.
func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGB creates an opaque color from linear-space components.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// Gray creates an opaque gray of the given linear intensity.
func Gray(i float32) Color {
	return RGB(i, i, i)
}

// SRGBA8 creates a color from 8-bit sRGB components. Alpha is coverage,
// not light, and stays linear.
func SRGBA8(r, g, b, a uint8) Color {
	return Color{
		R: srgb8ToLinear(r),
		G: srgb8ToLinear(g),
		B: srgb8ToLinear(b),
		A: float32(a) / 255,
	}
}

// SRGB8 creates an opaque color from 8-bit sRGB components.
func SRGB8(r, g, b uint8) Color {
	return Color{
		R: srgb8ToLinear(r),
		G: srgb8ToLinear(g),
		B: srgb8ToLinear(b),
		A: 1,
	}
}

// SRGBA32 creates a color from a packed 0xAARRGGBB sRGB value.
func SRGBA32(argb uint32) Color {
	return SRGBA8(uint8(argb>>16), uint8(argb>>8), uint8(argb), uint8(argb>>24))
}

// SRGB32 creates an opaque color from a packed 0xRRGGBB sRGB value.
func SRGB32(rgb uint32) Color {
	return SRGB8(uint8(rgb>>16), uint8(rgb>>8), uint8(rgb))
}

// HSL creates a color from hue [0, 360], saturation and lightness [0, 1].
func HSL(h, s, l float32) Color {
	r, g, b := colorful.Hsl(float64(h), float64(s), float64(l)).LinearRgb()
	return RGB(float32(r), float32(g), float32(b))
}

// ToSRGBA8 converts the color to 8-bit sRGB components [r, g, b, a].
func (c Color) ToSRGBA8() [4]uint8 {
	return [4]uint8{
		linearToSRGB8(c.R),
		linearToSRGB8(c.G),
		linearToSRGB8(c.B),
		uint8(clampf(c.A, 0, 1)*255 + 0.5),
	}
}

// ToSRGBA32 converts the color to a packed 0xAARRGGBB sRGB value.
func (c Color) ToSRGBA32() uint32 {
	s := c.ToSRGBA8()
	return uint32(s[2]) | uint32(s[1])<<8 | uint32(s[0])<<16 | uint32(s[3])<<24
}

// ToRGB16 converts the color to 16-bit linear components [r, g, b, a].
func (c Color) ToRGB16() [4]uint16 {
	f := func(v float32) uint16 {
		return uint16(clampf(v, 0, 1)*math.MaxUint16 + 0.5)
	}
	return [4]uint16{f(c.R), f(c.G), f(c.B), f(c.A)}
}

// WithAlpha returns the color with the alpha component replaced.
func (c Color) WithAlpha(a float32) Color {
	c.A = a
	return c
}

// Opaque returns the color with alpha 1.
func (c Color) Opaque() Color {
	return c.WithAlpha(1)
}

// Clamp returns the color with all components clamped to [0, 1].
func (c Color) Clamp() Color {
	return c.Map(func(v float32) float32 { return clampf(v, 0, 1) })
}

// Add returns the componentwise sum of two colors.
func (c Color) Add(other Color) Color {
	return c.Map2(other, func(a, b float32) float32 { return a + b })
}

// Sub returns the componentwise difference of two colors.
func (c Color) Sub(other Color) Color {
	return c.Map2(other, func(a, b float32) float32 { return a - b })
}

// Mul returns the color scaled by a scalar.
func (c Color) Mul(s float32) Color {
	return c.Map(func(a float32) float32 { return a * s })
}

// MulColor returns the componentwise product of two colors.
func (c Color) MulColor(other Color) Color {
	return c.Map2(other, func(a, b float32) float32 { return a * b })
}

// Mix linearly interpolates between c and other by a in [0, 1].
func (c Color) Mix(other Color, a float32) Color {
	a = clampf(a, 0, 1)
	return c.Mul(1 - a).Add(other.Mul(a))
}

// Map applies f to each component.
func (c Color) Map(f func(float32) float32) Color {
	return Color{R: f(c.R), G: f(c.G), B: f(c.B), A: f(c.A)}
}

// Map2 combines two colors componentwise using f.
func (c Color) Map2(other Color, f func(a, b float32) float32) Color {
	return Color{
		R: f(c.R, other.R),
		G: f(c.G, other.G),
		B: f(c.B, other.B),
		A: f(c.A, other.A),
	}
}

// ColorOp is an affine color transform: output = input*Mul + Add.
// It tints pre-rendered content such as textures without re-rasterizing.
type ColorOp struct {
	Mul Color
	Add Color
}

// ColorOpIdentity leaves the input color unchanged.
var ColorOpIdentity = ColorOp{Mul: ColorWhite}

// TintMul creates a multiplicative tint.
func TintMul(c Color) ColorOp {
	return ColorOp{Mul: c}
}

// TintAdd creates an additive tint.
func TintAdd(c Color) ColorOp {
	return ColorOp{Mul: ColorWhite, Add: c}
}

// Apply transforms the input color.
func (op ColorOp) Apply(in Color) Color {
	return in.MulColor(op.Mul).Add(op.Add)
}

// Then composes two transforms, applying op first and next second.
func (op ColorOp) Then(next ColorOp) ColorOp {
	return ColorOp{
		Mul: op.Mul.MulColor(next.Mul),
		Add: next.Apply(op.Add),
	}
}

// srgb8ToLinear converts an 8-bit sRGB component to linear space.
func srgb8ToLinear(v uint8) float32 {
	c := float64(v) / 255
	if c <= 0.04045 {
		return float32(c / 12.92)
	}
	return float32(math.Pow((c+0.055)/1.055, 2.4))
}

// linearToSRGB8 converts a linear component to 8-bit sRGB.
func linearToSRGB8(v float32) uint8 {
	c := float64(clampf(v, 0, 1))
	if c <= 0.0031308 {
		c *= 12.92
	} else {
		c = 1.055*math.Pow(c, 1/2.4) - 0.055
	}
	return uint8(c*255 + 0.5)
}

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
