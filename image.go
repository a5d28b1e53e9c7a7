package rtk

import (
	"image"
	"sync/atomic"

	xdraw "golang.org/x/image/draw"
)

// ImageID uniquely identifies an image within the process.
// Draw command coalescing compares textures by this identity.
type ImageID uint64

var imageIDCounter atomic.Uint64

// NewImageID returns a fresh process-unique image ID.
func NewImageID() ImageID {
	return ImageID(imageIDCounter.Add(1))
}

// PixelFormat is the component layout of image data.
type PixelFormat uint8

const (
	PixelLuma PixelFormat = iota
	PixelLumaA
	PixelRGB
	PixelRGBA
)

// NumComponents returns the number of bytes per pixel.
func (f PixelFormat) NumComponents() int {
	switch f {
	case PixelLuma:
		return 1
	case PixelLumaA:
		return 2
	case PixelRGB:
		return 3
	default:
		return 4
	}
}

// Image is pixel data handed to the backend as a texture. Identity (not
// pixel content) determines equality, matching how the draw queue batches
// commands by texture.
type Image struct {
	data   []uint8
	size   Size
	format PixelFormat
	id     ImageID
}

// NewImage creates an image from raw pixel data. The buffer is resized to
// the exact length implied by size and format.
func NewImage(data []uint8, size Size, format PixelFormat) *Image {
	expected := size.Area() * format.NumComponents()
	if len(data) != expected {
		resized := make([]uint8, expected)
		copy(resized, data)
		data = resized
	}
	return &Image{data: data, size: size, format: format, id: NewImageID()}
}

// ImageFromImage converts a stdlib image into an RGBA Image.
func ImageFromImage(src image.Image) *Image {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(dst, dst.Bounds(), src, b.Min, xdraw.Src)
	return NewImage(dst.Pix, Sz(uint32(b.Dx()), uint32(b.Dy())), PixelRGBA)
}

// ID returns the image identity.
func (im *Image) ID() ImageID { return im.id }

// Size returns the image dimensions.
func (im *Image) Size() Size { return im.size }

// Format returns the pixel component layout.
func (im *Image) Format() PixelFormat { return im.format }

// Pixels returns the raw pixel data.
func (im *Image) Pixels() []uint8 { return im.data }

// sameImage reports whether two texture references share identity.
func sameImage(a, b *Image) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.id == b.id
}
