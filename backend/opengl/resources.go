package opengl

import (
	"image"
	"image/color"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-rtk/rtk"
)

// FontResources answers layout-time text queries. Rendering uses the
// fixed 7x13 bitmap face, so the font descriptor's family and size are
// accepted but not acted on.
type FontResources struct {
	face font.Face
}

// NewFontResources creates the resource provider shared by layout and
// the renderer's text path.
func NewFontResources() *FontResources {
	return &FontResources{face: basicfont.Face7x13}
}

// MeasureText implements rtk.Resources.
func (fr *FontResources) MeasureText(text string, _ rtk.FontDesc) rtk.Size {
	width := font.MeasureString(fr.face, text).Ceil()
	height := fr.face.Metrics().Height.Ceil()
	return rtk.Sz(uint32(width), uint32(height))
}

// textTexture is a rasterized run cached by its text content. Glyphs are
// white on transparent so one texture serves every run color through the
// vertex tint.
type textTexture struct {
	tex           uint32
	width, height int
}

type textRasterizer struct {
	face  font.Face
	cache map[string]textTexture
	vao   uint32
	vbo   uint32
}

func newTextRasterizer() *textRasterizer {
	tr := &textRasterizer{
		face:  basicfont.Face7x13,
		cache: make(map[string]textTexture),
	}

	gl.GenVertexArrays(1, &tr.vao)
	gl.BindVertexArray(tr.vao)

	gl.GenBuffers(1, &tr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, tr.vbo)

	stride := int32(unsafe.Sizeof(rtk.Vertex{}))

	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	gl.VertexAttribPointerWithOffset(1, 4, gl.FLOAT, false, stride, unsafe.Offsetof(rtk.Vertex{}.Col))
	gl.EnableVertexAttribArray(1)

	gl.VertexAttribPointerWithOffset(2, 4, gl.FLOAT, false, stride, unsafe.Offsetof(rtk.Vertex{}.Col.Add))
	gl.EnableVertexAttribArray(2)

	gl.VertexAttribPointerWithOffset(3, 2, gl.FLOAT, false, stride, unsafe.Offsetof(rtk.Vertex{}.TexCoord))
	gl.EnableVertexAttribArray(3)

	gl.BindVertexArray(0)

	return tr
}

// run returns the cached texture for a text run, rasterizing on first use.
func (tr *textRasterizer) run(text string) textTexture {
	if tex, ok := tr.cache[text]; ok {
		return tex
	}

	metrics := tr.face.Metrics()
	width := font.MeasureString(tr.face, text).Ceil()
	height := metrics.Height.Ceil()
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	drawer := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: tr.face,
		Dot:  fixed.Point26_6{X: 0, Y: metrics.Ascent},
	}
	drawer.DrawString(text)

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(width), int32(height),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	entry := textTexture{tex: tex, width: width, height: height}
	tr.cache[text] = entry
	return entry
}

func (tr *textRasterizer) delete() {
	for _, entry := range tr.cache {
		gl.DeleteTextures(1, &entry.tex)
	}
	tr.cache = make(map[string]textTexture)
	if tr.vbo != 0 {
		gl.DeleteBuffers(1, &tr.vbo)
	}
	if tr.vao != 0 {
		gl.DeleteVertexArrays(1, &tr.vao)
	}
}

// drawText rasterizes and draws one text command. Positions in the
// command are window-absolute; the scissor for the command's viewport is
// already applied by the caller.
func (r *Renderer) drawText(cmd rtk.TextCmd) {
	if cmd.Text == "" {
		return
	}
	run := r.text.run(cmd.Text)

	var x, y float32
	switch mode := cmd.Mode.(type) {
	case rtk.TextAt:
		x, y = mode.Pos.X, mode.Pos.Y
	case rtk.TextBounded:
		x = float32(mode.Rect.X())
		switch mode.HAlign {
		case rtk.HAlignCenter:
			x += (float32(mode.Rect.W()) - float32(run.width)) / 2
		case rtk.HAlignRight:
			x += float32(mode.Rect.W()) - float32(run.width)
		}
		y = float32(mode.Rect.Y())
		switch mode.VAlign {
		case rtk.VAlignCenter:
			y += (float32(mode.Rect.H()) - float32(run.height)) / 2
		case rtk.VAlignBottom:
			y += float32(mode.Rect.H()) - float32(run.height)
		}
	default:
		return
	}

	tint := rtk.TintMul(cmd.Color)
	w, h := float32(run.width), float32(run.height)
	quad := [4]rtk.Vertex{
		rtk.TexVertex(rtk.Pointf{X: x, Y: y}, tint, rtk.TexCoord{U: 0, V: 0}),
		rtk.TexVertex(rtk.Pointf{X: x + w, Y: y}, tint, rtk.TexCoord{U: 1, V: 0}),
		rtk.TexVertex(rtk.Pointf{X: x + w, Y: y + h}, tint, rtk.TexCoord{U: 1, V: 1}),
		rtk.TexVertex(rtk.Pointf{X: x, Y: y + h}, tint, rtk.TexCoord{U: 0, V: 1}),
	}

	gl.BindVertexArray(r.text.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.text.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*int(unsafe.Sizeof(rtk.Vertex{})),
		gl.Ptr(&quad[0]), gl.STREAM_DRAW)
	gl.BindTexture(gl.TEXTURE_2D, run.tex)
	gl.DrawArrays(gl.TRIANGLE_FAN, 0, 4)
	gl.BindVertexArray(r.vao)
}
