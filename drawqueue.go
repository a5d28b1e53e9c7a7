package rtk

import (
	"fmt"
	"sync"
)

// Primitive is the kind of geometry referenced by a draw command.
type Primitive uint8

const (
	PrimitivePoints Primitive = iota
	PrimitiveLines
	PrimitiveLineStrip
	PrimitiveTriangles
	PrimitiveTriangleStrip
	PrimitiveTriangleFan
)

// TexCoord is a texture coordinate in [0, 1] texture space.
type TexCoord struct {
	U, V float32
}

// Vertex is the unit of geometry exchanged with the GPU backend.
// Col tints the sampled texel; solid fills multiply over the backend's
// white fallback texture so both paths share one pipeline.
type Vertex struct {
	Pos      Pointf
	Col      ColorOp
	TexCoord TexCoord
}

// ColorVertex creates an untextured vertex with a solid color.
func ColorVertex(pos Pointf, color Color) Vertex {
	return Vertex{Pos: pos, Col: TintMul(color)}
}

// TexVertex creates a textured vertex with a tint transform.
func TexVertex(pos Pointf, tint ColorOp, tc TexCoord) Vertex {
	return Vertex{Pos: pos, Col: tint, TexCoord: tc}
}

// Translate returns the vertex moved by the given offset.
func (v Vertex) Translate(offset Pointf) Vertex {
	v.Pos = v.Pos.Add(offset)
	return v
}

// DrawCommand is one coalesced unit of rendering work.
type DrawCommand interface {
	isDrawCommand()
}

// ClearCmd fills a viewport with a single color.
type ClearCmd struct {
	Color    Color
	Viewport Rect
}

// PrimCmd draws a range of the shared index buffer with one render state.
// The index range must lie within the queue's index buffer at execution
// time.
type PrimCmd struct {
	Primitive Primitive
	IdxOffset int
	IdxLen    int
	Texture   *Image
	Viewport  Rect
}

// TextCmd draws a text run; shaping and rasterization are left to the
// backend.
type TextCmd struct {
	Text     string
	Font     FontDesc
	Mode     TextDrawMode
	Color    Color
	Viewport Rect
}

func (ClearCmd) isDrawCommand() {}
func (PrimCmd) isDrawCommand()  {}
func (TextCmd) isDrawCommand()  {}

// compatibleWith reports whether an incoming push can extend this command.
func (c PrimCmd) compatibleWith(prim Primitive, texture *Image, viewport Rect) bool {
	return c.Primitive == prim && sameImage(c.Texture, texture) && c.Viewport == viewport
}

// IndexOutOfBoundsError reports an index referencing a vertex beyond the
// vertex count supplied with the same push.
type IndexOutOfBoundsError struct {
	Index       uint32
	VertexCount uint32
}

func (e IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("index %d out of bounds (%d)", e.Index, e.VertexCount)
}

// DrawQueue accumulates one frame's geometry into shared vertex/index
// buffers and a minimal list of coalesced draw commands. It is rebuilt
// from scratch every frame and owned exclusively by the window draw cycle.
type DrawQueue struct {
	Vertices []Vertex
	Indices  []uint32
	Commands []DrawCommand
}

// drawQueuePool reuses queue buffers across frames; the whole queue is
// cleared and rebuilt each window draw cycle.
var drawQueuePool = sync.Pool{
	New: func() any {
		return &DrawQueue{
			Vertices: make([]Vertex, 0, 1024),
			Indices:  make([]uint32, 0, 2048),
			Commands: make([]DrawCommand, 0, 16),
		}
	},
}

// AcquireDrawQueue gets an empty DrawQueue from the pool.
// Call ReleaseDrawQueue when the frame has been executed.
func AcquireDrawQueue() *DrawQueue {
	return drawQueuePool.Get().(*DrawQueue)
}

// ReleaseDrawQueue resets a DrawQueue and returns it to the pool.
// Pooled queues are always empty.
func ReleaseDrawQueue(q *DrawQueue) {
	if q != nil {
		q.Reset()
		drawQueuePool.Put(q)
	}
}

// NewDrawQueue creates an empty draw queue.
func NewDrawQueue() *DrawQueue {
	return &DrawQueue{}
}

// Reset removes all data from the queue, retaining allocated capacity.
func (q *DrawQueue) Reset() {
	q.Vertices = q.Vertices[:0]
	q.Indices = q.Indices[:0]
	q.Commands = q.Commands[:0]
}

// PushClear appends a clear command for the given viewport.
func (q *DrawQueue) PushClear(color Color, viewport Rect) {
	q.Commands = append(q.Commands, ClearCmd{Color: color, Viewport: viewport})
}

// PushTriangles appends triangle geometry expressed in viewport-relative
// coordinates. Vertices are translated by the viewport offset, indices are
// rebased onto the shared vertex buffer, and the previous command is
// extended when it shares primitive kind, texture and viewport.
//
// If any index references a vertex beyond len(vertices) the push fails
// atomically: no vertices, indices or commands are appended.
func (q *DrawQueue) PushTriangles(vertices []Vertex, indices []uint32, image *Image, viewport Rect) error {
	return q.pushPrim(PrimitiveTriangles, vertices, indices, image, viewport)
}

func (q *DrawQueue) pushPrim(prim Primitive, vertices []Vertex, indices []uint32, texture *Image, viewport Rect) error {
	nvert := uint32(len(vertices))
	// no vertices means nothing to do
	if nvert == 0 {
		return nil
	}
	// validate before touching the buffers so a failed push has no effect
	for _, idx := range indices {
		if idx >= nvert {
			return IndexOutOfBoundsError{Index: idx, VertexCount: nvert}
		}
	}

	// geometry is stored window-relative
	baseVert := uint32(len(q.Vertices))
	offset := CastPoint[float32](viewport.Pos)
	for _, v := range vertices {
		q.Vertices = append(q.Vertices, v.Translate(offset))
	}

	// extend the previous command if it carries the same render state;
	// only the immediately preceding command is considered so paint order
	// is preserved
	if n := len(q.Commands); n > 0 {
		if last, ok := q.Commands[n-1].(PrimCmd); ok && last.compatibleWith(prim, texture, viewport) {
			last.IdxLen += len(indices)
			q.Commands[n-1] = last
			q.appendIndices(indices, baseVert)
			return nil
		}
	}

	q.Commands = append(q.Commands, PrimCmd{
		Primitive: prim,
		IdxOffset: len(q.Indices),
		IdxLen:    len(indices),
		Texture:   texture,
		Viewport:  viewport,
	})
	q.appendIndices(indices, baseVert)
	return nil
}

// appendIndices rebases indices onto the shared vertex buffer.
func (q *DrawQueue) appendIndices(indices []uint32, baseVert uint32) {
	for _, idx := range indices {
		q.Indices = append(q.Indices, idx+baseVert)
	}
}

// Clear implements DrawBackend.
func (q *DrawQueue) Clear(color Color, viewport Rect) {
	q.PushClear(color, viewport)
}

// DrawTriangles implements DrawBackend.
func (q *DrawQueue) DrawTriangles(vertices []Vertex, indices []uint32, image *Image, viewport Rect) error {
	return q.PushTriangles(vertices, indices, image, viewport)
}

// DrawText implements DrawBackend by recording the run for the executor.
func (q *DrawQueue) DrawText(text string, font FontDesc, mode TextDrawMode, color Color, viewport Rect) {
	q.Commands = append(q.Commands, TextCmd{
		Text:     text,
		Font:     font,
		Mode:     mode,
		Color:    color,
		Viewport: viewport,
	})
}
