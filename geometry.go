package rtk

import "math"

// Scalar is the set of numeric types usable as point components.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Point is a position in 2D cartesian coordinates.
type Point[T Scalar] struct {
	X, Y T
}

// Position is an integer point in window/widget coordinates.
type Position = Point[int32]

// Pointf is a float point, used for vertex positions.
type Pointf = Point[float32]

// Pt is shorthand for constructing a Point.
func Pt[T Scalar](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Add returns the componentwise sum of two points.
func (p Point[T]) Add(other Point[T]) Point[T] {
	return p.Map2(other, func(a, b T) T { return a + b })
}

// Sub returns the componentwise difference of two points.
func (p Point[T]) Sub(other Point[T]) Point[T] {
	return p.Map2(other, func(a, b T) T { return a - b })
}

// Mul returns the point scaled by a scalar.
func (p Point[T]) Mul(s T) Point[T] {
	return p.Map(func(a T) T { return a * s })
}

// Neg returns the point with both components negated.
func (p Point[T]) Neg() Point[T] {
	return p.Map(func(a T) T { return -a })
}

// Offset returns the point translated by (dx, dy).
func (p Point[T]) Offset(dx, dy T) Point[T] {
	return Point[T]{X: p.X + dx, Y: p.Y + dy}
}

// WithX returns the point with the X component replaced.
func (p Point[T]) WithX(x T) Point[T] {
	return Point[T]{X: x, Y: p.Y}
}

// WithY returns the point with the Y component replaced.
func (p Point[T]) WithY(y T) Point[T] {
	return Point[T]{X: p.X, Y: y}
}

// Map applies f to each component.
func (p Point[T]) Map(f func(T) T) Point[T] {
	return Point[T]{X: f(p.X), Y: f(p.Y)}
}

// Map2 combines two points componentwise using f.
func (p Point[T]) Map2(other Point[T], f func(a, b T) T) Point[T] {
	return Point[T]{X: f(p.X, other.X), Y: f(p.Y, other.Y)}
}

// Inside reports whether the point lies within the rectangle.
func (p Point[T]) Inside(r Rect) bool {
	x, y := float64(p.X), float64(p.Y)
	return x >= float64(r.X()) && x < float64(r.EndX()) &&
		y >= float64(r.Y()) && y < float64(r.EndY())
}

// AsSize converts the point to a Size, clamping negative components to zero.
func (p Point[T]) AsSize() Size {
	w, h := p.X, p.Y
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Size{W: uint32(w), H: uint32(h)}
}

// Distance returns the euclidean distance between two points.
func (p Point[T]) Distance(other Point[T]) float64 {
	return math.Hypot(float64(other.X-p.X), float64(other.Y-p.Y))
}

// CastPoint converts a point between component types.
func CastPoint[R, T Scalar](p Point[T]) Point[R] {
	return Point[R]{X: R(p.X), Y: R(p.Y)}
}

// Size is a non-negative 2D extent.
type Size struct {
	W, H uint32
}

// Sz is shorthand for constructing a Size.
func Sz(w, h uint32) Size {
	return Size{W: w, H: h}
}

// IsEmpty reports whether either dimension is zero.
func (s Size) IsEmpty() bool {
	return s.W == 0 || s.H == 0
}

// IsZeroArea reports whether the size covers no pixels.
func (s Size) IsZeroArea() bool {
	return s.Area() == 0
}

// Area returns the number of pixels covered by the size.
func (s Size) Area() int {
	return int(s.W) * int(s.H)
}

// NonzeroOr returns the size, or def if this size has zero area.
func (s Size) NonzeroOr(def Size) Size {
	if s.IsZeroArea() {
		return def
	}
	return s
}

// AsPoint returns the size as an integer point.
func (s Size) AsPoint() Position {
	return Position{X: int32(s.W), Y: int32(s.H)}
}

// AsPointf returns the size as a float point.
func (s Size) AsPointf() Pointf {
	return Pointf{X: float32(s.W), Y: float32(s.H)}
}

// Map applies f to each dimension.
func (s Size) Map(f func(uint32) uint32) Size {
	return Size{W: f(s.W), H: f(s.H)}
}

// Map2 combines two sizes componentwise using f.
func (s Size) Map2(other Size, f func(a, b uint32) uint32) Size {
	return Size{W: f(s.W, other.W), H: f(s.H, other.H)}
}

// SaturatingSub subtracts other from s, clamping at zero.
func (s Size) SaturatingSub(other Size) Size {
	return s.Map2(other, func(a, b uint32) uint32 {
		if b > a {
			return 0
		}
		return a - b
	})
}

// Rect is an axis-aligned rectangle defined by position and size.
type Rect struct {
	Pos  Position
	Size Size
}

// NewRect creates a rectangle from position and dimensions.
func NewRect(x, y int32, w, h uint32) Rect {
	return Rect{Pos: Position{X: x, Y: y}, Size: Size{W: w, H: h}}
}

// RectFromSize creates a rectangle at the origin with the given size.
func RectFromSize(size Size) Rect {
	return Rect{Size: size}
}

// X returns the left edge.
func (r Rect) X() int32 { return r.Pos.X }

// Y returns the top edge.
func (r Rect) Y() int32 { return r.Pos.Y }

// W returns the width.
func (r Rect) W() uint32 { return r.Size.W }

// H returns the height.
func (r Rect) H() uint32 { return r.Size.H }

// EndX returns the exclusive right edge.
func (r Rect) EndX() int32 { return r.Pos.X + int32(r.Size.W) }

// EndY returns the exclusive bottom edge.
func (r Rect) EndY() int32 { return r.Pos.Y + int32(r.Size.H) }

// End returns the exclusive bottom-right corner.
func (r Rect) End() Position {
	return Position{X: r.EndX(), Y: r.EndY()}
}

// IsEmpty reports whether the rectangle covers no pixels.
func (r Rect) IsEmpty() bool {
	return r.Size.IsZeroArea()
}

// Offset returns the rectangle translated by the given amount.
func (r Rect) Offset(d Position) Rect {
	return Rect{Pos: r.Pos.Add(d), Size: r.Size}
}

// WithPos returns the rectangle moved to the given position.
func (r Rect) WithPos(pos Position) Rect {
	return Rect{Pos: pos, Size: r.Size}
}

// WithSize returns the rectangle resized to the given size.
func (r Rect) WithSize(size Size) Rect {
	return Rect{Pos: r.Pos, Size: size}
}

// Contains reports whether the point lies within the rectangle.
func (r Rect) Contains(p Position) bool {
	return p.Inside(r)
}

// ClipInside returns the intersection of r and other.
// The second result is false when the intersection has zero or negative
// extent on either axis, in which case the rectangle result is zero.
func (r Rect) ClipInside(other Rect) (Rect, bool) {
	x0 := max(r.X(), other.X())
	y0 := max(r.Y(), other.Y())
	x1 := min(r.EndX(), other.EndX())
	y1 := min(r.EndY(), other.EndY())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}, false
	}
	return NewRect(x0, y0, uint32(x1-x0), uint32(y1-y0)), true
}

// ExpandToOrigin grows the rectangle so it also covers the origin.
// Used to derive a window content size from a child placed at an offset.
func (r Rect) ExpandToOrigin() Rect {
	x0 := min(r.X(), 0)
	y0 := min(r.Y(), 0)
	x1 := max(r.EndX(), 0)
	y1 := max(r.EndY(), 0)
	return NewRect(x0, y0, uint32(x1-x0), uint32(y1-y0))
}

// MapSize returns the rectangle with f applied to its size.
func (r Rect) MapSize(f func(Size) Size) Rect {
	return Rect{Pos: r.Pos, Size: f(r.Size)}
}
