package rtk

// Attachment helpers place a widget relative to an anchor rectangle.
// They mutate the widget's position only, never its size, and return
// nothing; chain them by calling them in sequence.

// RightOf places w immediately to the right of anchor with a gap.
func RightOf(w BoundedObject, anchor Rect, gap int32) {
	w.SetPosition(w.Position().WithX(anchor.EndX() + gap))
}

// LeftOf places w immediately to the left of anchor with a gap.
func LeftOf(w BoundedObject, anchor Rect, gap int32) {
	w.SetPosition(w.Position().WithX(anchor.X() - int32(w.Size().W) - gap))
}

// Below places w immediately below anchor with a gap.
func Below(w BoundedObject, anchor Rect, gap int32) {
	w.SetPosition(w.Position().WithY(anchor.EndY() + gap))
}

// Above places w immediately above anchor with a gap.
func Above(w BoundedObject, anchor Rect, gap int32) {
	w.SetPosition(w.Position().WithY(anchor.Y() - int32(w.Size().H) - gap))
}

// AlignHCenter centers w horizontally within anchor.
func AlignHCenter(w BoundedObject, anchor Rect) {
	x := anchor.X() + (int32(anchor.W())-int32(w.Size().W))/2
	w.SetPosition(w.Position().WithX(x))
}

// AlignVCenter centers w vertically within anchor.
func AlignVCenter(w BoundedObject, anchor Rect) {
	y := anchor.Y() + (int32(anchor.H())-int32(w.Size().H))/2
	w.SetPosition(w.Position().WithY(y))
}

// FlowHoriz arranges items left to right, wrapping when a row would
// exceed width. Items inside a row are aligned per align against the
// tallest item of that row. Returns the size of the arranged content.
func FlowHoriz[W BoundedObject](items []W, align VAlign, width uint32, hgap, vgap int32) Size {
	var content Size
	rowStart := 0
	var x, y int32
	var rowH uint32

	flushRow := func(end int) {
		for _, item := range items[rowStart:end] {
			pos := item.Position()
			switch align {
			case VAlignCenter:
				pos.Y = y + (int32(rowH)-int32(item.Size().H))/2
			case VAlignBottom:
				pos.Y = y + int32(rowH) - int32(item.Size().H)
			default:
				pos.Y = y
			}
			item.SetPosition(pos)
		}
	}

	for i, item := range items {
		sz := item.Size()
		if i > rowStart && x+int32(sz.W) > int32(width) {
			flushRow(i)
			y += int32(rowH) + vgap
			x = 0
			rowH = 0
			rowStart = i
		}
		item.SetPosition(Position{X: x, Y: 0})
		x += int32(sz.W) + hgap
		rowH = max(rowH, sz.H)
		content.W = max(content.W, uint32(x-hgap))
	}
	flushRow(len(items))
	if len(items) > rowStart {
		content.H = uint32(y) + rowH
	}
	return content
}

// FlowVert arranges items top to bottom, wrapping when a column would
// exceed height. Items inside a column are aligned per align against the
// widest item of that column. Returns the size of the arranged content.
func FlowVert[W BoundedObject](items []W, align HAlign, height uint32, hgap, vgap int32) Size {
	var content Size
	colStart := 0
	var x, y int32
	var colW uint32

	flushCol := func(end int) {
		for _, item := range items[colStart:end] {
			pos := item.Position()
			switch align {
			case HAlignCenter:
				pos.X = x + (int32(colW)-int32(item.Size().W))/2
			case HAlignRight:
				pos.X = x + int32(colW) - int32(item.Size().W)
			default:
				pos.X = x
			}
			item.SetPosition(pos)
		}
	}

	for i, item := range items {
		sz := item.Size()
		if i > colStart && y+int32(sz.H) > int32(height) {
			flushCol(i)
			x += int32(colW) + hgap
			y = 0
			colW = 0
			colStart = i
		}
		item.SetPosition(Position{X: 0, Y: y})
		y += int32(sz.H) + vgap
		colW = max(colW, sz.W)
		content.H = max(content.H, uint32(y-vgap))
	}
	flushCol(len(items))
	if len(items) > colStart {
		content.W = uint32(x) + colW
	}
	return content
}

// Foreach runs fn over consecutive item pairs, giving each item access
// to its predecessor and the first item. Useful for chain layouts such
// as "each to the right of the previous".
func Foreach[W BoundedObject](items []W, fn func(this, prev, first W)) {
	for i := 1; i < len(items); i++ {
		fn(items[i], items[i-1], items[0])
	}
}
