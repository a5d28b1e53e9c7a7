package rtk

// Visitor observes a depth-first walk over a widget tree. The context type
// C carries parent-derived state down the tree (for example the absolute
// clipped viewport during event dispatch).
//
// Traversal short-circuits through Finished: once it reports true, no
// further node is entered at any level. This is the only non-local control
// in a walk; there is no abort mechanism.
type Visitor[C any] interface {
	// Finished reports whether the traversal should stop entering nodes.
	Finished() bool
	// NewContext derives w's context from the parent context. Returning
	// false prunes w's entire subtree from the walk.
	NewContext(w Widget, parent C) (C, bool)
	// VisitBefore is called when entering w, before its children.
	VisitBefore(w Widget, ctx C)
	// VisitAfter is called when leaving w, after its children. It still
	// runs when the walk finished inside the subtree, so state can
	// propagate up while unwinding.
	VisitAfter(w Widget, ctx C)
}

// Accept walks the tree rooted at w depth-first with the given visitor.
// Children are offered by the node itself (see Visitable) and are visited
// in declaration order; the finished check runs after every child so the
// early exit propagates through every recursion level.
func Accept[C any](w Widget, v Visitor[C], parent C) {
	if v.Finished() {
		return
	}
	ctx, ok := v.NewContext(w, parent)
	if !ok {
		return
	}
	v.VisitBefore(w, ctx)
	w.ChildrenVisit(func(child Widget) bool {
		Accept(child, v, ctx)
		return !v.Finished()
	})
	v.VisitAfter(w, ctx)
}
