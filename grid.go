package populator

import (
	"github.com/draftkit/populator/debug"
	"github.com/draftkit/populator/doc"
)

// GridSpec describes a rectangular expansion of a selection. Margins
// are pointers so an absent margin is distinguishable from a legal
// margin of zero.
type GridSpec struct {
	Rows    int
	Columns int

	RowMargin    *float64
	ColumnMargin *float64
}

// validate reports the first problem with the spec through the
// document's message sink and returns false. A valid spec reports
// nothing.
func (s GridSpec) validate(d *doc.Document) bool {
	switch {
	case s.Rows < 1:
		d.Message("Grid rows must be a positive number.")
	case s.Columns < 1:
		d.Message("Grid columns must be a positive number.")
	case s.RowMargin == nil:
		d.Message("Please provide a rows margin.")
	case *s.RowMargin < 0:
		d.Message("Grid rows margin can't be negative.")
	case s.ColumnMargin == nil:
		d.Message("Please provide a columns margin.")
	case *s.ColumnMargin < 0:
		d.Message("Grid columns margin can't be negative.")
	default:
		return true
	}
	return false
}

// CreateGrid replaces the selected layers with a rows×columns array of
// copies of the anchor layer, returned in row-major order. On an invalid
// spec it reports a message and returns nil with the document untouched.
//
// The anchor is chosen by a single scan in which a candidate replaces
// the current anchor whenever its x or its y is smaller than the
// anchor's. When no layer is simultaneously leftmost and topmost this
// can settle on a layer that is neither; that is the documented
// behavior, not a "most top-left" guarantee.
//
// All originally selected layers are removed before any copy is
// inserted. Callers own the selection update afterward.
func CreateGrid(ctx *Context, selected []*doc.Layer, spec GridSpec) []*doc.Layer {
	if !spec.validate(ctx.Doc) {
		return nil
	}
	if len(selected) == 0 {
		panic("populator: CreateGrid on empty selection")
	}

	anchor := selected[0]
	for _, cand := range selected[1:] {
		if cand.Frame.X < anchor.Frame.X || cand.Frame.Y < anchor.Frame.Y {
			anchor = cand
		}
	}
	if debug.Grid() {
		debug.Logf("grid anchor %s at (%g,%g)\n", anchor.Name, anchor.Frame.X, anchor.Frame.Y)
	}

	ax, ay := anchor.Frame.X, anchor.Frame.Y
	w, h := anchor.Frame.Width, anchor.Frame.Height
	parent := anchor.ParentGroup()
	if parent == nil {
		parent = anchor.ParentArtboard()
	}
	if parent == nil {
		parent = anchor.ParentPage()
	}
	if parent == nil {
		panic("populator: CreateGrid anchor has no parent")
	}

	// Deletions strictly before insertions, so the host never observes
	// originals and copies side by side.
	for _, y := range selected {
		y.Remove()
	}

	res := make([]*doc.Layer, 0, spec.Rows*spec.Columns)
	for i := 0; i < spec.Rows; i++ {
		for j := 0; j < spec.Columns; j++ {
			dup := anchor.Duplicate()
			parent.Append(dup)
			dup.Frame.X = ax + float64(j)*(w+*spec.ColumnMargin)
			dup.Frame.Y = ay + float64(i)*(h+*spec.RowMargin)
			res = append(res, dup)
		}
	}
	if debug.Grid() {
		debug.Logf("grid produced %d layers under %s\n", len(res), parent.Name)
	}
	return res
}
