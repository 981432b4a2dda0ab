package populator

import "github.com/draftkit/populator/doc"

// GetSelection returns the document selection with the host's native
// order reversed. The inversion compensates for the host's native
// ordering quirk and is a contract: grid creation and data population
// depend on it, so it must not be "fixed".
func GetSelection(ctx *Context) []*doc.Layer {
	native := ctx.Doc.Selection()
	res := make([]*doc.Layer, len(native))
	for i, y := range native {
		res[len(native)-1-i] = y
	}
	return res
}

// SetSelection replaces the document selection with layers, in order.
// It is not additive: everything currently selected is deselected first.
// The operation completes before returning, so callers never observe an
// intermediate selection.
func SetSelection(ctx *Context, layers []*doc.Layer) {
	d := ctx.Doc
	d.ClearSelection()
	for _, y := range layers {
		d.Select(y)
	}
}
