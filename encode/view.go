package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/draftkit/populator/doc"
)

// WriteTree renders root's subtree one layer per line, indented by
// depth. A nil Colors gives plain output.
func WriteTree(w io.Writer, root *doc.Layer, colors *Colors) error {
	return writeTree(w, root, colors, 0)
}

func writeTree(w io.Writer, y *doc.Layer, colors *Colors, depth int) error {
	indent := strings.Repeat("  ", depth)
	name := y.Name
	if name == "" {
		name = "(unnamed)"
	}
	line := indent + colors.KindFunc(y.Kind)("%s", name) +
		" " + colors.FrameFunc()("[%s]", y.Kind)
	if y.Frame != (doc.Rect{}) {
		f := y.Frame
		line += " " + colors.FrameFunc()("(x:%g y:%g w:%g h:%g)", f.X, f.Y, f.Width, f.Height)
	}
	if _, err := fmt.Fprintln(w, line); err != nil {
		return err
	}
	for _, c := range y.Children {
		if err := writeTree(w, c, colors, depth+1); err != nil {
			return err
		}
	}
	return nil
}
