package encode

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/draftkit/populator/doc"
)

// Colors maps layer kinds to sprint functions for the tree view.
type Colors struct {
	Default func(string, ...any) string
	Frame   func(string, ...any) string
	Map     map[doc.Kind]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: fmt.Sprintf,
		Frame:   color.RGB(128, 128, 128).SprintfFunc(),
		Map:     map[doc.Kind]func(string, ...any) string{},
	}
	colors.Map[doc.KindPage] = color.RGB(74, 92, 138).SprintfFunc()
	colors.Map[doc.KindArtboard] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[doc.KindGroup] = color.RGB(128, 168, 196).SprintfFunc()
	colors.Map[doc.KindShapeGroup] = color.RGB(128, 168, 196).SprintfFunc()
	colors.Map[doc.KindText] = color.GreenString
	colors.Map[doc.KindBitmap] = color.RGB(168, 0, 196).SprintfFunc()
	colors.Map[doc.KindSymbolInstance] = color.CyanString
	colors.Map[doc.KindSymbolMaster] = color.RGB(128, 216, 236).SprintfFunc()
	for _, k := range doc.Kinds() {
		if k.IsPrimitiveShape() {
			colors.Map[k] = color.YellowString
		}
	}
	return colors
}

// KindFunc returns the sprint function for kind k; safe on a nil
// receiver, which renders plain.
func (c *Colors) KindFunc(k doc.Kind) func(string, ...any) string {
	if c == nil {
		return fmt.Sprintf
	}
	if f := c.Map[k]; f != nil {
		return f
	}
	return c.Default
}

func (c *Colors) FrameFunc() func(string, ...any) string {
	if c == nil {
		return fmt.Sprintf
	}
	return c.Frame
}
