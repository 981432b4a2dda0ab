package populator

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/draftkit/populator/doc"
)

// exprEnv is the variable set a filter expression sees for a layer.
type exprEnv struct {
	ID     string  `expr:"id"`
	Name   string  `expr:"name"`
	Kind   string  `expr:"kind"`
	Text   string  `expr:"text"`
	X      float64 `expr:"x"`
	Y      float64 `expr:"y"`
	Width  float64 `expr:"width"`
	Height float64 `expr:"height"`
}

func layerEnv(y *doc.Layer) exprEnv {
	return exprEnv{
		ID:     y.ID,
		Name:   y.Name,
		Kind:   y.Kind.String(),
		Text:   y.Text,
		X:      y.Frame.X,
		Y:      y.Frame.Y,
		Width:  y.Frame.Width,
		Height: y.Frame.Height,
	}
}

// Where compiles a boolean expression over layer attributes into a
// Predicate, for query filters like `width > 100 && kind == "Text"`.
// Compile errors surface immediately; per-layer evaluation errors make
// the layer not match.
func Where(src string) (Predicate, error) {
	program, err := expr.Compile(src, expr.Env(exprEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("bad filter expression %q: %w", src, err)
	}
	return exprPredicate(program), nil
}

func exprPredicate(program *vm.Program) Predicate {
	return func(y *doc.Layer) bool {
		out, err := expr.Run(program, layerEnv(y))
		if err != nil {
			return false
		}
		b, ok := out.(bool)
		return ok && b
	}
}
