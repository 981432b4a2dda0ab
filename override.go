package populator

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/draftkit/populator/doc"
)

// Detach resolves the master an instance places, deep-copies it, and
// applies the instance's overrides to the copy's nested text layers. The
// copy becomes a plain group carrying the instance's name and frame; the
// master itself is never mutated.
//
// Overrides are keyed by nested layer name. They are merged over the
// current text values as a JSON merge patch, so an override set to null
// clears the layer's text.
func Detach(ctx *Context, instance *doc.Layer) (*doc.Layer, error) {
	if instance.Kind != doc.KindSymbolInstance {
		return nil, fmt.Errorf("detach: layer %q is not a symbol instance", instance.Name)
	}
	master := ResolveMasterByID(ctx, instance.SymbolID)
	if master == nil {
		return nil, fmt.Errorf("detach: no master for symbol %q", instance.SymbolID)
	}
	detached := master.Duplicate()
	detached.Kind = doc.KindGroup
	detached.Name = instance.Name
	detached.Frame = instance.Frame
	detached.SymbolID = ""
	if len(instance.Overrides) == 0 {
		return detached, nil
	}

	texts := map[string]string{}
	eachTextLayer(detached, func(y *doc.Layer) {
		texts[y.Name] = y.Text
	})
	current, err := json.Marshal(texts)
	if err != nil {
		return nil, err
	}
	patch, err := json.Marshal(instance.Overrides)
	if err != nil {
		return nil, err
	}
	merged, err := jsonpatch.MergePatch(current, patch)
	if err != nil {
		return nil, fmt.Errorf("detach: applying overrides of %q: %w", instance.Name, err)
	}
	texts = map[string]string{}
	if err := json.Unmarshal(merged, &texts); err != nil {
		return nil, err
	}
	eachTextLayer(detached, func(y *doc.Layer) {
		y.Text = texts[y.Name]
	})
	return detached, nil
}

func eachTextLayer(root *doc.Layer, fn func(*doc.Layer)) {
	root.Visit(func(y *doc.Layer) bool {
		if y.Kind == doc.KindText && y.Name != "" {
			fn(y)
		}
		return true
	})
}
