package populator

import (
	"strings"

	"github.com/draftkit/populator/debug"
	"github.com/draftkit/populator/doc"
)

// Predicate is a pure filter over a layer. Predicates compose with And;
// FindLayers evaluates the composition by walking the tree, so no query
// strings are ever built.
type Predicate func(*doc.Layer) bool

// And combines predicates; the zero combination matches everything.
func And(ps ...Predicate) Predicate {
	return func(y *doc.Layer) bool {
		for _, p := range ps {
			if !p(y) {
				return false
			}
		}
		return true
	}
}

// Name matches layers by display name. Layers with an empty name never
// match. With exact unset, name is a substring requirement, except that
// "*" degenerates to matching any named layer.
func Name(name string, exact bool) Predicate {
	return func(y *doc.Layer) bool {
		if y.Name == "" {
			return false
		}
		if name == "" {
			return true
		}
		if exact {
			return y.Name == name
		}
		if name == "*" {
			return true
		}
		return strings.Contains(y.Name, name)
	}
}

// defaultKinds is the search domain of an unqualified query. Bitmap,
// SymbolInstance, SymbolMaster and Page layers are excluded from
// wildcard searches.
var defaultKinds = map[doc.Kind]bool{
	doc.KindGroup:      true,
	doc.KindShapeGroup: true,
	doc.KindArtboard:   true,
	doc.KindText:       true,
	doc.KindRectangle:  true,
	doc.KindTriangle:   true,
	doc.KindOval:       true,
	doc.KindStar:       true,
	doc.KindPolygon:    true,
}

// KindIs matches layers by kind. KindShape covers the primitive shapes
// and shape groups; KindAny restricts to the unqualified search domain.
func KindIs(k doc.Kind) Predicate {
	switch k {
	case doc.KindAny:
		return func(y *doc.Layer) bool {
			return defaultKinds[y.Kind]
		}
	case doc.KindShape:
		return func(y *doc.Layer) bool {
			return y.Kind.IsPrimitiveShape() || y.Kind == doc.KindShapeGroup
		}
	default:
		return func(y *doc.Layer) bool {
			return y.Kind == k
		}
	}
}

// Exclude rejects layers present in set, by identity.
func Exclude(set []*doc.Layer) Predicate {
	return func(y *doc.Layer) bool {
		for _, e := range set {
			if e == y {
				return false
			}
		}
		return true
	}
}

// FindOptions selects candidate layers for FindLayers.
type FindOptions struct {
	// Name filters by display name; empty imposes only the non-empty
	// name requirement. Exact switches between equality and substring
	// matching.
	Name  string
	Exact bool

	// Kind filters by layer kind. KindAny searches the default domain,
	// KindShape the generic shape category.
	Kind doc.Kind

	// Subtree searches all descendants of each root instead of only
	// immediate children.
	Subtree bool

	// Exclude removes the given layers from any result, by identity.
	Exclude []*doc.Layer
}

func (o FindOptions) predicate() Predicate {
	ps := []Predicate{Name(o.Name, o.Exact), KindIs(o.Kind)}
	if len(o.Exclude) > 0 {
		ps = append(ps, Exclude(o.Exclude))
	}
	return And(ps...)
}

// FindLayers evaluates opts against each root independently and
// concatenates the results in root order, candidate order within each
// root. Results are not de-duplicated across roots.
func FindLayers(roots []*doc.Layer, opts FindOptions) []*doc.Layer {
	if debug.Find() {
		debug.Logf("find name=%q exact=%v kind=%s subtree=%v over %d roots\n",
			opts.Name, opts.Exact, opts.Kind, opts.Subtree, len(roots))
	}
	pred := opts.predicate()
	var res []*doc.Layer
	for _, root := range roots {
		var candidates []*doc.Layer
		if opts.Subtree {
			candidates = root.Descendants(nil)
		} else {
			candidates = root.Children
		}
		for _, y := range candidates {
			if pred(y) {
				res = append(res, y)
			}
		}
	}
	if debug.Find() {
		debug.Logf("find matched %d layers\n", len(res))
	}
	return res
}

// FindLayer returns the first match of FindLayers, nil when nothing
// matches. Callers must not assume any ordering beyond first-of-sequence.
func FindLayer(roots []*doc.Layer, opts FindOptions) *doc.Layer {
	matches := FindLayers(roots, opts)
	if len(matches) == 0 {
		return nil
	}
	return matches[0]
}
