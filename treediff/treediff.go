// Package treediff compares two layer trees by child names, reporting
// inserted and deleted layers per container. Useful for inspecting what
// a grid expansion or a population pass did to a page.
package treediff

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/draftkit/populator/doc"
)

type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	default:
		return "="
	}
}

// Change is one differing layer, identified by its path in the tree it
// came from (the "from" tree for deletes, "to" for inserts).
type Change struct {
	Op   Op
	Path string
	Kind doc.Kind
}

// Trees diffs the child-name sequences of from and to, recursing into
// children whose names line up. Child sequences are mapped to rune
// strings, one rune per distinct name, and diffed as text.
func Trees(from, to *doc.Layer) []Change {
	return diffChildren(nil, from, to)
}

func diffChildren(dst []Change, from, to *doc.Layer) []Change {
	nameMap := map[string]rune{}
	fromRunes := mapNamesTo(nameMap, from)
	toRunes := mapNamesTo(nameMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range diff.Text {
				c := from.Children[fi]
				dst = append(dst, Change{Op: Delete, Path: c.Path(), Kind: c.Kind})
				fi++
			}
		case diffpatch.DiffInsert:
			for range diff.Text {
				c := to.Children[ti]
				dst = append(dst, Change{Op: Insert, Path: c.Path(), Kind: c.Kind})
				ti++
			}
		case diffpatch.DiffEqual:
			for range diff.Text {
				dst = diffChildren(dst, from.Children[fi], to.Children[ti])
				fi++
				ti++
			}
		}
	}
	return dst
}

// mapNamesTo assigns one rune per distinct child name, reusing
// assignments across both trees so equal names diff as equal runes.
func mapNamesTo(m map[string]rune, node *doc.Layer) []rune {
	res := make([]rune, 0, len(node.Children))
	for _, c := range node.Children {
		r, ok := m[c.Name]
		if !ok {
			r = rune(len(m) + 1)
			m[c.Name] = r
		}
		res = append(res, r)
	}
	return res
}
