// Package doc holds the in-memory design document model: layers, pages,
// documents and symbol libraries. Layer frames are relative to their
// parent's coordinate space.
package doc

import (
	"strconv"
	"strings"
	"sync/atomic"
)

// Rect is a layer frame in the parent's coordinate space.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Layer is a node in a document tree. Parent is a weak back reference
// maintained by the tree mutation methods; it never owns the layer.
type Layer struct {
	ID   string
	Name string
	Kind Kind

	Frame Rect

	// Text is the content of KindText layers.
	Text string

	// SymbolID links masters and instances: a master's own symbol
	// identifier, or the identifier of the master an instance places.
	SymbolID string

	// Overrides customizes an instance's nested content without
	// mutating the master. Keys name nested layers.
	Overrides map[string]string

	Parent   *Layer
	Children []*Layer
}

var idCounter atomic.Int64

// NewID returns a process-unique layer identifier.
func NewID() string {
	return "layer-" + strconv.FormatInt(idCounter.Add(1), 10)
}

func NewLayer(kind Kind, name string) *Layer {
	return &Layer{ID: NewID(), Name: name, Kind: kind}
}

// Append adds child as the last child of y.
func (y *Layer) Append(child *Layer) *Layer {
	child.Parent = y
	y.Children = append(y.Children, child)
	return child
}

// InsertAt adds child at index i among y's children.
func (y *Layer) InsertAt(i int, child *Layer) {
	child.Parent = y
	y.Children = append(y.Children, nil)
	copy(y.Children[i+1:], y.Children[i:])
	y.Children[i] = child
}

// Index returns y's position among its parent's children, -1 if y has no
// parent.
func (y *Layer) Index() int {
	if y.Parent == nil {
		return -1
	}
	for i, c := range y.Parent.Children {
		if c == y {
			return i
		}
	}
	return -1
}

// Remove detaches y from its parent. Detached layers remain usable as
// duplication templates.
func (y *Layer) Remove() {
	p := y.Parent
	if p == nil {
		return
	}
	i := y.Index()
	if i >= 0 {
		p.Children = append(p.Children[:i], p.Children[i+1:]...)
	}
	y.Parent = nil
}

// Duplicate deep-copies y with fresh IDs and no parent. Name, kind,
// frame, text, symbol linkage and overrides carry over.
func (y *Layer) Duplicate() *Layer {
	dst := &Layer{}
	return y.copyTo(dst)
}

func (y *Layer) copyTo(dst *Layer) *Layer {
	dst.ID = NewID()
	dst.Name = y.Name
	dst.Kind = y.Kind
	dst.Frame = y.Frame
	dst.Text = y.Text
	dst.SymbolID = y.SymbolID
	if y.Overrides != nil {
		dst.Overrides = make(map[string]string, len(y.Overrides))
		for k, v := range y.Overrides {
			dst.Overrides[k] = v
		}
	}
	dst.Children = make([]*Layer, len(y.Children))
	for i, c := range y.Children {
		dc := &Layer{}
		c.copyTo(dc)
		dc.Parent = dst
		dst.Children[i] = dc
	}
	return dst
}

// ancestor returns the nearest ancestor of the given kind.
func (y *Layer) ancestor(kind Kind) *Layer {
	for p := y.Parent; p != nil; p = p.Parent {
		if p.Kind == kind {
			return p
		}
	}
	return nil
}

func (y *Layer) ParentGroup() *Layer    { return y.ancestor(KindGroup) }
func (y *Layer) ParentArtboard() *Layer { return y.ancestor(KindArtboard) }
func (y *Layer) ParentPage() *Layer     { return y.ancestor(KindPage) }

// Visit walks y's subtree in preorder. Returning false from fn skips the
// node's children.
func (y *Layer) Visit(fn func(*Layer) bool) {
	if !fn(y) {
		return
	}
	for _, c := range y.Children {
		c.Visit(fn)
	}
}

// Descendants appends all layers strictly below y to dst, preorder.
func (y *Layer) Descendants(dst []*Layer) []*Layer {
	for _, c := range y.Children {
		dst = append(dst, c)
		dst = c.Descendants(dst)
	}
	return dst
}

// Path renders y's position as $.name.name..., quoting names containing
// path metacharacters.
func (y *Layer) Path() string {
	if y.Parent == nil {
		return "$"
	}
	return y.Parent.Path() + "." + pathName(y.Name)
}

func pathName(n string) string {
	if n != "" && strings.IndexAny(n, "'.$") == -1 {
		return n
	}
	return "'" + strings.Replace(n, "'", "\\'", -1) + "'"
}
