// Package encode reads and writes document fixtures: a YAML form of a
// document's pages, layers, selection and linked libraries. It exists
// for the CLI, the bridge and tests; the engine itself never touches
// serialized documents.
package encode

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/draftkit/populator/doc"
)

type File struct {
	Pages     []*LayerFile   `yaml:"pages"`
	Libraries []*LibraryFile `yaml:"libraries,omitempty"`
}

type LayerFile struct {
	ID        string            `yaml:"id,omitempty"`
	Name      string            `yaml:"name"`
	Kind      string            `yaml:"kind,omitempty"`
	Frame     *FrameFile        `yaml:"frame,omitempty"`
	Text      string            `yaml:"text,omitempty"`
	Symbol    string            `yaml:"symbol,omitempty"`
	Overrides map[string]string `yaml:"overrides,omitempty"`
	Selected  bool              `yaml:"selected,omitempty"`
	Layers    []*LayerFile      `yaml:"layers,omitempty"`
}

type FrameFile struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type LibraryFile struct {
	Name  string     `yaml:"name"`
	Valid bool       `yaml:"valid"`
	Refs  []*RefFile `yaml:"refs,omitempty"`
}

type RefFile struct {
	Name     string     `yaml:"name"`
	Symbol   string     `yaml:"symbol"`
	Template *LayerFile `yaml:"template,omitempty"`
}

// Decode builds a document and its libraries from YAML. Layers marked
// selected enter the native selection in document (preorder) order.
func Decode(data []byte) (*doc.Document, []*doc.Library, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, nil, fmt.Errorf("decoding document: %w", err)
	}
	if len(f.Pages) == 0 {
		return nil, nil, fmt.Errorf("document has no pages")
	}
	dec := &decoder{selected: map[*doc.Layer]bool{}}
	d := doc.NewDocument()
	for _, pf := range f.Pages {
		page := d.AddPage(pf.Name)
		if pf.ID != "" {
			page.ID = pf.ID
		}
		for _, lf := range pf.Layers {
			child, err := dec.layer(lf)
			if err != nil {
				return nil, nil, fmt.Errorf("page %q: %w", pf.Name, err)
			}
			page.Append(child)
		}
	}
	for _, page := range d.Pages() {
		page.Visit(func(y *doc.Layer) bool {
			if dec.selected[y] {
				d.Select(y)
			}
			return true
		})
	}
	var libs []*doc.Library
	for _, lf := range f.Libraries {
		lib := doc.NewLibrary(lf.Name, lf.Valid)
		for _, rf := range lf.Refs {
			if rf.Template == nil {
				return nil, nil, fmt.Errorf("library %q: ref %q has no template", lf.Name, rf.Name)
			}
			tpl, err := dec.layer(rf.Template)
			if err != nil {
				return nil, nil, fmt.Errorf("library %q: %w", lf.Name, err)
			}
			lib.AddRef(rf.Name, rf.Symbol, tpl)
		}
		libs = append(libs, lib)
	}
	return d, libs, nil
}

type decoder struct {
	selected map[*doc.Layer]bool
}

func (dec *decoder) layer(lf *LayerFile) (*doc.Layer, error) {
	if lf.Kind == "" {
		return nil, fmt.Errorf("layer %q needs a kind", lf.Name)
	}
	var kind doc.Kind
	if err := kind.UnmarshalText([]byte(lf.Kind)); err != nil {
		return nil, fmt.Errorf("layer %q: %w", lf.Name, err)
	}
	if kind == doc.KindAny || kind == doc.KindShape {
		return nil, fmt.Errorf("layer %q needs a concrete kind", lf.Name)
	}
	y := doc.NewLayer(kind, lf.Name)
	if lf.ID != "" {
		y.ID = lf.ID
	}
	if lf.Frame != nil {
		y.Frame = doc.Rect{X: lf.Frame.X, Y: lf.Frame.Y, Width: lf.Frame.Width, Height: lf.Frame.Height}
	}
	y.Text = lf.Text
	y.SymbolID = lf.Symbol
	if len(lf.Overrides) > 0 {
		y.Overrides = lf.Overrides
	}
	if lf.Selected {
		dec.selected[y] = true
	}
	for _, cf := range lf.Layers {
		child, err := dec.layer(cf)
		if err != nil {
			return nil, err
		}
		y.Append(child)
	}
	return y, nil
}

// Encode renders a document and its libraries back to YAML.
func Encode(d *doc.Document, libs []*doc.Library) ([]byte, error) {
	selected := map[*doc.Layer]bool{}
	for _, y := range d.Selection() {
		selected[y] = true
	}
	f := &File{}
	for _, page := range d.Pages() {
		pf := encodeLayer(page, selected)
		// pages are implied by position in the file
		pf.Kind = ""
		f.Pages = append(f.Pages, pf)
	}
	for _, lib := range libs {
		lf := &LibraryFile{Name: lib.Name, Valid: lib.Valid}
		for _, r := range lib.Refs(nil) {
			lf.Refs = append(lf.Refs, &RefFile{
				Name:     r.Name,
				Symbol:   r.SymbolID,
				Template: encodeLayer(r.Template(), selected),
			})
		}
		f.Libraries = append(f.Libraries, lf)
	}
	out, err := yaml.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	return out, nil
}

func encodeLayer(y *doc.Layer, selected map[*doc.Layer]bool) *LayerFile {
	lf := &LayerFile{
		ID:       y.ID,
		Name:     y.Name,
		Kind:     y.Kind.String(),
		Text:     y.Text,
		Symbol:   y.SymbolID,
		Selected: selected[y],
	}
	if y.Frame != (doc.Rect{}) {
		lf.Frame = &FrameFile{X: y.Frame.X, Y: y.Frame.Y, Width: y.Frame.Width, Height: y.Frame.Height}
	}
	if len(y.Overrides) > 0 {
		lf.Overrides = y.Overrides
	}
	for _, c := range y.Children {
		lf.Layers = append(lf.Layers, encodeLayer(c, selected))
	}
	return lf
}
