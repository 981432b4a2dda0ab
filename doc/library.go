package doc

// Library is an external collection of importable symbol references.
// Libraries are read-only here except for the act of importing, which
// materializes a local master proxy inside a document.
type Library struct {
	Name string

	// Valid is false when the library's backing document is
	// unreachable; resolvers skip such libraries without error.
	Valid bool

	refs []*SymbolRef
}

func NewLibrary(name string, valid bool) *Library {
	return &Library{Name: name, Valid: valid}
}

// AddRef registers an importable reference backed by template, which is
// cloned on import.
func (l *Library) AddRef(name, symbolID string, template *Layer) *SymbolRef {
	r := &SymbolRef{Name: name, SymbolID: symbolID, lib: l, template: template}
	l.refs = append(l.refs, r)
	return r
}

// Refs returns the references matching pred, in registration order. A
// nil pred matches everything.
func (l *Library) Refs(pred func(*SymbolRef) bool) []*SymbolRef {
	var res []*SymbolRef
	for _, r := range l.refs {
		if pred == nil || pred(r) {
			res = append(res, r)
		}
	}
	return res
}

// SymbolRef is one importable symbol of a library.
type SymbolRef struct {
	Name     string
	SymbolID string

	lib      *Library
	template *Layer
}

func (r *SymbolRef) Library() *Library { return r.lib }

// Template exposes the subtree a ref materializes on import, for
// serialization. Callers must not mutate it.
func (r *SymbolRef) Template() *Layer { return r.template }

// Import materializes r's master inside d and returns it. Importing the
// same reference twice yields the same master.
func (r *SymbolRef) Import(d *Document) *Layer {
	if m := d.importedMaster(r.SymbolID); m != nil {
		return m
	}
	m := r.template.Duplicate()
	m.Kind = KindSymbolMaster
	m.Name = r.Name
	m.SymbolID = r.SymbolID
	d.recordImport(r.SymbolID, m)
	return m
}
