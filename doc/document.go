package doc

// Document owns an ordered sequence of pages, the current page, the
// native layer selection and the aggregation of symbol masters defined
// anywhere within it. The selection is order-significant and fully
// replaced by callers; the document keeps no selection history.
type Document struct {
	// Messenger receives user-facing notification text. Nil drops
	// messages.
	Messenger func(string)

	pages   []*Layer
	current int

	selection []*Layer

	// masters imported from libraries, keyed by symbol ID for
	// idempotence; importOrder keeps registration order for the
	// aggregated master list.
	imported    map[string]*Layer
	importOrder []*Layer
}

func NewDocument() *Document {
	return &Document{imported: make(map[string]*Layer)}
}

// AddPage appends a page and returns it. The first page added becomes
// the current page.
func (d *Document) AddPage(name string) *Layer {
	p := NewLayer(KindPage, name)
	d.pages = append(d.pages, p)
	return p
}

func (d *Document) Pages() []*Layer {
	return d.pages
}

// CurrentPage returns the active page, nil for an empty document.
func (d *Document) CurrentPage() *Layer {
	if d.current < 0 || d.current >= len(d.pages) {
		return nil
	}
	return d.pages[d.current]
}

func (d *Document) SetCurrentPage(p *Layer) {
	for i, page := range d.pages {
		if page == p {
			d.current = i
			return
		}
	}
}

// Contains reports whether y is reachable from one of the document's
// pages.
func (d *Document) Contains(y *Layer) bool {
	for p := y; p != nil; p = p.Parent {
		for _, page := range d.pages {
			if p == page {
				return true
			}
		}
	}
	return false
}

// Selection returns the native selection order. The result is a copy;
// mutating it does not affect the document.
func (d *Document) Selection() []*Layer {
	res := make([]*Layer, len(d.selection))
	copy(res, d.selection)
	return res
}

// Select appends y to the native selection if not already present.
func (d *Document) Select(y *Layer) {
	for _, s := range d.selection {
		if s == y {
			return
		}
	}
	d.selection = append(d.selection, y)
}

func (d *Document) Deselect(y *Layer) {
	for i, s := range d.selection {
		if s == y {
			d.selection = append(d.selection[:i], d.selection[i+1:]...)
			return
		}
	}
}

func (d *Document) ClearSelection() {
	d.selection = d.selection[:0]
}

// SymbolMasters aggregates every master defined in the document's pages,
// preorder per page, followed by masters imported from libraries in
// import order.
func (d *Document) SymbolMasters() []*Layer {
	var res []*Layer
	for _, page := range d.pages {
		page.Visit(func(y *Layer) bool {
			if y.Kind == KindSymbolMaster {
				res = append(res, y)
			}
			return true
		})
	}
	res = append(res, d.importOrder...)
	return res
}

// Message surfaces user-facing notification text.
func (d *Document) Message(s string) {
	if d.Messenger != nil {
		d.Messenger(s)
	}
}

func (d *Document) importedMaster(symbolID string) *Layer {
	return d.imported[symbolID]
}

func (d *Document) recordImport(symbolID string, master *Layer) {
	d.imported[symbolID] = master
	d.importOrder = append(d.importOrder, master)
}
