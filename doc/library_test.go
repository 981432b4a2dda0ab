package doc

import "testing"

func TestImportIdempotent(t *testing.T) {
	d := NewDocument()
	d.AddPage("Page 1")

	tpl := NewLayer(KindGroup, "Button")
	tpl.Append(NewLayer(KindText, "Label"))

	lib := NewLibrary("UI Kit", true)
	ref := lib.AddRef("Button", "sym-button", tpl)

	m1 := ref.Import(d)
	m2 := ref.Import(d)
	if m1 != m2 {
		t.Fatalf("import not idempotent: %p vs %p", m1, m2)
	}
	if m1.Kind != KindSymbolMaster {
		t.Fatalf("imported master kind: %s", m1.Kind)
	}
	if m1.SymbolID != "sym-button" {
		t.Fatalf("imported master symbol: %q", m1.SymbolID)
	}
	if m1 == tpl {
		t.Fatalf("import returned the library template itself")
	}

	masters := d.SymbolMasters()
	if len(masters) != 1 || masters[0] != m1 {
		t.Fatalf("document masters after import: %v", masters)
	}
}

func TestSymbolMastersAggregation(t *testing.T) {
	d := NewDocument()
	p1 := d.AddPage("Page 1")
	p2 := d.AddPage("Page 2")

	m1 := NewLayer(KindSymbolMaster, "A")
	m1.SymbolID = "sym-a"
	p1.Append(m1)
	group := p2.Append(NewLayer(KindGroup, "G"))
	m2 := NewLayer(KindSymbolMaster, "B")
	m2.SymbolID = "sym-b"
	group.Append(m2)

	masters := d.SymbolMasters()
	if len(masters) != 2 {
		t.Fatalf("got %d masters", len(masters))
	}
	if masters[0] != m1 || masters[1] != m2 {
		t.Fatalf("master order: %s, %s", masters[0].Name, masters[1].Name)
	}
}

func TestRefsFilter(t *testing.T) {
	lib := NewLibrary("Kit", true)
	lib.AddRef("Button", "sym-1", NewLayer(KindGroup, "Button"))
	lib.AddRef("Badge", "sym-2", NewLayer(KindGroup, "Badge"))

	all := lib.Refs(nil)
	if len(all) != 2 {
		t.Fatalf("all refs: %d", len(all))
	}
	byName := lib.Refs(func(r *SymbolRef) bool { return r.Name == "Badge" })
	if len(byName) != 1 || byName[0].SymbolID != "sym-2" {
		t.Fatalf("filtered refs: %v", byName)
	}
}

func TestDocumentSelection(t *testing.T) {
	d := NewDocument()
	page := d.AddPage("Page 1")
	a := page.Append(NewLayer(KindGroup, "A"))
	b := page.Append(NewLayer(KindGroup, "B"))

	d.Select(a)
	d.Select(b)
	d.Select(a) // no duplicates
	if got := d.Selection(); len(got) != 2 || got[0] != a || got[1] != b {
		t.Fatalf("selection: %v", got)
	}
	d.Deselect(a)
	if got := d.Selection(); len(got) != 1 || got[0] != b {
		t.Fatalf("after deselect: %v", got)
	}
	d.ClearSelection()
	if got := d.Selection(); len(got) != 0 {
		t.Fatalf("after clear: %v", got)
	}
}

func TestContains(t *testing.T) {
	d := NewDocument()
	page := d.AddPage("Page 1")
	a := page.Append(NewLayer(KindGroup, "A"))
	if !d.Contains(a) {
		t.Fatal("expected document to contain a")
	}
	a.Remove()
	if d.Contains(a) {
		t.Fatal("removed layer still contained")
	}
}
