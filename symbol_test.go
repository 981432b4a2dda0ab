package populator

import (
	"testing"

	"github.com/draftkit/populator/doc"
)

func symbolCtx() (*Context, *doc.Layer) {
	d := doc.NewDocument()
	page := d.AddPage("Page 1")
	local := doc.NewLayer(doc.KindSymbolMaster, "Button")
	local.SymbolID = "sym-local-button"
	page.Append(local)
	return &Context{Doc: d}, local
}

func libWith(name string, valid bool, refs ...[2]string) *doc.Library {
	lib := doc.NewLibrary(name, valid)
	for _, r := range refs {
		tpl := doc.NewLayer(doc.KindGroup, r[0])
		tpl.Append(doc.NewLayer(doc.KindText, "Label"))
		lib.AddRef(r[0], r[1], tpl)
	}
	return lib
}

func TestResolveLocalPrecedence(t *testing.T) {
	ctx, local := symbolCtx()
	// the library also defines Button; local must win
	ctx.Libraries = []*doc.Library{libWith("Kit", true, [2]string{"Button", "sym-kit-button"})}

	got := ResolveMasterByName(ctx, "Button")
	if got != local {
		t.Fatalf("expected local master, got %v", got)
	}
	if got := ResolveMasterByID(ctx, "sym-local-button"); got != local {
		t.Fatalf("by id: expected local master, got %v", got)
	}
}

func TestResolveImportsFromFirstValidLibrary(t *testing.T) {
	ctx, _ := symbolCtx()
	invalid := libWith("Broken", false, [2]string{"Badge", "sym-broken-badge"})
	first := libWith("First", true, [2]string{"Badge", "sym-first-badge"})
	second := libWith("Second", true, [2]string{"Badge", "sym-second-badge"})
	ctx.Libraries = []*doc.Library{invalid, first, second}

	got := ResolveMasterByName(ctx, "Badge")
	if got == nil {
		t.Fatal("expected an imported master")
	}
	if got.SymbolID != "sym-first-badge" {
		t.Fatalf("imported from the wrong library: %s", got.SymbolID)
	}

	// resolving again finds the imported master locally
	again := ResolveMasterByName(ctx, "Badge")
	if again != got {
		t.Fatalf("second resolution imported a new master")
	}
}

func TestResolveSkipsAmbiguousLibrary(t *testing.T) {
	ctx, _ := symbolCtx()
	ambiguous := libWith("Ambiguous", true,
		[2]string{"Badge", "sym-a"},
		[2]string{"Badge", "sym-b"})
	fallback := libWith("Fallback", true, [2]string{"Badge", "sym-fallback"})
	ctx.Libraries = []*doc.Library{ambiguous, fallback}

	got := ResolveMasterByName(ctx, "Badge")
	if got == nil || got.SymbolID != "sym-fallback" {
		t.Fatalf("expected fallback import, got %v", got)
	}
}

func TestResolveNoneIsNil(t *testing.T) {
	ctx, _ := symbolCtx()
	ctx.Libraries = []*doc.Library{libWith("Kit", false, [2]string{"Ghost", "sym-ghost"})}
	if got := ResolveMasterByName(ctx, "Ghost"); got != nil {
		t.Fatalf("invalid library produced a master: %v", got)
	}
	if got := ResolveMasterByID(ctx, "sym-none"); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}
