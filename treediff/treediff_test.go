package treediff

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/draftkit/populator/doc"
)

func pageWith(names ...string) *doc.Layer {
	page := doc.NewLayer(doc.KindPage, "P")
	for _, n := range names {
		page.Append(doc.NewLayer(doc.KindGroup, n))
	}
	return page
}

func TestTreesFlat(t *testing.T) {
	from := pageWith("A", "B", "C")
	to := pageWith("A", "C", "D")

	var got []string
	for _, c := range Trees(from, to) {
		got = append(got, c.Op.String()+" "+c.Path)
	}
	want := []string{"- $.B", "+ $.D"}
	if d := cmp.Diff(want, got); d != "" {
		t.Fatalf("changes (-want +got):\n%s", d)
	}
}

func TestTreesRecursesIntoEqualNames(t *testing.T) {
	from := pageWith("Board")
	from.Children[0].Append(doc.NewLayer(doc.KindText, "Old"))
	to := pageWith("Board")
	to.Children[0].Append(doc.NewLayer(doc.KindText, "New"))

	var got []string
	for _, c := range Trees(from, to) {
		got = append(got, c.Op.String()+" "+c.Path)
	}
	want := []string{"- $.Board.Old", "+ $.Board.New"}
	if d := cmp.Diff(want, got); d != "" {
		t.Fatalf("changes (-want +got):\n%s", d)
	}
}

func TestTreesEqual(t *testing.T) {
	from := pageWith("A", "B")
	to := pageWith("A", "B")
	if got := Trees(from, to); len(got) != 0 {
		t.Fatalf("expected no changes, got %v", got)
	}
}

func TestTreesGridExpansion(t *testing.T) {
	from := pageWith("A", "B")
	to := pageWith("B", "B", "B", "B")

	inserts, deletes := 0, 0
	for _, c := range Trees(from, to) {
		switch c.Op {
		case Insert:
			inserts++
		case Delete:
			deletes++
		}
	}
	if deletes != 1 || inserts != 3 {
		t.Fatalf("got %d deletes, %d inserts", deletes, inserts)
	}
}
