package bridge

import (
	"context"
	"net"
	"testing"

	"go.lsp.dev/jsonrpc2"

	"github.com/draftkit/populator"
	"github.com/draftkit/populator/doc"
)

func testEngine() (*populator.Context, *doc.Layer) {
	d := doc.NewDocument()
	page := d.AddPage("Page 1")
	board := page.Append(doc.NewLayer(doc.KindArtboard, "Board"))
	card := board.Append(doc.NewLayer(doc.KindGroup, "Card"))
	card.Frame = doc.Rect{X: 0, Y: 0, Width: 20, Height: 10}
	title := card.Append(doc.NewLayer(doc.KindText, "Title"))
	title.Text = "hello"
	master := doc.NewLayer(doc.KindSymbolMaster, "Button")
	master.SymbolID = "sym-button"
	page.Append(master)
	return &populator.Context{Doc: d}, card
}

// startBridge wires a server and a client over an in-memory pipe.
func startBridge(t *testing.T, eng *populator.Context) jsonrpc2.Conn {
	t.Helper()
	serverSide, clientSide := net.Pipe()
	srv := NewServer(eng)
	ctx, cancel := context.WithCancel(context.Background())
	go srv.Serve(ctx, serverSide)

	client := jsonrpc2.NewConn(jsonrpc2.NewStream(clientSide))
	client.Go(ctx, func(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
		return reply(ctx, nil, jsonrpc2.ErrMethodNotFound)
	})
	t.Cleanup(func() {
		client.Close()
		cancel()
	})
	return client
}

func TestBridgeFindLayers(t *testing.T) {
	eng, _ := testEngine()
	client := startBridge(t, eng)

	var res []*LayerInfo
	_, err := client.Call(context.Background(), MethodFindLayers, &FindParams{
		Name:    "Card",
		Subtree: true,
	}, &res)
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 1 || res[0].Name != "Card" || res[0].Kind != "Group" {
		t.Fatalf("find result: %+v", res)
	}
	if res[0].Path != "$.Board.Card" {
		t.Fatalf("find path: %q", res[0].Path)
	}
}

func TestBridgeFindLayersWhere(t *testing.T) {
	eng, _ := testEngine()
	client := startBridge(t, eng)

	var res []*LayerInfo
	_, err := client.Call(context.Background(), MethodFindLayers, &FindParams{
		Subtree: true,
		Where:   `width > 10`,
	}, &res)
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 1 || res[0].Name != "Card" {
		t.Fatalf("where result: %+v", res)
	}
}

func TestBridgeResolveSymbol(t *testing.T) {
	eng, _ := testEngine()
	client := startBridge(t, eng)

	var res *LayerInfo
	_, err := client.Call(context.Background(), MethodResolveSymbol, &ResolveParams{
		Name: "Button",
	}, &res)
	if err != nil {
		t.Fatal(err)
	}
	if res == nil || res.Sym != "sym-button" {
		t.Fatalf("resolve result: %+v", res)
	}

	res = nil
	_, err = client.Call(context.Background(), MethodResolveSymbol, &ResolveParams{
		Name: "Ghost",
	}, &res)
	if err != nil {
		t.Fatal(err)
	}
	if res != nil {
		t.Fatalf("expected null for an unknown symbol, got %+v", res)
	}
}

func TestBridgeSelectionAndGrid(t *testing.T) {
	eng, card := testEngine()
	client := startBridge(t, eng)
	ctx := context.Background()

	var ok bool
	if _, err := client.Call(ctx, MethodSetSelection, &SetSelectionParams{
		IDs: []string{card.ID},
	}, &ok); err != nil {
		t.Fatal(err)
	}

	var sel []*LayerInfo
	if _, err := client.Call(ctx, MethodGetSelection, nil, &sel); err != nil {
		t.Fatal(err)
	}
	if len(sel) != 1 || sel[0].ID != card.ID {
		t.Fatalf("selection: %+v", sel)
	}

	margin := 5.0
	var grid []*LayerInfo
	if _, err := client.Call(ctx, MethodCreateGrid, &GridParams{
		Rows:         2,
		Columns:      2,
		RowMargin:    &margin,
		ColumnMargin: &margin,
	}, &grid); err != nil {
		t.Fatal(err)
	}
	if len(grid) != 4 {
		t.Fatalf("grid produced %d layers", len(grid))
	}
	if grid[1].X != 25 || grid[2].Y != 15 {
		t.Fatalf("grid positions: %+v", grid)
	}

	// the bridge selects the produced layers
	sel = nil
	if _, err := client.Call(ctx, MethodGetSelection, nil, &sel); err != nil {
		t.Fatal(err)
	}
	if len(sel) != 4 {
		t.Fatalf("selection after grid: %d", len(sel))
	}
}

func TestBridgeGridErrors(t *testing.T) {
	eng, card := testEngine()
	client := startBridge(t, eng)
	ctx := context.Background()

	margin := 0.0
	var grid []*LayerInfo
	_, err := client.Call(ctx, MethodCreateGrid, &GridParams{
		Rows: 2, Columns: 2, RowMargin: &margin, ColumnMargin: &margin,
	}, &grid)
	if err == nil {
		t.Fatal("expected an error with nothing selected")
	}

	var ok bool
	if _, err := client.Call(ctx, MethodSetSelection, &SetSelectionParams{
		IDs: []string{card.ID},
	}, &ok); err != nil {
		t.Fatal(err)
	}
	_, err = client.Call(ctx, MethodCreateGrid, &GridParams{
		Rows: 0, Columns: 2, RowMargin: &margin, ColumnMargin: &margin,
	}, &grid)
	if err == nil {
		t.Fatal("expected an error for zero rows")
	}
}

func TestBridgeUnknownMethod(t *testing.T) {
	eng, _ := testEngine()
	client := startBridge(t, eng)

	var res any
	_, err := client.Call(context.Background(), "populator/nope", nil, &res)
	if err == nil {
		t.Fatal("expected method-not-found")
	}
}
