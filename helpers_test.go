package populator

import "github.com/draftkit/populator/doc"

// testPage builds the page used across the query tests:
//
//	Page 1
//	└ Board (Artboard)
//	  ├ Card (Group)
//	  │ ├ Title (Text)
//	  │ └ BG (Rectangle)
//	  ├ Cardinal (Group)
//	  ├ Vector (ShapeGroup)
//	  ├ Photo (Bitmap)
//	  ├ Widget (SymbolInstance)
//	  └ "" (Group, unnamed)
func testPage() (d *doc.Document, page, board, card *doc.Layer) {
	d = doc.NewDocument()
	page = d.AddPage("Page 1")
	board = page.Append(doc.NewLayer(doc.KindArtboard, "Board"))
	card = board.Append(doc.NewLayer(doc.KindGroup, "Card"))
	title := card.Append(doc.NewLayer(doc.KindText, "Title"))
	title.Text = "hello"
	card.Append(doc.NewLayer(doc.KindRectangle, "BG"))
	board.Append(doc.NewLayer(doc.KindGroup, "Cardinal"))
	board.Append(doc.NewLayer(doc.KindShapeGroup, "Vector"))
	board.Append(doc.NewLayer(doc.KindBitmap, "Photo"))
	widget := board.Append(doc.NewLayer(doc.KindSymbolInstance, "Widget"))
	widget.SymbolID = "sym-widget"
	board.Append(doc.NewLayer(doc.KindGroup, ""))
	return d, page, board, card
}

func names(layers []*doc.Layer) []string {
	res := make([]string, len(layers))
	for i, y := range layers {
		res[i] = y.Name
	}
	return res
}
