package doc

import "fmt"

// Kind identifies what a layer is. KindAny is a query wildcard and never
// appears on layers in a document.
type Kind int

const (
	KindAny Kind = iota
	KindPage
	KindArtboard
	KindGroup
	KindShapeGroup
	KindText
	KindRectangle
	KindTriangle
	KindOval
	KindStar
	KindPolygon
	KindBitmap
	KindSymbolInstance
	KindSymbolMaster

	// KindShape is the generic shape category accepted by queries. It
	// stands for any primitive shape kind or KindShapeGroup.
	KindShape
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		KindAny:            "Any",
		KindPage:           "Page",
		KindArtboard:       "Artboard",
		KindGroup:          "Group",
		KindShapeGroup:     "ShapeGroup",
		KindText:           "Text",
		KindRectangle:      "Rectangle",
		KindTriangle:       "Triangle",
		KindOval:           "Oval",
		KindStar:           "Star",
		KindPolygon:        "Polygon",
		KindBitmap:         "Bitmap",
		KindSymbolInstance: "SymbolInstance",
		KindSymbolMaster:   "SymbolMaster",
		KindShape:          "Shape",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Any":            KindAny,
		"Page":           KindPage,
		"Artboard":       KindArtboard,
		"Group":          KindGroup,
		"ShapeGroup":     KindShapeGroup,
		"Text":           KindText,
		"Rectangle":      KindRectangle,
		"Triangle":       KindTriangle,
		"Oval":           KindOval,
		"Star":           KindStar,
		"Polygon":        KindPolygon,
		"Bitmap":         KindBitmap,
		"SymbolInstance": KindSymbolInstance,
		"SymbolMaster":   KindSymbolMaster,
		"Shape":          KindShape,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		KindPage,
		KindArtboard,
		KindGroup,
		KindShapeGroup,
		KindText,
		KindRectangle,
		KindTriangle,
		KindOval,
		KindStar,
		KindPolygon,
		KindBitmap,
		KindSymbolInstance,
		KindSymbolMaster,
	}
}

// IsPrimitiveShape reports whether k is one of the five concrete shape
// kinds, not counting KindShapeGroup.
func (k Kind) IsPrimitiveShape() bool {
	switch k {
	case KindRectangle, KindTriangle, KindOval, KindStar, KindPolygon:
		return true
	default:
		return false
	}
}

// IsContainer reports whether layers of this kind carry children.
func (k Kind) IsContainer() bool {
	switch k {
	case KindPage, KindArtboard, KindGroup, KindShapeGroup, KindSymbolMaster:
		return true
	default:
		return false
	}
}
