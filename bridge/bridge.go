// Package bridge exposes the populator engine to a plugin host over
// JSON-RPC. The host UI collects options and raw data on its side of the
// stream; this side only answers the four engine contracts.
package bridge

import (
	"context"
	"encoding/json"
	"io"

	"go.lsp.dev/jsonrpc2"

	"github.com/draftkit/populator"
	"github.com/draftkit/populator/debug"
	"github.com/draftkit/populator/doc"
)

const (
	MethodFindLayers    = "populator/findLayers"
	MethodResolveSymbol = "populator/resolveSymbol"
	MethodCreateGrid    = "populator/createGrid"
	MethodGetSelection  = "populator/getSelection"
	MethodSetSelection  = "populator/setSelection"
)

type Server struct {
	eng  *populator.Context
	conn jsonrpc2.Conn
}

func NewServer(eng *populator.Context) *Server {
	return &Server{eng: eng}
}

// Serve runs the bridge over rwc until the peer disconnects.
func (s *Server) Serve(ctx context.Context, rwc io.ReadWriteCloser) error {
	conn := jsonrpc2.NewConn(jsonrpc2.NewStream(rwc))
	s.conn = conn
	conn.Go(ctx, s.Handler())
	<-conn.Done()
	err := conn.Err()
	if err == io.ErrClosedPipe || err == io.EOF {
		return nil
	}
	return err
}

func (s *Server) Handler() jsonrpc2.Handler {
	return s.handle
}

// LayerInfo is the wire form of a layer reference.
type LayerInfo struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Kind string  `json:"kind"`
	Path string  `json:"path"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	W    float64 `json:"width"`
	H    float64 `json:"height"`
	Text string  `json:"text,omitempty"`
	Sym  string  `json:"symbol,omitempty"`
}

func info(y *doc.Layer) *LayerInfo {
	return &LayerInfo{
		ID:   y.ID,
		Name: y.Name,
		Kind: y.Kind.String(),
		Path: y.Path(),
		X:    y.Frame.X,
		Y:    y.Frame.Y,
		W:    y.Frame.Width,
		H:    y.Frame.Height,
		Text: y.Text,
		Sym:  y.SymbolID,
	}
}

func infos(layers []*doc.Layer) []*LayerInfo {
	res := make([]*LayerInfo, len(layers))
	for i, y := range layers {
		res[i] = info(y)
	}
	return res
}

type FindParams struct {
	Name    string `json:"name"`
	Exact   bool   `json:"exact"`
	Kind    string `json:"kind,omitempty"`
	Subtree bool   `json:"subtree"`
	Where   string `json:"where,omitempty"`
}

type ResolveParams struct {
	Name   string `json:"name,omitempty"`
	Symbol string `json:"symbol,omitempty"`
}

type GridParams struct {
	Rows         int      `json:"rows"`
	Columns      int      `json:"columns"`
	RowMargin    *float64 `json:"rowMargin"`
	ColumnMargin *float64 `json:"columnMargin"`
}

type SetSelectionParams struct {
	IDs []string `json:"ids"`
}

func (s *Server) handle(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	if debug.Bridge() {
		debug.Logf("bridge <- %s\n", req.Method())
	}
	switch req.Method() {
	case MethodFindLayers:
		return s.findLayers(ctx, reply, req)
	case MethodResolveSymbol:
		return s.resolveSymbol(ctx, reply, req)
	case MethodCreateGrid:
		return s.createGrid(ctx, reply, req)
	case MethodGetSelection:
		return reply(ctx, infos(populator.GetSelection(s.eng)), nil)
	case MethodSetSelection:
		return s.setSelection(ctx, reply, req)
	default:
		return reply(ctx, nil, jsonrpc2.ErrMethodNotFound)
	}
}

func (s *Server) findLayers(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params FindParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return reply(ctx, nil, jsonrpc2.Errorf(jsonrpc2.InvalidParams, "findLayers: %v", err))
	}
	var kind doc.Kind
	if params.Kind != "" {
		if err := kind.UnmarshalText([]byte(params.Kind)); err != nil {
			return reply(ctx, nil, jsonrpc2.Errorf(jsonrpc2.InvalidParams, "findLayers: %v", err))
		}
	}
	page := s.eng.Doc.CurrentPage()
	if page == nil {
		return reply(ctx, []*LayerInfo{}, nil)
	}
	matches := populator.FindLayers([]*doc.Layer{page}, populator.FindOptions{
		Name:    params.Name,
		Exact:   params.Exact,
		Kind:    kind,
		Subtree: params.Subtree,
	})
	if params.Where != "" {
		pred, err := populator.Where(params.Where)
		if err != nil {
			return reply(ctx, nil, jsonrpc2.Errorf(jsonrpc2.InvalidParams, "findLayers: %v", err))
		}
		kept := matches[:0]
		for _, y := range matches {
			if pred(y) {
				kept = append(kept, y)
			}
		}
		matches = kept
	}
	return reply(ctx, infos(matches), nil)
}

func (s *Server) resolveSymbol(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params ResolveParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return reply(ctx, nil, jsonrpc2.Errorf(jsonrpc2.InvalidParams, "resolveSymbol: %v", err))
	}
	var master *doc.Layer
	if params.Symbol != "" {
		master = populator.ResolveMasterByID(s.eng, params.Symbol)
	} else {
		master = populator.ResolveMasterByName(s.eng, params.Name)
	}
	if master == nil {
		// symbol unavailable is a normal branch, not an rpc error
		return reply(ctx, nil, nil)
	}
	return reply(ctx, info(master), nil)
}

func (s *Server) createGrid(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params GridParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return reply(ctx, nil, jsonrpc2.Errorf(jsonrpc2.InvalidParams, "createGrid: %v", err))
	}
	selected := populator.GetSelection(s.eng)
	if len(selected) == 0 {
		return reply(ctx, nil, jsonrpc2.Errorf(jsonrpc2.InvalidParams, "createGrid: nothing selected"))
	}
	var msg string
	prev := s.eng.Doc.Messenger
	s.eng.Doc.Messenger = func(m string) { msg = m }
	res := populator.CreateGrid(s.eng, selected, populator.GridSpec{
		Rows:         params.Rows,
		Columns:      params.Columns,
		RowMargin:    params.RowMargin,
		ColumnMargin: params.ColumnMargin,
	})
	s.eng.Doc.Messenger = prev
	if res == nil {
		return reply(ctx, nil, jsonrpc2.Errorf(jsonrpc2.InvalidParams, "createGrid: %s", msg))
	}
	populator.SetSelection(s.eng, res)
	return reply(ctx, infos(res), nil)
}

func (s *Server) setSelection(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params SetSelectionParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return reply(ctx, nil, jsonrpc2.Errorf(jsonrpc2.InvalidParams, "setSelection: %v", err))
	}
	byID := map[string]*doc.Layer{}
	for _, page := range s.eng.Doc.Pages() {
		page.Visit(func(y *doc.Layer) bool {
			byID[y.ID] = y
			return true
		})
	}
	layers := make([]*doc.Layer, 0, len(params.IDs))
	for _, id := range params.IDs {
		y := byID[id]
		if y == nil {
			return reply(ctx, nil, jsonrpc2.Errorf(jsonrpc2.InvalidParams, "setSelection: no layer %q", id))
		}
		layers = append(layers, y)
	}
	populator.SetSelection(s.eng, layers)
	return reply(ctx, true, nil)
}
