package populator

import (
	"github.com/draftkit/populator/debug"
	"github.com/draftkit/populator/doc"
)

// ResolveMasterByName finds the symbol master named name: first among
// the document's own masters, then by importing from the first valid
// library holding exactly one matching reference. Nil means the symbol
// is unavailable, not a fault.
func ResolveMasterByName(ctx *Context, name string) *doc.Layer {
	return resolveMaster(ctx, masterCriterion{name: name})
}

// ResolveMasterByID is ResolveMasterByName keyed by symbol identifier.
func ResolveMasterByID(ctx *Context, symbolID string) *doc.Layer {
	return resolveMaster(ctx, masterCriterion{symbolID: symbolID})
}

type masterCriterion struct {
	name     string
	symbolID string
}

func (c masterCriterion) matchMaster(y *doc.Layer) bool {
	if c.symbolID != "" {
		return y.SymbolID == c.symbolID
	}
	return y.Name == c.name
}

func (c masterCriterion) matchRef(r *doc.SymbolRef) bool {
	if c.symbolID != "" {
		return r.SymbolID == c.symbolID
	}
	return r.Name == c.name
}

// resolveMaster runs the two-tier search: the local document is one
// resolver source, each registered library another, consulted in order
// with an early exit on the first success. Local masters win over any
// library reference. Invalid libraries are skipped silently.
func resolveMaster(ctx *Context, c masterCriterion) *doc.Layer {
	for _, m := range ctx.Doc.SymbolMasters() {
		if c.matchMaster(m) {
			if debug.Resolve() {
				debug.Logf("resolve: local master %s\n", m.Name)
			}
			return m
		}
	}
	for _, lib := range ctx.Libraries {
		if !lib.Valid {
			if debug.Resolve() {
				debug.Logf("resolve: skipping invalid library %s\n", lib.Name)
			}
			continue
		}
		refs := lib.Refs(c.matchRef)
		if len(refs) != 1 {
			continue
		}
		if debug.Resolve() {
			debug.Logf("resolve: importing %s from library %s\n", refs[0].Name, lib.Name)
		}
		return refs[0].Import(ctx.Doc)
	}
	return nil
}
