// Package populator implements the layer engine behind data population:
// predicate queries over layer trees, symbol master resolution across
// the document and its linked libraries, grid expansion of a selection,
// and the selection ordering contract.
//
// All operations take an explicit *Context; nothing reads ambient
// document state. Absence of a result is a nil or empty return, never an
// error.
package populator

import "github.com/draftkit/populator/doc"

// Context carries the host state a core operation acts on: the active
// document and the registered libraries in registration order.
type Context struct {
	Doc       *doc.Document
	Libraries []*doc.Library
}
