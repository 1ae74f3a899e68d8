// Copyright © 2024 The hjkls authors

package lsp

import (
	"os"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// textDocumentDefinition handles the textDocument/definition request.
// Autoload calls resolve to the derived file path even before it has
// been parsed; builtins have no navigable source.
func (s *Server) textDocumentDefinition(_ *glsp.Context, params *protocol.DefinitionParams) (any, error) {
	doc := s.docs.Get(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}
	snap := doc.Snapshot()

	ref := identifierAt(snap, params.Position)
	if ref == nil {
		return nil, nil
	}
	res := s.resolve(snap, ref)

	if res.Builtin != nil {
		return nil, nil
	}

	if res.Sym != nil {
		uri := s.locationURI(snap, res)
		return protocol.Location{
			URI:   uri,
			Range: crossFileRange(snap, uri, res.Sym.NameStart, res.Sym.NameEnd),
		}, nil
	}

	// Autoload with no parsed symbol: jump to the file when it
	// exists.
	if ref.IsAutoload() && res.AutoloadPath != "" {
		if _, err := os.Stat(res.AutoloadPath); err == nil {
			return protocol.Location{
				URI:   pathToURI(res.AutoloadPath),
				Range: protocol.Range{},
			}, nil
		}
	}
	return nil, nil
}
