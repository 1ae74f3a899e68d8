// Copyright © 2024 The hjkls authors

package lsp

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/hjkls/hjkls/analysis"
	"github.com/hjkls/hjkls/syntax"
)

// textDocumentReferences handles the textDocument/references request.
// Script-scoped symbols stay within the document; global and autoload
// symbols extend across the workspace.
func (s *Server) textDocumentReferences(_ *glsp.Context, params *protocol.ReferenceParams) ([]protocol.Location, error) {
	doc := s.docs.Get(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}
	snap := doc.Snapshot()

	ref := identifierAt(snap, params.Position)
	if ref == nil {
		return nil, nil
	}

	var locs []protocol.Location

	if params.Context.IncludeDeclaration {
		res := s.resolve(snap, ref)
		if res.Sym != nil {
			uri := s.locationURI(snap, res)
			locs = append(locs, protocol.Location{
				URI:   uri,
				Range: crossFileRange(snap, uri, res.Sym.NameStart, res.Sym.NameEnd),
			})
		}
	}

	full := ref.FullName()
	for _, occ := range snap.Sem.References {
		if occ.FullName() != full {
			continue
		}
		locs = append(locs, protocol.Location{
			URI:   snap.URI,
			Range: pointRange(snap, occ.Start, occ.End),
		})
	}

	if crossFileSymbol(ref) {
		s.ensureWorkspaceIndex()
		for _, hit := range s.index.ReferencesTo(full) {
			uri := hit.URI
			if uri == "" {
				uri = s.resolveURI(snap.URI, hit.Path)
			}
			if uri == snap.URI {
				continue // already collected from the live document
			}
			locs = append(locs, protocol.Location{
				URI:   uri,
				Range: crossFileRange(snap, uri, hit.Ref.Start, hit.Ref.End),
			})
		}
	}

	return locs, nil
}

// crossFileSymbol reports whether a symbol's references can live in
// other files.
func crossFileSymbol(ref *identRef) bool {
	if ref.IsAutoload() {
		return true
	}
	switch ref.Scope {
	case analysis.ScopeGlobal, analysis.ScopeImplicit:
		return true
	}
	return false
}

// crossFileRange builds a range for a location that may live in a
// different file. Same-file locations go through the buffer for
// correct UTF-16 columns; other files use the raw byte columns.
func crossFileRange(snap Snapshot, uri string, start, end syntax.Point) protocol.Range {
	if uri == snap.URI {
		return pointRange(snap, start, end)
	}
	return protocol.Range{
		Start: protocol.Position{Line: safeUint(start.Row), Character: safeUint(start.Col)},
		End:   protocol.Position{Line: safeUint(end.Row), Character: safeUint(end.Col)},
	}
}
