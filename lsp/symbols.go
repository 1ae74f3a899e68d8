// Copyright © 2024 The hjkls authors

package lsp

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/hjkls/hjkls/analysis"
)

// textDocumentDocumentSymbol returns the flat list of top-level
// functions and variables.
func (s *Server) textDocumentDocumentSymbol(_ *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	doc := s.docs.Get(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}
	snap := doc.Snapshot()

	var symbols []protocol.DocumentSymbol
	for _, sym := range snap.Sem.Symbols {
		if sym.Kind == analysis.SymParameter {
			continue
		}
		// Locals only clutter the outline.
		if sym.Scope == analysis.ScopeLocal || sym.Scope == analysis.ScopeArgument {
			continue
		}
		if sym.Kind == analysis.SymVariable && sym.Parent != nil {
			continue // function-local binding
		}

		ds := protocol.DocumentSymbol{
			Name:           sym.FullName(),
			Kind:           mapSymbolKind(sym.Kind),
			Range:          pointRange(snap, sym.DefStart, sym.DefEnd),
			SelectionRange: pointRange(snap, sym.NameStart, sym.NameEnd),
		}
		if sym.Signature != nil {
			ds.Detail = strPtr("(" + sym.Signature.ParamString() + ")")
		}
		symbols = append(symbols, ds)
	}
	return symbols, nil
}

// mapSymbolKind converts an analysis.SymbolKind to an LSP SymbolKind.
func mapSymbolKind(kind analysis.SymbolKind) protocol.SymbolKind {
	switch kind {
	case analysis.SymFunction, analysis.SymAutoloadFunction:
		return protocol.SymbolKindFunction
	default:
		return protocol.SymbolKindVariable
	}
}
