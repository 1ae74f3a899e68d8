// Copyright © 2024 The hjkls authors

package lsp

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// maxWorkspaceSymbols caps workspace/symbol responses.
const maxWorkspaceSymbols = 500

// workspaceSymbol handles the workspace/symbol request with
// case-insensitive substring matching; prefix matches rank first.
func (s *Server) workspaceSymbol(_ *glsp.Context, params *protocol.WorkspaceSymbolParams) ([]protocol.SymbolInformation, error) {
	s.ensureWorkspaceIndex()

	hits := s.index.Search(params.Query, maxWorkspaceSymbols)
	var results []protocol.SymbolInformation
	for _, hit := range hits {
		uri := hit.URI
		if uri == "" {
			uri = pathToURI(hit.Path)
		}
		results = append(results, protocol.SymbolInformation{
			Name: hit.Symbol.FullName(),
			Kind: mapSymbolKind(hit.Symbol.Kind),
			Location: protocol.Location{
				URI: uri,
				Range: protocol.Range{
					Start: protocol.Position{Line: safeUint(hit.Symbol.NameStart.Row), Character: safeUint(hit.Symbol.NameStart.Col)},
					End:   protocol.Position{Line: safeUint(hit.Symbol.NameEnd.Row), Character: safeUint(hit.Symbol.NameEnd.Col)},
				},
			},
		})
	}
	return results, nil
}
