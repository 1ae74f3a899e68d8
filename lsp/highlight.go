// Copyright © 2024 The hjkls authors

package lsp

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// textDocumentDocumentHighlight handles documentHighlight requests:
// references within the current file only, with the definition marked
// as a write occurrence.
func (s *Server) textDocumentDocumentHighlight(_ *glsp.Context, params *protocol.DocumentHighlightParams) ([]protocol.DocumentHighlight, error) {
	doc := s.docs.Get(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}
	snap := doc.Snapshot()

	ref := identifierAt(snap, params.Position)
	if ref == nil {
		return nil, nil
	}

	read := protocol.DocumentHighlightKindRead
	write := protocol.DocumentHighlightKindWrite
	var highlights []protocol.DocumentHighlight

	if sym := snap.Sem.Lookup(ref.Name, ref.Scope); sym != nil {
		highlights = append(highlights, protocol.DocumentHighlight{
			Range: pointRange(snap, sym.NameStart, sym.NameEnd),
			Kind:  &write,
		})
	}

	full := ref.FullName()
	for _, occ := range snap.Sem.References {
		if occ.FullName() != full {
			continue
		}
		highlights = append(highlights, protocol.DocumentHighlight{
			Range: pointRange(snap, occ.Start, occ.End),
			Kind:  &read,
		})
	}

	if len(highlights) == 0 {
		return nil, nil
	}
	return highlights, nil
}
