// Copyright © 2024 The hjkls authors

package lsp

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// textDocumentSelectionRange returns, for each input position, the
// chain of ancestor node ranges from the innermost node to the root.
func (s *Server) textDocumentSelectionRange(_ *glsp.Context, params *protocol.SelectionRangeParams) ([]protocol.SelectionRange, error) {
	doc := s.docs.Get(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}
	snap := doc.Snapshot()

	var results []protocol.SelectionRange
	for _, pos := range params.Positions {
		node := snap.Tree.NodeAt(snap.Buf.PointFor(pos))
		if !node.IsValid() {
			results = append(results, protocol.SelectionRange{
				Range: protocol.Range{Start: pos, End: pos},
			})
			continue
		}

		var sel *protocol.SelectionRange
		for _, ancestor := range node.Ancestors() {
			rng := pointRange(snap, ancestor.StartPoint(), ancestor.EndPoint())
			// Skip ancestors that add no new range.
			if sel != nil && rng == sel.Range {
				continue
			}
			sel = &protocol.SelectionRange{Range: rng, Parent: sel}
		}

		// The chain was built outermost-last; invert so the response
		// leads with the innermost range.
		results = append(results, *invertSelectionChain(sel))
	}
	return results, nil
}

// invertSelectionChain reverses a parent chain built outward-in into
// the innermost-first shape the protocol wants.
func invertSelectionChain(outermost *protocol.SelectionRange) *protocol.SelectionRange {
	var prev *protocol.SelectionRange
	cur := outermost
	for cur != nil {
		next := cur.Parent
		cur.Parent = prev
		prev = cur
		cur = next
	}
	return prev
}
