// Copyright © 2024 The hjkls authors

package lsp

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/hjkls/hjkls/syntax"
)

// foldableKinds produce one folding region each.
var foldableKinds = map[syntax.Kind]bool{
	syntax.KindFunctionDefinition: true,
	syntax.KindIfStatement:        true,
	syntax.KindForLoop:            true,
	syntax.KindWhileLoop:          true,
	syntax.KindTryStatement:       true,
	syntax.KindAugroupStatement:   true,
}

// textDocumentFoldingRange returns one region per multi-line block:
// functions, conditionals, loops, try blocks, and augroups.
func (s *Server) textDocumentFoldingRange(_ *glsp.Context, params *protocol.FoldingRangeParams) ([]protocol.FoldingRange, error) {
	doc := s.docs.Get(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}
	snap := doc.Snapshot()

	kind := string(protocol.FoldingRangeKindRegion)
	var ranges []protocol.FoldingRange
	snap.Tree.Walk(func(n syntax.Node) bool {
		if !foldableKinds[n.Kind()] {
			return true
		}
		start := n.StartPoint().Row
		end := n.EndPoint().Row
		if end > start {
			ranges = append(ranges, protocol.FoldingRange{
				StartLine: safeUint(start),
				EndLine:   safeUint(end),
				Kind:      &kind,
			})
		}
		return true
	})
	return ranges, nil
}
