// Copyright © 2024 The hjkls authors

package lsp

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/hjkls/hjkls/formatter"
)

// textDocumentFormatting formats the whole document and returns a
// single full-document replacement edit, or nil when nothing changes.
func (s *Server) textDocumentFormatting(_ *glsp.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.Get(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}
	snap := doc.Snapshot()
	content := snap.Buf.Text()
	if content == "" {
		return nil, nil
	}

	cfg := *s.formatConfig().Format
	if tabSize, ok := params.Options["tabSize"]; ok {
		switch v := tabSize.(type) {
		case float64:
			if v > 0 {
				cfg.IndentWidth = int(v)
			}
		case int:
			if v > 0 {
				cfg.IndentWidth = v
			}
		}
	}
	if insertSpaces, ok := params.Options["insertSpaces"].(bool); ok {
		cfg.UseTabs = !insertSpaces
	}

	formatted := string(formatter.Format([]byte(content), &cfg))
	if formatted == content {
		return nil, nil
	}

	endLine := snap.Buf.LineCount()
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End:   protocol.Position{Line: safeUint(endLine), Character: 0},
			},
			NewText: formatted,
		},
	}, nil
}
