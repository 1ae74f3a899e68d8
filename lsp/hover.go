// Copyright © 2024 The hjkls authors

package lsp

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// hoverDocWidth wraps builtin documentation paragraphs for hover
// popups.
const hoverDocWidth = 72

// textDocumentHover handles the textDocument/hover request.
func (s *Server) textDocumentHover(_ *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
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

	content := s.buildHoverContent(snap, ref, res)
	if content == "" {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: content,
		},
	}, nil
}

// buildHoverContent builds Markdown hover text.
func (s *Server) buildHoverContent(snap Snapshot, ref *identRef, res *resolution) string {
	var sb strings.Builder

	switch {
	case res.Builtin != nil:
		fmt.Fprintf(&sb, "**builtin** `%s`", res.Builtin.Name)
		fmt.Fprintf(&sb, "\n\n```vim\n%s\n```", res.Builtin.Signature)
		if res.Builtin.Description != "" {
			fmt.Fprintf(&sb, "\n\n%s", wordwrap.String(res.Builtin.Description, hoverDocWidth))
		}
		if suffix := res.Builtin.Availability.LabelSuffix(); suffix != "" {
			fmt.Fprintf(&sb, "\n\n*%s*", strings.TrimSpace(suffix))
		}

	case res.Sym != nil:
		fmt.Fprintf(&sb, "**%s** `%s`", res.Sym.Kind, res.Sym.FullName())
		if res.Sym.Signature != nil {
			fmt.Fprintf(&sb, "\n\n```vim\n%s\n```", res.Sym.SignatureString())
		}
		if res.Path != "" {
			fmt.Fprintf(&sb, "\n\n*Defined in %s:%d*", res.Path, res.Sym.NameStart.Row+1)
		}

	case ref.IsAutoload() && res.AutoloadPath != "":
		fmt.Fprintf(&sb, "**autoload function** `%s`", ref.Name)
		if res.AutoloadExists {
			fmt.Fprintf(&sb, "\n\n*Expected in %s*", res.AutoloadPath)
		} else {
			fmt.Fprintf(&sb, "\n\n*Expected in %s (not found)*", res.AutoloadPath)
		}

	default:
		return ""
	}
	return sb.String()
}
