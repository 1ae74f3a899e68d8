// Copyright © 2024 The hjkls authors

package lsp

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/hjkls/hjkls/builtins"
	"github.com/hjkls/hjkls/syntax"
)

// textDocumentSignatureHelp handles textDocument/signatureHelp: find
// the innermost enclosing call, compute the active parameter from the
// comma position, and return the target's signature.
func (s *Server) textDocumentSignatureHelp(_ *glsp.Context, params *protocol.SignatureHelpParams) (*protocol.SignatureHelp, error) {
	doc := s.docs.Get(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}
	snap := doc.Snapshot()

	p := snap.Buf.PointFor(params.Position)
	call := enclosingCall(snap.Tree, p)
	if !call.IsValid() {
		return nil, nil
	}
	callee := call.Child(0)
	if !callee.IsValid() {
		return nil, nil
	}
	activeParam := activeParameter(snap, call, params.Position)

	switch callee.Kind() {
	case syntax.KindIdentifier:
		name := callee.Text()
		if f, ok := builtins.LookupFunction(name); ok {
			return builtinSignatureHelp(f, activeParam), nil
		}
		if sym := snap.Sem.LookupFunction(name); sym != nil && sym.Signature != nil {
			return userSignatureHelp(sym.SignatureString(), sym.Signature.ParamString(), activeParam), nil
		}
		// Autoload functions indexed across the workspace.
		if strings.Contains(name, "#") {
			if _, hit, _ := s.index.LookupAutoload(name); hit != nil && hit.Symbol.Signature != nil {
				return userSignatureHelp(hit.Symbol.SignatureString(), hit.Symbol.Signature.ParamString(), activeParam), nil
			}
		}
	case syntax.KindScopedIdentifier:
		if sym := snap.Sem.LookupFunction(callee.Text()); sym != nil && sym.Signature != nil {
			return userSignatureHelp(sym.SignatureString(), sym.Signature.ParamString(), activeParam), nil
		}
	}
	return nil, nil
}

// enclosingCall returns the innermost call_expression containing the
// point.
func enclosingCall(tree *syntax.Tree, p syntax.Point) syntax.Node {
	node := tree.NodeAt(p)
	if !node.IsValid() {
		return syntax.Node{}
	}
	return node.EnclosingOfKind(syntax.KindCallExpression)
}

// activeParameter counts top-level commas between the opening paren
// and the cursor, respecting string and bracket nesting.
func activeParameter(snap Snapshot, call syntax.Node, pos protocol.Position) int {
	text := snap.Buf.Text()
	offset := snap.Buf.OffsetAt(pos)
	start := call.StartByte()
	end := call.EndByte()
	if offset > end {
		offset = end
	}

	open := strings.IndexByte(text[start:end], '(')
	if open < 0 {
		return 0
	}
	depth := 0
	commas := 0
	for i := start + open + 1; i < offset; i++ {
		switch text[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case '\'', '"':
			i = skipStringAt(text, i, offset)
		case ',':
			if depth == 0 {
				commas++
			}
		}
	}
	return commas
}

func skipStringAt(text string, i, end int) int {
	quote := text[i]
	j := i + 1
	for j < end {
		c := text[j]
		if quote == '"' && c == '\\' {
			j += 2
			continue
		}
		if c == quote {
			return j
		}
		if c == '\n' {
			return j
		}
		j++
	}
	return end - 1
}

// builtinSignatureHelp builds the response for a builtin, with
// parameter sub-ranges extracted from the help-notation signature.
func builtinSignatureHelp(f *builtins.Function, activeParam int) *protocol.SignatureHelp {
	sig := protocol.SignatureInformation{Label: f.Signature}
	if f.Description != "" {
		sig.Documentation = protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: wordwrap.String(f.Description, hoverDocWidth),
		}
	}

	// Each {param} span in the signature becomes a parameter label.
	var params []protocol.ParameterInformation
	for i := 0; i < len(f.Signature); i++ {
		if f.Signature[i] != '{' {
			continue
		}
		close := strings.IndexByte(f.Signature[i:], '}')
		if close < 0 {
			break
		}
		params = append(params, protocol.ParameterInformation{
			Label: []protocol.UInteger{safeUint(i), safeUint(i + close + 1)},
		})
		i += close
	}
	sig.Parameters = params

	return signatureHelpResponse(sig, activeParam, len(params))
}

// userSignatureHelp builds the response for a user-defined function.
func userSignatureHelp(label, paramList string, activeParam int) *protocol.SignatureHelp {
	sig := protocol.SignatureInformation{Label: label}

	var params []protocol.ParameterInformation
	if paramList != "" {
		offset := strings.IndexByte(label, '(') + 1
		for _, part := range strings.Split(paramList, ", ") {
			idx := strings.Index(label[offset:], part)
			if idx < 0 {
				continue
			}
			start := offset + idx
			params = append(params, protocol.ParameterInformation{
				Label: []protocol.UInteger{safeUint(start), safeUint(start + len(part))},
			})
			offset = start + len(part)
		}
	}
	sig.Parameters = params

	return signatureHelpResponse(sig, activeParam, len(params))
}

func signatureHelpResponse(sig protocol.SignatureInformation, activeParam, paramCount int) *protocol.SignatureHelp {
	if paramCount > 0 && activeParam >= paramCount {
		activeParam = paramCount - 1
	}
	if activeParam < 0 {
		activeParam = 0
	}
	active := protocol.UInteger(0)
	activeP := safeUint(activeParam)
	return &protocol.SignatureHelp{
		Signatures:      []protocol.SignatureInformation{sig},
		ActiveSignature: &active,
		ActiveParameter: &activeP,
	}
}
