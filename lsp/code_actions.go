// Copyright © 2024 The hjkls authors

package lsp

import (
	"fmt"
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/hjkls/hjkls/lint"
	"github.com/hjkls/hjkls/syntax"
)

// textDocumentCodeAction returns quick fixes for the diagnostics in
// the requested range. Each fix is registered against its rule code.
func (s *Server) textDocumentCodeAction(_ *glsp.Context, params *protocol.CodeActionParams) (any, error) {
	doc := s.docs.Get(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}

	if len(params.Context.Only) > 0 && !containsString(params.Context.Only, protocol.CodeActionKindQuickFix) {
		return nil, nil
	}

	snap := doc.Snapshot()

	var actions []protocol.CodeAction
	for _, diag := range params.Context.Diagnostics {
		if diag.Source == nil || *diag.Source != serverName || diag.Code == nil {
			continue
		}
		code := fmt.Sprintf("%v", diag.Code.Value)

		if fix := s.ruleFix(snap, diag, code); fix != nil {
			actions = append(actions, *fix)
		}
		// Every lint diagnostic can be silenced with a directive.
		if !strings.HasPrefix(code, "correctness#syntax") {
			actions = append(actions, suppressAction(snap, diag, code))
		}
	}

	if len(actions) == 0 {
		return nil, nil
	}
	return actions, nil
}

// ruleFix builds the registered quick fix for a rule code, or nil
// when the rule has no mechanical fix.
func (s *Server) ruleFix(snap Snapshot, diag protocol.Diagnostic, code string) *protocol.CodeAction {
	switch code {
	case "style#double_dot":
		return s.fixDoubleDot(snap, diag)
	case "suspicious#normal_bang":
		return s.fixNormalBang(snap, diag)
	case "style#key_notation":
		return s.fixKeyNotation(snap, diag)
	case "style#function_bang":
		return s.fixFunctionBang(snap, diag)
	case "style#abort":
		return s.fixMissingAbort(snap, diag)
	case "style#plug_noremap":
		return s.fixPlugNoremap(snap, diag)
	}
	return nil
}

// fixDoubleDot replaces the `.` concatenation operator with `..`.
func (s *Server) fixDoubleDot(snap Snapshot, diag protocol.Diagnostic) *protocol.CodeAction {
	node := nodeAtRangeStart(snap, diag.Range, syntax.KindBinaryOperation)
	if !node.IsValid() {
		return nil
	}
	op := node.ChildOfKind(syntax.Kind("."))
	if !op.IsValid() {
		return nil
	}
	return quickFix("Use `..` for concatenation", snap.URI, diag, protocol.TextEdit{
		Range:   pointRange(snap, op.StartPoint(), op.EndPoint()),
		NewText: "..",
	})
}

// fixNormalBang inserts the bang after the normal command word.
func (s *Server) fixNormalBang(snap Snapshot, diag protocol.Diagnostic) *protocol.CodeAction {
	node := nodeAtRangeStart(snap, diag.Range, syntax.KindNormalStatement)
	if !node.IsValid() {
		return nil
	}
	// The command word runs until the first space.
	text := node.Text()
	wordLen := len(text)
	if i := strings.IndexAny(text, " \t"); i >= 0 {
		wordLen = i
	}
	at := snap.Buf.PositionForPoint(syntax.Point{
		Row: node.StartPoint().Row,
		Col: node.StartPoint().Col + wordLen,
	})
	return quickFix("Use `normal!`", snap.URI, diag, protocol.TextEdit{
		Range:   protocol.Range{Start: at, End: at},
		NewText: "!",
	})
}

// fixKeyNotation replaces the key token with its canonical form.
func (s *Server) fixKeyNotation(snap Snapshot, diag protocol.Diagnostic) *protocol.CodeAction {
	node := nodeAtRangeStart(snap, diag.Range, syntax.KindKeycode)
	if !node.IsValid() {
		return nil
	}
	normalized, changed := lint.NormalizeKeyNotation(node.Text())
	if !changed {
		return nil
	}
	return quickFix(fmt.Sprintf("Use %s", normalized), snap.URI, diag, protocol.TextEdit{
		Range:   pointRange(snap, node.StartPoint(), node.EndPoint()),
		NewText: normalized,
	})
}

// fixFunctionBang deletes the `!` from a script-local definition.
func (s *Server) fixFunctionBang(snap Snapshot, diag protocol.Diagnostic) *protocol.CodeAction {
	node := nodeAtRangeStart(snap, diag.Range, syntax.KindFunctionDefinition)
	if !node.IsValid() {
		return nil
	}
	bang := node.ChildOfKind(syntax.KindBang)
	if !bang.IsValid() {
		return nil
	}
	return quickFix("Remove `!`", snap.URI, diag, protocol.TextEdit{
		Range:   pointRange(snap, bang.StartPoint(), bang.EndPoint()),
		NewText: "",
	})
}

// fixMissingAbort appends the abort attribute to the header line.
func (s *Server) fixMissingAbort(snap Snapshot, diag protocol.Diagnostic) *protocol.CodeAction {
	line := int(diag.Range.Start.Line)
	lineText := snap.Buf.Line(line)
	at := protocol.Position{Line: safeUint(line), Character: safeUint(len(lineText))}
	return quickFix("Add `abort` attribute", snap.URI, diag, protocol.TextEdit{
		Range:   protocol.Range{Start: at, End: at},
		NewText: " abort",
	})
}

// fixPlugNoremap swaps the map command for its noremap spelling.
func (s *Server) fixPlugNoremap(snap Snapshot, diag protocol.Diagnostic) *protocol.CodeAction {
	node := nodeAtRangeStart(snap, diag.Range, syntax.KindMapCommand)
	if !node.IsValid() {
		return nil
	}
	eq, ok := syntax.NoremapEquivalent(node.Text())
	if !ok {
		return nil
	}
	return quickFix(fmt.Sprintf("Use %s", eq), snap.URI, diag, protocol.TextEdit{
		Range:   pointRange(snap, node.StartPoint(), node.EndPoint()),
		NewText: eq,
	})
}

// suppressAction inserts an hjkls:ignore-next-line directive above
// the diagnostic, using the comment leader matching the script.
func suppressAction(snap Snapshot, diag protocol.Diagnostic, code string) protocol.CodeAction {
	line := int(diag.Range.Start.Line)
	lineText := snap.Buf.Line(line)
	indent := lineText[:len(lineText)-len(strings.TrimLeft(lineText, " \t"))]

	leader := "\""
	if strings.HasPrefix(strings.TrimSpace(snap.Buf.Line(0)), "vim9script") {
		leader = "#"
	}
	at := protocol.Position{Line: safeUint(line), Character: 0}
	kind := protocol.CodeActionKindQuickFix
	return protocol.CodeAction{
		Title:       fmt.Sprintf("Suppress with hjkls:ignore-next-line %s", code),
		Kind:        &kind,
		Diagnostics: []protocol.Diagnostic{diag},
		Edit: &protocol.WorkspaceEdit{
			Changes: map[protocol.DocumentUri][]protocol.TextEdit{
				snap.URI: {{
					Range:   protocol.Range{Start: at, End: at},
					NewText: fmt.Sprintf("%s%s hjkls:ignore-next-line %s\n", indent, leader, code),
				}},
			},
		},
	}
}

// nodeAtRangeStart finds the node of the wanted kind at or above the
// diagnostic's start position.
func nodeAtRangeStart(snap Snapshot, rng protocol.Range, kind syntax.Kind) syntax.Node {
	p := snap.Buf.PointFor(rng.Start)
	node := snap.Tree.NodeAt(p)
	if !node.IsValid() {
		return syntax.Node{}
	}
	return node.EnclosingOfKind(kind)
}

func quickFix(title, uri string, diag protocol.Diagnostic, edit protocol.TextEdit) *protocol.CodeAction {
	kind := protocol.CodeActionKindQuickFix
	preferred := true
	return &protocol.CodeAction{
		Title:       title,
		Kind:        &kind,
		IsPreferred: &preferred,
		Diagnostics: []protocol.Diagnostic{diag},
		Edit: &protocol.WorkspaceEdit{
			Changes: map[protocol.DocumentUri][]protocol.TextEdit{
				uri: {edit},
			},
		},
	}
}

func containsString(ss []protocol.CodeActionKind, v protocol.CodeActionKind) bool {
	for _, s := range ss {
		if s == v {
			return true
		}
	}
	return false
}
