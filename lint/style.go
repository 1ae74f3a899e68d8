// Copyright © 2024 The hjkls authors

package lint

import (
	"strings"

	"github.com/hjkls/hjkls/syntax"
)

// Style rules are hints: no bugs, just consistency.

// RuleDoubleDot prefers `..` over `.` for string concatenation.
// Numeric and dictionary-field contexts never reach this rule: the
// tree gives floats their own literal kind and field access its own
// node kind.
var RuleDoubleDot = &Rule{
	Name:     "double_dot",
	Category: "style",
	Severity: SeverityHint,
	Doc:      "Prefer `..` over `.` for string concatenation.",
	Kinds:    []syntax.Kind{syntax.KindBinaryOperation},
	Visit: func(p *Pass, n syntax.Node) {
		if !n.HasChildOfKind(syntax.Kind(".")) {
			return
		}
		p.ReportNode(n, "'%s' uses `.` for string concatenation. Use `..` instead. In Vim9 script, `..` is required.",
			strings.TrimSpace(n.Text()))
	},
}

// RuleFunctionBang notes that `function!` is unnecessary for s:
// functions: script-local names cannot collide across scripts.
var RuleFunctionBang = &Rule{
	Name:     "function_bang",
	Category: "style",
	Severity: SeverityHint,
	Doc:      "Note that `function!` is unnecessary for s: functions.",
	Kinds:    []syntax.Kind{syntax.KindFunctionDefinition},
	Visit: func(p *Pass, n syntax.Node) {
		if n.IsError() || !n.HasChildOfKind(syntax.KindBang) {
			return
		}
		decl := n.ChildOfKind(syntax.KindFunctionDeclaration)
		if !decl.IsValid() {
			return
		}
		scoped := decl.ChildOfKind(syntax.KindScopedIdentifier)
		if !scoped.IsValid() || scoped.ChildOfKind(syntax.KindScope).Text() != "s:" {
			return
		}
		p.ReportHeader(n, "'%s' uses `function!` for a script-local function. The `!` is unnecessary for `s:` functions.",
			strings.TrimSpace(p.FirstLine(n)))
	},
}

// RuleAbort suggests the `abort` attribute: without it a function
// keeps executing after an error.
var RuleAbort = &Rule{
	Name:     "abort",
	Category: "style",
	Severity: SeverityHint,
	Doc:      "Suggest the `abort` attribute on function definitions.",
	Kinds:    []syntax.Kind{syntax.KindFunctionDefinition},
	Visit: func(p *Pass, n syntax.Node) {
		if n.IsError() {
			return
		}
		decl := n.ChildOfKind(syntax.KindFunctionDeclaration)
		if !decl.IsValid() || decl.HasChildOfKind(syntax.KindAbort) {
			return
		}
		p.ReportHeader(n, "'%s' is missing the `abort` attribute. Functions without `abort` continue execution after errors.",
			strings.TrimSpace(p.FirstLine(n)))
	},
}

// RuleSingleQuote prefers single quotes for strings without escapes.
var RuleSingleQuote = &Rule{
	Name:     "single_quote",
	Category: "style",
	Severity: SeverityHint,
	Doc:      "Prefer single quotes for strings without escape sequences.",
	Kinds:    []syntax.Kind{syntax.KindStringLiteral},
	Visit: func(p *Pass, n syntax.Node) {
		text := n.Text()
		if len(text) < 2 || text[0] != '"' || text[len(text)-1] != '"' {
			return
		}
		content := text[1 : len(text)-1]
		if strings.ContainsAny(content, "\\'") {
			return
		}
		p.ReportNode(n, "%s can use single quotes. Double quotes are only needed for escape sequences.", text)
	},
}

// RuleKeyNotation normalizes key tokens to the form Vim's help uses:
// uppercase modifier letters, Title-case named keys.
var RuleKeyNotation = &Rule{
	Name:     "key_notation",
	Category: "style",
	Severity: SeverityHint,
	Doc:      "Normalize key notation to the standard help form (<CR>, <Esc>, <C-a>).",
	Kinds:    []syntax.Kind{syntax.KindKeycode},
	Visit: func(p *Pass, n syntax.Node) {
		text := n.Text()
		normalized, changed := NormalizeKeyNotation(text)
		if !changed {
			return
		}
		p.ReportNode(n, "%s should be written as %s (see :h key-notation)", text, normalized)
	},
}

// RulePlugNoremap flags recursive map commands whose right-hand side
// contains <Plug>; the quick fix swaps in the noremap spelling.
var RulePlugNoremap = &Rule{
	Name:     "plug_noremap",
	Category: "style",
	Severity: SeverityHint,
	Doc:      "Flag recursive map commands with a <Plug> right-hand side.",
	Kinds:    []syntax.Kind{syntax.KindMapStatement},
	Visit: func(p *Pass, n syntax.Node) {
		cmd := n.ChildOfKind(syntax.KindMapCommand)
		if !cmd.IsValid() || !syntax.IsRecursiveMapCommand(cmd.Text()) {
			return
		}
		var sides []syntax.Node
		for _, c := range n.Children() {
			if c.Kind() == syntax.KindMapSide {
				sides = append(sides, c)
			}
		}
		if len(sides) < 2 {
			return // no rhs: the command lists mappings
		}
		rhs := sides[len(sides)-1]
		for _, kc := range rhs.Children() {
			if kc.Kind() == syntax.KindKeycode && strings.EqualFold(kc.Text(), "<Plug>") {
				p.ReportNode(cmd, "'%s' with a <Plug> right-hand side. Consider '%s' to make remapping explicit.",
					cmd.Text(), noremapHint(cmd.Text()))
				return
			}
		}
	},
}

func noremapHint(cmd string) string {
	if eq, ok := syntax.NoremapEquivalent(cmd); ok {
		return eq
	}
	return cmd
}
