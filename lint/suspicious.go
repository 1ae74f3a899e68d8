// Copyright © 2024 The hjkls authors

package lint

import (
	"strings"

	"github.com/hjkls/hjkls/syntax"
)

// Suspicious rules identify patterns that may behave unexpectedly.
// They are warnings, not errors.

// RuleNormalBang warns on `normal` without `!`: user mappings can
// interfere with the intended key sequence.
var RuleNormalBang = &Rule{
	Name:     "normal_bang",
	Category: "suspicious",
	Severity: SeverityWarning,
	Doc:      "Warn when `normal` is used without `!`.",
	Kinds:    []syntax.Kind{syntax.KindNormalStatement},
	Visit: func(p *Pass, n syntax.Node) {
		if n.HasChildOfKind(syntax.KindBang) {
			return
		}
		p.ReportNode(n, "'%s' uses `normal` without `!`. User mappings may interfere. Use `normal!` instead.",
			strings.TrimSpace(p.FirstLine(n)))
	},
}

// RuleMatchCase warns on `=~` or `!~` without a case modifier. The
// match honors 'ignorecase' unless `#` or `?` pins the behavior.
var RuleMatchCase = &Rule{
	Name:     "match_case",
	Category: "suspicious",
	Severity: SeverityWarning,
	Doc:      "Warn when `=~` or `!~` lacks a `#` or `?` case modifier.",
	Kinds:    []syntax.Kind{syntax.KindBinaryOperation},
	Visit: func(p *Pass, n syntax.Node) {
		var op string
		for _, c := range n.Children() {
			switch c.Kind() {
			case syntax.Kind("=~"), syntax.Kind("!~"):
				op = string(c.Kind())
			case syntax.KindMatchCase:
				return
			}
		}
		if op == "" {
			return
		}
		p.ReportNode(n, "'%s' depends on 'ignorecase'. Use `%s#` (match case) or `%s?` (ignore case) instead.",
			strings.TrimSpace(n.Text()), op, op)
	},
}

// RuleAutocmdGroup warns on autocmds defined at script level outside
// any augroup and without an inline group: re-sourcing the script
// stacks up duplicate handlers.
var RuleAutocmdGroup = &Rule{
	Name:     "autocmd_group",
	Category: "suspicious",
	Severity: SeverityWarning,
	Doc:      "Warn when `autocmd` has no enclosing augroup and no inline group.",
	Kinds:    []syntax.Kind{syntax.KindAutocmdStatement},
	Visit: func(p *Pass, n syntax.Node) {
		if n.HasChildOfKind(syntax.KindAugroupName) {
			return
		}
		if n.Parent().EnclosingOfKind(syntax.KindAugroupStatement).IsValid() {
			return
		}
		p.ReportNode(n, "autocmd outside augroup. Re-sourcing this script will add duplicate autocommands. Wrap it in `augroup ... augroup END`.")
	},
}

// RuleSetCompatible warns on `set compatible`: it disables nearly
// every Vim improvement over vi.
var RuleSetCompatible = &Rule{
	Name:     "set_compatible",
	Category: "suspicious",
	Severity: SeverityWarning,
	Doc:      "Warn on `set compatible` / `set cp`.",
	Kinds:    []syntax.Kind{syntax.KindSetItem},
	Visit: func(p *Pass, n syntax.Node) {
		name := n.ChildOfKind(syntax.KindOptionName)
		if !name.IsValid() {
			return
		}
		switch name.Text() {
		case "compatible", "cp":
			if n.Text() == name.Text() {
				p.ReportNode(n, "'set %s' enables Vi-compatible mode and disables most Vim features.", name.Text())
			}
		}
	},
}

// RuleVim9ScriptPosition warns when `vim9script` is not the first
// effective line: Vim rejects it anywhere else.
var RuleVim9ScriptPosition = &Rule{
	Name:     "vim9script_position",
	Category: "suspicious",
	Severity: SeverityWarning,
	Doc:      "Warn when `vim9script` is not the first non-empty, non-comment line.",
	Kinds:    []syntax.Kind{syntax.KindVim9Script},
	Visit: func(p *Pass, n syntax.Node) {
		row := n.StartPoint().Row
		lines := strings.Split(string(p.Src), "\n")
		for i := 0; i < row && i < len(lines); i++ {
			t := strings.TrimSpace(lines[i])
			if t == "" || strings.HasPrefix(t, "\"") || strings.HasPrefix(t, "#") {
				continue
			}
			p.ReportNode(n, "`vim9script` must be the first command of the script.")
			return
		}
	},
}
