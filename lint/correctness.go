// Copyright © 2024 The hjkls authors

package lint

import (
	"strings"

	"github.com/hjkls/hjkls/analysis"
	"github.com/hjkls/hjkls/builtins"
	"github.com/hjkls/hjkls/syntax"
)

// RuleSyntax surfaces parser ERROR nodes. Nodes that the tree's
// keycode workaround flagged as suppressed (spurious errors from
// mapping right-hand sides) are skipped.
var RuleSyntax = &Rule{
	Name:     "syntax",
	Category: "correctness",
	Severity: SeverityError,
	Doc:      "Report syntax errors found while parsing.",
	Kinds:    []syntax.Kind{syntax.KindError},
	Visit: func(p *Pass, n syntax.Node) {
		if n.IsSuppressed() {
			return
		}
		p.ReportHeader(n, "syntax error")
	},
}

// RuleScopeViolation flags l: and a: identifiers at script level.
// Both scopes only exist inside a function body.
var RuleScopeViolation = &Rule{
	Name:     "scope_violation",
	Category: "correctness",
	Severity: SeverityError,
	Doc:      "Flag l: or a: scope used outside a function body.",
	Kinds:    []syntax.Kind{syntax.KindScopedIdentifier},
	Visit: func(p *Pass, n syntax.Node) {
		scope := n.ChildOfKind(syntax.KindScope).Text()
		if scope != "l:" && scope != "a:" {
			return
		}
		if insideFunction(n) {
			return
		}
		kind := "local scope (l:)"
		if scope == "a:" {
			kind = "argument scope (a:)"
		}
		p.ReportNode(n, "'%s' uses %s outside of a function", n.Text(), kind)
	},
}

func insideFunction(n syntax.Node) bool {
	return n.EnclosingOfKind(syntax.KindFunctionDefinition).IsValid()
}

// RuleUndefinedFunction flags call sites whose target resolves
// against neither the builtin table, the document's symbols, the
// workspace index, an autoload file, nor a callable-bearing
// variable.
var RuleUndefinedFunction = &Rule{
	Name:     "undefined_function",
	Category: "correctness",
	Severity: SeverityError,
	Doc: "Flag calls to functions that are not defined anywhere visible.\n\n" +
		"The target is resolved against built-in functions, symbols in the " +
		"current document, the workspace index, and autoload files. Calls " +
		"through a:, l:, self, dictionary subscripts, and variables known to " +
		"hold a callable are never flagged.",
	Kinds: []syntax.Kind{syntax.KindCallExpression},
	Visit: func(p *Pass, n syntax.Node) {
		callee := n.Child(0)
		if !callee.IsValid() {
			return
		}

		var name string
		var scope analysis.VimScope
		switch callee.Kind() {
		case syntax.KindIdentifier:
			name = callee.Text()
		case syntax.KindScopedIdentifier:
			scope = analysis.ScopeFromPrefix(callee.ChildOfKind(syntax.KindScope).Text())
			name = callee.ChildOfKind(syntax.KindIdentifier).Text()
		default:
			// Dict-subscript, field, and lambda calls are dynamic.
			return
		}
		if name == "" || name == "self" {
			return
		}

		// a: and l: callables come from runtime values; other
		// non-script scopes name dynamic state the server does not
		// model.
		switch scope {
		case analysis.ScopeArgument, analysis.ScopeLocal,
			analysis.ScopeGlobal, analysis.ScopeBuffer,
			analysis.ScopeWindow, analysis.ScopeTab, analysis.ScopeVim:
			return
		}

		full := scope.Prefix() + name

		if strings.Contains(name, "#") {
			// Autoload call: resolvable when the file exists or the
			// symbol is known. Without workspace context, stay quiet.
			if p.Workspace == nil {
				return
			}
			if _, exists := p.Workspace.FindAutoloadFile(name); exists {
				return
			}
			if p.Semantics != nil && p.Semantics.LookupFunction(name) != nil {
				return
			}
			p.ReportNode(callee, "Unknown function: %s", name)
			return
		}

		if _, ok := builtins.LookupFunction(name); ok {
			return
		}
		if p.Semantics != nil {
			if p.Semantics.LookupFunction(full) != nil {
				return
			}
			if p.Semantics.Callables[full] {
				return
			}
		}
		if p.Workspace != nil && len(p.Workspace.Lookup(name, scope)) > 0 {
			return
		}
		// Unscoped calls may target a global user function defined in
		// a file the index has not seen; only flag when a workspace
		// view exists to consult.
		if scope == analysis.ScopeImplicit && p.Workspace == nil && !isScriptLocalOnly(name) {
			return
		}
		p.ReportNode(callee, "Unknown function: %s", full)
	},
}

// isScriptLocalOnly reports names that can only resolve within the
// current script. Lowercase unscoped names cannot be user functions
// (Vim requires a capital or a scope), so an unknown lowercase call
// is always an error.
func isScriptLocalOnly(name string) bool {
	return len(name) > 0 && name[0] >= 'a' && name[0] <= 'z'
}

// RuleArgumentCountMismatch checks call-site argument counts against
// the declared [min, max] interval of builtins and user functions. A
// variadic signature has no upper bound; defaulted parameters lower
// the minimum.
var RuleArgumentCountMismatch = &Rule{
	Name:     "argument_count_mismatch",
	Category: "correctness",
	Severity: SeverityError,
	Doc:      "Check call argument counts against the target's declared arity.",
	Kinds:    []syntax.Kind{syntax.KindCallExpression},
	Visit: func(p *Pass, n syntax.Node) {
		callee := n.Child(0)
		if !callee.IsValid() {
			return
		}

		var name, full string
		switch callee.Kind() {
		case syntax.KindIdentifier:
			name = callee.Text()
			full = name
		case syntax.KindScopedIdentifier:
			full = callee.Text()
		default:
			return
		}

		var min, max int
		var found bool
		if name != "" && !strings.Contains(name, "#") {
			if f, ok := builtins.LookupFunction(name); ok {
				min, max = f.Arity()
				found = true
				full = name
			}
		}
		if !found && p.Semantics != nil {
			if sym := p.Semantics.LookupFunction(full); sym != nil && sym.Signature != nil {
				min = sym.Signature.MinArgs()
				max = sym.Signature.MaxArgs()
				found = true
			}
		}
		if !found {
			return
		}

		argc := callArgCount(n)
		switch {
		case argc < min:
			p.ReportNode(n, "%s requires at least %d argument(s), got %d", full, min, argc)
		case max >= 0 && argc > max:
			p.ReportNode(n, "%s accepts at most %d argument(s), got %d", full, max, argc)
		}
	},
}

// callArgCount counts a call's argument children, skipping the callee
// and any error recovery nodes.
func callArgCount(call syntax.Node) int {
	n := 0
	for i := 1; i < call.ChildCount(); i++ {
		switch call.Child(i).Kind() {
		case syntax.KindError, syntax.KindComment:
		default:
			n++
		}
	}
	return n
}

// RuleAutoloadMissing warns when an autoload call names a file that
// exists under no search root. Requires workspace context.
var RuleAutoloadMissing = &Rule{
	Name:     "autoload_missing",
	Category: "suspicious",
	Severity: SeverityWarning,
	Doc:      "Warn when an autoload call's derived file does not exist.",
	Kinds:    []syntax.Kind{syntax.KindCallExpression},
	Visit: func(p *Pass, n syntax.Node) {
		if p.Workspace == nil {
			return
		}
		callee := n.Child(0)
		if !callee.IsValid() || callee.Kind() != syntax.KindIdentifier {
			return
		}
		ref, ok := analysis.ParseAutoload(callee.Text())
		if !ok {
			return
		}
		// The current document may itself define the function (it is
		// the autoload file being edited).
		if p.Semantics != nil && p.Semantics.LookupFunction(ref.Qualified()) != nil {
			return
		}
		if _, exists := p.Workspace.FindAutoloadFile(ref.Qualified()); !exists {
			p.ReportNode(callee, "Autoload file not found: %s", ref.RelPath())
		}
	},
}
