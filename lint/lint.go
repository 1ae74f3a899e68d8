// Copyright © 2024 The hjkls authors

// Package lint provides static analysis for Vim script.
//
// The engine is modeled after go vet: each check is an independent
// Rule that inspects parse-tree nodes and reports diagnostics. Rules
// declare the node kinds they care about, so one pre-order walk
// dispatches every node to the interested rules; the registry order
// keeps output deterministic. Inline hjkls:ignore directives filter
// the result before it is returned.
package lint

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/hjkls/hjkls/analysis"
	"github.com/hjkls/hjkls/syntax"
)

// Severity indicates the severity level of a diagnostic.
type Severity int

const (
	SeverityError Severity = iota + 1
	SeverityWarning
	SeverityHint
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityHint:
		return "hint"
	default:
		return "unknown"
	}
}

// MarshalJSON serializes the severity as a JSON string.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Diagnostic is a single reported problem.
type Diagnostic struct {
	Start    syntax.Point `json:"start"`
	End      syntax.Point `json:"end"`
	Severity Severity     `json:"severity"`
	Category string       `json:"category"`
	Rule     string       `json:"rule"`
	Message  string       `json:"message"`
}

// Code returns the diagnostic code in category#rule form.
func (d Diagnostic) Code() string {
	return d.Category + "#" + d.Rule
}

// String renders the diagnostic in go vet style.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%d:%d: %s (%s)", d.Start.Row+1, d.Start.Col+1, d.Message, d.Code())
}

// Workspace is the cross-file view a rule may consult. Nil when
// linting a single file without workspace context; rules that need
// it degrade to no-ops.
type Workspace interface {
	// FindAutoloadFile derives the defining file for an autoload name
	// and reports whether it exists under any search root.
	FindAutoloadFile(qualified string) (path string, exists bool)
	// Lookup resolves a symbol across the workspace.
	Lookup(name string, scope analysis.VimScope) []analysis.Hit
}

// RuleConfig decides which rules run. Nil enables everything.
type RuleConfig interface {
	RuleEnabled(category, rule string) bool
}

// Rule defines a single lint check.
type Rule struct {
	// Name is the rule identifier within its category.
	Name string

	// Category groups the rule: correctness, suspicious, or style.
	Category string

	// Severity is the severity of diagnostics from this rule.
	Severity Severity

	// Doc is a human-readable description. The first line is a short
	// summary.
	Doc string

	// Kinds lists the node kinds dispatched to Visit.
	Kinds []syntax.Kind

	// Visit inspects one node of a subscribed kind.
	Visit func(p *Pass, n syntax.Node)
}

// Pass provides context to running rules.
type Pass struct {
	Tree      *syntax.Tree
	Src       []byte
	Semantics *analysis.Result
	Workspace Workspace

	rule        *Rule
	diagnostics []Diagnostic
}

// Report records a finding for the current rule.
func (p *Pass) Report(start, end syntax.Point, format string, args ...interface{}) {
	p.diagnostics = append(p.diagnostics, Diagnostic{
		Start:    start,
		End:      end,
		Severity: p.rule.Severity,
		Category: p.rule.Category,
		Rule:     p.rule.Name,
		Message:  fmt.Sprintf(format, args...),
	})
}

// ReportNode records a finding covering a node's full range.
func (p *Pass) ReportNode(n syntax.Node, format string, args ...interface{}) {
	p.Report(n.StartPoint(), n.EndPoint(), format, args...)
}

// ReportHeader records a finding covering only a node's first line.
func (p *Pass) ReportHeader(n syntax.Node, format string, args ...interface{}) {
	start := n.StartPoint()
	end := n.EndPoint()
	if end.Row > start.Row {
		text := n.Text()
		firstLen := len(text)
		for i := 0; i < len(text); i++ {
			if text[i] == '\n' {
				firstLen = i
				break
			}
		}
		end = syntax.Point{Row: start.Row, Col: start.Col + firstLen}
	}
	p.Report(start, end, format, args...)
}

// FirstLine returns the first source line of a node, for messages.
func (p *Pass) FirstLine(n syntax.Node) string {
	text := n.Text()
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			return text[:i]
		}
	}
	return text
}

// Linter runs a set of rules over a parsed document.
type Linter struct {
	Rules []*Rule
}

// New creates a linter with the default rule set.
func New() *Linter {
	return &Linter{Rules: DefaultRules()}
}

// Run evaluates all enabled rules and returns the suppressed-filtered,
// sorted diagnostic set.
func (l *Linter) Run(tree *syntax.Tree, src []byte, sem *analysis.Result, ws Workspace, cfg RuleConfig) []Diagnostic {
	if tree == nil {
		return nil
	}

	// Index rules by the node kinds they subscribe to.
	byKind := make(map[syntax.Kind][]*Rule)
	passes := make(map[*Rule]*Pass)
	for _, rule := range l.Rules {
		if cfg != nil && !cfg.RuleEnabled(rule.Category, rule.Name) {
			continue
		}
		passes[rule] = &Pass{Tree: tree, Src: src, Semantics: sem, Workspace: ws, rule: rule}
		for _, k := range rule.Kinds {
			byKind[k] = append(byKind[k], rule)
		}
	}

	// Single pre-order walk dispatching nodes to interested rules.
	tree.Walk(func(n syntax.Node) bool {
		for _, rule := range byKind[n.Kind()] {
			rule.Visit(passes[rule], n)
		}
		return true
	})

	var all []Diagnostic
	for _, rule := range l.Rules {
		if pass, ok := passes[rule]; ok {
			all = append(all, pass.diagnostics...)
		}
	}

	all = FilterIgnored(all, ParseIgnoreDirectives(string(src)))

	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Start.Row != all[j].Start.Row {
			return all[i].Start.Row < all[j].Start.Row
		}
		if all[i].Start.Col != all[j].Start.Col {
			return all[i].Start.Col < all[j].Start.Col
		}
		return all[i].Code() < all[j].Code()
	})
	return all
}

// LintSource parses and lints source in one call, without workspace
// context. Used by the CLI.
func (l *Linter) LintSource(src []byte, cfg RuleConfig) []Diagnostic {
	tree := syntax.Parse(src)
	sem := analysis.Analyze(tree)
	return l.Run(tree, src, sem, nil, cfg)
}

// FormatText writes diagnostics in go vet text format, one per line
// prefixed with the file name.
func FormatText(w io.Writer, filename string, diags []Diagnostic) {
	for _, d := range diags {
		fmt.Fprintf(w, "%s:%s\n", filename, d.String())
	}
}

// FormatJSON writes diagnostics as indented JSON.
func FormatJSON(w io.Writer, diags []Diagnostic) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(diags)
}

// DefaultRules returns the built-in rule set, ordered for
// deterministic output: correctness, then suspicious, then style.
func DefaultRules() []*Rule {
	return []*Rule{
		RuleSyntax,
		RuleUndefinedFunction,
		RuleScopeViolation,
		RuleArgumentCountMismatch,
		RuleNormalBang,
		RuleMatchCase,
		RuleAutocmdGroup,
		RuleSetCompatible,
		RuleVim9ScriptPosition,
		RuleAutoloadMissing,
		RuleDoubleDot,
		RuleFunctionBang,
		RuleAbort,
		RuleSingleQuote,
		RuleKeyNotation,
		RulePlugNoremap,
	}
}

// RuleNames returns the sorted names of all default rules as
// category#rule codes.
func RuleNames() []string {
	rules := DefaultRules()
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.Category + "#" + r.Name
	}
	sort.Strings(names)
	return names
}
