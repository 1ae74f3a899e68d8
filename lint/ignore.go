// Copyright © 2024 The hjkls authors

package lint

import "strings"

// Inline comment directives for diagnostic suppression:
//
//	" hjkls:ignore <rules>            ignore to end of file
//	" hjkls:ignore-next-line <rules>  ignore the next line only
//
// Rules are comma-separated category#rule ids; an empty list matches
// every rule. Both `"` (legacy) and `#` (vim9) comment styles work.

// IgnoreKind is the reach of an ignore directive.
type IgnoreKind int

const (
	// IgnoreToEOF suppresses from the line after the directive to the
	// end of the file.
	IgnoreToEOF IgnoreKind = iota
	// IgnoreNextLine suppresses the line after the directive only.
	IgnoreNextLine
)

// IgnoreDirective is one parsed suppression comment.
type IgnoreDirective struct {
	// Line is the 0-based line the directive appears on.
	Line int
	// Rules lists the category#rule ids to ignore; empty means all.
	Rules []string
	Kind  IgnoreKind
}

// ParseIgnoreDirectives scans source lines for suppression comments.
func ParseIgnoreDirectives(source string) []IgnoreDirective {
	var directives []IgnoreDirective
	for lineNum, line := range strings.Split(source, "\n") {
		commentPos, ok := findCommentStart(line)
		if !ok {
			continue
		}
		comment := line[commentPos:]

		// Check the longer directive first.
		if i := strings.Index(comment, "hjkls:ignore-next-line"); i >= 0 {
			directives = append(directives, IgnoreDirective{
				Line:  lineNum,
				Rules: parseRuleList(comment[i+len("hjkls:ignore-next-line"):]),
				Kind:  IgnoreNextLine,
			})
		} else if i := strings.Index(comment, "hjkls:ignore"); i >= 0 {
			directives = append(directives, IgnoreDirective{
				Line:  lineNum,
				Rules: parseRuleList(comment[i+len("hjkls:ignore"):]),
				Kind:  IgnoreToEOF,
			})
		}
	}
	return directives
}

// findCommentStart locates the comment lead-in (`"` or `#`) on a
// line: at line start after optional whitespace, or preceded by
// whitespace after code. The heuristic can hit these characters
// inside string literals, which is harmless for an unusual marker
// like hjkls:ignore.
func findCommentStart(line string) (int, bool) {
	trimmed := strings.TrimLeft(line, " \t")
	if strings.HasPrefix(trimmed, "\"") || strings.HasPrefix(trimmed, "#") {
		return len(line) - len(trimmed), true
	}
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c != '"' && c != '#' {
			continue
		}
		if i == 0 || line[i-1] == ' ' || line[i-1] == '\t' {
			return i, true
		}
	}
	return 0, false
}

func parseRuleList(text string) []string {
	var rules []string
	for _, part := range strings.Split(text, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			rules = append(rules, part)
		}
	}
	return rules
}

// FilterIgnored drops diagnostics matched by an active directive. The
// diagnostic's primary line is its start line; a next-line directive
// on line L covers L+1 only, a to-EOF directive covers every line
// after L.
func FilterIgnored(diags []Diagnostic, directives []IgnoreDirective) []Diagnostic {
	if len(directives) == 0 {
		return diags
	}
	var kept []Diagnostic
	for _, d := range diags {
		if !ignored(d, directives) {
			kept = append(kept, d)
		}
	}
	return kept
}

func ignored(d Diagnostic, directives []IgnoreDirective) bool {
	for _, dir := range directives {
		switch dir.Kind {
		case IgnoreNextLine:
			if dir.Line+1 == d.Start.Row && matchesRules(dir.Rules, d) {
				return true
			}
		case IgnoreToEOF:
			if dir.Line < d.Start.Row && matchesRules(dir.Rules, d) {
				return true
			}
		}
	}
	return false
}

// matchesRules checks a diagnostic against a directive's rule list.
// Ids are category#rule; a bare rule name also matches.
func matchesRules(rules []string, d Diagnostic) bool {
	if len(rules) == 0 {
		return true
	}
	for _, rule := range rules {
		if cat, name, found := strings.Cut(rule, "#"); found {
			if cat == d.Category && name == d.Rule {
				return true
			}
		} else if rule == d.Rule {
			return true
		}
	}
	return false
}
