// Copyright © 2024 The hjkls authors

package formatter

import (
	"strings"

	"github.com/hjkls/hjkls/syntax"
)

// indentPass rewrites each line's leading whitespace from block
// depth. Lines strictly between a block header and its closing line
// are one level deeper; elseif/else/catch/finally headers sit at the
// parent level; continuation lines add the continuation indent.
func indentPass(text string, tree *syntax.Tree, cfg *Config) string {
	lines := strings.Split(text, "\n")
	depth := make([]int, len(lines))

	tree.Walk(func(n syntax.Node) bool {
		switch n.Kind() {
		case syntax.KindFunctionDefinition, syntax.KindIfStatement,
			syntax.KindForLoop, syntax.KindWhileLoop,
			syntax.KindTryStatement, syntax.KindAugroupStatement:
			start := n.StartPoint().Row
			end := n.EndPoint().Row
			for r := start + 1; r < end && r < len(depth); r++ {
				depth[r]++
			}
		case syntax.KindElseifStatement, syntax.KindElseStatement,
			syntax.KindCatchClause, syntax.KindFinallyClause:
			r := n.StartPoint().Row
			if r < len(depth) {
				depth[r]--
			}
		}
		return true
	})

	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" {
			continue
		}
		level := depth[i]
		if level < 0 {
			level = 0
		}
		spaces := level * cfg.IndentWidth
		if strings.HasPrefix(trimmed, "\\") {
			spaces += cfg.ContinuationIndent()
		}
		lines[i] = indentString(spaces, cfg) + trimmed
	}
	return strings.Join(lines, "\n")
}

// indentString renders an indent of the given visual width: spaces,
// or tabs with a spaces remainder when use_tabs is set.
func indentString(spaces int, cfg *Config) string {
	if !cfg.UseTabs || cfg.IndentWidth <= 0 {
		return strings.Repeat(" ", spaces)
	}
	tabs := spaces / cfg.IndentWidth
	rem := spaces % cfg.IndentWidth
	return strings.Repeat("\t", tabs) + strings.Repeat(" ", rem)
}

// trimTrailingPass removes trailing whitespace from every line.
func trimTrailingPass(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
