// Copyright © 2024 The hjkls authors

package formatter

import (
	"strings"

	"github.com/hjkls/hjkls/syntax"
)

// separatorPass inserts a space after argument-separating commas and
// after dictionary-entry colons. Trailing commas are left untouched;
// separators inside strings never surface because the gaps come from
// tree node positions.
func separatorPass(text string, tree *syntax.Tree, cfg *Config) string {
	var edits []edit

	tree.Walk(func(n syntax.Node) bool {
		switch n.Kind() {
		case syntax.KindCallExpression:
			if cfg.SpaceAfterComma {
				edits = append(edits, commaEdits(text, n.Children()[1:])...)
			}
		case syntax.KindList, syntax.KindParameters:
			if cfg.SpaceAfterComma {
				edits = append(edits, commaEdits(text, n.Children())...)
			}
		case syntax.KindDictionary:
			if cfg.SpaceAfterComma {
				edits = append(edits, commaEdits(text, n.Children())...)
			}
			if cfg.SpaceAfterColon {
				for _, entry := range n.Children() {
					if entry.Kind() == syntax.KindDictionaryEntry {
						edits = append(edits, colonEdits(text, entry)...)
					}
				}
			}
		}
		return true
	})

	return applyEdits(text, edits)
}

// commaEdits normalizes the gap between consecutive items to ", ".
func commaEdits(text string, items []syntax.Node) []edit {
	var edits []edit
	for i := 1; i < len(items); i++ {
		prev := items[i-1]
		cur := items[i]
		if prev.Kind() == syntax.KindError || cur.Kind() == syntax.KindError {
			continue
		}
		start := prev.EndByte()
		end := cur.StartByte()
		if start >= end || end > len(text) {
			continue
		}
		gap := text[start:end]
		if strings.ContainsAny(gap, "\n\\") {
			continue
		}
		if !strings.Contains(gap, ",") {
			continue
		}
		if gap != ", " {
			edits = append(edits, edit{start: start, end: end, text: ", "})
		}
	}
	return edits
}

// colonEdits normalizes a dictionary entry's key-value separator to
// ": ".
func colonEdits(text string, entry syntax.Node) []edit {
	children := entry.Children()
	if len(children) != 2 {
		return nil
	}
	start := children[0].EndByte()
	end := children[1].StartByte()
	if start >= end || end > len(text) {
		return nil
	}
	gap := text[start:end]
	if strings.ContainsAny(gap, "\n\\") || !strings.Contains(gap, ":") {
		return nil
	}
	if gap != ": " {
		return []edit{{start: start, end: end, text: ": "}}
	}
	return nil
}
