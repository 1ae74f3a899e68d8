// Copyright © 2024 The hjkls authors

package formatter

import (
	"strings"

	"github.com/hjkls/hjkls/syntax"
)

// Format rewrites source through the configured passes and returns
// the new text image. If cfg is nil, DefaultConfig() is used. The
// passes run in a fixed order; offset-shifting passes re-parse before
// the next tree-guided pass so node ranges stay accurate.
func Format(src []byte, cfg *Config) []byte {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	text := string(src)

	tree := syntax.Parse([]byte(text))
	text = indentPass(text, tree, cfg)

	if cfg.TrimTrailingWhitespace {
		text = trimTrailingPass(text)
	}

	if cfg.NormalizeSpaces {
		tree = syntax.Parse([]byte(text))
		text = normalizeSpacesPass(text, tree)
	}

	if cfg.SpaceAroundOperators {
		tree = syntax.Parse([]byte(text))
		text = operatorPass(text, tree)
	}

	if cfg.SpaceAfterComma || cfg.SpaceAfterColon {
		tree = syntax.Parse([]byte(text))
		text = separatorPass(text, tree, cfg)
	}

	if cfg.InsertFinalNewline && len(text) > 0 {
		text = strings.TrimRight(text, "\n") + "\n"
	}

	return []byte(text)
}

// edit is a byte-range replacement. Applying edits back to front
// keeps earlier offsets valid.
type edit struct {
	start, end int
	text       string
}

func applyEdits(text string, edits []edit) string {
	if len(edits) == 0 {
		return text
	}
	// Sort descending by start; drop overlaps (first writer wins).
	for i := 0; i < len(edits); i++ {
		for j := i + 1; j < len(edits); j++ {
			if edits[j].start > edits[i].start {
				edits[i], edits[j] = edits[j], edits[i]
			}
		}
	}
	prevStart := len(text) + 1
	out := text
	for _, e := range edits {
		if e.end > prevStart {
			continue // overlapping edit, skip
		}
		out = out[:e.start] + e.text + out[e.end:]
		prevStart = e.start
	}
	return out
}

// protectedRanges collects byte ranges of strings and comments so
// text passes leave them alone.
func protectedRanges(tree *syntax.Tree) [][2]int {
	var ranges [][2]int
	tree.Walk(func(n syntax.Node) bool {
		switch n.Kind() {
		case syntax.KindStringLiteral, syntax.KindComment:
			ranges = append(ranges, [2]int{n.StartByte(), n.EndByte()})
			return false
		}
		return true
	})
	return ranges
}

func inRanges(ranges [][2]int, pos int) bool {
	for _, r := range ranges {
		if pos >= r[0] && pos < r[1] {
			return true
		}
	}
	return false
}
