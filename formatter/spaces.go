// Copyright © 2024 The hjkls authors

package formatter

import (
	"strings"

	"github.com/hjkls/hjkls/syntax"
)

// normalizeSpacesPass collapses interior runs of spaces to a single
// space. Leading indentation, string literals, and comments are left
// untouched.
func normalizeSpacesPass(text string, tree *syntax.Tree) string {
	protected := protectedRanges(tree)

	var b strings.Builder
	b.Grow(len(text))
	inIndent := true
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == '\n' {
			b.WriteByte(c)
			inIndent = true
			continue
		}
		if inIndent && (c == ' ' || c == '\t') {
			b.WriteByte(c)
			continue
		}
		inIndent = false
		if c == ' ' && !inRanges(protected, i) {
			j := i
			for j < len(text) && text[j] == ' ' {
				j++
			}
			atLineEnd := j >= len(text) || text[j] == '\n'
			if j-i > 1 && !atLineEnd && !inRanges(protected, j-1) {
				b.WriteByte(' ')
				i = j - 1
				continue
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}
