// Copyright © 2024 The hjkls authors

package syntax

import (
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// utf16RuneLen returns the number of UTF-16 code units needed to
// encode r (unicode/utf16 has no RuneLen helper).
func utf16RuneLen(r rune) int {
	if r1, r2 := utf16.EncodeRune(r); r1 != utf8.RuneError || r2 != utf8.RuneError {
		return 2
	}
	return 1
}

// Buffer holds a UTF-8 document and translates between byte offsets
// and LSP positions (line, UTF-16 code unit). The translation happens
// here once; nothing downstream sees code-unit offsets.
type Buffer struct {
	text  string
	lines []int // byte offset of each line start
}

// NewBuffer creates a buffer from initial text. Malformed UTF-8 is
// rejected so the protocol layer can answer with an error instead of
// feeding garbage to the parser.
func NewBuffer(text string) (*Buffer, error) {
	if !utf8.ValidString(text) {
		return nil, fmt.Errorf("document is not valid UTF-8")
	}
	b := &Buffer{}
	b.setText(text)
	return b, nil
}

func (b *Buffer) setText(text string) {
	b.text = text
	b.lines = b.lines[:0]
	b.lines = append(b.lines, 0)
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			b.lines = append(b.lines, i+1)
		}
	}
}

// Text returns the current document text.
func (b *Buffer) Text() string { return b.text }

// Bytes returns the byte view consumed by the parser.
func (b *Buffer) Bytes() []byte { return []byte(b.text) }

// LineCount returns the number of lines in the buffer.
func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the text of the 0-based line without its newline.
func (b *Buffer) Line(i int) string {
	if i < 0 || i >= len(b.lines) {
		return ""
	}
	start := b.lines[i]
	end := len(b.text)
	if i+1 < len(b.lines) {
		end = b.lines[i+1] - 1
	}
	if end < start {
		end = start
	}
	return b.text[start:end]
}

// SetText replaces the whole document.
func (b *Buffer) SetText(text string) error {
	if !utf8.ValidString(text) {
		return fmt.Errorf("document is not valid UTF-8")
	}
	b.setText(text)
	return nil
}

// ApplyChange applies one LSP content change. A nil range means
// whole-document replacement.
func (b *Buffer) ApplyChange(rng *protocol.Range, text string) error {
	if !utf8.ValidString(text) {
		return fmt.Errorf("change text is not valid UTF-8")
	}
	if rng == nil {
		b.setText(text)
		return nil
	}
	start := b.OffsetAt(rng.Start)
	end := b.OffsetAt(rng.End)
	if end < start {
		start, end = end, start
	}
	b.setText(b.text[:start] + text + b.text[end:])
	return nil
}

// OffsetAt converts an LSP position to a byte offset. Positions
// outside the document clamp to the nearest valid offset.
func (b *Buffer) OffsetAt(pos protocol.Position) int {
	line := int(pos.Line)
	if line < 0 {
		return 0
	}
	if line >= len(b.lines) {
		return len(b.text)
	}
	lineStart := b.lines[line]
	lineEnd := len(b.text)
	if line+1 < len(b.lines) {
		lineEnd = b.lines[line+1] - 1
	}

	// Walk the line rune by rune counting UTF-16 code units.
	target := int(pos.Character)
	units := 0
	off := lineStart
	for off < lineEnd && units < target {
		r, size := utf8.DecodeRuneInString(b.text[off:])
		units += utf16RuneLen(r)
		off += size
	}
	return off
}

// PositionAt converts a byte offset to an LSP position. Offsets
// outside the document clamp to the end.
func (b *Buffer) PositionAt(offset int) protocol.Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(b.text) {
		offset = len(b.text)
	}
	line := b.lineForOffset(offset)
	lineStart := b.lines[line]

	units := 0
	for off := lineStart; off < offset; {
		r, size := utf8.DecodeRuneInString(b.text[off:])
		units += utf16RuneLen(r)
		off += size
	}
	return protocol.Position{
		Line:      protocol.UInteger(line),      // #nosec G115 -- line counts fit in uint32
		Character: protocol.UInteger(units),     // #nosec G115 -- column counts fit in uint32
	}
}

// PointAt converts a byte offset to a tree Point (row, byte column).
func (b *Buffer) PointAt(offset int) Point {
	if offset < 0 {
		offset = 0
	}
	if offset > len(b.text) {
		offset = len(b.text)
	}
	line := b.lineForOffset(offset)
	return Point{Row: line, Col: offset - b.lines[line]}
}

// PointFor converts an LSP position to a tree Point.
func (b *Buffer) PointFor(pos protocol.Position) Point {
	return b.PointAt(b.OffsetAt(pos))
}

// PositionForPoint converts a tree Point back to an LSP position.
func (b *Buffer) PositionForPoint(p Point) protocol.Position {
	if p.Row < 0 {
		return protocol.Position{}
	}
	if p.Row >= len(b.lines) {
		return b.PositionAt(len(b.text))
	}
	return b.PositionAt(b.lines[p.Row] + p.Col)
}

// RangeForNode converts a node's points to an LSP range.
func (b *Buffer) RangeForNode(n Node) protocol.Range {
	return protocol.Range{
		Start: b.PositionForPoint(n.StartPoint()),
		End:   b.PositionForPoint(n.EndPoint()),
	}
}

func (b *Buffer) lineForOffset(offset int) int {
	lo, hi := 0, len(b.lines)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if b.lines[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}
