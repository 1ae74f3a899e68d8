// Copyright © 2024 The hjkls authors

package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func pos(line, char int) protocol.Position {
	return protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(char)}
}

func TestBufferOffsets(t *testing.T) {
	b, err := NewBuffer("let x = 1\nlet y = 2\n")
	require.NoError(t, err)

	assert.Equal(t, 3, b.LineCount())
	assert.Equal(t, "let y = 2", b.Line(1))
	assert.Equal(t, 0, b.OffsetAt(pos(0, 0)))
	assert.Equal(t, 10, b.OffsetAt(pos(1, 0)))
	assert.Equal(t, 14, b.OffsetAt(pos(1, 4)))

	assert.Equal(t, pos(1, 4), b.PositionAt(14))
	assert.Equal(t, Point{Row: 1, Col: 4}, b.PointAt(14))
}

func TestBufferUTF16Mapping(t *testing.T) {
	// "é" is 2 bytes, 1 UTF-16 unit; "😀" is 4 bytes, 2 UTF-16 units.
	b, err := NewBuffer("let é = '😀'\n")
	require.NoError(t, err)

	// Cursor after "é " (character 6 in UTF-16 units) lands on '='.
	off := b.OffsetAt(pos(0, 6))
	assert.Equal(t, byte('='), b.Text()[off])

	// Position past the emoji counts two UTF-16 units for it.
	emojiStart := b.OffsetAt(pos(0, 9))
	after := b.PositionAt(emojiStart + 4)
	assert.Equal(t, pos(0, 11), after)
}

func TestBufferClamping(t *testing.T) {
	b, err := NewBuffer("short\n")
	require.NoError(t, err)

	// Column beyond the line clamps to line end.
	assert.Equal(t, 5, b.OffsetAt(pos(0, 99)))
	// Line beyond the document clamps to document end.
	assert.Equal(t, len(b.Text()), b.OffsetAt(pos(42, 0)))
}

func TestBufferRejectsInvalidUTF8(t *testing.T) {
	_, err := NewBuffer(string([]byte{0xff, 0xfe}))
	assert.Error(t, err)
}

func TestBufferApplyChange(t *testing.T) {
	b, err := NewBuffer("let x = 1\n")
	require.NoError(t, err)

	rng := protocol.Range{Start: pos(0, 8), End: pos(0, 9)}
	require.NoError(t, b.ApplyChange(&rng, "42"))
	assert.Equal(t, "let x = 42\n", b.Text())

	// Whole-document replacement with a nil range.
	require.NoError(t, b.ApplyChange(nil, "let y = 2\n"))
	assert.Equal(t, "let y = 2\n", b.Text())
}
