// Copyright © 2024 The hjkls authors

// Package formatter rewrites Vim script through deterministic,
// tree-guided passes: block indentation, whitespace normalization,
// operator and separator spacing. Each pass is gated by a config
// flag and the whole pipeline is idempotent.
package formatter

// Config holds the formatting options from the [format] table of
// .hjkls.toml.
type Config struct {
	// IndentWidth is the number of spaces per block level.
	IndentWidth int
	// UseTabs emits tabs (with a spaces remainder) for indentation.
	UseTabs bool
	// LineContinuationIndent is the extra indent for lines starting
	// with a backslash. 0 means IndentWidth * 3.
	LineContinuationIndent int
	// TrimTrailingWhitespace removes whitespace at line ends.
	TrimTrailingWhitespace bool
	// InsertFinalNewline guarantees a single terminating newline.
	InsertFinalNewline bool
	// NormalizeSpaces collapses interior space runs outside strings
	// and comments.
	NormalizeSpaces bool
	// SpaceAroundOperators spaces binary operators and tightens unary
	// ones.
	SpaceAroundOperators bool
	// SpaceAfterComma inserts a space after argument separators.
	SpaceAfterComma bool
	// SpaceAfterColon inserts a space after dictionary-entry colons.
	SpaceAfterColon bool
}

// DefaultConfig returns the default formatting configuration.
func DefaultConfig() *Config {
	return &Config{
		IndentWidth:            2,
		UseTabs:                false,
		LineContinuationIndent: 0, // IndentWidth * 3
		TrimTrailingWhitespace: true,
		InsertFinalNewline:     true,
		NormalizeSpaces:        true,
		SpaceAroundOperators:   true,
		SpaceAfterComma:        true,
		SpaceAfterColon:        true,
	}
}

// ContinuationIndent returns the effective continuation indent.
func (c *Config) ContinuationIndent() int {
	if c.LineContinuationIndent > 0 {
		return c.LineContinuationIndent
	}
	return c.IndentWidth * 3
}
