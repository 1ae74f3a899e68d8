// Copyright © 2024 The hjkls authors

package builtins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSignatureArity(t *testing.T) {
	tests := []struct {
		sig string
		min int
		max int
	}{
		{"strlen({string})", 1, 1},
		{"strchars({string} [, {skipcc}])", 1, 2},
		{"strpart({string}, {start} [, {len} [, {chars}]])", 2, 4},
		{"substitute({string}, {pat}, {sub}, {flags})", 4, 4},
		{"printf({fmt}, {expr1}...)", 1, -1},
		{"tempname()", 0, 0},
		{"bufnr([{buf} [, {create}]])", 0, 2},
		{"range({start} [, {end} [, {stride}]])", 1, 3},
		// The literal 1 in the help signature is not a {param}; only
		// braced parameters count.
		{"getreg([{regname} [, 1 [, {list}]]])", 0, 2},
	}
	for _, tt := range tests {
		t.Run(tt.sig, func(t *testing.T) {
			min, max := parseSignatureArity(tt.sig)
			assert.Equal(t, tt.min, min, "min")
			assert.Equal(t, tt.max, max, "max")
		})
	}
}

func TestLookupFunction(t *testing.T) {
	f, ok := LookupFunction("strlen")
	require.True(t, ok)
	assert.Equal(t, "strlen({string})", f.Signature)
	min, max := f.Arity()
	assert.Equal(t, 1, min)
	assert.Equal(t, 1, max)

	_, ok = LookupFunction("NotARealFunction")
	assert.False(t, ok)
}

func TestAvailability(t *testing.T) {
	f, ok := LookupFunction("job_start")
	require.True(t, ok)
	assert.Equal(t, AvailVimOnly, f.Availability)
	assert.True(t, f.Availability.Compatible(ModeVim))
	assert.False(t, f.Availability.Compatible(ModeNeovim))
	assert.True(t, f.Availability.Compatible(ModeBoth))
	assert.Equal(t, " [Vim only]", f.Availability.LabelSuffix())
}

func TestIsEvent(t *testing.T) {
	assert.True(t, IsEvent("BufWritePre"))
	assert.True(t, IsEvent("bufwritepre"))
	assert.False(t, IsEvent("MyGroup"))
}

func TestLookupOption(t *testing.T) {
	o, ok := LookupOption("compatible")
	require.True(t, ok)
	assert.Equal(t, "cp", o.Short)

	byShort, ok := LookupOption("cp")
	require.True(t, ok)
	assert.Same(t, o, byShort)
}
