// Copyright © 2024 The hjkls authors

package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func format(t *testing.T, src string) string {
	t.Helper()
	return string(Format([]byte(src), nil))
}

// checkIdempotent asserts that formatting its own output is a no-op.
func checkIdempotent(t *testing.T, formatted string) {
	t.Helper()
	again := string(Format([]byte(formatted), nil))
	assert.Equal(t, formatted, again, "formatter must be idempotent")
}

func TestFormatBlockIndent(t *testing.T) {
	src := "function! F()\n" +
		"let x=1+2\n" +
		"if x==1\n" +
		"let y=[1,2,3]\n" +
		"endif\n" +
		"endfunction\n"
	want := "function! F()\n" +
		"  let x = 1 + 2\n" +
		"  if x == 1\n" +
		"    let y = [1, 2, 3]\n" +
		"  endif\n" +
		"endfunction\n"

	got := format(t, src)
	require.Equal(t, want, got)
	checkIdempotent(t, got)
}

func TestFormatElseAndCatchAtParentLevel(t *testing.T) {
	src := "if a\n" +
		"echo 1\n" +
		"elseif b\n" +
		"echo 2\n" +
		"else\n" +
		"echo 3\n" +
		"endif\n" +
		"try\n" +
		"echo 4\n" +
		"catch /E484/\n" +
		"echo 5\n" +
		"finally\n" +
		"echo 6\n" +
		"endtry\n"
	want := "if a\n" +
		"  echo 1\n" +
		"elseif b\n" +
		"  echo 2\n" +
		"else\n" +
		"  echo 3\n" +
		"endif\n" +
		"try\n" +
		"  echo 4\n" +
		"catch /E484/\n" +
		"  echo 5\n" +
		"finally\n" +
		"  echo 6\n" +
		"endtry\n"

	got := format(t, src)
	require.Equal(t, want, got)
	checkIdempotent(t, got)
}

func TestFormatAugroupIndent(t *testing.T) {
	src := "augroup fmt\n" +
		"autocmd BufWritePre * echo 1\n" +
		"augroup END\n"
	want := "augroup fmt\n" +
		"  autocmd BufWritePre * echo 1\n" +
		"augroup END\n"

	got := format(t, src)
	require.Equal(t, want, got)
	checkIdempotent(t, got)
}

func TestFormatContinuationIndent(t *testing.T) {
	src := "let g:list = [1,\n" +
		"\\ 2]\n"
	want := "let g:list = [1,\n" +
		"      \\ 2]\n"

	got := format(t, src)
	require.Equal(t, want, got)
	checkIdempotent(t, got)
}

func TestFormatTrailingWhitespaceAndFinalNewline(t *testing.T) {
	got := format(t, "let x = 1   \nlet y = 2\t")
	assert.Equal(t, "let x = 1\nlet y = 2\n", got)
	checkIdempotent(t, got)
}

func TestFormatNormalizeSpaces(t *testing.T) {
	got := format(t, "echo  'a   b'    . nr\n")
	// The run inside the string survives; the run outside collapses.
	assert.Equal(t, "echo 'a   b' . nr\n", got)
	checkIdempotent(t, got)
}

func TestFormatUnaryOperators(t *testing.T) {
	got := format(t, "let x = ! empty(s)\nlet y = - 1\n")
	assert.Equal(t, "let x = !empty(s)\nlet y = -1\n", got)
	checkIdempotent(t, got)
}

func TestFormatComparisonOperators(t *testing.T) {
	got := format(t, "if a=~#'pat'\nendif\n")
	assert.Equal(t, "if a =~# 'pat'\nendif\n", got)
	checkIdempotent(t, got)
}

func TestFormatDictColonSpacing(t *testing.T) {
	got := format(t, "let d = {'a':1,'b':2}\n")
	assert.Equal(t, "let d = {'a': 1, 'b': 2}\n", got)
	checkIdempotent(t, got)
}

func TestFormatCompoundAssignment(t *testing.T) {
	got := format(t, "let s:count+=1\nlet msg.='!'\n")
	assert.Equal(t, "let s:count += 1\nlet msg .= '!'\n", got)
	checkIdempotent(t, got)
}

func TestFormatGatedPasses(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SpaceAroundOperators = false
	cfg.SpaceAfterComma = false
	cfg.SpaceAfterColon = false

	got := string(Format([]byte("let x=[1,2]\n"), cfg))
	assert.Equal(t, "let x=[1,2]\n", got)

	cfg = DefaultConfig()
	cfg.InsertFinalNewline = false
	got = string(Format([]byte("let x = 1"), cfg))
	assert.Equal(t, "let x = 1", got)

	cfg = DefaultConfig()
	cfg.TrimTrailingWhitespace = false
	got = string(Format([]byte("let x = 1   \n"), cfg))
	assert.Equal(t, "let x = 1   \n", got)
}

func TestFormatUseTabs(t *testing.T) {
	cfg := DefaultConfig()
	cfg.UseTabs = true
	src := "function! F()\nlet x = 1\nendfunction\n"
	got := string(Format([]byte(src), cfg))
	assert.Equal(t, "function! F()\n\tlet x = 1\nendfunction\n", got)
}

func TestFormatPreservesComments(t *testing.T) {
	src := "\" a  comment  with  runs\nlet x = 1\n"
	got := format(t, src)
	assert.Equal(t, src, got)
	checkIdempotent(t, got)
}

func TestFormatEmptyInput(t *testing.T) {
	assert.Equal(t, "", format(t, ""))
}
