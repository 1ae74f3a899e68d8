// Copyright © 2024 The hjkls authors

package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hjkls/hjkls/analysis"
	"github.com/hjkls/hjkls/syntax"
)

func runLint(t *testing.T, src string) []Diagnostic {
	t.Helper()
	return New().LintSource([]byte(src), nil)
}

func diagsByCode(diags []Diagnostic, code string) []Diagnostic {
	var out []Diagnostic
	for _, d := range diags {
		if d.Code() == code {
			out = append(out, d)
		}
	}
	return out
}

func TestSyntaxErrorDiagnostic(t *testing.T) {
	diags := runLint(t, "function! Broken(\nendfunction\n")

	errs := diagsByCode(diags, "correctness#syntax")
	require.Len(t, errs, 1)
	assert.Equal(t, SeverityError, errs[0].Severity)
	assert.Equal(t, 0, errs[0].Start.Row)
}

func TestScopeViolationOutsideFunction(t *testing.T) {
	diags := runLint(t, "let l:x = 1\n")

	viols := diagsByCode(diags, "correctness#scope_violation")
	require.Len(t, viols, 1)
	// The range covers l:x.
	assert.Equal(t, 0, viols[0].Start.Row)
	assert.Equal(t, 4, viols[0].Start.Col)
	assert.Equal(t, 7, viols[0].End.Col)
}

func TestScopeAllowedInsideFunction(t *testing.T) {
	src := "function! F() abort\n  let l:x = 1\n  echo a:0\nendfunction\n"
	diags := runLint(t, src)
	assert.Empty(t, diagsByCode(diags, "correctness#scope_violation"))
}

func TestArgumentCountMismatchBuiltin(t *testing.T) {
	diags := runLint(t, "call strlen()\n")

	arity := diagsByCode(diags, "correctness#argument_count_mismatch")
	require.Len(t, arity, 1)
	assert.Contains(t, arity[0].Message, "strlen")
	assert.Contains(t, arity[0].Message, "1 argument")
}

func TestArgumentCountMismatchUserFunction(t *testing.T) {
	src := "function! s:two(a, b) abort\nendfunction\ncall s:two(1)\ncall s:two(1, 2)\ncall s:two(1, 2, 3)\n"
	diags := diagsByCode(runLint(t, src), "correctness#argument_count_mismatch")
	require.Len(t, diags, 2)
	assert.Equal(t, 2, diags[0].Start.Row)
	assert.Equal(t, 4, diags[1].Start.Row)
}

func TestVariadicArity(t *testing.T) {
	src := "function! s:v(a, ...) abort\nendfunction\ncall s:v(1, 2, 3, 4)\ncall s:v()\n"
	diags := diagsByCode(runLint(t, src), "correctness#argument_count_mismatch")
	require.Len(t, diags, 1)
	assert.Equal(t, 3, diags[0].Start.Row)
}

func TestUndefinedFunctionSuppression(t *testing.T) {
	src := "function! s:go() abort\n" +
		"  call s:defined()\n" +
		"  call a:Cb()\n" +
		"  call l:Fn()\n" +
		"  call self.run()\n" +
		"  call s:d['k']()\n" +
		"  call s:F()\n" +
		"endfunction\n" +
		"function! s:defined() abort\nendfunction\n" +
		"let s:F = function('strlen')\n" +
		"let s:d = {}\n"
	diags := diagsByCode(runLint(t, src), "correctness#undefined_function")
	assert.Empty(t, diags)
}

func TestUndefinedFunctionFlagged(t *testing.T) {
	diags := diagsByCode(runLint(t, "call s:nowhere()\n"), "correctness#undefined_function")
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "s:nowhere")
}

func TestNormalBang(t *testing.T) {
	diags := runLint(t, "normal j\nnormal! k\n")

	warns := diagsByCode(diags, "suspicious#normal_bang")
	require.Len(t, warns, 1)
	assert.Equal(t, 0, warns[0].Start.Row)
	assert.Equal(t, SeverityWarning, warns[0].Severity)
}

func TestMatchCase(t *testing.T) {
	src := "if a =~ 'x'\nendif\nif b =~# 'y'\nendif\nif c !~? 'z'\nendif\nif d !~ 'w'\nendif\n"
	warns := diagsByCode(runLint(t, src), "suspicious#match_case")
	require.Len(t, warns, 2)
	assert.Equal(t, 0, warns[0].Start.Row)
	assert.Equal(t, 6, warns[1].Start.Row)
}

func TestAutocmdGroup(t *testing.T) {
	// Bare autocmd at script level: flagged.
	warns := diagsByCode(runLint(t, "autocmd BufWritePre * echo 1\n"), "suspicious#autocmd_group")
	require.Len(t, warns, 1)

	// Inside an augroup: fine.
	src := "augroup fmt\n  autocmd BufWritePre * echo 1\naugroup END\n"
	assert.Empty(t, diagsByCode(runLint(t, src), "suspicious#autocmd_group"))

	// Inline group: fine.
	assert.Empty(t, diagsByCode(runLint(t, "autocmd fmt BufWritePre * echo 1\n"), "suspicious#autocmd_group"))
}

func TestSetCompatible(t *testing.T) {
	warns := diagsByCode(runLint(t, "set compatible\n"), "suspicious#set_compatible")
	require.Len(t, warns, 1)

	warns = diagsByCode(runLint(t, "set cp\n"), "suspicious#set_compatible")
	require.Len(t, warns, 1)

	assert.Empty(t, diagsByCode(runLint(t, "set nocompatible\n"), "suspicious#set_compatible"))
	assert.Empty(t, diagsByCode(runLint(t, "set cpoptions=aBc\n"), "suspicious#set_compatible"))
}

func TestVim9ScriptPosition(t *testing.T) {
	// First effective line: fine, even after comments and blanks.
	src := "\" header comment\n\nvim9script\n"
	assert.Empty(t, diagsByCode(runLint(t, src), "suspicious#vim9script_position"))

	src = "let g:x = 1\nvim9script\n"
	warns := diagsByCode(runLint(t, src), "suspicious#vim9script_position")
	require.Len(t, warns, 1)
	assert.Equal(t, 1, warns[0].Start.Row)
}

func TestDoubleDot(t *testing.T) {
	hints := diagsByCode(runLint(t, "let x = a . 'b'\n"), "style#double_dot")
	require.Len(t, hints, 1)
	assert.Equal(t, SeverityHint, hints[0].Severity)

	assert.Empty(t, diagsByCode(runLint(t, "let x = a .. 'b'\n"), "style#double_dot"))
	// Floats and field access are not concatenation.
	assert.Empty(t, diagsByCode(runLint(t, "let x = 1.5\n"), "style#double_dot"))
	assert.Empty(t, diagsByCode(runLint(t, "call obj.method()\n"), "style#double_dot"))
}

func TestFunctionBang(t *testing.T) {
	hints := diagsByCode(runLint(t, "function! s:priv() abort\nendfunction\n"), "style#function_bang")
	require.Len(t, hints, 1)

	assert.Empty(t, diagsByCode(runLint(t, "function s:priv() abort\nendfunction\n"), "style#function_bang"))
	assert.Empty(t, diagsByCode(runLint(t, "function! G() abort\nendfunction\n"), "style#function_bang"))
}

func TestAbortHint(t *testing.T) {
	hints := diagsByCode(runLint(t, "function! F()\nendfunction\n"), "style#abort")
	require.Len(t, hints, 1)
	// Range covers only the header line.
	assert.Equal(t, 0, hints[0].Start.Row)
	assert.Equal(t, 0, hints[0].End.Row)

	assert.Empty(t, diagsByCode(runLint(t, "function! F() abort\nendfunction\n"), "style#abort"))
}

func TestSingleQuote(t *testing.T) {
	hints := diagsByCode(runLint(t, "let x = \"plain\"\n"), "style#single_quote")
	require.Len(t, hints, 1)

	// Escapes and embedded quotes justify double quotes.
	assert.Empty(t, diagsByCode(runLint(t, "let x = \"a\\n\"\n"), "style#single_quote"))
	assert.Empty(t, diagsByCode(runLint(t, "let x = \"it's\"\n"), "style#single_quote"))
	assert.Empty(t, diagsByCode(runLint(t, "let x = 'single'\n"), "style#single_quote"))
}

func TestKeyNotationRule(t *testing.T) {
	hints := diagsByCode(runLint(t, "nnoremap <cr> :echo 1<CR>\n"), "style#key_notation")
	require.Len(t, hints, 1)
	assert.Contains(t, hints[0].Message, "<CR>")

	assert.Empty(t, diagsByCode(runLint(t, "nnoremap <CR> :echo 1<CR>\n"), "style#key_notation"))
}

func TestPlugNoremap(t *testing.T) {
	hints := diagsByCode(runLint(t, "nmap <leader>x <Plug>(do-thing)\n"), "style#plug_noremap")
	require.Len(t, hints, 1)
	assert.Contains(t, hints[0].Message, "nnoremap")

	assert.Empty(t, diagsByCode(runLint(t, "nnoremap <leader>x :call X()<CR>\n"), "style#plug_noremap"))
}

func TestIgnoreNextLineDirective(t *testing.T) {
	// Scenario: the directive covers exactly the next line.
	src := "\" hjkls:ignore-next-line suspicious#normal_bang\n" +
		"normal j\n" +
		"\n" +
		"normal k\n"
	warns := diagsByCode(runLint(t, src), "suspicious#normal_bang")
	require.Len(t, warns, 1)
	assert.Equal(t, 3, warns[0].Start.Row)
}

func TestIgnoreToEOFDirective(t *testing.T) {
	src := "normal j\n" +
		"\" hjkls:ignore suspicious#normal_bang\n" +
		"normal k\n" +
		"normal l\n"
	warns := diagsByCode(runLint(t, src), "suspicious#normal_bang")
	require.Len(t, warns, 1)
	assert.Equal(t, 0, warns[0].Start.Row)
}

func TestIgnoreAllRules(t *testing.T) {
	src := "\" hjkls:ignore\nnormal j\nlet l:x = 1\n"
	diags := runLint(t, src)
	assert.Empty(t, diags)
}

func TestIgnoreDifferentRuleKept(t *testing.T) {
	src := "\" hjkls:ignore-next-line style#double_dot\nnormal j\n"
	warns := diagsByCode(runLint(t, src), "suspicious#normal_bang")
	assert.Len(t, warns, 1)
}

func TestParseIgnoreDirectives(t *testing.T) {
	dirs := ParseIgnoreDirectives("\" hjkls:ignore suspicious#normal_bang, style#double_dot\n")
	require.Len(t, dirs, 1)
	assert.Equal(t, 0, dirs[0].Line)
	assert.Equal(t, IgnoreToEOF, dirs[0].Kind)
	assert.Equal(t, []string{"suspicious#normal_bang", "style#double_dot"}, dirs[0].Rules)

	dirs = ParseIgnoreDirectives("vim9script\n# hjkls:ignore-next-line suspicious#normal_bang\nnormal j\n")
	require.Len(t, dirs, 1)
	assert.Equal(t, 1, dirs[0].Line)
	assert.Equal(t, IgnoreNextLine, dirs[0].Kind)

	dirs = ParseIgnoreDirectives("\" hjkls:ignore\n")
	require.Len(t, dirs, 1)
	assert.Empty(t, dirs[0].Rules)
}

func TestNormalizeKeyNotation(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		changed bool
	}{
		{"<CR>", "", false},
		{"<Esc>", "", false},
		{"<Up>", "", false},
		{"<F1>", "", false},
		{"<C-a>", "", false},
		{"<C-A>", "", false},
		{"<Leader>", "", false},
		{"<cr>", "<CR>", true},
		{"<esc>", "<Esc>", true},
		{"<ESC>", "<Esc>", true},
		{"<up>", "<Up>", true},
		{"<UP>", "<Up>", true},
		{"<f1>", "<F1>", true},
		{"<tab>", "<Tab>", true},
		{"<TAB>", "<Tab>", true},
		{"<space>", "<Space>", true},
		{"<bs>", "<BS>", true},
		{"<c-a>", "<C-a>", true},
		{"<s-tab>", "<S-Tab>", true},
		{"<c-s-f1>", "<C-S-F1>", true},
		{"<leader>", "<Leader>", true},
		{"<plug>", "<Plug>", true},
		{"<sid>", "<SID>", true},
		{"<unknown>", "", false},
		{"<x>", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, changed := NormalizeKeyNotation(tt.in)
			assert.Equal(t, tt.changed, changed)
			if tt.changed {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

type fakeWorkspace struct {
	autoload map[string]string // qualified -> path
}

func (f *fakeWorkspace) FindAutoloadFile(qualified string) (string, bool) {
	p, ok := f.autoload[qualified]
	return p, ok
}

func (f *fakeWorkspace) Lookup(string, analysis.VimScope) []analysis.Hit { return nil }

func TestAutoloadMissingWithWorkspace(t *testing.T) {
	src := []byte("call myplugin#util#helper()\ncall known#fn()\n")
	tree := syntax.Parse(src)
	sem := analysis.Analyze(tree)
	ws := &fakeWorkspace{autoload: map[string]string{"known#fn": "/ws/autoload/known.vim"}}

	diags := New().Run(tree, src, sem, ws, nil)
	missing := diagsByCode(diags, "suspicious#autoload_missing")
	require.Len(t, missing, 1)
	assert.Contains(t, missing[0].Message, "autoload/myplugin/util.vim")
}

type categoryConfig struct{ disabled map[string]bool }

func (c categoryConfig) RuleEnabled(category, rule string) bool {
	return !c.disabled[category+"#"+rule]
}

func TestRuleConfigDisables(t *testing.T) {
	cfg := categoryConfig{disabled: map[string]bool{"suspicious#normal_bang": true}}
	diags := New().LintSource([]byte("normal j\n"), cfg)
	assert.Empty(t, diagsByCode(diags, "suspicious#normal_bang"))
}

func TestDiagnosticsSortedAndCoded(t *testing.T) {
	src := "normal j\nlet l:x = 1\n"
	diags := runLint(t, src)
	require.GreaterOrEqual(t, len(diags), 2)
	for i := 1; i < len(diags); i++ {
		assert.LessOrEqual(t, diags[i-1].Start.Row, diags[i].Start.Row)
	}
	for _, d := range diags {
		assert.Contains(t, d.Code(), "#")
	}
}
