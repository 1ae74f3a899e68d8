// Copyright © 2024 The hjkls authors

package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findKind(t *Tree, kind Kind) []Node {
	var out []Node
	t.Walk(func(n Node) bool {
		if n.Kind() == kind {
			out = append(out, n)
		}
		return true
	})
	return out
}

func TestParseFunctionDefinition(t *testing.T) {
	src := "function! MyFunc(a, b) abort\n  return a:a\nendfunction\n"
	tree := Parse([]byte(src))

	fns := findKind(tree, KindFunctionDefinition)
	require.Len(t, fns, 1)
	fn := fns[0]
	assert.True(t, fn.HasChildOfKind(KindBang))

	decl := fn.ChildOfKind(KindFunctionDeclaration)
	require.True(t, decl.IsValid())
	assert.True(t, decl.HasChildOfKind(KindAbort))

	name := decl.ChildOfKind(KindIdentifier)
	require.True(t, name.IsValid())
	assert.Equal(t, "MyFunc", name.Text())

	params := decl.ChildOfKind(KindParameters)
	require.True(t, params.IsValid())
	var names []string
	for _, c := range params.Children() {
		names = append(names, c.Text())
	}
	assert.Equal(t, []string{"a", "b"}, names)

	// The block spans through endfunction.
	assert.Equal(t, 0, fn.StartPoint().Row)
	assert.Equal(t, 2, fn.EndPoint().Row)
	assert.Empty(t, tree.Errors())
}

func TestParseScriptLocalFunction(t *testing.T) {
	src := "function! s:helper() abort\nendfunction\n"
	tree := Parse([]byte(src))

	scoped := findKind(tree, KindScopedIdentifier)
	require.Len(t, scoped, 1)
	assert.Equal(t, "s:", scoped[0].ChildOfKind(KindScope).Text())
	assert.Equal(t, "helper", scoped[0].ChildOfKind(KindIdentifier).Text())
}

func TestParseVariadicAndDefaultParams(t *testing.T) {
	src := "function! F(x, y = 1, ...)\nendfunction\n"
	tree := Parse([]byte(src))

	params := findKind(tree, KindParameters)
	require.Len(t, params, 1)
	assert.True(t, params[0].HasChildOfKind(KindSpread))
	assert.True(t, params[0].HasChildOfKind(KindDefaultParameter))
}

func TestBrokenFunctionHeaderYieldsOneError(t *testing.T) {
	src := "function! Broken(\nendfunction\n"
	tree := Parse([]byte(src))

	errs := tree.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, 0, errs[0].StartPoint().Row)
}

func TestUnterminatedBlockYieldsError(t *testing.T) {
	src := "if x == 1\nlet y = 2\n"
	tree := Parse([]byte(src))

	require.NotEmpty(t, tree.Errors())
	ifs := findKind(tree, KindIfStatement)
	require.Len(t, ifs, 1)
	assert.True(t, ifs[0].IsError())
}

func TestParseLetWithExpression(t *testing.T) {
	src := "let g:total = strlen('abc') + 2\n"
	tree := Parse([]byte(src))

	calls := findKind(tree, KindCallExpression)
	require.Len(t, calls, 1)
	assert.Equal(t, "strlen", calls[0].Child(0).Text())

	bins := findKind(tree, KindBinaryOperation)
	require.Len(t, bins, 1)
	assert.True(t, bins[0].HasChildOfKind(Kind("+")))
}

func TestParseMatchOperatorWithModifier(t *testing.T) {
	tree := Parse([]byte("if a =~# 'pat'\nendif\n"))
	bins := findKind(tree, KindBinaryOperation)
	require.Len(t, bins, 1)
	assert.True(t, bins[0].HasChildOfKind(Kind("=~")))
	assert.True(t, bins[0].HasChildOfKind(KindMatchCase))

	tree = Parse([]byte("if a =~ 'pat'\nendif\n"))
	bins = findKind(tree, KindBinaryOperation)
	require.Len(t, bins, 1)
	assert.False(t, bins[0].HasChildOfKind(KindMatchCase))
}

func TestFieldAccessVersusConcat(t *testing.T) {
	// No spaces and identifier base: field access.
	tree := Parse([]byte("call obj.method()\n"))
	assert.Len(t, findKind(tree, KindFieldExpression), 1)
	assert.Empty(t, findKind(tree, KindBinaryOperation))

	// Spaced dot: concatenation.
	tree = Parse([]byte("let x = a . 'b'\n"))
	bins := findKind(tree, KindBinaryOperation)
	require.Len(t, bins, 1)
	assert.True(t, bins[0].HasChildOfKind(Kind(".")))

	// Float literals never produce a concat node.
	tree = Parse([]byte("let x = 1.5\n"))
	assert.Empty(t, findKind(tree, KindBinaryOperation))
	assert.Len(t, findKind(tree, KindFloatLiteral), 1)
}

func TestParseAutocmdGrouping(t *testing.T) {
	tree := Parse([]byte("autocmd BufWritePre *.vim call s:Format()\n"))
	aus := findKind(tree, KindAutocmdStatement)
	require.Len(t, aus, 1)
	assert.True(t, aus[0].HasChildOfKind(KindAuEventList))
	assert.False(t, aus[0].HasChildOfKind(KindAugroupName))

	tree = Parse([]byte("autocmd mygroup BufWritePre * echo 1\n"))
	aus = findKind(tree, KindAutocmdStatement)
	require.Len(t, aus, 1)
	assert.True(t, aus[0].HasChildOfKind(KindAugroupName))
}

func TestParseAugroupBlock(t *testing.T) {
	src := "augroup fmt\n  autocmd BufWritePre * echo 1\naugroup END\n"
	tree := Parse([]byte(src))

	groups := findKind(tree, KindAugroupStatement)
	require.Len(t, groups, 1)
	assert.Equal(t, "fmt", groups[0].ChildOfKind(KindAugroupName).Text())

	aus := findKind(tree, KindAutocmdStatement)
	require.Len(t, aus, 1)
	assert.Equal(t, groups[0].idx, aus[0].Parent().idx)
	assert.Empty(t, tree.Errors())
}

func TestParseMapStatement(t *testing.T) {
	tree := Parse([]byte("nnoremap <silent> <leader>f :call Format()<CR>\n"))
	maps := findKind(tree, KindMapStatement)
	require.Len(t, maps, 1)
	m := maps[0]
	assert.Equal(t, "nnoremap", m.ChildOfKind(KindMapCommand).Text())
	assert.Equal(t, "<silent>", m.ChildOfKind(KindMapArguments).Text())

	sides := findKind(tree, KindMapSide)
	require.Len(t, sides, 2)
	keycodes := findKind(tree, KindKeycode)
	// <leader> on the lhs, <CR> on the rhs.
	require.Len(t, keycodes, 2)
	assert.Equal(t, "<leader>", keycodes[0].Text())
	assert.Equal(t, "<CR>", keycodes[1].Text())
}

func TestParseSetStatement(t *testing.T) {
	tree := Parse([]byte("set compatible shiftwidth=2\n"))
	items := findKind(tree, KindSetItem)
	require.Len(t, items, 2)
	assert.Equal(t, "compatible", items[0].ChildOfKind(KindOptionName).Text())
	assert.Equal(t, "shiftwidth", items[1].ChildOfKind(KindOptionName).Text())
}

func TestLineContinuation(t *testing.T) {
	src := "let g:list = [1,\n      \\ 2,\n      \\ 3]\n"
	tree := Parse([]byte(src))

	lists := findKind(tree, KindList)
	require.Len(t, lists, 1)
	assert.Equal(t, 3, lists[0].ChildCount())
	assert.Empty(t, tree.Errors())
}

func TestKeycodeErrorSuppression(t *testing.T) {
	// An ordinary ERROR node is reported; a mapping whose rhs has the
	// <Cmd>...<CR> shape reports no error.
	tree := Parse([]byte("if x\n"))
	require.NotEmpty(t, tree.Errors())

	tree = Parse([]byte("nnoremap x <Cmd>call Toggle()<CR>\n"))
	assert.Empty(t, tree.Errors())
}

func TestReparseEqualsFreshParse(t *testing.T) {
	old := Parse([]byte("let x = 1\n"))
	newSrc := []byte("let x = 1\nlet y = 2\n")
	updated := old.Update(newSrc)
	fresh := Parse(newSrc)

	require.Equal(t, len(fresh.nodes), len(updated.nodes))
	for i := range fresh.nodes {
		assert.Equal(t, fresh.nodes[i].kind, updated.nodes[i].kind)
		assert.Equal(t, fresh.nodes[i].startByte, updated.nodes[i].startByte)
		assert.Equal(t, fresh.nodes[i].endByte, updated.nodes[i].endByte)
	}
}

func TestNodeAtInnermost(t *testing.T) {
	src := "let g:x = strlen('abc')\n"
	tree := Parse([]byte(src))

	// Position inside 'abc' hits the string literal.
	n := tree.NodeAt(Point{Row: 0, Col: 19})
	assert.Equal(t, KindStringLiteral, n.Kind())

	// Ancestor chain runs to the root.
	chain := n.Ancestors()
	assert.Equal(t, KindScriptFile, chain[len(chain)-1].Kind())
}

func TestLambdaAndDict(t *testing.T) {
	tree := Parse([]byte("let F = {x -> x + 1}\n"))
	assert.Len(t, findKind(tree, KindLambda), 1)

	tree = Parse([]byte("let d = {'a': 1, 'b': 2}\n"))
	dicts := findKind(tree, KindDictionary)
	require.Len(t, dicts, 1)
	assert.Equal(t, 2, dicts[0].ChildCount())
}

func TestCommentAndVim9(t *testing.T) {
	tree := Parse([]byte("\" a comment\nvim9script\n# vim9 comment\n"))
	assert.Len(t, findKind(tree, KindComment), 2)
	assert.Len(t, findKind(tree, KindVim9Script), 1)
}

func TestNoremapEquivalent(t *testing.T) {
	eq, ok := NoremapEquivalent("nmap")
	require.True(t, ok)
	assert.Equal(t, "nnoremap", eq)

	eq, ok = NoremapEquivalent("map")
	require.True(t, ok)
	assert.Equal(t, "noremap", eq)

	_, ok = NoremapEquivalent("nnoremap")
	assert.False(t, ok)
}
