// Copyright © 2024 The hjkls authors

package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hjkls/hjkls/syntax"
)

func analyzeSrc(t *testing.T, src string) *Result {
	t.Helper()
	return Analyze(syntax.Parse([]byte(src)))
}

func symbolsOfKind(r *Result, kind SymbolKind) []*Symbol {
	var out []*Symbol
	for _, s := range r.Symbols {
		if s.Kind == kind {
			out = append(out, s)
		}
	}
	return out
}

func TestExtractGlobalFunction(t *testing.T) {
	r := analyzeSrc(t, "function! MyFunc(a, b)\nendfunction\n")

	fns := symbolsOfKind(r, SymFunction)
	require.Len(t, fns, 1)
	assert.Equal(t, "MyFunc", fns[0].Name)
	assert.Equal(t, ScopeImplicit, fns[0].Scope)
	assert.Equal(t, "function! MyFunc(a, b)", fns[0].SignatureString())
	assert.True(t, fns[0].Signature.Bang)
	assert.False(t, fns[0].Signature.Abort)

	params := symbolsOfKind(r, SymParameter)
	require.Len(t, params, 2)
	assert.Same(t, fns[0], params[0].Parent)
	assert.Equal(t, "a:a", params[0].FullName())
}

func TestExtractScriptLocalFunction(t *testing.T) {
	r := analyzeSrc(t, "function! s:helper() abort\nendfunction\n")

	fns := symbolsOfKind(r, SymFunction)
	require.Len(t, fns, 1)
	assert.Equal(t, "s:helper", fns[0].FullName())
	assert.True(t, fns[0].Signature.Abort)
	assert.NotNil(t, r.LookupFunction("s:helper"))
}

func TestExtractAutoloadFunction(t *testing.T) {
	r := analyzeSrc(t, "function! myplugin#util#helper(x)\nendfunction\n")

	fns := symbolsOfKind(r, SymAutoloadFunction)
	require.Len(t, fns, 1)
	assert.Equal(t, "myplugin#util#helper", fns[0].Name)
	assert.NotNil(t, r.LookupFunction("myplugin#util#helper"))
}

func TestSignatureArity(t *testing.T) {
	r := analyzeSrc(t, "function! F(a, b = 1, ...)\nendfunction\n")
	fn := r.LookupFunction("F")
	require.NotNil(t, fn)
	assert.Equal(t, 1, fn.Signature.MinArgs())
	assert.Equal(t, -1, fn.Signature.MaxArgs())

	r = analyzeSrc(t, "function! G(a, b)\nendfunction\n")
	fn = r.LookupFunction("G")
	require.NotNil(t, fn)
	assert.Equal(t, 2, fn.Signature.MinArgs())
	assert.Equal(t, 2, fn.Signature.MaxArgs())
}

func TestExtractVariables(t *testing.T) {
	r := analyzeSrc(t, "let g:global_var = 1\nlet s:script_var = 2\n")

	vars := symbolsOfKind(r, SymVariable)
	require.Len(t, vars, 2)
	assert.Equal(t, "g:global_var", vars[0].FullName())
	assert.Equal(t, "s:script_var", vars[1].FullName())
}

func TestDictMethodSymbol(t *testing.T) {
	r := analyzeSrc(t, "let s:obj = {}\nlet s:obj.method = 'x'\n")

	var method *Symbol
	for _, s := range r.Symbols {
		if s.Name == "obj.method" {
			method = s
		}
	}
	require.NotNil(t, method)
	assert.Equal(t, ScopeScript, method.Scope)
	assert.True(t, r.Callables["s:obj.method"])
}

func TestCallableBearingVariables(t *testing.T) {
	src := "let s:F = function('strlen')\n" +
		"let g:L = {x -> x + 1}\n" +
		"let s:d = {'cb': 1}\n"
	r := analyzeSrc(t, src)

	assert.True(t, r.Callables["s:F"])
	assert.True(t, r.Callables["g:L"])
	assert.True(t, r.Callables["s:d"])
}

func TestReferencesAndCallSites(t *testing.T) {
	src := "function! s:greet(name) abort\n" +
		"  return 'hi ' . a:name\n" +
		"endfunction\n" +
		"call s:greet('vim')\n"
	r := analyzeSrc(t, src)

	var call *Reference
	var argRef *Reference
	for _, ref := range r.References {
		if ref.Name == "greet" && ref.IsCall {
			call = ref
		}
		if ref.Scope == ScopeArgument && ref.Name == "name" {
			argRef = ref
		}
	}
	require.NotNil(t, call)
	assert.Equal(t, ScopeScript, call.Scope)
	assert.Equal(t, 3, call.Start.Row)

	require.NotNil(t, argRef)
	// The a:name reference resolves to the parameter symbol.
	assert.NotNil(t, r.LookupVariable("a:name"))
}

func TestFunctionAt(t *testing.T) {
	src := "function! s:outer()\n  let l:x = 1\nendfunction\nlet g:y = 2\n"
	r := analyzeSrc(t, src)

	fn := r.FunctionAt(syntax.Point{Row: 1, Col: 4})
	require.NotNil(t, fn)
	assert.Equal(t, "s:outer", fn.FullName())

	assert.Nil(t, r.FunctionAt(syntax.Point{Row: 3, Col: 0}))
}

func TestParseAutoloadRef(t *testing.T) {
	ref, ok := ParseAutoload("myplugin#util#helper")
	require.True(t, ok)
	assert.Equal(t, "helper", ref.FuncName())
	assert.Equal(t, "autoload/myplugin/util.vim", ref.RelPath())

	ref, ok = ParseAutoload("single#fn")
	require.True(t, ok)
	assert.Equal(t, "autoload/single.vim", ref.RelPath())

	_, ok = ParseAutoload("plain")
	assert.False(t, ok)
	_, ok = ParseAutoload("bad##name")
	assert.False(t, ok)
}
