// Copyright © 2024 The hjkls authors

package analysis

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hjkls/hjkls/syntax"
)

func writeFile(t *testing.T, dir, rel, content string) string {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestScanIndexesVimFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "plugin/main.vim", "function! MainThing() abort\nendfunction\n")
	writeFile(t, dir, "autoload/myplugin/util.vim", "function! myplugin#util#helper() abort\nendfunction\n")
	writeFile(t, dir, "README.md", "not vim")

	ix := NewIndex()
	ix.AddRoot(dir)
	ix.Scan()

	hits := ix.Lookup("MainThing", ScopeImplicit)
	require.Len(t, hits, 1)
	assert.Equal(t, SymFunction, hits[0].Symbol.Kind)

	path, hit, exists := ix.LookupAutoload("myplugin#util#helper")
	assert.True(t, exists)
	assert.Equal(t, filepath.Join(dir, "autoload", "myplugin", "util.vim"), path)
	require.NotNil(t, hit)
	assert.Equal(t, "myplugin#util#helper", hit.Symbol.Name)
}

func TestScanSkipsIgnoredDirs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".git/hook.vim", "function! Hidden() abort\nendfunction\n")
	writeFile(t, dir, "node_modules/dep/x.vim", "function! Dep() abort\nendfunction\n")
	writeFile(t, dir, "ok.vim", "function! Visible() abort\nendfunction\n")

	ix := NewIndex()
	ix.AddRoot(dir)
	ix.Scan()

	assert.Empty(t, ix.Lookup("Hidden", ScopeImplicit))
	assert.Empty(t, ix.Lookup("Dep", ScopeImplicit))
	assert.Len(t, ix.Lookup("Visible", ScopeImplicit), 1)
}

func TestGitignorePolicy(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".gitignore", "build/\n")
	writeFile(t, dir, "build/gen.vim", "function! Generated() abort\nendfunction\n")
	writeFile(t, dir, "src.vim", "function! Kept() abort\nendfunction\n")

	ix := NewIndex()
	ix.AddRoot(dir)
	ix.Scan()

	assert.Empty(t, ix.Lookup("Generated", ScopeImplicit))
	assert.Len(t, ix.Lookup("Kept", ScopeImplicit), 1)
}

func TestLiveDocumentShadowing(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.vim", "function! OnDisk() abort\nendfunction\n")

	ix := NewIndex()
	ix.AddRoot(dir)
	ix.Scan()
	require.Len(t, ix.Lookup("OnDisk", ScopeImplicit), 1)

	// An open edit replaces the function; the live view wins.
	live := Analyze(syntax.Parse([]byte("function! Renamed() abort\nendfunction\n")))
	ix.ShadowDocument("file://"+path, path, live)

	assert.Empty(t, ix.Lookup("OnDisk", ScopeImplicit))
	hits := ix.Lookup("Renamed", ScopeImplicit)
	require.Len(t, hits, 1)
	assert.True(t, hits[0].Live)

	// Closing re-adopts the disk version.
	ix.Unshadow("file://" + path)
	assert.Len(t, ix.Lookup("OnDisk", ScopeImplicit), 1)
	assert.Empty(t, ix.Lookup("Renamed", ScopeImplicit))
}

func TestUnparsableFileDegrades(t *testing.T) {
	ix := NewIndex()
	ix.IndexFile(filepath.Join(t.TempDir(), "missing.vim"))
	// No symbols contributed, no crash.
	assert.Empty(t, ix.Search("", 10))
}

func TestSearchSubstringAndPrefixBonus(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.vim",
		"function! FormatBuffer() abort\nendfunction\n"+
			"function! ReformatAll() abort\nendfunction\n"+
			"let g:format_style = 1\n")

	ix := NewIndex()
	ix.AddRoot(dir)
	ix.Scan()

	hits := ix.Search("format", 10)
	require.Len(t, hits, 3)
	// Prefix matches come first (case-insensitive).
	assert.Equal(t, "FormatBuffer", hits[0].Symbol.Name)

	assert.Len(t, ix.Search("format", 2), 2)
	assert.Empty(t, ix.Search("zzz", 10))
}

func TestFindAutoloadFileMissing(t *testing.T) {
	dir := t.TempDir()
	ix := NewIndex()
	ix.AddRoot(dir)

	path, exists := ix.FindAutoloadFile("nope#fn")
	assert.False(t, exists)
	assert.Equal(t, filepath.Join(dir, "autoload", "nope.vim"), path)
}

func TestReferencesAcrossWorkspace(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.vim", "call myplugin#util#helper()\n")
	writeFile(t, dir, "b.vim", "call myplugin#util#helper()\ncall Other()\n")

	ix := NewIndex()
	ix.AddRoot(dir)
	ix.Scan()

	hits := ix.ReferencesTo("myplugin#util#helper")
	assert.Len(t, hits, 2)
}
