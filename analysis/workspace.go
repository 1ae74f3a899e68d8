// Copyright © 2024 The hjkls authors

package analysis

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	gitignore "github.com/sabhiram/go-gitignore"

	"github.com/hjkls/hjkls/syntax"
)

// Entry is one indexed file.
type Entry struct {
	Path       string
	Symbols    []*Symbol
	References []*Reference
	Unparsed   bool // the file could not be read
}

// RefHit pairs a reference with the file it occurs in.
type RefHit struct {
	Ref  *Reference
	Path string
	URI  string // set for live hits
	Live bool
}

// Hit pairs a symbol with the file it was found in.
type Hit struct {
	Symbol *Symbol
	Path   string
	// Live is true when the hit comes from an open document whose
	// symbols shadow the on-disk entry.
	Live bool
	URI  string // set for live hits
}

// Index is the cross-file symbol catalogue covering the project root
// and autoload search paths. It follows a single-writer discipline:
// mutation happens under the write lock, queries take the read lock
// and copy out.
type Index struct {
	mu      sync.RWMutex
	roots   []string
	entries map[string]*Entry // path -> entry

	// Open documents shadow their disk entries.
	open     map[string]*Result // uri -> live result
	openPath map[string]string  // uri -> path
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{
		entries:  make(map[string]*Entry),
		open:     make(map[string]*Result),
		openPath: make(map[string]string),
	}
}

// AddRoot registers a search root. The project root comes first;
// $VIMRUNTIME is appended when available.
func (ix *Index) AddRoot(root string) {
	if root == "" {
		return
	}
	ix.mu.Lock()
	defer ix.mu.Unlock()
	for _, r := range ix.roots {
		if r == root {
			return
		}
	}
	ix.roots = append(ix.roots, root)
}

// Roots returns the registered search roots.
func (ix *Index) Roots() []string {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return append([]string(nil), ix.roots...)
}

// Scan enumerates *.vim files under every root and indexes them.
// Unreadable paths are skipped. Intended to run on a background
// goroutine during server warm-up.
func (ix *Index) Scan() {
	for _, root := range ix.Roots() {
		ix.scanRoot(root)
	}
}

// scanRoot walks one root honoring the ignore policy: .gitignore
// patterns when the root carries one, plus the built-in skip list
// (VCS metadata, node_modules, hidden directories).
func (ix *Index) scanRoot(root string) {
	var ign *gitignore.GitIgnore
	if gi, err := gitignore.CompileIgnoreFile(filepath.Join(root, ".gitignore")); err == nil {
		ign = gi
	}

	_ = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // unreadable: skip, never crash the scan
		}
		if info.IsDir() {
			if path != root && shouldSkipDir(info.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".vim" {
			return nil
		}
		if ign != nil {
			if rel, relErr := filepath.Rel(root, path); relErr == nil && ign.MatchesPath(rel) {
				return nil
			}
		}
		ix.IndexFile(path)
		return nil
	})
}

// shouldSkipDir filters VCS metadata, node_modules, and hidden
// directories out of the crawl.
func shouldSkipDir(name string) bool {
	switch name {
	case ".git", ".hg", ".svn", "node_modules":
		return true
	}
	return len(name) > 0 && name[0] == '.'
}

// IndexFile parses a file from disk and records its symbols. Files
// that cannot be read are recorded as unparsed so later lookups
// degrade gracefully.
func (ix *Index) IndexFile(path string) {
	src, err := os.ReadFile(path) // #nosec G304 -- paths come from the workspace crawl
	if err != nil {
		ix.mu.Lock()
		ix.entries[path] = &Entry{Path: path, Unparsed: true}
		ix.mu.Unlock()
		return
	}
	res := Analyze(syntax.Parse(src))
	ix.mu.Lock()
	ix.entries[path] = &Entry{Path: path, Symbols: res.Symbols, References: res.References}
	ix.mu.Unlock()
}

// ReferencesTo collects all occurrences of a full symbol name across
// the workspace, live documents first. References from every indexed
// file are returned, runtime files included.
func (ix *Index) ReferencesTo(fullName string) []RefHit {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	var hits []RefHit
	seenPaths := make(map[string]bool)
	for uri, res := range ix.open {
		path := ix.openPath[uri]
		seenPaths[path] = true
		for _, ref := range res.References {
			if ref.FullName() == fullName {
				hits = append(hits, RefHit{Ref: ref, Path: path, URI: uri, Live: true})
			}
		}
	}
	for path, e := range ix.entries {
		if seenPaths[path] {
			continue
		}
		for _, ref := range e.References {
			if ref.FullName() == fullName {
				hits = append(hits, RefHit{Ref: ref, Path: path})
			}
		}
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Path != hits[j].Path {
			return hits[i].Path < hits[j].Path
		}
		if hits[i].Ref.Start.Row != hits[j].Ref.Start.Row {
			return hits[i].Ref.Start.Row < hits[j].Ref.Start.Row
		}
		return hits[i].Ref.Start.Col < hits[j].Ref.Start.Col
	})
	return hits
}

// Remove drops a file from the index (deleted on disk).
func (ix *Index) Remove(path string) {
	ix.mu.Lock()
	delete(ix.entries, path)
	ix.mu.Unlock()
}

// ShadowDocument makes an open document's live symbols take priority
// over the indexed version of the same file.
func (ix *Index) ShadowDocument(uri, path string, res *Result) {
	ix.mu.Lock()
	ix.open[uri] = res
	ix.openPath[uri] = path
	ix.mu.Unlock()
}

// Unshadow removes the live view for a closed document and re-adopts
// the on-disk version.
func (ix *Index) Unshadow(uri string) {
	ix.mu.Lock()
	path := ix.openPath[uri]
	delete(ix.open, uri)
	delete(ix.openPath, uri)
	ix.mu.Unlock()
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			ix.IndexFile(path)
		}
	}
}

// Lookup resolves a name and scope against all visible symbols,
// live documents first.
func (ix *Index) Lookup(name string, scope VimScope) []Hit {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	var hits []Hit
	seenPaths := make(map[string]bool)
	for uri, res := range ix.open {
		path := ix.openPath[uri]
		seenPaths[path] = true
		for _, s := range res.Symbols {
			if s.Name == name && s.Scope == scope {
				hits = append(hits, Hit{Symbol: s, Path: path, Live: true, URI: uri})
			}
		}
	}
	for path, e := range ix.entries {
		if seenPaths[path] {
			continue
		}
		for _, s := range e.Symbols {
			if s.Name == name && s.Scope == scope {
				hits = append(hits, Hit{Symbol: s, Path: path})
			}
		}
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Live != hits[j].Live {
			return hits[i].Live
		}
		return hits[i].Path < hits[j].Path
	})
	return hits
}

// FindAutoloadFile derives the file path for an autoload-qualified
// name and returns the first root where it exists. When the file
// exists nowhere, the path derived under the first root is returned
// with exists=false so navigation can still name the expected file.
func (ix *Index) FindAutoloadFile(qualified string) (path string, exists bool) {
	ref, ok := ParseAutoload(qualified)
	if !ok {
		return "", false
	}
	rel := ref.RelPath()
	roots := ix.Roots()
	for _, root := range roots {
		candidate := filepath.Join(root, rel)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}
	if len(roots) > 0 {
		return filepath.Join(roots[0], rel), false
	}
	return rel, false
}

// LookupAutoload resolves an autoload-qualified call: the expected
// file path, and the defining symbol when the file has been parsed.
func (ix *Index) LookupAutoload(qualified string) (path string, hit *Hit, exists bool) {
	path, exists = ix.FindAutoloadFile(qualified)
	if path == "" {
		return "", nil, false
	}

	ix.mu.RLock()
	defer ix.mu.RUnlock()

	// A live document for the file wins.
	for uri, p := range ix.openPath {
		if p == path {
			if res := ix.open[uri]; res != nil {
				if s := res.LookupFunction(qualified); s != nil {
					return path, &Hit{Symbol: s, Path: path, Live: true, URI: uri}, true
				}
			}
		}
	}
	if e := ix.entries[path]; e != nil {
		for _, s := range e.Symbols {
			if s.Kind == SymAutoloadFunction && s.Name == qualified {
				return path, &Hit{Symbol: s, Path: path}, true
			}
		}
	}
	return path, nil, exists
}

// Search performs case-insensitive substring matching over visible
// symbols. Prefix matches sort first; results are capped at limit.
func (ix *Index) Search(query string, limit int) []Hit {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	q := strings.ToLower(query)
	var hits []Hit
	add := func(s *Symbol, path string, live bool, uri string) {
		if s.Kind == SymParameter {
			return
		}
		if q != "" && !strings.Contains(strings.ToLower(s.Name), q) {
			return
		}
		hits = append(hits, Hit{Symbol: s, Path: path, Live: live, URI: uri})
	}

	seenPaths := make(map[string]bool)
	for uri, res := range ix.open {
		path := ix.openPath[uri]
		seenPaths[path] = true
		for _, s := range res.Symbols {
			add(s, path, true, uri)
		}
	}
	for path, e := range ix.entries {
		if seenPaths[path] {
			continue
		}
		for _, s := range e.Symbols {
			add(s, path, false, "")
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		pi := strings.HasPrefix(strings.ToLower(hits[i].Symbol.Name), q)
		pj := strings.HasPrefix(strings.ToLower(hits[j].Symbol.Name), q)
		if pi != pj {
			return pi
		}
		if hits[i].Symbol.Name != hits[j].Symbol.Name {
			return hits[i].Symbol.Name < hits[j].Symbol.Name
		}
		return hits[i].Path < hits[j].Path
	})
	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	return hits
}
