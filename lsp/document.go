// Copyright © 2024 The hjkls authors

package lsp

import (
	"sync"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/hjkls/hjkls/analysis"
	"github.com/hjkls/hjkls/syntax"
)

// Document represents an open text document tracked by the server.
// Edits serialize under the mutex; queries take an immutable snapshot
// and run without it.
type Document struct {
	mu      sync.Mutex
	URI     string
	Version int32

	buf  *syntax.Buffer
	tree *syntax.Tree
	sem  *analysis.Result
}

// Snapshot is a consistent view of a document at one version.
type Snapshot struct {
	URI     string
	Version int32
	Buf     *syntax.Buffer
	Tree    *syntax.Tree
	Sem     *analysis.Result
}

// reparse rebuilds the tree and symbol table from the current buffer.
// Callers hold d.mu.
func (d *Document) reparse() {
	d.tree = syntax.Parse(d.buf.Bytes())
	d.sem = analysis.Analyze(d.tree)
}

// Snapshot returns the current version, buffer, tree, and symbols.
// The buffer is replaced (not mutated) on edit, so the returned view
// stays consistent.
func (d *Document) Snapshot() Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return Snapshot{URI: d.URI, Version: d.Version, Buf: d.buf, Tree: d.tree, Sem: d.sem}
}

// DocumentStore manages open documents with thread-safe access.
type DocumentStore struct {
	mu   sync.RWMutex
	docs map[string]*Document
}

// NewDocumentStore creates an empty document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{docs: make(map[string]*Document)}
}

// Open adds a document to the store and parses it.
func (s *DocumentStore) Open(uri string, version int32, content string) (*Document, error) {
	buf, err := syntax.NewBuffer(content)
	if err != nil {
		return nil, err
	}
	doc := &Document{URI: uri, Version: version, buf: buf}
	doc.reparse()
	s.mu.Lock()
	s.docs[uri] = doc
	s.mu.Unlock()
	return doc, nil
}

// Change applies LSP content changes in arrival order and re-parses.
// The buffer is copied first so snapshots taken before the edit stay
// valid.
func (s *DocumentStore) Change(uri string, version int32, changes []interface{}) (*Document, error) {
	s.mu.RLock()
	doc := s.docs[uri]
	s.mu.RUnlock()
	if doc == nil {
		return nil, nil
	}

	doc.mu.Lock()
	defer doc.mu.Unlock()

	next, err := syntax.NewBuffer(doc.buf.Text())
	if err != nil {
		return nil, err
	}
	for _, change := range changes {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			if err := next.SetText(c.Text); err != nil {
				return nil, err
			}
		case protocol.TextDocumentContentChangeEvent:
			if err := next.ApplyChange(c.Range, c.Text); err != nil {
				return nil, err
			}
		}
	}
	doc.buf = next
	doc.Version = version
	doc.reparse()
	return doc, nil
}

// Close removes a document from the store.
func (s *DocumentStore) Close(uri string) {
	s.mu.Lock()
	delete(s.docs, uri)
	s.mu.Unlock()
}

// Get retrieves a document by URI. Returns nil if not found.
func (s *DocumentStore) Get(uri string) *Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.docs[uri]
}

// All returns every open document.
func (s *DocumentStore) All() []*Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	docs := make([]*Document, 0, len(s.docs))
	for _, d := range s.docs {
		docs = append(docs, d)
	}
	return docs
}
