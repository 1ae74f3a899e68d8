// Copyright © 2024 The hjkls authors

package lsp

import (
	"github.com/hjkls/hjkls/analysis"
	"github.com/hjkls/hjkls/builtins"
)

// resolution is the outcome of resolving an identifier occurrence
// against the builtin tables, the live document, and the workspace.
type resolution struct {
	Builtin *builtins.Function

	// Sym is the resolved user symbol; Path/URI locate its file.
	// Path is empty when the symbol lives in the current document.
	Sym  *analysis.Symbol
	Path string
	URI  string

	// AutoloadPath is the derived file for an autoload name, set even
	// when the file has not been parsed yet. AutoloadExists reports
	// whether the file is present under any root.
	AutoloadPath   string
	AutoloadExists bool
}

// resolve finds the definition for an identifier occurrence. Local
// symbols win over workspace entries; builtins are only consulted for
// unscoped names.
func (s *Server) resolve(snap Snapshot, ref *identRef) *resolution {
	res := &resolution{}

	if ref.IsAutoload() {
		s.ensureWorkspaceIndex()
		path, hit, exists := s.index.LookupAutoload(ref.Name)
		res.AutoloadPath = path
		res.AutoloadExists = exists
		if hit != nil {
			res.Sym = hit.Symbol
			res.Path = hit.Path
			res.URI = hit.URI
		} else if sym := snap.Sem.LookupFunction(ref.Name); sym != nil {
			res.Sym = sym
		}
		return res
	}

	// The live document first.
	if ref.IsCall {
		if sym := snap.Sem.LookupFunction(ref.FullName()); sym != nil {
			res.Sym = sym
			return res
		}
	}
	if sym := snap.Sem.Lookup(ref.Name, ref.Scope); sym != nil {
		res.Sym = sym
		return res
	}

	// Builtins shadow nothing the document defines.
	if ref.Scope == analysis.ScopeImplicit {
		if f, ok := builtins.LookupFunction(ref.Name); ok {
			res.Builtin = f
			return res
		}
	}

	// Script-local symbols never cross files; everything else may.
	if ref.Scope != analysis.ScopeScript && ref.Scope != analysis.ScopeLocal &&
		ref.Scope != analysis.ScopeArgument {
		s.ensureWorkspaceIndex()
		hits := s.index.Lookup(ref.Name, ref.Scope)
		if len(hits) > 0 {
			res.Sym = hits[0].Symbol
			res.Path = hits[0].Path
			res.URI = hits[0].URI
		}
	}
	return res
}

// locationURI returns the URI for a resolution's symbol.
func (s *Server) locationURI(snap Snapshot, res *resolution) string {
	if res.URI != "" {
		return res.URI
	}
	if res.Path != "" {
		return s.resolveURI(snap.URI, res.Path)
	}
	return snap.URI
}
