// Copyright © 2024 The hjkls authors

package lsp

import (
	"fmt"
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/hjkls/hjkls/analysis"
	"github.com/hjkls/hjkls/builtins"
	"github.com/hjkls/hjkls/syntax"
)

// textDocumentPrepareRename validates that the symbol under the
// cursor is renameable and returns its range. Per the LSP spec,
// non-renameable targets answer null, not an error.
func (s *Server) textDocumentPrepareRename(_ *glsp.Context, params *protocol.PrepareRenameParams) (any, error) {
	doc := s.docs.Get(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}
	snap := doc.Snapshot()

	ref := identifierAt(snap, params.Position)
	if ref == nil {
		return nil, nil
	}
	if err := s.renameTarget(snap, ref); err != nil {
		return nil, nil
	}

	rng := identNameRange(snap, ref)
	return &protocol.RangeWithPlaceholder{
		Range:       rng,
		Placeholder: ref.Name,
	}, nil
}

// textDocumentRename computes a workspace edit replacing every
// occurrence of the symbol's name. Only the identifier part changes;
// scope prefixes stay.
func (s *Server) textDocumentRename(_ *glsp.Context, params *protocol.RenameParams) (*protocol.WorkspaceEdit, error) {
	doc := s.docs.Get(params.TextDocument.URI)
	if doc == nil {
		return nil, fmt.Errorf("document not found")
	}
	snap := doc.Snapshot()

	ref := identifierAt(snap, params.Position)
	if ref == nil {
		return nil, fmt.Errorf("no symbol at position")
	}
	if err := s.renameTarget(snap, ref); err != nil {
		return nil, err
	}

	edits := make(map[protocol.DocumentUri][]protocol.TextEdit)
	full := ref.FullName()

	// Definition site in the live document.
	if sym := snap.Sem.Lookup(ref.Name, ref.Scope); sym != nil {
		edits[snap.URI] = append(edits[snap.URI], protocol.TextEdit{
			Range:   pointRange(snap, sym.NameStart, sym.NameEnd),
			NewText: params.NewName,
		})
	}

	// All occurrences in the live document.
	for _, occ := range snap.Sem.References {
		if occ.FullName() != full {
			continue
		}
		edits[snap.URI] = append(edits[snap.URI], protocol.TextEdit{
			Range:   refNameRange(snap, occ),
			NewText: params.NewName,
		})
	}

	// Workspace-wide occurrences for cross-file symbols.
	if crossFileSymbol(ref) {
		s.ensureWorkspaceIndex()
		for _, hit := range s.index.ReferencesTo(full) {
			uri := hit.URI
			if uri == "" {
				uri = s.resolveURI(snap.URI, hit.Path)
			}
			if uri == snap.URI {
				continue
			}
			start := hit.Ref.Start
			if hit.Ref.Scope != analysis.ScopeImplicit {
				start = syntax.Point{Row: start.Row, Col: start.Col + len(hit.Ref.Scope.Prefix())}
			}
			edits[uri] = append(edits[uri], protocol.TextEdit{
				Range:   crossFileRange(snap, uri, start, hit.Ref.End),
				NewText: params.NewName,
			})
		}
		for _, hit := range s.index.Lookup(ref.Name, ref.Scope) {
			uri := hit.URI
			if uri == "" {
				uri = s.resolveURI(snap.URI, hit.Path)
			}
			if uri == snap.URI {
				continue
			}
			edits[uri] = append(edits[uri], protocol.TextEdit{
				Range:   crossFileRange(snap, uri, hit.Symbol.NameStart, hit.Symbol.NameEnd),
				NewText: params.NewName,
			})
		}
	}

	if len(edits) == 0 {
		return nil, fmt.Errorf("cannot rename: no occurrences of %s", full)
	}
	return &protocol.WorkspaceEdit{Changes: edits}, nil
}

// renameTarget rejects builtins, autoload functions defined outside
// the workspace, and unresolved identifiers.
func (s *Server) renameTarget(snap Snapshot, ref *identRef) error {
	if ref.Scope == analysis.ScopeVim {
		return fmt.Errorf("cannot rename builtin variable: %s", ref.FullName())
	}
	if !ref.IsAutoload() {
		if _, ok := builtins.LookupFunction(ref.Name); ok && ref.Scope == analysis.ScopeImplicit {
			if snap.Sem.Lookup(ref.Name, ref.Scope) == nil {
				return fmt.Errorf("cannot rename builtin function: %s", ref.Name)
			}
		}
	}

	res := s.resolve(snap, ref)
	if res.Builtin != nil {
		return fmt.Errorf("cannot rename builtin function: %s", ref.Name)
	}
	if ref.IsAutoload() {
		if res.Sym == nil {
			return fmt.Errorf("cannot rename: %s is not defined in the workspace", ref.Name)
		}
		if res.Path != "" && s.rootPath != "" && !strings.HasPrefix(res.Path, s.rootPath) {
			return fmt.Errorf("cannot rename: %s is defined outside the workspace", ref.Name)
		}
		return nil
	}
	if res.Sym == nil {
		return fmt.Errorf("cannot rename unresolved identifier: %s", ref.FullName())
	}
	return nil
}

// identNameRange returns the identifier-only range of the occurrence
// under the cursor.
func identNameRange(snap Snapshot, ref *identRef) protocol.Range {
	node := ref.Node
	if node.Kind() == syntax.KindScopedIdentifier {
		node = node.ChildOfKind(syntax.KindIdentifier)
	}
	return pointRange(snap, node.StartPoint(), node.EndPoint())
}
