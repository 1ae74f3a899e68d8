// Copyright © 2024 The hjkls authors

package lsp

import (
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/hjkls/hjkls/analysis"
	"github.com/hjkls/hjkls/syntax"
)

// pointRange converts tree points to an LSP range via the snapshot's
// buffer.
func pointRange(snap Snapshot, start, end syntax.Point) protocol.Range {
	return protocol.Range{
		Start: snap.Buf.PositionForPoint(start),
		End:   snap.Buf.PositionForPoint(end),
	}
}

func safeUint(n int) protocol.UInteger {
	if n < 0 {
		return 0
	}
	return protocol.UInteger(n) // #nosec G115 -- line/col values are small
}

// identRef is a resolved identifier occurrence under the cursor.
type identRef struct {
	Name   string // without scope prefix; autoload names stay qualified
	Scope  analysis.VimScope
	Node   syntax.Node // the identifier or scoped_identifier node
	IsCall bool
}

// FullName returns the prefixed symbol name.
func (ir *identRef) FullName() string {
	return ir.Scope.Prefix() + ir.Name
}

// IsAutoload reports whether the name is autoload-qualified.
func (ir *identRef) IsAutoload() bool {
	return strings.Contains(ir.Name, "#")
}

// identifierAt locates the identifier at an LSP position. It climbs
// from the innermost node so a hit on a scope prefix or the name part
// both resolve to the full scoped identifier.
func identifierAt(snap Snapshot, pos protocol.Position) *identRef {
	p := snap.Buf.PointFor(pos)
	node := snap.Tree.NodeAt(p)
	if !node.IsValid() {
		return nil
	}

	for {
		switch node.Kind() {
		case syntax.KindScope:
			node = node.Parent()
			continue
		case syntax.KindIdentifier:
			if parent := node.Parent(); parent.IsValid() && parent.Kind() == syntax.KindScopedIdentifier {
				node = parent
				continue
			}
		}
		break
	}

	ref := &identRef{Node: node}
	switch node.Kind() {
	case syntax.KindIdentifier:
		ref.Name = node.Text()
	case syntax.KindScopedIdentifier:
		ref.Scope = analysis.ScopeFromPrefix(node.ChildOfKind(syntax.KindScope).Text())
		ref.Name = node.ChildOfKind(syntax.KindIdentifier).Text()
	default:
		return nil
	}
	if ref.Name == "" {
		return nil
	}

	parent := node.Parent()
	ref.IsCall = parent.IsValid() && parent.Kind() == syntax.KindCallExpression &&
		parent.ChildCount() > 0 && parent.Child(0).StartByte() == node.StartByte()
	return ref
}

// refNameRange returns the range of a reference's identifier part only,
// excluding the scope prefix. Rename edits use this so prefixes
// survive.
func refNameRange(snap Snapshot, ref *analysis.Reference) protocol.Range {
	start := ref.Start
	if ref.Scope != analysis.ScopeImplicit {
		start = syntax.Point{Row: start.Row, Col: start.Col + len(ref.Scope.Prefix())}
	}
	return pointRange(snap, start, ref.End)
}

// uriToPath converts a file:// URI to a filesystem path.
func uriToPath(uri string) string {
	if path, ok := strings.CutPrefix(uri, "file://"); ok {
		return path
	}
	return uri
}

// pathToURI converts a filesystem path to a file:// URI.
func pathToURI(path string) string {
	if strings.HasPrefix(path, "/") {
		return "file://" + path
	}
	return path
}

func boolPtr(b bool) *bool { return &b }

func strPtr(s string) *string { return &s }
