// Copyright © 2024 The hjkls authors

package lsp

import (
	"time"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/hjkls/hjkls/lint"
)

// debounceDelay batches rapid didChange bursts into one reparse and
// publish cycle.
const debounceDelay = 50 * time.Millisecond

// textDocumentDidOpen handles the textDocument/didOpen notification.
func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.captureNotify(ctx)
	doc, err := s.docs.Open(
		params.TextDocument.URI,
		int32(params.TextDocument.Version),
		params.TextDocument.Text,
	)
	if err != nil {
		return err
	}
	s.shadowInIndex(doc)
	s.publishDiagnostics(doc)
	return nil
}

// textDocumentDidChange applies content changes in arrival order.
// The buffer and tree update synchronously, so queries issued after
// this notification see the edit; only the diagnostics publish is
// debounced.
func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	s.captureNotify(ctx)

	doc, err := s.docs.Change(
		params.TextDocument.URI,
		int32(params.TextDocument.Version),
		params.ContentChanges,
	)
	if err != nil {
		return err
	}
	if doc == nil {
		return nil
	}
	s.shadowInIndex(doc)

	s.debounceMu.Lock()
	if t, ok := s.debounce[doc.URI]; ok {
		t.Stop()
	}
	s.debounce[doc.URI] = time.AfterFunc(debounceDelay, func() {
		defer func() {
			if r := recover(); r != nil {
				log.Errorf("diagnostics panic: %v", r)
			}
		}()
		if d := s.docs.Get(doc.URI); d != nil {
			s.publishDiagnostics(d)
		}
	})
	s.debounceMu.Unlock()
	return nil
}

// textDocumentDidSave flushes any pending debounce and re-publishes.
func (s *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	s.captureNotify(ctx)
	s.cancelDebounce(params.TextDocument.URI)
	if doc := s.docs.Get(params.TextDocument.URI); doc != nil {
		s.publishDiagnostics(doc)
	}
	return nil
}

// textDocumentDidClose clears diagnostics and re-adopts the on-disk
// version of the file in the workspace index.
func (s *Server) textDocumentDidClose(_ *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.cancelDebounce(params.TextDocument.URI)

	s.sendNotification(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})

	s.docs.Close(params.TextDocument.URI)
	s.index.Unshadow(params.TextDocument.URI)
	return nil
}

func (s *Server) cancelDebounce(uri string) {
	s.debounceMu.Lock()
	if t, ok := s.debounce[uri]; ok {
		t.Stop()
		delete(s.debounce, uri)
	}
	s.debounceMu.Unlock()
}

// shadowInIndex reflects the document's live symbols in the index.
func (s *Server) shadowInIndex(doc *Document) {
	snap := doc.Snapshot()
	s.index.ShadowDocument(doc.URI, uriToPath(doc.URI), snap.Sem)
}

// publishDiagnostics runs the lint engine on the document's current
// snapshot and replaces the previous diagnostic set atomically.
func (s *Server) publishDiagnostics(doc *Document) {
	s.ensureWorkspaceIndex()
	snap := doc.Snapshot()

	diags := s.linter.Run(snap.Tree, []byte(snap.Buf.Text()), snap.Sem, s.index, s.ruleConfig())

	out := make([]protocol.Diagnostic, 0, len(diags))
	for _, d := range diags {
		out = append(out, convertDiagnostic(snap, d))
	}

	s.sendNotification(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         snap.URI,
		Diagnostics: out,
	})
}

// convertDiagnostic maps a lint.Diagnostic to the protocol shape. The
// code carries category#rule so code actions and suppression
// directives can match it.
func convertDiagnostic(snap Snapshot, d lint.Diagnostic) protocol.Diagnostic {
	sev := mapLintSeverity(d.Severity)
	return protocol.Diagnostic{
		Range:    pointRange(snap, d.Start, d.End),
		Severity: &sev,
		Source:   strPtr(serverName),
		Code:     &protocol.IntegerOrString{Value: d.Code()},
		Message:  d.Message,
	}
}

func mapLintSeverity(sev lint.Severity) protocol.DiagnosticSeverity {
	switch sev {
	case lint.SeverityError:
		return protocol.DiagnosticSeverityError
	case lint.SeverityWarning:
		return protocol.DiagnosticSeverityWarning
	case lint.SeverityHint:
		return protocol.DiagnosticSeverityHint
	default:
		return protocol.DiagnosticSeverityWarning
	}
}
