// Copyright © 2024 The hjkls authors

package lsp

import (
	"path/filepath"
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/hjkls/hjkls/config"
)

// workspaceDidChangeWatchedFiles reflects on-disk changes in the
// workspace index and reloads .hjkls.toml when it changes. Open
// documents keep shadowing their files regardless.
func (s *Server) workspaceDidChangeWatchedFiles(ctx *glsp.Context, params *protocol.DidChangeWatchedFilesParams) error {
	s.captureNotify(ctx)

	configChanged := false
	for _, change := range params.Changes {
		path := uriToPath(change.URI)

		if filepath.Base(path) == config.FileName {
			configChanged = true
			continue
		}
		if !strings.HasSuffix(path, ".vim") {
			continue
		}

		switch change.Type {
		case protocol.FileChangeTypeCreated, protocol.FileChangeTypeChanged:
			s.index.IndexFile(path)
		case protocol.FileChangeTypeDeleted:
			s.index.Remove(path)
		}
	}

	if configChanged && s.rootPath != "" {
		cfg, warnings := config.Load(s.rootPath)
		for _, w := range warnings {
			log.Warningf("config: %s", w)
		}
		s.cfgMu.Lock()
		s.cfg = cfg
		s.cfgMu.Unlock()
	}

	// Re-publish with the fresh workspace view.
	for _, doc := range s.docs.All() {
		s.publishDiagnostics(doc)
	}
	return nil
}
