// Copyright © 2024 The hjkls authors

// Package lsp implements the hjkls language server for Vim script.
// It provides diagnostics, hover, go-to-definition, references,
// completion, signature help, symbols, highlight, folding, selection
// ranges, formatting, rename, and code actions over LSP.
package lsp

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	glspserver "github.com/tliron/glsp/server"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/hjkls/hjkls/analysis"
	"github.com/hjkls/hjkls/builtins"
	"github.com/hjkls/hjkls/config"
	"github.com/hjkls/hjkls/lint"
)

const serverName = "hjkls"

var log = commonlog.GetLogger(serverName)

// Server is the Vim script language server.
type Server struct {
	handler  protocol.Handler
	glspSrv  *glspserver.Server
	docs     *DocumentStore
	rootURI  string
	rootPath string

	// Workspace index built during initialization.
	index     *analysis.Index
	indexOnce sync.Once

	// Linter shared across diagnostics runs.
	linter *lint.Linter

	// Workspace configuration from .hjkls.toml.
	cfgMu sync.RWMutex
	cfg   *config.Config

	editorMode builtins.EditorMode
	vimruntime string

	// Debouncer for didChange notifications.
	debounceMu sync.Mutex
	debounce   map[string]*time.Timer

	// Context for sending notifications (captured from latest request).
	notifyMu sync.Mutex
	notify   glsp.NotifyFunc

	// exitFn is called on the LSP exit notification. Defaults to
	// os.Exit; overridable for testing.
	exitFn func(int)
}

// Option configures the server.
type Option func(*Server)

// WithEditorMode filters builtin completions by target editor.
func WithEditorMode(mode builtins.EditorMode) Option {
	return func(s *Server) { s.editorMode = mode }
}

// WithVimruntime overrides the $VIMRUNTIME autoload root.
func WithVimruntime(path string) Option {
	return func(s *Server) { s.vimruntime = path }
}

// New creates a new hjkls language server.
func New(opts ...Option) *Server {
	s := &Server{
		docs:       NewDocumentStore(),
		index:      analysis.NewIndex(),
		linter:     lint.New(),
		cfg:        config.Default(),
		vimruntime: os.Getenv("VIMRUNTIME"),
		debounce:   make(map[string]*time.Timer),
		exitFn:     os.Exit,
	}
	for _, o := range opts {
		o(s)
	}

	s.handler = protocol.Handler{
		Initialize:  s.initialize,
		Initialized: s.initialized,
		Shutdown:    s.shutdown,
		Exit:        s.exit,
		SetTrace:    s.setTrace,

		TextDocumentDidOpen:   s.textDocumentDidOpen,
		TextDocumentDidChange: s.textDocumentDidChange,
		TextDocumentDidSave:   s.textDocumentDidSave,
		TextDocumentDidClose:  s.textDocumentDidClose,

		TextDocumentHover:             s.textDocumentHover,
		TextDocumentDefinition:        s.textDocumentDefinition,
		TextDocumentCompletion:        s.textDocumentCompletion,
		TextDocumentReferences:        s.textDocumentReferences,
		TextDocumentSignatureHelp:     s.textDocumentSignatureHelp,
		TextDocumentDocumentSymbol:    s.textDocumentDocumentSymbol,
		TextDocumentDocumentHighlight: s.textDocumentDocumentHighlight,
		TextDocumentFoldingRange:      s.textDocumentFoldingRange,
		TextDocumentSelectionRange:    s.textDocumentSelectionRange,
		TextDocumentFormatting:        s.textDocumentFormatting,
		TextDocumentRename:            s.textDocumentRename,
		TextDocumentPrepareRename:     s.textDocumentPrepareRename,
		TextDocumentCodeAction:        s.textDocumentCodeAction,

		WorkspaceSymbol:                s.workspaceSymbol,
		WorkspaceDidChangeWatchedFiles: s.workspaceDidChangeWatchedFiles,
	}

	s.glspSrv = glspserver.NewServer(&s.handler, serverName, false)
	return s
}

// RunStdio starts the server using stdio transport.
func (s *Server) RunStdio() error {
	return s.glspSrv.RunStdio()
}

// RunTCP starts the server listening on the given address.
func (s *Server) RunTCP(addr string) error {
	return s.glspSrv.RunTCP(addr)
}

// initialize handles the LSP initialize request.
func (s *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	s.captureNotify(ctx)

	if params.RootURI != nil {
		s.rootURI = *params.RootURI
		s.rootPath = uriToPath(s.rootURI)
	} else if params.RootPath != nil {
		s.rootPath = *params.RootPath
		s.rootURI = pathToURI(s.rootPath)
	}

	// Load .hjkls.toml before the first diagnostics run. Type errors
	// are startup warnings, never fatal.
	if s.rootPath != "" {
		cfg, warnings := config.Load(s.rootPath)
		for _, w := range warnings {
			log.Warningf("config: %s", w)
		}
		s.cfgMu.Lock()
		s.cfg = cfg
		s.cfgMu.Unlock()
	}

	if s.rootPath != "" {
		s.index.AddRoot(s.rootPath)
	}
	if s.vimruntime != "" {
		s.index.AddRoot(s.vimruntime)
	}

	capabilities := s.handler.CreateServerCapabilities()

	syncKind := protocol.TextDocumentSyncKindIncremental
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    &syncKind,
		Save:      &protocol.SaveOptions{IncludeText: boolPtr(false)},
	}

	capabilities.CompletionProvider = &protocol.CompletionOptions{
		TriggerCharacters: []string{".", ":", "#", "<"},
	}
	capabilities.SignatureHelpProvider = &protocol.SignatureHelpOptions{
		TriggerCharacters: []string{"(", ",", ")"},
	}
	capabilities.RenameProvider = &protocol.RenameOptions{
		PrepareProvider: boolPtr(true),
	}

	version := "0.1.0"
	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    serverName,
			Version: &version,
		},
	}, nil
}

// initialized kicks off the background workspace warm-up.
func (s *Server) initialized(ctx *glsp.Context, _ *protocol.InitializedParams) error {
	s.captureNotify(ctx)
	go s.ensureWorkspaceIndex()
	return nil
}

// ensureWorkspaceIndex builds the workspace index once. Safe from any
// goroutine; also triggered lazily by the first query that needs it.
func (s *Server) ensureWorkspaceIndex() {
	s.indexOnce.Do(func() {
		defer func() {
			if r := recover(); r != nil {
				log.Errorf("workspace scan panic: %v", r)
			}
		}()
		s.index.Scan()
	})
}

// shutdown handles the LSP shutdown request.
func (s *Server) shutdown(_ *glsp.Context) error {
	s.debounceMu.Lock()
	for _, t := range s.debounce {
		t.Stop()
	}
	s.debounce = make(map[string]*time.Timer)
	s.debounceMu.Unlock()
	return nil
}

// exit terminates the process with code 0; shutdown already ran or
// the client is gone either way.
func (s *Server) exit(_ *glsp.Context) error {
	s.exitFn(0)
	return nil
}

// setTrace handles the $/setTrace notification (required by some clients).
func (s *Server) setTrace(_ *glsp.Context, _ *protocol.SetTraceParams) error {
	return nil
}

// ruleConfig returns the current lint rule configuration.
func (s *Server) ruleConfig() lint.RuleConfig {
	s.cfgMu.RLock()
	defer s.cfgMu.RUnlock()
	return s.cfg
}

// formatConfig returns the current formatter configuration.
func (s *Server) formatConfig() *config.Config {
	s.cfgMu.RLock()
	defer s.cfgMu.RUnlock()
	return s.cfg
}

// resolveURI maps an indexed file path to a document URI, reusing the
// current URI when the path matches the current document.
func (s *Server) resolveURI(currentURI, path string) string {
	if path == "" || path == uriToPath(currentURI) {
		return currentURI
	}
	if !filepath.IsAbs(path) && s.rootPath != "" {
		path = filepath.Join(s.rootPath, path)
	}
	return pathToURI(path)
}

// captureNotify stores the notification function from the context for
// async use (publishing diagnostics after a debounce).
func (s *Server) captureNotify(ctx *glsp.Context) {
	if ctx == nil {
		return
	}
	s.notifyMu.Lock()
	s.notify = ctx.Notify
	s.notifyMu.Unlock()
}

// sendNotification sends a notification to the client.
func (s *Server) sendNotification(method string, params any) {
	s.notifyMu.Lock()
	fn := s.notify
	s.notifyMu.Unlock()
	if fn != nil {
		fn(method, params)
	}
}
