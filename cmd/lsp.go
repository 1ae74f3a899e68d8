// Copyright © 2024 The hjkls authors

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"

	"github.com/hjkls/hjkls/builtins"
	"github.com/hjkls/hjkls/lsp"
)

var (
	lspStdio      bool
	lspPort       int
	lspLog        string
	lspEditorMode string
	lspVimruntime string
)

var lspCmd = &cobra.Command{
	Use:   "lsp [flags]",
	Short: "Start the Vim script language server",
	Long: `Start an LSP server for Vim script files.

The language server provides real-time IDE features: diagnostics,
hover documentation, go-to-definition, find references, completion,
signature help, document and workspace symbols, folding, selection
ranges, rename, code actions, and formatting.

Transport modes:
  --stdio      Use stdin/stdout for LSP communication (default)
  --port N     Listen for an LSP client on TCP port N

Logging:
  --log PATH   Append structured debug logs to PATH
               (the HJKLS_LOG environment variable works too)

Examples:
  hjkls lsp                        Start with stdio transport
  hjkls lsp --log /tmp/hjkls.log   Start with debug logging
  hjkls lsp --port 7998            Start with TCP on port 7998`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		logPath := lspLog
		if logPath == "" {
			logPath = os.Getenv("HJKLS_LOG")
		}
		if logPath != "" {
			commonlog.Configure(2, &logPath)
		} else {
			commonlog.Configure(0, nil)
		}

		var opts []lsp.Option
		if lspEditorMode != "" {
			opts = append(opts, lsp.WithEditorMode(builtins.ParseEditorMode(lspEditorMode)))
		}
		if lspVimruntime != "" {
			opts = append(opts, lsp.WithVimruntime(lspVimruntime))
		}

		srv := lsp.New(opts...)

		if !lspStdio && lspPort > 0 {
			addr := fmt.Sprintf("localhost:%d", lspPort)
			if err := srv.RunTCP(addr); err != nil {
				fmt.Fprintf(os.Stderr, "lsp server error: %v\n", err)
				os.Exit(1)
			}
		} else {
			if err := srv.RunStdio(); err != nil {
				fmt.Fprintf(os.Stderr, "lsp server error: %v\n", err)
				os.Exit(1)
			}
		}
	},
}

func init() {
	lspCmd.Flags().BoolVar(&lspStdio, "stdio", false,
		"Use stdin/stdout for LSP communication (default behavior)")
	lspCmd.Flags().IntVar(&lspPort, "port", 0,
		"TCP port for LSP server (use instead of --stdio)")
	lspCmd.Flags().StringVar(&lspLog, "log", "",
		"Append debug logs to this file")
	lspCmd.Flags().StringVar(&lspEditorMode, "editor-mode", "",
		`Filter builtin completions: "vim", "nvim", or "both"`)
	lspCmd.Flags().StringVar(&lspVimruntime, "vimruntime", "",
		"Override the $VIMRUNTIME autoload root")

	rootCmd.AddCommand(lspCmd)
}
