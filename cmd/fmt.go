// Copyright © 2024 The hjkls authors

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hjkls/hjkls/config"
	"github.com/hjkls/hjkls/formatter"
)

var (
	fmtWrite       bool
	fmtList        bool
	fmtDiff        bool
	fmtIndentWidth int
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] [files...]",
	Short: "Format Vim script source files",
	Long: `Format Vim script files, similar to gofmt for Go.

Applies block indentation, trailing-whitespace removal, space
normalization, operator spacing, and separator spacing. The
formatter is idempotent. Options come from .hjkls.toml's [format]
table; flags override.

With no files, reads from stdin and writes to stdout.
With files, prints formatted output to stdout unless -w is given.

Modes:
  (default)   Print formatted code to stdout
  -w          Write result back to source file
  -d          Display which lines would change
  -l          List files that would be changed

Examples:
  hjkls fmt file.vim               Print formatted output
  hjkls fmt -w plugin/ autoload/   Rewrite all .vim files in place
  hjkls fmt -l .                   List unformatted files`,
	RunE: func(_ *cobra.Command, args []string) error {
		cfg := loadFormatConfig()
		if fmtIndentWidth > 0 {
			cfg.IndentWidth = fmtIndentWidth
		}

		if len(args) == 0 {
			src, err := io.ReadAll(os.Stdin)
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(formatter.Format(src, cfg))
			return err
		}

		files, err := expandVimFiles(args)
		if err != nil {
			return err
		}
		changed := false
		for _, path := range files {
			src, err := os.ReadFile(path) // #nosec G304 -- CLI formats user-specified files
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			out := formatter.Format(src, cfg)
			if string(out) == string(src) {
				if !fmtList && !fmtWrite && !fmtDiff {
					if _, err := os.Stdout.Write(out); err != nil {
						return err
					}
				}
				continue
			}
			changed = true
			switch {
			case fmtList:
				fmt.Println(path)
			case fmtWrite:
				if err := os.WriteFile(path, out, 0o600); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
			case fmtDiff:
				printLineDiff(path, string(src), string(out))
			default:
				if _, err := os.Stdout.Write(out); err != nil {
					return err
				}
			}
		}
		if changed && fmtList {
			os.Exit(1)
		}
		return nil
	},
}

func loadFormatConfig() *formatter.Config {
	wd, err := os.Getwd()
	if err != nil {
		return formatter.DefaultConfig()
	}
	cfg, warnings := config.Load(wd)
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}
	return cfg.Format
}

func init() {
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false,
		"Write result back to source file instead of stdout")
	fmtCmd.Flags().BoolVarP(&fmtList, "list", "l", false,
		"List files whose formatting differs (exit 1 if any)")
	fmtCmd.Flags().BoolVarP(&fmtDiff, "diff", "d", false,
		"Display the lines that would change")
	fmtCmd.Flags().IntVar(&fmtIndentWidth, "indent-width", 0,
		"Override indent width from configuration")

	rootCmd.AddCommand(fmtCmd)
}
