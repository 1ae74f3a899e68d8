// Copyright © 2024 The hjkls authors

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hjkls/hjkls/config"
	"github.com/hjkls/hjkls/lint"
)

var (
	lintJSON  bool
	lintRules bool
)

var lintCmd = &cobra.Command{
	Use:   "lint [flags] [files...]",
	Short: "Run static analysis checks on Vim script files",
	Long: `Run the hjkls diagnostic rules from the command line.

Each finding is reported as file:line:col: message (category#rule),
in the style of go vet. Inline "hjkls:ignore" comments suppress
findings exactly as they do in the editor. Rule and category switches
come from the [lint] table of .hjkls.toml.

Examples:
  hjkls lint plugin/main.vim       Lint one file
  hjkls lint .                     Lint every .vim file in the tree
  hjkls lint --json file.vim       Machine-readable output
  hjkls lint --rules               List the available rules`,
	RunE: func(_ *cobra.Command, args []string) error {
		if lintRules {
			for _, name := range lint.RuleNames() {
				fmt.Println(name)
			}
			return nil
		}
		if len(args) == 0 {
			return fmt.Errorf("no files to lint")
		}

		wd, _ := os.Getwd()
		cfg, warnings := config.Load(wd)
		for _, w := range warnings {
			fmt.Fprintln(os.Stderr, "warning:", w)
		}

		files, err := expandVimFiles(args)
		if err != nil {
			return err
		}

		linter := lint.New()
		total := 0
		var all []lint.Diagnostic
		for _, path := range files {
			src, err := os.ReadFile(path) // #nosec G304 -- CLI lints user-specified files
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			diags := linter.LintSource(src, cfg)
			total += len(diags)
			if lintJSON {
				all = append(all, diags...)
			} else {
				lint.FormatText(os.Stdout, path, diags)
			}
		}
		if lintJSON {
			if err := lint.FormatJSON(os.Stdout, all); err != nil {
				return err
			}
		}
		if total > 0 {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	lintCmd.Flags().BoolVar(&lintJSON, "json", false,
		"Write diagnostics as JSON")
	lintCmd.Flags().BoolVar(&lintRules, "rules", false,
		"List all available rules and exit")

	rootCmd.AddCommand(lintCmd)
}
