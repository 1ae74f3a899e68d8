// Copyright © 2024 The hjkls authors

// Package cmd implements the hjkls command line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "hjkls",
	Short: "hjkls — language server for Vim script",
	Long: `hjkls is a language server for Vim script. It provides live
diagnostics, completion, navigation, hover, symbol outlines,
references, renames, signature help, folding, code actions, and
formatting over the Language Server Protocol.

Getting started:
  hjkls lsp                    Start the language server on stdio
  hjkls lint file.vim          Run lint checks from the command line
  hjkls fmt file.vim           Format a Vim script file

Diagnostics are grouped into three categories:
  correctness   Likely bugs (undefined functions, wrong arity, ...)
  suspicious    Code that may behave unexpectedly (normal without !)
  style         Style suggestions (prefer .., missing abort, ...)

Inline suppression:
  " hjkls:ignore-next-line suspicious#normal_bang
  " hjkls:ignore style#double_dot, style#single_quote

Configuration lives in .hjkls.toml at the project root; see the
[format] and [lint] tables in the documentation.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Called once by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .hjkls.toml in the project root)")
}

// initConfig reads in the config file and environment variables.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(".hjkls")
		viper.SetConfigType("toml")
	}

	viper.SetEnvPrefix("hjkls")
	viper.AutomaticEnv()

	_ = viper.ReadInConfig() // a missing config file is fine
}
