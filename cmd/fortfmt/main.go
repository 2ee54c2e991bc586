// Package main is the entry point for fortfmt.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "github.com/donaldgifford/fortfmt/internal/rules" // Register rules via init().
	"github.com/donaldgifford/fortfmt/internal/runner"
	"github.com/donaldgifford/fortfmt/internal/version"
)

var (
	opts     runner.Options
	exitCode int
)

var rootCmd = &cobra.Command{
	Use:   "fortfmt [flags] [files...]",
	Short: "Format fixed- and free-form Fortran source",
	Long: `fortfmt parses Fortran source into a lossless region model, applies
ordered formatting passes, and rebuilds the text. With no files it reads
from stdin and writes to stdout; file arguments are rewritten in place.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts.Files = args
		exitCode = runner.Run(&opts)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the fortfmt version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.String())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	f := rootCmd.Flags()
	f.BoolVar(&opts.Check, "check", false, "exit 1 if any input is not formatted")
	f.BoolVar(&opts.Diff, "diff", false, "print a unified diff instead of rewriting")
	f.BoolVarP(&opts.Write, "write", "w", false, "rewrite files in place (the default for file arguments)")
	f.BoolVar(&opts.Print, "stdout", false, "print results to stdout instead of rewriting")
	f.BoolVar(&opts.Highlight, "highlight", false, "syntax-color stdout output on terminals")
	f.BoolVar(&opts.UseCache, "cache", false, "skip files already formatted under the current config")
	f.IntVarP(&opts.Jobs, "jobs", "j", 0, "number of files formatted in parallel (0 = all CPUs)")
	f.StringVar(&opts.ConfigPath, "config", "", "path to config file")
	f.StringVar(&opts.Layout, "layout", "", "input layout: fixed or free (overrides config)")
	f.BoolVar(&opts.Convert, "convert", false, "convert fixed-form input to free form")
	f.BoolVarP(&opts.Quiet, "quiet", "q", false, "suppress informational output")
	f.BoolVarP(&opts.Verbose, "verbose", "v", false, "report per-file status and remarks")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "fortfmt: %v\n", err)
		os.Exit(runner.ExitError)
	}
	os.Exit(exitCode)
}
