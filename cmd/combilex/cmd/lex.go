// ============================================================================
// combilex - Parser-Combinator Lexer
// ============================================================================
//
// Package:     cmd
// Description: CLI commands lexing files, expressions or stdin
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/combilex/internal/render"
)

var (
	lexExpr    string
	lexDemo    bool
	lexWorkers int
)

var lexCmd = &cobra.Command{
	Use:   "lex [datei...]",
	Short: "Zerlegt Quelltext in Tokens",
	Long: `Zerlegt Quelltext in Tokens und gibt sie aus.

Ohne Datei wird von stdin gelesen. Mehrere Dateien werden parallel
verarbeitet. Der Exit-Code ist 1, wenn eine Eingabe nicht vollständig
erkannt wurde; die bis dahin erkannten Tokens werden trotzdem ausgegeben.

Beispiele:
  combilex lex main.c
  combilex lex --expr "int b = 1 + 1.06f;"
  combilex lex --format json a.c b.c
  combilex lex --demo --format debug
  cat main.c | combilex lex`,
	RunE: runLex,
}

var checkCmd = &cobra.Command{
	Use:   "check [datei...]",
	Short: "Prüft, ob Quelltext vollständig erkannt wird",
	Long: `Prüft Eingaben gegen die Grammatik, ohne Tokens auszugeben.

Beispiele:
  combilex check src/*.c
  combilex check --expr "x = 1 @ 2"`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	rootCmd.AddCommand(checkCmd)

	for _, c := range []*cobra.Command{lexCmd, checkCmd} {
		c.Flags().StringVarP(&lexExpr, "expr", "e", "", "Ausdruck statt Datei lexen")
		c.Flags().BoolVar(&lexDemo, "demo", false, "Beispielprogramm lexen")
		c.Flags().IntVarP(&lexWorkers, "workers", "w", 0, "Anzahl paralleler Worker (default: aus Config bzw. CPU-Anzahl)")
	}
}

// workers returns the worker count from flag or config
func workers() int {
	if lexWorkers > 0 {
		return lexWorkers
	}
	return appConfig.Batch.Workers
}

func runLex(cmd *cobra.Command, args []string) error {
	inputs, err := collectInputs(lexExpr, lexDemo, args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	report, err := lexInputs(cmd.Context(), inputs, workers())
	if err != nil {
		return err
	}

	opts := render.Options{
		Format: appConfig.Output.Format,
		Color:  appConfig.ColorEnabled(),
	}
	if err := render.Write(cmd.OutOrStdout(), report, opts); err != nil {
		return err
	}

	return unmatchedError(report)
}

func runCheck(cmd *cobra.Command, args []string) error {
	inputs, err := collectInputs(lexExpr, lexDemo, args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	report, err := lexInputs(cmd.Context(), inputs, workers())
	if err != nil {
		return err
	}

	styles := render.PlainStyles()
	if appConfig.ColorEnabled() {
		styles = render.DefaultStyles()
	}

	out := cmd.OutOrStdout()
	for _, in := range report.Inputs {
		name := in.Name
		if name == "" {
			name = "<eingabe>"
		}
		fmt.Fprintf(out, "%s: %s\n", name, render.Status(in, styles))
	}

	return unmatchedError(report)
}
