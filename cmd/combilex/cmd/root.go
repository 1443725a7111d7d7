// ============================================================================
// combilex - Parser-Combinator Lexer
// ============================================================================
//
// Package:     cmd
// Description: Root command, global flags and shared setup
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/combilex/foundation/core/error"
	mdwlog "github.com/msto63/combilex/foundation/core/log"
	"github.com/msto63/combilex/pkg/core/config"
	"github.com/msto63/combilex/pkg/core/logging"
)

var (
	cfgFile      string
	verbose      bool
	outputFormat string
	noColor      bool

	// set up by loadSettings before every command
	appConfig *config.Config
	logger    *mdwlog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "combilex",
	Short: "combilex - Lexer auf Basis von Parser-Kombinatoren",
	Long: `combilex zerlegt Quelltext einer kleinen C-ähnlichen Sprache in Tokens.
Der Lexer ist vollständig aus Parser-Kombinatoren aufgebaut.

Tokens:
  IDENTIFIER           - Bezeichner (main, _x1)
  LPAREN / RPAREN      - ( und )
  LBRACE / RBRACE      - { und }
  INT_LITERAL          - 0, 42
  FLOAT_LITERAL        - 1.06f
  DOUBLE_LITERAL       - 2.5, 1.
  ARITHMETIC_OPERATOR  - + - * / =
  SEMICOLON            - ;`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
}

// Execute runs the root command
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		printError(err)
	}
	return err
}

// ExitCode maps an error to the process exit code
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return mdwerror.GetCode(err).ExitCode()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: $COMBILEX_CONFIG oder ./configs/combilex.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "", "Ausgabeformat (text, json, yaml, debug)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Farbige Ausgabe deaktivieren")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return mdwerror.Wrap(err, "ungültige Argumente").WithCode(mdwerror.CodeInvalidInput)
	})
}

// loadSettings loads the configuration, applies the global flags and
// creates the logger
func loadSettings(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		appConfig, err = config.Load(cfgFile)
	} else {
		appConfig, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	if outputFormat != "" {
		if !config.IsValidFormat(outputFormat) {
			return mdwerror.Newf("unbekanntes Ausgabeformat %q", outputFormat).
				WithCode(mdwerror.CodeInvalidInput).
				WithOperation("cmd.loadSettings")
		}
		appConfig.Output.Format = outputFormat
	}
	if noColor {
		off := false
		appConfig.Output.Color = &off
	}

	lc := logging.FromConfig("combilex", appConfig, verbose)
	lc.Output = cmd.ErrOrStderr()
	logger = logging.NewLogger(lc)

	if path := appConfig.Path(); path != "" {
		logger.Debug("configuration loaded", mdwlog.String("path", path))
	}
	return nil
}

func printError(err error) {
	out := rootCmd.ErrOrStderr()
	fmt.Fprintf(out, "Fehler: %v\n", err)

	var coded *mdwerror.Error
	if verbose && errors.As(err, &coded) {
		fmt.Fprintf(out, "  Code: %s, Severity: %s\n", coded.Code(), coded.Severity())
	}
}
