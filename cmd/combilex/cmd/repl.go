package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/combilex/internal/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interaktive Eingabe",
	Long: `Startet eine interaktive Eingabe. Jede Zeile wird sofort gelext.

Befehle:
  :help            Hilfe
  :format <name>   Ausgabeformat wechseln
  :sample          Beispielprogramm lexen
  :quit            Beenden (auch Ctrl+D)`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return repl.Run(repl.OptionsFromConfig(appConfig, logger), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
