package cmd

import (
	"os"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/combilex/foundation/core/error"
	"github.com/msto63/combilex/internal/tui/explorer"
	"github.com/msto63/combilex/pkg/lexer"
)

var exploreDemo bool

var exploreCmd = &cobra.Command{
	Use:     "explore [datei]",
	Aliases: []string{"tui"},
	Short:   "Startet den Token-Explorer",
	Long: `Startet den interaktiven Token-Explorer.

Der Explorer zeigt die Tokens des eingegebenen Quelltexts an und
aktualisiert sie bei jeder Änderung.

Tastenkuerzel:
  PgUp/PgDn   Tokens scrollen
  Ctrl+L      Eingabe leeren
  Esc/Ctrl+C  Beenden`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExplore,
}

func init() {
	rootCmd.AddCommand(exploreCmd)

	exploreCmd.Flags().BoolVar(&exploreDemo, "demo", false, "Mit Beispielprogramm starten")
}

func runExplore(cmd *cobra.Command, args []string) error {
	initial := ""
	switch {
	case exploreDemo:
		initial = lexer.SampleProgram
	case len(args) == 1:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return mdwerror.Wrap(err, "Datei konnte nicht gelesen werden").
				WithCode(mdwerror.CodeIOError).
				WithDetail("path", args[0])
		}
		initial = string(data)
	}

	return explorer.Run(explorer.Config{
		Initial: initial,
		Color:   appConfig.ColorEnabled(),
		Logger:  logger,
	})
}
