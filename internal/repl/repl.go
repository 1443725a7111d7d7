package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/peterh/liner"

	mdwlog "github.com/msto63/combilex/foundation/core/log"
	"github.com/msto63/combilex/pkg/core/config"
)

const defaultHistoryFile = ".combilex_history"

// Options configure the interactive prompt
type Options struct {
	Prompt      string
	HistoryFile string
	Format      string
	Color       bool
	Logger      *mdwlog.Logger
}

// OptionsFromConfig derives prompt options from the application config
func OptionsFromConfig(cfg *config.Config, logger *mdwlog.Logger) Options {
	return Options{
		Prompt:      cfg.REPL.Prompt,
		HistoryFile: cfg.REPL.HistoryFile,
		Format:      cfg.Output.Format,
		Color:       cfg.ColorEnabled(),
		Logger:      logger,
	}
}

// Run reads lines until EOF or :quit, printing every result to out
func Run(opts Options, out io.Writer) error {
	session := NewSession(opts.Format, opts.Color, opts.Logger)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := historyPath(opts.HistoryFile)
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	fmt.Fprintln(out, "combilex REPL. :help zeigt alle Befehle, :quit beendet.")

	for {
		line, err := ln.Prompt(opts.Prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Fprintln(out)
			return nil
		}
		if err != nil {
			return err
		}

		output, exit := session.Handle(line)
		if exit {
			return nil
		}
		if output != "" {
			fmt.Fprintln(out, output)
			ln.AppendHistory(line)
		}
	}
}

// historyPath resolves the history file; relative names live in the home
// directory
func historyPath(name string) string {
	if name == "" {
		name = defaultHistoryFile
	}
	if filepath.IsAbs(name) {
		return name
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, name)
}
