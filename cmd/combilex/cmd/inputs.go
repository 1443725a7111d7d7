package cmd

import (
	"context"
	"io"
	"os"

	mdwerror "github.com/msto63/combilex/foundation/core/error"
	mdwlog "github.com/msto63/combilex/foundation/core/log"
	"github.com/msto63/combilex/internal/render"
	"github.com/msto63/combilex/pkg/lexer"
)

// input is one named source text; unnamed inputs come from --expr, --demo
// or stdin
type input struct {
	name string
	text string
}

// collectInputs gathers the texts to lex: the expression, the sample
// program, the named files or stdin, in this order of precedence
func collectInputs(expr string, demo bool, files []string, stdin io.Reader) ([]input, error) {
	switch {
	case expr != "":
		return []input{{text: expr}}, nil
	case demo:
		return []input{{text: lexer.SampleProgram}}, nil
	case len(files) == 0:
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, mdwerror.Wrap(err, "Eingabe konnte nicht gelesen werden").
				WithCode(mdwerror.CodeIOError).
				WithOperation("cmd.collectInputs")
		}
		return []input{{text: string(data)}}, nil
	}

	inputs := make([]input, 0, len(files))
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			code := mdwerror.CodeIOError
			if os.IsNotExist(err) {
				code = mdwerror.CodeNotFound
			}
			return nil, mdwerror.Wrap(err, "Datei konnte nicht gelesen werden").
				WithCode(code).
				WithOperation("cmd.collectInputs").
				WithDetail("path", f)
		}
		inputs = append(inputs, input{name: f, text: string(data)})
	}
	return inputs, nil
}

// lexInputs lexes all inputs concurrently and collects them into a report
func lexInputs(ctx context.Context, inputs []input, workers int) (*render.Report, error) {
	report := render.NewReport()
	log := logger.WithRunID(report.RunID)

	texts := make([]string, len(inputs))
	for i, in := range inputs {
		texts[i] = in.text
	}

	timer := log.StartTimer("lex").WithField("inputs", len(inputs))
	results, err := lexer.LexBatch(ctx, texts, workers)
	if err != nil {
		timer.StopWithError(err)
		return nil, mdwerror.Wrap(err, "Lexen abgebrochen").
			WithCode(mdwerror.CodeCancelled).
			WithOperation("cmd.lexInputs")
	}
	timer.Stop()

	for i, r := range results {
		report.Add(inputs[i].name, r.Result, r.Err)
		if r.Err != nil {
			log.WarnWithErr("input rejected", r.Err, mdwlog.String("input", inputs[i].name))
		} else if !r.Result.Matched {
			log.Info("input not matched", mdwlog.Fields{
				"input":  inputs[i].name,
				"tokens": len(r.Result.Tokens),
			})
		}
	}
	return report, nil
}

// unmatchedError reports inputs that could not be lexed or did not match
// the grammar
func unmatchedError(report *render.Report) error {
	if report.AllMatched() {
		return nil
	}
	for _, in := range report.Inputs {
		if in.Error != "" {
			return mdwerror.Newf("ungültige Eingabe %s", in.Name).
				WithCode(mdwerror.CodeInvalidInput).
				WithOperation("cmd.lex").
				WithDetail("cause", in.Error)
		}
	}
	_, failed := report.Summary()
	return mdwerror.Newf("%d von %d Eingaben nicht erkannt", failed, len(report.Inputs)).
		WithCode(mdwerror.CodeUnmatchedInput).
		WithOperation("cmd.lex")
}
