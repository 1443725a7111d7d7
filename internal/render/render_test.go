package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/combilex/foundation/core/error"
	"github.com/msto63/combilex/pkg/lexer"
)

func sampleReport(t *testing.T) *Report {
	t.Helper()
	report := NewReport()
	report.Add("ok.c", lexer.MustLex("x = 1;"), nil)
	report.Add("bad.c", lexer.MustLex("a @"), nil)
	return report
}

func TestNewReport(t *testing.T) {
	report := NewReport()

	if _, err := uuid.Parse(report.RunID); err != nil {
		t.Errorf("RunID %q is not a UUID: %v", report.RunID, err)
	}
	if report.Generated.IsZero() {
		t.Error("Generated should be set")
	}
	if !report.AllMatched() {
		t.Error("empty report should count as all matched")
	}
}

func TestReport_Add(t *testing.T) {
	report := sampleReport(t)
	report.Add("broken", nil, errors.New("boom"))

	if len(report.Inputs) != 3 {
		t.Fatalf("len(Inputs) = %d, want 3", len(report.Inputs))
	}
	if report.AllMatched() {
		t.Error("AllMatched() = true, want false")
	}

	matched, failed := report.Summary()
	if matched != 1 || failed != 2 {
		t.Errorf("Summary() = %d, %d, want 1, 2", matched, failed)
	}

	broken := report.Inputs[2]
	if broken.Error != "boom" || broken.Tokens == nil {
		t.Errorf("broken input = %+v", broken)
	}
}

func TestWrite_Text(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sampleReport(t), Options{Format: "text"}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	out := buf.String()
	wants := []string{
		"== ok.c ==",
		"IDENTIFIER           x\n",
		"ARITHMETIC_OPERATOR  =\n",
		"INT_LITERAL          1\n",
		"SEMICOLON            ;\n",
		"OK (4 Tokens)",
		"== bad.c ==",
		"keine Übereinstimmung nach 1 Tokens",
		"2 Eingaben: 1 erkannt, 1 fehlgeschlagen",
	}
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
}

func TestWrite_TextSingleUnnamed(t *testing.T) {
	report := NewReport()
	report.Add("", lexer.MustLex("f()"), nil)

	var buf bytes.Buffer
	if err := Write(&buf, report, Options{}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	want := "IDENTIFIER  f\nLPAREN      (\nRPAREN      )\nOK (3 Tokens)\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestWrite_JSON(t *testing.T) {
	report := sampleReport(t)

	var buf bytes.Buffer
	if err := Write(&buf, report, Options{Format: "json"}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	var decoded Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if decoded.RunID != report.RunID {
		t.Errorf("RunID = %v, want %v", decoded.RunID, report.RunID)
	}
	if len(decoded.Inputs) != 2 || len(decoded.Inputs[0].Tokens) != 4 {
		t.Fatalf("decoded inputs = %+v", decoded.Inputs)
	}
	if decoded.Inputs[0].Tokens[2].Kind != lexer.KindIntLiteral {
		t.Errorf("token kind = %v, want INT_LITERAL", decoded.Inputs[0].Tokens[2].Kind)
	}
	if !strings.Contains(buf.String(), `"kind": "ARITHMETIC_OPERATOR"`) {
		t.Errorf("kinds should be written by name:\n%s", buf.String())
	}
}

func TestWrite_YAML(t *testing.T) {
	report := sampleReport(t)

	var buf bytes.Buffer
	if err := Write(&buf, report, Options{Format: "yaml"}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	var decoded Report
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not YAML: %v", err)
	}
	if decoded.RunID != report.RunID {
		t.Errorf("RunID = %v, want %v", decoded.RunID, report.RunID)
	}
	if decoded.Inputs[1].Matched {
		t.Error("bad.c should not be matched")
	}
	if !strings.Contains(buf.String(), "kind: SEMICOLON") {
		t.Errorf("kinds should be written by name:\n%s", buf.String())
	}
}

func TestWrite_Debug(t *testing.T) {
	report := NewReport()
	report.Add("", lexer.MustLex("int main() { return 0; }"), nil)
	report.Add("", nil, errors.New("boom"))

	var buf bytes.Buffer
	if err := Write(&buf, report, Options{Format: "debug"}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	want := strings.Join([]string{
		"true",
		"TOKEN IDENTIFIER int",
		"TOKEN IDENTIFIER main",
		"TOKEN LPAREN",
		"TOKEN RPAREN",
		"TOKEN LBRACK",
		"TOKEN IDENTIFIER return",
		"TOKEN INT LITERAL 0",
		"TOKEN SEMICOLON",
		"TOKEN RBRACK",
		"error: boom",
		"",
	}, "\n")
	if buf.String() != want {
		t.Errorf("output =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, NewReport(), Options{Format: "xml"})
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("error = %v, want code %v", err, mdwerror.CodeInvalidInput)
	}
}

func TestStyles_ForKind(t *testing.T) {
	s := DefaultStyles()
	if s.ForKind(lexer.KindFloatLiteral).GetForeground() != ColorAccent {
		t.Error("literals should use the accent color")
	}
	if s.ForKind(lexer.KindArithmeticOperator).GetForeground() != ColorSecondary {
		t.Error("operators should use the secondary color")
	}
	if s.ForKind(lexer.KindSemicolon).GetForeground() != ColorTextDim {
		t.Error("punctuation should use the dim color")
	}
}
