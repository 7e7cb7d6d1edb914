package vet

import (
	"go/token"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/sirkon/deepequal"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/analysistest"

	"github.com/sirkon/smarterr/internal/config"
)

func TestDiscardedHelpers(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), Analyzer, "helpers")
}

func TestTemplates(t *testing.T) {
	var got []analysis.Diagnostic
	pass := &analysis.Pass{
		Fset: token.NewFileSet(),
		IgnoredFiles: []string{
			filepath.Join("testdata", "templates", "greek.go"),
			filepath.Join("testdata", "templates", "plain.go"),
		},
		ReadFile: os.ReadFile,
		Report: func(d analysis.Diagnostic) {
			got = append(got, d)
		},
	}

	if err := checkTemplates(pass, config.Default()); err != nil {
		t.Fatal(err)
	}

	var categories []string
	for _, d := range got {
		categories = append(categories, d.Category)
	}
	want := []string{"SER003", "SER030"}
	if !reflect.DeepEqual(want, categories) {
		deepequal.SideBySide(t, "categories", want, categories)
	}

	if len(got) == 2 && !strings.HasPrefix(got[1].Message, "SER030 (warning): ") {
		t.Errorf("warning expected, got %q", got[1].Message)
	}
}

func TestHelperKindString(t *testing.T) {
	tests := []struct {
		kind helperKind
		want string
	}{
		{helperKindThrow, "throw"},
		{helperKindRaise, "raise"},
		{helperKindInvalid, "invalid(0)"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("expected %s, got %s", tt.want, got)
		}
	}
}
