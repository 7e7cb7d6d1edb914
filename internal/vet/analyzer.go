package vet

import (
	"go/ast"
	"go/parser"
	"path/filepath"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/sirkon/smarterr/internal/config"
	"github.com/sirkon/smarterr/internal/diag"
	"github.com/sirkon/smarterr/internal/generate"
	"github.com/sirkon/smarterr/internal/rules"
)

const doc = `smarterr checks error set templates and usage of smarterr runtime helpers

Templates of the package are parsed and resolved the way the generator does
it, diagnostics are reported at their positions. Calls of runtime helpers
with discarded results are reported as well.`

// Analyzer is the main entry point for the checker.
var Analyzer = &analysis.Analyzer{
	Name:     "smarterr",
	Doc:      doc,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

var (
	configPath string
	verifyFlag string
)

func init() {
	Analyzer.Flags.StringVar(&configPath, "config", "", "path to the configuration file, looked up from the package directory when empty")
	Analyzer.Flags.StringVar(&verifyFlag, "verify", "", "verification level (off, warn, error), overrides the configuration")
}

func run(pass *analysis.Pass) (any, error) {
	cfg, err := loadConfig(pass)
	if err != nil {
		return nil, err
	}

	if err := checkTemplates(pass, cfg); err != nil {
		return nil, err
	}

	pector := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	checker := newKnownHelperChecker(pass, cfg.RuntimeImport, nil)

	nodeFilter := []ast.Node{
		(*ast.ExprStmt)(nil),
		(*ast.AssignStmt)(nil),
	}
	pector.Preorder(nodeFilter, func(node ast.Node) {
		call := checker.discarded(node.(ast.Stmt))
		if call == nil {
			return
		}

		kind, name, _ := checker.helper(call)
		report(pass, diag.Report{
			Rule:    rules.SER040DiscardedHelperResult,
			Pos:     call.Pos(),
			End:     call.End(),
			Message: "results of " + kind.String() + " helper " + name + " are discarded",
		})
	})

	return nil, nil
}

func loadConfig(pass *analysis.Pass) (config.Config, error) {
	cfg := config.Default()
	path := configPath
	if path == "" {
		if dir := packageDir(pass); dir != "" {
			path, _ = config.Find(dir)
		}
	}

	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return cfg, err
		}
	}
	if verifyFlag != "" {
		if err := cfg.Set("verify", verifyFlag); err != nil {
			return cfg, err
		}
	}

	return cfg, nil
}

// checkTemplates resolves templates found among files ignored by the build.
func checkTemplates(pass *analysis.Pass, cfg config.Config) error {
	var files []*ast.File
	for _, name := range pass.IgnoredFiles {
		src, err := pass.ReadFile(name)
		if err != nil {
			return err
		}
		if !generate.IsTemplate(src, cfg.BuildTag) {
			continue
		}

		file, err := parser.ParseFile(pass.Fset, name, src, parser.ParseComments)
		if err != nil {
			return err
		}
		files = append(files, file)
	}
	if len(files) == 0 {
		return nil
	}

	r := &diag.Reporter{}
	generate.Check(r, files, cfg)
	for _, rep := range r.Sorted() {
		report(pass, rep)
	}

	return nil
}

func report(pass *analysis.Pass, rep diag.Report) {
	msg := rep.Rule.Code() + ": " + rep.Message
	if rep.Severity == diag.SeverityWarning {
		msg = rep.Rule.Code() + " (warning): " + rep.Message
	}

	pass.Report(analysis.Diagnostic{
		Pos:      rep.Pos,
		End:      rep.End,
		Category: rep.Rule.Code(),
		Message:  msg,
	})
}

func packageDir(pass *analysis.Pass) string {
	for _, f := range pass.Files {
		if name := pass.Fset.Position(f.Pos()).Filename; name != "" {
			return filepath.Dir(name)
		}
	}
	for _, name := range pass.IgnoredFiles {
		return filepath.Dir(name)
	}

	return ""
}
