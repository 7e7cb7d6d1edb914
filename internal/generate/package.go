package generate

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirkon/smarterr/internal/attach"
	"github.com/sirkon/smarterr/internal/config"
	"github.com/sirkon/smarterr/internal/diag"
	"github.com/sirkon/smarterr/internal/emit"
	"github.com/sirkon/smarterr/internal/errgraph"
	"github.com/sirkon/smarterr/internal/model"
)

// Output is a generated file.
type Output struct {
	// Template is the path of the template the file is generated from.
	Template string
	Path     string
	Content  []byte
}

// Result of a package generation.
type Result struct {
	Fset     *token.FileSet
	Reporter *diag.Reporter

	// Files hold outputs of templates without errors.
	Files []*Output

	// Sets are resolved error sets of the package in registration order.
	Sets []*model.ResolvedSet
}

// Package generates code for templates of the package in the directory.
// Problems of templates are reported as diagnostics, the error is only
// returned when the generation cannot proceed at all.
func Package(dir string, cfg config.Config) (*Result, error) {
	paths, err := Discover(dir, cfg.BuildTag)
	if err != nil {
		return nil, err
	}

	return Files(dir, paths, cfg)
}

// Files generates code for the given templates of the package in the directory.
func Files(dir string, paths []string, cfg config.Config) (*Result, error) {
	res := &Result{
		Fset:     token.NewFileSet(),
		Reporter: &diag.Reporter{},
	}
	if len(paths) == 0 {
		return res, nil
	}

	var templates []*template
	for _, p := range paths {
		file, err := parser.ParseFile(res.Fset, p, nil, parser.ParseComments)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", p, err)
		}

		templates = append(templates, &template{path: p, ast: file})
	}

	c := analyze(res.Reporter, templates, cfg)
	for _, s := range c.graph.Sets() {
		if s.Resolved != nil {
			res.Sets = append(res.Sets, s.Resolved)
		}
	}

	importPath := cfg.ImportPath
	if importPath == "" && hasModules(templates) {
		var err error
		importPath, err = ImportPath(dir)
		if err != nil {
			return nil, err
		}
	}

	var outs []*Output
	for _, t := range templates {
		o, err := render(res.Reporter, res.Fset, t, cfg, importPath)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", t.path, err)
		}
		outs = append(outs, o...)
	}

	failed := res.failedFiles()
	for _, o := range outs {
		if !failed[o.Template] {
			res.Files = append(res.Files, o)
		}
	}

	return res, nil
}

// Check collects and resolves already parsed templates without rendering
// them. Files are given in the order of their paths.
func Check(r *diag.Reporter, files []*ast.File, cfg config.Config) {
	templates := make([]*template, 0, len(files))
	for _, f := range files {
		templates = append(templates, &template{ast: f})
	}

	analyze(r, templates, cfg)
}

func analyze(r *diag.Reporter, templates []*template, cfg config.Config) *collector {
	c := newCollector(r)
	c.collect(templates)
	c.graph.Resolve(r, errgraph.Settings{
		Verify:      cfg.Verify,
		Passthrough: cfg.Passthrough,
	})

	return c
}

// failedFiles returns paths of files with error diagnostics.
func (r *Result) failedFiles() map[string]bool {
	res := map[string]bool{}
	for _, rep := range r.Reporter.Reports() {
		if rep.Severity != diag.SeverityError || !rep.Pos.IsValid() {
			continue
		}

		res[r.Fset.Position(rep.Pos).Filename] = true
	}

	return res
}

func hasModules(templates []*template) bool {
	for _, t := range templates {
		for _, it := range t.items {
			switch v := it.(type) {
			case *smartItem:
				if v.module != nil {
					return true
				}
			case *unionItem:
				if v.module != nil {
					return true
				}
			}
		}
	}

	return false
}

// OutputName returns the name of the generated file of the template.
func OutputName(template, suffix string) string {
	base := strings.TrimSuffix(filepath.Base(template), ".go")
	return base + suffix + ".go"
}

// Header returns the leading comment of generated files.
func Header(template string) string {
	return fmt.Sprintf("// Code generated by smarterr from %s. DO NOT EDIT.", filepath.Base(template))
}

// moduleFile collects declarations hoisted into a module.
type moduleFile struct {
	module  *module
	decls   []emit.Decl
	imports []emit.Import
}

// renderer renders outputs of a single template.
type renderer struct {
	rp         *diag.ReporterPhase
	cfg        config.Config
	importPath string
	file       *attach.File
	emitter    *emit.Emitter
	imports    map[string]string
	runtime    emit.Import

	modules []*moduleFile
}

// importedAs returns the name the file refers to the package with. The
// default name wins when the package is imported several times, otherwise
// the first name in sorted order is taken.
func importedAs(imports map[string]string, path string) string {
	def := attach.ImportName(path)
	if imports[def] == path {
		return def
	}

	names := make([]string, 0, len(imports))
	for name := range imports {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if imports[name] == path {
			return name
		}
	}

	return def
}

func render(r *diag.Reporter, fset *token.FileSet, t *template, cfg config.Config, importPath string) ([]*Output, error) {
	file, err := attach.New(fset, t.ast)
	if err != nil {
		return nil, err
	}

	imports := attach.Imports(t.ast)
	runtime := emit.Import{Path: cfg.RuntimeImport}
	runtimeName := importedAs(imports, cfg.RuntimeImport)
	if runtimeName != attach.ImportName(cfg.RuntimeImport) {
		runtime.Name = runtimeName
	}

	rr := &renderer{
		rp:         r.Phase(diag.PhaseAttach),
		cfg:        cfg,
		importPath: importPath,
		file:       file,
		emitter:    emit.New(runtimeName),
		imports:    imports,
		runtime:    runtime,
	}
	file.Import(runtime)

	for _, it := range t.items {
		switch v := it.(type) {
		case *smartItem:
			err = rr.smart(v)
		case *fledgedItem:
			err = rr.fledged(v)
		case *unionItem:
			err = rr.union(v)
		}
		if err != nil {
			return nil, err
		}
	}

	dir := filepath.Dir(t.path)
	name := OutputName(t.path, cfg.Suffix)
	src, err := file.Source(Header(t.path), cfg.BuildTag)
	if err != nil {
		return nil, err
	}
	res := []*Output{{
		Template: t.path,
		Path:     filepath.Join(dir, name),
		Content:  src,
	}}

	for _, m := range rr.modules {
		src, err := attach.Module(Header(t.path), m.module.name(), m.decls, append(m.imports, runtime))
		if err != nil {
			return nil, fmt.Errorf("module %s: %w", m.module.name(), err)
		}

		res = append(res, &Output{
			Template: t.path,
			Path:     filepath.Join(dir, filepath.FromSlash(m.module.key()), name),
			Content:  src,
		})
	}

	return res, nil
}

// place puts generated declarations either into the template output or
// into the module and returns the qualifier of the place of the code.
func (r *renderer) place(mod *module, decls []emit.Decl, types []*model.Type) emit.Qualifier {
	imports, ok := attach.Qualifiers(r.rp, types, r.imports)
	if mod != nil {
		ok = attach.Hoistable(r.rp, mod.name(), types) && ok
	}
	if !ok {
		return nil
	}

	if mod == nil {
		r.file.Append(decls)
		return emit.Local
	}

	r.file.Import(emit.Import{Path: r.importPath + "/" + mod.key()})
	for _, imp := range imports {
		name := imp.Name
		if name == "" {
			name = attach.ImportName(imp.Path)
		}
		r.file.Drop(name, imp.Path)
	}

	for _, m := range r.modules {
		if m.module.key() == mod.key() {
			m.decls = append(m.decls, decls...)
			m.imports = append(m.imports, imports...)
			return emit.Qualified(mod.name())
		}
	}
	r.modules = append(r.modules, &moduleFile{module: mod, decls: decls, imports: imports})

	return emit.Qualified(mod.name())
}

func (r *renderer) smart(it *smartItem) error {
	set := it.set.Resolved
	if it.set.Failed || set == nil {
		return nil
	}

	q := r.place(it.module, r.emitter.Set(set), localTypes(set))
	if q == nil {
		return nil
	}

	ref := attach.TypeRef{Package: it.module.name(), Name: set.Name}
	if err := r.file.Result(it.decl, ref); err != nil {
		return err
	}

	return r.file.Prelude(it.decl, r.emitter.Preludes(set, q))
}

func (r *renderer) fledged(it *fledgedItem) error {
	set := it.set.Resolved
	if it.set.Failed || set == nil {
		return nil
	}

	r.place(nil, r.emitter.Set(set), localTypes(set))
	return nil
}

func (r *renderer) union(it *unionItem) error {
	var types []*model.Type
	for _, e := range it.union.Elements {
		types = append(types, e.Type)
	}

	if q := r.place(it.module, r.emitter.Union(it.union), types); q == nil {
		return nil
	}

	ref := attach.TypeRef{Package: it.module.name(), Name: it.union.Name}
	return r.file.Replace(it.decl, it.shape.Field, ref)
}

func localTypes(set *model.ResolvedSet) []*model.Type {
	var res []*model.Type
	for _, v := range set.Local() {
		res = append(res, v.Types()...)
	}

	return res
}

// Dump renders resolved sets of the package.
func (r *Result) Dump() string {
	return model.Pretty(r.Sets)
}
