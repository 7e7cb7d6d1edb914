package generate

import (
	"go/ast"
	"go/token"

	"github.com/sirkon/smarterr/internal/diag"
	"github.com/sirkon/smarterr/internal/errgraph"
	"github.com/sirkon/smarterr/internal/grammar"
	"github.com/sirkon/smarterr/internal/model"
	"github.com/sirkon/smarterr/internal/rules"
)

// template is a parsed template file with items found in it.
type template struct {
	path string
	ast  *ast.File

	items []item
}

// item is an expandable declaration of a template.
type item interface {
	isItem()
}

// smartItem is a function marked with smarterr:errors.
type smartItem struct {
	decl   *ast.FuncDecl
	set    *errgraph.Set
	module *module
}

// fledgedItem is a standalone set.
type fledgedItem struct {
	set *errgraph.Set
}

// unionItem is a function marked with errorset.
type unionItem struct {
	decl   *ast.FuncDecl
	shape  *grammar.ErrorsetShape
	union  *model.ErrorsetUnion
	module *module
}

func (*smartItem) isItem()   {}
func (*fledgedItem) isItem() {}
func (*unionItem) isItem()   {}

// module is a sub-package for generated declarations.
type module struct {
	spec *model.ModuleSpec

	// errorset modules hold unions, smarterr ones hold sets.
	errorset bool
}

// key is the output package key of the module, the same as the one used
// by the set graph.
func (m *module) key() string {
	if m == nil {
		return ""
	}

	return m.spec.Path()
}

// name is the package name the module is referenced with.
func (m *module) name() string {
	if m == nil {
		return ""
	}

	return m.spec.Name.Value
}

// collector gathers items of templates of a package.
type collector struct {
	r      *diag.Reporter
	rp     *diag.ReporterPhase
	parser *grammar.Parser
	graph  *errgraph.Graph

	// modules of types by the type name.
	modules map[string]*module

	// unions by the output package key and the name.
	unions map[string]map[string]*unionItem
}

func newCollector(r *diag.Reporter) *collector {
	return &collector{
		r:       r,
		rp:      r.Phase(diag.PhaseCollect),
		parser:  grammar.New(r.Phase(diag.PhaseParse)),
		graph:   errgraph.New(),
		modules: map[string]*module{},
		unions:  map[string]map[string]*unionItem{},
	}
}

// marked is a directive with the declaration it is attached to.
type marked struct {
	d    *grammar.Directive
	node ast.Node
}

// collect runs over directives of templates: modules go first as methods
// refer to them.
func (c *collector) collect(templates []*template) {
	perFile := make([][]marked, len(templates))
	for i, t := range templates {
		perFile[i] = c.directives(t.ast)
		for _, m := range perFile[i] {
			if spec, ok := m.node.(*ast.TypeSpec); ok {
				c.module(m.d, spec)
			}
		}
	}

	for i, t := range templates {
		for _, m := range perFile[i] {
			switch m.d.Verb {
			case grammar.VerbSet:
				c.fledged(t, m.d)
			case grammar.VerbErrors:
				c.errors(t, m.d, m.node.(*ast.FuncDecl))
			case grammar.VerbErrorset:
				if decl, ok := m.node.(*ast.FuncDecl); ok {
					c.errorset(t, m.d, decl)
				}
			}
		}
	}
}

// directives finds directives of the file, reports misplaced ones and
// checks what they are attached to.
func (c *collector) directives(file *ast.File) []marked {
	attached := map[*ast.CommentGroup]ast.Node{}
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if d.Doc != nil {
				attached[d.Doc] = d
			}
		case *ast.GenDecl:
			if d.Tok == token.TYPE && len(d.Specs) == 1 && d.Doc != nil {
				attached[d.Doc] = d.Specs[0]
				continue
			}
			if d.Doc != nil {
				attached[d.Doc] = d
			}
			for _, spec := range d.Specs {
				if ts, ok := spec.(*ast.TypeSpec); ok && ts.Doc != nil {
					attached[ts.Doc] = ts
				}
			}
		}
	}

	scopes := diag.FileScopes(file)
	seen := map[ast.Node]*grammar.Directive{}
	var res []marked
	for _, d := range grammar.FileDirectives(file) {
		node := attached[d.Group]
		if node == nil && scopes.GetByPos(d.Pos) != nil {
			c.rp.Errorf(rules.SER005MisplacedDirective, d.Pos, d.End, "%s directive inside a declaration is not processed", d.Name)
			continue
		}

		switch d.Verb {
		case grammar.VerbUnknown:
			c.rp.Errorf(rules.SER003UnknownDirective, d.Pos, d.End, "unknown directive %s", d.Name)
			continue
		case grammar.VerbSet:
			res = append(res, marked{d: d})
			continue
		}

		if node == nil {
			c.rp.Errorf(rules.SER004DetachedDirective, d.Pos, d.End, "%s directive must be a part of a declaration doc comment", d.Name)
			continue
		}

		if prev, ok := seen[node]; ok {
			c.rp.Errorf(rules.SER010WrongItemKind, d.Pos, d.End, "the declaration is already marked with %s", prev.Name)
			continue
		}
		seen[node] = d

		if !c.kindFits(d, node) {
			continue
		}
		res = append(res, marked{d: d, node: node})
	}

	return res
}

func (c *collector) kindFits(d *grammar.Directive, node ast.Node) bool {
	switch node.(type) {
	case *ast.FuncDecl:
		if d.Verb == grammar.VerbErrors || d.Verb == grammar.VerbErrorset {
			return true
		}
		c.rp.Errorf(rules.SER010WrongItemKind, d.Pos, d.End, "%s directive cannot be applied to a function", d.Name)
	case *ast.TypeSpec:
		if d.Verb == grammar.VerbMod || d.Verb == grammar.VerbErrorset {
			return true
		}
		c.rp.Errorf(rules.SER010WrongItemKind, d.Pos, d.End, "%s directive cannot be applied to a type", d.Name)
	default:
		c.rp.Errorf(rules.SER010WrongItemKind, d.Pos, d.End, "%s directive can only be applied to functions and types", d.Name)
	}

	return false
}

// module registers a module of the type methods.
func (c *collector) module(d *grammar.Directive, spec *ast.TypeSpec) {
	res := &module{}
	switch d.Verb {
	case grammar.VerbMod:
		m, ok := c.parser.Module(d)
		if !ok {
			return
		}
		res.spec = m

	case grammar.VerbErrorset:
		args, ok := c.parser.ErrorsetArgs(d)
		if !ok {
			return
		}
		if args.Module == nil {
			c.rp.Errorf(rules.SER010WrongItemKind, d.Pos, d.End, "errorset on type %s needs a module: errorset mod <name>", spec.Name.Name)
			return
		}
		res.spec = args.Module
		res.errorset = true
	}

	if _, ok := c.modules[spec.Name.Name]; ok {
		c.rp.Errorf(rules.SER010WrongItemKind, d.Pos, d.End, "type %s already has a module", spec.Name.Name)
		return
	}
	c.modules[spec.Name.Name] = res
}

func (c *collector) fledged(t *template, d *grammar.Directive) {
	spec, ok := c.parser.Set(d)
	if !ok {
		return
	}

	set := &errgraph.Set{
		Name:    spec.Visibility.Or(model.VisibilityAsIs).Apply(spec.Name.Value),
		Span:    spec.Name.Span,
		Fledged: spec,
	}
	if c.graph.Add(c.r.Phase(diag.PhaseResolve), set) {
		t.items = append(t.items, &fledgedItem{set: set})
	}
}

func (c *collector) errors(t *template, d *grammar.Directive, decl *ast.FuncDecl) {
	mod, ok := c.methodModule(d, decl, false)
	if !ok {
		return
	}

	spec, ok := c.parser.Errors(d)
	if !ok {
		return
	}

	name, fallback := unionName(decl, mod, "Error", model.VisibilityAsIs)
	set := &errgraph.Set{
		Name: name,
		Span: model.Span{Pos: d.Pos, End: d.End},
		Options: errgraph.Options{
			Package:  mod.key(),
			Fallback: fallback,
		},
		Smart: spec,
	}
	if c.graph.Add(c.r.Phase(diag.PhaseResolve), set) {
		t.items = append(t.items, &smartItem{decl: decl, set: set, module: mod})
	}
}

func (c *collector) errorset(t *template, d *grammar.Directive, decl *ast.FuncDecl) {
	mod, ok := c.methodModule(d, decl, true)
	if !ok {
		return
	}

	args, ok := c.parser.ErrorsetArgs(d)
	if !ok {
		return
	}
	if mod != nil && (args.Module != nil || args.Visibility != model.VisibilityAsIs) {
		c.rp.Errorf(
			rules.SER014MethodMarkingArguments,
			d.Pos,
			d.End,
			"methods of %s are placed into module %s, their errorset markings must not have arguments",
			recvTypeName(decl),
			mod.name(),
		)
		return
	}
	if args.Module != nil {
		mod = &module{spec: args.Module, errorset: true}
	}

	shape, ok := c.parser.ErrorsetShape(decl)
	if !ok || !shape.Changed() {
		return
	}

	name, _ := unionName(decl, mod, "Errors", args.Visibility)
	item := &unionItem{
		decl:   decl,
		shape:  shape,
		module: mod,
		union: &model.ErrorsetUnion{
			Name:     name,
			Package:  mod.key(),
			Elements: shape.Elements,
		},
	}

	names := c.unions[mod.key()]
	if names == nil {
		names = map[string]*unionItem{}
		c.unions[mod.key()] = names
	}
	if _, dup := names[name]; dup {
		c.r.Phase(diag.PhaseResolve).Errorf(rules.SER034DuplicateSet, d.Pos, d.End, "error union %s is already declared", name)
		return
	}
	if s, dup := c.graph.Lookup(name); dup && s.Options.Package == mod.key() {
		c.r.Phase(diag.PhaseResolve).Errorf(rules.SER034DuplicateSet, d.Pos, d.End, "error union %s clashes with the error set of the same name", name)
		return
	}
	names[name] = item

	t.items = append(t.items, item)
}

// methodModule finds the module of the method receiver type. Modules of the
// other facility are diagnostics.
func (c *collector) methodModule(d *grammar.Directive, decl *ast.FuncDecl, errorset bool) (*module, bool) {
	if decl.Recv == nil {
		return nil, true
	}

	recv := recvTypeName(decl)
	mod, ok := c.modules[recv]
	if !ok {
		return nil, true
	}

	if mod.errorset != errorset {
		c.rp.Errorf(
			rules.SER010WrongItemKind,
			d.Pos,
			d.End,
			"%s directive cannot be used on methods of %s which has a module of another kind",
			d.Name,
			recv,
		)
		return nil, false
	}

	return mod, true
}

// unionName builds the name of the generated union of the function. Names
// placed into modules are always exported, other ones follow the function
// unless the visibility is given explicitly.
func unionName(decl *ast.FuncDecl, mod *module, suffix string, vis model.Visibility) (string, model.Visibility) {
	fallback := model.VisibilityUnexported
	if ast.IsExported(decl.Name.Name) {
		fallback = model.VisibilityExported
	}
	if mod != nil {
		fallback = model.VisibilityExported
		vis = model.VisibilityExported
	}

	return vis.Or(fallback).Apply(model.Export(decl.Name.Name) + suffix), fallback
}

// recvTypeName returns the name of the receiver type of the method.
func recvTypeName(decl *ast.FuncDecl) string {
	if decl.Recv == nil || len(decl.Recv.List) == 0 {
		return ""
	}

	expr := decl.Recv.List[0].Type
	for {
		switch e := expr.(type) {
		case *ast.StarExpr:
			expr = e.X
		case *ast.ParenExpr:
			expr = e.X
		case *ast.IndexExpr:
			expr = e.X
		case *ast.IndexListExpr:
			expr = e.X
		case *ast.Ident:
			return e.Name
		default:
			return ""
		}
	}
}
