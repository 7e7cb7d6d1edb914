package grammar

import (
	"errors"
	"go/token"

	"github.com/alecthomas/participle/v2"

	"github.com/sirkon/smarterr/internal/diag"
	"github.com/sirkon/smarterr/internal/model"
	"github.com/sirkon/smarterr/internal/rules"
)

// Parser turns directive payloads into model declarations. Problems found
// are reported and the declaration is then returned with ok = false.
type Parser struct {
	rp *diag.ReporterPhase
}

// New creates a parser reporting problems into rp.
func New(rp *diag.ReporterPhase) *Parser {
	return &Parser{rp: rp}
}

// Errors parses the payload of smarterr:errors.
func (p *Parser) Errors(d *Directive) (*model.SmartErrorSpec, bool) {
	node, ok := parse(p, errorsParser, d, true)
	if !ok {
		return nil, false
	}

	c := p.converter(d)
	res := &model.SmartErrorSpec{
		Span: model.Span{Pos: d.Pos, End: d.End},
	}
	for _, def := range node.Defs {
		switch {
		case def.From != nil:
			res.Defs = append(res.Defs, c.inherited(def.From))
		case def.Own != nil:
			res.Defs = append(res.Defs, c.own(def.Own))
		}
	}

	return res, !c.failed
}

// Set parses the payload of smarterr:set.
func (p *Parser) Set(d *Directive) (*model.FledgedSpec, bool) {
	node, ok := parse(p, fledgedParser, d, false)
	if !ok {
		return nil, false
	}

	c := p.converter(d)
	res := &model.FledgedSpec{
		Span:       c.span(node.Pos, node.EndPos),
		Name:       c.name(node.Name),
		Visibility: visibility(node.Vis),
	}
	for _, v := range node.Variants {
		res.Variants = append(res.Variants, c.own(v))
	}

	return res, !c.failed
}

// Module parses the payload of smarterr:mod.
func (p *Parser) Module(d *Directive) (*model.ModuleSpec, bool) {
	node, ok := parse(p, moduleParser, d, false)
	if !ok {
		return nil, false
	}

	c := p.converter(d)
	return &model.ModuleSpec{
		Span:       c.span(node.Pos, node.EndPos),
		Name:       c.name(node.Name),
		Visibility: visibility(node.Vis),
	}, true
}

// ErrorsetArgs parses the payload of errorset. The visibility belongs to
// the module when one is given and to the union name otherwise.
func (p *Parser) ErrorsetArgs(d *Directive) (*model.ErrorsetArgs, bool) {
	node, ok := parse(p, errorsetParser, d, true)
	if !ok {
		return nil, false
	}

	c := p.converter(d)
	res := &model.ErrorsetArgs{
		Span: model.Span{Pos: d.Pos, End: d.End},
	}
	if node.Module == nil {
		res.Visibility = visibility(node.Vis)
		return res, true
	}

	res.Module = &model.ModuleSpec{
		Span:       c.span(node.Pos, node.EndPos),
		Name:       c.name(node.Module),
		Visibility: visibility(node.Vis),
	}
	return res, true
}

// parse runs the parser over the payload. Blank payloads are only valid
// when allowBlank is set, the grammar never matches an empty input.
func parse[G any](p *Parser, parser *participle.Parser[G], d *Directive, allowBlank bool) (*G, bool) {
	if d.Blank() {
		if allowBlank {
			return new(G), true
		}

		p.rp.Errorf(rules.SER001Syntax, d.Pos, d.End, "empty %s directive", d.Name)
		return nil, false
	}

	res, err := parser.ParseString("", d.Text)
	if err != nil {
		p.syntaxError(d, err)
		return nil, false
	}

	return res, true
}

func (p *Parser) syntaxError(d *Directive, err error) {
	var perr participle.Error
	if !errors.As(err, &perr) {
		p.rp.Errorf(rules.SER001Syntax, d.Pos, d.End, "invalid %s directive: %s", d.Name, err)
		return
	}

	start := d.At(perr.Position().Offset)
	end := start + 1
	var uerr *participle.UnexpectedTokenError
	if errors.As(err, &uerr) && uerr.Unexpected.Value != "" {
		end = start + token.Pos(len(uerr.Unexpected.Value))
	}

	p.rp.Errorf(rules.SER001Syntax, start, end, "invalid %s directive: %s", d.Name, perr.Message())
}
