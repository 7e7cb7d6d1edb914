package emit

import (
	"github.com/sirkon/smarterr/internal/model"
)

// Prelude emits the closure an inherited block contributes to the body of
// the function:
//
//	handleGreekFuncError := func(err GreekFuncError, onGammaError func(*GammaError) NumericFuncError) NumericFuncError
//
// for blocks with handled variants, where every handled variant requires a
// handler, and
//
//	fromGreekFuncError := func(err GreekFuncError) NumericFuncError
//
// for pass-through only blocks.
func (e *Emitter) Prelude(set *model.ResolvedSet, block *model.ResolvedBlock, q Qualifier) []Stmt {
	target := q(set.Name)
	source := q(block.SourceSet)

	params := []Field{{Name: "err", Type: source}}
	cases := []Case{
		{Types: []string{"nil"}, Body: []Stmt{&Return{Values: []string{"nil"}}}},
	}
	for _, name := range block.PassThrough {
		cases = append(cases, Case{
			Types: []string{"*" + q(name)},
			Body:  []Stmt{&Return{Values: []string{"err"}}},
		})
	}
	for _, name := range block.Handled {
		handler := "on" + model.Export(name)
		params = append(params, Field{
			Name: handler,
			Type: "func(*" + q(name) + ") " + target,
		})
		cases = append(cases, Case{
			Types: []string{"*" + q(name)},
			Body:  []Stmt{&Return{Values: []string{handler + "(err)"}}},
		})
	}
	cases = append(cases, Case{
		Body: []Stmt{
			&Panic{Value: e.rt("UnexpectedVariant") + "(" + quote(block.SourceSet) + ", err)"},
		},
	})

	name := block.PreludeName()
	return []Stmt{
		&Define{
			Name: name,
			Value: &FuncLit{
				Params:  params,
				Results: []string{target},
				Body: []Stmt{
					&TypeSwitch{Bind: "err", X: "err", Cases: cases},
				},
			},
		},
		&Discard{Name: name},
	}
}

// Preludes emits closures of all blocks of the set in declaration order.
func (e *Emitter) Preludes(set *model.ResolvedSet, q Qualifier) []Stmt {
	var res []Stmt
	for _, b := range set.Blocks {
		res = append(res, e.Prelude(set, b, q)...)
	}

	return res
}
