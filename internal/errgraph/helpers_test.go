package errgraph

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sirkon/smarterr/internal/diag"
	"github.com/sirkon/smarterr/internal/grammar"
	"github.com/sirkon/smarterr/internal/model"
	"github.com/sirkon/smarterr/internal/rules"
)

const (
	greekSpec = `
		AlfaError{ind: int, ext: string} -> "Alfa error",
		BetaError<>{ind: int} -> "Beta error",
		BetaWrappedError<*strconv.NumError> -> "Beta wrapped error",
		GammaError<<>>{ext: string} -> "Gamma error",
		GammaWrappedError<<int>>{ext: string} -> "Gamma wrapped error",
	`
	latinSpec = `
		XError,
		YError,
		pub ZError<<string>>{ind: uint},
		from GreekFuncError {
			AlfaError,
			BetaError<>,
			BetaWrappedError<*strconv.NumError>,
			GammaError<<>>,
			handled GammaWrappedError,
		},
	`
	numericSpec = `
		FirstError{ind: uint8, ext: string},
		SecondError{ind: uint64},
		ThirdError{},
		from GreekFuncError {
			AlfaError,
			BetaError,
			BetaWrappedError,
			handled { GammaError, GammaWrappedError },
		},
		from LatinFuncError {
			AlfaError,
			BetaError,
			BetaWrappedError,
			ZError<<string>>,
			handled { GammaError, XError, YError },
		},
	`
)

func parseSpec(t *testing.T, text string) *model.SmartErrorSpec {
	t.Helper()

	r := &diag.Reporter{}
	p := grammar.New(r.Phase(diag.PhaseParse))
	spec, ok := p.Errors(&grammar.Directive{
		Verb: grammar.VerbErrors,
		Name: grammar.VerbErrors.String(),
		Text: text,
	})
	require.True(t, ok, r.Reports())
	return spec
}

func parseSet(t *testing.T, text string) *model.FledgedSpec {
	t.Helper()

	r := &diag.Reporter{}
	p := grammar.New(r.Phase(diag.PhaseParse))
	spec, ok := p.Set(&grammar.Directive{
		Verb: grammar.VerbSet,
		Name: grammar.VerbSet.String(),
		Text: text,
	})
	require.True(t, ok, r.Reports())
	return spec
}

func variantNames(set *model.ResolvedSet) []string {
	var res []string
	for _, v := range set.Variants {
		res = append(res, v.GoName)
	}

	return res
}

func reportRules(r *diag.Reporter) []rules.Rule {
	var res []rules.Rule
	for _, rep := range r.Reports() {
		res = append(res, rep.Rule)
	}

	return res
}
