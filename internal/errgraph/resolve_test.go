package errgraph

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sirkon/smarterr/internal/diag"
	"github.com/sirkon/smarterr/internal/model"
	"github.com/sirkon/smarterr/internal/rules"
)

func TestResolveOwn(t *testing.T) {
	r := &diag.Reporter{}
	set, ok := Resolve(r.Phase(diag.PhaseResolve), "GreekFuncError", parseSpec(t, greekSpec+`
		AlfaError{other: string} -> "repeated",
	`), Options{})
	require.True(t, ok)
	require.Empty(t, r.Reports())

	require.Equal(t, "GreekFuncError", set.Name)
	require.Equal(t, []string{"AlfaError", "BetaError", "BetaWrappedError", "GammaError", "GammaWrappedError"}, variantNames(set))
	alfa, ok := set.Lookup("AlfaError")
	require.True(t, ok)
	require.Equal(t, "Alfa error", alfa.Message)
	require.True(t, alfa.Local())
	require.Empty(t, set.Blocks)
}

func TestResolveHandledNotEmitted(t *testing.T) {
	r := &diag.Reporter{}
	set, ok := Resolve(r.Phase(diag.PhaseResolve), "ConsumerError", parseSpec(t, `
		OwnError,
		from GreekFuncError {
			AlfaError,
			BetaError,
			BetaWrappedError,
			handled GammaError,
			handled GammaWrappedError,
		}
	`), Options{})
	require.True(t, ok, r.Reports())

	require.Equal(t, []string{"OwnError", "AlfaError", "BetaError", "BetaWrappedError"}, variantNames(set))
	require.Len(t, set.Local(), 1)
	require.Len(t, set.Inherited(), 3)
	require.Equal(t, "GreekFuncError", set.Inherited()[0].From)

	require.Len(t, set.Blocks, 1)
	block := set.Blocks[0]
	require.Equal(t, []string{"AlfaError", "BetaError", "BetaWrappedError"}, block.PassThrough)
	require.Equal(t, []string{"GammaError", "GammaWrappedError"}, block.Handled)
	require.Equal(t, "handleGreekFuncError", block.PreludeName())
}

func TestResolvePassThroughOnly(t *testing.T) {
	r := &diag.Reporter{}
	set, ok := Resolve(r.Phase(diag.PhaseResolve), "ConsumerError", parseSpec(t, `
		from GreekFuncError { AlfaError, BetaError },
		from LatinFuncError { BetaError, XError },
	`), Options{})
	require.True(t, ok, r.Reports())

	require.Equal(t, []string{"AlfaError", "BetaError", "XError"}, variantNames(set))
	beta, _ := set.Lookup("BetaError")
	require.Equal(t, "GreekFuncError", beta.From)

	require.Equal(t, []string{"BetaError", "XError"}, set.Blocks[1].PassThrough)
	require.False(t, set.Blocks[1].HasHandled())
	require.Equal(t, "fromLatinFuncError", set.Blocks[1].PreludeName())
}

func TestResolveModuleFallback(t *testing.T) {
	r := &diag.Reporter{}
	set, ok := Resolve(r.Phase(diag.PhaseResolve), "NewError", parseSpec(t, `
		initFailed{a: int},
		priv hidden,
		from PlanetsError { mercuryError, handled venusError },
	`), Options{Fallback: model.VisibilityExported, Package: "errs"})
	require.True(t, ok, r.Reports())

	require.Equal(t, []string{"InitFailed", "hidden", "MercuryError"}, variantNames(set))
	require.Equal(t, "errs", set.Package)
	require.Equal(t, []string{"VenusError"}, set.Blocks[0].Handled)
}

func TestResolveFailures(t *testing.T) {
	tests := []struct {
		name string
		spec string
		rule rules.Rule
	}{
		{
			name: "local conflict",
			spec: `AlfaError, from GreekFuncError { AlfaError }`,
			rule: rules.SER020LocalConflict,
		},
		{
			name: "handled then passed through",
			spec: `from GreekFuncError { handled GammaError }, from LatinFuncError { GammaError }`,
			rule: rules.SER021HandledPassThrough,
		},
		{
			name: "handled and passed through in a block",
			spec: `from GreekFuncError { handled GammaError, GammaError }`,
			rule: rules.SER021HandledPassThrough,
		},
		{
			name: "passed through then handled in a block",
			spec: `from GreekFuncError { GammaError, handled GammaError }`,
			rule: rules.SER021HandledPassThrough,
		},
		{
			name: "duplicate block",
			spec: `from GreekFuncError { AlfaError }, from GreekFuncError { BetaError }`,
			rule: rules.SER022DuplicateBlock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &diag.Reporter{}
			_, ok := Resolve(r.Phase(diag.PhaseResolve), "ConsumerError", parseSpec(t, tt.spec), Options{})
			require.False(t, ok)
			require.Equal(t, []rules.Rule{tt.rule}, reportRules(r))
		})
	}
}

func TestResolveFledged(t *testing.T) {
	set := ResolveFledged(parseSet(t, `priv PlanetsError {
		MercuryError{distance: float64},
		VenusError<>,
		MercuryError,
	}`), Options{})

	require.Equal(t, "planetsError", set.Name)
	require.Equal(t, []string{"MercuryError", "VenusError"}, variantNames(set))
}
