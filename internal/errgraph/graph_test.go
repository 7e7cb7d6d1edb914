package errgraph

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sirkon/smarterr/internal/config"
	"github.com/sirkon/smarterr/internal/diag"
	"github.com/sirkon/smarterr/internal/rules"
)

var warnExplicit = Settings{
	Verify:      config.VerifyWarn,
	Passthrough: config.PassthroughExplicit,
}

func addSmart(t *testing.T, g *Graph, r *diag.Reporter, name, spec string, opts Options) *Set {
	t.Helper()

	s := &Set{
		Name:    name,
		Options: opts,
		Smart:   parseSpec(t, spec),
	}
	g.Add(r.Phase(diag.PhaseCollect), s)
	return s
}

func TestGraphGreek(t *testing.T) {
	r := &diag.Reporter{}
	g := New()

	// Consumers go first to check the resolution order.
	numeric := addSmart(t, g, r, "NumericFuncError", numericSpec, Options{})
	latin := addSmart(t, g, r, "LatinFuncError", latinSpec, Options{})
	greek := addSmart(t, g, r, "GreekFuncError", greekSpec, Options{})

	g.Resolve(r, warnExplicit)
	require.Empty(t, r.Reports())

	require.False(t, greek.Failed)
	require.Equal(t, []string{"AlfaError", "BetaError", "BetaWrappedError", "GammaError", "GammaWrappedError"}, variantNames(greek.Resolved))

	require.Equal(t, []string{"XError", "YError", "ZError", "AlfaError", "BetaError", "BetaWrappedError", "GammaError"}, variantNames(latin.Resolved))
	require.Equal(t, []string{"GammaWrappedError"}, latin.Resolved.Blocks[0].Handled)

	require.Equal(t, []string{"FirstError", "SecondError", "ThirdError", "AlfaError", "BetaError", "BetaWrappedError", "ZError"}, variantNames(numeric.Resolved))
	blocks := numeric.Resolved.Blocks
	require.Len(t, blocks, 2)
	require.Equal(t, []string{"AlfaError", "BetaError", "BetaWrappedError"}, blocks[0].PassThrough)
	require.Equal(t, []string{"GammaError", "GammaWrappedError"}, blocks[0].Handled)
	require.Equal(t, []string{"AlfaError", "BetaError", "BetaWrappedError", "ZError"}, blocks[1].PassThrough)
	require.Equal(t, []string{"GammaError", "XError", "YError"}, blocks[1].Handled)

	z, _ := numeric.Resolved.Lookup("ZError")
	require.Equal(t, "LatinFuncError", z.From)
}

func TestGraphImplicit(t *testing.T) {
	r := &diag.Reporter{}
	g := New()

	consumer := addSmart(t, g, r, "ConsumerError", `OwnError, from GreekFuncError { handled GammaError }`, Options{})
	addSmart(t, g, r, "GreekFuncError", greekSpec, Options{})

	g.Resolve(r, Settings{Verify: config.VerifyWarn, Passthrough: config.PassthroughImplicit})
	require.Empty(t, r.Reports())
	require.Equal(t, []string{"OwnError", "AlfaError", "BetaError", "BetaWrappedError", "GammaWrappedError"}, variantNames(consumer.Resolved))
	require.Equal(t, []string{"AlfaError", "BetaError", "BetaWrappedError", "GammaWrappedError"}, consumer.Resolved.Blocks[0].PassThrough)
}

func TestGraphCycle(t *testing.T) {
	r := &diag.Reporter{}
	g := New()

	a := addSmart(t, g, r, "AError", `OwnAError, from BError { OwnBError }`, Options{})
	b := addSmart(t, g, r, "BError", `OwnBError, from AError { OwnAError }`, Options{})

	g.Resolve(r, Settings{Verify: config.VerifyOff, Passthrough: config.PassthroughExplicit})
	require.Equal(t, []rules.Rule{rules.SER023InheritanceCycle}, reportRules(r))
	require.True(t, b.Failed)
	require.Nil(t, b.Resolved)
	require.False(t, a.Failed)
}

func TestGraphVerify(t *testing.T) {
	const consumer = `from GreekFuncError {
		AlfaError,
		BetaError<int>,
		BetaWrappedError,
		DeltaError,
		handled { GammaError, GammaWrappedError, EpsilonError },
	}, from UnknownError { XError }`

	run := func(verify config.Verify) *diag.Reporter {
		r := &diag.Reporter{}
		g := New()
		addSmart(t, g, r, "GreekFuncError", greekSpec, Options{})
		addSmart(t, g, r, "ConsumerError", consumer, Options{})
		g.Resolve(r, Settings{Verify: verify, Passthrough: config.PassthroughExplicit})
		return r
	}

	r := run(config.VerifyWarn)
	require.ElementsMatch(
		t,
		[]rules.Rule{
			rules.SER032SourceKindMismatch, // BetaError<int>
			rules.SER031UnknownVariant,     // DeltaError
			rules.SER031UnknownVariant,     // EpsilonError
			rules.SER030UnknownSourceSet,   // UnknownError
		},
		reportRules(r),
	)
	require.False(t, r.HasErrors())

	r = run(config.VerifyError)
	require.Len(t, r.Reports(), 4)
	require.True(t, r.HasErrors())

	r = run(config.VerifyOff)
	require.Empty(t, r.Reports())
}

func TestGraphUnlistedVariants(t *testing.T) {
	const consumer = `from GreekFuncError {
		AlfaError,
		BetaError,
		handled GammaError,
	}`

	for _, verify := range []config.Verify{config.VerifyOff, config.VerifyWarn, config.VerifyError} {
		t.Run(verify.String(), func(t *testing.T) {
			r := &diag.Reporter{}
			g := New()
			addSmart(t, g, r, "GreekFuncError", greekSpec, Options{})
			c := addSmart(t, g, r, "ConsumerError", consumer, Options{})

			g.Resolve(r, Settings{Verify: verify, Passthrough: config.PassthroughExplicit})
			require.Equal(t, []rules.Rule{rules.SER033UnlistedVariant, rules.SER033UnlistedVariant}, reportRules(r))
			require.True(t, r.HasErrors())
			require.True(t, c.Failed)
		})
	}

	t.Run("implicit", func(t *testing.T) {
		r := &diag.Reporter{}
		g := New()
		addSmart(t, g, r, "GreekFuncError", greekSpec, Options{})
		c := addSmart(t, g, r, "ConsumerError", consumer, Options{})

		g.Resolve(r, Settings{Verify: config.VerifyWarn, Passthrough: config.PassthroughImplicit})
		require.Empty(t, r.Reports())
		require.False(t, c.Failed)
	})
}

func TestGraphAlwaysErrors(t *testing.T) {
	t.Run("duplicate set", func(t *testing.T) {
		r := &diag.Reporter{}
		g := New()
		addSmart(t, g, r, "GreekFuncError", greekSpec, Options{})
		addSmart(t, g, r, "GreekFuncError", `AlfaError`, Options{})
		require.Equal(t, []rules.Rule{rules.SER034DuplicateSet}, reportRules(r))
		require.Len(t, g.Sets(), 1)
	})

	t.Run("duplicate variant", func(t *testing.T) {
		r := &diag.Reporter{}
		g := New()
		addSmart(t, g, r, "GreekFuncError", greekSpec, Options{})
		planets := &Set{Name: "PlanetsError", Fledged: parseSet(t, `PlanetsError { AlfaError, MercuryError }`)}
		g.Add(r.Phase(diag.PhaseCollect), planets)

		g.Resolve(r, Settings{Verify: config.VerifyOff, Passthrough: config.PassthroughExplicit})
		require.Equal(t, []rules.Rule{rules.SER035DuplicateVariant}, reportRules(r))
		require.True(t, planets.Failed)
	})

	t.Run("cross package", func(t *testing.T) {
		r := &diag.Reporter{}
		g := New()
		addSmart(t, g, r, "GreekFuncError", greekSpec, Options{Package: "errs"})
		consumer := addSmart(t, g, r, "ConsumerError", `from GreekFuncError { AlfaError }`, Options{})

		g.Resolve(r, Settings{Verify: config.VerifyOff, Passthrough: config.PassthroughExplicit})
		require.Equal(t, []rules.Rule{rules.SER036CrossPackageInheritance}, reportRules(r))
		require.True(t, consumer.Failed)
	})

	t.Run("variant named as a set", func(t *testing.T) {
		r := &diag.Reporter{}
		g := New()
		addSmart(t, g, r, "GreekFuncError", greekSpec, Options{})
		clash := addSmart(t, g, r, "CError", `GreekFuncError`, Options{})

		g.Resolve(r, Settings{Verify: config.VerifyOff, Passthrough: config.PassthroughExplicit})
		require.Equal(t, []rules.Rule{rules.SER035DuplicateVariant}, reportRules(r))
		require.True(t, clash.Failed)
	})
}
