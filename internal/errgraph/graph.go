package errgraph

import (
	"github.com/sirkon/smarterr/internal/config"
	"github.com/sirkon/smarterr/internal/diag"
	"github.com/sirkon/smarterr/internal/model"
	"github.com/sirkon/smarterr/internal/rules"
)

// Set is a node of the graph: an error set of a package.
type Set struct {
	// Name of the union type.
	Name string
	Span model.Span

	Options Options

	// Either Smart or Fledged is set.
	Smart   *model.SmartErrorSpec
	Fledged *model.FledgedSpec

	// Resolved is set after the resolution unless the set is a part of an
	// inheritance cycle.
	Resolved *model.ResolvedSet

	// Failed sets are not to be expanded.
	Failed bool
}

// Settings of the package resolution.
type Settings struct {
	Verify      config.Verify
	Passthrough config.Passthrough
}

// Graph of error sets of a package.
type Graph struct {
	sets  []*Set
	index map[string]*Set
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		index: map[string]*Set{},
	}
}

// Add registers the set. Set names must be unique.
func (g *Graph) Add(rp *diag.ReporterPhase, s *Set) bool {
	if _, ok := g.index[s.Name]; ok {
		rp.Errorf(rules.SER034DuplicateSet, s.Span.Pos, s.Span.End, "error set %s is already declared", s.Name)
		return false
	}

	g.sets = append(g.sets, s)
	g.index[s.Name] = s
	return true
}

// Sets returns registered sets in registration order.
func (g *Graph) Sets() []*Set {
	return g.sets
}

// Lookup finds a set by its name.
func (g *Graph) Lookup(name string) (*Set, bool) {
	s, ok := g.index[name]
	return s, ok
}

// Resolve resolves sets so that sources go before sets inheriting from
// them, then checks them against each other.
func (g *Graph) Resolve(r *diag.Reporter, settings Settings) {
	w := &walker{
		g:        g,
		rp:       r.Phase(diag.PhaseResolve),
		settings: settings,
		state:    map[*Set]visitState{},
	}
	for _, s := range g.sets {
		w.visit(s)
	}

	v := &verifier{
		g:        g,
		rp:       r.Phase(diag.PhaseVerify),
		settings: settings,
	}
	v.run()
}

type visitState int

const (
	stateUnvisited visitState = iota
	stateVisiting
	stateDone
)

type walker struct {
	g        *Graph
	rp       *diag.ReporterPhase
	settings Settings
	state    map[*Set]visitState
}

func (w *walker) visit(s *Set) {
	if w.state[s] != stateUnvisited {
		return
	}
	w.state[s] = stateVisiting

	cyclic := false
	if s.Smart != nil {
		for _, b := range s.Smart.Inherited() {
			dep, ok := w.g.index[b.SourceSet.Value]
			if !ok {
				continue
			}

			if w.state[dep] == stateVisiting {
				w.rp.Errorf(
					rules.SER023InheritanceCycle,
					b.SourceSet.Pos,
					b.SourceSet.End,
					"%s inherits from %s which depends on %s itself",
					s.Name,
					dep.Name,
					s.Name,
				)
				cyclic = true
				continue
			}
			w.visit(dep)
		}
	}
	w.state[s] = stateDone

	if cyclic {
		s.Failed = true
		return
	}
	w.resolve(s)
}

func (w *walker) resolve(s *Set) {
	opts := s.Options
	opts.Implicit = w.settings.Passthrough == config.PassthroughImplicit
	opts.Source = func(name string) *model.ResolvedSet {
		if dep, ok := w.g.index[name]; ok {
			return dep.Resolved
		}
		return nil
	}

	if s.Fledged != nil {
		s.Resolved = ResolveFledged(s.Fledged, opts)
		return
	}

	var ok bool
	s.Resolved, ok = Resolve(w.rp, s.Name, s.Smart, opts)
	if !ok {
		s.Failed = true
	}
}
