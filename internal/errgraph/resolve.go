package errgraph

import (
	"github.com/sirkon/smarterr/internal/diag"
	"github.com/sirkon/smarterr/internal/model"
	"github.com/sirkon/smarterr/internal/rules"
)

// Options of a set resolution.
type Options struct {
	// Package is the key of the output package of the set.
	Package string

	// Fallback is the visibility of names declared without one.
	Fallback model.Visibility

	// Source looks up already resolved sets by name. It may be nil.
	Source func(name string) *model.ResolvedSet

	// Implicit passes source variants neither listed nor handled through.
	Implicit bool
}

// Resolve builds the set of a function error specification.
func Resolve(rp *diag.ReporterPhase, name string, spec *model.SmartErrorSpec, opts Options) (*model.ResolvedSet, bool) {
	r := &resolver{
		rp:       rp,
		opts:     opts,
		emitted:  map[string]*model.ResolvedVariant{},
		handled:  map[string]struct{}{},
		sources:  map[string]struct{}{},
		resolved: &model.ResolvedSet{Name: name, Package: opts.Package, Fallback: opts.Fallback},
	}

	for _, v := range spec.Own() {
		r.own(v)
	}
	for _, b := range spec.Inherited() {
		r.block(b)
	}

	return r.resolved, !r.failed
}

// ResolveFledged builds a standalone set. Fledged sets only have own variants.
func ResolveFledged(spec *model.FledgedSpec, opts Options) *model.ResolvedSet {
	name := spec.Visibility.Or(opts.Fallback).Apply(spec.Name.Value)
	r := &resolver{
		opts:     opts,
		emitted:  map[string]*model.ResolvedVariant{},
		resolved: &model.ResolvedSet{Name: name, Package: opts.Package, Fallback: opts.Fallback},
	}

	for _, v := range spec.Variants {
		r.own(v)
	}

	return r.resolved
}

type resolver struct {
	rp       *diag.ReporterPhase
	opts     Options
	resolved *model.ResolvedSet
	failed   bool

	// emitted variants by their wrapper names
	emitted map[string]*model.ResolvedVariant

	// handled names of all blocks processed so far
	handled map[string]struct{}

	// sources of blocks processed so far
	sources map[string]struct{}
}

func (r *resolver) own(v *model.Variant) {
	name := v.GoName(r.opts.Fallback)
	if _, ok := r.emitted[name]; ok {
		return
	}

	rv := &model.ResolvedVariant{
		Variant: v,
		GoName:  name,
	}
	r.emitted[name] = rv
	r.resolved.Variants = append(r.resolved.Variants, rv)
}

func (r *resolver) block(b *model.Inherited) {
	source := b.SourceSet.Value
	if _, ok := r.sources[source]; ok {
		r.errorf(
			rules.SER022DuplicateBlock,
			b.SourceSet.Span,
			"variants of %s are already inherited by another block",
			source,
		)
		return
	}
	r.sources[source] = struct{}{}

	res := &model.ResolvedBlock{
		Span:      b.Span,
		SourceSet: source,
	}
	pass := map[string]struct{}{}
	handled := map[string]struct{}{}

	for _, item := range b.Items {
		switch item := item.(type) {
		case model.Unhandled:
			name := item.GoName(r.opts.Fallback)
			if _, ok := pass[name]; ok {
				continue
			}
			if !r.passThrough(item.Variant, name, source, handled) {
				continue
			}
			pass[name] = struct{}{}
			res.PassThrough = append(res.PassThrough, name)

		case *model.Handled:
			for _, n := range item.Names {
				name := model.VisibilityAsIs.Or(r.opts.Fallback).Apply(n.Value)
				if _, ok := pass[name]; ok {
					r.errorf(
						rules.SER021HandledPassThrough,
						n.Span,
						"%s is passed through from %s, it cannot be handled as well",
						name,
						source,
					)
					continue
				}
				if _, ok := handled[name]; ok {
					continue
				}
				handled[name] = struct{}{}
				r.handled[name] = struct{}{}
				res.Handled = append(res.Handled, name)
			}
		}
	}

	if r.opts.Implicit && r.opts.Source != nil {
		r.implicit(res, pass, handled)
	}

	r.resolved.Blocks = append(r.resolved.Blocks, res)
}

// passThrough checks if the variant can pass through and emits it once.
func (r *resolver) passThrough(v *model.Variant, name, source string, handled map[string]struct{}) bool {
	if _, ok := handled[name]; ok {
		r.errorf(
			rules.SER021HandledPassThrough,
			v.Name.Span,
			"%s is handled in the block of %s, it cannot be passed through as well",
			name,
			source,
		)
		return false
	}
	if _, ok := r.handled[name]; ok {
		r.errorf(
			rules.SER021HandledPassThrough,
			v.Name.Span,
			"%s is handled by an earlier block, it cannot be passed through from %s",
			name,
			source,
		)
		return false
	}

	prev, ok := r.emitted[name]
	if !ok {
		rv := &model.ResolvedVariant{
			Variant: v,
			GoName:  name,
			From:    source,
		}
		r.emitted[name] = rv
		r.resolved.Variants = append(r.resolved.Variants, rv)
		return true
	}

	if prev.Local() {
		r.errorf(
			rules.SER020LocalConflict,
			v.Name.Span,
			"%s is declared by %s itself, it cannot be passed through from %s",
			name,
			r.resolved.Name,
			source,
		)
		return false
	}

	return true
}

// implicit appends source variants the block does not mention.
func (r *resolver) implicit(res *model.ResolvedBlock, pass, handled map[string]struct{}) {
	src := r.opts.Source(res.SourceSet)
	if src == nil {
		return
	}

	for _, sv := range src.Variants {
		if _, ok := pass[sv.GoName]; ok {
			continue
		}
		if _, ok := handled[sv.GoName]; ok {
			continue
		}
		if _, ok := r.handled[sv.GoName]; ok {
			continue
		}
		if prev, ok := r.emitted[sv.GoName]; ok && prev.Local() {
			continue
		}

		if _, ok := r.emitted[sv.GoName]; !ok {
			rv := &model.ResolvedVariant{
				Variant: sv.Variant,
				GoName:  sv.GoName,
				From:    res.SourceSet,
			}
			r.emitted[sv.GoName] = rv
			r.resolved.Variants = append(r.resolved.Variants, rv)
		}
		pass[sv.GoName] = struct{}{}
		res.PassThrough = append(res.PassThrough, sv.GoName)
	}
}

func (r *resolver) errorf(rule rules.Rule, span model.Span, format string, a ...any) {
	r.failed = true
	r.rp.Errorf(rule, span.Pos, span.End, format, a...)
}
