package errgraph

import (
	"github.com/sirkon/smarterr/internal/config"
	"github.com/sirkon/smarterr/internal/diag"
	"github.com/sirkon/smarterr/internal/model"
	"github.com/sirkon/smarterr/internal/rules"
)

// verifier checks resolved sets against each other. Checks breaking the
// generated code are always errors, the rest follow the verify setting.
// Source variants left out of an explicit block are errors: the dispatch
// closure would have no case for them.
type verifier struct {
	g        *Graph
	rp       *diag.ReporterPhase
	settings Settings
}

func (v *verifier) run() {
	v.duplicateVariants()

	for _, s := range v.g.sets {
		if s.Smart == nil || s.Resolved == nil {
			continue
		}

		for _, b := range s.Smart.Inherited() {
			v.block(s, b)
		}
	}
}

// duplicateVariants checks wrapper types are declared once per package.
func (v *verifier) duplicateVariants() {
	type key struct {
		pkg  string
		name string
	}
	owners := map[key]*Set{}

	for _, s := range v.g.sets {
		if s.Resolved == nil {
			continue
		}

		for _, rv := range s.Resolved.Local() {
			if other, ok := v.g.index[rv.GoName]; ok && other.Options.Package == s.Resolved.Package {
				s.Failed = true
				v.rp.Errorf(
					rules.SER035DuplicateVariant,
					rv.Name.Pos,
					rv.Name.End,
					"%s clashes with the error set of the same name",
					rv.GoName,
				)
				continue
			}

			k := key{pkg: s.Resolved.Package, name: rv.GoName}
			owner, ok := owners[k]
			if !ok {
				owners[k] = s
				continue
			}

			s.Failed = true
			v.rp.Errorf(
				rules.SER035DuplicateVariant,
				rv.Name.Pos,
				rv.Name.End,
				"%s is already declared by %s, inherit it with from %s instead",
				rv.GoName,
				owner.Name,
				owner.Name,
			)
		}
	}
}

func (v *verifier) block(s *Set, b *model.Inherited) {
	src, ok := v.g.index[b.SourceSet.Value]
	if !ok {
		v.report(
			rules.SER030UnknownSourceSet,
			b.SourceSet.Span,
			"error set %s is not declared in the package",
			b.SourceSet.Value,
		)
		return
	}
	if src.Resolved == nil {
		return
	}

	if src.Resolved.Package != s.Resolved.Package {
		s.Failed = true
		v.rp.Errorf(
			rules.SER036CrossPackageInheritance,
			b.SourceSet.Pos,
			b.SourceSet.End,
			"%s is generated into another package than %s, its variants cannot pass through",
			src.Name,
			s.Name,
		)
		return
	}

	fallback := s.Resolved.Fallback
	for _, item := range b.Items {
		switch item := item.(type) {
		case model.Unhandled:
			name := item.GoName(fallback)
			sv, ok := src.Resolved.Lookup(name)
			if !ok {
				v.report(rules.SER031UnknownVariant, item.Name.Span, "%s has no variant %s", src.Name, name)
				continue
			}
			if item.Source == model.SourceNone {
				continue
			}
			if item.Source != sv.Source || item.SourceType.String() != sv.SourceType.String() {
				v.report(
					rules.SER032SourceKindMismatch,
					item.Name.Span,
					"%s is declared as %s%s by %s, not as %s%s",
					name,
					name,
					sv.Source.Syntax(sv.SourceType),
					src.Name,
					name,
					item.Source.Syntax(item.SourceType),
				)
			}

		case *model.Handled:
			for _, n := range item.Names {
				name := model.VisibilityAsIs.Or(fallback).Apply(n.Value)
				if _, ok := src.Resolved.Lookup(name); !ok {
					v.report(rules.SER031UnknownVariant, n.Span, "%s has no variant %s", src.Name, name)
				}
			}
		}
	}

	if v.settings.Passthrough != config.PassthroughExplicit {
		return
	}

	listed := map[string]struct{}{}
	for _, rb := range s.Resolved.Blocks {
		if rb.SourceSet != src.Name {
			continue
		}
		for _, name := range rb.PassThrough {
			listed[name] = struct{}{}
		}
		for _, name := range rb.Handled {
			listed[name] = struct{}{}
		}
	}
	for _, sv := range src.Resolved.Variants {
		if _, ok := listed[sv.GoName]; ok {
			continue
		}

		s.Failed = true
		v.rp.Errorf(
			rules.SER033UnlistedVariant,
			b.SourceSet.Pos,
			b.SourceSet.End,
			"%s of %s is neither passed through nor handled",
			sv.GoName,
			src.Name,
		)
	}
}

// report records a failed check with the configured severity.
func (v *verifier) report(rule rules.Rule, span model.Span, format string, a ...any) {
	switch v.settings.Verify {
	case config.VerifyWarn:
		v.rp.Warnf(rule, span.Pos, span.End, format, a...)
	case config.VerifyError:
		v.rp.Errorf(rule, span.Pos, span.End, format, a...)
	}
}
