package attach

import (
	"sort"

	"github.com/sirkon/smarterr/internal/diag"
	"github.com/sirkon/smarterr/internal/emit"
	"github.com/sirkon/smarterr/internal/model"
	"github.com/sirkon/smarterr/internal/rules"
)

// Module renders a file of a module package.
func Module(header, pkg string, decls []emit.Decl, imports []emit.Import) ([]byte, error) {
	src, err := emit.Source(header, pkg, nil, decls)
	if err != nil {
		return nil, err
	}

	return fixImports(src, imports, nil)
}

// Qualifiers checks that package qualifiers of the types are imported by
// the template and returns imports they need, ordered by path.
func Qualifiers(rp *diag.ReporterPhase, types []*model.Type, imports map[string]string) ([]emit.Import, bool) {
	ok := true
	seen := map[string]struct{}{}
	var res []emit.Import
	for _, t := range types {
		for _, q := range t.Qualifiers {
			p, known := imports[q]
			if !known {
				rp.Errorf(rules.SER016UnknownQualifier, t.Pos, t.End, "package %s used by %s is not imported", q, t.Text)
				ok = false
				continue
			}

			if _, dup := seen[q]; dup {
				continue
			}
			seen[q] = struct{}{}

			imp := emit.Import{Path: p}
			if ImportName(p) != q {
				imp.Name = q
			}
			res = append(res, imp)
		}
	}

	sort.Slice(res, func(i, j int) bool {
		return res[i].Path < res[j].Path
	})
	return res, ok
}

// Hoistable checks that types can be moved into a module: they must not
// refer to declarations of the template package.
func Hoistable(rp *diag.ReporterPhase, module string, types []*model.Type) bool {
	ok := true
	for _, t := range types {
		for _, name := range t.Locals {
			rp.Errorf(
				rules.SER015ParentTypeInModule,
				t.Pos,
				t.End,
				"%s refers to %s of the template package and cannot be moved into module %s",
				t.Text,
				name,
				module,
			)
			ok = false
		}
	}

	return ok
}
