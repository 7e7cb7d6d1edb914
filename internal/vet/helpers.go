package vet

import (
	"fmt"
	"go/ast"
	"go/types"
	"maps"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/types/typeutil"
)

type packagedFunc struct {
	pkgPath string
	name    string
}

// helperKind describes varieties of runtime helpers.
type helperKind int

const (
	helperKindInvalid helperKind = iota

	// helperKindThrow returns the value and an error when the value failed.
	helperKindThrow

	// helperKindRaise returns an error when the value did not fail.
	helperKindRaise
)

var helperKindValueMap = map[helperKind]string{
	helperKindThrow: "throw",
	helperKindRaise: "raise",
}

func (k helperKind) String() string {
	v, ok := helperKindValueMap[k]
	if !ok {
		return fmt.Sprintf("invalid(%d)", k)
	}

	return v
}

type knownHelperChecker struct {
	known map[packagedFunc]helperKind
	pass  *analysis.Pass
}

func newKnownHelperChecker(pass *analysis.Pass, runtime string, custom map[packagedFunc]helperKind) *knownHelperChecker {
	predefined := map[packagedFunc]helperKind{
		{pkgPath: runtime, name: "Throw"}:    helperKindThrow,
		{pkgPath: runtime, name: "ThrowErr"}: helperKindThrow,
		{pkgPath: runtime, name: "ThrowCtx"}: helperKindThrow,
		{pkgPath: runtime, name: "Raise"}:    helperKindRaise,
		{pkgPath: runtime, name: "RaiseErr"}: helperKindRaise,
		{pkgPath: runtime, name: "RaiseCtx"}: helperKindRaise,
	}

	if custom == nil {
		custom = make(map[packagedFunc]helperKind)
	} else {
		custom = maps.Clone(custom)
	}

	// Predefined helpers win over custom ones.
	maps.Insert(custom, maps.All(predefined))

	return &knownHelperChecker{known: custom, pass: pass}
}

// helper returns the kind of the runtime helper called.
func (c *knownHelperChecker) helper(call *ast.CallExpr) (helperKind, string, bool) {
	fn := typeutil.Callee(c.pass.TypesInfo, call)
	if fn == nil {
		return helperKindInvalid, "", false
	}

	fnType, ok := fn.(*types.Func)
	if !ok {
		return helperKindInvalid, "", false
	}

	pkg := fnType.Pkg()
	if pkg == nil {
		return helperKindInvalid, "", false
	}

	kind, ok := c.known[packagedFunc{
		pkgPath: pkg.Path(),
		name:    fnType.Name(),
	}]
	if !ok {
		return helperKindInvalid, "", false
	}

	return kind, pkg.Name() + "." + fnType.Name(), true
}

// discarded returns the helper call whose results are not used by the
// statement.
func (c *knownHelperChecker) discarded(stmt ast.Stmt) *ast.CallExpr {
	var call *ast.CallExpr
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		call, _ = ast.Unparen(s.X).(*ast.CallExpr)
	case *ast.AssignStmt:
		for _, lhs := range s.Lhs {
			if id, ok := lhs.(*ast.Ident); !ok || id.Name != "_" {
				return nil
			}
		}
		if len(s.Rhs) == 1 {
			call, _ = ast.Unparen(s.Rhs[0]).(*ast.CallExpr)
		}
	}
	if call == nil {
		return nil
	}

	if _, _, ok := c.helper(call); !ok {
		return nil
	}

	return call
}
