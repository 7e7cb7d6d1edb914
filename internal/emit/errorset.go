package emit

import (
	"fmt"

	"github.com/sirkon/smarterr/internal/model"
)

// Union emits an errorset union with a case type per element:
//
//	type FetchErrors interface { error; Unwrap() error; isFetchErrors() }
//	type FetchErrorsNotFound struct{ Err *NotFound }
func (e *Emitter) Union(u *model.ErrorsetUnion) []Decl {
	res := []Decl{
		&TypeDecl{
			Doc:  fmt.Sprintf("%s is a generated union of errors.", u.Name),
			Name: u.Name,
			Type: &InterfaceType{
				Embeds: []string{"error"},
				Methods: []Signature{
					{Name: "Unwrap", Results: []string{"error"}},
					{Name: markerName(u.Name)},
				},
			},
		},
	}

	for _, elem := range u.Elements {
		name := u.CaseName(elem)
		recv := &Field{Name: "e", Type: name}
		res = append(res,
			&TypeDecl{
				Doc:  fmt.Sprintf("%s is the %s case of %s.", name, elem.Name, u.Name),
				Name: name,
				Type: &StructType{Fields: []Field{{Name: "Err", Type: elem.Type.Text}}},
			},
			&FuncDecl{
				Recv:      recv,
				Signature: Signature{Name: "Error", Results: []string{"string"}},
				Body:      []Stmt{&Return{Values: []string{"e.Err.Error()"}}},
			},
			&FuncDecl{
				Recv:      recv,
				Signature: Signature{Name: "Unwrap", Results: []string{"error"}},
				Body:      []Stmt{&Return{Values: []string{"e.Err"}}},
			},
			&FuncDecl{
				Recv:      &Field{Type: name},
				Signature: Signature{Name: markerName(u.Name)},
			},
		)
	}

	return res
}
