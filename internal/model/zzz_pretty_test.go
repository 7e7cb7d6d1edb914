package model

import "testing"

func TestPretty(t *testing.T) {
	alfa := &Variant{
		Name:    Name{Value: "AlfaError"},
		Source:  SourceNone,
		Message: "Alfa error",
		Fields: &FieldList{Fields: []*Field{
			{Name: Name{Value: "ind"}, Type: &Type{Text: "int"}},
		}},
	}
	beta := &Variant{
		Name:   Name{Value: "BetaError"},
		Source: SourceDynError,
	}

	sets := []*ResolvedSet{
		{
			Name: "GreekFuncError",
			Variants: []*ResolvedVariant{
				{Variant: alfa, GoName: "AlfaError"},
				{Variant: beta, GoName: "BetaError"},
			},
		},
		{
			Name: "NumericFuncError",
			Variants: []*ResolvedVariant{
				{Variant: alfa, GoName: "AlfaError", From: "GreekFuncError"},
			},
			Blocks: []*ResolvedBlock{
				{SourceSet: "GreekFuncError", PassThrough: []string{"AlfaError"}, Handled: []string{"BetaError"}},
			},
		},
	}

	want := `Set GreekFuncError {
  AlfaError { ind: int } -> "Alfa error"
  BetaError<>
}
Set NumericFuncError {
  AlfaError (from GreekFuncError)
  From GreekFuncError {
    pass AlfaError
    handled BetaError
  }
}
`
	if got := Pretty(sets); got != want {
		t.Errorf("unexpected rendering:\n%s\nwant:\n%s", got, want)
	}
}
