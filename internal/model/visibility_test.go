package model

import "testing"

func TestVisibilityApply(t *testing.T) {
	tests := []struct {
		name string
		vis  Visibility
		in   string
		want string
	}{
		{name: "as is keeps exported", vis: VisibilityAsIs, in: "AlfaError", want: "AlfaError"},
		{name: "as is keeps unexported", vis: VisibilityAsIs, in: "alfaError", want: "alfaError"},
		{name: "pub", vis: VisibilityExported, in: "alfaError", want: "AlfaError"},
		{name: "pub on exported", vis: VisibilityExported, in: "AlfaError", want: "AlfaError"},
		{name: "priv", vis: VisibilityUnexported, in: "AlfaError", want: "alfaError"},
		{name: "priv acronym prefix", vis: VisibilityUnexported, in: "HTTPError", want: "httpError"},
		{name: "priv acronym only", vis: VisibilityUnexported, in: "ID", want: "id"},
		{name: "priv single letter", vis: VisibilityUnexported, in: "X", want: "x"},
		{name: "pub empty", vis: VisibilityExported, in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.vis.Apply(tt.in); got != tt.want {
				t.Errorf("%s.Apply(%q) = %q, want %q", tt.vis, tt.in, got, tt.want)
			}
		})
	}
}

func TestVisibilityOr(t *testing.T) {
	if got := VisibilityAsIs.Or(VisibilityExported); got != VisibilityExported {
		t.Errorf("unexpected fallback result %s", got)
	}
	if got := VisibilityUnexported.Or(VisibilityExported); got != VisibilityUnexported {
		t.Errorf("explicit visibility must win, got %s", got)
	}
}

func TestSourceKindText(t *testing.T) {
	for kind := range sourceKindValueMap {
		text, err := kind.MarshalText()
		if err != nil {
			t.Fatalf("marshal %d: %s", kind, err)
		}

		var got SourceKind
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("unmarshal %q: %s", text, err)
		}
		if got != kind {
			t.Errorf("%q decoded into %s", text, got)
		}
	}

	var k SourceKind
	if err := k.UnmarshalText([]byte("boxed")); err == nil {
		t.Error("error expected for unknown source kind")
	}
}

func TestSourceKindZero(t *testing.T) {
	var k SourceKind
	if k != SourceNone {
		t.Errorf("zero source kind is %s", k)
	}
	if SourceKind(42).HasCause() {
		t.Error("unknown source kind keeps a cause")
	}
}

func TestSourceKindCause(t *testing.T) {
	tests := []struct {
		kind    SourceKind
		cause   bool
		exposed bool
	}{
		{kind: SourceNone},
		{kind: SourceTyped, cause: true, exposed: true},
		{kind: SourceDynError, cause: true, exposed: true},
		{kind: SourceDynDebug, cause: true},
		{kind: SourceBoxedDebug, cause: true},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if tt.kind.HasCause() != tt.cause {
				t.Errorf("unexpected HasCause %v", !tt.cause)
			}
			if tt.kind.Exposed() != tt.exposed {
				t.Errorf("unexpected Exposed %v", !tt.exposed)
			}
		})
	}
}
