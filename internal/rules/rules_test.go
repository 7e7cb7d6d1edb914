package rules

import (
	"strings"
	"testing"
)

func TestRulesAreDescribed(t *testing.T) {
	seen := map[string]Rule{}
	for _, r := range All() {
		t.Run(r.Code(), func(t *testing.T) {
			if strings.HasPrefix(r.String(), "rule-unknown") {
				t.Fatalf("rule %d has no info", r)
			}
			if !strings.HasPrefix(r.String(), r.Code()+": ") {
				t.Errorf("unexpected rule string %q", r.String())
			}
			if r.Description() == "" {
				t.Error("empty description")
			}
			if prev, ok := seen[r.Code()]; ok {
				t.Errorf("code %s is shared with rule %d", r.Code(), prev)
			}
			seen[r.Code()] = r
		})
	}
}

func TestUnknownRule(t *testing.T) {
	if got := Rule(1000).String(); got != "rule-unknown(1000)" {
		t.Errorf("unexpected string %q", got)
	}
}
