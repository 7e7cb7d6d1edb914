package attach

import (
	"strings"

	"github.com/dave/dst"

	"github.com/sirkon/smarterr/internal/grammar"
)

// stripDirectives removes directive lines and their continuations.
func stripDirectives(decs dst.Decorations) dst.Decorations {
	if len(decs) == 0 {
		return decs
	}

	var res dst.Decorations
	var skipping, changed bool
	for _, line := range decs {
		switch {
		case grammar.IsDirectiveLine(line):
			skipping = true
			changed = true
			continue
		case skipping && grammar.IsContinuationLine(line):
			continue
		}

		skipping = false
		res = append(res, line)
	}
	if !changed {
		return decs
	}

	// A paragraph separator left in front of a removed directive.
	for len(res) > 0 && res[len(res)-1] == "//" {
		res = res[:len(res)-1]
	}
	for _, line := range res {
		if line != "\n" {
			return res
		}
	}

	return nil
}

// stripConstraints removes build constraint lines.
func stripConstraints(decs dst.Decorations) dst.Decorations {
	var res dst.Decorations
	for _, line := range decs {
		if strings.HasPrefix(line, "//go:build") || strings.HasPrefix(line, "// +build") {
			continue
		}

		res = append(res, line)
	}

	// Constraints are followed by an empty line.
	for len(res) > 0 && res[0] == "\n" {
		res = res[1:]
	}

	return res
}
