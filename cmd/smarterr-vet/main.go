// Command smarterr-vet checks smarterr templates and uses of throw and raise
// helpers. It can be run standalone or with go vet -vettool.
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/sirkon/smarterr/internal/vet"
)

func main() {
	singlechecker.Main(vet.Analyzer)
}
