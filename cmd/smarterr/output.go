package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sirkon/smarterr/internal/diag"
	"github.com/sirkon/smarterr/internal/generate"
	"github.com/sirkon/smarterr/internal/rules"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow)
)

// printReports prints diagnostics of the package ordered by position and
// reports whether any of them is an error.
func (a *app) printReports(res *generate.Result) bool {
	hasErrors := false
	for _, rep := range res.Reporter.Sorted() {
		c := warningColor
		if rep.Severity == diag.SeverityError {
			c = errorColor
			hasErrors = true
		}

		fmt.Fprintln(a.stderr, c.Sprint(rep.Format(res.Fset)))
	}

	return hasErrors
}

func (a *app) dumpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dump [dir]",
		Short: "Print resolved error sets of a package",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			g := a.generatePackage(dir)
			if g.err != nil {
				return g.err
			}

			fmt.Fprint(a.stdout, g.res.Dump())
			if a.printReports(g.res) {
				return errFailed
			}

			return nil
		},
	}
}

func (a *app) configCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config [dir]",
		Short: "Print the effective configuration of a package",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			cfg, err := a.packageConfig(dir)
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(a.stdout)
			enc.SetIndent(2)
			if err := enc.Encode(cfg); err != nil {
				return fmt.Errorf("encode configuration: %w", err)
			}

			return enc.Close()
		},
	}
}

func (a *app) rulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List diagnostic codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
			for _, r := range rules.All() {
				fmt.Fprintf(w, "%s\t%s\n", r, r.Description())
			}

			return w.Flush()
		},
	}
}
