package main

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/sirkon/smarterr/internal/generate"
)

type genOptions struct {
	check bool
	diff  bool
	jobs  int
}

func (a *app) genCommand() *cobra.Command {
	var opts genOptions

	cmd := &cobra.Command{
		Use:   "gen [dir|dir/...]...",
		Short: "Generate code for templates of packages",
		Long: `Generate code for templates of packages.

Every template is a Go file constrained with the smarterr build tag. Its output
is written next to it with the negated constraint. Directories ending with /...
are walked recursively. Files of templates having errors are not written.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.gen(args, opts)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.check, "check", false, "fail when generated files are out of date instead of writing them")
	flags.BoolVar(&opts.diff, "diff", false, "print differences with files on disk instead of writing them")
	flags.IntVarP(&opts.jobs, "jobs", "j", runtime.GOMAXPROCS(0), "number of packages processed concurrently")

	return cmd
}

// generated is the result of a single package.
type generated struct {
	dir string
	res *generate.Result
	err error
}

func (a *app) gen(args []string, opts genOptions) error {
	dirs, err := packageDirs(args)
	if err != nil {
		return err
	}

	results := a.generate(dirs, opts.jobs)

	var errs *multierror.Error
	failed := false
	for _, g := range results {
		if g.err != nil {
			errs = multierror.Append(errs, g.err)
			continue
		}

		if a.printReports(g.res) {
			failed = true
		}

		for _, o := range g.res.Files {
			stale, err := a.output(o, opts)
			if err != nil {
				errs = multierror.Append(errs, err)
			}
			if stale {
				failed = true
			}
		}
	}

	if err := errs.ErrorOrNil(); err != nil {
		return err
	}
	if failed {
		return errFailed
	}

	return nil
}

// generate processes packages concurrently. Results keep the order of dirs.
func (a *app) generate(dirs []string, jobs int) []generated {
	if jobs < 1 {
		jobs = 1
	}

	results := make([]generated, len(dirs))
	var eg errgroup.Group
	eg.SetLimit(jobs)
	for i, dir := range dirs {
		eg.Go(func() error {
			results[i] = a.generatePackage(dir)
			return nil
		})
	}
	_ = eg.Wait()

	return results
}

func (a *app) generatePackage(dir string) generated {
	g := generated{dir: dir}

	cfg, err := a.packageConfig(dir)
	if err != nil {
		g.err = fmt.Errorf("configure %s: %w", dir, err)
		return g
	}

	a.log.Debug().Str("dir", dir).Msg("generating package")
	g.res, err = generate.Package(dir, cfg)
	if err != nil {
		g.err = fmt.Errorf("generate %s: %w", dir, err)
	}

	return g
}

// output writes, checks or diffs a generated file. It reports whether the
// file on disk differs when not writing.
func (a *app) output(o *generate.Output, opts genOptions) (bool, error) {
	if !opts.check && !opts.diff {
		if err := os.MkdirAll(filepath.Dir(o.Path), 0o755); err != nil {
			return false, fmt.Errorf("create directory for %s: %w", o.Path, err)
		}
		if err := os.WriteFile(o.Path, o.Content, 0o644); err != nil {
			return false, fmt.Errorf("write %s: %w", o.Path, err)
		}

		a.log.Info().Str("file", o.Path).Msg("generated")
		return false, nil
	}

	current, err := os.ReadFile(o.Path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("read %s: %w", o.Path, err)
	}
	if bytes.Equal(current, o.Content) {
		return false, nil
	}

	if opts.diff {
		fmt.Fprint(a.stdout, unifiedDiff(o.Path, current, o.Content))
	} else {
		fmt.Fprintln(a.stderr, warningColor.Sprintf("%s is out of date", o.Path))
	}

	return true, nil
}

func unifiedDiff(path string, current, content []byte) string {
	res, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(current)),
		B:        difflib.SplitLines(string(content)),
		FromFile: path,
		ToFile:   path + " (generated)",
		Context:  3,
		Eol:      "\n",
	})
	if err != nil {
		// Only fails on writes into a bytes.Buffer.
		panic(err)
	}

	return res
}

// packageDirs expands arguments into package directories. Directories ending
// with /... are walked, skipping testdata, vendor and hidden directories.
func packageDirs(args []string) ([]string, error) {
	if len(args) == 0 {
		args = []string{"."}
	}

	var dirs []string
	seen := map[string]bool{}
	add := func(dir string) {
		dir = filepath.Clean(dir)
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}

	for _, arg := range args {
		root, ok := strings.CutSuffix(filepath.ToSlash(arg), "/...")
		if !ok {
			add(arg)
			continue
		}
		if root == "" {
			root = "."
		}

		err := filepath.WalkDir(filepath.FromSlash(root), func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() {
				return nil
			}

			name := d.Name()
			if path != filepath.FromSlash(root) && (name == "testdata" || name == "vendor" || strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
				return filepath.SkipDir
			}

			if hasGoFiles(path) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
	}

	return dirs, nil
}

func hasGoFiles(dir string) bool {
	matches, _ := filepath.Glob(filepath.Join(dir, "*.go"))
	return len(matches) > 0
}
