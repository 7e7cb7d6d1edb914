// Command smarterr generates error sets from smarterr templates.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sirkon/smarterr/internal/config"
)

// errFailed is returned when diagnostics or stale files were already printed.
var errFailed = errors.New("smarterr failed")

func main() {
	cmd := newRootCommand(os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintln(os.Stderr, color.RedString("%s", err))
		}
		os.Exit(1)
	}
}

// app holds state shared by commands.
type app struct {
	v      *viper.Viper
	log    zerolog.Logger
	stdout io.Writer
	stderr io.Writer
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		v:      viper.New(),
		stdout: stdout,
		stderr: stderr,
	}

	root := &cobra.Command{
		Use:           "smarterr",
		Short:         "Generate error sets from smarterr templates",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.String("config", "", "configuration file, looked up from package directories when empty")
	flags.BoolP("verbose", "v", false, "print debug logs")
	flags.Bool("no-color", false, "disable colored output")
	for _, key := range config.Keys() {
		flags.String(flagName(key), "", "override the "+key+" option")
	}

	a.v.SetEnvPrefix("SMARTERR")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	_ = a.v.BindPFlag("config", flags.Lookup("config"))
	_ = a.v.BindPFlag("verbose", flags.Lookup("verbose"))
	_ = a.v.BindPFlag("no_color", flags.Lookup("no-color"))
	for _, key := range config.Keys() {
		_ = a.v.BindPFlag(key, flags.Lookup(flagName(key)))
	}

	root.AddCommand(
		a.genCommand(),
		a.dumpCommand(),
		a.configCommand(),
		a.rulesCommand(),
	)

	return root
}

func (a *app) setup() error {
	noColor := a.v.GetBool("no_color")
	if noColor {
		color.NoColor = true
	}

	level := zerolog.InfoLevel
	if a.v.GetBool("verbose") {
		level = zerolog.DebugLevel
	}
	a.log = zerolog.New(zerolog.ConsoleWriter{
		Out:        a.stderr,
		NoColor:    noColor || color.NoColor,
		TimeFormat: "15:04:05",
	}).Level(level).With().Timestamp().Logger()

	return nil
}

// flagName turns a configuration key into a flag name.
func flagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

// packageConfig returns the configuration of the package in dir: defaults,
// then the configuration file, then environment and flag overrides.
func (a *app) packageConfig(dir string) (config.Config, error) {
	cfg := config.Default()

	path := a.v.GetString("config")
	if path == "" {
		path, _ = config.Find(dir)
	}
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return cfg, err
		}
		a.log.Debug().Str("dir", dir).Str("config", path).Msg("configuration file loaded")
	}

	for _, key := range config.Keys() {
		if !a.v.IsSet(key) {
			continue
		}

		if err := cfg.Set(key, a.v.GetString(key)); err != nil {
			return cfg, fmt.Errorf("set %s: %w", key, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
