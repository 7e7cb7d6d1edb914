// Package config loads smarterr settings from .smarterr.yaml.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the name of the configuration file looked up from package
// directories upwards.
const FileName = ".smarterr.yaml"

// Config of the code generation.
type Config struct {
	// Suffix is appended to the base name of a template to get the output file name.
	Suffix string `yaml:"suffix"`

	// BuildTag marks template files. Outputs get the negated constraint.
	BuildTag string `yaml:"build_tag"`

	Verify      Verify      `yaml:"verify"`
	Passthrough Passthrough `yaml:"passthrough"`

	// RuntimeImport is the import path of the runtime package used by generated code.
	RuntimeImport string `yaml:"runtime_import"`

	// ImportPath of the package. It is computed from go.mod when empty.
	ImportPath string `yaml:"import_path"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{
		Suffix:        "_smarterr",
		BuildTag:      "smarterr",
		Verify:        VerifyWarn,
		Passthrough:   PassthroughExplicit,
		RuntimeImport: "github.com/sirkon/smarterr",
	}
}

// Load reads the configuration file over defaults. Unknown keys are errors.
func Load(path string) (Config, error) {
	cfg := Default()

	file, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	dec := yaml.NewDecoder(file)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Find looks for the configuration file in dir and its parents up to the
// directory holding go.mod.
func Find(dir string) (string, bool) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}

	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}

		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return "", false
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// Set changes an option by its key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "suffix":
		c.Suffix = value
	case "build_tag":
		c.BuildTag = value
	case "verify":
		return c.Verify.UnmarshalText([]byte(value))
	case "passthrough":
		return c.Passthrough.UnmarshalText([]byte(value))
	case "runtime_import":
		c.RuntimeImport = value
	case "import_path":
		c.ImportPath = value
	default:
		return fmt.Errorf("unknown option %q", key)
	}

	return nil
}

// Keys lists option keys accepted by Set.
func Keys() []string {
	return []string{"suffix", "build_tag", "verify", "passthrough", "runtime_import", "import_path"}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.Suffix == "" || strings.ContainsAny(c.Suffix, `/\`) {
		return fmt.Errorf("suffix must be a non-empty file name part, got %q", c.Suffix)
	}
	if c.BuildTag == "" || strings.ContainsAny(c.BuildTag, " \t!&|()") {
		return fmt.Errorf("build_tag must be a single build tag, got %q", c.BuildTag)
	}
	if _, ok := verifyValueMap[c.Verify]; !ok {
		return fmt.Errorf("verify mode must be set")
	}
	if _, ok := passthroughValueMap[c.Passthrough]; !ok {
		return fmt.Errorf("passthrough mode must be set")
	}
	if c.RuntimeImport == "" {
		return fmt.Errorf("runtime_import must not be empty")
	}

	return nil
}
