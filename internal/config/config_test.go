package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("overrides", func(t *testing.T) {
		path := filepath.Join(dir, "full.yaml")
		writeFile(t, path, "suffix: _errors\nverify: error\npassthrough: implicit\nimport_path: example.com/x\n")

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, "_errors", cfg.Suffix)
		require.Equal(t, "smarterr", cfg.BuildTag)
		require.Equal(t, VerifyError, cfg.Verify)
		require.Equal(t, PassthroughImplicit, cfg.Passthrough)
		require.Equal(t, "example.com/x", cfg.ImportPath)
		require.Equal(t, Default().RuntimeImport, cfg.RuntimeImport)
	})

	t.Run("empty", func(t *testing.T) {
		path := filepath.Join(dir, "empty.yaml")
		writeFile(t, path, "")

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, Default(), cfg)
	})

	failures := map[string]string{
		"unknown key":     "suffixes: x\n",
		"unknown verify":  "verify: loud\n",
		"empty build tag": "build_tag: \"\"\n",
		"negated tag":     "build_tag: \"!smarterr\"\n",
	}
	for name, content := range failures {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, "bad.yaml")
			writeFile(t, path, content)

			_, err := Load(path)
			require.Error(t, err)
		})
	}

	t.Run("missing", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "missing.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "go.mod"), "module example.com/x\n")
	writeFile(t, filepath.Join(root, "a", FileName), "verify: off\n")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "a", "b", "c"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "d"), 0o755))

	path, ok := Find(filepath.Join(root, "a", "b", "c"))
	require.True(t, ok)
	require.Equal(t, filepath.Join(root, "a", FileName), path)

	_, ok = Find(filepath.Join(root, "d"))
	require.False(t, ok)
}

func TestSet(t *testing.T) {
	cfg := Default()
	for _, key := range Keys() {
		value := "x"
		switch key {
		case "verify":
			value = "off"
		case "passthrough":
			value = "implicit"
		}
		require.NoError(t, cfg.Set(key, value), key)
	}
	require.Equal(t, VerifyOff, cfg.Verify)
	require.Equal(t, PassthroughImplicit, cfg.Passthrough)
	require.Equal(t, "x", cfg.ImportPath)

	require.Error(t, cfg.Set("verify", "never"))
	require.Error(t, cfg.Set("color", "yes"))
}

func TestEnumText(t *testing.T) {
	for v := range verifyValueMap {
		text, err := v.MarshalText()
		require.NoError(t, err)
		var got Verify
		require.NoError(t, got.UnmarshalText(text))
		require.Equal(t, v, got)
	}

	_, err := VerifyInvalid.MarshalText()
	require.Error(t, err)
	require.Equal(t, "invalid(0)", PassthroughInvalid.String())
}
