package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
[output]
format = "tree"

[batch]
jobs = 3
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "tree", cfg.Output.Format)
	require.Equal(t, "auto", cfg.Output.Color)
	require.Equal(t, 3, cfg.Batch.Jobs)
	require.Equal(t, 100, cfg.Diagnostics.Max)
	require.Equal(t, path, cfg.Path)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := map[string]string{
		"color":   "[output]\ncolor = \"sometimes\"\n",
		"jobs":    "[batch]\njobs = -1\n",
		"max":     "[diagnostics]\nmax = -5\n",
		"unknown": "[output]\nfont = \"mono\"\n",
		"syntax":  "[output\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), body)
			_, err := Load(path)
			require.Error(t, err)
		})
	}
}

func TestDiscoverWalksUp(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "[diagnostics]\nmax = 7\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	cfg, err := Discover("", nested)
	require.NoError(t, err)
	require.Equal(t, 7, cfg.Diagnostics.Max)
}

func TestDiscoverExplicitPath(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[output]\ncolor = \"off\"\n")
	cfg, err := Discover(path, "")
	require.NoError(t, err)
	require.Equal(t, "off", cfg.Output.Color)

	_, err = Discover(filepath.Join(t.TempDir(), "missing.toml"), "")
	require.Error(t, err)
}
