package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/outofforest/wordtree/tree"
)

func TestLoadDefaults(t *testing.T) {
	requireT := require.New(t)

	conf, err := Load("", nil)
	requireT.NoError(err)
	requireT.Equal(Default(), conf)
	requireT.Equal(tree.DefaultMaxItems, conf.Tree.MaxItems)
	requireT.Equal(zerolog.InfoLevel, conf.Log.Level)
	requireT.Equal(LogFormatText, conf.Log.Format)
}

func TestLoadFile(t *testing.T) {
	requireT := require.New(t)

	file := writeConfig(t, `
tree:
  max_items: 42
log:
  level: debug
  format: json
`)

	conf, err := Load(file, nil)
	requireT.NoError(err)
	requireT.Equal(42, conf.Tree.MaxItems)
	requireT.Equal(zerolog.DebugLevel, conf.Log.Level)
	requireT.Equal(LogFormatJSON, conf.Log.Format)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	requireT := require.New(t)

	file := writeConfig(t, `
tree:
  max_items: 42
`)
	t.Setenv("WORDFREQ_TREE_MAX__ITEMS", "7")
	t.Setenv("WORDFREQ_LOG_LEVEL", "warn")

	conf, err := Load(file, nil)
	requireT.NoError(err)
	requireT.Equal(7, conf.Tree.MaxItems)
	requireT.Equal(zerolog.WarnLevel, conf.Log.Level)
}

func TestLoadOverrides(t *testing.T) {
	requireT := require.New(t)

	t.Setenv("WORDFREQ_TREE_MAX__ITEMS", "7")

	conf, err := Load("", map[string]any{"tree.max_items": 3})
	requireT.NoError(err)
	requireT.Equal(3, conf.Tree.MaxItems)
	requireT.Equal(tree.New(conf.TreeOptions()...).MaxItems(), 3)
}

func TestLoadErrors(t *testing.T) {
	requireT := require.New(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	requireT.ErrorIs(err, os.ErrNotExist)

	_, err = Load(writeConfig(t, "tree: [1, 2"), nil)
	requireT.Error(err)

	_, err = Load(writeConfig(t, "tree:\n  max_items: -1\n"), nil)
	requireT.Error(err)

	_, err = Load(writeConfig(t, "log:\n  format: xml\n"), nil)
	requireT.Error(err)

	_, err = Load(writeConfig(t, "log:\n  level: loud\n"), nil)
	requireT.Error(err)
}

func TestLoadEmptyLogLevel(t *testing.T) {
	requireT := require.New(t)

	_, err := Load(writeConfig(t, "log:\n  level: \"\"\n"), nil)
	requireT.ErrorContains(err, "log level must not be empty")

	_, err = Load("", map[string]any{"log.level": ""})
	requireT.ErrorContains(err, "log level must not be empty")
}

func writeConfig(t *testing.T, content string) string {
	file := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte(content), 0o600))
	return file
}
