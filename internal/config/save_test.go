package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveThenLoad(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, FileName)

	cfg := Default()
	cfg.Sort = "status"
	cfg.ShowCompleted = false
	cfg.Color = "never"
	cfg.Logging.Level = "debug"
	require.NoError(t, cfg.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "file:", "empty log file is omitted")

	loaded, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSaveRejectsInvalid(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, FileName)

	cfg := Default()
	cfg.Sort = "priority"
	require.Error(t, cfg.Save(path))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestPath(t *testing.T) {
	dir := isolate(t)

	local, err := Path(false)
	require.NoError(t, err)
	assert.Equal(t, ".todo.yaml", local)

	global, err := Path(true)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".todo.yaml"), global)
}

func TestNewFormBuilds(t *testing.T) {
	cfg := Default()
	assert.NotNil(t, newForm(cfg))
	assert.Equal(t, Default(), cfg, "building the form does not change values")
}
