package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rail44/advent/internal/log"
	"github.com/rail44/advent/internal/runner"
)

func TestParseDays(t *testing.T) {
	days, err := parseDays([]string{"1", "day2", "Day12"})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 12}, days)

	days, err = parseDays(nil)
	require.NoError(t, err)
	assert.Empty(t, days)

	for _, bad := range []string{"0", "x", "day", "-3"} {
		_, err := parseDays([]string{bad})
		assert.Error(t, err, bad)
	}
}

func TestCountFailed(t *testing.T) {
	results := []runner.Result{{Day: 1}, {Day: 2, Err: assert.AnError}}
	assert.Equal(t, 1, countFailed(results))
}

func TestCommandsRegistered(t *testing.T) {
	for _, name := range []string{"run", "check", "watch"} {
		c, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, c.Name())
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "advent.toml"), []byte("workers = 2\n"), 0644))
	t.Chdir(dir)
	wd, err := os.Getwd()
	require.NoError(t, err)

	flags := rootCmd.PersistentFlags()
	t.Cleanup(func() {
		for name, def := range map[string]string{"workers": "0", "input-dir": ""} {
			require.NoError(t, flags.Set(name, def))
			flags.Lookup(name).Changed = false
		}
		_ = log.SetLevel(log.LevelInfo)
	})
	oldCfgFile := cfgFile
	cfgFile = ""
	t.Cleanup(func() { cfgFile = oldCfgFile })

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, filepath.Join(wd, "advent.toml"), cfg.Path)

	t.Setenv("ADVENT_WORKERS", "5")
	cfg, err = loadConfig()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Workers)

	require.NoError(t, flags.Set("workers", "7"))
	require.NoError(t, flags.Set("input-dir", "data"))
	cfg, err = loadConfig()
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Workers)
	assert.Equal(t, filepath.Join(wd, "data"), cfg.InputDir)
}
