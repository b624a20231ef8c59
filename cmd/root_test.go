package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebugFlagDefaultFalse(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("debug")
	if flag == nil {
		t.Fatal("--debug flag not found")
	}
	if flag.DefValue != "false" {
		t.Errorf("--debug default = %q, want %q", flag.DefValue, "false")
	}
}

func TestConfigFlagExists(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("config")
	if flag == nil {
		t.Fatal("--config flag not found")
	}
	if filepath.Base(flag.DefValue) != "config.yml" {
		t.Errorf("--config default = %q, want a config.yml path", flag.DefValue)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	orig := version
	defer SetVersion(orig)
	SetVersion("1.2.3")

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "sup 1.2.3\n", out)
}

func TestConfigCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("responder:\n  min_delay: 2s\n  max_delay: 5s\n"), 0644))

	out, err := execute(t, "config", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "min_delay: 2s")
	assert.Contains(t, out, "max_delay: 5s")
	assert.Contains(t, out, "profile_breakpoint: 100")
}

func TestSetup(t *testing.T) {
	dir := t.TempDir()

	t.Run("defaults", func(t *testing.T) {
		m, logger, err := setup(filepath.Join(dir, "missing.yml"), false)
		require.NoError(t, err)
		require.NotNil(t, logger)
		assert.Contains(t, m.View(), "Abhishek Rawat")
	})

	t.Run("custom seed", func(t *testing.T) {
		seedPath := filepath.Join(dir, "seed.yml")
		require.NoError(t, os.WriteFile(seedPath, []byte(`chats:
  - id: 7
    name: Grace Hopper
    phone: "+15550100"
    last_message: "Ship it"
    time: "09:00"
`), 0644))
		cfgPath := filepath.Join(dir, "seed-config.yml")
		require.NoError(t, os.WriteFile(cfgPath, []byte("seed:\n  path: "+seedPath+"\n"), 0644))

		m, _, err := setup(cfgPath, false)
		require.NoError(t, err)
		view := m.View()
		assert.Contains(t, view, "Grace Hopper")
		assert.NotContains(t, view, "Abhishek Rawat")
	})

	t.Run("debug log file", func(t *testing.T) {
		logPath := filepath.Join(dir, "logs", "sup.log")
		cfgPath := filepath.Join(dir, "debug-config.yml")
		require.NoError(t, os.WriteFile(cfgPath, []byte("log:\n  path: "+logPath+"\n"), 0644))

		_, logger, err := setup(cfgPath, true)
		require.NoError(t, err)
		_ = logger.Sync()

		data, err := os.ReadFile(logPath)
		require.NoError(t, err)
		assert.Contains(t, string(data), "session started")
	})

	t.Run("invalid config", func(t *testing.T) {
		cfgPath := filepath.Join(dir, "bad.yml")
		require.NoError(t, os.WriteFile(cfgPath, []byte("responder:\n  min_delay: 3s\n  max_delay: 1s\n"), 0644))

		_, _, err := setup(cfgPath, false)
		assert.ErrorContains(t, err, "error loading config")
	})

	t.Run("missing seed file", func(t *testing.T) {
		cfgPath := filepath.Join(dir, "noseed.yml")
		require.NoError(t, os.WriteFile(cfgPath, []byte("seed:\n  path: "+filepath.Join(dir, "nope.yml")+"\n"), 0644))

		_, _, err := setup(cfgPath, false)
		assert.ErrorContains(t, err, "failed to open seed file")
	})
}
