package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestInvalidTimeoutRejected(t *testing.T) {
	_, err := execute(t, "print", "--timeout", "0s")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeout must be positive")
}

func TestInvalidLogLevelFromEnv(t *testing.T) {
	t.Setenv("HWID_LOG_LEVEL", "chatty")
	_, err := execute(t, "print")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log level")
}

func TestMissingConfigFile(t *testing.T) {
	_, err := execute(t, "print", "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestConfigFileIsApplied(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hwid.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_format: xml\n"), 0o600))

	_, err := execute(t, "copy", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log format")
}

func TestUnknownSubcommandArgs(t *testing.T) {
	_, err := execute(t, "print", "extra")
	assert.Error(t, err)
}

func TestVersionFlag(t *testing.T) {
	version = "1.2.3"
	t.Cleanup(func() { version = "" })

	out, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "1.2.3")
}
