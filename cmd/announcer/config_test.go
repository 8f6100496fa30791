package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/KirkDiggler/announcer/internal/audio"
	"github.com/KirkDiggler/announcer/internal/config"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func newTestCmd(t *testing.T, args ...string) (*cobra.Command, *options) {
	t.Helper()

	for _, key := range []string{"ANNOUNCER_ADDR", "ANNOUNCER_OVERLAP", "ANNOUNCER_MAX_VOICES", "ANNOUNCER_REQUEST_TIMEOUT", "REDIS_ADDR"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cmd := &cobra.Command{}
	opts := &options{}
	bindFlags(cmd, opts)
	opts.envFile = filepath.Join(t.TempDir(), "empty.env")
	require.NoError(t, os.WriteFile(opts.envFile, nil, 0o644))
	require.NoError(t, cmd.Flags().Parse(args))
	return cmd, opts
}

func TestLoadConfig_FlagsOverrideEnvironment(t *testing.T) {
	cmd, opts := newTestCmd(t, "--addr", "0.0.0.0:9000", "--overlap", "interrupt", "--request-timeout", "2s")
	t.Setenv("ANNOUNCER_ADDR", "127.0.0.1:4000")
	t.Setenv("ANNOUNCER_MAX_VOICES", "2")

	cfg, err := loadConfig(cmd, opts)
	require.NoError(t, err)

	require.Equal(t, "0.0.0.0:9000", cfg.Addr)
	require.Equal(t, audio.OverlapInterrupt, cfg.Overlap)
	require.Equal(t, 2*time.Second, cfg.RequestTimeout)
	// Unset flags leave the environment value alone
	require.Equal(t, 2, cfg.MaxVoices)
}

func TestLoadConfig_DefaultsWithoutFlags(t *testing.T) {
	cmd, opts := newTestCmd(t)

	cfg, err := loadConfig(cmd, opts)
	require.NoError(t, err)

	require.Equal(t, config.DefaultAddr, cfg.Addr)
	require.Equal(t, audio.OverlapMix, cfg.Overlap)
	require.Equal(t, config.DefaultRequestTimeout, cfg.RequestTimeout)
	require.Empty(t, cfg.RedisAddr)
}

func TestLoadConfig_RejectsBadFlag(t *testing.T) {
	cmd, opts := newTestCmd(t, "--max-voices", "0")

	_, err := loadConfig(cmd, opts)
	require.Error(t, err)
}

func TestLoadConfig_FlagFixesInvalidEnvironment(t *testing.T) {
	cmd, opts := newTestCmd(t, "--max-voices", "3")
	t.Setenv("ANNOUNCER_MAX_VOICES", "0")

	cfg, err := loadConfig(cmd, opts)
	require.NoError(t, err)
	require.Equal(t, 3, cfg.MaxVoices)
}

func TestLoadConfig_InvalidEnvironmentWithoutFlag(t *testing.T) {
	cmd, opts := newTestCmd(t)
	t.Setenv("ANNOUNCER_MAX_VOICES", "0")

	_, err := loadConfig(cmd, opts)
	require.Error(t, err)
}

func TestLoadConfig_MissingEnvFile(t *testing.T) {
	cmd, opts := newTestCmd(t)
	opts.envFile = filepath.Join(t.TempDir(), "missing.env")

	_, err := loadConfig(cmd, opts)
	require.ErrorContains(t, err, "failed to load env file")
}
