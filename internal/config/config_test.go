package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"profitswitch/internal/config"
	"profitswitch/internal/profit"
)

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

func TestLoad_FileThenEnv(t *testing.T) {
	// Arrange: a config file with algorithms and a custom endpoint
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"nicehash": {"endpoint": "http://mirror.local", "request_timeout_sec": 3},
		"algorithms": [{"name": " X11 ", "factor": 1.5}, {"name": "scrypt", "factor": 2}]
	}`), 0o600))
	t.Setenv("NICEHASH_MAX_RPM", "6")
	t.Setenv("LOG_LEVEL", "debug")

	// Act
	cfg, err := config.Load(path)

	// Assert
	require.NoError(t, err)
	require.Equal(t, "http://mirror.local", cfg.NiceHash.Endpoint)
	require.Equal(t, 3, cfg.NiceHash.RequestTimeoutSec)
	require.Equal(t, 6, cfg.NiceHash.MaxRequestsPerMinute)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "profitswitch/1.0", cfg.NiceHash.UserAgent)
	require.Equal(t, []profit.Algorithm{{Name: "x11", Factor: 1.5}, {Name: "scrypt", Factor: 2}}, cfg.Algorithms)
}

func TestLoad_AlgorithmsFromEnv(t *testing.T) {
	t.Setenv("ALGORITHMS", "Equihash:0.5, x11:12")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	require.Equal(t, []profit.Algorithm{{Name: "equihash", Factor: 0.5}, {Name: "x11", Factor: 12}}, cfg.Algorithms)
}

func TestLoad_BadInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"algorithms": [`), 0o600))
	_, err := config.Load(path)
	require.ErrorContains(t, err, "parse config")

	t.Setenv("ALGORITHMS", "x11")
	_, err = config.Load(filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorContains(t, err, "ALGORITHMS")
}

func TestLoad_IntEnvIgnoresBadValues(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT_SEC", "0")
	t.Setenv("NICEHASH_MAX_RPM", "abc")
	t.Setenv("NICEHASH_BURST", " 3 ")
	t.Setenv("WATCH_INTERVAL_SEC", "-5")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	require.Equal(t, 15, cfg.NiceHash.RequestTimeoutSec)
	require.Equal(t, 2, cfg.NiceHash.MaxRequestsPerMinute)
	require.Equal(t, 3, cfg.NiceHash.Burst)
	require.Equal(t, 60, cfg.Watch.IntervalSec)
}

func TestParseAlgorithms(t *testing.T) {
	t.Parallel()

	algos, err := config.ParseAlgorithms("scrypt:1,,x11:2.5e3")
	require.NoError(t, err)
	require.Equal(t, []profit.Algorithm{{Name: "scrypt", Factor: 1}, {Name: "x11", Factor: 2500}}, algos)

	for _, bad := range []string{"scrypt", ":1", "scrypt:fast"} {
		_, err := config.ParseAlgorithms(bad)
		require.Errorf(t, err, "input %q", bad)
	}
}
