package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{"BINANCE_API_KEY", "BINANCE_SECRET_KEY", "BINANCE_HOST", "BINANCE_PROXY", "BINANCE_RECV_WINDOW", "LOG_FILE", "LOG_LEVEL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, DefaultHost, cfg.Host)
	assert.Equal(t, int64(DefaultRecvWindow), cfg.RecvWindow)
	assert.Equal(t, DefaultLogFile, cfg.LogFile)
	assert.Empty(t, cfg.BinanceApiKey)
	assert.Empty(t, cfg.Proxy)
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), ".env")
	content := "BINANCE_API_KEY=key\nBINANCE_SECRET_KEY=secret\nBINANCE_HOST=https://testnet.binancefuture.com\nBINANCE_RECV_WINDOW=10000\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "key", cfg.BinanceApiKey)
	assert.Equal(t, "secret", cfg.BinanceSecretKey)
	assert.Equal(t, "https://testnet.binancefuture.com", cfg.Host)
	assert.Equal(t, int64(10000), cfg.RecvWindow)
}

func TestEnvironmentWinsOverFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("BINANCE_HOST", "https://api.example.com")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("BINANCE_HOST=https://fapi.binance.com\n"), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", cfg.Host)
}

func TestLoadRejectsBadRecvWindow(t *testing.T) {
	for _, val := range []string{"abc", "0", "60001"} {
		clearEnv(t)
		t.Setenv("BINANCE_RECV_WINDOW", val)

		_, err := Load("")
		assert.Error(t, err, "recvWindow %q", val)
	}
}
