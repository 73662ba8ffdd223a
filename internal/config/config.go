package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultHost       = "https://fapi.binance.com"
	DefaultRecvWindow = 5000
	DefaultLogFile    = "logs/app.log"
)

type Config struct {
	// Binance API
	BinanceApiKey    string
	BinanceSecretKey string
	Host             string
	Proxy            string
	RecvWindow       int64

	// Logging
	LogFile  string
	LogLevel string
}

// Load reads the .env file at path into the environment, then builds the
// config from it. A missing file is not an error; variables already set in
// the environment win over the file.
func Load(path string) (*Config, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error loading %s: %w", path, err)
		}
	}

	cfg := &Config{
		BinanceApiKey:    os.Getenv("BINANCE_API_KEY"),
		BinanceSecretKey: os.Getenv("BINANCE_SECRET_KEY"),
		Host:             getOr("BINANCE_HOST", DefaultHost),
		Proxy:            os.Getenv("BINANCE_PROXY"),
		LogFile:          getOr("LOG_FILE", DefaultLogFile),
		LogLevel:         getOr("LOG_LEVEL", "info"),
	}

	cfg.RecvWindow = DefaultRecvWindow
	if val := os.Getenv("BINANCE_RECV_WINDOW"); val != "" {
		rw, err := parseInt(val, "BINANCE_RECV_WINDOW")
		if err != nil {
			return nil, err
		}
		if rw <= 0 || rw > 60000 {
			return nil, fmt.Errorf("BINANCE_RECV_WINDOW must be within 1..60000, got %d", rw)
		}
		cfg.RecvWindow = rw
	}

	return cfg, nil
}

func getOr(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseInt(value, name string) (int64, error) {
	i, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %w", name, err)
	}
	return i, nil
}
