package config

import (
	"fmt"
	"os"
)

const defaultDataDir = "data"

// Config carries the Alpaca credentials and the archive directory. Both
// credential values are required; loading fails before any request is made.
type Config struct {
	APIKeyID     string
	APISecretKey string
	DataDir      string
}

func Load() (*Config, error) {
	keyID := os.Getenv("ALPACA_API_KEY")
	if keyID == "" {
		return nil, fmt.Errorf("ALPACA_API_KEY environment variable is not set")
	}

	secretKey := os.Getenv("ALPACA_SECRET_KEY")
	if secretKey == "" {
		return nil, fmt.Errorf("ALPACA_SECRET_KEY environment variable is not set")
	}

	dataDir := os.Getenv("NEWS_DATA_DIR")
	if dataDir == "" {
		dataDir = defaultDataDir
	}

	return &Config{
		APIKeyID:     keyID,
		APISecretKey: secretKey,
		DataDir:      dataDir,
	}, nil
}

// DataDirFromEnv returns the archive directory without requiring credentials.
// Used by read-only consumers of the archive.
func DataDirFromEnv() string {
	if dir := os.Getenv("NEWS_DATA_DIR"); dir != "" {
		return dir
	}
	return defaultDataDir
}
