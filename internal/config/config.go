package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	defaultGRPCAddr = ":8080"
	defaultLogLevel = "info"
)

// Config holds application configuration
type Config struct {
	GRPCAddr       string
	LogLevel       zapcore.Level
	LogDevelopment bool
}

// Load reads configuration from environment variables.
// A .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	// Missing .env is fine
	_ = godotenv.Load()

	addr := os.Getenv("GRPC_ADDR")
	if addr == "" {
		addr = defaultGRPCAddr
	}

	levelStr := os.Getenv("LOG_LEVEL")
	if levelStr == "" {
		levelStr = defaultLogLevel
	}
	level, err := zapcore.ParseLevel(levelStr)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", levelStr, err)
	}

	development := false
	if devStr := os.Getenv("LOG_DEVELOPMENT"); devStr != "" {
		development, err = strconv.ParseBool(devStr)
		if err != nil {
			return nil, fmt.Errorf("invalid LOG_DEVELOPMENT %q: %w", devStr, err)
		}
	}

	return &Config{
		GRPCAddr:       addr,
		LogLevel:       level,
		LogDevelopment: development,
	}, nil
}

// NewLogger builds the zap logger described by the config
func (c *Config) NewLogger() (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if c.LogDevelopment {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(c.LogLevel)
	return zc.Build()
}
