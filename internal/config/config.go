// Package config loads the validator node configuration from defaults, a yaml file and the environment
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/UnendingLoop/ValidateOutput/internal/logger"
	"gopkg.in/yaml.v3"
)

const (
	DefaultAddress         = ":8080"
	DefaultMaxContentBytes = 10 << 20
	MaxContentBytesLimit   = 1 << 30

	EnvConfig          = "VALIDATOR_NODE_CONFIG"
	EnvAddress         = "VALIDATOR_NODE_ADDRESS"
	EnvMaxContentBytes = "VALIDATOR_NODE_MAX_CONTENT_BYTES"
	EnvLogLevel        = "VALIDATOR_NODE_LOG_LEVEL"
)

type NodeConfig struct {
	Address         string `yaml:"address"`
	MaxContentBytes int64  `yaml:"max_content_bytes"`
	LogLevel        string `yaml:"log_level"`
}

func DefaultConfig() *NodeConfig {
	return &NodeConfig{
		Address:         DefaultAddress,
		MaxContentBytes: DefaultMaxContentBytes,
		LogLevel:        logger.InfoLevel,
	}
}

// Load reads the config file at path (or $VALIDATOR_NODE_CONFIG when path is empty),
// then applies environment overrides. A missing file is an error only for an explicit path.
func Load(path string, getenv func(string) string) (*NodeConfig, error) {
	if getenv == nil {
		getenv = os.Getenv
	}
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = getenv(EnvConfig)
	}
	if path != "" {
		err := loadFromFile(cfg, path)
		if err != nil && (explicit || !errors.Is(err, os.ErrNotExist)) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := loadFromEnv(cfg, getenv); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func loadFromFile(cfg *NodeConfig, path string) error {
	// #nosec G304 - path is provided by the operator
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func loadFromEnv(cfg *NodeConfig, getenv func(string) string) error {
	if addr := getenv(EnvAddress); addr != "" {
		cfg.Address = addr
	}

	if limit := getenv(EnvMaxContentBytes); limit != "" {
		n, err := strconv.ParseInt(limit, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvMaxContentBytes, err)
		}
		cfg.MaxContentBytes = n
	}

	if level := getenv(EnvLogLevel); level != "" {
		cfg.LogLevel = level
	}
	return nil
}

func validate(cfg *NodeConfig) error {
	if cfg.Address == "" {
		return errors.New("empty node address")
	}
	if cfg.MaxContentBytes <= 0 {
		return fmt.Errorf("max_content_bytes must be positive, got %d", cfg.MaxContentBytes)
	}
	if cfg.MaxContentBytes > MaxContentBytesLimit {
		return fmt.Errorf("max_content_bytes must not exceed %d, got %d", MaxContentBytesLimit, cfg.MaxContentBytes)
	}
	return nil
}
