package config

import (
	"encoding/hex"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/chamberprotocol/chamber/crypto"
)

// Config is the node-level TOML configuration for a chamberd process.
type Config struct {
	ListenAddress        string `toml:"ListenAddress"`
	RPCAddress           string `toml:"RPCAddress"`
	DataDir              string `toml:"DataDir"`
	OperatorKeystorePath string `toml:"OperatorKeystorePath"`
	OperatorKey          string `toml:"OperatorKey"`
	Board                BoardPolicy
}

// Load reads the configuration at path, creating a default file (with a
// freshly generated operator key) if none exists. If an existing file is
// missing its operator key, one is generated and persisted back.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return createDefault(path)
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}

	if cfg.OperatorKey == "" {
		key, err := crypto.GeneratePrivateKey()
		if err != nil {
			return nil, err
		}
		cfg.OperatorKey = hex.EncodeToString(key.Bytes())

		f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, os.ModePerm)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		if err := toml.NewEncoder(f).Encode(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// createDefault creates and saves a default configuration file.
func createDefault(path string) (*Config, error) {
	key, err := crypto.GeneratePrivateKey()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ListenAddress:        ":6001",
		RPCAddress:           ":8080",
		DataDir:              "./chamber-data",
		OperatorKeystorePath: "./chamber-data/keystore",
		OperatorKey:          hex.EncodeToString(key.Bytes()),
		Board:                defaultBoardPolicy(),
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
