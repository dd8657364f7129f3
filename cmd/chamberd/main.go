package main

import (
	"encoding/hex"
	"flag"
	"log/slog"
	"math/big"
	"os"

	"github.com/chamberprotocol/chamber/cmd/internal/passphrase"
	"github.com/chamberprotocol/chamber/config"
	"github.com/chamberprotocol/chamber/crypto"
	"github.com/chamberprotocol/chamber/native/chamber"
	"github.com/chamberprotocol/chamber/native/registry"
	"github.com/chamberprotocol/chamber/observability/logging"
)

const operatorPassEnv = "CHAMBERD_OPERATOR_PASS"

func main() {
	configPath := flag.String("config", "./chamberd.toml", "path to the node configuration file")
	flag.Parse()

	logger := logging.Setup("chamberd", "demo")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load configuration", "error", err.Error())
		os.Exit(1)
	}
	if err := config.ValidateConfig(cfg.Board); err != nil {
		logger.Error("invalid board policy", "error", err.Error())
		os.Exit(1)
	}

	operatorKey, err := loadOperatorKey(cfg, logger)
	if err != nil {
		logger.Error("failed to load operator key", "error", err.Error())
		os.Exit(1)
	}
	operator := operatorKey.PubKey().Address()
	logger.Info("chamberd starting", "operator", operator.String(), "listen", cfg.ListenAddress)

	owners := chamber.NewStaticOwnerRegistry()
	asset := chamber.NewLedgerAsset()

	reg := registry.NewEngine()

	var assetAddr, nftAddr [20]byte
	copy(assetAddr[:], operator.Bytes())
	nftAddr[19] = 0x01

	var creator [20]byte
	copy(creator[:], operator.Bytes())

	c, err := reg.Create(creator, assetAddr, nftAddr, cfg.Board.InitialSeats, "Demo Chamber", "DCHB", owners, asset)
	if err != nil {
		logger.Error("failed to create demo chamber", "error", err.Error())
		os.Exit(1)
	}

	var director [20]byte
	copy(director[:], operator.Bytes())
	owners.SetOwner(1, director)
	asset.Credit(director, 1_000_000)

	shares, err := c.Deposit(director, director, big.NewInt(1_000_000))
	if err != nil {
		logger.Error("demo deposit failed", "error", err.Error())
		os.Exit(1)
	}
	logger.Info("demo chamber ready",
		slog.String("chamber", chamberAddressString(c)),
		slog.String("shares_minted", shares.String()),
	)
}

// loadOperatorKey resolves the operator's signing key from the configured
// keystore, falling back to the raw hex key for the first run and migrating
// it into the keystore so subsequent starts never touch the plaintext value.
func loadOperatorKey(cfg *config.Config, logger *slog.Logger) (*crypto.PrivateKey, error) {
	if cfg.OperatorKeystorePath == "" {
		keyBytes, err := hex.DecodeString(cfg.OperatorKey)
		if err != nil {
			return nil, err
		}
		return crypto.PrivateKeyFromBytes(keyBytes)
	}

	passSource := passphrase.NewSource(operatorPassEnv)

	if _, err := os.Stat(cfg.OperatorKeystorePath); err == nil {
		pass, err := passSource.Get()
		if err != nil {
			return nil, err
		}
		return crypto.LoadFromKeystore(cfg.OperatorKeystorePath, pass)
	}

	keyBytes, err := hex.DecodeString(cfg.OperatorKey)
	if err != nil {
		return nil, err
	}
	key, err := crypto.PrivateKeyFromBytes(keyBytes)
	if err != nil {
		return nil, err
	}

	pass, err := passSource.Get()
	if err != nil {
		return nil, err
	}
	if err := crypto.SaveToKeystore(cfg.OperatorKeystorePath, key, pass); err != nil {
		return nil, err
	}
	logger.Info("migrated operator key into keystore", "path", cfg.OperatorKeystorePath)
	return key, nil
}

func chamberAddressString(c *chamber.Chamber) string {
	addr, err := crypto.NewAddress(crypto.ChamberPrefix, c.Address[:])
	if err != nil {
		return ""
	}
	return addr.String()
}
