package main

import (
	"github.com/sherifabdlnaby/configuro"
)

// Config values can be set using either environment variables with `CONFIG_`
// prefix or config.yml file placed in working directory.
// See https://github.com/sherifabdlnaby/configuro.
type Config struct {
	Logging Logging
	// Empty wallet IDs get a generated one.
	Wallets []string
	Trades  []Trade
}

type Logging struct {
	Level  string
	Format string
}

type Trade struct {
	Side      string
	Wallet    string
	AssetID   string
	AssetName string
}

func readConfig() (*Config, error) {
	loader, err := configuro.NewConfig()
	if err != nil {
		return nil, err
	}

	// Default config values.
	config := &Config{
		Logging: Logging{
			Level: "info",
		},
		Wallets: []string{"w1", "w2"},
		Trades: []Trade{
			{Side: "BUY", Wallet: "w1", AssetID: "BTC", AssetName: "Bitcoin"},
			{Side: "SELL", Wallet: "w1", AssetID: "BTC", AssetName: "Bitcoin"},
			{Side: "BUY", Wallet: "nonexistent", AssetID: "ETH", AssetName: "Ethereum"},
		},
	}

	err = loader.Load(config)
	if err != nil {
		return nil, err
	}

	err = loader.Validate(config)
	if err != nil {
		return nil, err
	}

	return config, nil
}
