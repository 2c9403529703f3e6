package main

import (
	"fmt"
	"github.com/lukasz-zimnoch/dexly/custody"
	"github.com/lukasz-zimnoch/dexly/custody/logrus"
	"github.com/lukasz-zimnoch/dexly/custody/printer"
	"github.com/lukasz-zimnoch/dexly/custody/uuid"
	"os"
)

func main() {
	config, err := readConfig()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "could not read config: [%v]", err)
		os.Exit(1)
	}

	logger, err := logrus.ConfigureStandardLogger(
		config.Logging.Format,
		config.Logging.Level,
	)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "could not configure logger: [%v]", err)
		os.Exit(1)
	}

	exchange, err := custody.NewExchange(
		logrus.NewEventService(logger),
		newWallets(config.Wallets, &uuid.IDService{})...,
	)
	if err != nil {
		logger.Fatalf("could not create exchange: [%v]", err)
	}

	failed := runTrades(exchange, config.Trades, logger)

	for _, wallet := range exchange.Wallets() {
		logger.WithField("walletID", wallet.ID()).Infof(
			"wallet holdings: [%v]",
			wallet.Holdings(),
		)
	}

	summary := &printer.Log{
		Printer: printer.AnalyticsLog{
			Message: fmt.Sprintf(
				"%v trades executed, %v failed",
				len(config.Trades)-failed,
				failed,
			),
		},
		Logger: logger,
	}
	summary.Execute()
}

func newWallets(ids []string, idService custody.IDService) []*custody.Wallet {
	wallets := make([]*custody.Wallet, 0, len(ids))

	for _, id := range ids {
		if len(id) == 0 {
			id = idService.NewID().String()
		}

		wallets = append(wallets, custody.NewWallet(id))
	}

	return wallets
}

// runTrades executes the trades in order and returns the number of trades
// that did not go through.
func runTrades(
	trader custody.Trader,
	trades []Trade,
	logger custody.Logger,
) int {
	failed := 0

	for _, trade := range trades {
		tradeLogger := logger.WithFields(map[string]interface{}{
			"walletID": trade.Wallet,
			"side":     trade.Side,
		})

		side, err := custody.ParseSide(trade.Side)
		if err != nil {
			tradeLogger.Warningf("skipping trade: [%v]", err)
			failed++
			continue
		}

		asset := custody.Asset{ID: trade.AssetID, Name: trade.AssetName}

		err = custody.Trade(trader, side, asset, trade.Wallet)
		if err != nil {
			failed++
		}

		custody.DispatchResult(
			err,
			trade.Wallet,
			asset,
			&tradeReporter{tradeLogger},
		)
	}

	return failed
}

type tradeReporter struct {
	logger custody.Logger
}

func (tr *tradeReporter) OnSuccess(walletID string, asset custody.Asset) {
	tr.logger.Infof("trade of [%v] completed", asset)
}

func (tr *tradeReporter) OnWalletNotFound(walletID string) {
	tr.logger.Warningf("wallet [%v] does not exist", walletID)
}

func (tr *tradeReporter) OnAssetNotHeld(walletID string, asset custody.Asset) {
	tr.logger.Warningf("wallet [%v] does not hold [%v]", walletID, asset)
}

func (tr *tradeReporter) OnError(err error) {
	tr.logger.Errorf("trade failed: [%v]", err)
}
