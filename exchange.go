package custody

import (
	"errors"
	"fmt"
)

var (
	ErrWalletNotFound    = errors.New("wallet not found")
	ErrAssetNotHeld      = errors.New("asset not held")
	ErrDuplicateWalletID = errors.New("duplicate wallet id")
)

type Buyer interface {
	Buy(asset Asset, walletID string) error
}

type Seller interface {
	Sell(asset Asset, walletID string) error
}

type WalletFinder interface {
	Find(walletID string) (*Wallet, bool)
}

type Trader interface {
	Buyer
	Seller
}

type ExchangeService interface {
	Trader
	WalletFinder
}

// Exchange routes buy and sell requests to wallets by ID. The wallet
// collection is fixed at construction time.
type Exchange struct {
	wallets      []*Wallet
	eventService EventService
}

// NewExchange fails with ErrDuplicateWalletID if two wallets share an ID.
// The event service is optional.
func NewExchange(
	eventService EventService,
	wallets ...*Wallet,
) (*Exchange, error) {
	seen := make(map[string]bool, len(wallets))

	for _, wallet := range wallets {
		if seen[wallet.ID()] {
			return nil, fmt.Errorf(
				"could not register wallet [%v]: [%w]",
				wallet.ID(),
				ErrDuplicateWalletID,
			)
		}

		seen[wallet.ID()] = true
	}

	if eventService == nil {
		eventService = noopEventService{}
	}

	registered := make([]*Wallet, len(wallets))
	copy(registered, wallets)

	return &Exchange{
		wallets:      registered,
		eventService: eventService,
	}, nil
}

func (e *Exchange) Find(walletID string) (*Wallet, bool) {
	for _, wallet := range e.wallets {
		if wallet.ID() == walletID {
			return wallet, true
		}
	}

	return nil, false
}

func (e *Exchange) Buy(asset Asset, walletID string) error {
	wallet, exists := e.Find(walletID)
	if !exists {
		return fmt.Errorf(
			"could not buy [%v] for wallet [%v]: [%w]",
			asset.ID,
			walletID,
			ErrWalletNotFound,
		)
	}

	wallet.Add(asset)

	e.eventService.Publish(NewTradeEvent(walletID, SideBuy, asset))

	return nil
}

func (e *Exchange) Sell(asset Asset, walletID string) error {
	wallet, exists := e.Find(walletID)
	if !exists {
		return fmt.Errorf(
			"could not sell [%v] from wallet [%v]: [%w]",
			asset.ID,
			walletID,
			ErrWalletNotFound,
		)
	}

	if removed := wallet.Remove(asset); !removed {
		return fmt.Errorf(
			"could not sell [%v] from wallet [%v]: [%w]",
			asset.ID,
			walletID,
			ErrAssetNotHeld,
		)
	}

	e.eventService.Publish(NewTradeEvent(walletID, SideSell, asset))

	return nil
}

func (e *Exchange) Wallets() []*Wallet {
	snapshot := make([]*Wallet, len(e.wallets))
	copy(snapshot, e.wallets)

	return snapshot
}

// Trade routes the asset to Buy or Sell depending on the side.
func Trade(
	trader Trader,
	side Side,
	asset Asset,
	walletID string,
) error {
	switch side {
	case SideBuy:
		return trader.Buy(asset, walletID)
	case SideSell:
		return trader.Sell(asset, walletID)
	default:
		return fmt.Errorf("unknown side: [%v]", int(side))
	}
}
