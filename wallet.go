package custody

import "sync"

// Wallet manages one holder's list of assets. Holdings keep insertion order
// and may contain several entries with the same asset ID.
type Wallet struct {
	id string

	holdingsMutex sync.RWMutex
	holdings      []Asset
}

func NewWallet(id string) *Wallet {
	return &Wallet{
		id:       id,
		holdings: make([]Asset, 0),
	}
}

func (w *Wallet) ID() string {
	return w.id
}

func (w *Wallet) Add(asset Asset) {
	w.holdingsMutex.Lock()
	defer w.holdingsMutex.Unlock()

	w.holdings = append(w.holdings, asset)
}

// Remove drops the first holding whose ID matches the given asset's ID.
// If there is no such holding, the wallet is left untouched and false
// is returned.
func (w *Wallet) Remove(asset Asset) bool {
	w.holdingsMutex.Lock()
	defer w.holdingsMutex.Unlock()

	for index, holding := range w.holdings {
		if holding.ID == asset.ID {
			copy(w.holdings[index:], w.holdings[index+1:])
			w.holdings[len(w.holdings)-1] = Asset{}
			w.holdings = w.holdings[:len(w.holdings)-1]
			return true
		}
	}

	return false
}

func (w *Wallet) Holdings() []Asset {
	w.holdingsMutex.RLock()
	defer w.holdingsMutex.RUnlock()

	snapshot := make([]Asset, len(w.holdings))
	copy(snapshot, w.holdings)

	return snapshot
}
