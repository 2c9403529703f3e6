package custody

import (
	"errors"
	"fmt"
	"sync"
	"testing"
)

func TestNewExchange_DuplicateWalletID(t *testing.T) {
	_, err := NewExchange(nil, NewWallet("w1"), NewWallet("w2"), NewWallet("w1"))

	if !errors.Is(err, ErrDuplicateWalletID) {
		t.Errorf(
			"unexpected error\n"+
				"expected: [%v]\n"+
				"actual:   [%v]",
			ErrDuplicateWalletID,
			err,
		)
	}
}

func TestExchange_Find(t *testing.T) {
	w1 := NewWallet("w1")
	w2 := NewWallet("w2")
	exchange := newExchange(t, nil, w1, w2)

	wallet, exists := exchange.Find("w2")
	if !exists {
		t.Fatalf("expected wallet [w2] to be found")
	}

	if wallet != w2 {
		t.Errorf(
			"unexpected wallet\n"+
				"expected: [%v]\n"+
				"actual:   [%v]",
			w2.ID(),
			wallet.ID(),
		)
	}

	if _, exists := exchange.Find("nonexistent"); exists {
		t.Errorf("expected wallet [nonexistent] not to be found")
	}
}

func TestExchange_Buy(t *testing.T) {
	w1 := NewWallet("w1")
	w2 := NewWallet("w2")
	eventService := &recordingEventService{}
	exchange := newExchange(t, eventService, w1, w2)

	if err := exchange.Buy(bitcoin, "w1"); err != nil {
		t.Fatal(err)
	}

	assertHoldings(t, []Asset{bitcoin}, w1.Holdings())
	assertHoldings(t, []Asset{}, w2.Holdings())

	assertEvents(t, []string{"BUY BTC (Bitcoin) on wallet w1"}, eventService)
}

func TestExchange_Sell(t *testing.T) {
	w1 := NewWallet("w1")
	w2 := NewWallet("w2")
	eventService := &recordingEventService{}
	exchange := newExchange(t, eventService, w1, w2)

	if err := exchange.Buy(bitcoin, "w1"); err != nil {
		t.Fatal(err)
	}

	if err := exchange.Sell(bitcoin, "w1"); err != nil {
		t.Fatal(err)
	}

	assertHoldings(t, []Asset{}, w1.Holdings())
	assertHoldings(t, []Asset{}, w2.Holdings())

	assertEvents(
		t,
		[]string{
			"BUY BTC (Bitcoin) on wallet w1",
			"SELL BTC (Bitcoin) on wallet w1",
		},
		eventService,
	)
}

func TestExchange_Buy_WalletNotFound(t *testing.T) {
	w1 := NewWallet("w1")
	w2 := NewWallet("w2")
	eventService := &recordingEventService{}
	exchange := newExchange(t, eventService, w1, w2)

	err := exchange.Buy(bitcoin, "nonexistent")
	if !errors.Is(err, ErrWalletNotFound) {
		t.Errorf(
			"unexpected error\n"+
				"expected: [%v]\n"+
				"actual:   [%v]",
			ErrWalletNotFound,
			err,
		)
	}

	assertHoldings(t, []Asset{}, w1.Holdings())
	assertHoldings(t, []Asset{}, w2.Holdings())

	assertEvents(t, []string{}, eventService)
}

func TestExchange_Sell_WalletNotFound(t *testing.T) {
	exchange := newExchange(t, nil, NewWallet("w1"))

	err := exchange.Sell(bitcoin, "nonexistent")
	if !errors.Is(err, ErrWalletNotFound) {
		t.Errorf(
			"unexpected error\n"+
				"expected: [%v]\n"+
				"actual:   [%v]",
			ErrWalletNotFound,
			err,
		)
	}
}

func TestExchange_Sell_AssetNotHeld(t *testing.T) {
	w1 := NewWallet("w1")
	eventService := &recordingEventService{}
	exchange := newExchange(t, eventService, w1)

	w1.Add(ethereum)

	err := exchange.Sell(bitcoin, "w1")
	if !errors.Is(err, ErrAssetNotHeld) {
		t.Errorf(
			"unexpected error\n"+
				"expected: [%v]\n"+
				"actual:   [%v]",
			ErrAssetNotHeld,
			err,
		)
	}

	assertHoldings(t, []Asset{ethereum}, w1.Holdings())

	assertEvents(t, []string{}, eventService)
}

func TestExchange_ConcurrentBuy(t *testing.T) {
	w1 := NewWallet("w1")
	exchange := newExchange(t, nil, w1)

	buyersCount := 100

	var wg sync.WaitGroup
	wg.Add(buyersCount)

	for i := 0; i < buyersCount; i++ {
		go func(i int) {
			defer wg.Done()

			asset := Asset{ID: fmt.Sprintf("A%v", i), Name: "asset"}
			if err := exchange.Buy(asset, "w1"); err != nil {
				t.Error(err)
			}
		}(i)
	}

	wg.Wait()

	if len(w1.Holdings()) != buyersCount {
		t.Errorf(
			"unexpected holdings count\n"+
				"expected: [%v]\n"+
				"actual:   [%v]",
			buyersCount,
			len(w1.Holdings()),
		)
	}
}

func TestExchange_CapabilityViews(t *testing.T) {
	w1 := NewWallet("w1")
	exchange := newExchange(t, nil, w1)

	var buyer Buyer = exchange
	var seller Seller = exchange

	if err := buyer.Buy(bitcoin, "w1"); err != nil {
		t.Fatal(err)
	}

	if err := seller.Sell(bitcoin, "w1"); err != nil {
		t.Fatal(err)
	}

	assertHoldings(t, []Asset{}, w1.Holdings())
}

func TestTrade(t *testing.T) {
	w1 := NewWallet("w1")
	exchange := newExchange(t, nil, w1)

	if err := Trade(exchange, SideBuy, bitcoin, "w1"); err != nil {
		t.Fatal(err)
	}

	if err := Trade(exchange, SideBuy, ethereum, "w1"); err != nil {
		t.Fatal(err)
	}

	if err := Trade(exchange, SideSell, bitcoin, "w1"); err != nil {
		t.Fatal(err)
	}

	assertHoldings(t, []Asset{ethereum}, w1.Holdings())

	if err := Trade(exchange, Side(42), bitcoin, "w1"); err == nil {
		t.Errorf("expected error for unknown side")
	}
}

func newExchange(
	t *testing.T,
	eventService EventService,
	wallets ...*Wallet,
) *Exchange {
	exchange, err := NewExchange(eventService, wallets...)
	if err != nil {
		t.Fatal(err)
	}

	return exchange
}

type recordingEventService struct {
	mutex  sync.Mutex
	events []*Event
}

func (res *recordingEventService) Publish(event *Event) {
	res.mutex.Lock()
	defer res.mutex.Unlock()

	res.events = append(res.events, event)
}

func assertEvents(
	t *testing.T,
	expected []string,
	eventService *recordingEventService,
) {
	eventService.mutex.Lock()
	defer eventService.mutex.Unlock()

	if len(expected) != len(eventService.events) {
		t.Fatalf(
			"unexpected events count\n"+
				"expected: [%v]\n"+
				"actual:   [%v]",
			len(expected),
			len(eventService.events),
		)
	}

	for i, event := range eventService.events {
		if event.String() != expected[i] {
			t.Errorf(
				"unexpected event [%v]\n"+
					"expected: [%v]\n"+
					"actual:   [%v]",
				i,
				expected[i],
				event.String(),
			)
		}
	}
}
