package custody

import (
	"fmt"
	"time"
)

type Event struct {
	WalletID string
	Side     Side
	Asset    Asset
	Time     time.Time
}

func NewTradeEvent(walletID string, side Side, asset Asset) *Event {
	return &Event{
		WalletID: walletID,
		Side:     side,
		Asset:    asset,
		Time:     time.Now(),
	}
}

func (e *Event) String() string {
	return fmt.Sprintf(
		"%v %v on wallet %v",
		e.Side.String(),
		e.Asset.String(),
		e.WalletID,
	)
}

type EventService interface {
	Publish(event *Event)
}

type noopEventService struct{}

func (noopEventService) Publish(*Event) {}
