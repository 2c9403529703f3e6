package logrus

import "github.com/lukasz-zimnoch/dexly/custody"

// EventService publishes trade events as log entries.
type EventService struct {
	logger custody.Logger
}

func NewEventService(logger custody.Logger) *EventService {
	return &EventService{logger.WithField("component", "events")}
}

func (es *EventService) Publish(event *custody.Event) {
	es.logger.WithFields(map[string]interface{}{
		"walletID":  event.WalletID,
		"side":      event.Side.String(),
		"assetID":   event.Asset.ID,
		"assetName": event.Asset.Name,
		"eventTime": event.Time,
	}).Infof("published trade event [%v]", event)
}
