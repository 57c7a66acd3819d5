package kafka

import (
	"time"

	"github.com/google/uuid"
)

const (
	CirculationTopic = "circulation-events"
	ReturnsTopic     = "circulation-returns"

	ReturnsConsumerGroup = "circulation-returns-group"
)

type EventType string

const (
	EventCheckedOut   EventType = "CHECKED_OUT"
	EventCheckedIn    EventType = "CHECKED_IN"
	EventHoldPlaced   EventType = "HOLD_PLACED"
	EventHoldPromoted EventType = "HOLD_PROMOTED"
)

type Event struct {
	EventUid  uuid.UUID `json:"eventUid"`
	Type      EventType `json:"type"`
	AssetID   int64     `json:"assetId"`
	CardID    int64     `json:"cardId"`
	Timestamp time.Time `json:"timestamp"`
}

func NewEvent(typ EventType, assetID, cardID int64, ts time.Time) Event {
	return Event{
		EventUid:  uuid.New(),
		Type:      typ,
		AssetID:   assetID,
		CardID:    cardID,
		Timestamp: ts,
	}
}

// ReturnRequest is a drop-box return read from ReturnsTopic.
type ReturnRequest struct {
	AssetID    int64     `json:"assetId"`
	ReturnedAt time.Time `json:"returnedAt"`
}
