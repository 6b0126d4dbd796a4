package events

import (
	"math/big"
	"time"

	"eggs/internal/domain"
)

// EventType describes the kind of event emitted by the game.
type EventType string

const (
	EventTypeClickResolved     EventType = "ClickResolved"
	EventTypeUpgradePurchased  EventType = "UpgradePurchased"
	EventTypeProductionSettled EventType = "ProductionSettled"
	EventTypeStateSynced       EventType = "StateSynced"
)

// ClickResolvedData is the payload for a processed click. The presentation
// layer renders Payout as a floating label, emphasized when Crit is set.
type ClickResolvedData struct {
	Payout  *big.Int
	Crit    bool
	Balance *big.Int
	WorldX  float64
	WorldY  float64
}

// PayoutText is the floating label text, e.g. "+12".
func (d ClickResolvedData) PayoutText() string {
	return "+" + d.Payout.String()
}

// UpgradePurchasedData is the payload for a completed purchase.
type UpgradePurchasedData struct {
	Kind  domain.UpgradeKind
	Count uint32
	Cost  *big.Int
	Stats domain.Stats
}

// ProductionSettledData is the payload for a passive production settlement.
type ProductionSettledData struct {
	Minted *big.Int
	From   time.Time
	To     time.Time
}

// StateSyncedData carries a snapshot that shares no memory with the game.
type StateSyncedData struct {
	State domain.State
}

// Event represents a game event produced by command execution.
type Event struct {
	ID        uint64
	At        time.Time
	CommandID string
	Type      EventType
	Data      any
}

// New constructs a new Event with the provided fields.
func New(id uint64, at time.Time, commandID string, eventType EventType, data any) Event {
	return Event{
		ID:        id,
		At:        at,
		CommandID: commandID,
		Type:      eventType,
		Data:      data,
	}
}
