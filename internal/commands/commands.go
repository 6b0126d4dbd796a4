package commands

import (
	"math/big"

	"eggs/internal/domain"
)

// Command represents a typed command for the GameService executor.
type Command interface {
	CommandID() string
	Name() string
}

// SyncState requests a state snapshot without changing game state.
type SyncState struct {
	ID string
}

func (c SyncState) CommandID() string {
	return c.ID
}

func (c SyncState) Name() string {
	return "SyncState"
}

// Click submits one edge-triggered click. Misses are accepted and ignored.
type Click struct {
	ID    string
	Event domain.ClickEvent
}

func (c Click) CommandID() string {
	return c.ID
}

func (c Click) Name() string {
	return "Click"
}

// Purchase buys one unit of Kind at the catalog price and exposes the new
// owned count.
type Purchase struct {
	ID    string
	Kind  domain.UpgradeKind
	Owned uint32
}

func (c *Purchase) CommandID() string {
	return c.ID
}

func (c *Purchase) Name() string {
	return "Purchase"
}

// Settle requests passive production settlement and exposes the minted amount.
type Settle struct {
	ID     string
	Minted *big.Int
}

func (c *Settle) CommandID() string {
	return c.ID
}

func (c *Settle) Name() string {
	return "Settle"
}
