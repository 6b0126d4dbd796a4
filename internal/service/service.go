package service

import (
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"sync"
	"time"

	"eggs/internal/clock"
	"eggs/internal/commands"
	"eggs/internal/config"
	"eggs/internal/crit"
	"eggs/internal/domain"
	"eggs/internal/events"
	"eggs/internal/ledger"
	"eggs/internal/upgrades"
)

// ErrInsufficientFunds is returned when a purchase costs more than the balance.
var ErrInsufficientFunds = ledger.ErrInsufficientFunds

// ErrUnknownCommand is returned by Execute for unsupported commands.
var ErrUnknownCommand = errors.New("unknown command")

// ClickResult describes a processed click.
type ClickResult struct {
	Payout  *big.Int
	Crit    bool
	Balance *big.Int
}

// GameService owns the ledger, stats and upgrade ownership. All mutation goes
// through its methods, which serialize on a single mutex.
type GameService struct {
	mu      sync.Mutex
	cfg     config.Config
	clk     clock.Clock
	rng     crit.Source
	catalog *upgrades.Catalog

	ledger        *ledger.Ledger
	base          domain.Stats
	stats         domain.Stats
	owned         domain.Ownership
	lastSettledAt time.Time
	nextEventID   uint64
}

func NewGameService(cfg config.Config, clk clock.Clock, rng crit.Source, startTime time.Time) *GameService {
	base := domain.NewStats(cfg.BasePerClick, cfg.BaseCritChance, cfg.BaseCritMult)
	return &GameService{
		cfg:           cfg,
		clk:           clk,
		rng:           rng,
		catalog:       upgrades.NewCatalog(cfg),
		ledger:        ledger.New(),
		base:          base,
		stats:         base.Clone(),
		lastSettledAt: startTime,
	}
}

func (s *GameService) GetState() domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *GameService) snapshot() domain.State {
	return domain.State{
		Balance:       s.ledger.Balance(),
		Stats:         s.stats.Clone(),
		Owned:         s.owned.Entries(),
		LastSettledAt: s.lastSettledAt,
	}
}

// Balance returns the exact decimal balance string.
func (s *GameService) Balance() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Format()
}

// GroupedBalance returns the balance with thousands separators.
func (s *GameService) GroupedBalance() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.FormatGrouped()
}

// NextCost returns the price of the next unit of kind.
func (s *GameService) NextCost(kind domain.UpgradeKind) (*big.Int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Cost(kind, s.owned.Count(kind))
}

// ProcessClick credits one click. A miss has no effect at all and draws no
// randomness; ok reports whether the click was processed.
func (s *GameService) ProcessClick(ev domain.ClickEvent) (res ClickResult, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.processClick(ev)
}

func (s *GameService) processClick(ev domain.ClickEvent) (ClickResult, bool) {
	if !ev.Hit {
		return ClickResult{}, false
	}

	isCrit := crit.Roll(s.rng, s.stats.CritChance)
	payout := new(big.Int).Set(s.stats.PerClick)
	if isCrit {
		payout = crit.Apply(payout, s.stats.CritMult)
	}
	s.ledger.Credit(payout)

	slog.Debug("click processed", "payout", payout, "crit", isCrit)
	return ClickResult{
		Payout:  payout,
		Crit:    isCrit,
		Balance: s.ledger.Balance(),
	}, true
}

// Purchase buys one unit of kind at the current catalog price, then
// recomputes stats. Pending production is settled at the old rate first,
// even when the purchase is then rejected for insufficient funds; a rejected
// purchase leaves ownership, stats and the price unchanged.
func (s *GameService) Purchase(kind domain.UpgradeKind) (uint32, *big.Int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.purchase(kind)
}

func (s *GameService) purchase(kind domain.UpgradeKind) (uint32, *big.Int, error) {
	s.settle()
	cost, err := s.catalog.Cost(kind, s.owned.Count(kind))
	if err != nil {
		return 0, nil, err
	}
	count, err := upgrades.Purchase(&s.owned, s.ledger, kind, cost)
	if err != nil {
		slog.Warn("purchase rejected", "kind", kind, "cost", cost, "balance", s.ledger.Format())
		return count, cost, err
	}
	s.stats = upgrades.Recompute(s.base, s.owned.Entries())

	slog.Info("upgrade purchased",
		"kind", kind,
		"count", count,
		"cost", cost,
		"per_click", s.stats.PerClick,
		"per_second", s.stats.PerSecond,
	)
	return count, cost, nil
}

// Settle credits passive production for every whole second elapsed since the
// last settlement and returns the minted amount.
func (s *GameService) Settle() *big.Int {
	s.mu.Lock()
	defer s.mu.Unlock()
	minted, _ := s.settle()
	return minted
}

func (s *GameService) settle() (*big.Int, time.Time) {
	from := s.lastSettledAt
	elapsedSeconds := int64(s.clk.Now().Sub(from).Seconds())
	if elapsedSeconds <= 0 {
		return new(big.Int), from
	}

	mint := new(big.Int).Mul(big.NewInt(elapsedSeconds), s.stats.PerSecond)
	s.ledger.Credit(mint)
	s.lastSettledAt = from.Add(time.Duration(elapsedSeconds) * time.Second)
	return mint, from
}

// Execute runs cmd and returns the events it produced.
func (s *GameService) Execute(cmd commands.Command) ([]events.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch c := cmd.(type) {
	case commands.SyncState:
		return []events.Event{s.event(c.ID, events.EventTypeStateSynced, events.StateSyncedData{
			State: s.snapshot(),
		})}, nil

	case commands.Click:
		res, ok := s.processClick(c.Event)
		if !ok {
			return nil, nil
		}
		return []events.Event{s.event(c.ID, events.EventTypeClickResolved, events.ClickResolvedData{
			Payout:  res.Payout,
			Crit:    res.Crit,
			Balance: res.Balance,
			WorldX:  c.Event.WorldX,
			WorldY:  c.Event.WorldY,
		})}, nil

	case *commands.Purchase:
		if c == nil {
			return nil, ErrUnknownCommand
		}
		count, cost, err := s.purchase(c.Kind)
		c.Owned = count
		if err != nil {
			return nil, fmt.Errorf("purchase %s: %w", c.Kind, err)
		}
		return []events.Event{s.event(c.ID, events.EventTypeUpgradePurchased, events.UpgradePurchasedData{
			Kind:  c.Kind,
			Count: count,
			Cost:  cost,
			Stats: s.stats.Clone(),
		})}, nil

	case *commands.Settle:
		if c == nil {
			return nil, ErrUnknownCommand
		}
		minted, from := s.settle()
		c.Minted = minted
		if minted.Sign() == 0 {
			return nil, nil
		}
		return []events.Event{s.event(c.ID, events.EventTypeProductionSettled, events.ProductionSettledData{
			Minted: minted,
			From:   from,
			To:     s.lastSettledAt,
		})}, nil
	}
	if cmd == nil {
		return nil, ErrUnknownCommand
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, cmd.Name())
}

func (s *GameService) event(commandID string, t events.EventType, data any) events.Event {
	s.nextEventID++
	return events.New(s.nextEventID, s.clk.Now(), commandID, t, data)
}
