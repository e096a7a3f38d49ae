package shop

import (
	"context"
	"log/slog"
	"sync"
	"time"

	EventBus "github.com/asaskevich/EventBus"

	"github.com/roach88/smartstock/internal/model"
	"github.com/roach88/smartstock/internal/store"
)

// TopicStateChanged is published with the new State after every mutation.
const TopicStateChanged = "state:changed"

// Repository is the persistence the Shop needs. *store.Store implements it.
type Repository interface {
	Snapshot(ctx context.Context) store.Collections
	AddEntry(ctx context.Context, e model.StockEntry) ([]model.StockEntry, error)
	AddDebt(ctx context.Context, d model.DebtEntry) ([]model.DebtEntry, error)
	DeleteDebt(ctx context.Context, id string) ([]model.DebtEntry, error)
	SaveCategories(ctx context.Context, cats []model.Category) error
	SaveProducts(ctx context.Context, prods []model.Product) error
	ReplaceCollections(ctx context.Context, c store.Collections) error
	Usage(ctx context.Context) (store.Usage, error)
}

// State is an immutable snapshot of the shop.
type State struct {
	Categories []model.Category
	Products   []model.Product
	Entries    []model.StockEntry // newest first
	Debts      []model.DebtEntry  // newest first
}

// Shop mediates between the presentation layer and the store.
type Shop struct {
	mu    sync.Mutex
	repo  Repository
	state State

	bus    EventBus.Bus
	now    func() time.Time
	ids    model.IDGenerator
	loc    *time.Location
	logger *slog.Logger
}

// Option configures a Shop.
type Option func(*Shop)

// WithClock sets the time source for new entries and debts.
func WithClock(now func() time.Time) Option {
	return func(s *Shop) { s.now = now }
}

// WithIDGenerator sets the id source for new entities.
func WithIDGenerator(g model.IDGenerator) Option {
	return func(s *Shop) { s.ids = g }
}

// WithLocation sets the calendar used for daily/weekly/monthly totals.
func WithLocation(loc *time.Location) Option {
	return func(s *Shop) { s.loc = loc }
}

// WithLogger sets the logger for mutation records.
func WithLogger(l *slog.Logger) Option {
	return func(s *Shop) { s.logger = l }
}

// New creates a Shop and loads its initial state from repo.
func New(ctx context.Context, repo Repository, opts ...Option) *Shop {
	s := &Shop{
		repo:   repo,
		bus:    EventBus.New(),
		now:    time.Now,
		ids:    model.UUIDv7Generator{},
		loc:    time.Local,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.state = stateOf(repo.Snapshot(ctx))
	return s
}

// State returns the current snapshot.
func (s *Shop) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Location returns the calendar location used for statistics.
func (s *Shop) Location() *time.Location {
	return s.loc
}

// Subscribe registers fn to receive every new State. Handlers run
// synchronously on the mutating goroutine, after the Shop lock is released.
// The returned func removes the subscription.
func (s *Shop) Subscribe(fn func(State)) (unsubscribe func()) {
	if err := s.bus.Subscribe(TopicStateChanged, fn); err != nil {
		// Only fails for non-func handlers, which the signature rules out.
		s.logger.Error("subscribe failed", "error", err)
		return func() {}
	}
	return func() {
		_ = s.bus.Unsubscribe(TopicStateChanged, fn)
	}
}

// Reload replaces the snapshot with what the store holds now.
func (s *Shop) Reload(ctx context.Context) State {
	return s.commit(func(st *State) error {
		*st = stateOf(s.repo.Snapshot(ctx))
		return nil
	})
}

// update runs fn against a copy of the current state under the lock. When fn
// succeeds the copy becomes the new state and subscribers are notified.
func (s *Shop) update(fn func(st *State) error) (State, error) {
	s.mu.Lock()
	next := s.state
	if err := fn(&next); err != nil {
		s.mu.Unlock()
		return State{}, err
	}
	s.state = next
	s.mu.Unlock()

	s.bus.Publish(TopicStateChanged, next)
	return next, nil
}

// commit is update for mutations that cannot fail.
func (s *Shop) commit(fn func(st *State) error) State {
	st, _ := s.update(fn)
	return st
}

func stateOf(c store.Collections) State {
	return State{
		Categories: c.Categories,
		Products:   c.Products,
		Entries:    c.Entries,
		Debts:      c.Debts,
	}
}
