// Package inventory holds the canonical inventory state of the distributor:
// the product catalog, sales and incoming deliveries. Every command swaps in
// a new snapshot under a single write lock, persists it as one blob and
// publishes an inventory event. Queries are recomputed on each call.
package inventory

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Pesokrava/beverage_stock/internal/domain"
	"github.com/Pesokrava/beverage_stock/internal/pkg/logger"
)

// DefaultSnapshotKey is the blob name the state is persisted under
const DefaultSnapshotKey = "inventory-storage"

// state is an immutable snapshot; commands build a new one and swap it in
type state struct {
	products []domain.Product
	sales    []domain.Sale
	incoming []domain.IncomingEntry
}

// Store is the single source of truth for inventory data
type Store struct {
	mu  sync.RWMutex
	cur *state

	repo      domain.SnapshotRepository
	publisher EventPublisher
	logger    *logger.Logger

	key   string
	now   func() time.Time
	newID func() string
}

// Option configures a Store
type Option func(*Store)

// WithClock replaces time.Now, mostly for tests
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator replaces the UUIDv7 generator used for sale and delivery ids
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// WithSnapshotKey changes the blob name used for persistence
func WithSnapshotKey(key string) Option {
	return func(s *Store) { s.key = key }
}

// NewStore creates an empty store. repo and publisher may be nil, in which
// case the state lives only in memory and no events are emitted.
func NewStore(repo domain.SnapshotRepository, publisher EventPublisher, log *logger.Logger, opts ...Option) *Store {
	s := &Store{
		cur:       &state{},
		repo:      repo,
		publisher: publisher,
		logger:    log,
		key:       DefaultSnapshotKey,
		now:       time.Now,
		newID:     newTimeOrderedID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func newTimeOrderedID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Load replaces the in-memory state with the persisted snapshot.
// A missing snapshot leaves the store empty.
func (s *Store) Load(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}

	data, err := s.repo.Load(ctx, s.key)
	if errors.Is(err, domain.ErrNotFound) {
		s.logger.Infof("No persisted snapshot under %q, starting empty", s.key)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}

	doc, err := DecodeSnapshot(data)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.cur = &state{
		products: doc.Products,
		sales:    doc.Sales,
		incoming: doc.IncomingHistory,
	}
	s.mu.Unlock()

	s.logger.WithFields(map[string]any{
		"products": len(doc.Products),
		"sales":    len(doc.Sales),
		"incoming": len(doc.IncomingHistory),
	}).Info("Inventory snapshot loaded")

	return nil
}

// commit swaps in next, persists it and queues an event. Callers hold s.mu.
func (s *Store) commit(ctx context.Context, next *state, event *InventoryEvent) {
	s.cur = next
	s.persist(ctx, next)
	if event != nil {
		event.Timestamp = s.now()
		s.publishEvent(*event)
	}
}

// persist writes the snapshot. Failures are logged and never reach the caller.
func (s *Store) persist(ctx context.Context, st *state) {
	if s.repo == nil {
		return
	}

	data, err := EncodeSnapshot(Snapshot{
		Products:        st.products,
		Sales:           st.sales,
		IncomingHistory: st.incoming,
	})
	if err != nil {
		s.logger.Error("Failed to encode inventory snapshot", err)
		return
	}

	if err := s.repo.Save(ctx, s.key, data); err != nil {
		s.logger.Warnf("Failed to persist inventory snapshot %q: %v", s.key, err)
	}
}

// mutateProduct applies fn to a copy of the product with the given id and
// commits the result. fn returns the event type to publish.
func (s *Store) mutateProduct(ctx context.Context, productID string, fn func(p *domain.Product) (string, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := indexOfProduct(s.cur.products, productID)
	if idx < 0 {
		return fmt.Errorf("product %q: %w", productID, domain.ErrNotFound)
	}

	updated := s.cur.products[idx].Clone()
	eventType, err := fn(&updated)
	if err != nil {
		return err
	}
	updated.LastUpdated = s.now()

	products := slices.Clone(s.cur.products)
	products[idx] = updated

	s.commit(ctx, &state{
		products: products,
		sales:    s.cur.sales,
		incoming: s.cur.incoming,
	}, &InventoryEvent{
		EventType:  eventType,
		ProductIDs: []string{productID},
		Products:   []domain.Product{updated.Clone()},
	})

	return nil
}

func indexOfProduct(products []domain.Product, id string) int {
	return slices.IndexFunc(products, func(p domain.Product) bool { return p.ID == id })
}

func indexOfVariant(variants []domain.ProductVariant, volume string) int {
	return slices.IndexFunc(variants, func(v domain.ProductVariant) bool { return v.Volume == volume })
}
