package usecase

import (
	"context"
	"errors"
	"time"

	"pickup-options-service/internal/domain/pickup"
	"pickup-options-service/internal/domain/schedule"
	"pickup-options-service/internal/infra"
	"pickup-options-service/internal/pkg/clock"
	"pickup-options-service/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrOrderNotFound marks resolution attempts against an order id the order
// store does not know.
var ErrOrderNotFound = errors.New("order not found")

// PickupResolution is the surface exposed to checkout and rate
// calculation. An empty candidate set means "no pickup available" and is
// never an error.
type PickupResolution interface {
	// ResolveAddresses returns the cached current snapshot for the config,
	// or runs the candidate selector and caches the result. No hours
	// filtering happens here.
	ResolveAddresses(ctx context.Context, orderID, storeID uuid.UUID, cfg pickup.ResolutionConfig) (pickup.CandidateSet, error)
	// ResolveOpenAddresses filters the original snapshot through the
	// open-now evaluator, persisting a new current snapshot only when the
	// result changed.
	ResolveOpenAddresses(ctx context.Context, orderID uuid.UUID, cfg pickup.ResolutionConfig) (pickup.CandidateSet, error)
	// InvalidateOrder drops every cached hash for the order (order placed
	// or deleted).
	InvalidateOrder(ctx context.Context, orderID uuid.UUID) error
	// FlushChangedPoints invalidates recent cart orders in every store
	// touched by the changed points.
	FlushChangedPoints(ctx context.Context, changes []PointChange) error
}

type resolverImpl struct {
	selector    *CandidateSelector
	cache       AvailabilityCache
	orders      OrderRepository
	clock       clock.Clock
	requesterTZ *time.Location
	sweepWindow time.Duration
}

func NewResolver(
	selector *CandidateSelector,
	cache AvailabilityCache,
	orders OrderRepository,
	clk clock.Clock,
	requesterTZ *time.Location,
	sweepWindow time.Duration,
) PickupResolution {
	if requesterTZ == nil {
		requesterTZ = time.UTC
	}
	return &resolverImpl{
		selector:    selector,
		cache:       cache,
		orders:      orders,
		clock:       clk,
		requesterTZ: requesterTZ,
		sweepWindow: sweepWindow,
	}
}

func (r *resolverImpl) ResolveAddresses(ctx context.Context, orderID, storeID uuid.UUID, cfg pickup.ResolutionConfig) (pickup.CandidateSet, error) {
	entry, err := r.cache.Get(ctx, orderID)
	if err != nil {
		return pickup.CandidateSet{}, errs.Wrap(err, "reading availability cache")
	}
	if entry == nil {
		entry = CacheEntry{}
	}
	snap := entry[cfg.Hash]
	if !snap.Current.IsEmpty() {
		return snap.Current, nil
	}

	set, err := r.selector.Select(ctx, []uuid.UUID{storeID}, cfg)
	if err != nil {
		return pickup.CandidateSet{}, err
	}
	if set.IsEmpty() {
		return set, nil
	}

	// The original baseline is written once per (order, hash) and never
	// overwritten. A re-select after the hours filter emptied the current
	// snapshot only refreshes the current side.
	if snap.Original.IsEmpty() {
		snap.Original = set
	}
	snap.Current = set
	entry[cfg.Hash] = snap
	if err := r.cache.Set(ctx, orderID, entry); err != nil {
		return pickup.CandidateSet{}, errs.Wrap(err, "writing availability cache")
	}
	return set, nil
}

func (r *resolverImpl) ResolveOpenAddresses(ctx context.Context, orderID uuid.UUID, cfg pickup.ResolutionConfig) (pickup.CandidateSet, error) {
	entry, err := r.cache.Get(ctx, orderID)
	if err != nil {
		return pickup.CandidateSet{}, errs.Wrap(err, "reading availability cache")
	}
	if entry == nil {
		entry = CacheEntry{}
	}

	snap, ok := entry[cfg.Hash]
	if !ok || snap.Original.IsEmpty() {
		storeID, err := r.orders.StoreID(ctx, orderID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return pickup.CandidateSet{}, errs.Mark(err, ErrOrderNotFound)
			}
			return pickup.CandidateSet{}, errs.Wrap(err, "resolving order store")
		}
		set, err := r.selector.Select(ctx, []uuid.UUID{storeID}, cfg)
		if err != nil {
			return pickup.CandidateSet{}, err
		}
		if set.IsEmpty() {
			return set, nil
		}
		snap = Snapshots{Original: set, Current: set}
		entry[cfg.Hash] = snap
		if err := r.cache.Set(ctx, orderID, entry); err != nil {
			return pickup.CandidateSet{}, errs.Wrap(err, "writing availability cache")
		}
	}

	filtered := r.filterOpen(snap.Original, cfg)

	// Persist only on change; rewriting an identical current snapshot is
	// pointless churn on the blob store.
	if !filtered.Equal(snap.Current) {
		entry[cfg.Hash] = Snapshots{Original: snap.Original, Current: filtered}
		if err := r.cache.Set(ctx, orderID, entry); err != nil {
			return pickup.CandidateSet{}, errs.Wrap(err, "writing availability cache")
		}
	}
	return filtered, nil
}

func (r *resolverImpl) filterOpen(set pickup.CandidateSet, cfg pickup.ResolutionConfig) pickup.CandidateSet {
	batch := schedule.NewBatch(r.clock.Now(), r.requesterTZ)
	filtered := pickup.NewCandidateSet()
	for _, c := range set.Candidates() {
		if batch.Open(c.Hours, c.Timezone, cfg.Policy, cfg.LookaheadDays) {
			filtered.Add(c)
		}
	}
	return filtered
}

func (r *resolverImpl) InvalidateOrder(ctx context.Context, orderID uuid.UUID) error {
	if err := r.cache.Delete(ctx, orderID); err != nil {
		return errs.Wrap(err, "invalidating availability cache")
	}
	return nil
}
