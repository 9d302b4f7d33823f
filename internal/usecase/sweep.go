package usecase

import (
	"context"

	"pickup-options-service/internal/pkg/errs"

	"github.com/google/uuid"
)

// PointChange describes one pickup-point (or vendor-authorization) update
// feeding the invalidation sweep. PreviousStoreIDs carries the store
// membership before the edit so carts in stores the point just left are
// flushed too.
type PointChange struct {
	PointID          uuid.UUID
	VendorID         uuid.UUID
	StoreIDs         []uuid.UUID
	PreviousStoreIDs []uuid.UUID
}

// sweepVisited tracks what a single sweep invocation has already handled.
// It is created per call and threaded through explicitly; nothing about a
// sweep survives the invocation.
type sweepVisited struct {
	stores map[uuid.UUID]bool
	orders map[uuid.UUID]bool
}

func newSweepVisited() *sweepVisited {
	return &sweepVisited{
		stores: make(map[uuid.UUID]bool),
		orders: make(map[uuid.UUID]bool),
	}
}

// FlushChangedPoints drops cached resolutions for every cart order updated
// within the sweep window in any store the changed points touch. Each
// store and each order is processed at most once per invocation.
func (r *resolverImpl) FlushChangedPoints(ctx context.Context, changes []PointChange) error {
	if len(changes) == 0 {
		return nil
	}

	visited := newSweepVisited()
	var storeIDs []uuid.UUID
	for _, change := range changes {
		for _, id := range change.StoreIDs {
			if !visited.stores[id] {
				visited.stores[id] = true
				storeIDs = append(storeIDs, id)
			}
		}
		for _, id := range change.PreviousStoreIDs {
			if !visited.stores[id] {
				visited.stores[id] = true
				storeIDs = append(storeIDs, id)
			}
		}
	}
	if len(storeIDs) == 0 {
		return nil
	}

	since := r.clock.Now().Add(-r.sweepWindow)
	orderIDs, err := r.orders.CartOrdersUpdatedSince(ctx, storeIDs, since)
	if err != nil {
		return errs.Wrap(err, "listing cart orders for sweep")
	}

	for _, orderID := range orderIDs {
		if visited.orders[orderID] {
			continue
		}
		visited.orders[orderID] = true
		if err := r.cache.Delete(ctx, orderID); err != nil {
			return errs.Wrap(err, "flushing order availability cache")
		}
	}
	return nil
}
