package usecase

import (
	"context"
	"time"

	"pickup-options-service/internal/domain/pickup"

	"github.com/google/uuid"
)

// PointRepository loads pickup-point profiles. Implementations return only
// active points and must produce a stable order for identical inputs.
type PointRepository interface {
	// FindByIDsAndStores loads active points whose id is listed and whose
	// store membership intersects storeIDs.
	FindByIDsAndStores(ctx context.Context, ids []uuid.UUID, storeIDs []uuid.UUID) ([]pickup.PickupPoint, error)
	// FindByOwnersAndStores loads active points owned by any of the
	// vendors with store membership in storeIDs.
	FindByOwnersAndStores(ctx context.Context, ownerIDs []uuid.UUID, storeIDs []uuid.UUID) ([]pickup.PickupPoint, error)
}

// VendorDirectory answers vendor eligibility questions.
type VendorDirectory interface {
	HasPickupRole(ctx context.Context, vendorID uuid.UUID) (bool, error)
	IsBlocked(ctx context.Context, vendorID uuid.UUID) (bool, error)
}

// OrderRepository exposes the order facts the resolver needs.
type OrderRepository interface {
	// StoreID returns the store the order belongs to.
	StoreID(ctx context.Context, orderID uuid.UUID) (uuid.UUID, error)
	// CartOrdersUpdatedSince lists cart (not yet placed) orders in the
	// given stores changed after the given instant.
	CartOrdersUpdatedSince(ctx context.Context, storeIDs []uuid.UUID, since time.Time) ([]uuid.UUID, error)
}

// Snapshots holds both candidate-set states for one configuration hash.
// Original is the pre-hours-filter baseline, written once per (order,
// hash); Current is the latest post-filter result.
type Snapshots struct {
	Original pickup.CandidateSet `json:"original"`
	Current  pickup.CandidateSet `json:"current"`
}

// CacheEntry is the whole cached value for one order: configuration hash
// to snapshots.
type CacheEntry map[string]Snapshots

// AvailabilityCache is the order-scoped keyed blob store. Get on a missing
// order returns an empty entry, not an error; any storage failure is a
// hard error since resolution cannot proceed without a consistent
// baseline.
type AvailabilityCache interface {
	Get(ctx context.Context, orderID uuid.UUID) (CacheEntry, error)
	Set(ctx context.Context, orderID uuid.UUID, entry CacheEntry) error
	Delete(ctx context.Context, orderID uuid.UUID) error
}
