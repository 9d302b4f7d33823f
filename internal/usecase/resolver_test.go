//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"pickup-options-service/internal/domain/pickup"
	"pickup-options-service/internal/domain/schedule"
	"pickup-options-service/internal/infra"
	"pickup-options-service/internal/pkg/clock"
	"pickup-options-service/internal/usecase"
	usecasemock "pickup-options-service/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testSweepWindow = 7 * 24 * time.Hour

// Wednesday 12:00 UTC.
var resolverNow = time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC)

type resolverMocks struct {
	selectorMocks
	cache  *usecasemock.MockAvailabilityCache
	orders *usecasemock.MockOrderRepository
	clock  *clock.MockClock
}

func newResolver(t *testing.T) (usecase.PickupResolution, resolverMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := resolverMocks{
		selectorMocks: selectorMocks{
			points:  usecasemock.NewMockPointRepository(ctrl),
			vendors: usecasemock.NewMockVendorDirectory(ctrl),
		},
		cache:  usecasemock.NewMockAvailabilityCache(ctrl),
		orders: usecasemock.NewMockOrderRepository(ctrl),
		clock:  clock.NewMockClock(resolverNow),
	}
	selector := usecase.NewCandidateSelector(m.points, m.vendors)
	resolver := usecase.NewResolver(selector, m.cache, m.orders, m.clock, time.UTC, testSweepWindow)
	return resolver, m
}

// dayConfig grants vendorID every point it owns, policy day, look-ahead 1.
func dayConfig(vendorID uuid.UUID) pickup.ResolutionConfig {
	return pickup.NewResolutionConfig([]pickup.VendorGrant{
		{VendorID: vendorID, All: true},
	}, nil, false, schedule.PolicyDay, 1)
}

// openPoint is open Wednesdays around resolverNow; closedPoint is not.
func openPoint(vendorID uuid.UUID) pickup.PickupPoint {
	p := point(uuid.New(), vendorID)
	p.Hours = schedule.Schedule{{Day: 3, Start: 900, End: 1700}}
	p.Timezone = "UTC"
	return p
}

func closedPoint(vendorID uuid.UUID) pickup.PickupPoint {
	p := point(uuid.New(), vendorID)
	p.Hours = schedule.Schedule{{Day: 5, Start: 900, End: 1700}}
	p.Timezone = "UTC"
	return p
}

func (m resolverMocks) expectSelect(storeID uuid.UUID, vendorID uuid.UUID, points ...pickup.PickupPoint) {
	m.vendorEligible(vendorID)
	m.points.EXPECT().
		FindByOwnersAndStores(gomock.Any(), []uuid.UUID{vendorID}, []uuid.UUID{storeID}).
		Return(points, nil)
}

func TestResolveAddresses(t *testing.T) {
	orderID, storeID, vendorID := uuid.New(), uuid.New(), uuid.New()
	cfg := dayConfig(vendorID)

	t.Run("cache hit returns the current snapshot without selecting", func(t *testing.T) {
		resolver, m := newResolver(t)
		cached := pickup.NewCandidateSet(openPoint(vendorID).Snapshot())
		m.cache.EXPECT().Get(gomock.Any(), orderID).Return(usecase.CacheEntry{
			cfg.Hash: usecase.Snapshots{Original: cached, Current: cached},
		}, nil)

		set, err := resolver.ResolveAddresses(context.Background(), orderID, storeID, cfg)
		require.NoError(t, err)
		assert.True(t, set.Equal(cached))
	})

	t.Run("cache miss selects and seeds both snapshots", func(t *testing.T) {
		resolver, m := newResolver(t)
		p := openPoint(vendorID)

		m.cache.EXPECT().Get(gomock.Any(), orderID).Return(usecase.CacheEntry{}, nil)
		m.expectSelect(storeID, vendorID, p)
		m.cache.EXPECT().
			Set(gomock.Any(), orderID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, entry usecase.CacheEntry) error {
				snap := entry[cfg.Hash]
				assert.True(t, snap.Original.Equal(snap.Current))
				assert.Equal(t, []uuid.UUID{p.ID}, snap.Original.IDs())
				return nil
			})

		set, err := resolver.ResolveAddresses(context.Background(), orderID, storeID, cfg)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{p.ID}, set.IDs())
	})

	t.Run("nil cache entry is treated as empty", func(t *testing.T) {
		resolver, m := newResolver(t)
		p := openPoint(vendorID)

		m.cache.EXPECT().Get(gomock.Any(), orderID).Return(nil, nil)
		m.expectSelect(storeID, vendorID, p)
		m.cache.EXPECT().Set(gomock.Any(), orderID, gomock.Any()).Return(nil)

		_, err := resolver.ResolveAddresses(context.Background(), orderID, storeID, cfg)
		require.NoError(t, err)
	})

	t.Run("empty selection is returned but never cached", func(t *testing.T) {
		resolver, m := newResolver(t)

		m.cache.EXPECT().Get(gomock.Any(), orderID).Return(usecase.CacheEntry{}, nil)
		m.expectSelect(storeID, vendorID)

		set, err := resolver.ResolveAddresses(context.Background(), orderID, storeID, cfg)
		require.NoError(t, err)
		assert.True(t, set.IsEmpty())
	})

	t.Run("re-select after an emptied current keeps the original baseline", func(t *testing.T) {
		resolver, m := newResolver(t)
		first := openPoint(vendorID)
		relisted := openPoint(vendorID)
		baseline := pickup.NewCandidateSet(first.Snapshot())

		// State left behind by an open-hours run that filtered everything
		// out: non-empty original, empty current.
		m.cache.EXPECT().Get(gomock.Any(), orderID).Return(usecase.CacheEntry{
			cfg.Hash: usecase.Snapshots{Original: baseline, Current: pickup.NewCandidateSet()},
		}, nil)
		m.expectSelect(storeID, vendorID, relisted)
		m.cache.EXPECT().
			Set(gomock.Any(), orderID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, entry usecase.CacheEntry) error {
				snap := entry[cfg.Hash]
				assert.True(t, snap.Original.Equal(baseline), "original baseline must survive a re-select")
				assert.Equal(t, []uuid.UUID{relisted.ID}, snap.Current.IDs())
				return nil
			})

		set, err := resolver.ResolveAddresses(context.Background(), orderID, storeID, cfg)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{relisted.ID}, set.IDs())
	})
}

func TestResolveOpenAddresses(t *testing.T) {
	orderID, storeID, vendorID := uuid.New(), uuid.New(), uuid.New()
	cfg := dayConfig(vendorID)

	t.Run("filters the original baseline by opening hours", func(t *testing.T) {
		resolver, m := newResolver(t)
		open, closed := openPoint(vendorID), closedPoint(vendorID)
		baseline := pickup.NewCandidateSet(open.Snapshot(), closed.Snapshot())

		m.cache.EXPECT().Get(gomock.Any(), orderID).Return(usecase.CacheEntry{
			cfg.Hash: usecase.Snapshots{Original: baseline, Current: baseline},
		}, nil)
		m.cache.EXPECT().
			Set(gomock.Any(), orderID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, entry usecase.CacheEntry) error {
				snap := entry[cfg.Hash]
				// The baseline must survive the narrowing write.
				assert.True(t, snap.Original.Equal(baseline))
				assert.Equal(t, []uuid.UUID{open.ID}, snap.Current.IDs())
				return nil
			})

		set, err := resolver.ResolveOpenAddresses(context.Background(), orderID, cfg)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{open.ID}, set.IDs())
	})

	t.Run("unchanged result skips the cache write", func(t *testing.T) {
		resolver, m := newResolver(t)
		open := openPoint(vendorID)
		baseline := pickup.NewCandidateSet(open.Snapshot())

		m.cache.EXPECT().Get(gomock.Any(), orderID).Return(usecase.CacheEntry{
			cfg.Hash: usecase.Snapshots{Original: baseline, Current: baseline},
		}, nil)

		set, err := resolver.ResolveOpenAddresses(context.Background(), orderID, cfg)
		require.NoError(t, err)
		assert.True(t, set.Equal(baseline))
	})

	t.Run("missing entry resolves the store and seeds the baseline", func(t *testing.T) {
		resolver, m := newResolver(t)
		open, closed := openPoint(vendorID), closedPoint(vendorID)

		m.cache.EXPECT().Get(gomock.Any(), orderID).Return(usecase.CacheEntry{}, nil)
		m.orders.EXPECT().StoreID(gomock.Any(), orderID).Return(storeID, nil)
		m.expectSelect(storeID, vendorID, open, closed)
		// Seed write, then the narrowing write after the hours filter.
		m.cache.EXPECT().Set(gomock.Any(), orderID, gomock.Any()).Return(nil).Times(2)

		set, err := resolver.ResolveOpenAddresses(context.Background(), orderID, cfg)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{open.ID}, set.IDs())
	})

	t.Run("unknown order surfaces the not-found sentinel", func(t *testing.T) {
		resolver, m := newResolver(t)

		m.cache.EXPECT().Get(gomock.Any(), orderID).Return(usecase.CacheEntry{}, nil)
		m.orders.EXPECT().
			StoreID(gomock.Any(), orderID).
			Return(uuid.Nil, infra.WrapRepoErr(infra.KindNotFound, "order not found", pgx.ErrNoRows))

		_, err := resolver.ResolveOpenAddresses(context.Background(), orderID, cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, usecase.ErrOrderNotFound)
	})

	t.Run("empty selection returns without caching", func(t *testing.T) {
		resolver, m := newResolver(t)

		m.cache.EXPECT().Get(gomock.Any(), orderID).Return(nil, nil)
		m.orders.EXPECT().StoreID(gomock.Any(), orderID).Return(storeID, nil)
		m.expectSelect(storeID, vendorID)

		set, err := resolver.ResolveOpenAddresses(context.Background(), orderID, cfg)
		require.NoError(t, err)
		assert.True(t, set.IsEmpty())
	})

	t.Run("a later run widens back from the original baseline", func(t *testing.T) {
		resolver, m := newResolver(t)
		fridayOnly := closedPoint(vendorID)
		baseline := pickup.NewCandidateSet(fridayOnly.Snapshot())

		// Previous run filtered everything out; the point opens Fridays.
		m.cache.EXPECT().Get(gomock.Any(), orderID).Return(usecase.CacheEntry{
			cfg.Hash: usecase.Snapshots{Original: baseline, Current: pickup.NewCandidateSet()},
		}, nil).Times(2)
		m.cache.EXPECT().
			Set(gomock.Any(), orderID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, entry usecase.CacheEntry) error {
				snap := entry[cfg.Hash]
				assert.True(t, snap.Original.Equal(baseline))
				assert.True(t, snap.Current.Equal(baseline))
				return nil
			})

		// Wednesday: still closed, current already empty, nothing written.
		set, err := resolver.ResolveOpenAddresses(context.Background(), orderID, cfg)
		require.NoError(t, err)
		assert.True(t, set.IsEmpty())

		// Friday: the original baseline brings the point back.
		m.clock.Add(48 * time.Hour)
		set, err = resolver.ResolveOpenAddresses(context.Background(), orderID, cfg)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{fridayOnly.ID}, set.IDs())
	})
}

func TestInvalidateOrder(t *testing.T) {
	orderID, storeID, vendorID := uuid.New(), uuid.New(), uuid.New()
	cfg := dayConfig(vendorID)

	t.Run("drops the whole order entry", func(t *testing.T) {
		resolver, m := newResolver(t)

		m.cache.EXPECT().Delete(gomock.Any(), orderID).Return(nil)
		require.NoError(t, resolver.InvalidateOrder(context.Background(), orderID))
	})

	t.Run("a resolve after invalidation selects from scratch", func(t *testing.T) {
		resolver, m := newResolver(t)
		p := openPoint(vendorID)

		m.cache.EXPECT().Delete(gomock.Any(), orderID).Return(nil)
		m.cache.EXPECT().Get(gomock.Any(), orderID).Return(usecase.CacheEntry{}, nil)
		m.expectSelect(storeID, vendorID, p)
		m.cache.EXPECT().Set(gomock.Any(), orderID, gomock.Any()).Return(nil)

		require.NoError(t, resolver.InvalidateOrder(context.Background(), orderID))

		set, err := resolver.ResolveAddresses(context.Background(), orderID, storeID, cfg)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{p.ID}, set.IDs())
	})
}
