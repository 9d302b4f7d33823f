//go:build unit

package pickup_test

import (
	"testing"

	"pickup-options-service/internal/domain/pickup"
	"pickup-options-service/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResolutionConfigFingerprint(t *testing.T) {
	vendorA := uuid.New()
	vendorB := uuid.New()
	pointID := uuid.New()
	grants := []pickup.VendorGrant{
		{VendorID: vendorA, All: true},
		{VendorID: vendorB, PointIDs: []uuid.UUID{pointID}},
	}
	zone := &pickup.Zone{Territories: []pickup.Territory{{CountryCode: "EE"}}}

	base := pickup.NewResolutionConfig(grants, zone, false, schedule.PolicyDay, 1)
	require.NotEmpty(t, base.Hash)
	assert.Len(t, base.Hash, 64)

	t.Run("identical settings produce the same hash", func(t *testing.T) {
		sameGrants := []pickup.VendorGrant{
			{VendorID: vendorA, All: true},
			{VendorID: vendorB, PointIDs: []uuid.UUID{pointID}},
		}
		sameZone := &pickup.Zone{Territories: []pickup.Territory{{CountryCode: "EE"}}}
		again := pickup.NewResolutionConfig(sameGrants, sameZone, false, schedule.PolicyDay, 1)
		assert.Equal(t, base.Hash, again.Hash)
	})

	t.Run("every setting participates in the hash", func(t *testing.T) {
		variants := []pickup.ResolutionConfig{
			pickup.NewResolutionConfig(grants[:1], zone, false, schedule.PolicyDay, 1),
			pickup.NewResolutionConfig(grants, nil, false, schedule.PolicyDay, 1),
			pickup.NewResolutionConfig(grants, zone, true, schedule.PolicyDay, 1),
			pickup.NewResolutionConfig(grants, zone, false, schedule.PolicyDayPlus, 1),
			pickup.NewResolutionConfig(grants, zone, false, schedule.PolicyDay, 2),
		}
		for i, v := range variants {
			assert.NotEqual(t, base.Hash, v.Hash, "variant %d", i)
		}
	})

	t.Run("grant order matters", func(t *testing.T) {
		reversed := pickup.NewResolutionConfig([]pickup.VendorGrant{grants[1], grants[0]}, zone, false, schedule.PolicyDay, 1)
		assert.NotEqual(t, base.Hash, reversed.Hash)
	})
}
