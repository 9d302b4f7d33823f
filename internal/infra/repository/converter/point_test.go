//go:build unit

package converter

import (
	"testing"

	"pickup-options-service/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointToDomain(t *testing.T) {
	row := PointRow{
		ID:                 uuid.New(),
		VendorID:           uuid.New(),
		StoreIDs:           []uuid.UUID{uuid.New(), uuid.New()},
		Organization:       "Kaubamaja",
		Line1:              "Peatänav 1",
		Locality:           "Tallinn",
		PostalCode:         "10117",
		CountryCode:        "EE",
		AdministrativeArea: "Harju",
		Hours:              []byte(`[{"day":1,"start":900,"end":1800},{"day":2,"start":900,"end":1800}]`),
		Timezone:           "Europe/Tallinn",
		IsDefault:          true,
		Active:             true,
	}

	point, err := PointToDomain(row)
	require.NoError(t, err)

	assert.Equal(t, row.ID, point.ID)
	assert.Equal(t, row.VendorID, point.VendorID)
	assert.Equal(t, row.StoreIDs, point.StoreIDs)
	assert.Equal(t, "Kaubamaja", point.Address.Organization)
	assert.Equal(t, "Tallinn", point.Address.Locality)
	assert.Equal(t, "EE", point.Address.CountryCode)
	assert.Equal(t, "Europe/Tallinn", point.Timezone)
	assert.True(t, point.IsDefault)
	assert.True(t, point.Active)

	want := schedule.Schedule{
		{Day: 1, Start: 900, End: 1800},
		{Day: 2, Start: 900, End: 1800},
	}
	assert.True(t, point.Hours.Equal(want))
}

func TestPointToDomainWithoutHours(t *testing.T) {
	point, err := PointToDomain(PointRow{ID: uuid.New(), Timezone: "UTC"})
	require.NoError(t, err)
	assert.Empty(t, point.Hours)
}

func TestPointToDomainRejectsMalformedHours(t *testing.T) {
	_, err := PointToDomain(PointRow{ID: uuid.New(), Hours: []byte(`{"not":"an array"}`)})
	assert.Error(t, err)
}
