//go:build unit

package pickup_test

import (
	"testing"

	"pickup-options-service/internal/domain/pickup"

	"github.com/stretchr/testify/assert"
)

func tallinnAddr(postal string) pickup.Address {
	return pickup.Address{
		Line1:       "Narva mnt 7",
		Locality:    "Tallinn",
		PostalCode:  postal,
		CountryCode: "EE",
	}
}

func TestZoneMatch(t *testing.T) {
	t.Run("country only", func(t *testing.T) {
		zone := pickup.Zone{Territories: []pickup.Territory{{CountryCode: "EE"}}}
		assert.True(t, zone.Match(tallinnAddr("10117")))
		assert.False(t, zone.Match(pickup.Address{CountryCode: "LV", Locality: "Riga"}))
	})

	t.Run("country is case insensitive", func(t *testing.T) {
		zone := pickup.Zone{Territories: []pickup.Territory{{CountryCode: "ee"}}}
		assert.True(t, zone.Match(tallinnAddr("10117")))
	})

	t.Run("locality narrows the match", func(t *testing.T) {
		zone := pickup.Zone{Territories: []pickup.Territory{{CountryCode: "EE", Locality: "Tallinn"}}}
		assert.True(t, zone.Match(tallinnAddr("10117")))
		assert.False(t, zone.Match(pickup.Address{CountryCode: "EE", Locality: "Tartu"}))
	})

	t.Run("administrative area narrows the match", func(t *testing.T) {
		zone := pickup.Zone{Territories: []pickup.Territory{{CountryCode: "EE", AdministrativeArea: "Harju"}}}
		addr := tallinnAddr("10117")
		addr.AdministrativeArea = "Harju"
		assert.True(t, zone.Match(addr))
		addr.AdministrativeArea = "Tartu"
		assert.False(t, zone.Match(addr))
	})

	t.Run("any matching territory qualifies", func(t *testing.T) {
		zone := pickup.Zone{Territories: []pickup.Territory{
			{CountryCode: "LV"},
			{CountryCode: "EE", Locality: "Tallinn"},
		}}
		assert.True(t, zone.Match(tallinnAddr("10117")))
	})

	t.Run("unconfigured zone matches nothing", func(t *testing.T) {
		var zone pickup.Zone
		assert.False(t, zone.IsConfigured())
		assert.False(t, zone.Match(tallinnAddr("10117")))
	})
}

func TestZoneMatchPostalCodes(t *testing.T) {
	t.Run("included list of exact codes", func(t *testing.T) {
		zone := pickup.Zone{Territories: []pickup.Territory{
			{CountryCode: "EE", IncludedPostalCodes: "10117, 10118"},
		}}
		assert.True(t, zone.Match(tallinnAddr("10117")))
		assert.True(t, zone.Match(tallinnAddr("10118")))
		assert.False(t, zone.Match(tallinnAddr("10119")))
	})

	t.Run("included range is inclusive on both ends", func(t *testing.T) {
		zone := pickup.Zone{Territories: []pickup.Territory{
			{CountryCode: "EE", IncludedPostalCodes: "10100:10200"},
		}}
		assert.True(t, zone.Match(tallinnAddr("10100")))
		assert.True(t, zone.Match(tallinnAddr("10150")))
		assert.True(t, zone.Match(tallinnAddr("10200")))
		assert.False(t, zone.Match(tallinnAddr("10201")))
	})

	t.Run("excluded codes override an included range", func(t *testing.T) {
		zone := pickup.Zone{Territories: []pickup.Territory{
			{CountryCode: "EE", IncludedPostalCodes: "10100:10200", ExcludedPostalCodes: "10117"},
		}}
		assert.True(t, zone.Match(tallinnAddr("10116")))
		assert.False(t, zone.Match(tallinnAddr("10117")))
	})

	t.Run("address without a postal code never matches a postal list", func(t *testing.T) {
		zone := pickup.Zone{Territories: []pickup.Territory{
			{CountryCode: "EE", IncludedPostalCodes: "10117"},
		}}
		assert.False(t, zone.Match(tallinnAddr("")))
	})
}
