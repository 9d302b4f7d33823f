//go:build unit || e2e

package builder

import (
	"pickup-options-service/internal/domain/pickup"
	"pickup-options-service/internal/domain/schedule"
	reqdto "pickup-options-service/internal/handler/dto/request"

	"github.com/google/uuid"
)

type PickupBuilder struct {
	StoreID       uuid.UUID
	VendorID      uuid.UUID
	PointID       uuid.UUID
	All           bool
	Policy        string
	LookaheadDays int
	Negate        bool
	Zone          *reqdto.ZoneRequest
	Timezone      string
	HoursText     string
}

func NewPickupBuilder() *PickupBuilder {
	return &PickupBuilder{
		StoreID:       uuid.New(),
		VendorID:      uuid.New(),
		PointID:       uuid.New(),
		All:           true,
		Policy:        "day",
		LookaheadDays: 1,
		Timezone:      "Europe/Tallinn",
		HoursText:     "E-R 0900-1800",
	}
}

func (b *PickupBuilder) With(mutate func(*PickupBuilder)) *PickupBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *PickupBuilder) BuildConfigRequestDTO() reqdto.ResolutionConfigRequest {
	grant := reqdto.VendorGrantRequest{VendorID: b.VendorID, All: b.All}
	if !b.All {
		grant.PointIDs = []uuid.UUID{b.PointID}
	}
	return reqdto.ResolutionConfigRequest{
		Vendors:       []reqdto.VendorGrantRequest{grant},
		Zone:          b.Zone,
		Negate:        b.Negate,
		Policy:        b.Policy,
		LookaheadDays: b.LookaheadDays,
	}
}

func (b *PickupBuilder) BuildResolveRequestDTO() reqdto.ResolvePickupOptionsRequest {
	return reqdto.ResolvePickupOptionsRequest{
		StoreID: b.StoreID,
		Config:  b.BuildConfigRequestDTO(),
	}
}

func (b *PickupBuilder) BuildResolveOpenRequestDTO() reqdto.ResolveOpenPickupOptionsRequest {
	return reqdto.ResolveOpenPickupOptionsRequest{Config: b.BuildConfigRequestDTO()}
}

func (b *PickupBuilder) BuildPointsChangedRequestDTO() reqdto.PointsChangedRequest {
	return reqdto.PointsChangedRequest{
		Changes: []reqdto.PointChangeRequest{
			{
				PointID:  b.PointID,
				VendorID: b.VendorID,
				StoreIDs: []uuid.UUID{b.StoreID},
			},
		},
	}
}

func (b *PickupBuilder) BuildCandidate() pickup.Candidate {
	hours, _ := schedule.Normalize(schedule.RawHours{Format: schedule.FormatFreeText, Text: b.HoursText})
	return pickup.Candidate{
		PointID: b.PointID,
		Address: pickup.Address{
			Line1:       "Peatänav 1",
			Locality:    "Tallinn",
			PostalCode:  "10117",
			CountryCode: "EE",
		},
		Hours:    hours,
		Timezone: b.Timezone,
	}
}

func (b *PickupBuilder) BuildCandidateSet() pickup.CandidateSet {
	return pickup.NewCandidateSet(b.BuildCandidate())
}
