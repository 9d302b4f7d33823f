package request

import (
	"pickup-options-service/internal/domain/pickup"
	"pickup-options-service/internal/domain/schedule"
	"pickup-options-service/internal/usecase"

	"github.com/google/uuid"
)

type VendorGrantRequest struct {
	VendorID uuid.UUID   `json:"vendor_id" binding:"required"`
	All      bool        `json:"all"`
	PointIDs []uuid.UUID `json:"point_ids,omitempty"`
}

type TerritoryRequest struct {
	CountryCode         string `json:"country_code" binding:"required,len=2"`
	AdministrativeArea  string `json:"administrative_area,omitempty"`
	Locality            string `json:"locality,omitempty"`
	IncludedPostalCodes string `json:"included_postal_codes,omitempty"`
	ExcludedPostalCodes string `json:"excluded_postal_codes,omitempty"`
}

type ZoneRequest struct {
	Territories []TerritoryRequest `json:"territories" binding:"required,min=1,dive"`
}

type ResolutionConfigRequest struct {
	Vendors       []VendorGrantRequest `json:"vendors" binding:"required,dive"`
	Zone          *ZoneRequest         `json:"zone,omitempty"`
	Negate        bool                 `json:"negate"`
	Policy        string               `json:"policy" binding:"required,oneof=day day_plus next_day_plus"`
	LookaheadDays int                  `json:"lookahead_days,omitempty" binding:"omitempty,min=1,max=6"`
}

type ResolvePickupOptionsRequest struct {
	StoreID uuid.UUID               `json:"store_id" binding:"required"`
	Config  ResolutionConfigRequest `json:"config" binding:"required"`
}

type ResolveOpenPickupOptionsRequest struct {
	Config ResolutionConfigRequest `json:"config" binding:"required"`
}

type PointChangeRequest struct {
	PointID          uuid.UUID   `json:"point_id" binding:"required"`
	VendorID         uuid.UUID   `json:"vendor_id" binding:"required"`
	StoreIDs         []uuid.UUID `json:"store_ids" binding:"required,min=1"`
	PreviousStoreIDs []uuid.UUID `json:"previous_store_ids,omitempty"`
}

type PointsChangedRequest struct {
	Changes []PointChangeRequest `json:"changes" binding:"required,min=1,dive"`
}

func (r ResolutionConfigRequest) ToDomain() pickup.ResolutionConfig {
	grants := make([]pickup.VendorGrant, 0, len(r.Vendors))
	for _, v := range r.Vendors {
		grants = append(grants, pickup.VendorGrant{
			VendorID: v.VendorID,
			All:      v.All,
			PointIDs: v.PointIDs,
		})
	}

	var zone *pickup.Zone
	if r.Zone != nil {
		territories := make([]pickup.Territory, 0, len(r.Zone.Territories))
		for _, t := range r.Zone.Territories {
			territories = append(territories, pickup.Territory(t))
		}
		zone = &pickup.Zone{Territories: territories}
	}

	days := r.LookaheadDays
	if days == 0 {
		days = 1
	}
	return pickup.NewResolutionConfig(grants, zone, r.Negate, schedule.Policy(r.Policy), days)
}

func (r PointsChangedRequest) ToDomain() []usecase.PointChange {
	changes := make([]usecase.PointChange, 0, len(r.Changes))
	for _, c := range r.Changes {
		changes = append(changes, usecase.PointChange{
			PointID:          c.PointID,
			VendorID:         c.VendorID,
			StoreIDs:         c.StoreIDs,
			PreviousStoreIDs: c.PreviousStoreIDs,
		})
	}
	return changes
}
