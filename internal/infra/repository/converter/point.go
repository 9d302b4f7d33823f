package converter

import (
	"encoding/json"

	"pickup-options-service/internal/domain/pickup"
	"pickup-options-service/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// PointRow is the flat database projection of a pickup point. Hours is the
// canonical schedule stored as a JSONB window array.
type PointRow struct {
	ID                 uuid.UUID
	VendorID           uuid.UUID
	StoreIDs           []uuid.UUID
	Organization       string
	Line1              string
	Locality           string
	PostalCode         string
	CountryCode        string
	AdministrativeArea string
	AdditionalName     string
	SortingCode        string
	Hours              []byte
	Timezone           string
	IsDefault          bool
	Active             bool
}

func PointToDomain(row PointRow) (pickup.PickupPoint, error) {
	var point pickup.PickupPoint
	if err := copier.Copy(&point, &row); err != nil {
		return pickup.PickupPoint{}, err
	}
	var addr pickup.Address
	if err := copier.Copy(&addr, &row); err != nil {
		return pickup.PickupPoint{}, err
	}
	point.Address = addr

	if len(row.Hours) > 0 {
		var hours schedule.Schedule
		if err := json.Unmarshal(row.Hours, &hours); err != nil {
			return pickup.PickupPoint{}, err
		}
		point.Hours = hours
	}
	return point, nil
}
