package pickup

import (
	"pickup-options-service/internal/domain/schedule"

	"github.com/google/uuid"
)

// PickupPoint is a physical collection address owned by a vendor. Points
// are created and edited by administrative tooling; this core only reads
// them.
type PickupPoint struct {
	ID        uuid.UUID
	VendorID  uuid.UUID
	StoreIDs  []uuid.UUID
	Address   Address
	Hours     schedule.Schedule
	Timezone  string
	IsDefault bool
	Active    bool
}

// Snapshot reduces the point to the per-order candidate projection.
func (p PickupPoint) Snapshot() Candidate {
	return Candidate{
		PointID:  p.ID,
		Address:  p.Address,
		Hours:    p.Hours,
		Timezone: p.Timezone,
	}
}
