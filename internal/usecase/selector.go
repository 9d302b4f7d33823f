package usecase

import (
	"context"

	"pickup-options-service/internal/domain/pickup"
	"pickup-options-service/internal/pkg/errs"

	"github.com/google/uuid"
)

// CandidateSelector computes which pickup points qualify for a set of
// stores under a resolution configuration. A configuration with no
// eligible grants is not an error; it yields an empty set.
type CandidateSelector struct {
	points  PointRepository
	vendors VendorDirectory
}

func NewCandidateSelector(points PointRepository, vendors VendorDirectory) *CandidateSelector {
	return &CandidateSelector{points: points, vendors: vendors}
}

// Select resolves the candidate set for the stores. Explicit allow-listed
// points load before vendor-wide points; within each load the repository
// order is kept, and default points are moved to the front at the end.
func (s *CandidateSelector) Select(ctx context.Context, storeIDs []uuid.UUID, cfg pickup.ResolutionConfig) (pickup.CandidateSet, error) {
	explicitIDs, vendorIDs, err := s.partitionGrants(ctx, cfg.Grants)
	if err != nil {
		return pickup.CandidateSet{}, err
	}
	if len(explicitIDs) == 0 && len(vendorIDs) == 0 {
		return pickup.NewCandidateSet(), nil
	}

	var points []pickup.PickupPoint
	if len(explicitIDs) > 0 {
		loaded, err := s.points.FindByIDsAndStores(ctx, explicitIDs, storeIDs)
		if err != nil {
			return pickup.CandidateSet{}, errs.Wrap(err, "loading allow-listed pickup points")
		}
		points = append(points, loaded...)
	}
	if len(vendorIDs) > 0 {
		loaded, err := s.points.FindByOwnersAndStores(ctx, vendorIDs, storeIDs)
		if err != nil {
			return pickup.CandidateSet{}, errs.Wrap(err, "loading vendor-wide pickup points")
		}
		points = append(points, loaded...)
	}

	var defaults, rest pickup.CandidateSet
	for _, p := range points {
		if !s.inZone(p.Address, cfg) {
			continue
		}
		if p.IsDefault {
			defaults.Add(p.Snapshot())
		} else {
			rest.Add(p.Snapshot())
		}
	}

	set := pickup.NewCandidateSet()
	for _, c := range defaults.Candidates() {
		set.Add(c)
	}
	for _, c := range rest.Candidates() {
		set.Add(c)
	}
	return set, nil
}

// partitionGrants splits the configuration into explicit point ids and
// vendors granted all-points access. Only vendors that currently hold the
// pickup role and are not blocked qualify; a grant with neither mode is
// skipped.
func (s *CandidateSelector) partitionGrants(ctx context.Context, grants []pickup.VendorGrant) (explicitIDs, vendorIDs []uuid.UUID, err error) {
	seen := make(map[uuid.UUID]bool)
	for _, grant := range grants {
		if !grant.All && len(grant.PointIDs) == 0 {
			continue
		}
		eligible, err := s.vendorEligible(ctx, grant.VendorID)
		if err != nil {
			return nil, nil, err
		}
		if !eligible {
			continue
		}
		if grant.All {
			vendorIDs = append(vendorIDs, grant.VendorID)
			continue
		}
		for _, id := range grant.PointIDs {
			if seen[id] {
				continue
			}
			seen[id] = true
			explicitIDs = append(explicitIDs, id)
		}
	}
	return explicitIDs, vendorIDs, nil
}

func (s *CandidateSelector) vendorEligible(ctx context.Context, vendorID uuid.UUID) (bool, error) {
	hasRole, err := s.vendors.HasPickupRole(ctx, vendorID)
	if err != nil {
		return false, errs.Wrap(err, "checking vendor role")
	}
	if !hasRole {
		return false, nil
	}
	blocked, err := s.vendors.IsBlocked(ctx, vendorID)
	if err != nil {
		return false, errs.Wrap(err, "checking vendor status")
	}
	return !blocked, nil
}

func (s *CandidateSelector) inZone(addr pickup.Address, cfg pickup.ResolutionConfig) bool {
	if cfg.Zone == nil || !cfg.Zone.IsConfigured() {
		return true
	}
	return cfg.Zone.Match(addr) != cfg.Negate
}
