package pickup

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"pickup-options-service/internal/domain/schedule"

	"github.com/google/uuid"
)

// VendorGrant is one vendor's entry in a resolution configuration: either
// every current and future point the vendor owns, or an explicit point
// allow-list. When All is set the allow-list is ignored. A grant with
// neither is skipped entirely during selection.
type VendorGrant struct {
	VendorID uuid.UUID   `json:"vendor_id"`
	All      bool        `json:"all"`
	PointIDs []uuid.UUID `json:"point_ids,omitempty"`
}

// ResolutionConfig is the full configuration of one condition instance.
// Hash is a stable fingerprint of everything else and partitions the
// per-order availability cache: two conditions with identical settings
// use independent hashes only if they were constructed with different
// content, otherwise they coincide harmlessly.
type ResolutionConfig struct {
	Hash          string
	Grants        []VendorGrant
	Zone          *Zone
	Negate        bool
	Policy        schedule.Policy
	LookaheadDays int
}

type configDigest struct {
	Grants        []VendorGrant   `json:"grants"`
	Zone          *Zone           `json:"zone,omitempty"`
	Negate        bool            `json:"negate"`
	Policy        schedule.Policy `json:"policy"`
	LookaheadDays int             `json:"lookahead_days"`
}

// NewResolutionConfig builds a config and computes its fingerprint.
func NewResolutionConfig(grants []VendorGrant, zone *Zone, negate bool, policy schedule.Policy, lookaheadDays int) ResolutionConfig {
	cfg := ResolutionConfig{
		Grants:        grants,
		Zone:          zone,
		Negate:        negate,
		Policy:        policy,
		LookaheadDays: lookaheadDays,
	}
	cfg.Hash = cfg.fingerprint()
	return cfg
}

func (c ResolutionConfig) fingerprint() string {
	// json.Marshal is deterministic for this struct shape (no maps), so
	// the digest is stable for identical settings.
	payload, err := json.Marshal(configDigest{
		Grants:        c.Grants,
		Zone:          c.Zone,
		Negate:        c.Negate,
		Policy:        c.Policy,
		LookaheadDays: c.LookaheadDays,
	})
	if err != nil {
		// Struct is marshal-safe; unreachable.
		panic(err)
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}
