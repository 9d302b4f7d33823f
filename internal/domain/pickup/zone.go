package pickup

import (
	"strings"
)

// Zone is a pre-resolved geographic zone: a point qualifies when its
// address matches any territory. An empty territory list matches nothing,
// which callers treat as "no zone configured".
type Zone struct {
	Territories []Territory `json:"territories"`
}

// Territory restricts addresses by country and, optionally, by
// administrative area, locality and postal code lists. Postal code lists
// are comma-separated tokens; a token of the form "A:B" is an inclusive
// lexicographic range.
type Territory struct {
	CountryCode         string `json:"country_code"`
	AdministrativeArea  string `json:"administrative_area,omitempty"`
	Locality            string `json:"locality,omitempty"`
	IncludedPostalCodes string `json:"included_postal_codes,omitempty"`
	ExcludedPostalCodes string `json:"excluded_postal_codes,omitempty"`
}

// IsConfigured reports whether the zone constrains anything at all.
func (z Zone) IsConfigured() bool {
	return len(z.Territories) > 0
}

// Match reports whether the address falls inside the zone.
func (z Zone) Match(addr Address) bool {
	for _, t := range z.Territories {
		if t.match(addr) {
			return true
		}
	}
	return false
}

func (t Territory) match(addr Address) bool {
	if !strings.EqualFold(t.CountryCode, addr.CountryCode) {
		return false
	}
	if t.AdministrativeArea != "" && !strings.EqualFold(t.AdministrativeArea, addr.AdministrativeArea) {
		return false
	}
	if t.Locality != "" && !strings.EqualFold(t.Locality, addr.Locality) {
		return false
	}
	if t.ExcludedPostalCodes != "" && matchPostalCodes(t.ExcludedPostalCodes, addr.PostalCode) {
		return false
	}
	if t.IncludedPostalCodes != "" && !matchPostalCodes(t.IncludedPostalCodes, addr.PostalCode) {
		return false
	}
	return true
}

func matchPostalCodes(list, code string) bool {
	if code == "" {
		return false
	}
	for _, token := range strings.Split(list, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if from, to, ok := strings.Cut(token, ":"); ok {
			if code >= strings.TrimSpace(from) && code <= strings.TrimSpace(to) {
				return true
			}
			continue
		}
		if strings.EqualFold(token, code) {
			return true
		}
	}
	return false
}
