package response

import (
	"pickup-options-service/internal/domain/pickup"
	"pickup-options-service/internal/domain/schedule"

	"github.com/google/uuid"
)

type WindowResponse struct {
	Day     int    `json:"day"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
	Comment string `json:"comment,omitempty"`
}

type AddressResponse struct {
	Organization       string `json:"organization,omitempty"`
	Line1              string `json:"line1,omitempty"`
	Locality           string `json:"locality,omitempty"`
	PostalCode         string `json:"postal_code,omitempty"`
	CountryCode        string `json:"country_code,omitempty"`
	AdministrativeArea string `json:"administrative_area,omitempty"`
	AdditionalName     string `json:"additional_name,omitempty"`
	SortingCode        string `json:"sorting_code,omitempty"`
}

type CandidateResponse struct {
	PointID  uuid.UUID        `json:"point_id"`
	Address  AddressResponse  `json:"address"`
	Hours    []WindowResponse `json:"hours"`
	Timezone string           `json:"timezone"`
}

type PickupOptionsResponse struct {
	ConfigHash string              `json:"config_hash"`
	Candidates []CandidateResponse `json:"candidates"`
}

func NewPickupOptionsResponse(hash string, set pickup.CandidateSet) PickupOptionsResponse {
	candidates := make([]CandidateResponse, 0, set.Len())
	for _, c := range set.Candidates() {
		candidates = append(candidates, CandidateResponse{
			PointID:  c.PointID,
			Address:  AddressResponse(c.Address),
			Hours:    windowsOf(c.Hours),
			Timezone: c.Timezone,
		})
	}
	return PickupOptionsResponse{ConfigHash: hash, Candidates: candidates}
}

func windowsOf(s schedule.Schedule) []WindowResponse {
	windows := make([]WindowResponse, 0, len(s))
	for _, w := range s {
		windows = append(windows, WindowResponse(w))
	}
	return windows
}
