package pickup

import (
	"encoding/json"

	"pickup-options-service/internal/domain/schedule"

	"github.com/google/uuid"
)

// Candidate is the cached projection of one qualifying pickup point.
type Candidate struct {
	PointID  uuid.UUID         `json:"point_id"`
	Address  Address           `json:"address"`
	Hours    schedule.Schedule `json:"hours"`
	Timezone string            `json:"timezone"`
}

// CandidateSet is an ordered set of candidates keyed by point id. Default
// points sort first; the remainder keeps load order. The first candidate
// added for an id wins, later additions for the same id are ignored.
type CandidateSet struct {
	entries []Candidate
	index   map[uuid.UUID]int
}

func NewCandidateSet(candidates ...Candidate) CandidateSet {
	var s CandidateSet
	for _, c := range candidates {
		s.Add(c)
	}
	return s
}

func (s *CandidateSet) Add(c Candidate) {
	if s.index == nil {
		s.index = make(map[uuid.UUID]int)
	}
	if _, ok := s.index[c.PointID]; ok {
		return
	}
	s.index[c.PointID] = len(s.entries)
	s.entries = append(s.entries, c)
}

func (s CandidateSet) Get(id uuid.UUID) (Candidate, bool) {
	i, ok := s.index[id]
	if !ok {
		return Candidate{}, false
	}
	return s.entries[i], true
}

func (s CandidateSet) Contains(id uuid.UUID) bool {
	_, ok := s.index[id]
	return ok
}

// Candidates returns the entries in order. The slice is shared; callers
// must not mutate it.
func (s CandidateSet) Candidates() []Candidate {
	return s.entries
}

func (s CandidateSet) IDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(s.entries))
	for i, c := range s.entries {
		ids[i] = c.PointID
	}
	return ids
}

func (s CandidateSet) Len() int {
	return len(s.entries)
}

func (s CandidateSet) IsEmpty() bool {
	return len(s.entries) == 0
}

// Equal compares membership, order and snapshot content.
func (s CandidateSet) Equal(other CandidateSet) bool {
	if len(s.entries) != len(other.entries) {
		return false
	}
	for i := range s.entries {
		a, b := s.entries[i], other.entries[i]
		if a.PointID != b.PointID || a.Address != b.Address || a.Timezone != b.Timezone {
			return false
		}
		if !a.Hours.Equal(b.Hours) {
			return false
		}
	}
	return true
}

// MarshalJSON serializes the set as an ordered candidate array so the
// cache blob stays independent of the in-memory index.
func (s CandidateSet) MarshalJSON() ([]byte, error) {
	if s.entries == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.entries)
}

func (s *CandidateSet) UnmarshalJSON(data []byte) error {
	var entries []Candidate
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	*s = NewCandidateSet(entries...)
	return nil
}
