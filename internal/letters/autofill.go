package letters

import (
	"strings"
	"sync"

	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/models"
)

// FillValues maps a matched resident onto the group's form fields. Names are
// uppercased for the printed letter, and the RT/RW code is folded into the
// address line when the registry has one.
func (g FillGroup) FillValues(res *models.Resident) map[string]string {
	out := make(map[string]string, len(g.Fill))
	for field, attr := range g.Fill {
		out[field] = residentAttr(res, attr)
	}
	return out
}

func residentAttr(res *models.Resident, attr string) string {
	switch attr {
	case AttrFullName:
		return strings.ToUpper(res.FullName)
	case AttrGender:
		return res.Gender
	case AttrPlaceOfBirth:
		return res.PlaceOfBirth
	case AttrDateOfBirth:
		return res.DateOfBirth
	case AttrReligion:
		return res.Religion
	case AttrOccupation:
		return res.Occupation
	case AttrMaritalStatus:
		return res.MaritalStatus
	case AttrAddress:
		if res.RtRw != "" {
			return res.Address + ", RT/RW: " + res.RtRw
		}
		return res.Address
	default:
		return ""
	}
}

// FillTracker orders concurrent auto-fill lookups per form group. A citizen
// can retype a NIK while the previous lookup is still in flight; only the
// result holding the group's latest sequence number may be applied.
type FillTracker struct {
	mu  sync.Mutex
	seq map[string]uint64
}

func NewFillTracker() *FillTracker {
	return &FillTracker{seq: make(map[string]uint64)}
}

// Begin registers a new lookup for the group and returns its sequence number.
func (t *FillTracker) Begin(group string) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.seq[group]++
	return t.seq[group]
}

// Current reports whether seq is still the group's newest lookup. Stale
// results must be discarded by the caller.
func (t *FillTracker) Current(group string, seq uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.seq[group] == seq
}
