package residents

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/models"
)

// MemoryStore is an in-memory Store used by tests.
type MemoryStore struct {
	mu   sync.RWMutex
	rows map[string]models.Resident // keyed by document id

	// Queries counts backend reads so tests can assert the no-query guard.
	Queries int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rows: make(map[string]models.Resident)}
}

var _ Store = (*MemoryStore)(nil)

func (s *MemoryStore) GetByID(_ context.Context, id string) (*models.Resident, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Queries++
	if r, ok := s.rows[id]; ok {
		return &r, nil
	}
	return nil, nil
}

func (s *MemoryStore) FindFirstByNIK(_ context.Context, nik string) (*models.Resident, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Queries++
	for _, r := range s.rows {
		if r.NIK == nik {
			out := r
			return &out, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) SearchByNamePrefix(_ context.Context, term string, limit int) ([]models.Resident, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Queries++

	var results []models.Resident
	for _, r := range s.rows {
		if strings.HasPrefix(r.FullName, term) {
			results = append(results, r)
		}
	}
	sort.Slice(results, func(i, j int) bool { return results[i].FullName < results[j].FullName })
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

func (s *MemoryStore) upsertLocked(r models.Resident) {
	// Mirror the ON CONFLICT (nik) behavior: an existing row with the same NIK
	// keeps its document id.
	for id, existing := range s.rows {
		if existing.NIK == r.NIK {
			r.ID = id
			r.CreatedAt = existing.CreatedAt
			r.UpdatedAt = time.Now()
			s.rows[id] = r
			return
		}
	}
	now := time.Now()
	r.CreatedAt = now
	r.UpdatedAt = now
	s.rows[r.ID] = r
}

func (s *MemoryStore) Upsert(_ context.Context, r *models.Resident) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.upsertLocked(*r)
	return nil
}

func (s *MemoryStore) BulkUpsert(_ context.Context, rs []models.Resident) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range rs {
		s.upsertLocked(r)
	}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rows, id)
	return nil
}

func (s *MemoryStore) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.rows)), nil
}
