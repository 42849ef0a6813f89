package complaints

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/models"
)

type MemoryStore struct {
	mu    sync.Mutex
	items map[string]*models.Complaint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]*models.Complaint)}
}

func (m *MemoryStore) Create(ctx context.Context, c *models.Complaint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	clone := *c
	m.items[c.ID] = &clone
	return nil
}

func (m *MemoryStore) GetByID(ctx context.Context, id string) (*models.Complaint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	clone := *c
	return &clone, nil
}

func (m *MemoryStore) List(ctx context.Context, limit int) ([]*models.Complaint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.Complaint
	for _, c := range m.items {
		clone := *c
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].SubmissionDate.After(out[j].SubmissionDate)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MemoryStore) ListBySubmitter(ctx context.Context, submitterID int, limit int) ([]*models.Complaint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.Complaint
	for _, c := range m.items {
		if c.SubmitterID != nil && *c.SubmitterID == submitterID {
			clone := *c
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].SubmissionDate.After(out[j].SubmissionDate)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MemoryStore) SetResponse(ctx context.Context, id, adminResponse string, status models.ComplaintStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.items[id]
	if !ok {
		return fmt.Errorf("complaint %s not found", id)
	}
	c.AdminResponse = adminResponse
	c.Status = status
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, id)
	return nil
}
