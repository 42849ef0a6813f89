package submissions

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/models"
)

// MemoryStore keeps submissions in a map for tests.
type MemoryStore struct {
	mu   sync.Mutex
	subs map[string]*models.LetterSubmission
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{subs: make(map[string]*models.LetterSubmission)}
}

func (m *MemoryStore) Create(ctx context.Context, sub *models.LetterSubmission) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.subs[sub.ID]; exists {
		return fmt.Errorf("submission %s already exists", sub.ID)
	}
	now := time.Now()
	sub.CreatedAt = now
	sub.UpdatedAt = now
	clone := *sub
	m.subs[sub.ID] = &clone
	return nil
}

func (m *MemoryStore) GetByID(ctx context.Context, id string) (*models.LetterSubmission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sub, ok := m.subs[id]
	if !ok {
		return nil, nil
	}
	clone := *sub
	return &clone, nil
}

func (m *MemoryStore) List(ctx context.Context, limit int) ([]*models.LetterSubmission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listLocked(limit, func(*models.LetterSubmission) bool { return true }), nil
}

func (m *MemoryStore) ListByRequester(ctx context.Context, requesterID int, limit int) ([]*models.LetterSubmission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listLocked(limit, func(s *models.LetterSubmission) bool {
		return s.RequesterID == requesterID
	}), nil
}

func (m *MemoryStore) listLocked(limit int, keep func(*models.LetterSubmission) bool) []*models.LetterSubmission {
	var out []*models.LetterSubmission
	for _, sub := range m.subs {
		if keep(sub) {
			clone := *sub
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (m *MemoryStore) SetOutcome(ctx context.Context, id string, status models.SubmissionStatus, adminNotes string, fileLinks []models.UploadedFile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	sub, ok := m.subs[id]
	if !ok {
		return fmt.Errorf("submission %s not found", id)
	}
	sub.Status = status
	sub.AdminNotes = adminNotes
	sub.FileLinks = fileLinks
	sub.UpdatedAt = time.Now()
	return nil
}

func (m *MemoryStore) SetDocumentNumber(ctx context.Context, id, documentNumber string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	sub, ok := m.subs[id]
	if !ok {
		return fmt.Errorf("submission %s not found", id)
	}
	sub.DocumentNumber = documentNumber
	sub.UpdatedAt = time.Now()
	return nil
}

func (m *MemoryStore) NextSequence(ctx context.Context, now time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, sub := range m.subs {
		if sub.DocumentNumber != "" && sub.CreatedAt.Year() == now.Year() {
			count++
		}
	}
	return count + 1, nil
}

func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.subs, id)
	return nil
}
