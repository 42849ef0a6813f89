// Package complaints receives citizen complaints, runs them through the AI
// digest, and tracks the admin response queue.
package complaints

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/ai"
	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/models"
)

type Store interface {
	Create(ctx context.Context, c *models.Complaint) error
	GetByID(ctx context.Context, id string) (*models.Complaint, error)
	List(ctx context.Context, limit int) ([]*models.Complaint, error)
	ListBySubmitter(ctx context.Context, submitterID int, limit int) ([]*models.Complaint, error)
	SetResponse(ctx context.Context, id, adminResponse string, status models.ComplaintStatus) error
	Delete(ctx context.Context, id string) error
}

// Summarizer is the AI digest; ai.Client satisfies it.
type Summarizer interface {
	SummarizeComplaint(ctx context.Context, complaintText string) (*ai.ComplaintSummary, error)
}

type Service struct {
	store      Store
	summarizer Summarizer
	log        *zap.Logger
}

func NewService(store Store, summarizer Summarizer, log *zap.Logger) *Service {
	return &Service{store: store, summarizer: summarizer, log: log}
}

// Submit analyzes and stores a complaint in one step. The AI digest is part
// of the record, not an enrichment: if analysis fails nothing is saved and
// the citizen is asked to retry.
func (s *Service) Submit(ctx context.Context, description string, submitterID *int) (*models.Complaint, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, fmt.Errorf("isi pengaduan tidak boleh kosong")
	}

	summary, err := s.summarizer.SummarizeComplaint(ctx, description)
	if err != nil {
		s.log.Warn("complaint analysis failed", zap.Error(err))
		return nil, fmt.Errorf("gagal menganalisis pengaduan: %w", err)
	}

	complaint := &models.Complaint{
		ID:             uuid.NewString(),
		Description:    description,
		SubmissionDate: time.Now(),
		Summary:        summary.Summary,
		Sentiment:      summary.Sentiment,
		Keywords:       summary.Keywords,
		SubmitterID:    submitterID,
		Status:         models.ComplaintNew,
	}
	if complaint.Keywords == nil {
		complaint.Keywords = []string{}
	}

	if err := s.store.Create(ctx, complaint); err != nil {
		return nil, fmt.Errorf("gagal menyimpan pengaduan: %w", err)
	}
	return complaint, nil
}

func (s *Service) List(ctx context.Context, limit int) ([]*models.Complaint, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	return s.store.List(ctx, limit)
}

func (s *Service) ListMine(ctx context.Context, submitterID, limit int) ([]*models.Complaint, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	return s.store.ListBySubmitter(ctx, submitterID, limit)
}

func (s *Service) Get(ctx context.Context, id string) (*models.Complaint, error) {
	return s.store.GetByID(ctx, id)
}

// Respond records the admin's answer and closes the complaint.
func (s *Service) Respond(ctx context.Context, id, adminResponse string) error {
	if strings.TrimSpace(adminResponse) == "" {
		return fmt.Errorf("tanggapan tidak boleh kosong")
	}
	return s.store.SetResponse(ctx, id, adminResponse, models.ComplaintResolved)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
