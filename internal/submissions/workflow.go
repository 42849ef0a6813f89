package submissions

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/letters"
	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/models"
	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/numbering"
	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/printing"
	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/upload"
)

// Uploader pushes attachments to external storage and can undo an upload.
type Uploader interface {
	Upload(ctx context.Context, letterType, requesterName string, files []upload.File) ([]models.UploadedFile, error)
	Delete(ctx context.Context, fileIDs []string) error
}

// ProfileResolver supplies the contact details saved on a citizen account.
type ProfileResolver interface {
	GetCitizenProfile(ctx context.Context, userID int) (*models.CitizenProfile, error)
}

// Service drives a letter request from intake to the printable document.
type Service struct {
	store    Store
	uploader Uploader
	profiles ProfileResolver
	log      *zap.Logger
}

func NewService(store Store, uploader Uploader, profiles ProfileResolver, log *zap.Logger) *Service {
	return &Service{store: store, uploader: uploader, profiles: profiles, log: log}
}

// CreateRequest is a citizen's submission as it arrives from the form.
type CreateRequest struct {
	RequesterID   int
	RequesterName string
	NIK           string
	LetterType    string
	// FormData is the serialized form payload; it is stored verbatim.
	FormData string
	Files    []upload.File
}

// Create validates and persists a new submission, then uploads its
// attachments. The record is written first with status processing so a
// failed upload still leaves an auditable trail: it flips to rejected with
// the failure in the admin notes, and the error is returned to the citizen.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*models.LetterSubmission, error) {
	schema := letters.Get(req.LetterType)
	if schema == nil {
		return nil, fmt.Errorf("jenis surat %q tidak dikenal", req.LetterType)
	}

	var form map[string]any
	if err := json.Unmarshal([]byte(req.FormData), &form); err != nil {
		return nil, fmt.Errorf("data formulir tidak valid: %w", err)
	}
	if err := schema.Validate(form); err != nil {
		return nil, err
	}

	uploaded := make(map[string]bool, len(req.Files))
	for _, f := range req.Files {
		uploaded[f.FieldName] = true
	}
	if missing := schema.MissingAttachments(uploaded); len(missing) > 0 {
		return nil, fmt.Errorf("berkas tidak lengkap: %s", strings.Join(missing, ", "))
	}

	sub := &models.LetterSubmission{
		ID:            uuid.NewString(),
		RequesterName: req.RequesterName,
		NIK:           req.NIK,
		LetterType:    req.LetterType,
		Status:        models.StatusProcessing,
		FormData:      req.FormData,
		FileLinks:     []models.UploadedFile{},
		RequesterID:   req.RequesterID,
	}

	if profile, err := s.profiles.GetCitizenProfile(ctx, req.RequesterID); err != nil {
		s.log.Warn("failed to load citizen profile",
			zap.Int("requester_id", req.RequesterID), zap.Error(err))
	} else if profile != nil {
		sub.PhoneNumber = profile.PhoneNumber
		sub.Email = profile.Email
	}

	if err := s.store.Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("gagal menyimpan pengajuan: %w", err)
	}

	if len(req.Files) == 0 {
		if err := s.store.SetOutcome(ctx, sub.ID, models.StatusPending, "", sub.FileLinks); err != nil {
			return nil, err
		}
		sub.Status = models.StatusPending
		return sub, nil
	}

	links, err := s.uploader.Upload(ctx, req.LetterType, req.RequesterName, req.Files)
	if err != nil {
		note := fmt.Sprintf("Gagal mengunggah lampiran: %v", err)
		if updateErr := s.store.SetOutcome(ctx, sub.ID, models.StatusRejected, note, nil); updateErr != nil {
			s.log.Error("failed to record upload failure",
				zap.String("submission_id", sub.ID), zap.Error(updateErr))
		}
		return nil, err
	}

	if err := s.store.SetOutcome(ctx, sub.ID, models.StatusPending, "", links); err != nil {
		// The files landed in Drive but the submission never left
		// processing. Remove them so nothing orphaned accumulates.
		ids := make([]string, 0, len(links))
		for _, l := range links {
			ids = append(ids, l.FileID)
		}
		if delErr := s.uploader.Delete(ctx, ids); delErr != nil {
			s.log.Error("failed to clean up uploaded files",
				zap.String("submission_id", sub.ID), zap.Error(delErr))
		}
		return nil, err
	}

	sub.Status = models.StatusPending
	sub.FileLinks = links
	return sub, nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.LetterSubmission, error) {
	return s.store.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, limit int) ([]*models.LetterSubmission, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	return s.store.List(ctx, limit)
}

func (s *Service) ListMine(ctx context.Context, requesterID, limit int) ([]*models.LetterSubmission, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	return s.store.ListByRequester(ctx, requesterID, limit)
}

// SetStatus records the admin's decision on a pending submission.
func (s *Service) SetStatus(ctx context.Context, id string, status models.SubmissionStatus, adminNotes string) error {
	if status != models.StatusApproved && status != models.StatusRejected {
		return fmt.Errorf("status %q bukan keputusan yang valid", status)
	}
	sub, err := s.store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sub == nil {
		return fmt.Errorf("pengajuan %s tidak ditemukan", id)
	}
	return s.store.SetOutcome(ctx, id, status, adminNotes, sub.FileLinks)
}

// AssignNumber formats the admin's manual sequence into the official
// document number and stores it. The write is last-wins: if two admins
// number the same letter concurrently the later one sticks, same as the
// paper logbook they replaced.
func (s *Service) AssignNumber(ctx context.Context, id string, sequence int, at time.Time) (string, error) {
	formatted, err := numbering.Format(sequence, at)
	if err != nil {
		return "", err
	}
	if err := s.store.SetDocumentNumber(ctx, id, formatted); err != nil {
		return "", err
	}
	return formatted, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

// NextSequence suggests a register sequence for the admin's numbering form.
// It is only a suggestion: the admin types the final value.
func (s *Service) NextSequence(ctx context.Context, now time.Time) (int, error) {
	return s.store.NextSequence(ctx, now)
}

// Print renders the printable document. Only approved, numbered letters may
// be printed; anything else is rejected here rather than in the template.
func (s *Service) Print(ctx context.Context, id string, now time.Time) (*printing.Document, error) {
	sub, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, fmt.Errorf("pengajuan %s tidak ditemukan", id)
	}
	if sub.Status != models.StatusApproved {
		return nil, fmt.Errorf("pengajuan belum disetujui")
	}
	return printing.Render(sub.LetterType, sub.RequesterName, sub.FormData, sub.DocumentNumber, now)
}
