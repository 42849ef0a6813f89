// Package submissions runs the letter request workflow: intake, attachment
// upload, the admin review queue, document numbering, and printing handoff.
package submissions

import (
	"context"
	"time"

	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/models"
)

// Store is the persistence surface of the workflow. The Postgres
// implementation backs the application; the in-memory one backs tests.
type Store interface {
	Create(ctx context.Context, sub *models.LetterSubmission) error
	GetByID(ctx context.Context, id string) (*models.LetterSubmission, error)
	// List returns the newest submissions first, capped at limit.
	List(ctx context.Context, limit int) ([]*models.LetterSubmission, error)
	ListByRequester(ctx context.Context, requesterID int, limit int) ([]*models.LetterSubmission, error)
	// SetOutcome moves a submission to its reviewed status with optional
	// admin notes and uploaded file links.
	SetOutcome(ctx context.Context, id string, status models.SubmissionStatus, adminNotes string, fileLinks []models.UploadedFile) error
	SetDocumentNumber(ctx context.Context, id, documentNumber string) error
	Delete(ctx context.Context, id string) error
	// NextSequence suggests the next free register sequence for the year
	// containing now.
	NextSequence(ctx context.Context, now time.Time) (int, error)
}
