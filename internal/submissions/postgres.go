package submissions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/models"
)

const submissionColumns = `id, requester_name, nik, phone_number, email, letter_type,
	status, submission_data, COALESCE(document_number, ''), COALESCE(admin_notes, ''),
	COALESCE(file_links, '[]'), COALESCE(requester_id, 0), created_at, updated_at`

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func scanSubmission(row pgx.Row) (*models.LetterSubmission, error) {
	var sub models.LetterSubmission
	var fileLinks []byte
	err := row.Scan(
		&sub.ID, &sub.RequesterName, &sub.NIK, &sub.PhoneNumber, &sub.Email,
		&sub.LetterType, &sub.Status, &sub.FormData, &sub.DocumentNumber,
		&sub.AdminNotes, &fileLinks, &sub.RequesterID, &sub.CreatedAt, &sub.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(fileLinks, &sub.FileLinks); err != nil {
		return nil, fmt.Errorf("failed to decode file links for %s: %w", sub.ID, err)
	}
	return &sub, nil
}

func (s *PostgresStore) Create(ctx context.Context, sub *models.LetterSubmission) error {
	fileLinks, err := json.Marshal(sub.FileLinks)
	if err != nil {
		return err
	}
	now := time.Now()
	sub.CreatedAt = now
	sub.UpdatedAt = now

	var requesterID any
	if sub.RequesterID != 0 {
		requesterID = sub.RequesterID
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO letter_requests (
			id, requester_name, nik, phone_number, email, letter_type,
			status, submission_data, file_links, requester_id, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		sub.ID, sub.RequesterName, sub.NIK, sub.PhoneNumber, sub.Email,
		sub.LetterType, sub.Status, sub.FormData, fileLinks, requesterID,
		sub.CreatedAt, sub.UpdatedAt,
	)
	return err
}

func (s *PostgresStore) GetByID(ctx context.Context, id string) (*models.LetterSubmission, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+submissionColumns+` FROM letter_requests WHERE id = $1`, id)
	return scanSubmission(row)
}

func (s *PostgresStore) List(ctx context.Context, limit int) ([]*models.LetterSubmission, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+submissionColumns+` FROM letter_requests ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSubmissions(rows)
}

func (s *PostgresStore) ListByRequester(ctx context.Context, requesterID int, limit int) ([]*models.LetterSubmission, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+submissionColumns+` FROM letter_requests
		 WHERE requester_id = $1 ORDER BY created_at DESC LIMIT $2`, requesterID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSubmissions(rows)
}

func collectSubmissions(rows pgx.Rows) ([]*models.LetterSubmission, error) {
	var subs []*models.LetterSubmission
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

func (s *PostgresStore) SetOutcome(ctx context.Context, id string, status models.SubmissionStatus, adminNotes string, fileLinks []models.UploadedFile) error {
	links, err := json.Marshal(fileLinks)
	if err != nil {
		return err
	}
	tag, err := s.pool.Exec(ctx, `
		UPDATE letter_requests
		SET status = $2, admin_notes = NULLIF($3, ''), file_links = $4, updated_at = $5
		WHERE id = $1`,
		id, status, adminNotes, links, time.Now())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("submission %s not found", id)
	}
	return nil
}

// SetDocumentNumber is a plain overwrite. Two admins numbering the same
// letter race and the later write wins, matching how the desk expects the
// field to behave.
func (s *PostgresStore) SetDocumentNumber(ctx context.Context, id, documentNumber string) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE letter_requests SET document_number = $2, updated_at = $3 WHERE id = $1`,
		id, documentNumber, time.Now())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("submission %s not found", id)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM letter_requests WHERE id = $1`, id)
	return err
}

// NextSequence returns one more than the number of letters already created
// this calendar year, the desk's running counter for document numbers.
func (s *PostgresStore) NextSequence(ctx context.Context, now time.Time) (int, error) {
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	var count int
	err := s.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM letter_requests
		WHERE document_number IS NOT NULL AND created_at >= $1`, yearStart).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count + 1, nil
}
