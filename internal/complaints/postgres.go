package complaints

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/models"
)

const complaintColumns = `id, description, submission_date, summary, sentiment,
	COALESCE(keywords, '[]'), submitter_id, COALESCE(admin_response, ''), status`

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func scanComplaint(row pgx.Row) (*models.Complaint, error) {
	var c models.Complaint
	var keywords []byte
	err := row.Scan(
		&c.ID, &c.Description, &c.SubmissionDate, &c.Summary, &c.Sentiment,
		&keywords, &c.SubmitterID, &c.AdminResponse, &c.Status,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(keywords, &c.Keywords); err != nil {
		return nil, fmt.Errorf("failed to decode keywords for %s: %w", c.ID, err)
	}
	return &c, nil
}

func (s *PostgresStore) Create(ctx context.Context, c *models.Complaint) error {
	keywords, err := json.Marshal(c.Keywords)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO complaints (id, description, submission_date, summary, sentiment, keywords, submitter_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID, c.Description, c.SubmissionDate, c.Summary, c.Sentiment, keywords, c.SubmitterID, c.Status)
	return err
}

func (s *PostgresStore) GetByID(ctx context.Context, id string) (*models.Complaint, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+complaintColumns+` FROM complaints WHERE id = $1`, id)
	return scanComplaint(row)
}

func (s *PostgresStore) List(ctx context.Context, limit int) ([]*models.Complaint, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+complaintColumns+` FROM complaints ORDER BY submission_date DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Complaint
	for rows.Next() {
		c, err := scanComplaint(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *PostgresStore) ListBySubmitter(ctx context.Context, submitterID int, limit int) ([]*models.Complaint, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+complaintColumns+` FROM complaints WHERE submitter_id = $1
		 ORDER BY submission_date DESC LIMIT $2`, submitterID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Complaint
	for rows.Next() {
		c, err := scanComplaint(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *PostgresStore) SetResponse(ctx context.Context, id, adminResponse string, status models.ComplaintStatus) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE complaints SET admin_response = $2, status = $3 WHERE id = $1`,
		id, adminResponse, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("complaint %s not found", id)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM complaints WHERE id = $1`, id)
	return err
}
