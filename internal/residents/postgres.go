package residents

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/models"
)

const residentColumns = `id, nik, full_name, gender, place_of_birth, date_of_birth,
	address, rt_rw, religion, occupation, marital_status, education_level,
	relationship_to_head, created_at, updated_at`

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

var _ Store = (*PostgresStore)(nil)

func scanResident(row pgx.Row) (*models.Resident, error) {
	var r models.Resident
	err := row.Scan(&r.ID, &r.NIK, &r.FullName, &r.Gender, &r.PlaceOfBirth,
		&r.DateOfBirth, &r.Address, &r.RtRw, &r.Religion, &r.Occupation,
		&r.MaritalStatus, &r.EducationLevel, &r.RelationshipToHead,
		&r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &r, nil
}

func (s *PostgresStore) GetByID(ctx context.Context, id string) (*models.Resident, error) {
	return scanResident(s.pool.QueryRow(ctx,
		"SELECT "+residentColumns+" FROM residents WHERE id = $1", id))
}

func (s *PostgresStore) FindFirstByNIK(ctx context.Context, nik string) (*models.Resident, error) {
	return scanResident(s.pool.QueryRow(ctx,
		"SELECT "+residentColumns+" FROM residents WHERE nik = $1 LIMIT 1", nik))
}

func (s *PostgresStore) SearchByNamePrefix(ctx context.Context, term string, limit int) ([]models.Resident, error) {
	// Half-open prefix scan; the sentinel is above every printable rune so the
	// range covers exactly the names starting with term.
	rows, err := s.pool.Query(ctx,
		"SELECT "+residentColumns+` FROM residents
		 WHERE full_name >= $1 AND full_name <= $1 || U&'\f8ff'
		 ORDER BY full_name LIMIT $2`,
		term, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []models.Resident
	for rows.Next() {
		var r models.Resident
		if err := rows.Scan(&r.ID, &r.NIK, &r.FullName, &r.Gender, &r.PlaceOfBirth,
			&r.DateOfBirth, &r.Address, &r.RtRw, &r.Religion, &r.Occupation,
			&r.MaritalStatus, &r.EducationLevel, &r.RelationshipToHead,
			&r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, err
		}
		results = append(results, r)
	}

	return results, rows.Err()
}

const upsertResidentSQL = `
	INSERT INTO residents (id, nik, full_name, gender, place_of_birth, date_of_birth,
		address, rt_rw, religion, occupation, marital_status, education_level,
		relationship_to_head, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, CURRENT_TIMESTAMP)
	ON CONFLICT (nik) DO UPDATE SET
		full_name = EXCLUDED.full_name,
		gender = EXCLUDED.gender,
		place_of_birth = EXCLUDED.place_of_birth,
		date_of_birth = EXCLUDED.date_of_birth,
		address = EXCLUDED.address,
		rt_rw = EXCLUDED.rt_rw,
		religion = EXCLUDED.religion,
		occupation = EXCLUDED.occupation,
		marital_status = EXCLUDED.marital_status,
		education_level = EXCLUDED.education_level,
		relationship_to_head = EXCLUDED.relationship_to_head,
		updated_at = CURRENT_TIMESTAMP`

func (s *PostgresStore) Upsert(ctx context.Context, r *models.Resident) error {
	_, err := s.pool.Exec(ctx, upsertResidentSQL,
		r.ID, r.NIK, r.FullName, r.Gender, r.PlaceOfBirth, r.DateOfBirth,
		r.Address, r.RtRw, r.Religion, r.Occupation, r.MaritalStatus,
		r.EducationLevel, r.RelationshipToHead)
	if err != nil {
		return fmt.Errorf("failed to upsert resident: %w", err)
	}
	return nil
}

// BulkUpsert writes the rows in a single transaction so a batch applies fully
// or not at all. Callers hand in chunks of at most 500 rows.
func (s *PostgresStore) BulkUpsert(ctx context.Context, rs []models.Resident) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, r := range rs {
		batch.Queue(upsertResidentSQL,
			r.ID, r.NIK, r.FullName, r.Gender, r.PlaceOfBirth, r.DateOfBirth,
			r.Address, r.RtRw, r.Religion, r.Occupation, r.MaritalStatus,
			r.EducationLevel, r.RelationshipToHead)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to write resident batch: %w", err)
	}

	return tx.Commit(ctx)
}

func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, "DELETE FROM residents WHERE id = $1", id)
	return err
}

func (s *PostgresStore) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.pool.QueryRow(ctx, "SELECT COUNT(*) FROM residents").Scan(&count)
	return count, err
}
