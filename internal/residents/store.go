package residents

import (
	"context"

	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/models"
)

// Store is the persistence boundary for the resident registry.
type Store interface {
	// GetByID fetches a resident by document id (the import path stores rows
	// under their NIK, so this doubles as the cheap point read).
	GetByID(ctx context.Context, id string) (*models.Resident, error)
	// FindFirstByNIK runs an equality query on the nik field and returns the
	// first match, for rows stored under a generated id.
	FindFirstByNIK(ctx context.Context, nik string) (*models.Resident, error)
	// SearchByNamePrefix expects an already-uppercased term.
	SearchByNamePrefix(ctx context.Context, term string, limit int) ([]models.Resident, error)
	Upsert(ctx context.Context, r *models.Resident) error
	// BulkUpsert writes one pre-chunked batch atomically.
	BulkUpsert(ctx context.Context, rs []models.Resident) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
