package residents

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/models"
)

var nikPattern = regexp.MustCompile(`^\d{16}$`)

// ValidNIK reports whether s is exactly 16 digits.
func ValidNIK(s string) bool {
	return nikPattern.MatchString(s)
}

const defaultSearchLimit = 20

// Directory is the resident registry service used by auto-fill and the admin
// pages.
type Directory struct {
	store Store
}

func NewDirectory(store Store) *Directory {
	return &Directory{store: store}
}

// FindByNIK returns nil for anything that is not a 16-digit numeric string
// without touching the store, so malformed input never costs a read. Rows
// imported in bulk live under their NIK as document id; rows added manually
// have a generated id, hence the fallback equality query. Not-found is nil,
// not an error.
func (d *Directory) FindByNIK(ctx context.Context, nik string) (*models.Resident, error) {
	if !ValidNIK(nik) {
		return nil, nil
	}

	r, err := d.store.GetByID(ctx, nik)
	if err != nil {
		return nil, fmt.Errorf("failed to look up resident: %w", err)
	}
	if r != nil {
		return r, nil
	}

	r, err = d.store.FindFirstByNIK(ctx, nik)
	if err != nil {
		return nil, fmt.Errorf("failed to look up resident: %w", err)
	}
	return r, nil
}

// SearchByName does an uppercased prefix search, capped to keep read cost
// bounded. An empty result is not an error.
func (d *Directory) SearchByName(ctx context.Context, term string, limit int) ([]models.Resident, error) {
	term = strings.ToUpper(strings.TrimSpace(term))
	if term == "" {
		return nil, nil
	}
	if limit <= 0 || limit > defaultSearchLimit {
		limit = defaultSearchLimit
	}
	return d.store.SearchByNamePrefix(ctx, term, limit)
}

// Upsert stores one resident, keyed by NIK. Names are stored uppercased the
// same way the bulk import writes them.
func (d *Directory) Upsert(ctx context.Context, r *models.Resident) error {
	if !ValidNIK(r.NIK) {
		return fmt.Errorf("NIK must be exactly 16 digits")
	}
	if strings.TrimSpace(r.FullName) == "" {
		return fmt.Errorf("full name is required")
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	r.FullName = strings.ToUpper(r.FullName)
	return d.store.Upsert(ctx, r)
}

// BulkUpsert writes residents in batches of at most 500 rows; each batch is
// atomic, the batches together are not. Rows missing a valid NIK or a name
// have already been skipped by the importer.
func (d *Directory) BulkUpsert(ctx context.Context, rs []models.Resident) (int, error) {
	written := 0
	for start := 0; start < len(rs); start += bulkBatchSize {
		end := start + bulkBatchSize
		if end > len(rs) {
			end = len(rs)
		}
		if err := d.store.BulkUpsert(ctx, rs[start:end]); err != nil {
			return written, fmt.Errorf("import batch starting at row %d failed: %w", start, err)
		}
		written += end - start
	}
	return written, nil
}

func (d *Directory) Delete(ctx context.Context, id string) error {
	return d.store.Delete(ctx, id)
}

func (d *Directory) Count(ctx context.Context) (int64, error) {
	return d.store.Count(ctx)
}

const bulkBatchSize = 500
