package complaints

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/ai"
	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/models"
)

type fakeSummarizer struct {
	result *ai.ComplaintSummary
	err    error
}

func (f fakeSummarizer) SummarizeComplaint(ctx context.Context, text string) (*ai.ComplaintSummary, error) {
	return f.result, f.err
}

func TestSubmitStoresDigestWithComplaint(t *testing.T) {
	store := NewMemoryStore()
	svc := NewService(store, fakeSummarizer{result: &ai.ComplaintSummary{
		Summary:   "Lampu jalan mati di RT 02",
		Sentiment: models.SentimentNegative,
		Keywords:  []string{"lampu jalan", "penerangan"},
	}}, zap.NewNop())

	submitter := 7
	got, err := svc.Submit(context.Background(), "Lampu jalan depan masjid sudah mati seminggu", &submitter)
	require.NoError(t, err)

	assert.Equal(t, models.ComplaintNew, got.Status)
	assert.Equal(t, models.SentimentNegative, got.Sentiment)
	assert.Equal(t, []string{"lampu jalan", "penerangan"}, got.Keywords)

	stored, err := store.GetByID(context.Background(), got.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Lampu jalan mati di RT 02", stored.Summary)
	require.NotNil(t, stored.SubmitterID)
	assert.Equal(t, 7, *stored.SubmitterID)
}

func TestSubmitFailsWhenAnalysisFails(t *testing.T) {
	store := NewMemoryStore()
	svc := NewService(store, fakeSummarizer{err: errors.New("quota exceeded")}, zap.NewNop())

	_, err := svc.Submit(context.Background(), "Jalan rusak", nil)
	require.Error(t, err)

	// All or nothing: the failed complaint never reaches storage.
	items, _ := store.List(context.Background(), 10)
	assert.Empty(t, items)
}

func TestSubmitRejectsEmptyText(t *testing.T) {
	svc := NewService(NewMemoryStore(), fakeSummarizer{}, zap.NewNop())
	_, err := svc.Submit(context.Background(), "   ", nil)
	require.Error(t, err)
}

func TestRespondResolves(t *testing.T) {
	store := NewMemoryStore()
	svc := NewService(store, fakeSummarizer{result: &ai.ComplaintSummary{
		Summary: "s", Sentiment: models.SentimentNeutral, Keywords: []string{},
	}}, zap.NewNop())

	got, err := svc.Submit(context.Background(), "Mohon perbaikan saluran air", nil)
	require.NoError(t, err)

	require.NoError(t, svc.Respond(context.Background(), got.ID, "Sudah dijadwalkan minggu depan"))

	stored, _ := store.GetByID(context.Background(), got.ID)
	assert.Equal(t, models.ComplaintResolved, stored.Status)
	assert.Equal(t, "Sudah dijadwalkan minggu depan", stored.AdminResponse)

	assert.Error(t, svc.Respond(context.Background(), got.ID, "  "))
}
