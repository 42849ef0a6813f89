package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/models"
	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/residents"
)

func TestResidentCount(t *testing.T) {
	dir := residents.NewDirectory(residents.NewMemoryStore())
	for _, nik := range []string{"3301234567890001", "3301234567890002"} {
		require.NoError(t, dir.Upsert(context.Background(), &models.Resident{
			ID: nik, NIK: nik, FullName: "WARGA",
		}))
	}
	h := New(nil, nil, dir, nil, nil, nil, zap.NewNop())

	w := httptest.NewRecorder()
	h.ResidentCount(w, httptest.NewRequest(http.MethodGet, "/api/admin/residents/count", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]int64
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(2), body["count"])
}
