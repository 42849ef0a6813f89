package residents

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/models"
)

func TestFindByNIKSkipsStoreOnBadInput(t *testing.T) {
	store := NewMemoryStore()
	dir := NewDirectory(store)

	for _, nik := range []string{"", "123", "12345678901234567", "3301abcd90120001", "tono"} {
		r, err := dir.FindByNIK(context.Background(), nik)
		require.NoError(t, err)
		assert.Nil(t, r)
	}
	assert.Equal(t, 0, store.Queries, "malformed NIK must not reach the store")
}

func TestFindByNIKFallsBackToFieldQuery(t *testing.T) {
	store := NewMemoryStore()
	dir := NewDirectory(store)
	ctx := context.Background()

	// A manually created row lives under a generated id, not its NIK.
	require.NoError(t, dir.Upsert(ctx, &models.Resident{
		ID:       NewID(),
		NIK:      "3301234567890001",
		FullName: "Budi Santoso",
	}))

	r, err := dir.FindByNIK(ctx, "3301234567890001")
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, "BUDI SANTOSO", r.FullName)

	r, err = dir.FindByNIK(ctx, "3309999999990001")
	require.NoError(t, err)
	assert.Nil(t, r)
}

func TestSearchByNameUppercasesTerm(t *testing.T) {
	store := NewMemoryStore()
	dir := NewDirectory(store)
	ctx := context.Background()

	for _, r := range []models.Resident{
		{ID: "3301234567890001", NIK: "3301234567890001", FullName: "Siti Aminah"},
		{ID: "3301234567890002", NIK: "3301234567890002", FullName: "Siti Rahayu"},
		{ID: "3301234567890003", NIK: "3301234567890003", FullName: "Budi Santoso"},
	} {
		row := r
		require.NoError(t, dir.Upsert(ctx, &row))
	}

	got, err := dir.SearchByName(ctx, "  siti ", 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "SITI AMINAH", got[0].FullName)

	got, err = dir.SearchByName(ctx, "", 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestUpsertRejectsInvalidRows(t *testing.T) {
	dir := NewDirectory(NewMemoryStore())
	ctx := context.Background()

	err := dir.Upsert(ctx, &models.Resident{NIK: "123", FullName: "Budi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "16 digits")

	err = dir.Upsert(ctx, &models.Resident{NIK: "3301234567890001", FullName: "   "})
	require.Error(t, err)
}

func TestBulkUpsertBatches(t *testing.T) {
	store := NewMemoryStore()
	dir := NewDirectory(store)
	ctx := context.Background()

	rows := make([]models.Resident, 1100)
	for i := range rows {
		nik := "33012345678" + pad5(i)
		rows[i] = models.Resident{ID: nik, NIK: nik, FullName: "WARGA"}
	}

	written, err := dir.BulkUpsert(ctx, rows)
	require.NoError(t, err)
	assert.Equal(t, 1100, written)

	count, err := dir.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1100), count)
}

func pad5(i int) string {
	digits := []byte{'0', '0', '0', '0', '0'}
	for pos := 4; pos >= 0 && i > 0; pos-- {
		digits[pos] = byte('0' + i%10)
		i /= 10
	}
	return string(digits)
}

// importSheet builds an in-memory workbook from a header row plus data rows.
func importSheet(t *testing.T, rows [][]string) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		for j, val := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", cell, val))
		}
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestImportMatchesHeaderAliases(t *testing.T) {
	store := NewMemoryStore()
	dir := NewDirectory(store)

	buf := importSheet(t, [][]string{
		{"Nomor_Induk", "Nama Lengkap", "JK", "ALAMAT", "RT/RW"},
		{"3301234567890001", "siti aminah", "P", "Dusun Karangsari", "001/002"},
		{"3301234567890002", "Budi Santoso", "L", "Dusun Mulyasari", "003/001"},
	})

	result, err := dir.Import(context.Background(), buf)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 0, result.Skipped)

	r, err := dir.FindByNIK(context.Background(), "3301234567890001")
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, "SITI AMINAH", r.FullName)
	assert.Equal(t, "001/002", r.RtRw)
}

func TestImportSkipsInvalidRows(t *testing.T) {
	dir := NewDirectory(NewMemoryStore())

	buf := importSheet(t, [][]string{
		{"NIK", "NAMA"},
		{"3301234567890001", "Siti Aminah"},
		{"123", "NIK Pendek"},
		{"3301234567890003", ""},
	})

	result, err := dir.Import(context.Background(), buf)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 2, result.Skipped)
}

func TestImportRequiresNIKColumn(t *testing.T) {
	dir := NewDirectory(NewMemoryStore())

	buf := importSheet(t, [][]string{
		{"NAMA", "ALAMAT"},
		{"Siti Aminah", "Dusun Karangsari"},
	})

	_, err := dir.Import(context.Background(), buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NIK")
}

func TestGenerateImportTemplate(t *testing.T) {
	data, err := GenerateImportTemplate()
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Penduduk")
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, "NIK", rows[0][0])
	assert.Contains(t, rows[0], "STATUS KAWIN")
}
