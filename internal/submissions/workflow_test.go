package submissions

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/models"
	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/upload"
)

type fakeUploader struct {
	uploadErr error
	setErr    bool
	deleted   []string
	uploads   int
}

func (f *fakeUploader) Upload(ctx context.Context, letterType, requesterName string, files []upload.File) ([]models.UploadedFile, error) {
	f.uploads++
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	links := make([]models.UploadedFile, 0, len(files))
	for i, file := range files {
		links = append(links, models.UploadedFile{
			FieldName: file.FieldName,
			FileName:  upload.NormalizeTargetName(file.FieldName),
			FileID:    fmt.Sprintf("drive-%d", i+1),
		})
	}
	return links, nil
}

func (f *fakeUploader) Delete(ctx context.Context, fileIDs []string) error {
	f.deleted = append(f.deleted, fileIDs...)
	return nil
}

type fakeProfiles struct{}

func (fakeProfiles) GetCitizenProfile(ctx context.Context, userID int) (*models.CitizenProfile, error) {
	return &models.CitizenProfile{
		UserID:      userID,
		PhoneNumber: "081234567890",
		Email:       "warga@example.com",
	}, nil
}

const skuForm = `{"nik":"3301234567890001","purpose":"pengajuan kredit","name":"BUDI SANTOSO",` +
	`"birthPlace":"Cilacap","birthDate":"17-08-1999","gender":"Laki-laki",` +
	`"address":"Dusun Mergasari","job":"Pedagang","businessName":"Warung Makmur",` +
	`"businessType":"Kuliner","businessAddress":"Pasar Gandrungmangu","businessSince":"2015"}`

func newTestService(uploader *fakeUploader) (*Service, *MemoryStore) {
	store := NewMemoryStore()
	return NewService(store, uploader, fakeProfiles{}, zap.NewNop()), store
}

func TestCreateWithoutFilesGoesPending(t *testing.T) {
	svc, store := newTestService(&fakeUploader{})

	sub, err := svc.Create(context.Background(), CreateRequest{
		RequesterID:   7,
		RequesterName: "BUDI SANTOSO",
		NIK:           "3301234567890001",
		LetterType:    "Surat Keterangan Usaha",
		FormData:      skuForm,
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, sub.Status)
	assert.Equal(t, "081234567890", sub.PhoneNumber)

	stored, err := store.GetByID(context.Background(), sub.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, models.StatusPending, stored.Status)
	// The serialized payload survives untouched.
	assert.Equal(t, skuForm, stored.FormData)
}

func TestCreateUploadsAttachments(t *testing.T) {
	uploader := &fakeUploader{}
	svc, store := newTestService(uploader)

	skckForm := `{"nik":"3301234567890001","purpose":"Melamar pekerjaan","name":"BUDI",` +
		`"gender":"Laki-laki","birthPlace":"Cilacap","birthDate":"17-08-1999",` +
		`"nationality":"WNI","religion":"Islam","job":"Petani","address":"Mergasari"}`

	sub, err := svc.Create(context.Background(), CreateRequest{
		RequesterID:   7,
		RequesterName: "BUDI",
		NIK:           "3301234567890001",
		LetterType:    "Surat Pengantar SKCK",
		FormData:      skckForm,
		Files: []upload.File{
			{FieldName: "KTP Pemohon", MimeType: "image/jpeg", Data: []byte("scan")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, sub.Status)
	require.Len(t, sub.FileLinks, 1)
	assert.Equal(t, "KTP Pemohon", sub.FileLinks[0].FieldName)
	assert.Equal(t, "drive-1", sub.FileLinks[0].FileID)

	stored, _ := store.GetByID(context.Background(), sub.ID)
	assert.Equal(t, sub.FileLinks, stored.FileLinks)
}

func TestCreateRejectsMissingAttachment(t *testing.T) {
	uploader := &fakeUploader{}
	svc, _ := newTestService(uploader)

	skckForm := `{"nik":"3301234567890001","purpose":"Melamar","name":"BUDI",` +
		`"gender":"Laki-laki","birthPlace":"Cilacap","birthDate":"17-08-1999",` +
		`"nationality":"WNI","religion":"Islam","job":"Petani","address":"Mergasari"}`

	_, err := svc.Create(context.Background(), CreateRequest{
		RequesterName: "BUDI",
		NIK:           "3301234567890001",
		LetterType:    "Surat Pengantar SKCK",
		FormData:      skckForm,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "berkas tidak lengkap")
	// Rejected before anything reaches the upload endpoint.
	assert.Zero(t, uploader.uploads)
}

func TestCreateUploadFailureRejectsSubmission(t *testing.T) {
	uploader := &fakeUploader{uploadErr: errors.New("kuota Drive habis")}
	svc, store := newTestService(uploader)

	skckForm := `{"nik":"3301234567890001","purpose":"Melamar","name":"BUDI",` +
		`"gender":"Laki-laki","birthPlace":"Cilacap","birthDate":"17-08-1999",` +
		`"nationality":"WNI","religion":"Islam","job":"Petani","address":"Mergasari"}`

	_, err := svc.Create(context.Background(), CreateRequest{
		RequesterName: "BUDI",
		NIK:           "3301234567890001",
		LetterType:    "Surat Pengantar SKCK",
		FormData:      skckForm,
		Files: []upload.File{
			{FieldName: "KTP Pemohon", Data: []byte("scan")},
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kuota Drive habis")

	// The record survives as an audit trail with the failure noted.
	subs, _ := store.List(context.Background(), 10)
	require.Len(t, subs, 1)
	assert.Equal(t, models.StatusRejected, subs[0].Status)
	assert.Contains(t, subs[0].AdminNotes, "Gagal mengunggah lampiran")
	assert.Contains(t, subs[0].AdminNotes, "kuota Drive habis")
}

func TestCreateUnknownLetterType(t *testing.T) {
	svc, _ := newTestService(&fakeUploader{})
	_, err := svc.Create(context.Background(), CreateRequest{
		LetterType: "Surat Sakti",
		FormData:   `{}`,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tidak dikenal")
}

func TestSetStatusKeepsFileLinks(t *testing.T) {
	svc, store := newTestService(&fakeUploader{})

	sub, err := svc.Create(context.Background(), CreateRequest{
		RequesterName: "BUDI",
		NIK:           "3301234567890001",
		LetterType:    "Surat Keterangan Usaha",
		FormData:      skuForm,
		Files: []upload.File{
			{FieldName: "KTP Pemohon", Data: []byte("scan")},
		},
	})
	require.NoError(t, err)

	require.NoError(t, svc.SetStatus(context.Background(), sub.ID, models.StatusApproved, ""))

	stored, _ := store.GetByID(context.Background(), sub.ID)
	assert.Equal(t, models.StatusApproved, stored.Status)
	assert.Len(t, stored.FileLinks, 1)

	// Only approved or rejected are valid decisions.
	err = svc.SetStatus(context.Background(), sub.ID, models.StatusProcessing, "")
	require.Error(t, err)
}

func TestAssignNumber(t *testing.T) {
	svc, store := newTestService(&fakeUploader{})

	sub, err := svc.Create(context.Background(), CreateRequest{
		RequesterName: "BUDI",
		NIK:           "3301234567890001",
		LetterType:    "Surat Keterangan Usaha",
		FormData:      skuForm,
	})
	require.NoError(t, err)

	at := time.Date(2026, time.June, 10, 9, 0, 0, 0, time.Local)
	formatted, err := svc.AssignNumber(context.Background(), sub.ID, 12, at)
	require.NoError(t, err)
	assert.Equal(t, "012/VI/06/2026", formatted)

	stored, _ := store.GetByID(context.Background(), sub.ID)
	assert.Equal(t, "012/VI/06/2026", stored.DocumentNumber)

	// Later writes simply overwrite.
	_, err = svc.AssignNumber(context.Background(), sub.ID, 13, at)
	require.NoError(t, err)
	stored, _ = store.GetByID(context.Background(), sub.ID)
	assert.Equal(t, "013/VI/06/2026", stored.DocumentNumber)

	_, err = svc.AssignNumber(context.Background(), sub.ID, 0, at)
	require.Error(t, err)
}

func TestPrintGuards(t *testing.T) {
	svc, _ := newTestService(&fakeUploader{})
	now := time.Date(2026, time.June, 10, 9, 0, 0, 0, time.Local)

	sub, err := svc.Create(context.Background(), CreateRequest{
		RequesterName: "BUDI SANTOSO",
		NIK:           "3301234567890001",
		LetterType:    "Surat Keterangan Usaha",
		FormData:      skuForm,
	})
	require.NoError(t, err)

	// Pending letters cannot be printed.
	_, err = svc.Print(context.Background(), sub.ID, now)
	require.Error(t, err)

	require.NoError(t, svc.SetStatus(context.Background(), sub.ID, models.StatusApproved, ""))

	// Approved but unnumbered is still not printable.
	_, err = svc.Print(context.Background(), sub.ID, now)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "document number")

	_, err = svc.AssignNumber(context.Background(), sub.ID, 12, now)
	require.NoError(t, err)

	doc, err := svc.Print(context.Background(), sub.ID, now)
	require.NoError(t, err)
	assert.Equal(t, "012/VI/06/2026", doc.DocumentNumber)
	assert.Equal(t, "BUDI SANTOSO", doc.Signature.RequesterName)
}

const domisiliForm = `{"nik":"3301234567890001","name":"SITI AMINAH","gender":"Perempuan",` +
	`"birthPlace":"Cilacap","birthDate":"21-04-1990","nationality":"Indonesia",` +
	`"religion":"Islam","originAddress":"Dusun Karangsari, RT 001/002",` +
	`"domicileAddress":"Jl. Merdeka 12, Jakarta Selatan"}`

// Walks one domicile letter through its whole life: three attachments in,
// pending with three file links, approval, numbering, printable page out.
func TestDomicileLetterLifecycle(t *testing.T) {
	uploader := &fakeUploader{}
	svc, _ := newTestService(uploader)
	now := time.Date(2026, time.June, 10, 9, 0, 0, 0, time.Local)

	sub, err := svc.Create(context.Background(), CreateRequest{
		RequesterID:   7,
		RequesterName: "SITI AMINAH",
		NIK:           "3301234567890001",
		LetterType:    "Surat Keterangan Domisili",
		FormData:      domisiliForm,
		Files: []upload.File{
			{FieldName: "KTP Pemohon", MimeType: "image/jpeg", Data: []byte("ktp")},
			{FieldName: "KK Pemohon", MimeType: "image/jpeg", Data: []byte("kk")},
			{FieldName: "Surat Keterangan RT/RW", MimeType: "application/pdf", Data: []byte("rtrw")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, uploader.uploads)
	assert.Equal(t, models.StatusPending, sub.Status)
	require.Len(t, sub.FileLinks, 3)
	assert.Equal(t, "KTP Pemohon", sub.FileLinks[0].FieldName)
	assert.Equal(t, "Surat Keterangan RT/RW", sub.FileLinks[2].FieldName)

	require.NoError(t, svc.SetStatus(context.Background(), sub.ID, models.StatusApproved, ""))

	number, err := svc.AssignNumber(context.Background(), sub.ID, 12, now)
	require.NoError(t, err)
	assert.Equal(t, "012/VI/06/2026", number)

	doc, err := svc.Print(context.Background(), sub.ID, now)
	require.NoError(t, err)
	assert.Equal(t, "012/VI/06/2026", doc.DocumentNumber)
	require.Len(t, doc.Pages, 1)
	assert.True(t, doc.Signature.HideRequester)

	var texts []string
	for _, block := range doc.Pages[0].Blocks {
		texts = append(texts, block.Text)
		for _, r := range block.Rows {
			texts = append(texts, r.Label+": "+r.Value)
		}
	}
	joined := strings.Join(texts, "\n")
	assert.Contains(t, joined, "Jl. Merdeka 12, Jakarta Selatan")
	assert.Contains(t, joined, "CILACAP, 21 April 1990")
}
