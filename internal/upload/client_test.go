package upload

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTargetName(t *testing.T) {
	cases := map[string]string{
		"KTP Pemohon":           "KTP",
		"KTP Orang tua kandung": "KTP",
		"Kartu Keluarga":        "KK",
		"KK Ibu":                "KK",
		"Surat Lahir RS":        "Surat Lahir RS",
		"Akta Cerai":            "Akta",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeTargetName(in), in)
	}
}

func TestUploadMapsFilesBack(t *testing.T) {
	var got uploadRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))
		json.NewEncoder(w).Encode(uploadResponse{
			Status: "success",
			Files: []uploadedFile{
				{FileID: "drive-1", FileName: "KTP"},
				{FileID: "drive-2", FileName: "KK"},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	links, err := client.Upload(context.Background(), "Surat Pengantar SKCK", "BUDI", []File{
		{FieldName: "KTP Pemohon", MimeType: "image/jpeg", Data: []byte("ktp-bytes")},
		{FieldName: "Kartu Keluarga", MimeType: "application/pdf", Data: []byte("kk-bytes")},
	})
	require.NoError(t, err)

	assert.Equal(t, "Surat Pengantar SKCK", got.LetterType)
	assert.Equal(t, "BUDI", got.RequesterName)
	require.Len(t, got.Files, 2)
	assert.Equal(t, "KTP", got.Files[0].TargetFileName)
	assert.Equal(t, "a3RwLWJ5dGVz", got.Files[0].Base64Data)

	require.Len(t, links, 2)
	assert.Equal(t, "KTP Pemohon", links[0].FieldName)
	assert.Equal(t, "drive-1", links[0].FileID)
	assert.Equal(t, "Kartu Keluarga", links[1].FieldName)
}

// Apps Script's ContentService labels its JSON replies text/plain; the
// client has to decode the body anyway.
func TestUploadDecodesPlainTextResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		json.NewEncoder(w).Encode(uploadResponse{
			Status: "success",
			Files:  []uploadedFile{{FileID: "drive-9", FileName: "KTP"}},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	links, err := client.Upload(context.Background(), "Surat Keterangan Usaha", "BUDI", []File{
		{FieldName: "KTP Pemohon", Data: []byte("x")},
	})
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, "drive-9", links[0].FileID)
}

func TestUploadErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(uploadResponse{Status: "error", Message: "folder penuh"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Upload(context.Background(), "Surat Keterangan Usaha", "BUDI", []File{
		{FieldName: "KTP Pemohon", Data: []byte("x")},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "folder penuh")
}

func TestUploadUnconfigured(t *testing.T) {
	client := NewClient("")
	_, err := client.Upload(context.Background(), "Surat Keterangan Usaha", "BUDI", nil)
	require.Error(t, err)
}

func TestDelete(t *testing.T) {
	var got deleteRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))
		json.NewEncoder(w).Encode(uploadResponse{Status: "success"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	require.NoError(t, client.Delete(context.Background(), []string{"drive-1", "drive-2"}))
	assert.Equal(t, "delete", got.Action)
	assert.Equal(t, []string{"drive-1", "drive-2"}, got.FileIDs)

	// Nothing to delete is a no-op, not a request.
	require.NoError(t, NewClient("").Delete(context.Background(), nil))
}
