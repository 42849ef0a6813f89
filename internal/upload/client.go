// Package upload sends citizen attachments to the village's Google Apps
// Script endpoint, which drops them into the shared Drive folder the staff
// already work from.
package upload

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/models"
)

// File is one attachment queued for upload.
type File struct {
	FieldName string
	MimeType  string
	Data      []byte
}

type uploadedFile struct {
	FileID   string `json:"fileId"`
	FileName string `json:"fileName"`
}

type uploadResponse struct {
	Status  string         `json:"status"`
	Files   []uploadedFile `json:"files"`
	Message string         `json:"message"`
}

type filePayload struct {
	TargetFileName string `json:"targetFileName"`
	MimeType       string `json:"mimeType"`
	Base64Data     string `json:"base64Data"`
}

type uploadRequest struct {
	LetterType    string        `json:"letterType"`
	RequesterName string        `json:"requesterName"`
	Files         []filePayload `json:"files"`
}

type deleteRequest struct {
	Action  string   `json:"action"`
	FileIDs []string `json:"fileIds"`
}

type Client struct {
	http *resty.Client
	url  string
}

// NewClient targets the Apps Script web app URL. The script can take a while
// to cold start, hence the generous timeout.
func NewClient(url string) *Client {
	return &Client{
		http: resty.New().SetTimeout(2 * time.Minute),
		url:  url,
	}
}

// NormalizeTargetName folds the many form-specific attachment labels into the
// handful of file names the Drive folder is organized around.
func NormalizeTargetName(fieldName string) string {
	lower := strings.ToLower(fieldName)
	switch {
	case strings.Contains(lower, "ktp"):
		return "KTP"
	case strings.Contains(lower, "kk"), strings.Contains(lower, "kartu keluarga"):
		return "KK"
	case strings.Contains(lower, "surat lahir"), strings.Contains(lower, "surat rs"):
		return "Surat Lahir RS"
	default:
		return strings.Split(fieldName, " ")[0]
	}
}

// Upload sends every file in one request and maps the response back to the
// original form field names. Any non-success response is an error; callers
// decide what happens to the submission.
func (c *Client) Upload(ctx context.Context, letterType, requesterName string, files []File) ([]models.UploadedFile, error) {
	if c.url == "" {
		return nil, fmt.Errorf("URL unggah lampiran tidak dikonfigurasi")
	}

	req := uploadRequest{
		LetterType:    letterType,
		RequesterName: requesterName,
	}
	targetToField := make(map[string]string, len(files))
	for _, f := range files {
		target := NormalizeTargetName(f.FieldName)
		targetToField[target] = f.FieldName
		req.Files = append(req.Files, filePayload{
			TargetFileName: target,
			MimeType:       f.MimeType,
			Base64Data:     base64.StdEncoding.EncodeToString(f.Data),
		})
	}

	// Apps Script's ContentService serves its JSON as text/plain, so the
	// response must be decoded regardless of its advertised content type.
	var result uploadResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		ForceContentType("application/json").
		Post(c.url)
	if err != nil {
		return nil, fmt.Errorf("gagal menghubungi server unggahan: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("gagal menghubungi server unggahan: %s", resp.Status())
	}
	if result.Status != "success" || result.Files == nil {
		msg := result.Message
		if msg == "" {
			msg = "error tidak diketahui"
		}
		return nil, fmt.Errorf("gagal mengunggah file: %s", msg)
	}

	links := make([]models.UploadedFile, 0, len(result.Files))
	for _, f := range result.Files {
		fieldName := targetToField[f.FileName]
		if fieldName == "" {
			fieldName = f.FileName
		}
		links = append(links, models.UploadedFile{
			FieldName: fieldName,
			FileName:  f.FileName,
			FileID:    f.FileID,
		})
	}
	return links, nil
}

// Delete asks the script to remove previously uploaded files. Used to clean
// up after a submission fails partway so the Drive folder holds no orphans.
func (c *Client) Delete(ctx context.Context, fileIDs []string) error {
	if len(fileIDs) == 0 {
		return nil
	}

	var result uploadResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(deleteRequest{Action: "delete", FileIDs: fileIDs}).
		SetResult(&result).
		ForceContentType("application/json").
		Post(c.url)
	if err != nil {
		return fmt.Errorf("gagal menghapus lampiran: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("gagal menghapus lampiran: %s", resp.Status())
	}
	if result.Status != "success" {
		return fmt.Errorf("gagal menghapus lampiran: %s", result.Message)
	}
	return nil
}
