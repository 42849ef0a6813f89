package residents

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/models"
)

// Column aliases accepted in import spreadsheets. Header matching ignores
// case, whitespace and punctuation, so "Nomor_Induk" matches "Nomor Induk".
var importAliases = map[string][]string{
	"nik":            {"NIK", "Nomor Induk"},
	"fullName":       {"NAMA", "Nama Lengkap"},
	"gender":         {"JENIS KELAMIN", "JK", "Gender"},
	"placeOfBirth":   {"TEMPAT LAHIR"},
	"dateOfBirth":    {"TANGGAL LAHIR"},
	"address":        {"ALAMAT"},
	"rtRw":           {"RT/RW"},
	"relationship":   {"SHDK"},
	"religion":       {"AGAMA"},
	"occupation":     {"PEKERJAAN"},
	"maritalStatus":  {"STATUS KAWIN"},
	"educationLevel": {"PENDIDIKAN"},
}

var headerNormalizer = regexp.MustCompile(`[\W_]+`)

func normalizeHeader(s string) string {
	return headerNormalizer.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "")
}

// ImportResult reports what an Excel import did.
type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// ParseImportFile reads the first sheet of an xlsx workbook into residents.
// Rows without a 16-digit NIK or a name are skipped rather than failing the
// whole file. Imported rows use the NIK as document id and store the name
// uppercased.
func ParseImportFile(r io.Reader) ([]models.Resident, int, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, 0, fmt.Errorf("spreadsheet has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read sheet: %w", err)
	}
	if len(rows) < 2 {
		return nil, 0, fmt.Errorf("spreadsheet is empty")
	}

	// Map each known field to its column index via the alias table.
	columns := map[string]int{}
	for idx, header := range rows[0] {
		normalized := normalizeHeader(header)
		for field, aliases := range importAliases {
			for _, alias := range aliases {
				if normalized == normalizeHeader(alias) {
					columns[field] = idx
				}
			}
		}
	}
	if _, ok := columns["nik"]; !ok {
		return nil, 0, fmt.Errorf("spreadsheet has no NIK column")
	}

	cell := func(row []string, field string) string {
		idx, ok := columns[field]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	var out []models.Resident
	skipped := 0
	for _, row := range rows[1:] {
		nik := cell(row, "nik")
		name := cell(row, "fullName")
		if !ValidNIK(nik) || name == "" {
			skipped++
			continue
		}
		out = append(out, models.Resident{
			ID:                 nik,
			NIK:                nik,
			FullName:           strings.ToUpper(name),
			Gender:             cell(row, "gender"),
			PlaceOfBirth:       cell(row, "placeOfBirth"),
			DateOfBirth:        cell(row, "dateOfBirth"),
			Address:            cell(row, "address"),
			RtRw:               cell(row, "rtRw"),
			Religion:           cell(row, "religion"),
			Occupation:         cell(row, "occupation"),
			MaritalStatus:      cell(row, "maritalStatus"),
			EducationLevel:     cell(row, "educationLevel"),
			RelationshipToHead: cell(row, "relationship"),
		})
	}

	return out, skipped, nil
}

// Import parses the workbook and writes the rows through the directory.
func (d *Directory) Import(ctx context.Context, r io.Reader) (*ImportResult, error) {
	rows, skipped, err := ParseImportFile(r)
	if err != nil {
		return nil, err
	}
	written, err := d.BulkUpsert(ctx, rows)
	if err != nil {
		return nil, err
	}
	return &ImportResult{Imported: written, Skipped: skipped}, nil
}

// GenerateImportTemplate produces an empty workbook with the expected headers.
func GenerateImportTemplate() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Penduduk"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headers := []string{"NIK", "NAMA", "JENIS KELAMIN", "TEMPAT LAHIR", "TANGGAL LAHIR",
		"ALAMAT", "RT/RW", "SHDK", "AGAMA", "PEKERJAAN", "STATUS KAWIN", "PENDIDIKAN"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	out, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize template: %w", err)
	}
	return out.Bytes(), nil
}

// NewID returns a document id for manually created residents.
func NewID() string {
	return uuid.NewString()
}
