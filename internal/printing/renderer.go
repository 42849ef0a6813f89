package printing

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// FormData is the deserialized submission payload a template reads from.
// Values are whatever the form stored; templates only ever display them.
type FormData map[string]any

func (f FormData) Str(key string) string {
	switch v := f[key].(type) {
	case string:
		return v
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Sub returns a nested object ({"moyang": {...}}); missing keys yield an
// empty map so templates stay nil-safe.
func (f FormData) Sub(key string) FormData {
	if m, ok := f[key].(map[string]any); ok {
		return FormData(m)
	}
	return FormData{}
}

func (f FormData) List(key string) []FormData {
	raw, ok := f[key].([]any)
	if !ok {
		return nil
	}
	out := make([]FormData, 0, len(raw))
	for _, item := range raw {
		if m, ok := item.(map[string]any); ok {
			out = append(out, FormData(m))
		}
	}
	return out
}

// TemplateFunc fills the document body for one letter type.
type TemplateFunc func(f FormData, b *builder, doc *Document)

// templates maps every letter type to its renderer. Adding a letter type means
// adding one entry here and one schema to the letters catalog.
var templates = map[string]TemplateFunc{
	"Surat Keterangan Tidak Mampu":                renderTidakMampu,
	"Surat Pengantar SKCK":                        renderSKCK,
	"Surat Pengantar Pindah":                      renderPindah,
	"Surat Keterangan Usaha":                      renderUsaha,
	"Surat Keterangan Lahir":                      renderLahir,
	"Surat Keterangan Kematian":                   renderKematian,
	"Surat Keterangan Belum Menikah":              renderBelumMenikah,
	"Surat Keterangan Domisili":                   renderDomisili,
	"Surat Ijin Keramaian":                        renderIjinKeramaian,
	"Surat Keterangan Moyang":                     renderMoyang,
	"Surat Keterangan Pemakaman":                  renderPemakaman,
	"Surat Keterangan Wali":                       renderWali,
	"Surat Keterangan Reaktivasi BPJS Kesehatan":  renderReaktivasiBPJS,
	"Surat Pengantar Umum":                        renderPengantarUmum,
}

// Supported reports whether a letter type has a print template.
func Supported(letterType string) bool {
	_, ok := templates[letterType]
	return ok
}

// Render produces the printable document for a submission. The document
// number is a hard precondition: callers must send the admin to the numbering
// step first. Rendering is deterministic given its inputs; the serialized form
// data is decoded here and nowhere modified.
func Render(letterType, requesterName, formDataJSON, documentNumber string, issueDate time.Time) (*Document, error) {
	if documentNumber == "" {
		return nil, fmt.Errorf("submission has no document number yet")
	}

	tmpl, ok := templates[letterType]
	if !ok {
		return nil, fmt.Errorf("no print template for letter type %q", letterType)
	}

	var f FormData
	if err := json.Unmarshal([]byte(formDataJSON), &f); err != nil {
		return nil, fmt.Errorf("failed to decode form data: %w", err)
	}

	doc := &Document{
		LetterType:     letterType,
		DocumentNumber: documentNumber,
		IssueDate:      FormatIssueDate(issueDate),
		Signature: Signature{
			RequesterLabel: "Pemohon",
			RequesterName:  requesterName,
		},
	}

	b := &builder{}
	tmpl(f, b, doc)
	doc.Pages = b.finish()

	return doc, nil
}
