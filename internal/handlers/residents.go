package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/letters"
	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/models"
	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/residents"
)

// ListLetterTypes serves the service catalog the citizen portal renders its
// menu and forms from.
func (h *Handler) ListLetterTypes(w http.ResponseWriter, r *http.Request) {
	types := letters.Types()
	schemas := make([]*letters.Schema, 0, len(types))
	for _, t := range types {
		schemas = append(schemas, letters.Get(t))
	}
	h.writeJSON(w, http.StatusOK, schemas)
}

// Autofill resolves a NIK against the registry and returns the values for
// one form group. An unregistered NIK is a normal answer, not an error. The
// optional seq parameter is echoed back so the form can discard responses
// that arrive after a newer lookup for the same group.
func (h *Handler) Autofill(w http.ResponseWriter, r *http.Request) {
	letterType := r.URL.Query().Get("type")
	group := r.URL.Query().Get("group")
	nik := strings.TrimSpace(r.URL.Query().Get("nik"))
	seq := r.URL.Query().Get("seq")

	schema := letters.Get(letterType)
	if schema == nil {
		h.writeToast(w, http.StatusBadRequest, "Jenis Surat Tidak Dikenal", "Periksa kembali jenis surat.")
		return
	}
	var fill *letters.FillGroup
	for i := range schema.Groups {
		if schema.Groups[i].Name == group {
			fill = &schema.Groups[i]
		}
	}
	if fill == nil {
		h.writeToast(w, http.StatusBadRequest, "Grup Tidak Dikenal", "Periksa kembali bagian formulir.")
		return
	}

	res, err := h.residents.FindByNIK(r.Context(), nik)
	if err != nil {
		h.log.Error("autofill lookup failed", zap.String("nik", nik), zap.Error(err))
		h.writeToast(w, http.StatusInternalServerError, "Kuota Habis / Gangguan", "Gagal mengambil data penduduk.")
		return
	}
	if res == nil {
		h.writeJSON(w, http.StatusOK, map[string]any{"found": false, "seq": seq})
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"found":  true,
		"seq":    seq,
		"values": fill.FillValues(res),
	})
}

func (h *Handler) SearchResidents(w http.ResponseWriter, r *http.Request) {
	if nik := strings.TrimSpace(r.URL.Query().Get("nik")); nik != "" {
		res, err := h.residents.FindByNIK(r.Context(), nik)
		if err != nil {
			h.log.Error("resident lookup failed", zap.Error(err))
			h.writeToast(w, http.StatusInternalServerError, "Gagal Mencari", "Terjadi gangguan, coba lagi.")
			return
		}
		if res == nil {
			h.writeJSON(w, http.StatusOK, []*models.Resident{})
			return
		}
		h.writeJSON(w, http.StatusOK, []*models.Resident{res})
		return
	}

	matches, err := h.residents.SearchByName(r.Context(), r.URL.Query().Get("name"), 0)
	if err != nil {
		h.log.Error("resident search failed", zap.Error(err))
		h.writeToast(w, http.StatusInternalServerError, "Gagal Mencari", "Terjadi gangguan, coba lagi.")
		return
	}
	if matches == nil {
		matches = []models.Resident{}
	}
	h.writeJSON(w, http.StatusOK, matches)
}

func (h *Handler) SaveResident(w http.ResponseWriter, r *http.Request) {
	var res models.Resident
	if err := json.NewDecoder(r.Body).Decode(&res); err != nil {
		h.writeToast(w, http.StatusBadRequest, "Permintaan Tidak Valid", "Format data tidak dikenali.")
		return
	}
	if err := h.residents.Upsert(r.Context(), &res); err != nil {
		h.writeToast(w, http.StatusBadRequest, "Gagal Menyimpan", err.Error())
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

func (h *Handler) DeleteResident(w http.ResponseWriter, r *http.Request) {
	if err := h.residents.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.log.Error("failed to delete resident", zap.Error(err))
		h.writeToast(w, http.StatusInternalServerError, "Gagal Menghapus", "Terjadi gangguan, coba lagi.")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ImportResidents ingests the Excel registry export. Rows with an invalid
// NIK or empty name are skipped, not fatal.
func (h *Handler) ImportResidents(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		h.writeToast(w, http.StatusBadRequest, "Berkas Tidak Ditemukan", "Unggah file Excel data penduduk.")
		return
	}
	defer file.Close()

	result, err := h.residents.Import(r.Context(), file)
	if err != nil {
		h.writeToast(w, http.StatusBadRequest, "Gagal Mengimpor", err.Error())
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

func (h *Handler) ImportTemplate(w http.ResponseWriter, r *http.Request) {
	buf, err := residents.GenerateImportTemplate()
	if err != nil {
		h.log.Error("failed to build import template", zap.Error(err))
		h.writeToast(w, http.StatusInternalServerError, "Gagal Mengunduh", "Terjadi gangguan, coba lagi.")
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="template-penduduk.xlsx"`)
	w.Write(buf)
}

func (h *Handler) ResidentCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.residents.Count(r.Context())
	if err != nil {
		h.log.Error("failed to count residents", zap.Error(err))
		h.writeToast(w, http.StatusInternalServerError, "Gagal Memuat", "Terjadi gangguan, coba lagi.")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]int64{"count": count})
}
