package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/db"
)

// GetVillageSettings returns the branding images as data URLs; unset images
// come back as empty strings so the frontend falls back to its defaults.
func (h *Handler) GetVillageSettings(w http.ResponseWriter, r *http.Request) {
	kop, err := h.db.GetVillageImage(r.Context(), db.SettingKopSurat)
	if err != nil {
		h.log.Error("load settings failed", zap.Error(err))
		h.writeToast(w, http.StatusInternalServerError, "Gagal Memuat", "Terjadi gangguan, coba lagi.")
		return
	}
	logo, err := h.db.GetVillageImage(r.Context(), db.SettingVillageLogo)
	if err != nil {
		h.log.Error("load settings failed", zap.Error(err))
		h.writeToast(w, http.StatusInternalServerError, "Gagal Memuat", "Terjadi gangguan, coba lagi.")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{
		"kopSurat":    kop,
		"villageLogo": logo,
	})
}

type settingImageRequest struct {
	Key       string `json:"key"`
	ImageData string `json:"imageData"`
}

// SaveVillageSetting stores one branding image. Oversized uploads and
// unknown keys are rejected with the db layer's message.
func (h *Handler) SaveVillageSetting(w http.ResponseWriter, r *http.Request) {
	var req settingImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeToast(w, http.StatusBadRequest, "Permintaan Tidak Valid", "Format data tidak dikenali.")
		return
	}
	if err := h.db.SaveVillageImage(r.Context(), req.Key, req.ImageData); err != nil {
		h.log.Warn("save setting failed", zap.String("key", req.Key), zap.Error(err))
		h.writeToast(w, http.StatusUnprocessableEntity, "Gagal Menyimpan", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type summarizeRequest struct {
	Content string `json:"content"`
}

// SummarizeDocument runs an admin-pasted report through the AI digest and
// returns the condensed text.
func (h *Handler) SummarizeDocument(w http.ResponseWriter, r *http.Request) {
	var req summarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeToast(w, http.StatusBadRequest, "Permintaan Tidak Valid", "Format data tidak dikenali.")
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		h.writeToast(w, http.StatusBadRequest, "Data Kurang", "Isi dokumen tidak boleh kosong.")
		return
	}
	summary, err := h.ai.SummarizeDocument(r.Context(), req.Content)
	if err != nil {
		h.log.Warn("document summary failed", zap.Error(err))
		h.writeToast(w, http.StatusUnprocessableEntity, "Gagal Meringkas", "Layanan AI sedang terganggu, coba lagi.")
		return
	}
	h.writeJSON(w, http.StatusOK, summary)
}
