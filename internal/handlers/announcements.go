package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/models"
)

const announcementListLimit = 50

// ListAnnouncements is public: the landing page shows it without a session.
func (h *Handler) ListAnnouncements(w http.ResponseWriter, r *http.Request) {
	items, err := h.db.GetAnnouncements(r.Context(), announcementListLimit)
	if err != nil {
		h.log.Error("list announcements failed", zap.Error(err))
		h.writeToast(w, http.StatusInternalServerError, "Gagal Memuat", "Terjadi gangguan, coba lagi.")
		return
	}
	if items == nil {
		items = []*models.Announcement{}
	}
	h.writeJSON(w, http.StatusOK, items)
}

type announcementRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (h *Handler) CreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	var req announcementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeToast(w, http.StatusBadRequest, "Permintaan Tidak Valid", "Format data tidak dikenali.")
		return
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		h.writeToast(w, http.StatusBadRequest, "Data Kurang", "Judul dan isi pengumuman wajib diisi.")
		return
	}

	author := "Admin Desa"
	if user, err := h.db.GetUserByID(r.Context(), h.currentUserID(r)); err == nil && user != nil {
		author = user.Email
	}

	a := &models.Announcement{
		ID:         uuid.NewString(),
		Title:      req.Title,
		Content:    req.Content,
		AuthorName: author,
	}
	if err := h.db.CreateAnnouncement(r.Context(), a); err != nil {
		h.log.Error("create announcement failed", zap.Error(err))
		h.writeToast(w, http.StatusInternalServerError, "Gagal Menyimpan", "Terjadi gangguan, coba lagi.")
		return
	}
	h.writeJSON(w, http.StatusCreated, a)
}

func (h *Handler) UpdateAnnouncement(w http.ResponseWriter, r *http.Request) {
	var req announcementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeToast(w, http.StatusBadRequest, "Permintaan Tidak Valid", "Format data tidak dikenali.")
		return
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		h.writeToast(w, http.StatusBadRequest, "Data Kurang", "Judul dan isi pengumuman wajib diisi.")
		return
	}
	if err := h.db.UpdateAnnouncement(r.Context(), chi.URLParam(r, "id"), req.Title, req.Content); err != nil {
		h.log.Error("update announcement failed", zap.Error(err))
		h.writeToast(w, http.StatusInternalServerError, "Gagal Menyimpan", "Terjadi gangguan, coba lagi.")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DeleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	if err := h.db.DeleteAnnouncement(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.log.Error("delete announcement failed", zap.Error(err))
		h.writeToast(w, http.StatusInternalServerError, "Gagal Menghapus", "Terjadi gangguan, coba lagi.")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
