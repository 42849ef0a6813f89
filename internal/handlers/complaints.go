package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/models"
)

type complaintRequest struct {
	Description string `json:"description"`
}

// SubmitComplaint stores a citizen complaint together with its AI digest.
// The two are written as one record: if the analysis fails the complaint is
// not saved and the citizen sees a retry message.
func (h *Handler) SubmitComplaint(w http.ResponseWriter, r *http.Request) {
	var req complaintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeToast(w, http.StatusBadRequest, "Permintaan Tidak Valid", "Format data tidak dikenali.")
		return
	}

	var submitterID *int
	if id := h.currentUserID(r); id != 0 {
		submitterID = &id
	}

	complaint, err := h.complaints.Submit(r.Context(), req.Description, submitterID)
	if err != nil {
		h.log.Warn("complaint rejected", zap.Error(err))
		h.writeToast(w, http.StatusUnprocessableEntity, "Pengaduan Gagal", err.Error())
		return
	}
	h.writeJSON(w, http.StatusCreated, complaint)
}

// ListMyComplaints returns the signed-in citizen's own complaints.
func (h *Handler) ListMyComplaints(w http.ResponseWriter, r *http.Request) {
	complaints, err := h.complaints.ListMine(r.Context(), h.currentUserID(r), 0)
	if err != nil {
		h.log.Error("list own complaints failed", zap.Error(err))
		h.writeToast(w, http.StatusInternalServerError, "Gagal Memuat", "Terjadi gangguan, coba lagi.")
		return
	}
	if complaints == nil {
		complaints = []*models.Complaint{}
	}
	h.writeJSON(w, http.StatusOK, complaints)
}

func (h *Handler) ListComplaints(w http.ResponseWriter, r *http.Request) {
	complaints, err := h.complaints.List(r.Context(), 0)
	if err != nil {
		h.log.Error("list complaints failed", zap.Error(err))
		h.writeToast(w, http.StatusInternalServerError, "Gagal Memuat", "Terjadi gangguan, coba lagi.")
		return
	}
	if complaints == nil {
		complaints = []*models.Complaint{}
	}
	h.writeJSON(w, http.StatusOK, complaints)
}

type complaintResponseRequest struct {
	AdminResponse string `json:"adminResponse"`
}

// RespondToComplaint records the admin's answer and marks the complaint
// resolved.
func (h *Handler) RespondToComplaint(w http.ResponseWriter, r *http.Request) {
	var req complaintResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeToast(w, http.StatusBadRequest, "Permintaan Tidak Valid", "Format data tidak dikenali.")
		return
	}
	id := chi.URLParam(r, "id")
	if err := h.complaints.Respond(r.Context(), id, req.AdminResponse); err != nil {
		h.log.Warn("respond to complaint failed", zap.String("id", id), zap.Error(err))
		h.writeToast(w, http.StatusUnprocessableEntity, "Gagal Menanggapi", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DeleteComplaint(w http.ResponseWriter, r *http.Request) {
	if err := h.complaints.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.log.Error("delete complaint failed", zap.Error(err))
		h.writeToast(w, http.StatusInternalServerError, "Gagal Menghapus", "Terjadi gangguan, coba lagi.")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
