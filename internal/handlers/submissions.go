package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/db"
	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/models"
	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/printing"
	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/submissions"
	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/upload"
)

// maxSubmissionBytes caps the whole multipart body. Scanned attachments from
// phone cameras run a few MB each and a letter carries at most four of them.
const maxSubmissionBytes = 25 << 20

// CreateSubmission takes a citizen's letter request as multipart form data:
// the fields letterType, requesterName, nik and formData (the form payload as
// a JSON string), plus one file part per attachment named after its form
// field.
func (h *Handler) CreateSubmission(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxSubmissionBytes)
	if err := r.ParseMultipartForm(maxSubmissionBytes); err != nil {
		h.writeToast(w, http.StatusBadRequest, "Permintaan Tidak Valid", "Format data tidak dikenali.")
		return
	}

	req := submissions.CreateRequest{
		RequesterID:   h.currentUserID(r),
		RequesterName: r.FormValue("requesterName"),
		NIK:           r.FormValue("nik"),
		LetterType:    r.FormValue("letterType"),
		FormData:      r.FormValue("formData"),
	}
	if req.RequesterName == "" || req.LetterType == "" || req.FormData == "" {
		h.writeToast(w, http.StatusBadRequest, "Data Kurang", "Nama, jenis surat dan formulir wajib diisi.")
		return
	}

	for field, headers := range r.MultipartForm.File {
		for _, fh := range headers {
			f, err := fh.Open()
			if err != nil {
				h.writeToast(w, http.StatusBadRequest, "Berkas Rusak", "Lampiran tidak dapat dibaca, unggah ulang.")
				return
			}
			data, err := io.ReadAll(f)
			f.Close()
			if err != nil {
				h.writeToast(w, http.StatusBadRequest, "Berkas Rusak", "Lampiran tidak dapat dibaca, unggah ulang.")
				return
			}
			req.Files = append(req.Files, upload.File{
				FieldName: field,
				MimeType:  fh.Header.Get("Content-Type"),
				Data:      data,
			})
		}
	}

	sub, err := h.submissions.Create(r.Context(), req)
	if err != nil {
		h.log.Warn("submission rejected", zap.String("letterType", req.LetterType), zap.Error(err))
		h.writeToast(w, http.StatusUnprocessableEntity, "Pengajuan Gagal", err.Error())
		return
	}
	h.writeJSON(w, http.StatusCreated, sub)
}

// ListMySubmissions returns the signed-in citizen's own letters, newest first.
func (h *Handler) ListMySubmissions(w http.ResponseWriter, r *http.Request) {
	subs, err := h.submissions.ListMine(r.Context(), h.currentUserID(r), 0)
	if err != nil {
		h.log.Error("list own submissions failed", zap.Error(err))
		h.writeToast(w, http.StatusInternalServerError, "Gagal Memuat", "Terjadi gangguan, coba lagi.")
		return
	}
	if subs == nil {
		subs = []*models.LetterSubmission{}
	}
	h.writeJSON(w, http.StatusOK, subs)
}

func (h *Handler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	subs, err := h.submissions.List(r.Context(), 0)
	if err != nil {
		h.log.Error("list submissions failed", zap.Error(err))
		h.writeToast(w, http.StatusInternalServerError, "Gagal Memuat", "Terjadi gangguan, coba lagi.")
		return
	}
	if subs == nil {
		subs = []*models.LetterSubmission{}
	}
	h.writeJSON(w, http.StatusOK, subs)
}

// GetSubmission tracks one ticket by its id. The route is public: the uuid
// printed on the citizen's receipt is the credential.
func (h *Handler) GetSubmission(w http.ResponseWriter, r *http.Request) {
	sub, err := h.submissions.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.log.Error("get submission failed", zap.Error(err))
		h.writeToast(w, http.StatusInternalServerError, "Gagal Memuat", "Terjadi gangguan, coba lagi.")
		return
	}
	if sub == nil {
		h.writeToast(w, http.StatusNotFound, "Tidak Ditemukan", "Pengajuan tidak ditemukan.")
		return
	}
	h.writeJSON(w, http.StatusOK, sub)
}

type statusRequest struct {
	Status     models.SubmissionStatus `json:"status"`
	AdminNotes string                  `json:"adminNotes"`
}

// SetSubmissionStatus records the admin's decision: approved or rejected.
func (h *Handler) SetSubmissionStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeToast(w, http.StatusBadRequest, "Permintaan Tidak Valid", "Format data tidak dikenali.")
		return
	}
	id := chi.URLParam(r, "id")
	if err := h.submissions.SetStatus(r.Context(), id, req.Status, req.AdminNotes); err != nil {
		h.log.Warn("set status failed", zap.String("id", id), zap.Error(err))
		h.writeToast(w, http.StatusUnprocessableEntity, "Gagal Memperbarui", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type numberRequest struct {
	Sequence int `json:"sequence"`
}

// AssignDocumentNumber stamps the letter with its register number. The admin
// supplies the sequence by hand, same as the paper logbook it replaced.
func (h *Handler) AssignDocumentNumber(w http.ResponseWriter, r *http.Request) {
	var req numberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeToast(w, http.StatusBadRequest, "Permintaan Tidak Valid", "Format data tidak dikenali.")
		return
	}
	id := chi.URLParam(r, "id")
	number, err := h.submissions.AssignNumber(r.Context(), id, req.Sequence, time.Now())
	if err != nil {
		h.log.Warn("assign number failed", zap.String("id", id), zap.Error(err))
		h.writeToast(w, http.StatusUnprocessableEntity, "Gagal Menomori", err.Error())
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"documentNumber": number})
}

func (h *Handler) DeleteSubmission(w http.ResponseWriter, r *http.Request) {
	if err := h.submissions.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.log.Error("delete submission failed", zap.Error(err))
		h.writeToast(w, http.StatusInternalServerError, "Gagal Menghapus", "Terjadi gangguan, coba lagi.")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PrintSubmission renders the approved, numbered letter as a printable HTML
// page with the village letterhead. The browser's print dialog opens on load.
func (h *Handler) PrintSubmission(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	doc, err := h.submissions.Print(r.Context(), id, time.Now())
	if err != nil {
		h.log.Warn("print blocked", zap.String("id", id), zap.Error(err))
		h.writeToast(w, http.StatusUnprocessableEntity, "Belum Dapat Dicetak", err.Error())
		return
	}

	letterhead, err := h.db.GetVillageImage(r.Context(), db.SettingKopSurat)
	if err != nil {
		h.log.Error("load letterhead failed", zap.Error(err))
		h.writeToast(w, http.StatusInternalServerError, "Gagal Memuat", "Terjadi gangguan, coba lagi.")
		return
	}

	page, err := printing.RenderHTML(doc, letterhead)
	if err != nil {
		h.log.Error("render letter failed", zap.String("id", id), zap.Error(err))
		h.writeToast(w, http.StatusInternalServerError, "Gagal Mencetak", "Terjadi gangguan, coba lagi.")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

// NextDocumentSequence suggests the next free sequence for the current year.
func (h *Handler) NextDocumentSequence(w http.ResponseWriter, r *http.Request) {
	seq, err := h.submissions.NextSequence(r.Context(), time.Now())
	if err != nil {
		h.log.Error("next sequence failed", zap.Error(err))
		h.writeToast(w, http.StatusInternalServerError, "Gagal Memuat", "Terjadi gangguan, coba lagi.")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]int{"sequence": seq})
}
