// Package handlers exposes the JSON API the web frontend talks to, plus the
// printable letter page.
package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/sessions"
	"go.uber.org/zap"

	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/ai"
	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/auth"
	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/complaints"
	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/db"
	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/residents"
	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/submissions"
)

type Handler struct {
	db          *db.Database
	store       *sessions.CookieStore
	residents   *residents.Directory
	submissions *submissions.Service
	complaints  *complaints.Service
	ai          *ai.Client
	log         *zap.Logger
}

func New(
	database *db.Database,
	store *sessions.CookieStore,
	directory *residents.Directory,
	submissionSvc *submissions.Service,
	complaintSvc *complaints.Service,
	aiClient *ai.Client,
	log *zap.Logger,
) *Handler {
	return &Handler{
		db:          database,
		store:       store,
		residents:   directory,
		submissions: submissionSvc,
		complaints:  complaintSvc,
		ai:          aiClient,
		log:         log,
	}
}

// toast is the error body the frontend renders as a notification.
type toast struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error("failed to encode response", zap.Error(err))
	}
}

func (h *Handler) writeToast(w http.ResponseWriter, status int, title, description string) {
	h.writeJSON(w, status, toast{Title: title, Description: description})
}

// currentUserID returns 0 when the request has no session.
func (h *Handler) currentUserID(r *http.Request) int {
	session, _ := h.store.Get(r, "session")
	if id, ok := session.Values["user_id"].(int); ok {
		return id
	}
	return 0
}

func (h *Handler) isAdmin(r *http.Request) bool {
	session, _ := h.store.Get(r, "session")
	role, _ := session.Values["role"].(string)
	return role == "admin"
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		h.writeToast(w, http.StatusBadRequest, "Permintaan Tidak Valid", "Format data tidak dikenali.")
		return
	}

	creds.Email = strings.TrimSpace(strings.ToLower(creds.Email))
	if creds.Email == "" || !strings.Contains(creds.Email, "@") {
		h.writeToast(w, http.StatusBadRequest, "Email Tidak Valid", "Masukkan alamat email yang benar.")
		return
	}
	if err := auth.ValidatePassword(creds.Password); err != nil {
		h.writeToast(w, http.StatusBadRequest, "Kata Sandi Lemah", err.Error())
		return
	}

	existing, err := h.db.GetUserByEmail(r.Context(), creds.Email)
	if err != nil {
		h.log.Error("failed to check existing user", zap.Error(err))
		h.writeToast(w, http.StatusInternalServerError, "Gagal Mendaftar", "Terjadi gangguan, coba lagi.")
		return
	}
	if existing != nil {
		h.writeToast(w, http.StatusConflict, "Email Terdaftar", "Gunakan email lain atau masuk.")
		return
	}

	hash, err := auth.HashPassword(creds.Password)
	if err != nil {
		h.writeToast(w, http.StatusInternalServerError, "Gagal Mendaftar", "Terjadi gangguan, coba lagi.")
		return
	}

	user, err := h.db.CreateUser(r.Context(), creds.Email, hash, "citizen")
	if err != nil {
		h.log.Error("failed to create user", zap.Error(err))
		h.writeToast(w, http.StatusInternalServerError, "Gagal Mendaftar", "Terjadi gangguan, coba lagi.")
		return
	}

	session, _ := h.store.Get(r, "session")
	session.Values["user_id"] = user.ID
	session.Values["role"] = user.Role
	session.Save(r, w)

	h.writeJSON(w, http.StatusCreated, user)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		h.writeToast(w, http.StatusBadRequest, "Permintaan Tidak Valid", "Format data tidak dikenali.")
		return
	}

	user, err := h.db.GetUserByEmail(r.Context(), strings.TrimSpace(strings.ToLower(creds.Email)))
	if err != nil {
		h.log.Error("failed to load user", zap.Error(err))
		h.writeToast(w, http.StatusInternalServerError, "Gagal Masuk", "Terjadi gangguan, coba lagi.")
		return
	}
	if user == nil || auth.CheckPassword(creds.Password, user.PasswordHash) != nil {
		h.writeToast(w, http.StatusUnauthorized, "Gagal Masuk", "Email atau kata sandi salah.")
		return
	}

	session, _ := h.store.Get(r, "session")
	session.Values["user_id"] = user.ID
	session.Values["role"] = user.Role
	session.Save(r, w)

	h.writeJSON(w, http.StatusOK, user)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	session, _ := h.store.Get(r, "session")
	session.Options.MaxAge = -1
	session.Save(r, w)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID := h.currentUserID(r)
	if userID == 0 {
		h.writeToast(w, http.StatusUnauthorized, "Belum Masuk", "Silakan masuk terlebih dahulu.")
		return
	}
	user, err := h.db.GetUserByID(r.Context(), userID)
	if err != nil || user == nil {
		h.writeToast(w, http.StatusUnauthorized, "Sesi Berakhir", "Silakan masuk kembali.")
		return
	}
	h.writeJSON(w, http.StatusOK, user)
}

type profileRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.db.GetCitizenProfile(r.Context(), h.currentUserID(r))
	if err != nil {
		h.log.Error("failed to load profile", zap.Error(err))
		h.writeToast(w, http.StatusInternalServerError, "Gagal Memuat Profil", "Terjadi gangguan, coba lagi.")
		return
	}
	if profile == nil {
		h.writeJSON(w, http.StatusOK, profileRequest{})
		return
	}
	h.writeJSON(w, http.StatusOK, profile)
}

func (h *Handler) SaveProfile(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeToast(w, http.StatusBadRequest, "Permintaan Tidak Valid", "Format data tidak dikenali.")
		return
	}
	if err := h.db.SaveCitizenProfile(r.Context(), h.currentUserID(r), req.PhoneNumber, req.Email); err != nil {
		h.log.Error("failed to save profile", zap.Error(err))
		h.writeToast(w, http.StatusInternalServerError, "Gagal Menyimpan", "Terjadi gangguan, coba lagi.")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
