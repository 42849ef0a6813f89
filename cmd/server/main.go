package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"

	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/ai"
	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/complaints"
	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/config"
	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/db"
	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/handlers"
	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/logging"
	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/middleware"
	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/residents"
	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/submissions"
	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/upload"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()
	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close()

	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}

	directory := residents.NewDirectory(residents.NewPostgresStore(database.Pool))
	uploader := upload.NewClient(cfg.UploadEndpoint)
	aiClient := ai.NewClient(cfg.GeminiAPIKey)

	submissionSvc := submissions.NewService(
		submissions.NewPostgresStore(database.Pool), uploader, database, logger)
	complaintSvc := complaints.NewService(
		complaints.NewPostgresStore(database.Pool), aiClient, logger)

	h := handlers.New(database, store, directory, submissionSvc, complaintSvc, aiClient, logger)

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
			w.Header().Set("Pragma", "no-cache")
			w.Header().Set("Expires", "0")
			next.ServeHTTP(w, r)
		})
	})

	r.Post("/api/register", h.Register)
	r.Post("/api/login", h.Login)
	r.Post("/api/logout", h.Logout)

	r.Get("/api/letter-types", h.ListLetterTypes)
	r.Get("/api/announcements", h.ListAnnouncements)
	r.Get("/api/settings", h.GetVillageSettings)
	r.Post("/api/complaints", h.SubmitComplaint)
	r.Get("/api/submissions/{id}", h.GetSubmission)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(store))
		r.Get("/api/me", h.Me)
		r.Get("/api/profile", h.GetProfile)
		r.Post("/api/profile", h.SaveProfile)
		r.Get("/api/autofill", h.Autofill)
		r.Get("/api/residents/search", h.SearchResidents)
		r.Post("/api/submissions", h.CreateSubmission)
		r.Get("/api/submissions/mine", h.ListMySubmissions)
		r.Get("/api/complaints/mine", h.ListMyComplaints)
		r.Post("/api/summarize", h.SummarizeDocument)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdmin(store))
		r.Get("/api/admin/submissions", h.ListSubmissions)
		r.Patch("/api/admin/submissions/{id}/status", h.SetSubmissionStatus)
		r.Patch("/api/admin/submissions/{id}/number", h.AssignDocumentNumber)
		r.Delete("/api/admin/submissions/{id}", h.DeleteSubmission)
		r.Get("/api/admin/submissions/{id}/print", h.PrintSubmission)
		r.Get("/api/admin/next-sequence", h.NextDocumentSequence)

		r.Get("/api/admin/residents", h.SearchResidents)
		r.Get("/api/admin/residents/count", h.ResidentCount)
		r.Post("/api/admin/residents", h.SaveResident)
		r.Delete("/api/admin/residents/{id}", h.DeleteResident)
		r.Post("/api/admin/residents/import", h.ImportResidents)
		r.Get("/api/admin/residents/import-template", h.ImportTemplate)

		r.Get("/api/admin/complaints", h.ListComplaints)
		r.Patch("/api/admin/complaints/{id}/response", h.RespondToComplaint)
		r.Delete("/api/admin/complaints/{id}", h.DeleteComplaint)

		r.Post("/api/admin/announcements", h.CreateAnnouncement)
		r.Patch("/api/admin/announcements/{id}", h.UpdateAnnouncement)
		r.Delete("/api/admin/announcements/{id}", h.DeleteAnnouncement)

		r.Post("/api/admin/settings", h.SaveVillageSetting)
	})

	logger.Info("server starting", zap.String("addr", cfg.ListenAddr))
	if err := http.ListenAndServe(cfg.ListenAddr, r); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}
