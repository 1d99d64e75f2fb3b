package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"training-portal-backend/internal/service"
	"training-portal-backend/internal/storage"
)

// RouterConfig bundles everything the HTTP surface needs.
type RouterConfig struct {
	Trainings     service.TrainingService
	Partners      service.PartnerService
	Auth          service.AuthService
	Verification  service.VerificationService
	Analytics     service.AnalyticsService
	Storage       storage.ObjectStorage
	Authenticator *Authenticator
	UploadFolder  string
	MaxFileSizeMB int

	// LocalFilesDir, when set, serves uploaded files from disk under /files/.
	// Used with the local storage backend; empty for GCS.
	LocalFilesDir string
}

// NewRouter builds the full route table under /api/v1.
func NewRouter(cfg RouterConfig) *mux.Router {
	trainings := NewTrainingHandler(cfg.Trainings)
	partners := NewPartnerHandler(cfg.Partners)
	auth := NewAuthHandler(cfg.Auth)
	verification := NewVerificationHandler(cfg.Verification)
	analytics := NewAnalyticsHandler(cfg.Analytics)
	uploads := NewUploadHandler(cfg.Storage, cfg.UploadFolder, cfg.MaxFileSizeMB)

	requireAuth := cfg.Authenticator.RequireAuth

	router := mux.NewRouter()
	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/health", handleHealth).Methods(http.MethodGet)

	// Public surface.
	api.HandleFunc("/auth/login", auth.Login).Methods(http.MethodPost)
	api.HandleFunc("/partners/register", partners.Register).Methods(http.MethodPost)
	api.HandleFunc("/verify/{aadhaar}", verification.Verify).Methods(http.MethodGet)

	// Trainings.
	api.HandleFunc("/trainings", requireAuth(trainings.List)).Methods(http.MethodGet)
	api.HandleFunc("/trainings", requireAuth(trainings.Submit)).Methods(http.MethodPost)
	api.HandleFunc("/trainings/admin", requireAuth(trainings.AdminCreate)).Methods(http.MethodPost)
	api.HandleFunc("/trainings/{id}", requireAuth(trainings.Get)).Methods(http.MethodGet)
	api.HandleFunc("/trainings/{id}", requireAuth(trainings.Update)).Methods(http.MethodPut)
	api.HandleFunc("/trainings/{id}", requireAuth(trainings.Delete)).Methods(http.MethodDelete)
	api.HandleFunc("/trainings/{id}/status", requireAuth(trainings.Transition)).Methods(http.MethodPatch)

	// Partners.
	api.HandleFunc("/partners", requireAuth(partners.List)).Methods(http.MethodGet)
	api.HandleFunc("/partners/{id}", requireAuth(partners.Get)).Methods(http.MethodGet)
	api.HandleFunc("/partners/{id}/approve", requireAuth(partners.Approve)).Methods(http.MethodPost)
	api.HandleFunc("/partners/{id}/reject", requireAuth(partners.Reject)).Methods(http.MethodPost)
	api.HandleFunc("/partners/{id}/account-status", requireAuth(partners.SetAccountStatus)).Methods(http.MethodPatch)

	// Uploads.
	api.HandleFunc("/uploads", requireAuth(uploads.Upload)).Methods(http.MethodPost)
	api.HandleFunc("/uploads", requireAuth(uploads.Delete)).Methods(http.MethodDelete)

	// Analytics.
	api.HandleFunc("/analytics/dashboard", requireAuth(analytics.Dashboard)).Methods(http.MethodGet)
	api.HandleFunc("/analytics/coverage", requireAuth(analytics.Coverage)).Methods(http.MethodGet)
	api.HandleFunc("/analytics/locations", requireAuth(analytics.TrainingLocations)).Methods(http.MethodGet)
	api.HandleFunc("/analytics/gaps", requireAuth(analytics.Gaps)).Methods(http.MethodGet)

	if cfg.LocalFilesDir != "" {
		router.PathPrefix("/files/").Handler(
			http.StripPrefix("/files/", http.FileServer(http.Dir(cfg.LocalFilesDir))))
	}

	return router
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
