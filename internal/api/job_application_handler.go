package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/jobsearch-api/internal/api/shared"
	"github.com/phrazzld/jobsearch-api/internal/dto"
	"github.com/phrazzld/jobsearch-api/internal/platform/logger"
	"github.com/phrazzld/jobsearch-api/internal/service"
)

// JobApplicationHandler handles job application HTTP requests.
type JobApplicationHandler struct {
	service service.JobApplicationService
	logger  *slog.Logger
}

// NewJobApplicationHandler creates a new JobApplicationHandler.
func NewJobApplicationHandler(svc service.JobApplicationService, logger *slog.Logger) *JobApplicationHandler {
	if svc == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("job application service cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &JobApplicationHandler{
		service: svc,
		logger:  logger.With(slog.String("component", "job_application_handler")),
	}
}

// List handles GET /job-applications.
func (h *JobApplicationHandler) List(w http.ResponseWriter, r *http.Request) {
	apps, err := h.service.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, apps)
}

// ListForJobListing handles GET /job-listings/{id}/applications.
func (h *JobApplicationHandler) ListForJobListing(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r)
	if !ok {
		return
	}

	apps, err := h.service.ListForJobListing(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, apps)
}

// Get handles GET /job-applications/{id}.
func (h *JobApplicationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r)
	if !ok {
		return
	}

	app, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, app)
}

// Create handles POST /job-applications.
func (h *JobApplicationHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req dto.CreateJobApplication
	if !decodeAndValidate(w, r, &req) {
		return
	}

	id, err := h.service.Add(r.Context(), &req)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Debug("job application created",
		slog.Int64("job_application_id", id),
		slog.Int64("job_listing_id", req.JobListingID))
	shared.RespondWithJSON(w, r, http.StatusCreated, CreatedResponse{ID: id})
}

// Update handles PUT /job-applications/{id}.
func (h *JobApplicationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateJobApplication
	if !decodeAndValidate(w, r, &req) {
		return
	}
	req.ID = id

	if err := h.service.Update(r.Context(), &req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /job-applications/{id}.
func (h *JobApplicationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
