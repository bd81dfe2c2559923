package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/jobsearch-api/internal/api/shared"
	"github.com/phrazzld/jobsearch-api/internal/dto"
	"github.com/phrazzld/jobsearch-api/internal/platform/logger"
	"github.com/phrazzld/jobsearch-api/internal/service"
)

// CreatedResponse is returned by every create endpoint.
type CreatedResponse struct {
	ID int64 `json:"id"`
}

// JobListingHandler handles job listing HTTP requests.
type JobListingHandler struct {
	service service.JobListingService
	logger  *slog.Logger
}

// NewJobListingHandler creates a new JobListingHandler.
func NewJobListingHandler(svc service.JobListingService, logger *slog.Logger) *JobListingHandler {
	if svc == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("job listing service cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &JobListingHandler{
		service: svc,
		logger:  logger.With(slog.String("component", "job_listing_handler")),
	}
}

// List handles GET /job-listings.
func (h *JobListingHandler) List(w http.ResponseWriter, r *http.Request) {
	listings, err := h.service.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, listings)
}

// Get handles GET /job-listings/{id}.
func (h *JobListingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r)
	if !ok {
		return
	}

	listing, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, listing)
}

// Create handles POST /job-listings.
func (h *JobListingHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req dto.CreateJobListing
	if !decodeAndValidate(w, r, &req) {
		return
	}

	id, err := h.service.Add(r.Context(), &req)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Debug("job listing created", slog.Int64("job_listing_id", id))
	shared.RespondWithJSON(w, r, http.StatusCreated, CreatedResponse{ID: id})
}

// Update handles PUT /job-listings/{id}. The path id selects the listing.
func (h *JobListingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateJobListing
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

// Delete handles DELETE /job-listings/{id}.
func (h *JobListingHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
