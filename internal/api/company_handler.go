package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/jobsearch-api/internal/api/shared"
	"github.com/phrazzld/jobsearch-api/internal/dto"
	"github.com/phrazzld/jobsearch-api/internal/platform/logger"
	"github.com/phrazzld/jobsearch-api/internal/service"
)

// CompanyHandler handles company HTTP requests.
type CompanyHandler struct {
	service service.CompanyService
	logger  *slog.Logger
}

// NewCompanyHandler creates a new CompanyHandler.
func NewCompanyHandler(svc service.CompanyService, logger *slog.Logger) *CompanyHandler {
	if svc == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("company service cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CompanyHandler{
		service: svc,
		logger:  logger.With(slog.String("component", "company_handler")),
	}
}

// List handles GET /companies.
func (h *CompanyHandler) List(w http.ResponseWriter, r *http.Request) {
	companies, err := h.service.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, companies)
}

// Get handles GET /companies/{id}.
func (h *CompanyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r)
	if !ok {
		return
	}

	company, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, company)
}

// Create handles POST /companies.
func (h *CompanyHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req dto.CreateCompany
	if !decodeAndValidate(w, r, &req) {
		return
	}

	id, err := h.service.Add(r.Context(), &req)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Debug("company created", slog.Int64("company_id", id))
	shared.RespondWithJSON(w, r, http.StatusCreated, CreatedResponse{ID: id})
}

// Update handles PUT /companies/{id}.
func (h *CompanyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateCompany
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

// Delete handles DELETE /companies/{id}.
func (h *CompanyHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
