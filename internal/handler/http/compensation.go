package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clubops/clubops-backend-go/internal/domain/compensation"
	"github.com/clubops/clubops-backend-go/internal/handler/http/response"
)

type CompensationHandler interface {
	CreateScheme(w http.ResponseWriter, r *http.Request)
	CreateVersion(w http.ResponseWriter, r *http.Request)
	GetScheme(w http.ResponseWriter, r *http.Request)
	ListSchemes(w http.ResponseWriter, r *http.Request)
	PreviewSalary(w http.ResponseWriter, r *http.Request)
}

type CompensationHandlerImpl struct {
	schemeService compensation.SchemeService
}

func NewCompensationHandler(schemeService compensation.SchemeService) CompensationHandler {
	return &CompensationHandlerImpl{schemeService: schemeService}
}

// CreateScheme implements CompensationHandler.
func (h *CompensationHandlerImpl) CreateScheme(w http.ResponseWriter, r *http.Request) {
	var createReq compensation.CreateSchemeRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateScheme decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	schemeResponse, err := h.schemeService.CreateScheme(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateScheme service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Compensation scheme created successfully", schemeResponse)
}

// CreateVersion implements CompensationHandler.
func (h *CompensationHandlerImpl) CreateVersion(w http.ResponseWriter, r *http.Request) {
	var versionReq compensation.NewVersionRequest

	if err := json.NewDecoder(r.Body).Decode(&versionReq); err != nil {
		slog.Error("CreateVersion decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	versionReq.SchemeID = chi.URLParam(r, "schemeID")

	schemeResponse, err := h.schemeService.CreateVersion(r.Context(), versionReq)
	if err != nil {
		slog.Error("CreateVersion service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Compensation scheme version created successfully", schemeResponse)
}

// GetScheme implements CompensationHandler.
func (h *CompensationHandlerImpl) GetScheme(w http.ResponseWriter, r *http.Request) {
	schemeResponse, err := h.schemeService.GetScheme(r.Context(), chi.URLParam(r, "schemeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, schemeResponse)
}

// ListSchemes implements CompensationHandler.
func (h *CompensationHandlerImpl) ListSchemes(w http.ResponseWriter, r *http.Request) {
	schemes, err := h.schemeService.ListSchemes(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, schemes, &response.Meta{Count: len(schemes)})
}

// PreviewSalary implements CompensationHandler.
func (h *CompensationHandlerImpl) PreviewSalary(w http.ResponseWriter, r *http.Request) {
	var previewReq compensation.PreviewSalaryRequest

	if err := json.NewDecoder(r.Body).Decode(&previewReq); err != nil {
		slog.Error("PreviewSalary decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	previewReq.SchemeID = chi.URLParam(r, "schemeID")

	result, err := h.schemeService.PreviewSalary(r.Context(), previewReq)
	if err != nil {
		slog.Error("PreviewSalary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
