package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/clubops/clubops-backend-go/internal/domain/shift"
	"github.com/clubops/clubops-backend-go/internal/handler/http/response"
)

type ShiftHandler interface {
	Open(w http.ResponseWriter, r *http.Request)
	Close(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
}

type ShiftHandlerImpl struct {
	shiftService shift.ShiftService
}

func NewShiftHandler(shiftService shift.ShiftService) ShiftHandler {
	return &ShiftHandlerImpl{shiftService: shiftService}
}

// Open implements ShiftHandler.
func (h *ShiftHandlerImpl) Open(w http.ResponseWriter, r *http.Request) {
	var openReq shift.OpenShiftRequest

	if err := json.NewDecoder(r.Body).Decode(&openReq); err != nil {
		slog.Error("OpenShift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	opened, err := h.shiftService.Open(r.Context(), openReq)
	if err != nil {
		slog.Error("OpenShift service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift opened successfully", opened)
}

// Close implements ShiftHandler.
func (h *ShiftHandlerImpl) Close(w http.ResponseWriter, r *http.Request) {
	var closeReq shift.CloseShiftRequest

	if err := json.NewDecoder(r.Body).Decode(&closeReq); err != nil {
		slog.Error("CloseShift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	closed, err := h.shiftService.Close(r.Context(), chi.URLParam(r, "shiftID"), closeReq)
	if err != nil {
		slog.Error("CloseShift service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift closed successfully", closed)
}

// Get implements ShiftHandler.
func (h *ShiftHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.shiftService.Get(r.Context(), chi.URLParam(r, "shiftID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, s)
}

// List implements ShiftHandler.
func (h *ShiftHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := paginationParams(r)

	shifts, err := h.shiftService.List(r.Context(), limit, offset)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, shifts, &response.Meta{Limit: limit, Offset: offset, Count: len(shifts)})
}

// ListByEmployee implements ShiftHandler.
func (h *ShiftHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	limit, offset := paginationParams(r)

	shifts, err := h.shiftService.ListByEmployee(r.Context(), chi.URLParam(r, "employeeID"), limit, offset)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, shifts, &response.Meta{Limit: limit, Offset: offset, Count: len(shifts)})
}

func paginationParams(r *http.Request) (limit, offset int) {
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ = strconv.Atoi(r.URL.Query().Get("offset"))
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
