package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/clubops/clubops-backend-go/internal/domain/maintenance"
	"github.com/clubops/clubops-backend-go/internal/handler/http/response"
)

type MaintenanceHandler interface {
	CreateTask(w http.ResponseWriter, r *http.Request)
	GetTask(w http.ResponseWriter, r *http.Request)
	ListTasks(w http.ResponseWriter, r *http.Request)
	ListEmployeeTasks(w http.ResponseWriter, r *http.Request)
	CompleteTask(w http.ResponseWriter, r *http.Request)
	RejectTask(w http.ResponseWriter, r *http.Request)
	ApproveTask(w http.ResponseWriter, r *http.Request)
	MonthlySummary(w http.ResponseWriter, r *http.Request)
	GetConfig(w http.ResponseWriter, r *http.Request)
	UpdateConfig(w http.ResponseWriter, r *http.Request)
}

type MaintenanceHandlerImpl struct {
	maintenanceService maintenance.MaintenanceService
}

func NewMaintenanceHandler(maintenanceService maintenance.MaintenanceService) MaintenanceHandler {
	return &MaintenanceHandlerImpl{maintenanceService: maintenanceService}
}

// CreateTask implements MaintenanceHandler.
func (h *MaintenanceHandlerImpl) CreateTask(w http.ResponseWriter, r *http.Request) {
	var createReq maintenance.CreateTaskRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateTask decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	task, err := h.maintenanceService.CreateTask(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateTask service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Maintenance task created successfully", task)
}

// GetTask implements MaintenanceHandler.
func (h *MaintenanceHandlerImpl) GetTask(w http.ResponseWriter, r *http.Request) {
	task, err := h.maintenanceService.GetTask(r.Context(), chi.URLParam(r, "taskID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, task)
}

// ListTasks implements MaintenanceHandler.
func (h *MaintenanceHandlerImpl) ListTasks(w http.ResponseWriter, r *http.Request) {
	limit, offset := paginationParams(r)

	var status *maintenance.TaskStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		s := maintenance.TaskStatus(raw)
		status = &s
	}

	tasks, err := h.maintenanceService.ListTasks(r.Context(), status, limit, offset)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, tasks, &response.Meta{Limit: limit, Offset: offset, Count: len(tasks)})
}

// ListEmployeeTasks implements MaintenanceHandler.
func (h *MaintenanceHandlerImpl) ListEmployeeTasks(w http.ResponseWriter, r *http.Request) {
	limit, offset := paginationParams(r)

	tasks, err := h.maintenanceService.ListEmployeeTasks(r.Context(), chi.URLParam(r, "employeeID"), limit, offset)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, tasks, &response.Meta{Limit: limit, Offset: offset, Count: len(tasks)})
}

// CompleteTask implements MaintenanceHandler.
func (h *MaintenanceHandlerImpl) CompleteTask(w http.ResponseWriter, r *http.Request) {
	var completeReq maintenance.CompleteTaskRequest

	// An empty body means "completed now"
	if err := json.NewDecoder(r.Body).Decode(&completeReq); err != nil && !errors.Is(err, io.EOF) {
		slog.Error("CompleteTask decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	task, err := h.maintenanceService.CompleteTask(r.Context(), chi.URLParam(r, "taskID"), completeReq)
	if err != nil {
		slog.Error("CompleteTask service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Maintenance task completed successfully", task)
}

// RejectTask implements MaintenanceHandler.
func (h *MaintenanceHandlerImpl) RejectTask(w http.ResponseWriter, r *http.Request) {
	if err := h.maintenanceService.RejectTask(r.Context(), chi.URLParam(r, "taskID")); err != nil {
		slog.Error("RejectTask service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Maintenance task rejected", nil)
}

// ApproveTask implements MaintenanceHandler.
func (h *MaintenanceHandlerImpl) ApproveTask(w http.ResponseWriter, r *http.Request) {
	if err := h.maintenanceService.ApproveTask(r.Context(), chi.URLParam(r, "taskID")); err != nil {
		slog.Error("ApproveTask service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Maintenance task approved", nil)
}

// MonthlySummary implements MaintenanceHandler.
func (h *MaintenanceHandlerImpl) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	month, _ := strconv.Atoi(r.URL.Query().Get("month"))
	if year <= 0 {
		year = now.Year()
	}
	if month < 1 || month > 12 {
		month = int(now.Month())
	}

	summary, err := h.maintenanceService.MonthlySummary(r.Context(), chi.URLParam(r, "employeeID"), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// GetConfig implements MaintenanceHandler.
func (h *MaintenanceHandlerImpl) GetConfig(w http.ResponseWriter, r *http.Request) {
	config, err := h.maintenanceService.GetConfig(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, config)
}

// UpdateConfig implements MaintenanceHandler.
func (h *MaintenanceHandlerImpl) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	var updateReq maintenance.UpdateKPIConfigRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateConfig decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	config, err := h.maintenanceService.UpdateConfig(r.Context(), updateReq)
	if err != nil {
		slog.Error("UpdateConfig service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "KPI config updated successfully", config)
}
