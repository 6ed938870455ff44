package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/clubops/clubops-backend-go/internal/domain/club"
	"github.com/clubops/clubops-backend-go/internal/handler/http/response"
)

type ClubHandler interface {
	GetMy(w http.ResponseWriter, r *http.Request)
	UpdateMy(w http.ResponseWriter, r *http.Request)
	DeleteMy(w http.ResponseWriter, r *http.Request)
}

type ClubHandlerImpl struct {
	clubService club.ClubService
}

func NewClubHandler(clubService club.ClubService) ClubHandler {
	return &ClubHandlerImpl{clubService: clubService}
}

// GetMy implements ClubHandler.
func (h *ClubHandlerImpl) GetMy(w http.ResponseWriter, r *http.Request) {
	clubResponse, err := h.clubService.GetMyClub(r.Context())
	if err != nil {
		slog.Error("GetMyClub service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, clubResponse)
}

// UpdateMy implements ClubHandler.
func (h *ClubHandlerImpl) UpdateMy(w http.ResponseWriter, r *http.Request) {
	var updateReq club.UpdateClubRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateClub decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	clubResponse, err := h.clubService.UpdateMyClub(r.Context(), updateReq)
	if err != nil {
		slog.Error("UpdateClub service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Club updated successfully", clubResponse)
}

// DeleteMy implements ClubHandler.
func (h *ClubHandlerImpl) DeleteMy(w http.ResponseWriter, r *http.Request) {
	if err := h.clubService.DeactivateMyClub(r.Context()); err != nil {
		slog.Error("DeactivateMyClub service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Club deactivated successfully", nil)
}
