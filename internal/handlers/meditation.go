package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"nuna-backend/internal/models"
	"nuna-backend/internal/repository"
)

type MeditationHandler struct {
	meditationRepo *repository.MeditationRepo
}

func NewMeditationHandler(meditationRepo *repository.MeditationRepo) *MeditationHandler {
	return &MeditationHandler{meditationRepo: meditationRepo}
}

func (h *MeditationHandler) List(w http.ResponseWriter, r *http.Request) {
	meditations, err := h.meditationRepo.List(r.Context())
	if err != nil {
		log.Printf("failed to fetch meditations: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to fetch meditations", r))
		return
	}

	writeJSON(w, http.StatusOK, meditations)
}

func (h *MeditationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid meditation ID", r))
		return
	}

	meditation, err := h.meditationRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Meditation not found", r))
			return
		}
		log.Printf("failed to fetch meditation %s: %v", id, err)
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to fetch meditation", r))
		return
	}

	writeJSON(w, http.StatusOK, meditation)
}

func (h *MeditationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.MeditationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if req.Title == "" || req.Description == "" || req.Duration == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR",
			"Required fields missing: title, description, and duration are required", r))
		return
	}

	meditation := &models.Meditation{
		Title:           req.Title,
		Description:     req.Description,
		LongDescription: req.LongDescription,
		Duration:        req.Duration,
		ImageURL:        req.ImageURL,
		Link:            req.Link,
		Steps:           req.Steps,
	}

	if err := h.meditationRepo.Create(r.Context(), meditation); err != nil {
		log.Printf("failed to create meditation: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to create meditation", r))
		return
	}

	writeJSON(w, http.StatusCreated, meditation)
}

func (h *MeditationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid meditation ID", r))
		return
	}

	meditation, err := h.meditationRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Meditation not found", r))
			return
		}
		log.Printf("failed to fetch meditation %s: %v", id, err)
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to update meditation", r))
		return
	}

	var req models.MeditationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if req.Title != "" {
		meditation.Title = req.Title
	}
	if req.Description != "" {
		meditation.Description = req.Description
	}
	if req.LongDescription != "" {
		meditation.LongDescription = req.LongDescription
	}
	if req.Duration != "" {
		meditation.Duration = req.Duration
	}
	if req.ImageURL != "" {
		meditation.ImageURL = req.ImageURL
	}
	if req.Link != nil {
		meditation.Link = req.Link
	}
	if req.Steps != nil {
		meditation.Steps = req.Steps
	}

	if err := h.meditationRepo.Update(r.Context(), meditation); err != nil {
		log.Printf("failed to update meditation %s: %v", id, err)
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to update meditation", r))
		return
	}

	writeJSON(w, http.StatusOK, meditation)
}

func (h *MeditationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid meditation ID", r))
		return
	}

	if _, err := h.meditationRepo.GetByID(r.Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Meditation not found", r))
			return
		}
		log.Printf("failed to fetch meditation %s: %v", id, err)
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to delete meditation", r))
		return
	}

	if err := h.meditationRepo.Delete(r.Context(), id); err != nil {
		log.Printf("failed to delete meditation %s: %v", id, err)
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to delete meditation", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Meditation deleted successfully"})
}
