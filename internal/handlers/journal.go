package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"nuna-backend/internal/middleware"
	"nuna-backend/internal/models"
	"nuna-backend/internal/repository"
)

type JournalHandler struct {
	journalRepo *repository.JournalRepo
}

func NewJournalHandler(journalRepo *repository.JournalRepo) *JournalHandler {
	return &JournalHandler{journalRepo: journalRepo}
}

func (h *JournalHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	journals, err := h.journalRepo.ListByUser(r.Context(), userID)
	if err != nil {
		log.Printf("failed to fetch journals for %s: %v", userID, err)
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to fetch journals", r))
		return
	}

	writeJSON(w, http.StatusOK, journals)
}

func (h *JournalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid journal ID", r))
		return
	}

	journal, err := h.journalRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Journal not found", r))
			return
		}
		log.Printf("failed to fetch journal %s: %v", id, err)
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to fetch journal", r))
		return
	}

	userID := middleware.GetUserID(r.Context())
	if journal.UserID != userID {
		writeJSON(w, http.StatusForbidden, errorResp("FORBIDDEN", "Not authorized to access this journal", r))
		return
	}

	writeJSON(w, http.StatusOK, journal)
}

func (h *JournalHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req models.CreateJournalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if req.Title == "" || req.Content == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Title and content are required", r))
		return
	}

	mood := req.Mood
	if mood == "" {
		mood = "neutral"
	}

	journal := &models.Journal{
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
		Mood:    mood,
	}

	if err := h.journalRepo.Create(r.Context(), journal); err != nil {
		log.Printf("failed to create journal for %s: %v", userID, err)
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to create journal", r))
		return
	}

	writeJSON(w, http.StatusCreated, journal)
}

func (h *JournalHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid journal ID", r))
		return
	}

	journal, err := h.journalRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Journal not found", r))
			return
		}
		log.Printf("failed to fetch journal %s: %v", id, err)
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to update journal", r))
		return
	}

	userID := middleware.GetUserID(r.Context())
	if journal.UserID != userID {
		writeJSON(w, http.StatusForbidden, errorResp("FORBIDDEN", "Not authorized to update this journal", r))
		return
	}

	var req models.UpdateJournalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if req.Title != "" {
		journal.Title = req.Title
	}
	if req.Content != "" {
		journal.Content = req.Content
	}
	if req.Mood != "" {
		journal.Mood = req.Mood
	}

	if err := h.journalRepo.Update(r.Context(), journal); err != nil {
		log.Printf("failed to update journal %s: %v", id, err)
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to update journal", r))
		return
	}

	writeJSON(w, http.StatusOK, journal)
}

func (h *JournalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid journal ID", r))
		return
	}

	journal, err := h.journalRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Journal not found", r))
			return
		}
		log.Printf("failed to fetch journal %s: %v", id, err)
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to delete journal", r))
		return
	}

	userID := middleware.GetUserID(r.Context())
	if journal.UserID != userID {
		writeJSON(w, http.StatusForbidden, errorResp("FORBIDDEN", "Not authorized to delete this journal", r))
		return
	}

	if err := h.journalRepo.Delete(r.Context(), id); err != nil {
		log.Printf("failed to delete journal %s: %v", id, err)
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to delete journal", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Journal deleted successfully"})
}
