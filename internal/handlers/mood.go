package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"nuna-backend/internal/middleware"
	"nuna-backend/internal/models"
	"nuna-backend/internal/repository"
	"nuna-backend/internal/services"
)

type MoodHandler struct {
	moodRepo *repository.MoodRepo
}

func NewMoodHandler(moodRepo *repository.MoodRepo) *MoodHandler {
	return &MoodHandler{moodRepo: moodRepo}
}

// Create starts a new mood session, closing any session still open.
func (h *MoodHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req models.CreateMoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if strings.TrimSpace(req.Mood) == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Mood is required", r))
		return
	}

	session, err := h.moodRepo.StartSession(r.Context(), userID, models.Mood(req.Mood))
	if err != nil {
		log.Printf("failed to start mood session for %s: %v", userID, err)
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to create mood entry", r))
		return
	}

	writeJSON(w, http.StatusCreated, session)
}

func (h *MoodHandler) Active(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	session, err := h.moodRepo.GetActive(r.Context(), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "No active mood found", r))
			return
		}
		log.Printf("failed to fetch active mood for %s: %v", userID, err)
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to fetch active mood", r))
		return
	}

	writeJSON(w, http.StatusOK, session)
}

// Update closes a session. Ownership and existence checks are merged: a
// session owned by someone else reads as not found.
func (h *MoodHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid mood entry ID", r))
		return
	}

	var req models.UpdateMoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	endTime := time.Now()
	if req.EndTime != nil {
		endTime = *req.EndTime
	}

	session, err := h.moodRepo.CloseSession(r.Context(), id, userID, endTime)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Mood entry not found", r))
			return
		}
		log.Printf("failed to update mood entry %s: %v", id, err)
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to update mood entry", r))
		return
	}

	writeJSON(w, http.StatusOK, session)
}

func (h *MoodHandler) History(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	history, err := h.moodRepo.History(r.Context(), userID, limit, offset)
	if err != nil {
		log.Printf("failed to fetch mood history for %s: %v", userID, err)
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to fetch mood history", r))
		return
	}

	writeJSON(w, http.StatusOK, history)
}

func (h *MoodHandler) Stats(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	days, _ := strconv.Atoi(r.URL.Query().Get("days"))
	if days <= 0 {
		days = 7
	}
	since := time.Now().AddDate(0, 0, -days)

	sessions, err := h.moodRepo.ListClosedSince(r.Context(), userID, since)
	if err != nil {
		log.Printf("failed to fetch mood stats for %s: %v", userID, err)
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to fetch mood statistics", r))
		return
	}

	writeJSON(w, http.StatusOK, services.ComputeMoodStats(sessions, days))
}

func (h *MoodHandler) Distribution(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	startDate, ok := parseDateParam(r.URL.Query().Get("startDate"), false)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid startDate", r))
		return
	}
	endDate, ok := parseDateParam(r.URL.Query().Get("endDate"), true)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid endDate", r))
		return
	}

	sessions, err := h.moodRepo.ListBetween(r.Context(), userID, startDate, endDate)
	if err != nil {
		log.Printf("failed to fetch mood distribution for %s: %v", userID, err)
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to fetch mood distribution", r))
		return
	}

	writeJSON(w, http.StatusOK, services.ComputeMoodDistribution(sessions))
}

// parseDateParam accepts RFC 3339 or plain dates; empty means unbounded. A
// plain date used as the range end covers that entire day, keeping the bound
// inclusive.
func parseDateParam(raw string, rangeEnd bool) (*time.Time, bool) {
	if raw == "" {
		return nil, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, true
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		if rangeEnd {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		return &t, true
	}
	return nil, false
}
