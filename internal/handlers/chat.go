package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"nuna-backend/internal/middleware"
	"nuna-backend/internal/models"
	"nuna-backend/internal/repository"
	"nuna-backend/internal/services"
)

type ChatHandler struct {
	journalRepo *repository.JournalRepo
	moodRepo    *repository.MoodRepo
	aiService   *services.AIService
}

func NewChatHandler(journalRepo *repository.JournalRepo, moodRepo *repository.MoodRepo, aiService *services.AIService) *ChatHandler {
	return &ChatHandler{
		journalRepo: journalRepo,
		moodRepo:    moodRepo,
		aiService:   aiService,
	}
}

// Chat forwards a single free-text message to the model.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Message is required", r))
		return
	}

	content, err := h.aiService.Complete(r.Context(), services.ChatSystemPrompt, req.Message)
	if err != nil {
		log.Printf("chat completion failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResp("AI_ERROR", "Failed to get AI response", r))
		return
	}

	writeJSON(w, http.StatusOK, models.ChatResponse{Role: "bot", Content: content})
}

// Recommendations analyzes the 10 most recent journals.
func (h *ChatHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	journals, err := h.journalRepo.ListRecent(r.Context(), userID, 10)
	if err != nil {
		log.Printf("failed to fetch journals for %s: %v", userID, err)
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to fetch journals", r))
		return
	}

	if len(journals) == 0 {
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "No journal entries found for analysis", r))
		return
	}

	content, err := h.aiService.Complete(r.Context(),
		services.RecommendationSystemPrompt, services.BuildRecommendationPrompt(journals))
	if err != nil {
		log.Printf("recommendation completion failed for %s: %v", userID, err)
		writeJSON(w, http.StatusInternalServerError, errorResp("AI_ERROR", "Failed to get AI response", r))
		return
	}

	writeJSON(w, http.StatusOK, models.AnalysisResponse{Response: content})
}

// Patterns analyzes recent journals together with 30 days of mood sessions.
func (h *ChatHandler) Patterns(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	journals, err := h.journalRepo.ListRecent(r.Context(), userID, 20)
	if err != nil {
		log.Printf("failed to fetch journals for %s: %v", userID, err)
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to fetch journals", r))
		return
	}

	if len(journals) == 0 {
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "No journal entries found for analysis", r))
		return
	}

	sessions, err := h.moodRepo.ListSince(r.Context(), userID, time.Now().AddDate(0, 0, -30))
	if err != nil {
		log.Printf("failed to fetch mood sessions for %s: %v", userID, err)
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to fetch mood history", r))
		return
	}

	content, err := h.aiService.Complete(r.Context(),
		services.PatternSystemPrompt, services.BuildPatternPrompt(journals, sessions))
	if err != nil {
		log.Printf("pattern completion failed for %s: %v", userID, err)
		writeJSON(w, http.StatusInternalServerError, errorResp("AI_ERROR", "Failed to get AI response", r))
		return
	}

	writeJSON(w, http.StatusOK, models.AnalysisResponse{Response: content})
}

// Progress returns the numeric week-over-week mood trend.
func (h *ChatHandler) Progress(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	days, _ := strconv.Atoi(r.URL.Query().Get("days"))
	if days <= 0 {
		days = 30
	}
	since := time.Now().AddDate(0, 0, -days)

	journals, err := h.journalRepo.ListSince(r.Context(), userID, since)
	if err != nil {
		log.Printf("failed to fetch journals for %s: %v", userID, err)
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to fetch journals", r))
		return
	}

	sessions, err := h.moodRepo.ListSince(r.Context(), userID, since)
	if err != nil {
		log.Printf("failed to fetch mood sessions for %s: %v", userID, err)
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to fetch mood history", r))
		return
	}

	result, err := services.ComputeProgress(journals, sessions, days)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
