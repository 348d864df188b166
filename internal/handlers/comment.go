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

type CommentHandler struct {
	commentRepo *repository.CommentRepo
	postRepo    *repository.PostRepo
}

func NewCommentHandler(commentRepo *repository.CommentRepo, postRepo *repository.PostRepo) *CommentHandler {
	return &CommentHandler{commentRepo: commentRepo, postRepo: postRepo}
}

func (h *CommentHandler) ListByPost(w http.ResponseWriter, r *http.Request) {
	postID, err := uuid.Parse(chi.URLParam(r, "postId"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid post ID", r))
		return
	}

	comments, err := h.commentRepo.ListByPost(r.Context(), postID)
	if err != nil {
		log.Printf("failed to fetch comments for post %s: %v", postID, err)
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to fetch comments", r))
		return
	}

	writeJSON(w, http.StatusOK, comments)
}

func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req models.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if req.Content == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Comment content is required", r))
		return
	}

	if _, err := h.postRepo.GetByID(r.Context(), req.PostID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Post not found", r))
			return
		}
		log.Printf("failed to fetch post %s: %v", req.PostID, err)
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to create comment", r))
		return
	}

	comment := &models.Comment{
		PostID:  req.PostID,
		UserID:  userID,
		Content: req.Content,
		User:    &models.PublicUser{},
	}

	if err := h.commentRepo.Create(r.Context(), comment); err != nil {
		log.Printf("failed to create comment for %s: %v", userID, err)
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to create comment", r))
		return
	}

	writeJSON(w, http.StatusCreated, comment)
}

func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid comment ID", r))
		return
	}

	var req models.UpdateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if req.Content == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Comment content is required", r))
		return
	}

	comment, err := h.commentRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Comment not found", r))
			return
		}
		log.Printf("failed to fetch comment %s: %v", id, err)
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to update comment", r))
		return
	}

	userID := middleware.GetUserID(r.Context())
	if comment.UserID != userID {
		writeJSON(w, http.StatusForbidden, errorResp("FORBIDDEN", "Not authorized to update this comment", r))
		return
	}

	updated, err := h.commentRepo.Update(r.Context(), id, req.Content)
	if err != nil {
		log.Printf("failed to update comment %s: %v", id, err)
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to update comment", r))
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// Delete allows removal by the comment owner or the owner of the post.
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid comment ID", r))
		return
	}

	comment, err := h.commentRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Comment not found", r))
			return
		}
		log.Printf("failed to fetch comment %s: %v", id, err)
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to delete comment", r))
		return
	}

	userID := middleware.GetUserID(r.Context())
	if comment.UserID != userID {
		post, err := h.postRepo.GetByID(r.Context(), comment.PostID)
		if err != nil || post.UserID != userID {
			writeJSON(w, http.StatusForbidden, errorResp("FORBIDDEN", "Not authorized to delete this comment", r))
			return
		}
	}

	if err := h.commentRepo.Delete(r.Context(), id, comment.PostID); err != nil {
		log.Printf("failed to delete comment %s: %v", id, err)
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to delete comment", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Comment deleted successfully"})
}
