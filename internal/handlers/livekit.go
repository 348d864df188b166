package handlers

import (
	"log"
	"net/http"

	"nuna-backend/internal/middleware"
	"nuna-backend/internal/models"
	"nuna-backend/internal/services"
)

type LiveKitHandler struct {
	livekitService *services.LiveKitService
}

func NewLiveKitHandler(livekitService *services.LiveKitService) *LiveKitHandler {
	return &LiveKitHandler{livekitService: livekitService}
}

// CreateToken mints a join token for a fresh room, identified by the caller.
func (h *LiveKitHandler) CreateToken(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	identity := userID.String()

	token, roomName, err := h.livekitService.CreateJoinToken(identity)
	if err != nil {
		log.Printf("failed to create LiveKit token for %s: %v", userID, err)
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to create room token", r))
		return
	}

	writeJSON(w, http.StatusOK, models.LiveKitTokenResponse{
		Token:               token,
		RoomName:            roomName,
		ParticipantIdentity: identity,
	})
}
