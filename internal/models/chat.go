package models

// ChatRequest is the payload sent to the chat endpoint.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the reply from the AI chat.
type ChatResponse struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// AnalysisResponse wraps free-text output from the analysis endpoints.
type AnalysisResponse struct {
	Response string `json:"response"`
}

type LiveKitTokenResponse struct {
	Token               string `json:"token"`
	RoomName            string `json:"roomName"`
	ParticipantIdentity string `json:"participantIdentity"`
}
