package models

import (
	"time"

	"github.com/google/uuid"
)

type Meditation struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	LongDescription string    `json:"longDescription"`
	Duration        string    `json:"duration"`
	ImageURL        string    `json:"imageUrl"`
	Link            *string   `json:"link"`
	Steps           []string  `json:"steps"`
	CreatedAt       time.Time `json:"created_at"`
}

type MeditationRequest struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	LongDescription string   `json:"longDescription"`
	Duration        string   `json:"duration"`
	ImageURL        string   `json:"imageUrl"`
	Link            *string  `json:"link"`
	Steps           []string `json:"steps"`
}
