package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nuna-backend/internal/models"
	"nuna-backend/internal/services"
)

// ─── Shared Helper Tests ───

func TestWriteJSON(t *testing.T) {
	rr := httptest.NewRecorder()

	writeJSON(rr, http.StatusCreated, map[string]string{"message": "Created"})

	if rr.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected Content-Type 'application/json', got %q", ct)
	}

	var body map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body["message"] != "Created" {
		t.Errorf("Expected message 'Created', got %q", body["message"])
	}
}

func TestErrorResp(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/mood", nil)
	req.Header.Set("X-Request-ID", "req-abc")

	resp := errorResp("NOT_FOUND", "No active mood found", req)

	if resp.Error.Code != "NOT_FOUND" {
		t.Errorf("Expected code NOT_FOUND, got %q", resp.Error.Code)
	}
	if resp.Error.Message != "No active mood found" {
		t.Errorf("Expected message 'No active mood found', got %q", resp.Error.Message)
	}
	if resp.Error.RequestID != "req-abc" {
		t.Errorf("Expected request_id 'req-abc', got %q", resp.Error.RequestID)
	}
}

func TestHandleServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", &services.ValidationError{Fields: map[string]string{"email": "Invalid email format"}}, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"conflict", &services.ConflictError{Message: "Email already in use"}, http.StatusConflict, "CONFLICT"},
		{"not found", &services.NotFoundError{Message: "User not found"}, http.StatusNotFound, "NOT_FOUND"},
		{"unauthorized", &services.UnauthorizedError{Message: "Invalid email or password"}, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"forbidden", &services.ForbiddenError{Message: "Not yours"}, http.StatusForbidden, "FORBIDDEN"},
		{"rate limited", &services.RateLimitError{Message: "Slow down"}, http.StatusTooManyRequests, "RATE_LIMITED"},
		{"unknown", fmt.Errorf("database exploded"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", nil)
			rr := httptest.NewRecorder()

			handleServiceError(rr, req, tc.err)

			if rr.Code != tc.wantStatus {
				t.Errorf("Expected status %d, got %d", tc.wantStatus, rr.Code)
			}

			var resp models.ErrorResponse
			if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
				t.Fatalf("Failed to decode response: %v", err)
			}
			if resp.Error.Code != tc.wantCode {
				t.Errorf("Expected code %q, got %q", tc.wantCode, resp.Error.Code)
			}
		})
	}
}

// ─── Mood Handler Tests ───

func TestParseDateParam(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		rangeEnd bool
		wantOK   bool
		want     *time.Time
	}{
		{"empty means unbounded", "", false, true, nil},
		{"plain start date", "2024-03-05", false, true, timePtr(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))},
		{"plain end date covers the whole day", "2024-03-05", true, true, timePtr(time.Date(2024, 3, 5, 23, 59, 59, 999999999, time.UTC))},
		{"rfc3339", "2024-03-05T10:30:00Z", false, true, timePtr(time.Date(2024, 3, 5, 10, 30, 0, 0, time.UTC))},
		{"rfc3339 end is taken as given", "2024-03-05T10:30:00Z", true, true, timePtr(time.Date(2024, 3, 5, 10, 30, 0, 0, time.UTC))},
		{"garbage", "not-a-date", false, false, nil},
		{"wrong order", "05/03/2024", false, false, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := parseDateParam(tc.raw, tc.rangeEnd)
			if ok != tc.wantOK {
				t.Fatalf("parseDateParam(%q) ok = %v, want %v", tc.raw, ok, tc.wantOK)
			}
			if tc.want == nil && got != nil {
				t.Errorf("Expected nil time, got %v", got)
			}
			if tc.want != nil && (got == nil || !got.Equal(*tc.want)) {
				t.Errorf("parseDateParam(%q) = %v, want %v", tc.raw, got, tc.want)
			}
		})
	}
}

func timePtr(t time.Time) *time.Time { return &t }

func TestCreateMoodRequest_Parsing(t *testing.T) {
	var req models.CreateMoodRequest
	if err := json.Unmarshal([]byte(`{"mood":"Hebat"}`), &req); err != nil {
		t.Fatalf("Failed to parse request body: %v", err)
	}
	if req.Mood != "Hebat" {
		t.Errorf("Expected mood 'Hebat', got %q", req.Mood)
	}
}

func TestUpdateMoodRequest_Parsing(t *testing.T) {
	var req models.UpdateMoodRequest
	if err := json.Unmarshal([]byte(`{"endTime":"2024-03-05T10:30:00Z"}`), &req); err != nil {
		t.Fatalf("Failed to parse request body: %v", err)
	}
	if req.EndTime == nil {
		t.Fatal("Expected endTime to be set")
	}

	var empty models.UpdateMoodRequest
	if err := json.Unmarshal([]byte(`{}`), &empty); err != nil {
		t.Fatalf("Failed to parse empty body: %v", err)
	}
	if empty.EndTime != nil {
		t.Error("Expected nil endTime for empty body")
	}
}
