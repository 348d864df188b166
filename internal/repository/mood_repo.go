package repository

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"nuna-backend/internal/models"
)

type MoodRepo struct {
	pool *pgxpool.Pool
}

func NewMoodRepo(pool *pgxpool.Pool) *MoodRepo {
	return &MoodRepo{pool: pool}
}

const moodColumns = "id, user_id, mood, start_time, end_time, duration_minutes, created_at"

func scanMoodSession(row pgx.Row) (*models.MoodSession, error) {
	s := &models.MoodSession{}
	err := row.Scan(&s.ID, &s.UserID, &s.Mood, &s.StartTime, &s.EndTime, &s.DurationMinutes, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// durationMinutes rounds the elapsed time between start and end to whole
// minutes, half away from zero.
func durationMinutes(start, end time.Time) int {
	return int(math.Round(end.Sub(start).Minutes()))
}

// rotationDuration is the duration recorded when a session is closed by the
// start of a new one. Clock readings cannot drive it below zero.
func rotationDuration(start, end time.Time) int {
	d := durationMinutes(start, end)
	if d < 0 {
		return 0
	}
	return d
}

// StartSession closes any open session for the user and opens a new one.
// Close and insert run in a single transaction so two concurrent starts
// cannot leave two open sessions behind.
func (r *MoodRepo) StartSession(ctx context.Context, userID uuid.UUID, mood models.Mood) (*models.MoodSession, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	now := time.Now()

	var openID uuid.UUID
	var openStart time.Time
	err = tx.QueryRow(ctx,
		"SELECT id, start_time FROM mood_history WHERE user_id = $1 AND end_time IS NULL",
		userID,
	).Scan(&openID, &openStart)
	switch {
	case err == nil:
		if _, err := tx.Exec(ctx,
			"UPDATE mood_history SET end_time = $2, duration_minutes = $3 WHERE id = $1",
			openID, now, rotationDuration(openStart, now),
		); err != nil {
			return nil, err
		}
	case errors.Is(err, pgx.ErrNoRows):
		// nothing open to close
	default:
		return nil, err
	}

	session, err := scanMoodSession(tx.QueryRow(ctx, `
		INSERT INTO mood_history (id, user_id, mood, start_time)
		VALUES ($1, $2, $3, $4)
		RETURNING `+moodColumns, uuid.New(), userID, mood, now))
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return session, nil
}

// GetActive returns the user's open session, or pgx.ErrNoRows.
func (r *MoodRepo) GetActive(ctx context.Context, userID uuid.UUID) (*models.MoodSession, error) {
	query := `SELECT ` + moodColumns + ` FROM mood_history WHERE user_id = $1 AND end_time IS NULL`
	return scanMoodSession(r.pool.QueryRow(ctx, query, userID))
}

// CloseSession sets the end time and recomputes the duration. The lookup is
// keyed on id AND user_id together, so a session owned by someone else is
// indistinguishable from a missing one (pgx.ErrNoRows either way).
func (r *MoodRepo) CloseSession(ctx context.Context, id, userID uuid.UUID, endTime time.Time) (*models.MoodSession, error) {
	var start time.Time
	err := r.pool.QueryRow(ctx,
		"SELECT start_time FROM mood_history WHERE id = $1 AND user_id = $2", id, userID,
	).Scan(&start)
	if err != nil {
		return nil, err
	}

	query := `
		UPDATE mood_history
		SET end_time = $3, duration_minutes = $4
		WHERE id = $1
		  AND user_id = $2
		RETURNING ` + moodColumns

	return scanMoodSession(r.pool.QueryRow(ctx, query, id, userID, endTime, durationMinutes(start, endTime)))
}

// History lists sessions newest first.
func (r *MoodRepo) History(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*models.MoodSession, error) {
	query := `SELECT ` + moodColumns + ` FROM mood_history WHERE user_id = $1 ORDER BY start_time DESC LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectMoodSessions(rows)
}

// ListClosedSince returns closed sessions started at or after since, oldest first.
func (r *MoodRepo) ListClosedSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]*models.MoodSession, error) {
	query := `SELECT ` + moodColumns + ` FROM mood_history
		WHERE user_id = $1 AND start_time >= $2 AND end_time IS NOT NULL
		ORDER BY start_time ASC`

	rows, err := r.pool.Query(ctx, query, userID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectMoodSessions(rows)
}

// ListSince returns all sessions (open or closed) started at or after since.
func (r *MoodRepo) ListSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]*models.MoodSession, error) {
	query := `SELECT ` + moodColumns + ` FROM mood_history
		WHERE user_id = $1 AND start_time >= $2
		ORDER BY start_time ASC`

	rows, err := r.pool.Query(ctx, query, userID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectMoodSessions(rows)
}

// ListBetween filters by created_at; either bound may be nil.
func (r *MoodRepo) ListBetween(ctx context.Context, userID uuid.UUID, startDate, endDate *time.Time) ([]*models.MoodSession, error) {
	query := `SELECT ` + moodColumns + ` FROM mood_history
		WHERE user_id = $1
		  AND ($2::timestamptz IS NULL OR created_at >= $2)
		  AND ($3::timestamptz IS NULL OR created_at <= $3)
		ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, userID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectMoodSessions(rows)
}

func collectMoodSessions(rows pgx.Rows) ([]*models.MoodSession, error) {
	sessions := []*models.MoodSession{}
	for rows.Next() {
		s, err := scanMoodSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}
