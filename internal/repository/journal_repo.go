package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"nuna-backend/internal/models"
)

type JournalRepo struct {
	pool *pgxpool.Pool
}

func NewJournalRepo(pool *pgxpool.Pool) *JournalRepo {
	return &JournalRepo{pool: pool}
}

const journalColumns = "id, user_id, title, content, mood, created_at, updated_at"

func scanJournal(row pgx.Row) (*models.Journal, error) {
	j := &models.Journal{}
	err := row.Scan(&j.ID, &j.UserID, &j.Title, &j.Content, &j.Mood, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return j, nil
}

func (r *JournalRepo) Create(ctx context.Context, j *models.Journal) error {
	query := `
		INSERT INTO journals (id, user_id, title, content, mood)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`

	j.ID = uuid.New()

	return r.pool.QueryRow(ctx, query,
		j.ID, j.UserID, j.Title, j.Content, j.Mood,
	).Scan(&j.CreatedAt, &j.UpdatedAt)
}

func (r *JournalRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Journal, error) {
	query := `SELECT ` + journalColumns + ` FROM journals WHERE id = $1`
	return scanJournal(r.pool.QueryRow(ctx, query, id))
}

func (r *JournalRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Journal, error) {
	query := `SELECT ` + journalColumns + ` FROM journals WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectJournals(rows)
}

// ListRecent returns the newest entries first, capped at limit.
func (r *JournalRepo) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Journal, error) {
	query := `SELECT ` + journalColumns + ` FROM journals WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectJournals(rows)
}

// ListSince returns entries created at or after since, oldest first.
func (r *JournalRepo) ListSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]*models.Journal, error) {
	query := `SELECT ` + journalColumns + ` FROM journals WHERE user_id = $1 AND created_at >= $2 ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, userID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectJournals(rows)
}

func (r *JournalRepo) Update(ctx context.Context, j *models.Journal) error {
	query := `
		UPDATE journals
		SET title = $1, content = $2, mood = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING updated_at`

	return r.pool.QueryRow(ctx, query, j.Title, j.Content, j.Mood, j.ID).Scan(&j.UpdatedAt)
}

func (r *JournalRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM journals WHERE id = $1", id)
	return err
}

func collectJournals(rows pgx.Rows) ([]*models.Journal, error) {
	journals := []*models.Journal{}
	for rows.Next() {
		j, err := scanJournal(rows)
		if err != nil {
			return nil, err
		}
		journals = append(journals, j)
	}
	return journals, rows.Err()
}
