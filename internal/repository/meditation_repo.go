package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"nuna-backend/internal/models"
)

type MeditationRepo struct {
	pool *pgxpool.Pool
}

func NewMeditationRepo(pool *pgxpool.Pool) *MeditationRepo {
	return &MeditationRepo{pool: pool}
}

const meditationColumns = "id, title, description, long_description, duration, image_url, link, steps, created_at"

func scanMeditation(row pgx.Row) (*models.Meditation, error) {
	m := &models.Meditation{}
	err := row.Scan(&m.ID, &m.Title, &m.Description, &m.LongDescription, &m.Duration,
		&m.ImageURL, &m.Link, &m.Steps, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *MeditationRepo) Create(ctx context.Context, m *models.Meditation) error {
	if m.Steps == nil {
		m.Steps = []string{}
	}

	query := `
		INSERT INTO meditations (id, title, description, long_description, duration, image_url, link, steps)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at`

	m.ID = uuid.New()

	return r.pool.QueryRow(ctx, query,
		m.ID, m.Title, m.Description, m.LongDescription, m.Duration, m.ImageURL, m.Link, m.Steps,
	).Scan(&m.CreatedAt)
}

func (r *MeditationRepo) List(ctx context.Context) ([]*models.Meditation, error) {
	query := `SELECT ` + meditationColumns + ` FROM meditations ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	meditations := []*models.Meditation{}
	for rows.Next() {
		m, err := scanMeditation(rows)
		if err != nil {
			return nil, err
		}
		meditations = append(meditations, m)
	}
	return meditations, rows.Err()
}

func (r *MeditationRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Meditation, error) {
	query := `SELECT ` + meditationColumns + ` FROM meditations WHERE id = $1`
	return scanMeditation(r.pool.QueryRow(ctx, query, id))
}

func (r *MeditationRepo) Update(ctx context.Context, m *models.Meditation) error {
	query := `
		UPDATE meditations
		SET title = $1, description = $2, long_description = $3, duration = $4,
			image_url = $5, link = $6, steps = $7
		WHERE id = $8`

	_, err := r.pool.Exec(ctx, query,
		m.Title, m.Description, m.LongDescription, m.Duration, m.ImageURL, m.Link, m.Steps, m.ID)
	return err
}

func (r *MeditationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM meditations WHERE id = $1", id)
	return err
}
