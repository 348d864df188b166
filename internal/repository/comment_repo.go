package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"nuna-backend/internal/models"
)

type CommentRepo struct {
	pool *pgxpool.Pool
}

func NewCommentRepo(pool *pgxpool.Pool) *CommentRepo {
	return &CommentRepo{pool: pool}
}

const commentColumns = `c.id, c.post_id, c.user_id, c.content, c.created_at, u.id, u.username`

func scanComment(row pgx.Row) (*models.Comment, error) {
	c := &models.Comment{User: &models.PublicUser{}}
	err := row.Scan(&c.ID, &c.PostID, &c.UserID, &c.Content, &c.CreatedAt, &c.User.ID, &c.User.Username)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CommentRepo) ListByPost(ctx context.Context, postID uuid.UUID) ([]*models.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.post_id = $1
		ORDER BY c.created_at DESC`

	rows, err := r.pool.Query(ctx, query, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []*models.Comment{}
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (r *CommentRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.id = $1`
	return scanComment(r.pool.QueryRow(ctx, query, id))
}

// Create inserts the comment and bumps the post's counter in one transaction.
func (r *CommentRepo) Create(ctx context.Context, c *models.Comment) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	c.ID = uuid.New()
	err = tx.QueryRow(ctx, `
		INSERT INTO comments (id, post_id, user_id, content)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`,
		c.ID, c.PostID, c.UserID, c.Content,
	).Scan(&c.CreatedAt)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx,
		"UPDATE posts SET comments_count = comments_count + 1 WHERE id = $1", c.PostID,
	); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	// Attach the author for the response
	return r.pool.QueryRow(ctx,
		"SELECT id, username FROM users WHERE id = $1", c.UserID,
	).Scan(&c.User.ID, &c.User.Username)
}

func (r *CommentRepo) Update(ctx context.Context, id uuid.UUID, content string) (*models.Comment, error) {
	_, err := r.pool.Exec(ctx, "UPDATE comments SET content = $1 WHERE id = $2", content, id)
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes the comment and lowers the post's counter in one transaction.
func (r *CommentRepo) Delete(ctx context.Context, id, postID uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM comments WHERE id = $1", id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx,
		"UPDATE posts SET comments_count = GREATEST(0, comments_count - 1) WHERE id = $1", postID,
	); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
