package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"nuna-backend/internal/models"
)

type PostRepo struct {
	pool *pgxpool.Pool
}

func NewPostRepo(pool *pgxpool.Pool) *PostRepo {
	return &PostRepo{pool: pool}
}

const postColumns = `p.id, p.user_id, p.title, p.content, p.tags, p.likes, p.comments_count,
	p.created_at, p.updated_at, u.id, u.username`

func scanPost(row pgx.Row) (*models.Post, error) {
	p := &models.Post{User: &models.PublicUser{}}
	err := row.Scan(
		&p.ID, &p.UserID, &p.Title, &p.Content, &p.Tags, &p.Likes, &p.CommentsCount,
		&p.CreatedAt, &p.UpdatedAt, &p.User.ID, &p.User.Username,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PostRepo) Create(ctx context.Context, p *models.Post) error {
	if p.Tags == nil {
		p.Tags = []string{}
	}

	query := `
		INSERT INTO posts (id, user_id, title, content, tags)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING likes, comments_count, created_at, updated_at`

	p.ID = uuid.New()

	return r.pool.QueryRow(ctx, query,
		p.ID, p.UserID, p.Title, p.Content, p.Tags,
	).Scan(&p.Likes, &p.CommentsCount, &p.CreatedAt, &p.UpdatedAt)
}

func (r *PostRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts p JOIN users u ON u.id = p.user_id WHERE p.id = $1`

	post, err := scanPost(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}

	comments, err := r.commentsForPosts(ctx, []uuid.UUID{post.ID})
	if err != nil {
		return nil, err
	}
	post.Comments = comments[post.ID]
	if post.Comments == nil {
		post.Comments = []*models.Comment{}
	}
	return post, nil
}

// ListAll returns every post, newest first, with author and comments attached.
func (r *PostRepo) ListAll(ctx context.Context) ([]*models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts p JOIN users u ON u.id = p.user_id ORDER BY p.created_at DESC`
	return r.listWithComments(ctx, query)
}

func (r *PostRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts p JOIN users u ON u.id = p.user_id
		WHERE p.user_id = $1 ORDER BY p.created_at DESC`
	return r.listWithComments(ctx, query, userID)
}

func (r *PostRepo) Update(ctx context.Context, p *models.Post) error {
	query := `
		UPDATE posts
		SET title = $1, content = $2, tags = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING updated_at`

	return r.pool.QueryRow(ctx, query, p.Title, p.Content, p.Tags, p.ID).Scan(&p.UpdatedAt)
}

// Delete removes the post; comments go with it via ON DELETE CASCADE.
func (r *PostRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM posts WHERE id = $1", id)
	return err
}

func (r *PostRepo) IncrementLikes(ctx context.Context, id uuid.UUID) (int, error) {
	var likes int
	err := r.pool.QueryRow(ctx,
		"UPDATE posts SET likes = likes + 1 WHERE id = $1 RETURNING likes", id,
	).Scan(&likes)
	return likes, err
}

func (r *PostRepo) DecrementLikes(ctx context.Context, id uuid.UUID) (int, error) {
	var likes int
	err := r.pool.QueryRow(ctx,
		"UPDATE posts SET likes = likes - 1 WHERE id = $1 RETURNING likes", id,
	).Scan(&likes)
	return likes, err
}

func (r *PostRepo) listWithComments(ctx context.Context, query string, args ...interface{}) ([]*models.Post, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []*models.Post{}
	ids := []uuid.UUID{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return posts, nil
	}

	comments, err := r.commentsForPosts(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, p := range posts {
		p.Comments = comments[p.ID]
		if p.Comments == nil {
			p.Comments = []*models.Comment{}
		}
	}
	return posts, nil
}

func (r *PostRepo) commentsForPosts(ctx context.Context, postIDs []uuid.UUID) (map[uuid.UUID][]*models.Comment, error) {
	query := `SELECT c.id, c.post_id, c.user_id, c.content, c.created_at, u.id, u.username
		FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.post_id = ANY($1)
		ORDER BY c.created_at DESC`

	rows, err := r.pool.Query(ctx, query, postIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byPost := map[uuid.UUID][]*models.Comment{}
	for rows.Next() {
		c := &models.Comment{User: &models.PublicUser{}}
		err := rows.Scan(&c.ID, &c.PostID, &c.UserID, &c.Content, &c.CreatedAt, &c.User.ID, &c.User.Username)
		if err != nil {
			return nil, err
		}
		byPost[c.PostID] = append(byPost[c.PostID], c)
	}
	return byPost, rows.Err()
}
