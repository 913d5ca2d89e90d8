package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devlinkhq/devlink/internal/domain/post"
)

type postgresPostRepo struct {
	db *pgxpool.Pool
}

func NewPostgresPostRepo(db *pgxpool.Pool) post.Repository {
	return &postgresPostRepo{db: db}
}

func scanPost(row pgx.Row) (*post.Post, error) {
	p := &post.Post{}
	var likesBytes, commentsBytes []byte

	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Text,
		&p.Name,
		&p.AvatarURL,
		&likesBytes,
		&commentsBytes,
		&p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, post.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to scan post row: %w", err)
	}

	if err := json.Unmarshal(likesBytes, &p.Likes); err != nil {
		p.Likes = []post.Like{}
	}
	if err := json.Unmarshal(commentsBytes, &p.Comments); err != nil {
		p.Comments = []post.Comment{}
	}
	return p, nil
}

func (r *postgresPostRepo) Save(ctx context.Context, p *post.Post) error {
	likesBytes, err := json.Marshal(p.Likes)
	if err != nil {
		return fmt.Errorf("failed to marshal likes: %w", err)
	}
	commentsBytes, err := json.Marshal(p.Comments)
	if err != nil {
		return fmt.Errorf("failed to marshal comments: %w", err)
	}

	query := `
		INSERT INTO posts (id, user_id, text, name, avatar_url, likes, comments, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = r.db.Exec(ctx, query,
		p.ID, p.UserID, p.Text, p.Name, p.AvatarURL, likesBytes, commentsBytes, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save post: %w", err)
	}
	return nil
}

func (r *postgresPostRepo) Update(ctx context.Context, p *post.Post) error {
	likesBytes, err := json.Marshal(p.Likes)
	if err != nil {
		return fmt.Errorf("failed to marshal likes: %w", err)
	}
	commentsBytes, err := json.Marshal(p.Comments)
	if err != nil {
		return fmt.Errorf("failed to marshal comments: %w", err)
	}

	query := `UPDATE posts SET likes = $2, comments = $3 WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, query, p.ID, likesBytes, commentsBytes)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return post.ErrPostNotFound
	}
	return nil
}

func (r *postgresPostRepo) FindByID(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	query := `
		SELECT id, user_id, text, name, avatar_url, likes, comments, created_at
		FROM posts
		WHERE id = $1
	`
	return scanPost(r.db.QueryRow(ctx, query, id))
}

func (r *postgresPostRepo) ListAll(ctx context.Context) ([]*post.Post, error) {
	builder := psql.Select("id", "user_id", "text", "name", "avatar_url", "likes", "comments", "created_at").
		From("posts").
		OrderBy("created_at DESC")

	sql, args, _ := builder.ToSql()
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	posts := make([]*post.Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating post rows: %w", err)
	}
	return posts, nil
}

func (r *postgresPostRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return post.ErrPostNotFound
	}
	return nil
}

// DeleteByUser removes every post authored by userID. Removing zero rows is
// fine, the account cascade runs it for users who never posted.
func (r *postgresPostRepo) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	sql, args, _ := psql.Delete("posts").Where(sq.Eq{"user_id": userID}).ToSql()
	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("failed to delete posts by user: %w", err)
	}
	return nil
}
