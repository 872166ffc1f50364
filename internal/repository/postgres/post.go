package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/GalleryApp/post-service/internal/dto"
	"github.com/GalleryApp/post-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postRepo struct {
	db *pgxpool.Pool
}

func newPostRepo(db *pgxpool.Pool) Post {
	return &postRepo{
		db: db,
	}
}

func (r *postRepo) FindAll(ctx context.Context) ([]*model.Post, error) {
	rows, err := r.db.Query(
		ctx,
		"SELECT id, title, content, profile_id, created_at FROM posts ORDER BY created_at DESC",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := make([]*model.Post, 0)
	for rows.Next() {
		var post model.Post
		if err := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Content,
			&post.ProfileID,
			&post.CreatedAt,
		); err != nil {
			return nil, err
		}
		posts = append(posts, &post)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}

func (r *postRepo) Create(ctx context.Context, post model.Post) (*model.Post, error) {
	if err := r.db.QueryRow(
		ctx,
		"INSERT INTO posts(title, content, profile_id) VALUES($1, $2, $3) RETURNING id, created_at",
		post.Title,
		post.Content,
		post.ProfileID,
	).Scan(&post.ID, &post.CreatedAt); err != nil {
		return nil, err
	}

	return &post, nil
}

func (r *postRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	var post model.Post
	if err := r.db.QueryRow(
		ctx,
		"SELECT id, title, content, profile_id, created_at FROM posts WHERE id = $1",
		id,
	).Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.ProfileID,
		&post.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &post, nil
}

func (r *postRepo) Update(ctx context.Context, id uuid.UUID, update dto.UpdatePostRequest) (*model.Post, error) {
	sets := make([]string, 0, 2)
	args := make([]interface{}, 0, 3)

	if update.Title != nil {
		args = append(args, *update.Title)
		sets = append(sets, fmt.Sprintf("title = $%d", len(args)))
	}
	if update.ContentProvided {
		args = append(args, update.Content)
		sets = append(sets, fmt.Sprintf("content = $%d", len(args)))
	}
	if len(sets) == 0 {
		return r.FindByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE posts SET %s WHERE id = $%d RETURNING id, title, content, profile_id, created_at",
		strings.Join(sets, ", "),
		len(args),
	)

	var post model.Post
	if err := r.db.QueryRow(ctx, query, args...).Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.ProfileID,
		&post.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &post, nil
}

func (r *postRepo) Delete(ctx context.Context, id uuid.UUID) error {
	var deletedID uuid.UUID
	if err := r.db.QueryRow(
		ctx,
		"DELETE FROM posts WHERE id = $1 RETURNING id",
		id,
	).Scan(&deletedID); err != nil {
		return err
	}

	return nil
}
