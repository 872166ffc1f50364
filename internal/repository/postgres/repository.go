package postgres

import (
	"context"
	"fmt"

	"github.com/GalleryApp/post-service/internal/config"
	"github.com/GalleryApp/post-service/internal/dto"
	"github.com/GalleryApp/post-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Post interface {
	FindAll(ctx context.Context) ([]*model.Post, error)
	Create(ctx context.Context, post model.Post) (*model.Post, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Post, error)
	Update(ctx context.Context, id uuid.UUID, update dto.UpdatePostRequest) (*model.Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresRepository struct {
	Post
}

func New(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{
		Post: newPostRepo(db),
	}
}

func DB(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	connString := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.Username,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.SSLMode,
	)
	return pgxpool.New(ctx, connString)
}
