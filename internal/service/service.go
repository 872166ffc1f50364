package service

import (
	"context"

	"github.com/GalleryApp/post-service/internal/dto"
	"github.com/GalleryApp/post-service/internal/model"
	"github.com/GalleryApp/post-service/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Post interface {
	FindAll(ctx context.Context) ([]*model.Post, error)
	Create(ctx context.Context, input dto.CreatePostRequest) (*model.Post, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Post, error)
	FindContentByID(ctx context.Context, id uuid.UUID) (*model.PostContent, error)
	Update(ctx context.Context, id uuid.UUID, input dto.UpdatePostRequest) (*model.Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	Post
}

func New(logger *zap.Logger, repo *repository.Repository) *Service {
	return &Service{
		Post: newPostService(logger, repo),
	}
}
