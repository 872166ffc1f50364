package service

import (
	"context"
	"errors"
	"time"

	"github.com/GalleryApp/post-service/internal/content"
	"github.com/GalleryApp/post-service/internal/dto"
	"github.com/GalleryApp/post-service/internal/model"
	"github.com/GalleryApp/post-service/internal/repository"
	"github.com/GalleryApp/post-service/internal/repository/redisrepo"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const defaultCacheTTL = time.Minute

type postService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newPostService(logger *zap.Logger, repo *repository.Repository) Post {
	return &postService{
		logger: logger,
		repo:   repo,
	}
}

func (s *postService) cacheTTL() time.Duration {
	seconds := viper.GetInt("cache.post_ttl_seconds")
	if seconds <= 0 {
		return defaultCacheTTL
	}
	return time.Duration(seconds) * time.Second
}

func (s *postService) FindAll(ctx context.Context) ([]*model.Post, error) {
	if s.repo.Redis != nil {
		cached, err := redisrepo.GetMany[model.Post](s.repo.Redis, ctx, redisrepo.AllPostsKey())
		if err == nil && cached != nil {
			return cached, nil
		}
		if err != nil && !errors.Is(err, redis.Nil) {
			s.logger.Sugar().Warnf("failed to get posts from cache: %s", err.Error())
		}
	}

	posts, err := s.repo.Postgres.Post.FindAll(ctx)
	if err != nil {
		s.logger.Sugar().Errorf("failed to fetch posts: %s", err.Error())
		return nil, err
	}

	if s.repo.Redis != nil && len(posts) > 0 {
		if err := s.repo.Redis.SetJSON(ctx, redisrepo.AllPostsKey(), posts, s.cacheTTL()); err != nil {
			s.logger.Sugar().Warnf("failed to cache posts: %s", err.Error())
		}
	}

	return posts, nil
}

func (s *postService) Create(ctx context.Context, input dto.CreatePostRequest) (*model.Post, error) {
	profileID, err := uuid.Parse(input.ProfileID)
	if err != nil {
		return nil, err
	}

	post := model.Post{
		Title:     input.Title,
		Content:   input.Content,
		ProfileID: profileID,
	}

	createdPost, err := s.repo.Postgres.Post.Create(ctx, post)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create post for profile(%s): %s", profileID.String(), err.Error())
		return nil, err
	}

	s.invalidateCache(ctx, redisrepo.AllPostsKey())

	return createdPost, nil
}

func (s *postService) FindByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	if s.repo.Redis != nil {
		cached, err := redisrepo.Get[model.Post](s.repo.Redis, ctx, redisrepo.PostKey(id))
		if err == nil && cached != nil {
			return cached, nil
		}
		if err != nil && !errors.Is(err, redis.Nil) {
			s.logger.Sugar().Warnf("failed to get post(%s) from cache: %s", id.String(), err.Error())
		}
	}

	post, err := s.repo.Postgres.Post.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPostNotFound
		}
		s.logger.Sugar().Errorf("failed to fetch post(%s): %s", id.String(), err.Error())
		return nil, err
	}

	if s.repo.Redis != nil {
		if err := s.repo.Redis.SetJSON(ctx, redisrepo.PostKey(id), post, s.cacheTTL()); err != nil {
			s.logger.Sugar().Warnf("failed to cache post(%s): %s", id.String(), err.Error())
		}
	}

	return post, nil
}

func (s *postService) FindContentByID(ctx context.Context, id uuid.UUID) (*model.PostContent, error) {
	post, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	parsed := content.Decode(post.Content)
	return &parsed, nil
}

func (s *postService) Update(ctx context.Context, id uuid.UUID, input dto.UpdatePostRequest) (*model.Post, error) {
	updatedPost, err := s.repo.Postgres.Post.Update(ctx, id, input)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPostNotFound
		}
		s.logger.Sugar().Errorf("failed to update post(%s): %s", id.String(), err.Error())
		return nil, err
	}

	s.invalidateCache(ctx, redisrepo.PostKey(id), redisrepo.AllPostsKey())

	return updatedPost, nil
}

func (s *postService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Postgres.Post.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrPostNotFound
		}
		s.logger.Sugar().Errorf("failed to delete post(%s): %s", id.String(), err.Error())
		return err
	}

	s.invalidateCache(ctx, redisrepo.PostKey(id), redisrepo.AllPostsKey())

	return nil
}

func (s *postService) invalidateCache(ctx context.Context, keys ...string) {
	if s.repo.Redis == nil {
		return
	}
	if err := s.repo.Redis.Del(ctx, keys...).Err(); err != nil {
		s.logger.Sugar().Warnf("failed to invalidate cache keys %v: %s", keys, err.Error())
	}
}
