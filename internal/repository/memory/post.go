package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/GalleryApp/post-service/internal/dto"
	"github.com/GalleryApp/post-service/internal/model"
	"github.com/GalleryApp/post-service/internal/repository/postgres"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PostRepo is an in-memory stand-in for the postgres post repository. It
// mirrors the postgres behavior, including pgx.ErrNoRows for missing rows.
type PostRepo struct {
	mu    sync.RWMutex
	posts map[uuid.UUID]*model.Post
}

func NewPostRepo() *PostRepo {
	return &PostRepo{
		posts: make(map[uuid.UUID]*model.Post),
	}
}

var _ postgres.Post = (*PostRepo)(nil)

func (r *PostRepo) FindAll(ctx context.Context) ([]*model.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	posts := make([]*model.Post, 0, len(r.posts))
	for _, post := range r.posts {
		postCopy := *post
		posts = append(posts, &postCopy)
	}

	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})

	return posts, nil
}

func (r *PostRepo) Create(ctx context.Context, post model.Post) (*model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post.ID = uuid.New()
	post.CreatedAt = time.Now()

	stored := post
	r.posts[post.ID] = &stored

	return &post, nil
}

func (r *PostRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	post, exists := r.posts[id]
	if !exists {
		return nil, pgx.ErrNoRows
	}

	postCopy := *post
	return &postCopy, nil
}

func (r *PostRepo) Update(ctx context.Context, id uuid.UUID, update dto.UpdatePostRequest) (*model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, exists := r.posts[id]
	if !exists {
		return nil, pgx.ErrNoRows
	}

	if update.Title != nil {
		post.Title = *update.Title
	}
	if update.ContentProvided {
		post.Content = update.Content
	}

	postCopy := *post
	return &postCopy, nil
}

func (r *PostRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.posts[id]; !exists {
		return pgx.ErrNoRows
	}

	delete(r.posts, id)
	return nil
}
