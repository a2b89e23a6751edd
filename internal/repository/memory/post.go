package memory

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"userpost-service/internal/custom_errors"
	"userpost-service/internal/logger"
	"userpost-service/internal/model"
)

type PostRepository struct {
	log   *logger.Logger
	store *Store
}

func NewPostRepository(store *Store, log *logger.Logger) *PostRepository {
	return &PostRepository{store: store, log: log}
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	now := pgtype.Timestamp{Time: time.Now(), Valid: true}

	newPost := *post
	newPost.ID = p.store.nextPostID
	newPost.CreatedAt = now
	newPost.UpdatedAt = now
	newPost.User = nil
	p.store.nextPostID++

	p.store.posts[newPost.ID] = &newPost

	result := newPost
	return &result, nil
}

func (p *PostRepository) GetByID(ctx context.Context, id int64, withUser bool) (*model.Post, error) {
	p.store.mu.RLock()
	defer p.store.mu.RUnlock()

	post, exists := p.store.posts[id]
	if !exists {
		p.log.Debug("Post not found by id", slog.Int64("id", id))
		return nil, custom_errors.ErrPostNotFound
	}

	result := *post
	if withUser {
		result.User = p.userOf(post.UserID)
	}
	return &result, nil
}

func (p *PostRepository) List(ctx context.Context, withUser bool) ([]*model.Post, error) {
	p.store.mu.RLock()
	defer p.store.mu.RUnlock()

	result := []*model.Post{}
	for _, post := range p.store.posts {
		postCopy := *post
		if withUser {
			postCopy.User = p.userOf(post.UserID)
		}
		result = append(result, &postCopy)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result, nil
}

func (p *PostRepository) Update(ctx context.Context, id int64, update *model.UpdatePostDTO) (*model.Post, error) {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	post, exists := p.store.posts[id]
	if !exists {
		return nil, custom_errors.ErrPostNotFound
	}

	if update.Title != nil {
		post.Title = *update.Title
	}
	if update.Content != nil {
		post.Content = *update.Content
	}
	if update.Slug != nil {
		post.Slug = *update.Slug
	}
	if update.UserID != nil {
		post.UserID = *update.UserID
	}
	if update.Rating != nil {
		post.Rating = update.Rating
	}
	if update.IsPublished != nil {
		post.IsPublished = *update.IsPublished
	}
	if update.PublishedAt != nil {
		publishedAt, err := time.Parse(time.RFC3339, *update.PublishedAt)
		if err != nil {
			return nil, custom_errors.ErrDatabaseQuery
		}
		post.PublishedAt = pgtype.Timestamp{Time: publishedAt, Valid: true}
	}
	if update.Tags != nil {
		post.Tags = update.Tags
	}
	if update.FullContent != nil {
		post.FullContent = update.FullContent
	}

	post.UpdatedAt = pgtype.Timestamp{Time: time.Now(), Valid: true}

	result := *post
	return &result, nil
}

func (p *PostRepository) Delete(ctx context.Context, id int64) error {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	if _, exists := p.store.posts[id]; !exists {
		return custom_errors.ErrPostNotFound
	}

	delete(p.store.posts, id)
	return nil
}

func (p *PostRepository) IncrementViews(ctx context.Context, id int64) (*model.Post, error) {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	post, exists := p.store.posts[id]
	if !exists {
		return nil, custom_errors.ErrPostNotFound
	}

	post.Views++

	result := *post
	return &result, nil
}

func (p *PostRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	p.store.mu.RLock()
	defer p.store.mu.RUnlock()

	var count int64
	for _, post := range p.store.posts {
		if post.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (p *PostRepository) SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error) {
	p.store.mu.RLock()
	defer p.store.mu.RUnlock()

	for _, post := range p.store.posts {
		if post.Slug == slug && post.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

// userOf returns a copy of the post's author without its posts loaded.
// Callers must hold the store lock.
func (p *PostRepository) userOf(userID int64) *model.User {
	user, exists := p.store.users[userID]
	if !exists {
		return nil
	}
	userCopy := *user
	userCopy.Posts = nil
	return &userCopy
}
