package post_service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"userpost-service/internal/custom_errors"
	"userpost-service/internal/logger"
	"userpost-service/internal/metrics"
	"userpost-service/internal/model"
	post_repository "userpost-service/internal/repository/post"
	user_repository "userpost-service/internal/repository/user"
	"userpost-service/internal/validation"
)

type PostService struct {
	postRepo post_repository.Repository
	userRepo user_repository.Repository
	validate *validation.Validator
	log      *logger.Logger
	metrics  metrics.MetricsProvider
}

func NewPostService(
	postRepo post_repository.Repository,
	userRepo user_repository.Repository,
	validate *validation.Validator,
	log *logger.Logger,
	metrics metrics.MetricsProvider,
) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
		validate: validate,
		log:      log,
		metrics:  metrics,
	}
}

func (s *PostService) ListPosts(ctx context.Context) ([]*model.Post, error) {
	posts, err := s.postRepo.List(ctx, true)
	if err != nil {
		s.log.Error("Failed to list posts", slog.String("error", err.Error()))
		s.metrics.IncrementPostOperations("list", false)
		return nil, err
	}
	s.metrics.IncrementPostOperations("list", true)
	return posts, nil
}

// GetPostByID looks the post up and bumps its view counter; the returned
// post carries the incremented count and the eager-loaded author.
func (s *PostService) GetPostByID(ctx context.Context, id int64) (*model.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id, true)
	if err != nil {
		s.metrics.IncrementPostOperations("get", false)
		return nil, err
	}

	incremented, err := s.postRepo.IncrementViews(ctx, id)
	if err != nil {
		s.log.Error("Failed to increment post views", slog.Int64("id", id), slog.String("error", err.Error()))
		s.metrics.IncrementPostOperations("get", false)
		return nil, err
	}
	post.Views = incremented.Views

	s.metrics.IncrementPostOperations("get", true)
	return post, nil
}

func (s *PostService) CreatePost(ctx context.Context, dto *model.CreatePostDTO) (*model.CreatePostResult, error) {
	fieldErrs := s.validate.Struct(dto)

	if dto.Slug != "" {
		taken, err := s.postRepo.SlugExists(ctx, dto.Slug, 0)
		if err != nil {
			s.metrics.IncrementPostOperations("create", false)
			return nil, err
		}
		if taken {
			fieldErrs.Add("slug", validation.Taken("slug"))
		}
	}

	if dto.UserID != 0 {
		if _, err := s.userRepo.GetByID(ctx, dto.UserID, false); err != nil {
			if errors.Is(err, custom_errors.ErrUserNotFound) {
				fieldErrs.Add("user_id", validation.Invalid("user_id"))
			} else {
				s.metrics.IncrementPostOperations("create", false)
				return nil, err
			}
		}
	}

	if !fieldErrs.Empty() {
		s.log.Debug("Post creation validation failed", slog.Any("errors", fieldErrs.Fields))
		s.metrics.IncrementPostOperations("create", false)
		return nil, fieldErrs
	}

	// Separate author fetch for the response message, even though the
	// check above already confirmed existence.
	author, err := s.userRepo.GetByID(ctx, dto.UserID, false)
	if err != nil {
		s.metrics.IncrementPostOperations("create", false)
		return nil, err
	}

	post := &model.Post{
		Title:       dto.Title,
		Content:     dto.Content,
		Slug:        dto.Slug,
		UserID:      dto.UserID,
		Rating:      dto.Rating,
		Tags:        dto.Tags,
		FullContent: dto.FullContent,
	}
	if dto.IsPublished != nil {
		post.IsPublished = *dto.IsPublished
	}
	if dto.PublishedAt != nil {
		publishedAt, err := time.Parse(time.RFC3339, *dto.PublishedAt)
		if err != nil {
			s.metrics.IncrementPostOperations("create", false)
			return nil, err
		}
		post.PublishedAt = pgtype.Timestamp{Time: publishedAt, Valid: true}
	}

	createdPost, err := s.postRepo.Create(ctx, post)
	if err != nil {
		s.log.Error("Failed to create post", slog.String("error", err.Error()))
		s.metrics.IncrementPostOperations("create", false)
		return nil, err
	}
	createdPost.User = author

	s.metrics.IncrementPostOperations("create", true)
	return &model.CreatePostResult{
		Post:       createdPost,
		AuthorName: author.Name,
	}, nil
}

func (s *PostService) UpdatePost(ctx context.Context, id int64, dto *model.UpdatePostDTO) (*model.UpdatePostResult, error) {
	existing, err := s.postRepo.GetByID(ctx, id, true)
	if err != nil {
		s.metrics.IncrementPostOperations("update", false)
		return nil, err
	}

	fieldErrs := s.validate.Struct(dto)

	if dto.Slug != nil {
		taken, err := s.postRepo.SlugExists(ctx, *dto.Slug, id)
		if err != nil {
			s.metrics.IncrementPostOperations("update", false)
			return nil, err
		}
		if taken {
			fieldErrs.Add("slug", validation.Taken("slug"))
		}
	}

	if dto.UserID != nil {
		if _, err := s.userRepo.GetByID(ctx, *dto.UserID, false); err != nil {
			if errors.Is(err, custom_errors.ErrUserNotFound) {
				fieldErrs.Add("user_id", validation.Invalid("user_id"))
			} else {
				s.metrics.IncrementPostOperations("update", false)
				return nil, err
			}
		}
	}

	if !fieldErrs.Empty() {
		s.log.Debug("Post update validation failed", slog.Int64("id", id), slog.Any("errors", fieldErrs.Fields))
		s.metrics.IncrementPostOperations("update", false)
		return nil, fieldErrs
	}

	updatedPost, err := s.postRepo.Update(ctx, id, dto)
	if err != nil {
		s.log.Error("Failed to update post", slog.Int64("id", id), slog.String("error", err.Error()))
		s.metrics.IncrementPostOperations("update", false)
		return nil, err
	}

	author, err := s.userRepo.GetByID(ctx, updatedPost.UserID, false)
	if err != nil && !errors.Is(err, custom_errors.ErrUserNotFound) {
		s.metrics.IncrementPostOperations("update", false)
		return nil, err
	}
	updatedPost.User = author

	// The message echoes the author as loaded before the update; a changed
	// user_id shows up in data but not in the message text.
	var authorName string
	if existing.User != nil {
		authorName = existing.User.Name
	}

	s.metrics.IncrementPostOperations("update", true)
	return &model.UpdatePostResult{
		Post:          updatedPost,
		OldTitle:      existing.Title,
		AuthorName:    authorName,
		UpdatedFields: dto.UpdatedFields(),
	}, nil
}

func (s *PostService) DeletePost(ctx context.Context, id int64) (*model.DeletedPost, error) {
	post, err := s.postRepo.GetByID(ctx, id, true)
	if err != nil {
		s.metrics.IncrementPostOperations("delete", false)
		return nil, err
	}

	var authorName string
	if post.User != nil {
		authorName = post.User.Name
	}

	if err := s.postRepo.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete post", slog.Int64("id", id), slog.String("error", err.Error()))
		s.metrics.IncrementPostOperations("delete", false)
		return nil, err
	}

	s.metrics.IncrementPostOperations("delete", true)
	return &model.DeletedPost{
		ID:     id,
		Title:  post.Title,
		Author: authorName,
		Views:  post.Views,
	}, nil
}
