package post_service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userpost-service/internal/custom_errors"
	"userpost-service/internal/logger"
	"userpost-service/internal/metrics/noop"
	"userpost-service/internal/model"
	"userpost-service/internal/repository/memory"
	post_service "userpost-service/internal/service/post"
	"userpost-service/internal/validation"
)

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

func setupPostService(t *testing.T) (*post_service.PostService, *model.User) {
	t.Helper()
	log := logger.New(logger.EnvTest)
	store := memory.NewStore()
	userRepo := memory.NewUserRepository(store, log)
	postRepo := memory.NewPostRepository(store, log)
	svc := post_service.NewPostService(postRepo, userRepo, validation.New(), log, noop.NewNoopMetricsProvider())

	author, err := userRepo.Create(context.Background(), &model.User{
		Name:     "Alice",
		Email:    "alice@example.com",
		IsActive: true,
		Role:     model.RoleUser,
	})
	require.NoError(t, err)

	return svc, author
}

func TestPostService_CreatePost(t *testing.T) {
	svc, author := setupPostService(t)

	result, err := svc.CreatePost(context.Background(), &model.CreatePostDTO{
		Title:   "Hello",
		Content: "World",
		Slug:    "hello",
		UserID:  author.ID,
	})
	require.NoError(t, err)
	assert.NotZero(t, result.Post.ID)
	assert.Equal(t, "Hello", result.Post.Title)
	assert.Equal(t, "Alice", result.AuthorName)
	require.NotNil(t, result.Post.User)
	assert.Equal(t, author.ID, result.Post.User.ID)
}

func TestPostService_CreatePost_ValidationErrors(t *testing.T) {
	svc, author := setupPostService(t)
	ctx := context.Background()

	_, err := svc.CreatePost(ctx, &model.CreatePostDTO{
		Title:   "Hello",
		Content: "World",
		Slug:    "hello",
		UserID:  author.ID,
	})
	require.NoError(t, err)

	tests := []struct {
		name       string
		dto        *model.CreatePostDTO
		wantFields map[string][]string
	}{
		{
			name: "empty dto",
			dto:  &model.CreatePostDTO{},
			wantFields: map[string][]string{
				"title":   {"The title field is required."},
				"content": {"The content field is required."},
				"slug":    {"The slug field is required."},
				"user_id": {"The user id field is required."},
			},
		},
		{
			name: "duplicate slug",
			dto: &model.CreatePostDTO{
				Title:   "Again",
				Content: "World",
				Slug:    "hello",
				UserID:  author.ID,
			},
			wantFields: map[string][]string{
				"slug": {"The slug has already been taken."},
			},
		},
		{
			name: "missing author",
			dto: &model.CreatePostDTO{
				Title:   "Orphan",
				Content: "World",
				Slug:    "orphan",
				UserID:  999,
			},
			wantFields: map[string][]string{
				"user_id": {"The selected user id is invalid."},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreatePost(ctx, tt.dto)
			require.Error(t, err)

			var fieldErrs *validation.Error
			require.True(t, errors.As(err, &fieldErrs))
			assert.Equal(t, tt.wantFields, fieldErrs.Fields)
		})
	}
}

func TestPostService_GetPostByID_IncrementsViews(t *testing.T) {
	svc, author := setupPostService(t)
	ctx := context.Background()

	created, err := svc.CreatePost(ctx, &model.CreatePostDTO{
		Title:   "Hello",
		Content: "World",
		Slug:    "hello",
		UserID:  author.ID,
	})
	require.NoError(t, err)

	first, err := svc.GetPostByID(ctx, created.Post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.Views)
	require.NotNil(t, first.User)
	assert.Equal(t, "Alice", first.User.Name)

	second, err := svc.GetPostByID(ctx, created.Post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.Views)

	_, err = svc.GetPostByID(ctx, 999)
	assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
}

func TestPostService_UpdatePost(t *testing.T) {
	svc, author := setupPostService(t)
	ctx := context.Background()

	created, err := svc.CreatePost(ctx, &model.CreatePostDTO{
		Title:   "Original",
		Content: "World",
		Slug:    "original",
		UserID:  author.ID,
	})
	require.NoError(t, err)

	result, err := svc.UpdatePost(ctx, created.Post.ID, &model.UpdatePostDTO{
		Title: strPtr("Updated"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Updated", result.Post.Title)
	assert.Equal(t, "Original", result.OldTitle)
	assert.Equal(t, "Alice", result.AuthorName)
	assert.Equal(t, []string{"title"}, result.UpdatedFields)
}

func TestPostService_UpdatePost_SlugUniqueness(t *testing.T) {
	svc, author := setupPostService(t)
	ctx := context.Background()

	first, err := svc.CreatePost(ctx, &model.CreatePostDTO{
		Title:   "First",
		Content: "World",
		Slug:    "first",
		UserID:  author.ID,
	})
	require.NoError(t, err)
	_, err = svc.CreatePost(ctx, &model.CreatePostDTO{
		Title:   "Second",
		Content: "World",
		Slug:    "second",
		UserID:  author.ID,
	})
	require.NoError(t, err)

	// Own slug is excluded from the uniqueness check.
	_, err = svc.UpdatePost(ctx, first.Post.ID, &model.UpdatePostDTO{Slug: strPtr("first")})
	assert.NoError(t, err)

	_, err = svc.UpdatePost(ctx, first.Post.ID, &model.UpdatePostDTO{Slug: strPtr("second")})
	var fieldErrs *validation.Error
	require.True(t, errors.As(err, &fieldErrs))
	assert.Equal(t, []string{"The slug has already been taken."}, fieldErrs.Fields["slug"])
}

func TestPostService_UpdatePost_InvalidUserID(t *testing.T) {
	svc, author := setupPostService(t)
	ctx := context.Background()

	created, err := svc.CreatePost(ctx, &model.CreatePostDTO{
		Title:   "Hello",
		Content: "World",
		Slug:    "hello",
		UserID:  author.ID,
	})
	require.NoError(t, err)

	_, err = svc.UpdatePost(ctx, created.Post.ID, &model.UpdatePostDTO{UserID: int64Ptr(999)})
	var fieldErrs *validation.Error
	require.True(t, errors.As(err, &fieldErrs))
	assert.Equal(t, []string{"The selected user id is invalid."}, fieldErrs.Fields["user_id"])
}

func TestPostService_UpdatePost_NotFound(t *testing.T) {
	svc, _ := setupPostService(t)

	_, err := svc.UpdatePost(context.Background(), 999, &model.UpdatePostDTO{Title: strPtr("Nope")})
	assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
}

func TestPostService_DeletePost(t *testing.T) {
	svc, author := setupPostService(t)
	ctx := context.Background()

	created, err := svc.CreatePost(ctx, &model.CreatePostDTO{
		Title:   "Hello",
		Content: "World",
		Slug:    "hello",
		UserID:  author.ID,
	})
	require.NoError(t, err)

	// One view before deletion; the summary reports it.
	_, err = svc.GetPostByID(ctx, created.Post.ID)
	require.NoError(t, err)

	deleted, err := svc.DeletePost(ctx, created.Post.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Post.ID, deleted.ID)
	assert.Equal(t, "Hello", deleted.Title)
	assert.Equal(t, "Alice", deleted.Author)
	assert.Equal(t, int64(1), deleted.Views)

	_, err = svc.DeletePost(ctx, created.Post.ID)
	assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
}

func TestPostService_ListPosts(t *testing.T) {
	svc, author := setupPostService(t)
	ctx := context.Background()

	posts, err := svc.ListPosts(ctx)
	require.NoError(t, err)
	assert.Empty(t, posts)

	published := true
	_, err = svc.CreatePost(ctx, &model.CreatePostDTO{
		Title:       "Published",
		Content:     "World",
		Slug:        "published",
		UserID:      author.ID,
		IsPublished: &published,
	})
	require.NoError(t, err)
	_, err = svc.CreatePost(ctx, &model.CreatePostDTO{
		Title:   "Draft",
		Content: "World",
		Slug:    "draft",
		UserID:  author.ID,
	})
	require.NoError(t, err)

	posts, err = svc.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.True(t, posts[0].IsPublished)
	assert.False(t, posts[1].IsPublished)
	for _, post := range posts {
		require.NotNil(t, post.User)
	}
}
