package post_service

import (
	"context"

	"userpost-service/internal/model"
)

type Service interface {
	ListPosts(ctx context.Context) ([]*model.Post, error)
	GetPostByID(ctx context.Context, id int64) (*model.Post, error)
	CreatePost(ctx context.Context, dto *model.CreatePostDTO) (*model.CreatePostResult, error)
	UpdatePost(ctx context.Context, id int64, dto *model.UpdatePostDTO) (*model.UpdatePostResult, error)
	DeletePost(ctx context.Context, id int64) (*model.DeletedPost, error)
}
