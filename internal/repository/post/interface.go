package post_repository

import (
	"context"

	"userpost-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, post *model.Post) (*model.Post, error)
	GetByID(ctx context.Context, id int64, withUser bool) (*model.Post, error)
	List(ctx context.Context, withUser bool) ([]*model.Post, error)
	Update(ctx context.Context, id int64, update *model.UpdatePostDTO) (*model.Post, error)
	Delete(ctx context.Context, id int64) error
	IncrementViews(ctx context.Context, id int64) (*model.Post, error)
	CountByUser(ctx context.Context, userID int64) (int64, error)
	SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error)
}
