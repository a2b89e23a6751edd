package user_repository

import (
	"context"

	"userpost-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	GetByID(ctx context.Context, id int64, withPosts bool) (*model.User, error)
	List(ctx context.Context, withPosts bool) ([]*model.User, error)
	Update(ctx context.Context, id int64, update *model.UpdateUserDTO) (*model.User, error)
	Delete(ctx context.Context, id int64) error
	EmailExists(ctx context.Context, email string, excludeID int64) (bool, error)
}
