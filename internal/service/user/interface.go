package user_service

import (
	"context"

	"userpost-service/internal/model"
)

type Service interface {
	ListUsers(ctx context.Context) ([]*model.User, error)
	GetUserByID(ctx context.Context, id int64) (*model.User, error)
	CreateUser(ctx context.Context, dto *model.CreateUserDTO) (*model.User, error)
	UpdateUser(ctx context.Context, id int64, dto *model.UpdateUserDTO) (*model.UpdateUserResult, error)
	DeleteUser(ctx context.Context, id int64) (*model.DeletedUser, error)
}
