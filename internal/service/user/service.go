package user_service

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"userpost-service/internal/logger"
	"userpost-service/internal/metrics"
	"userpost-service/internal/model"
	"userpost-service/internal/repository/postgres"
	user_repository "userpost-service/internal/repository/user"
	"userpost-service/internal/validation"
)

type UserService struct {
	userRepo user_repository.Repository
	uow      postgres.UnitOfWork
	validate *validation.Validator
	log      *logger.Logger
	metrics  metrics.MetricsProvider
}

func NewUserService(
	userRepo user_repository.Repository,
	uow postgres.UnitOfWork,
	validate *validation.Validator,
	log *logger.Logger,
	metrics metrics.MetricsProvider,
) *UserService {
	return &UserService{
		userRepo: userRepo,
		uow:      uow,
		validate: validate,
		log:      log,
		metrics:  metrics,
	}
}

func (s *UserService) ListUsers(ctx context.Context) ([]*model.User, error) {
	users, err := s.userRepo.List(ctx, true)
	if err != nil {
		s.log.Error("Failed to list users", slog.String("error", err.Error()))
		s.metrics.IncrementUserOperations("list", false)
		return nil, err
	}
	s.metrics.IncrementUserOperations("list", true)
	return users, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, id, true)
	if err != nil {
		s.metrics.IncrementUserOperations("get", false)
		return nil, err
	}
	s.metrics.IncrementUserOperations("get", true)
	return user, nil
}

func (s *UserService) CreateUser(ctx context.Context, dto *model.CreateUserDTO) (*model.User, error) {
	fieldErrs := s.validate.Struct(dto)

	if dto.Email != "" {
		taken, err := s.userRepo.EmailExists(ctx, dto.Email, 0)
		if err != nil {
			s.metrics.IncrementUserOperations("create", false)
			return nil, err
		}
		if taken {
			fieldErrs.Add("email", validation.Taken("email"))
		}
	}

	if !fieldErrs.Empty() {
		s.log.Debug("User creation validation failed", slog.Any("errors", fieldErrs.Fields))
		s.metrics.IncrementUserOperations("create", false)
		return nil, fieldErrs
	}

	user := &model.User{
		Name:     dto.Name,
		Email:    dto.Email,
		Age:      dto.Age,
		Salary:   dto.Salary,
		IsActive: true,
		Bio:      dto.Bio,
		Role:     model.RoleUser,
	}
	if dto.IsActive != nil {
		user.IsActive = *dto.IsActive
	}
	if dto.Role != nil {
		user.Role = model.Role(*dto.Role)
	}
	if dto.BirthDate != nil {
		birthDate, err := time.Parse("2006-01-02", *dto.BirthDate)
		if err != nil {
			s.metrics.IncrementUserOperations("create", false)
			return nil, err
		}
		user.BirthDate = pgtype.Date{Time: birthDate, Valid: true}
	}

	createdUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		s.log.Error("Failed to create user", slog.String("error", err.Error()))
		s.metrics.IncrementUserOperations("create", false)
		return nil, err
	}

	s.metrics.IncrementUserOperations("create", true)
	return createdUser, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id int64, dto *model.UpdateUserDTO) (*model.UpdateUserResult, error) {
	existing, err := s.userRepo.GetByID(ctx, id, false)
	if err != nil {
		s.metrics.IncrementUserOperations("update", false)
		return nil, err
	}

	fieldErrs := s.validate.Struct(dto)

	if dto.Email != nil {
		taken, err := s.userRepo.EmailExists(ctx, *dto.Email, id)
		if err != nil {
			s.metrics.IncrementUserOperations("update", false)
			return nil, err
		}
		if taken {
			fieldErrs.Add("email", validation.Taken("email"))
		}
	}

	if !fieldErrs.Empty() {
		s.log.Debug("User update validation failed", slog.Int64("id", id), slog.Any("errors", fieldErrs.Fields))
		s.metrics.IncrementUserOperations("update", false)
		return nil, fieldErrs
	}

	updatedUser, err := s.userRepo.Update(ctx, id, dto)
	if err != nil {
		s.log.Error("Failed to update user", slog.Int64("id", id), slog.String("error", err.Error()))
		s.metrics.IncrementUserOperations("update", false)
		return nil, err
	}

	s.metrics.IncrementUserOperations("update", true)
	return &model.UpdateUserResult{
		User:          updatedUser,
		OldName:       existing.Name,
		UpdatedFields: dto.UpdatedFields(),
	}, nil
}

// DeleteUser removes the user and its posts in one transaction so the
// reported post count matches what actually went away.
func (s *UserService) DeleteUser(ctx context.Context, id int64) (*model.DeletedUser, error) {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to start transaction", slog.String("error", err.Error()))
		s.metrics.IncrementUserOperations("delete", false)
		return nil, err
	}

	var txCommitted bool
	defer func() {
		if !txCommitted {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				s.log.Debug("Transaction rollback after failed delete", slog.String("error", rollbackErr.Error()))
			}
		}
	}()

	userRepo := tx.UserRepository()
	postRepo := tx.PostRepository()

	user, err := userRepo.GetByID(ctx, id, false)
	if err != nil {
		s.metrics.IncrementUserOperations("delete", false)
		return nil, err
	}

	postsCount, err := postRepo.CountByUser(ctx, id)
	if err != nil {
		s.metrics.IncrementUserOperations("delete", false)
		return nil, err
	}

	if err := userRepo.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete user", slog.Int64("id", id), slog.String("error", err.Error()))
		s.metrics.IncrementUserOperations("delete", false)
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		s.log.Error("Failed to commit user delete", slog.Int64("id", id), slog.String("error", err.Error()))
		s.metrics.IncrementUserOperations("delete", false)
		return nil, err
	}
	txCommitted = true

	s.metrics.IncrementUserOperations("delete", true)
	return &model.DeletedUser{
		ID:                id,
		Name:              user.Name,
		DeletedPostsCount: postsCount,
	}, nil
}
