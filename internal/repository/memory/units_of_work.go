package memory

import (
	"context"

	"userpost-service/internal/logger"
	post_repository "userpost-service/internal/repository/post"
	"userpost-service/internal/repository/postgres"
	user_repository "userpost-service/internal/repository/user"
)

// MemoryUnitOfWork satisfies postgres.UnitOfWork over the in-memory store.
// Operations apply immediately; Commit and Rollback are no-ops.
type MemoryUnitOfWork struct {
	store *Store
	log   *logger.Logger
}

func NewMemoryUOW(store *Store, log *logger.Logger) postgres.UnitOfWork {
	return &MemoryUnitOfWork{store: store, log: log}
}

func (uow *MemoryUnitOfWork) Begin(ctx context.Context) (postgres.Transaction, error) {
	return &MemoryTransaction{store: uow.store, log: uow.log}, nil
}

type MemoryTransaction struct {
	store *Store
	log   *logger.Logger
}

func (t *MemoryTransaction) Commit(ctx context.Context) error {
	return nil
}

func (t *MemoryTransaction) Rollback(ctx context.Context) error {
	return nil
}

func (t *MemoryTransaction) UserRepository() user_repository.Repository {
	return NewUserRepository(t.store, t.log)
}

func (t *MemoryTransaction) PostRepository() post_repository.Repository {
	return NewPostRepository(t.store, t.log)
}
