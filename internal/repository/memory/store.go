package memory

import (
	"sync"

	"userpost-service/internal/model"
)

// Store is the shared in-memory table set backing the memory repositories.
// One store serves both repositories so relation loading and the
// user -> posts cascade behave like the real schema.
type Store struct {
	mu         sync.RWMutex
	users      map[int64]*model.User
	posts      map[int64]*model.Post
	nextUserID int64
	nextPostID int64
}

func NewStore() *Store {
	return &Store{
		users:      make(map[int64]*model.User),
		posts:      make(map[int64]*model.Post),
		nextUserID: 1,
		nextPostID: 1,
	}
}
