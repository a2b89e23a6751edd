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

type UserRepository struct {
	log   *logger.Logger
	store *Store
}

func NewUserRepository(store *Store, log *logger.Logger) *UserRepository {
	return &UserRepository{store: store, log: log}
}

func (u *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	now := pgtype.Timestamp{Time: time.Now(), Valid: true}

	newUser := *user
	newUser.ID = u.store.nextUserID
	newUser.CreatedAt = now
	newUser.UpdatedAt = now
	newUser.Posts = nil
	u.store.nextUserID++

	u.store.users[newUser.ID] = &newUser

	result := newUser
	return &result, nil
}

func (u *UserRepository) GetByID(ctx context.Context, id int64, withPosts bool) (*model.User, error) {
	u.store.mu.RLock()
	defer u.store.mu.RUnlock()

	user, exists := u.store.users[id]
	if !exists {
		u.log.Debug("User not found by id", slog.Int64("id", id))
		return nil, custom_errors.ErrUserNotFound
	}

	result := *user
	if withPosts {
		result.Posts = u.postsOf(id)
	}
	return &result, nil
}

func (u *UserRepository) List(ctx context.Context, withPosts bool) ([]*model.User, error) {
	u.store.mu.RLock()
	defer u.store.mu.RUnlock()

	result := []*model.User{}
	for _, user := range u.store.users {
		userCopy := *user
		if withPosts {
			userCopy.Posts = u.postsOf(user.ID)
		}
		result = append(result, &userCopy)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result, nil
}

func (u *UserRepository) Update(ctx context.Context, id int64, update *model.UpdateUserDTO) (*model.User, error) {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	user, exists := u.store.users[id]
	if !exists {
		return nil, custom_errors.ErrUserNotFound
	}

	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Email != nil {
		user.Email = *update.Email
	}
	if update.Age != nil {
		user.Age = update.Age
	}
	if update.Salary != nil {
		user.Salary = update.Salary
	}
	if update.IsActive != nil {
		user.IsActive = *update.IsActive
	}
	if update.BirthDate != nil {
		birthDate, err := time.Parse("2006-01-02", *update.BirthDate)
		if err != nil {
			return nil, custom_errors.ErrDatabaseQuery
		}
		user.BirthDate = pgtype.Date{Time: birthDate, Valid: true}
	}
	if update.Bio != nil {
		user.Bio = update.Bio
	}
	if update.Role != nil {
		user.Role = model.Role(*update.Role)
	}

	user.UpdatedAt = pgtype.Timestamp{Time: time.Now(), Valid: true}

	result := *user
	return &result, nil
}

func (u *UserRepository) Delete(ctx context.Context, id int64) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	if _, exists := u.store.users[id]; !exists {
		return custom_errors.ErrUserNotFound
	}

	// FK cascade: dependent posts go with the user.
	for postID, post := range u.store.posts {
		if post.UserID == id {
			delete(u.store.posts, postID)
		}
	}
	delete(u.store.users, id)
	return nil
}

func (u *UserRepository) EmailExists(ctx context.Context, email string, excludeID int64) (bool, error) {
	u.store.mu.RLock()
	defer u.store.mu.RUnlock()

	for _, user := range u.store.users {
		if user.Email == email && user.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

// postsOf collects copies of the user's posts ordered by id.
// Callers must hold the store lock.
func (u *UserRepository) postsOf(userID int64) []*model.Post {
	posts := []*model.Post{}
	for _, post := range u.store.posts {
		if post.UserID == userID {
			postCopy := *post
			posts = append(posts, &postCopy)
		}
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].ID < posts[j].ID
	})
	return posts
}
