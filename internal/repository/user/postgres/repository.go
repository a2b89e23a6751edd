package user_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"userpost-service/internal/custom_errors"
	"userpost-service/internal/logger"
	"userpost-service/internal/model"
	"userpost-service/internal/repository/postgres/db"
)

const userColumns = `id, name, email, age, salary, is_active, birth_date, last_login_at, bio, preferences, role, created_at, updated_at`

const postColumns = `id, title, content, slug, views, rating, is_published, published_at, reading_time, tags, full_content, user_id, created_at, updated_at`

type UserRepository struct {
	log *logger.Logger
	db  db.PgDB
}

func NewUserRepository(db db.PgDB, log *logger.Logger) *UserRepository {
	return &UserRepository{db: db, log: log}
}

func scanUser(row pgx.Row) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Age,
		&user.Salary,
		&user.IsActive,
		&user.BirthDate,
		&user.LastLoginAt,
		&user.Bio,
		&user.Preferences,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (u *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	now := pgtype.Timestamp{Time: time.Now(), Valid: true}

	args := pgx.NamedArgs{
		"name":          user.Name,
		"email":         user.Email,
		"age":           user.Age,
		"salary":        user.Salary,
		"is_active":     user.IsActive,
		"birth_date":    user.BirthDate,
		"last_login_at": user.LastLoginAt,
		"bio":           user.Bio,
		"preferences":   user.Preferences,
		"role":          user.Role,
		"created_at":    now,
		"updated_at":    now,
	}

	query := `
		INSERT INTO users (name, email, age, salary, is_active, birth_date, last_login_at, bio, preferences, role, created_at, updated_at)
		VALUES (@name, @email, @age, @salary, @is_active, @birth_date, @last_login_at, @bio, @preferences, @role, @created_at, @updated_at)
		RETURNING ` + userColumns

	createdUser, err := scanUser(u.db.QueryRow(ctx, query, args))
	if err != nil {
		u.log.Error("Error creating user", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return createdUser, nil
}

func (u *UserRepository) GetByID(ctx context.Context, id int64, withPosts bool) (*model.User, error) {
	args := pgx.NamedArgs{"id": id}
	query := `SELECT ` + userColumns + ` FROM users WHERE id = @id`

	user, err := scanUser(u.db.QueryRow(ctx, query, args))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			u.log.Debug("User not found by id", slog.Int64("id", id), slog.String("error", err.Error()))
			return nil, custom_errors.ErrUserNotFound
		}
		u.log.Error("Error getting user by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	if withPosts {
		postsByUser, err := u.postsForUsers(ctx, []int64{user.ID})
		if err != nil {
			return nil, err
		}
		user.Posts = postsByUser[user.ID]
		if user.Posts == nil {
			user.Posts = []*model.Post{}
		}
	}

	return user, nil
}

func (u *UserRepository) List(ctx context.Context, withPosts bool) ([]*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id`

	rows, err := u.db.Query(ctx, query)
	if err != nil {
		u.log.Error("Error listing users", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	users := []*model.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			u.log.Error("Error scanning user during List", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		u.log.Error("Error iterating rows during List", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	if withPosts {
		ids := make([]int64, 0, len(users))
		for _, user := range users {
			ids = append(ids, user.ID)
		}
		postsByUser, err := u.postsForUsers(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, user := range users {
			user.Posts = postsByUser[user.ID]
			if user.Posts == nil {
				user.Posts = []*model.Post{}
			}
		}
	}

	return users, nil
}

func (u *UserRepository) Update(ctx context.Context, id int64, update *model.UpdateUserDTO) (*model.User, error) {
	setClauses := []string{}
	args := pgx.NamedArgs{"id": id}

	if update.Name != nil {
		setClauses = append(setClauses, "name = @name")
		args["name"] = *update.Name
	}
	if update.Email != nil {
		setClauses = append(setClauses, "email = @email")
		args["email"] = *update.Email
	}
	if update.Age != nil {
		setClauses = append(setClauses, "age = @age")
		args["age"] = *update.Age
	}
	if update.Salary != nil {
		setClauses = append(setClauses, "salary = @salary")
		args["salary"] = *update.Salary
	}
	if update.IsActive != nil {
		setClauses = append(setClauses, "is_active = @is_active")
		args["is_active"] = *update.IsActive
	}
	if update.BirthDate != nil {
		birthDate, err := time.Parse("2006-01-02", *update.BirthDate)
		if err != nil {
			u.log.Error("Error parsing birth_date during Update", slog.Int64("id", id), slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseQuery
		}
		setClauses = append(setClauses, "birth_date = @birth_date")
		args["birth_date"] = pgtype.Date{Time: birthDate, Valid: true}
	}
	if update.Bio != nil {
		setClauses = append(setClauses, "bio = @bio")
		args["bio"] = *update.Bio
	}
	if update.Role != nil {
		setClauses = append(setClauses, "role = @role")
		args["role"] = *update.Role
	}

	setClauses = append(setClauses, "updated_at = @updated_at")
	args["updated_at"] = pgtype.Timestamp{Time: time.Now(), Valid: true}

	query := "UPDATE users SET " + strings.Join(setClauses, ", ") + " WHERE id = @id RETURNING " + userColumns

	updatedUser, err := scanUser(u.db.QueryRow(ctx, query, args))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			u.log.Debug("User not found by id during Update", slog.Int64("id", id), slog.String("error", err.Error()))
			return nil, custom_errors.ErrUserNotFound
		}
		u.log.Error("Error updating user", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return updatedUser, nil
}

func (u *UserRepository) Delete(ctx context.Context, id int64) error {
	args := pgx.NamedArgs{"id": id}
	query := `DELETE FROM users WHERE id = @id`

	result, err := u.db.Exec(ctx, query, args)
	if err != nil {
		u.log.Error("Error deleting user", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	if result.RowsAffected() == 0 {
		return custom_errors.ErrUserNotFound
	}
	return nil
}

func (u *UserRepository) EmailExists(ctx context.Context, email string, excludeID int64) (bool, error) {
	args := pgx.NamedArgs{"email": email, "exclude_id": excludeID}
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE email = @email AND id <> @exclude_id)`

	var exists bool
	if err := u.db.QueryRow(ctx, query, args).Scan(&exists); err != nil {
		u.log.Error("Error checking email uniqueness", slog.String("email", email), slog.String("error", err.Error()))
		return false, custom_errors.ErrDatabaseQuery
	}
	return exists, nil
}

// postsForUsers eager-loads the posts of the given users in one query,
// keyed by user id.
func (u *UserRepository) postsForUsers(ctx context.Context, userIDs []int64) (map[int64][]*model.Post, error) {
	result := make(map[int64][]*model.Post)
	if len(userIDs) == 0 {
		return result, nil
	}

	args := pgx.NamedArgs{"user_ids": userIDs}
	query := `SELECT ` + postColumns + ` FROM posts WHERE user_id = ANY(@user_ids) ORDER BY id`

	rows, err := u.db.Query(ctx, query, args)
	if err != nil {
		u.log.Error("Error loading posts for users", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	for rows.Next() {
		post := &model.Post{}
		err := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Content,
			&post.Slug,
			&post.Views,
			&post.Rating,
			&post.IsPublished,
			&post.PublishedAt,
			&post.ReadingTime,
			&post.Tags,
			&post.FullContent,
			&post.UserID,
			&post.CreatedAt,
			&post.UpdatedAt,
		)
		if err != nil {
			u.log.Error("Error scanning post during postsForUsers", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		result[post.UserID] = append(result[post.UserID], post)
	}

	if err = rows.Err(); err != nil {
		u.log.Error("Error iterating rows during postsForUsers", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return result, nil
}
