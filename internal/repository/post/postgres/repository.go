package post_repository_postgres

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

const postColumns = `id, title, content, slug, views, rating, is_published, published_at, reading_time, tags, full_content, user_id, created_at, updated_at`

const userColumns = `id, name, email, age, salary, is_active, birth_date, last_login_at, bio, preferences, role, created_at, updated_at`

type PostRepository struct {
	log *logger.Logger
	db  db.PgDB
}

func NewPostRepository(db db.PgDB, log *logger.Logger) *PostRepository {
	return &PostRepository{db: db, log: log}
}

func scanPost(row pgx.Row) (*model.Post, error) {
	post := &model.Post{}
	err := row.Scan(
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
		return nil, err
	}
	return post, nil
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	now := pgtype.Timestamp{Time: time.Now(), Valid: true}

	args := pgx.NamedArgs{
		"title":        post.Title,
		"content":      post.Content,
		"slug":         post.Slug,
		"views":        post.Views,
		"rating":       post.Rating,
		"is_published": post.IsPublished,
		"published_at": post.PublishedAt,
		"reading_time": post.ReadingTime,
		"tags":         post.Tags,
		"full_content": post.FullContent,
		"user_id":      post.UserID,
		"created_at":   now,
		"updated_at":   now,
	}

	query := `
		INSERT INTO posts (title, content, slug, views, rating, is_published, published_at, reading_time, tags, full_content, user_id, created_at, updated_at)
		VALUES (@title, @content, @slug, @views, @rating, @is_published, @published_at, @reading_time, @tags, @full_content, @user_id, @created_at, @updated_at)
		RETURNING ` + postColumns

	createdPost, err := scanPost(p.db.QueryRow(ctx, query, args))
	if err != nil {
		p.log.Error("Error creating post", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return createdPost, nil
}

func (p *PostRepository) GetByID(ctx context.Context, id int64, withUser bool) (*model.Post, error) {
	args := pgx.NamedArgs{"id": id}
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = @id`

	post, err := scanPost(p.db.QueryRow(ctx, query, args))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			p.log.Debug("Post not found by id", slog.Int64("id", id), slog.String("error", err.Error()))
			return nil, custom_errors.ErrPostNotFound
		}
		p.log.Error("Error getting post by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	if withUser {
		usersByID, err := p.usersForPosts(ctx, []int64{post.UserID})
		if err != nil {
			return nil, err
		}
		post.User = usersByID[post.UserID]
	}

	return post, nil
}

func (p *PostRepository) List(ctx context.Context, withUser bool) ([]*model.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts ORDER BY id`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		p.log.Error("Error listing posts", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	posts := []*model.Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			p.log.Error("Error scanning post during List", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		posts = append(posts, post)
	}

	if err = rows.Err(); err != nil {
		p.log.Error("Error iterating rows during List", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	if withUser {
		ids := make([]int64, 0, len(posts))
		seen := make(map[int64]bool)
		for _, post := range posts {
			if !seen[post.UserID] {
				seen[post.UserID] = true
				ids = append(ids, post.UserID)
			}
		}
		usersByID, err := p.usersForPosts(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, post := range posts {
			post.User = usersByID[post.UserID]
		}
	}

	return posts, nil
}

func (p *PostRepository) Update(ctx context.Context, id int64, update *model.UpdatePostDTO) (*model.Post, error) {
	setClauses := []string{}
	args := pgx.NamedArgs{"id": id}

	if update.Title != nil {
		setClauses = append(setClauses, "title = @title")
		args["title"] = *update.Title
	}
	if update.Content != nil {
		setClauses = append(setClauses, "content = @content")
		args["content"] = *update.Content
	}
	if update.Slug != nil {
		setClauses = append(setClauses, "slug = @slug")
		args["slug"] = *update.Slug
	}
	if update.UserID != nil {
		setClauses = append(setClauses, "user_id = @user_id")
		args["user_id"] = *update.UserID
	}
	if update.Rating != nil {
		setClauses = append(setClauses, "rating = @rating")
		args["rating"] = *update.Rating
	}
	if update.IsPublished != nil {
		setClauses = append(setClauses, "is_published = @is_published")
		args["is_published"] = *update.IsPublished
	}
	if update.PublishedAt != nil {
		publishedAt, err := time.Parse(time.RFC3339, *update.PublishedAt)
		if err != nil {
			p.log.Error("Error parsing published_at during Update", slog.Int64("id", id), slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseQuery
		}
		setClauses = append(setClauses, "published_at = @published_at")
		args["published_at"] = pgtype.Timestamp{Time: publishedAt, Valid: true}
	}
	if update.Tags != nil {
		setClauses = append(setClauses, "tags = @tags")
		args["tags"] = update.Tags
	}
	if update.FullContent != nil {
		setClauses = append(setClauses, "full_content = @full_content")
		args["full_content"] = *update.FullContent
	}

	setClauses = append(setClauses, "updated_at = @updated_at")
	args["updated_at"] = pgtype.Timestamp{Time: time.Now(), Valid: true}

	query := "UPDATE posts SET " + strings.Join(setClauses, ", ") + " WHERE id = @id RETURNING " + postColumns

	updatedPost, err := scanPost(p.db.QueryRow(ctx, query, args))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			p.log.Debug("Post not found by id during Update", slog.Int64("id", id), slog.String("error", err.Error()))
			return nil, custom_errors.ErrPostNotFound
		}
		p.log.Error("Error updating post", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return updatedPost, nil
}

func (p *PostRepository) Delete(ctx context.Context, id int64) error {
	args := pgx.NamedArgs{"id": id}
	query := `DELETE FROM posts WHERE id = @id`

	result, err := p.db.Exec(ctx, query, args)
	if err != nil {
		p.log.Error("Error deleting post", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	if result.RowsAffected() == 0 {
		return custom_errors.ErrPostNotFound
	}
	return nil
}

func (p *PostRepository) IncrementViews(ctx context.Context, id int64) (*model.Post, error) {
	args := pgx.NamedArgs{"id": id}
	query := `UPDATE posts SET views = views + 1 WHERE id = @id RETURNING ` + postColumns

	post, err := scanPost(p.db.QueryRow(ctx, query, args))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			p.log.Debug("Post not found by id during IncrementViews", slog.Int64("id", id), slog.String("error", err.Error()))
			return nil, custom_errors.ErrPostNotFound
		}
		p.log.Error("Error incrementing post views", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return post, nil
}

func (p *PostRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	args := pgx.NamedArgs{"user_id": userID}
	query := `SELECT COUNT(*) FROM posts WHERE user_id = @user_id`

	var count int64
	if err := p.db.QueryRow(ctx, query, args).Scan(&count); err != nil {
		p.log.Error("Error counting posts by user", slog.Int64("user_id", userID), slog.String("error", err.Error()))
		return 0, custom_errors.ErrDatabaseQuery
	}
	return count, nil
}

func (p *PostRepository) SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error) {
	args := pgx.NamedArgs{"slug": slug, "exclude_id": excludeID}
	query := `SELECT EXISTS (SELECT 1 FROM posts WHERE slug = @slug AND id <> @exclude_id)`

	var exists bool
	if err := p.db.QueryRow(ctx, query, args).Scan(&exists); err != nil {
		p.log.Error("Error checking slug uniqueness", slog.String("slug", slug), slog.String("error", err.Error()))
		return false, custom_errors.ErrDatabaseQuery
	}
	return exists, nil
}

// usersForPosts eager-loads the authors of the given posts in one query,
// keyed by user id.
func (p *PostRepository) usersForPosts(ctx context.Context, userIDs []int64) (map[int64]*model.User, error) {
	result := make(map[int64]*model.User)
	if len(userIDs) == 0 {
		return result, nil
	}

	args := pgx.NamedArgs{"user_ids": userIDs}
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ANY(@user_ids)`

	rows, err := p.db.Query(ctx, query, args)
	if err != nil {
		p.log.Error("Error loading users for posts", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	for rows.Next() {
		user := &model.User{}
		err := rows.Scan(
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
			p.log.Error("Error scanning user during usersForPosts", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		result[user.ID] = user
	}

	if err = rows.Err(); err != nil {
		p.log.Error("Error iterating rows during usersForPosts", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return result, nil
}
