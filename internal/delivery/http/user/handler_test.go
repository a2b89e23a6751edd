package user_http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userpost-service/internal/config"
	delivery_http "userpost-service/internal/delivery/http"
	post_http "userpost-service/internal/delivery/http/post"
	user_http "userpost-service/internal/delivery/http/user"
	"userpost-service/internal/logger"
	"userpost-service/internal/metrics/noop"
	"userpost-service/internal/model"
	"userpost-service/internal/repository/memory"
	post_service "userpost-service/internal/service/post"
	user_service "userpost-service/internal/service/user"
	"userpost-service/internal/validation"
)

type testEnv struct {
	router   http.Handler
	userRepo *memory.UserRepository
	postRepo *memory.PostRepository
}

func setupRouter(t *testing.T) *testEnv {
	t.Helper()
	log := logger.New(logger.EnvTest)
	store := memory.NewStore()
	userRepo := memory.NewUserRepository(store, log)
	postRepo := memory.NewPostRepository(store, log)
	uow := memory.NewMemoryUOW(store, log)
	validate := validation.New()
	metrics := noop.NewNoopMetricsProvider()

	userSvc := user_service.NewUserService(userRepo, uow, validate, log, metrics)
	postSvc := post_service.NewPostService(postRepo, userRepo, validate, log, metrics)

	api := config.API{
		Version:            "v1.0.0",
		Author:             "Your Name",
		DocumentationURL:   "https://your-api-docs.com",
		RateLimit:          "1000",
		RateLimitRemaining: "999",
	}

	router := delivery_http.NewRouter(
		user_http.NewHandler(userSvc, log),
		post_http.NewHandler(postSvc, log),
		api, log, metrics,
	)

	return &testEnv{router: router, userRepo: userRepo, postRepo: postRepo}
}

func (e *testEnv) do(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)

	decoded := map[string]any{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec, decoded
}

func (e *testEnv) seedUser(t *testing.T, name, email string) *model.User {
	t.Helper()
	user, err := e.userRepo.Create(context.Background(), &model.User{
		Name:     name,
		Email:    email,
		IsActive: true,
		Role:     model.RoleUser,
	})
	require.NoError(t, err)
	return user
}

func TestUserIndex(t *testing.T) {
	env := setupRouter(t)
	alice := env.seedUser(t, "Alice", "alice@example.com")
	env.seedUser(t, "Bob", "bob@example.com")

	_, err := env.postRepo.Create(context.Background(), &model.Post{
		Title:   "First",
		Content: "Content",
		Slug:    "first",
		UserID:  alice.ID,
	})
	require.NoError(t, err)

	rec, body := env.do(t, http.MethodGet, "/users", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Users retrieved successfully", body["message"])
	assert.Equal(t, float64(2), body["count"])

	data := body["data"].([]any)
	require.Len(t, data, 2)
	first := data[0].(map[string]any)
	assert.Equal(t, "Alice", first["name"])
	assert.Len(t, first["posts"], 1)
}

func TestUserShow(t *testing.T) {
	env := setupRouter(t)
	alice := env.seedUser(t, "Alice", "alice@example.com")

	rec, body := env.do(t, http.MethodGet, "/users/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "User retrieved successfully (ID: 1)", body["message"])
	data := body["data"].(map[string]any)
	assert.Equal(t, float64(alice.ID), data["id"])

	rec, body = env.do(t, http.MethodGet, "/users/42", "")
	assert.Equal(t, http.StatusGone, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "User not found with the given ID: 42", body["message"])
	assert.Equal(t, "User not found", body["error"])
}

func TestUserShow_NonNumericID(t *testing.T) {
	env := setupRouter(t)

	rec, body := env.do(t, http.MethodGet, "/users/abc", "")
	assert.Equal(t, http.StatusGone, rec.Code)
	assert.Equal(t, "User not found with the given ID: abc", body["message"])
	assert.Equal(t, "User not found", body["error"])
}

func TestUserStore(t *testing.T) {
	env := setupRouter(t)

	rec, body := env.do(t, http.MethodPost, "/users", `{"name":"Alice","email":"alice@example.com","age":30}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "New user created successfully (ID: 1, Name: Alice)", body["message"])
	data := body["data"].(map[string]any)
	assert.Equal(t, "Alice", data["name"])
	assert.Equal(t, float64(30), data["age"])
	assert.Equal(t, true, data["is_active"])
	assert.Equal(t, "user", data["role"])
	assert.Equal(t, "true", rec.Header().Get("X-Resource-Created"))
}

func TestUserStore_ValidationErrors(t *testing.T) {
	env := setupRouter(t)
	env.seedUser(t, "Alice", "alice@example.com")

	tests := []struct {
		name       string
		body       string
		wantErrors map[string]any
	}{
		{
			name: "missing fields",
			body: `{}`,
			wantErrors: map[string]any{
				"name":  []any{"The name field is required."},
				"email": []any{"The email field is required."},
			},
		},
		{
			name: "malformed body treated as empty",
			body: `{not json`,
			wantErrors: map[string]any{
				"name":  []any{"The name field is required."},
				"email": []any{"The email field is required."},
			},
		},
		{
			name: "duplicate email",
			body: `{"name":"Bob","email":"alice@example.com"}`,
			wantErrors: map[string]any{
				"email": []any{"The email has already been taken."},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := env.do(t, http.MethodPost, "/users", tt.body)

			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, "Validation error occurred", body["message"])
			assert.Equal(t, tt.wantErrors, body["errors"])
		})
	}
}

func TestUserUpdate(t *testing.T) {
	env := setupRouter(t)
	env.seedUser(t, "Alice", "alice@example.com")

	rec, body := env.do(t, http.MethodPut, "/users/1", `{"name":"Alice Cooper","bio":"Updated"}`)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "User updated successfully! (ID: 1, Old name: Alice, New name: Alice Cooper)", body["message"])
	assert.Equal(t, []any{"name", "bio"}, body["updated_fields"])
	data := body["data"].(map[string]any)
	assert.Equal(t, "Alice Cooper", data["name"])
	assert.Equal(t, "true", rec.Header().Get("X-Resource-Updated"))
}

func TestUserUpdate_NotFound(t *testing.T) {
	env := setupRouter(t)

	rec, body := env.do(t, http.MethodPut, "/users/42", `{"name":"Nobody"}`)

	assert.Equal(t, http.StatusGone, rec.Code)
	assert.Equal(t, "User not found for update (ID: 42)", body["message"])
	assert.Equal(t, "User not found for update", body["error"])
}

func TestUserUpdate_ValidationError(t *testing.T) {
	env := setupRouter(t)
	env.seedUser(t, "Alice", "alice@example.com")

	rec, body := env.do(t, http.MethodPut, "/users/1", `{"email":"broken"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "Validation error during update", body["message"])
	assert.Equal(t, map[string]any{
		"email": []any{"The email field must be a valid email address."},
	}, body["errors"])
}

func TestUserUpdate_EmptyRequiredField(t *testing.T) {
	env := setupRouter(t)
	env.seedUser(t, "Alice", "alice@example.com")

	rec, body := env.do(t, http.MethodPut, "/users/1", `{"name":"","email":""}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "Validation error during update", body["message"])
	assert.Equal(t, map[string]any{
		"name":  []any{"The name field is required."},
		"email": []any{"The email field is required."},
	}, body["errors"])
}

func TestUserDestroy(t *testing.T) {
	env := setupRouter(t)
	alice := env.seedUser(t, "Alice", "alice@example.com")

	for _, slug := range []string{"one", "two"} {
		_, err := env.postRepo.Create(context.Background(), &model.Post{
			Title:   "Post " + slug,
			Content: "Content",
			Slug:    slug,
			UserID:  alice.ID,
		})
		require.NoError(t, err)
	}

	rec, body := env.do(t, http.MethodDelete, "/users/1", "")

	// net/http drops the body of a 204 on the wire; the recorder captures
	// what the handler wrote, which is what these assertions cover.
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "User deleted successfully! (ID: 1, Name: Alice, Deleted posts: 2)", body["message"])
	deleted := body["deleted_user"].(map[string]any)
	assert.Equal(t, float64(1), deleted["id"])
	assert.Equal(t, "Alice", deleted["name"])
	assert.Equal(t, float64(2), deleted["deleted_posts_count"])
	assert.Equal(t, "true", rec.Header().Get("X-Resource-Deleted"))

	rec, _ = env.do(t, http.MethodGet, "/posts", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserDestroy_NotFound(t *testing.T) {
	env := setupRouter(t)

	rec, body := env.do(t, http.MethodDelete, "/users/42", "")

	assert.Equal(t, http.StatusGone, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "User not found for deletion (ID: 42)", body["message"])
	assert.Equal(t, "User not found for deletion", body["error"])
}
