package model

import "github.com/jackc/pgx/v5/pgtype"

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
)

type User struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Email       string           `json:"email"`
	Age         *int32           `json:"age"`
	Salary      *float64         `json:"salary"`
	IsActive    bool             `json:"is_active"`
	BirthDate   pgtype.Date      `json:"birth_date"`
	LastLoginAt pgtype.Timestamp `json:"last_login_at"`
	Bio         *string          `json:"bio"`
	Preferences map[string]any   `json:"preferences"`
	Role        Role             `json:"role"`
	CreatedAt   pgtype.Timestamp `json:"created_at"`
	UpdatedAt   pgtype.Timestamp `json:"updated_at"`
	Posts       []*Post          `json:"posts,omitempty"`
}
