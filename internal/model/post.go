package model

import "github.com/jackc/pgx/v5/pgtype"

type Post struct {
	ID          int64            `json:"id"`
	Title       string           `json:"title"`
	Content     string           `json:"content"`
	Slug        string           `json:"slug"`
	Views       int64            `json:"views"`
	Rating      *float64         `json:"rating"`
	IsPublished bool             `json:"is_published"`
	PublishedAt pgtype.Timestamp `json:"published_at"`
	ReadingTime pgtype.Timestamp `json:"reading_time"`
	Tags        []string         `json:"tags"`
	FullContent *string          `json:"full_content"`
	UserID      int64            `json:"user_id"`
	CreatedAt   pgtype.Timestamp `json:"created_at"`
	UpdatedAt   pgtype.Timestamp `json:"updated_at"`
	User        *User            `json:"user,omitempty"`
}
