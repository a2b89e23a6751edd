package model

type CreatePostDTO struct {
	Title       string   `json:"title" validate:"required,max=255"`
	Content     string   `json:"content" validate:"required"`
	Slug        string   `json:"slug" validate:"required"`
	UserID      int64    `json:"user_id" validate:"required"`
	Rating      *float64 `json:"rating,omitempty" validate:"omitnil,gte=0,lte=5"`
	IsPublished *bool    `json:"is_published,omitempty"`
	PublishedAt *string  `json:"published_at,omitempty" validate:"omitnil,datetime=2006-01-02T15:04:05Z07:00"`
	Tags        []string `json:"tags,omitempty"`
	FullContent *string  `json:"full_content,omitempty"`
}
