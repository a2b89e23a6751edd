package model

type UpdatePostDTO struct {
	Title       *string  `json:"title,omitempty" validate:"omitnil,min=1,max=255"`
	Content     *string  `json:"content,omitempty" validate:"omitnil,min=1"`
	Slug        *string  `json:"slug,omitempty" validate:"omitnil,min=1"`
	UserID      *int64   `json:"user_id,omitempty" validate:"omitnil,required"`
	Rating      *float64 `json:"rating,omitempty" validate:"omitnil,gte=0,lte=5"`
	IsPublished *bool    `json:"is_published,omitempty"`
	PublishedAt *string  `json:"published_at,omitempty" validate:"omitnil,datetime=2006-01-02T15:04:05Z07:00"`
	Tags        []string `json:"tags,omitempty"`
	FullContent *string  `json:"full_content,omitempty"`
}

// UpdatedFields lists the names of the fields present in the request,
// in declaration order.
func (u *UpdatePostDTO) UpdatedFields() []string {
	fields := []string{}
	if u.Title != nil {
		fields = append(fields, "title")
	}
	if u.Content != nil {
		fields = append(fields, "content")
	}
	if u.Slug != nil {
		fields = append(fields, "slug")
	}
	if u.UserID != nil {
		fields = append(fields, "user_id")
	}
	if u.Rating != nil {
		fields = append(fields, "rating")
	}
	if u.IsPublished != nil {
		fields = append(fields, "is_published")
	}
	if u.PublishedAt != nil {
		fields = append(fields, "published_at")
	}
	if u.Tags != nil {
		fields = append(fields, "tags")
	}
	if u.FullContent != nil {
		fields = append(fields, "full_content")
	}
	return fields
}
