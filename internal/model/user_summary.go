package model

type UpdateUserResult struct {
	User          *User
	OldName       string
	UpdatedFields []string
}

// DeletedUser is the summary echoed back after a user is removed.
type DeletedUser struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	DeletedPostsCount int64  `json:"deleted_posts_count"`
}
