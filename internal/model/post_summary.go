package model

type CreatePostResult struct {
	Post       *Post
	AuthorName string
}

type UpdatePostResult struct {
	Post          *Post
	OldTitle      string
	AuthorName    string
	UpdatedFields []string
}

// DeletedPost is the summary echoed back after a post is removed.
type DeletedPost struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Views  int64  `json:"views"`
}
