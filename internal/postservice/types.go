package postservice

import (
	"database/sql"
	"time"
)

type Post struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	// Slug is derived from Title and is the post's public address.
	Slug      string    `json:"slug"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// PostPage is one window over the ordered post list, together with the
// paging figures the index view needs.
type PostPage struct {
	Posts       []Post `json:"posts"`
	CurrentPage int    `json:"current_page"`
	TotalPages  int    `json:"total_pages"`
	Total       int    `json:"total"`
}

type PostModel struct {
	db *sql.DB
}

type PostService struct {
	m *PostModel
}
