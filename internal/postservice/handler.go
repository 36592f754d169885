package postservice

import (
	"context"
	"database/sql"
	"strings"

	"github.com/caiofernandes/blogo/internal/common"
)

const (
	// PageSize is the fixed number of posts per page for both listing
	// and search.
	PageSize = 5

	maxTitleChars = 100
)

func NewPostService(db *sql.DB) *PostService {
	return &PostService{m: newPostModel(db)}
}

type CreatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// CreatePost validates the input and inserts a new post. The slug is derived
// from the title; the title itself is stored as submitted.
func (s *PostService) CreatePost(ctx context.Context, req *CreatePostRequest) error {
	v := common.NewValidator()
	validateTitle(v, req.Title)
	validateContent(v, req.Content)
	if !v.Valid() {
		return v.ValidationError()
	}

	return s.m.insert(ctx, req.Title, Slugify(req.Title), req.Content)
}

type UpdatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdatePost rewrites the post currently addressed by slug and returns the
// post's new slug, recomputed from the new title. The returned slug equals
// the old one whenever the title still normalizes to it.
func (s *PostService) UpdatePost(ctx context.Context, slug string, req *UpdatePostRequest) (string, error) {
	v := common.NewValidator()
	validateTitle(v, req.Title)
	validateContent(v, req.Content)
	if !v.Valid() {
		return "", v.ValidationError()
	}

	newSlug := Slugify(req.Title)

	err := s.m.updateBySlug(ctx, req.Title, newSlug, req.Content, slug)
	if err != nil {
		return "", err
	}

	return newSlug, nil
}

func (s *PostService) DeletePost(ctx context.Context, slug string) error {
	return s.m.deleteBySlug(ctx, slug)
}

// GetPostBySlug returns the post at the given slug or ErrRecordNotFound.
func (s *PostService) GetPostBySlug(ctx context.Context, slug string) (*Post, error) {
	return s.m.getBySlug(ctx, slug)
}

// ListPosts returns the requested page of all posts, oldest first. Pages
// below 1 are treated as page 1. A page beyond the last one yields an empty
// list while TotalPages still reflects the full set. The count and page
// queries run outside a transaction, so a concurrent write between them can
// skew TotalPages for that one response.
func (s *PostService) ListPosts(ctx context.Context, page int) (*PostPage, error) {
	if page < 1 {
		page = 1
	}

	total, err := s.m.count(ctx)
	if err != nil {
		return nil, err
	}

	posts, err := s.m.getPage(ctx, PageSize, (page-1)*PageSize)
	if err != nil {
		return nil, err
	}

	return &PostPage{
		Posts:       posts,
		CurrentPage: page,
		TotalPages:  totalPages(total),
		Total:       total,
	}, nil
}

// SearchPosts returns the requested page of posts whose title contains q as
// a case-sensitive substring. An empty or whitespace-only q is no filter at
// all: the result is identical to ListPosts.
func (s *PostService) SearchPosts(ctx context.Context, q string, page int) (*PostPage, error) {
	if strings.TrimSpace(q) == "" {
		return s.ListPosts(ctx, page)
	}

	if page < 1 {
		page = 1
	}

	total, err := s.m.countByTitle(ctx, q)
	if err != nil {
		return nil, err
	}

	posts, err := s.m.getPageByTitle(ctx, q, PageSize, (page-1)*PageSize)
	if err != nil {
		return nil, err
	}

	return &PostPage{
		Posts:       posts,
		CurrentPage: page,
		TotalPages:  totalPages(total),
		Total:       total,
	}, nil
}

func totalPages(total int) int {
	return (total + PageSize - 1) / PageSize
}
