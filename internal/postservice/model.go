package postservice

import (
	"context"
	"database/sql"
	"errors"
)

var ErrRecordNotFound = errors.New("record not found")

func newPostModel(db *sql.DB) *PostModel {
	return &PostModel{db: db}
}

func (m *PostModel) count(ctx context.Context) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM posts`

	var total int
	err := m.db.QueryRowContext(ctx, query).Scan(&total)
	if err != nil {
		return 0, err
	}

	return total, nil
}

// countByTitle counts posts whose title contains the filter as a substring.
// Postgres LIKE is case sensitive, so the match is case sensitive too.
func (m *PostModel) countByTitle(ctx context.Context, filter string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM posts
		WHERE title LIKE $1`

	var total int
	err := m.db.QueryRowContext(ctx, query, "%"+filter+"%").Scan(&total)
	if err != nil {
		return 0, err
	}

	return total, nil
}

// getPage returns one page of posts, oldest first. The id tie-break keeps
// pages stable when several posts share a created_at timestamp.
func (m *PostModel) getPage(ctx context.Context, limit, offset int) ([]Post, error) {
	query := `
		SELECT id, title, slug, content, created_at
		FROM posts
		ORDER BY created_at ASC, id ASC
		LIMIT $1 OFFSET $2`

	rows, err := m.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []Post
	for rows.Next() {
		var post Post
		err := rows.Scan(&post.ID, &post.Title, &post.Slug, &post.Content, &post.CreatedAt)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}

func (m *PostModel) getPageByTitle(ctx context.Context, filter string, limit, offset int) ([]Post, error) {
	query := `
		SELECT id, title, slug, content, created_at
		FROM posts
		WHERE title LIKE $1
		ORDER BY created_at ASC, id ASC
		LIMIT $2 OFFSET $3`

	rows, err := m.db.QueryContext(ctx, query, "%"+filter+"%", limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []Post
	for rows.Next() {
		var post Post
		err := rows.Scan(&post.ID, &post.Title, &post.Slug, &post.Content, &post.CreatedAt)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}

// getBySlug returns the first post at the given slug. Slugs carry no unique
// constraint, so on a collision the oldest row wins.
func (m *PostModel) getBySlug(ctx context.Context, slug string) (*Post, error) {
	query := `
		SELECT id, title, slug, content, created_at
		FROM posts
		WHERE slug = $1
		ORDER BY created_at ASC, id ASC
		LIMIT 1`

	row := m.db.QueryRowContext(ctx, query, slug)

	var post Post
	err := row.Scan(&post.ID, &post.Title, &post.Slug, &post.Content, &post.CreatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &post, nil
}

func (m *PostModel) insert(ctx context.Context, title, slug, content string) error {
	query := `
		INSERT INTO posts (title, slug, content, created_at)
		VALUES ($1, $2, $3, now())`

	_, err := m.db.ExecContext(ctx, query, title, slug, content)
	return err
}

// updateBySlug rewrites the row currently addressed by matchSlug. A missing
// slug updates nothing and is not an error; only the read paths report
// missing posts.
func (m *PostModel) updateBySlug(ctx context.Context, title, slug, content, matchSlug string) error {
	query := `
		UPDATE posts
		SET title = $1, slug = $2, content = $3
		WHERE slug = $4`

	_, err := m.db.ExecContext(ctx, query, title, slug, content, matchSlug)
	return err
}

func (m *PostModel) deleteBySlug(ctx context.Context, slug string) error {
	query := `
		DELETE FROM posts
		WHERE slug = $1`

	_, err := m.db.ExecContext(ctx, query, slug)
	return err
}
