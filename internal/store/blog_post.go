// Copyright (c) 2026 İhsan At Ekipmanları <destek@ihsan.tack>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"ihsantack/internal/models"
	"ihsantack/internal/slug"
)

// BlogPostStore manages editorial blog posts.
type BlogPostStore struct {
	db *sql.DB
}

// NewBlogPostStore returns a new BlogPostStore.
func NewBlogPostStore(db *sql.DB) *BlogPostStore {
	return &BlogPostStore{db: db}
}

const blogPostColumns = `id, title, slug, excerpt, content, image, category,
	is_featured, is_active, created_at, updated_at`

func scanBlogPost(scanner interface{ Scan(...any) error }) (*models.BlogPost, error) {
	var p models.BlogPost
	err := scanner.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Content, &p.Image, &p.Category,
		&p.IsFeatured, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListActive returns active posts, newest first. limit <= 0 means no limit.
func (s *BlogPostStore) ListActive(limit int) ([]models.BlogPost, error) {
	query := `SELECT ` + blogPostColumns + ` FROM blog_posts
		WHERE is_active = TRUE ORDER BY created_at DESC`
	var (
		rows *sql.Rows
		err  error
	)
	if limit > 0 {
		rows, err = s.db.Query(query+` LIMIT $1`, limit)
	} else {
		rows, err = s.db.Query(query)
	}
	if err != nil {
		return nil, fmt.Errorf("list active posts: %w", err)
	}
	defer rows.Close()

	var items []models.BlogPost
	for rows.Next() {
		p, err := scanBlogPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// ActiveBySlug retrieves an active post by slug. Returns nil if not found.
func (s *BlogPostStore) ActiveBySlug(postSlug string) (*models.BlogPost, error) {
	row := s.db.QueryRow(`SELECT `+blogPostColumns+` FROM blog_posts
		WHERE slug = $1 AND is_active = TRUE`, postSlug)
	p, err := scanBlogPost(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("post by slug: %w", err)
	}
	return p, nil
}

// Related returns other active posts sharing the category label, newest
// first, excluding the post itself.
func (s *BlogPostStore) Related(post *models.BlogPost, limit int) ([]models.BlogPost, error) {
	rows, err := s.db.Query(`SELECT `+blogPostColumns+` FROM blog_posts
		WHERE is_active = TRUE AND category = $1 AND id <> $2
		ORDER BY created_at DESC
		LIMIT $3`, post.Category, post.ID, limit)
	if err != nil {
		return nil, fmt.Errorf("related posts: %w", err)
	}
	defer rows.Close()

	var items []models.BlogPost
	for rows.Next() {
		p, err := scanBlogPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// Create inserts a new post, deriving the slug from the title when empty.
func (s *BlogPostStore) Create(p *models.BlogPost) (*models.BlogPost, error) {
	if p.Slug == "" {
		p.Slug = slug.Generate(p.Title)
	}
	row := s.db.QueryRow(`
		INSERT INTO blog_posts (title, slug, excerpt, content, image, category, is_featured, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+blogPostColumns,
		p.Title, p.Slug, p.Excerpt, p.Content, p.Image, p.Category, p.IsFeatured, p.IsActive,
	)
	result, err := scanBlogPost(row)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return result, nil
}

// Delete removes a post by ID.
func (s *BlogPostStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}
