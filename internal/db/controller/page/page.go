// Package page reads and maintains the static content pages.
//
// Titles and slugs are sanitized; page content is stored verbatim and must
// be escaped by whatever renders it.
package page

import (
	"context"
	"errors"

	"github.com/alshoaa/siteadmin/internal/db/models"
	"github.com/alshoaa/siteadmin/internal/db/query"
	"github.com/alshoaa/siteadmin/internal/sanitize"
	"github.com/alshoaa/siteadmin/internal/validation"
)

const (
	selectBySlug = "SELECT id, title, content, slug FROM pages WHERE slug = ?"
	selectByID   = "SELECT id, title, content, slug FROM pages WHERE id = ?"
	selectAll    = "SELECT id, title, content, slug FROM pages ORDER BY title ASC"
	slugExists   = "SELECT id FROM pages WHERE slug = ?"
	insertPage   = "INSERT INTO pages (title, content, slug) VALUES (?, ?, ?)"
	updatePage   = "UPDATE pages SET title = ?, content = ? WHERE id = ?"
)

// CreateInput holds the fields of a new page.
type CreateInput struct {
	Title   string `json:"title"   validate:"required,max=255"`
	Content string `json:"content" validate:"required"`
	Slug    string `json:"slug"    validate:"required,max=255"`
}

// UpdateInput holds the editable fields of a page.
type UpdateInput struct {
	Title   string `json:"title"   validate:"required,max=255"`
	Content string `json:"content" validate:"required"`
}

// GetBySlug returns the page with slug or query.ErrNotFound.
func GetBySlug(ctx context.Context, ex *query.Executor, slug string) (models.Page, error) {
	return query.One[models.Page](ctx, ex, selectBySlug, sanitize.Sanitize(slug))
}

// GetByID returns the page id or query.ErrNotFound.
func GetByID(ctx context.Context, ex *query.Executor, id int64) (models.Page, error) {
	return query.One[models.Page](ctx, ex, selectByID, id)
}

// ListAll returns every page ordered by title.
func ListAll(ctx context.Context, ex *query.Executor) ([]models.Page, error) {
	return query.Many[models.Page](ctx, ex, selectAll)
}

// Update replaces title and content of page id. The slug never changes.
func Update(ctx context.Context, ex *query.Executor, id int64, in UpdateInput) error {
	in.Title = sanitize.Sanitize(in.Title)

	if err := validation.Struct(in); err != nil {
		return err //nolint:wrapcheck
	}

	n, err := ex.Execute(ctx, updatePage, in.Title, in.Content, id)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if n == 0 {
		return query.ErrNotFound
	}

	return nil
}

// Create stores a new page and returns its id. A slug that is already in use
// is rejected with a validation error on the slug field, whether the lookup
// or the unique index catches it.
func Create(ctx context.Context, ex *query.Executor, in CreateInput) (int64, error) {
	in.Title = sanitize.Sanitize(in.Title)
	in.Slug = sanitize.Sanitize(in.Slug)

	if err := validation.Struct(in); err != nil {
		return 0, err //nolint:wrapcheck
	}

	_, err := query.One[int64](ctx, ex, slugExists, in.Slug)
	switch {
	case err == nil:
		return 0, validation.Taken("slug")
	case !errors.Is(err, query.ErrNotFound):
		return 0, err //nolint:wrapcheck
	}

	id, err := ex.Insert(ctx, insertPage, in.Title, in.Content, in.Slug)
	if errors.Is(err, query.ErrDuplicate) {
		return 0, validation.Taken("slug")
	}

	return id, err //nolint:wrapcheck
}
