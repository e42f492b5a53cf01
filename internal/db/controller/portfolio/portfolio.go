// Package portfolio provides CRUD operations for portfolio items.
package portfolio

import (
	"context"

	"github.com/alshoaa/siteadmin/internal/db/models"
	"github.com/alshoaa/siteadmin/internal/db/query"
	"github.com/alshoaa/siteadmin/internal/sanitize"
	"github.com/alshoaa/siteadmin/internal/validation"
)

const (
	columns        = "id, title, description, image_path, category, created_at"
	selectAll      = "SELECT " + columns + " FROM portfolio_items ORDER BY created_at DESC, id DESC"
	selectCategory = "SELECT " + columns + " FROM portfolio_items WHERE category = ? ORDER BY created_at DESC, id DESC"
	selectByID     = "SELECT " + columns + " FROM portfolio_items WHERE id = ?"
	insertItem     = "INSERT INTO portfolio_items (title, description, image_path, category) VALUES (?, ?, ?, ?)"
	updateItem     = "UPDATE portfolio_items SET title = ?, description = ?, image_path = ?, category = ? WHERE id = ?"
	deleteItem     = "DELETE FROM portfolio_items WHERE id = ?"
)

// Input holds the fields of a portfolio item.
type Input struct {
	Title       string `json:"title"       validate:"required,max=255"`
	Description string `json:"description" validate:"required"`
	ImagePath   string `json:"image_path"  validate:"max=255"`
	Category    string `json:"category"    validate:"max=100"`
}

func (in Input) sanitized() Input {
	return Input{
		Title:       sanitize.Sanitize(in.Title),
		Description: sanitize.Sanitize(in.Description),
		ImagePath:   sanitize.Sanitize(in.ImagePath),
		Category:    sanitize.Sanitize(in.Category),
	}
}

// List returns the items newest first. A non-empty category restricts the
// result to items of exactly that category.
func List(ctx context.Context, ex *query.Executor, category string) ([]models.PortfolioItem, error) {
	if category = sanitize.Sanitize(category); category != "" {
		return query.Many[models.PortfolioItem](ctx, ex, selectCategory, category)
	}

	return query.Many[models.PortfolioItem](ctx, ex, selectAll)
}

// Get returns the item id or query.ErrNotFound.
func Get(ctx context.Context, ex *query.Executor, id int64) (models.PortfolioItem, error) {
	return query.One[models.PortfolioItem](ctx, ex, selectByID, id)
}

// Add stores a new item and returns its id.
func Add(ctx context.Context, ex *query.Executor, in Input) (int64, error) {
	in = in.sanitized()

	if err := validation.Struct(in); err != nil {
		return 0, err //nolint:wrapcheck
	}

	return ex.Insert(ctx, insertItem, in.Title, in.Description, in.ImagePath, in.Category)
}

// Update replaces every field of item id.
func Update(ctx context.Context, ex *query.Executor, id int64, in Input) error {
	in = in.sanitized()

	if err := validation.Struct(in); err != nil {
		return err //nolint:wrapcheck
	}

	n, err := ex.Execute(ctx, updateItem, in.Title, in.Description, in.ImagePath, in.Category, id)

	return affected(n, err)
}

// Delete removes item id.
func Delete(ctx context.Context, ex *query.Executor, id int64) error {
	n, err := ex.Execute(ctx, deleteItem, id)

	return affected(n, err)
}

func affected(n int64, err error) error {
	if err != nil {
		return err //nolint:wrapcheck
	}

	if n == 0 {
		return query.ErrNotFound
	}

	return nil
}
