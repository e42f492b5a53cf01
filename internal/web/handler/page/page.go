// Package page serves the content pages and their admin maintenance.
package page

import (
	"github.com/gofiber/fiber/v3"

	"github.com/alshoaa/siteadmin/internal/db/controller/page"
	"github.com/alshoaa/siteadmin/internal/db/query"
	"github.com/alshoaa/siteadmin/internal/web/handler"
)

// Path is the route of the page collection.
const Path = "/pages"

// Service is the page handler service.
type Service struct {
	handler.Service
	ex *query.Executor
}

// Init registers the page routes.
func (s *Service) Init(routes handler.Routes, deps handler.Deps) error {
	if routes.Public == nil || deps.Executor == nil {
		return handler.ErrNilDeps
	}

	s.ex = deps.Executor

	public := routes.Public.Group(Path)
	public.Get(handler.RootPath, s.List)
	public.Get("/:slug", s.GetBySlug)

	if routes.Admin != nil {
		admin := routes.Admin.Group(Path)
		admin.Post(handler.RootPath, s.Create)
		admin.Get(handler.IDPath, s.GetByID)
		admin.Put(handler.IDPath, s.Update)
	}

	return nil
}

// List returns all pages ordered by title.
func (s *Service) List(c fiber.Ctx) error {
	pages, err := page.ListAll(c.Context(), s.ex)
	if err != nil {
		return handler.Fail(c, err)
	}

	return c.JSON(pages)
}

// GetBySlug returns a single page.
func (s *Service) GetBySlug(c fiber.Ctx) error {
	p, err := page.GetBySlug(c.Context(), s.ex, c.Params("slug"))
	if err != nil {
		return handler.Fail(c, err)
	}

	return c.JSON(p)
}

// GetByID returns a single page for editing.
func (s *Service) GetByID(c fiber.Ctx) error {
	id, err := handler.ID(c)
	if err != nil {
		return err
	}

	p, err := page.GetByID(c.Context(), s.ex, id)
	if err != nil {
		return handler.Fail(c, err)
	}

	return c.JSON(p)
}

// Create adds a page.
func (s *Service) Create(c fiber.Ctx) error {
	var in page.CreateInput

	if err := handler.Body(c, &in); err != nil {
		return err
	}

	id, err := page.Create(c.Context(), s.ex, in)
	if err != nil {
		return handler.Fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

// Update replaces title and content of a page.
func (s *Service) Update(c fiber.Ctx) error {
	id, err := handler.ID(c)
	if err != nil {
		return err
	}

	var in page.UpdateInput

	if err := handler.Body(c, &in); err != nil {
		return err
	}

	if err := page.Update(c.Context(), s.ex, id, in); err != nil {
		return handler.Fail(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
