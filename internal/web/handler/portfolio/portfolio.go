// Package portfolio serves the portfolio and its admin maintenance.
package portfolio

import (
	"github.com/gofiber/fiber/v3"

	"github.com/alshoaa/siteadmin/internal/db/controller/portfolio"
	"github.com/alshoaa/siteadmin/internal/db/query"
	"github.com/alshoaa/siteadmin/internal/web/handler"
)

// Path is the route of the portfolio collection.
const Path = "/portfolio"

// Service is the portfolio handler service.
type Service struct {
	handler.Service
	ex *query.Executor
}

// Init registers the portfolio routes.
func (s *Service) Init(routes handler.Routes, deps handler.Deps) error {
	if routes.Public == nil || deps.Executor == nil {
		return handler.ErrNilDeps
	}

	s.ex = deps.Executor

	public := routes.Public.Group(Path)
	public.Get(handler.RootPath, s.List)
	public.Get(handler.IDPath, s.Get)

	if routes.Admin != nil {
		admin := routes.Admin.Group(Path)
		admin.Post(handler.RootPath, s.Add)
		admin.Put(handler.IDPath, s.Update)
		admin.Delete(handler.IDPath, s.Delete)
	}

	return nil
}

// List returns the items, filtered by ?category= when given.
func (s *Service) List(c fiber.Ctx) error {
	items, err := portfolio.List(c.Context(), s.ex, c.Query("category"))
	if err != nil {
		return handler.Fail(c, err)
	}

	return c.JSON(items)
}

// Get returns a single item.
func (s *Service) Get(c fiber.Ctx) error {
	id, err := handler.ID(c)
	if err != nil {
		return err
	}

	item, err := portfolio.Get(c.Context(), s.ex, id)
	if err != nil {
		return handler.Fail(c, err)
	}

	return c.JSON(item)
}

// Add creates an item.
func (s *Service) Add(c fiber.Ctx) error {
	var in portfolio.Input

	if err := handler.Body(c, &in); err != nil {
		return err
	}

	id, err := portfolio.Add(c.Context(), s.ex, in)
	if err != nil {
		return handler.Fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

// Update replaces an item.
func (s *Service) Update(c fiber.Ctx) error {
	id, err := handler.ID(c)
	if err != nil {
		return err
	}

	var in portfolio.Input

	if err := handler.Body(c, &in); err != nil {
		return err
	}

	if err := portfolio.Update(c.Context(), s.ex, id, in); err != nil {
		return handler.Fail(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Delete removes an item.
func (s *Service) Delete(c fiber.Ctx) error {
	id, err := handler.ID(c)
	if err != nil {
		return err
	}

	if err := portfolio.Delete(c.Context(), s.ex, id); err != nil {
		return handler.Fail(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
