// Package contact serves the contact form and the admin message inbox.
package contact

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/alshoaa/siteadmin/internal/db/controller/contact"
	"github.com/alshoaa/siteadmin/internal/db/query"
	"github.com/alshoaa/siteadmin/internal/web/handler"
)

const (
	// Path is the public contact form route.
	Path = "/contact"

	// MessagesPath is the admin inbox route.
	MessagesPath = "/messages"
)

// Service is the contact handler service.
type Service struct {
	handler.Service
	ex *query.Executor
}

// Init registers the contact routes.
func (s *Service) Init(routes handler.Routes, deps handler.Deps) error {
	if routes.Public == nil || deps.Executor == nil {
		return handler.ErrNilDeps
	}

	s.ex = deps.Executor

	routes.Public.Post(Path, s.Post)

	if routes.Admin != nil {
		routes.Admin.Get(MessagesPath, s.List)
		routes.Admin.Post(MessagesPath+handler.IDPath+"/read", s.MarkRead)
	}

	return nil
}

// Post stores a contact form submission.
func (s *Service) Post(c fiber.Ctx) error {
	var in contact.MessageInput

	if err := handler.Body(c, &in); err != nil {
		return err
	}

	if err := contact.SaveMessage(c.Context(), s.ex, in); err != nil {
		return handler.Fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "ok"})
}

// List returns the inbox, only unread messages with ?unread=true.
func (s *Service) List(c fiber.Ctx) error {
	unreadOnly, _ := strconv.ParseBool(c.Query("unread")) //nolint:errcheck

	messages, err := contact.ListMessages(c.Context(), s.ex, unreadOnly)
	if err != nil {
		return handler.Fail(c, err)
	}

	unread, err := contact.CountUnread(c.Context(), s.ex)
	if err != nil {
		return handler.Fail(c, err)
	}

	return c.JSON(fiber.Map{
		"messages": messages,
		"unread":   unread,
	})
}

// MarkRead flags a message as read.
func (s *Service) MarkRead(c fiber.Ctx) error {
	id, err := handler.ID(c)
	if err != nil {
		return err
	}

	if err := contact.MarkRead(c.Context(), s.ex, id); err != nil {
		return handler.Fail(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
