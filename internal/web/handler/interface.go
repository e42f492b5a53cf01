package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/alshoaa/siteadmin/internal/auth"
	"github.com/alshoaa/siteadmin/internal/db/query"
)

// Service is the interface for a web handler service.
type Service interface {
	Init(routes Routes, deps Deps) error
}

// Routes are the route groups handlers register on. Admin is nil when no
// admin token is configured.
type Routes struct {
	Public fiber.Router
	Admin  fiber.Router
}

// Deps are the collaborators shared by all handlers.
type Deps struct {
	Executor *query.Executor
	Users    *auth.LocalProvider
}
