// Package user serves registration, login and the admin account routes.
package user

import (
	"github.com/gofiber/fiber/v3"

	"github.com/alshoaa/siteadmin/internal/auth"
	"github.com/alshoaa/siteadmin/internal/web/handler"
)

// Path is the route prefix of the account routes.
const Path = "/users"

// LoginInput is the login request body.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// PasswordInput is the change password request body.
type PasswordInput struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// Service is the user handler service.
type Service struct {
	handler.Service
	users *auth.LocalProvider
}

// Init registers the user routes.
func (s *Service) Init(routes handler.Routes, deps handler.Deps) error {
	if routes.Public == nil || deps.Users == nil {
		return handler.ErrNilDeps
	}

	s.users = deps.Users

	public := routes.Public.Group(Path)
	public.Post("/register", s.Register)
	public.Post("/login", s.Login)

	if routes.Admin != nil {
		admin := routes.Admin.Group(Path)
		admin.Get(handler.IDPath, s.Get)
		admin.Post(handler.IDPath+"/password", s.ChangePassword)
	}

	return nil
}

// Register creates an account.
func (s *Service) Register(c fiber.Ctx) error {
	var in auth.RegisterInput

	if err := handler.Body(c, &in); err != nil {
		return err
	}

	id, err := s.users.Register(c.Context(), in)
	if err != nil {
		return handler.Fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

// Login checks credentials and returns the account.
func (s *Service) Login(c fiber.Ctx) error {
	var in LoginInput

	if err := handler.Body(c, &in); err != nil {
		return err
	}

	u, err := s.users.Login(c.Context(), in.Username, in.Password)
	if err != nil {
		return handler.Fail(c, err)
	}

	return c.JSON(u)
}

// Get returns an account without its password.
func (s *Service) Get(c fiber.Ctx) error {
	id, err := handler.ID(c)
	if err != nil {
		return err
	}

	u, err := s.users.GetByID(c.Context(), id)
	if err != nil {
		return handler.Fail(c, err)
	}

	return c.JSON(u)
}

// ChangePassword replaces the password of an account.
func (s *Service) ChangePassword(c fiber.Ctx) error {
	id, err := handler.ID(c)
	if err != nil {
		return err
	}

	var in PasswordInput

	if err := handler.Body(c, &in); err != nil {
		return err
	}

	if err := s.users.ChangePassword(c.Context(), id, in.CurrentPassword, in.NewPassword); err != nil {
		return handler.Fail(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
