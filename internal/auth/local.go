package auth

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/alshoaa/siteadmin/internal/db/models"
	"github.com/alshoaa/siteadmin/internal/db/query"
	"github.com/alshoaa/siteadmin/internal/sanitize"
	"github.com/alshoaa/siteadmin/internal/validation"
)

const (
	selectConflict = "SELECT id, username, email FROM users WHERE username = ? OR email = ? LIMIT 1"
	selectLogin    = "SELECT id, username, password, email, created_at FROM users WHERE username = ?"
	selectByID     = "SELECT id, username, email, created_at FROM users WHERE id = ?"
	selectPassword = "SELECT password FROM users WHERE id = ?"
	insertUser     = "INSERT INTO users (username, password, email) VALUES (?, ?, ?)"
	updatePassword = "UPDATE users SET password = ? WHERE id = ?"
)

// LocalProvider handles local database authentication.
type LocalProvider struct {
	ex *query.Executor
}

// RegisterInput holds the fields of a new account. The password is hashed
// as given and never sanitized.
type RegisterInput struct {
	Username string `json:"username" validate:"required,max=100"`
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required"`
}

// NewLocalProvider creates a new local authentication provider.
func NewLocalProvider(ex *query.Executor) *LocalProvider {
	return &LocalProvider{
		ex: ex,
	}
}

// Register creates a new user and returns its id. A username or email that
// is already in use is rejected with a validation error naming the field.
func (p *LocalProvider) Register(ctx context.Context, in RegisterInput) (int64, error) {
	in.Username = sanitize.Sanitize(in.Username)
	in.Email = sanitize.Sanitize(in.Email)

	if err := validation.Struct(in); err != nil {
		return 0, err //nolint:wrapcheck
	}

	if err := p.checkConflict(ctx, in); err != nil {
		return 0, err
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return 0, err
	}

	id, err := p.ex.Insert(ctx, insertUser, in.Username, hash, in.Email)
	if errors.Is(err, query.ErrDuplicate) {
		// lost a race against a concurrent registration
		if conflict := p.checkConflict(ctx, in); conflict != nil {
			return 0, conflict
		}

		return 0, validation.Taken("username")
	}

	return id, err //nolint:wrapcheck
}

// checkConflict returns a validation error if username or email is taken.
func (p *LocalProvider) checkConflict(ctx context.Context, in RegisterInput) error {
	existing, err := query.One[models.User](ctx, p.ex, selectConflict, in.Username, in.Email)

	switch {
	case errors.Is(err, query.ErrNotFound):
		return nil
	case err != nil:
		return err //nolint:wrapcheck
	case existing.Username == in.Username:
		return validation.Taken("username")
	default:
		return validation.Taken("email")
	}
}

// Login checks the credentials and returns the user without its password.
// A missing user and a wrong password both return ErrInvalidCredentials.
func (p *LocalProvider) Login(ctx context.Context, username, password string) (models.User, error) {
	user, err := query.One[models.User](ctx, p.ex, selectLogin, sanitize.Sanitize(username))

	switch {
	case errors.Is(err, query.ErrNotFound):
		VerifyPassword(password, dummy())
		return models.User{}, ErrInvalidCredentials
	case err != nil:
		return models.User{}, err //nolint:wrapcheck
	}

	if !VerifyPassword(password, user.Password) {
		return models.User{}, ErrInvalidCredentials
	}

	if NeedsRehash(user.Password) {
		p.rehash(ctx, user.ID, password)
	}

	user.Password = ""

	return user, nil
}

// rehash replaces the stored hash of user id. Failures are logged only, the
// login already succeeded.
func (p *LocalProvider) rehash(ctx context.Context, id int64, password string) {
	hash, err := HashPassword(password)
	if err != nil {
		log.Warn().Err(err).Int64("user_id", id).Msg("password rehash skipped")
		return
	}

	if _, err := p.ex.Execute(ctx, updatePassword, hash, id); err != nil {
		log.Warn().Int64("user_id", id).Msg("password rehash not stored")
		return
	}

	log.Info().Int64("user_id", id).Msg("password hash upgraded")
}

// GetByID returns the user id without its password, or query.ErrNotFound.
func (p *LocalProvider) GetByID(ctx context.Context, id int64) (models.User, error) {
	return query.One[models.User](ctx, p.ex, selectByID, id)
}

// ChangePassword replaces the password of user id after checking the
// current one.
func (p *LocalProvider) ChangePassword(ctx context.Context, id int64, currentPassword, newPassword string) error {
	if newPassword == "" {
		return &validation.Error{Field: "new_password", Reason: validation.ReasonRequired}
	}

	stored, err := query.One[string](ctx, p.ex, selectPassword, id)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if !VerifyPassword(currentPassword, stored) {
		return ErrInvalidCredentials
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}

	n, err := p.ex.Execute(ctx, updatePassword, hash, id)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if n == 0 {
		return query.ErrNotFound
	}

	return nil
}
