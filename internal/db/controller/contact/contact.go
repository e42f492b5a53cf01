// Package contact stores and lists messages sent through the contact form.
package contact

import (
	"context"

	"github.com/alshoaa/siteadmin/internal/db/models"
	"github.com/alshoaa/siteadmin/internal/db/query"
	"github.com/alshoaa/siteadmin/internal/sanitize"
	"github.com/alshoaa/siteadmin/internal/validation"
)

const (
	insertMessage = "INSERT INTO contact_messages (name, email, subject, message) VALUES (?, ?, ?, ?)"
	selectAll     = "SELECT id, name, email, subject, message, is_read, created_at FROM contact_messages " +
		"ORDER BY created_at DESC, id DESC"
	selectUnread = "SELECT id, name, email, subject, message, is_read, created_at FROM contact_messages " +
		"WHERE is_read = ? ORDER BY created_at DESC, id DESC"
	updateRead  = "UPDATE contact_messages SET is_read = ? WHERE id = ?"
	countUnread = "SELECT COUNT(*) FROM contact_messages WHERE is_read = ?"
)

// MessageInput is a contact form submission.
type MessageInput struct {
	Name    string `json:"name"    validate:"required,max=255"`
	Email   string `json:"email"   validate:"required,email,max=255"`
	Subject string `json:"subject" validate:"max=255"`
	Message string `json:"message" validate:"required"`
}

func (in MessageInput) sanitized() MessageInput {
	return MessageInput{
		Name:    sanitize.Sanitize(in.Name),
		Email:   sanitize.Sanitize(in.Email),
		Subject: sanitize.Sanitize(in.Subject),
		Message: sanitize.Sanitize(in.Message),
	}
}

// SaveMessage sanitizes and validates in and stores it as an unread message.
func SaveMessage(ctx context.Context, ex *query.Executor, in MessageInput) error {
	in = in.sanitized()

	if err := validation.Struct(in); err != nil {
		return err //nolint:wrapcheck
	}

	_, err := ex.Execute(ctx, insertMessage, in.Name, in.Email, in.Subject, in.Message)

	return err //nolint:wrapcheck
}

// ListMessages returns the messages newest first, only unread ones if
// unreadOnly is set.
func ListMessages(ctx context.Context, ex *query.Executor, unreadOnly bool) ([]models.ContactMessage, error) {
	if unreadOnly {
		return query.Many[models.ContactMessage](ctx, ex, selectUnread, false)
	}

	return query.Many[models.ContactMessage](ctx, ex, selectAll)
}

// MarkRead flags the message id as read. It returns query.ErrNotFound if no
// message has that id.
func MarkRead(ctx context.Context, ex *query.Executor, id int64) error {
	n, err := ex.Execute(ctx, updateRead, true, id)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if n == 0 {
		return query.ErrNotFound
	}

	return nil
}

// CountUnread returns the number of unread messages.
func CountUnread(ctx context.Context, ex *query.Executor) (int64, error) {
	return query.One[int64](ctx, ex, countUnread, false)
}
