package models

import "time"

// ContactMessage is a message submitted through the public contact form.
// Only IsRead changes after creation.
type ContactMessage struct {
	// ID is the unique identifier of the message.
	ID int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	// Name of the sender.
	Name string `gorm:"size:255;not null" json:"name"`
	// Email of the sender.
	Email string `gorm:"size:255;not null" json:"email"`
	// Subject line, may be empty.
	Subject string `gorm:"size:255;not null;default:''" json:"subject"`
	// Message body.
	Message string `gorm:"type:text;not null" json:"message"`
	// IsRead is set once an administrator marked the message as read.
	IsRead bool `gorm:"not null;default:false" json:"is_read"`
	// CreatedAt is assigned by the database on insert.
	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}
