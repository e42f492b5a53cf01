package models

import "time"

// User represents a local user account.
// The password is the only field that changes after registration.
type User struct {
	// ID is the unique identifier for the user.
	ID int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	// Username is the unique name used to log in.
	Username string `gorm:"size:100;not null;uniqueIndex" json:"username"`
	// Password is the one-way hash of the password. It is never serialized.
	Password string `gorm:"size:255;not null" json:"-"`
	// Email is the unique email address of the user.
	Email string `gorm:"size:255;not null;uniqueIndex" json:"email"`
	// CreatedAt is assigned by the database on insert.
	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}
