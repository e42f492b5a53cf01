package models

import "time"

// PortfolioItem is a single entry of the portfolio.
type PortfolioItem struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	// ImagePath is a file or URL reference, its target is not checked.
	ImagePath string    `gorm:"size:255;not null;default:''" json:"image_path"`
	Category  string    `gorm:"size:100;not null;default:'';index" json:"category"`
	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}
