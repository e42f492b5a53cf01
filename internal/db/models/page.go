package models

// Page is a static content page addressed by its slug.
type Page struct {
	ID    int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Title string `gorm:"size:255;not null" json:"title"`
	// Content is stored verbatim and may carry HTML.
	Content string `gorm:"type:text;not null" json:"content"`
	Slug    string `gorm:"size:255;not null;uniqueIndex" json:"slug"`
}
