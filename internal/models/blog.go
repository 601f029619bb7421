package models

import (
	"time"

	"gorm.io/gorm"
)

type BlogPost struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Title       string         `json:"title" gorm:"not null"`
	Slug        string         `json:"slug" gorm:"unique;not null"`
	Excerpt     string         `json:"excerpt"`
	Body        string         `json:"body" gorm:"type:text"`
	AuthorID    uint           `json:"author_id" gorm:"not null"`
	IsPublished bool           `json:"is_published" gorm:"default:false"`
	PublishedAt *time.Time     `json:"published_at"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
