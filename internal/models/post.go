// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Post represents a post in the Pulse application. Feeds always order
// posts by created_at descending.
type Post struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Text     string `gorm:"type:text;not null" json:"text"`
	ImageURL string `json:"image_url,omitempty"`
	AuthorID *uint  `gorm:"index" json:"author_id,omitempty"`
	Author   *User  `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
	GroupID  *uint  `gorm:"index" json:"group_id,omitempty"`
	Group    *Group `gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL" json:"group,omitempty"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int `gorm:"->" json:"comments_count"`
	// AuthorPostCount is not persisted; total posts by this post's author (detail view only)
	AuthorPostCount int       `gorm:"->" json:"author_post_count,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// PostPage is one fixed-size page of a feed. Page numbers are 1-based and
// requests outside [1, TotalPages] are clamped to the nearest valid page.
type PostPage struct {
	Posts      []*Post `json:"posts"`
	Number     int     `json:"number"`
	Size       int     `json:"size"`
	Total      int64   `json:"total"`
	TotalPages int     `json:"total_pages"`
	HasNext    bool    `json:"has_next"`
	HasPrev    bool    `json:"has_prev"`
}
