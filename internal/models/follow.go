// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Follow is a directed relation: UserID receives AuthorID's posts in their
// personalized feed. The composite unique index rejects duplicate pairs and
// the check constraint rejects self-follows at the store level; both are
// also enforced with a ConflictError before the insert is attempted.
type Follow struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_follows_user_author" json:"user_id"`
	AuthorID  uint      `gorm:"not null;uniqueIndex:idx_follows_user_author;check:chk_follows_no_self,user_id <> author_id" json:"author_id"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Author    User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (Follow) TableName() string {
	return "follows"
}
