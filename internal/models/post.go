package models

import (
	"time"

	"gorm.io/gorm"
)

// Post is a user's post. AuthorName and AuthorAvatar are denormalized from
// the User record at creation time and are intentionally never refreshed
// when the user later edits their account.
type Post struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	UserID       uint           `gorm:"not null;index" json:"user_id"`
	Text         string         `gorm:"type:text;not null" json:"text"`
	AuthorName   string         `json:"name"`
	AuthorAvatar string         `json:"avatar"`
	Likes        []Like         `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"likes"`
	Comments     []Comment      `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"comments"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// Like records that a user liked a post. The (user_id, post_id) pair is
// unique; likes are hard-deleted on unlike so a re-like can insert again.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_like_user_post" json:"user_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_like_user_post" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Comment is a comment on a post, with the author's display fields
// denormalized at write time like on Post.
type Comment struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	PostID       uint           `gorm:"not null;index" json:"post_id"`
	UserID       uint           `gorm:"not null" json:"user_id"`
	Text         string         `gorm:"type:text;not null" json:"text"`
	AuthorName   string         `json:"name"`
	AuthorAvatar string         `json:"avatar"`
	CreatedAt    time.Time      `json:"created_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
