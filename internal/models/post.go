package models

import "time"

// Post is a user post. The author's first and last name are captured
// at creation time and never synced with later user changes. Likes and
// comments are owned child rows loaded newest-first.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	FirstName string    `gorm:"size:80;not null" json:"firstName"`
	LastName  string    `gorm:"size:80;not null" json:"lastName"`
	UserID    uint      `gorm:"not null;index" json:"user"`
	Likes     []Like    `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"likes"`
	Comments  []Comment `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"comments"`
	CreatedAt time.Time `json:"date"`
}

// TableName specifies the table name for GORM.
func (Post) TableName() string {
	return "posts"
}

// Like marks that a user liked a post. The composite unique index is
// what actually enforces at-most-one-like per (post, user); the
// handler-level pre-check only exists to produce a friendly 400.
type Like struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	PostID uint `gorm:"not null;uniqueIndex:idx_likes_post_user" json:"-"`
	UserID uint `gorm:"not null;uniqueIndex:idx_likes_post_user" json:"user"`
}

// TableName specifies the table name for GORM.
func (Like) TableName() string {
	return "likes"
}

// Comment is a comment on a post, removable only by its author. Author
// names are denormalized at write time like on Post.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;index" json:"-"`
	UserID    uint      `gorm:"not null" json:"user"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	FirstName string    `gorm:"size:80;not null" json:"firstName"`
	LastName  string    `gorm:"size:80;not null" json:"lastName"`
	CreatedAt time.Time `json:"date"`
}

// TableName specifies the table name for GORM.
func (Comment) TableName() string {
	return "comments"
}
