// Package models contains data structures for the application's domain models.
package models

import "time"

// User is the identity record. The password column only ever holds a
// bcrypt hash and is excluded from JSON. Users are never mutated after
// registration; deletion happens only through full account removal.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FirstName string    `gorm:"size:80;not null" json:"firstName"`
	LastName  string    `gorm:"size:80;not null" json:"lastName"`
	Email     string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}
