package models

import "time"

// SocialLinks holds the optional social media URLs on a profile.
// Embedded into the profiles table with a social_ column prefix.
type SocialLinks struct {
	Youtube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// Profile is the one-per-user profile. Skills is an ordered,
// deduplicated set stored as a JSON column. Experience and education
// entries are owned child rows loaded newest-first, mirroring the
// insert-at-head sequence semantics of the embedded document layout.
type Profile struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	UserID         uint         `gorm:"not null;uniqueIndex" json:"user"`
	User           User         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Company        string       `gorm:"size:120" json:"company,omitempty"`
	Website        string       `gorm:"size:255" json:"website,omitempty"`
	Location       string       `gorm:"size:120" json:"location,omitempty"`
	Status         string       `gorm:"size:120;not null" json:"status"`
	Bio            string       `gorm:"type:text" json:"bio,omitempty"`
	GithubUsername string       `gorm:"size:80" json:"githubusername,omitempty"`
	Skills         []string     `gorm:"serializer:json" json:"skills"`
	Social         SocialLinks  `gorm:"embedded;embeddedPrefix:social_" json:"social"`
	Experience     []Experience `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"experience"`
	Education      []Education  `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"education"`
	// FirstName/LastName are denormalized onto responses from the owning
	// user at read time; they are not persisted on the profile row.
	FirstName string    `gorm:"-" json:"firstName,omitempty"`
	LastName  string    `gorm:"-" json:"lastName,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Profile) TableName() string {
	return "profiles"
}

// Experience is a work history entry owned by a profile. It has no
// independent lifecycle: it is created and removed through the profile.
type Experience struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	ProfileID   uint       `gorm:"not null;index" json:"-"`
	Title       string     `gorm:"size:120;not null" json:"title"`
	Company     string     `gorm:"size:120;not null" json:"company"`
	Location    string     `gorm:"size:120" json:"location,omitempty"`
	From        time.Time  `gorm:"not null" json:"from"`
	To          *time.Time `json:"to,omitempty"`
	Current     bool       `json:"current"`
	Description string     `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time  `json:"-"`
}

// TableName specifies the table name for GORM.
func (Experience) TableName() string {
	return "experiences"
}

// Education is a schooling entry owned by a profile, with the same
// lifecycle semantics as Experience.
type Education struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	ProfileID    uint       `gorm:"not null;index" json:"-"`
	School       string     `gorm:"size:120;not null" json:"school"`
	Degree       string     `gorm:"size:120;not null" json:"degree"`
	FieldOfStudy string     `gorm:"size:120;not null" json:"fieldofstudy"`
	From         time.Time  `gorm:"not null" json:"from"`
	To           *time.Time `json:"to,omitempty"`
	Current      bool       `json:"current"`
	Description  string     `gorm:"type:text" json:"description,omitempty"`
	CreatedAt    time.Time  `json:"-"`
}

// TableName specifies the table name for GORM.
func (Education) TableName() string {
	return "educations"
}
