package models

import (
	"time"

	"gorm.io/gorm"
)

// Link is a saved bookmark owned by one user.
type Link struct {
	ID          string    `json:"id" gorm:"type:uuid;primaryKey"`
	UserID      string    `json:"userId" gorm:"not null;index"`
	URL         string    `json:"url" gorm:"not null"`
	Title       string    `json:"title" gorm:"not null"`
	Description *string   `json:"description"`
	IsPermanent bool      `json:"isPermanent" gorm:"not null;default:false"`
	IsPublic    bool      `json:"isPublic" gorm:"not null;default:false"`
	CreatedAt   time.Time `json:"createdAt" gorm:"not null;autoCreateTime:false"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"not null;autoUpdateTime:false"`
}

// TableName returns the table name for Link
func (Link) TableName() string {
	return "link"
}

// BeforeCreate sets the UUID if not already set
func (l *Link) BeforeCreate(tx *gorm.DB) error {
	ensureID(&l.ID)
	return nil
}

// AfterFind normalizes timestamps to UTC
func (l *Link) AfterFind(tx *gorm.DB) error {
	l.CreatedAt = l.CreatedAt.UTC()
	l.UpdatedAt = l.UpdatedAt.UTC()
	return nil
}

// Clone returns a copy that shares no memory with l
func (l Link) Clone() Link {
	if l.Description != nil {
		d := *l.Description
		l.Description = &d
	}
	return l
}

// Note is a free-text annotation on exactly one link.
type Note struct {
	ID          string    `json:"id" gorm:"type:uuid;primaryKey"`
	LinkID      string    `json:"linkId" gorm:"type:uuid;not null;index"`
	Content     string    `json:"content" gorm:"not null"`
	IsPublished bool      `json:"isPublished" gorm:"not null;default:false"`
	CreatedAt   time.Time `json:"createdAt" gorm:"not null;autoCreateTime:false"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"not null;autoUpdateTime:false"`
}

// TableName returns the table name for Note
func (Note) TableName() string {
	return "note"
}

// BeforeCreate sets the UUID if not already set
func (n *Note) BeforeCreate(tx *gorm.DB) error {
	ensureID(&n.ID)
	return nil
}

// AfterFind normalizes timestamps to UTC
func (n *Note) AfterFind(tx *gorm.DB) error {
	n.CreatedAt = n.CreatedAt.UTC()
	n.UpdatedAt = n.UpdatedAt.UTC()
	return nil
}

// Label is a user-defined tag attachable to many links.
type Label struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    string    `json:"userId" gorm:"not null;index"`
	Name      string    `json:"name" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"not null;autoCreateTime:false"`
}

// TableName returns the table name for Label
func (Label) TableName() string {
	return "label"
}

// BeforeCreate sets the UUID if not already set
func (l *Label) BeforeCreate(tx *gorm.DB) error {
	ensureID(&l.ID)
	return nil
}

// AfterFind normalizes timestamps to UTC
func (l *Label) AfterFind(tx *gorm.DB) error {
	l.CreatedAt = l.CreatedAt.UTC()
	return nil
}

// LinkLabel associates a label with a link. A pair exists at most once.
type LinkLabel struct {
	LinkID  string `json:"linkId" gorm:"type:uuid;primaryKey"`
	LabelID string `json:"labelId" gorm:"type:uuid;primaryKey"`
}

// TableName returns the table name for LinkLabel
func (LinkLabel) TableName() string {
	return "link_label"
}

// LinkWithNotes is a link together with its notes, oldest first.
type LinkWithNotes struct {
	Link
	Notes []Note `json:"notes"`
}

// LinkWithLabels is a link together with its labels.
type LinkWithLabels struct {
	Link
	Labels []Label `json:"labels"`
}

// LinkFull is a link with its notes and labels. It is assembled on read and never stored.
type LinkFull struct {
	Link
	Notes  []Note  `json:"notes"`
	Labels []Label `json:"labels"`
}
