package models

import (
	"bytes"
	"encoding/json"
)

// OptionalString distinguishes a field left out of a patch from one set to null.
type OptionalString struct {
	Set   bool
	Value *string
}

// SetString returns an OptionalString holding s
func SetString(s string) OptionalString {
	return OptionalString{Set: true, Value: &s}
}

// Null returns an OptionalString that clears the field
func Null() OptionalString {
	return OptionalString{Set: true}
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

func (o OptionalString) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}

// IsZero lets encoding/json omit an unset field via omitzero
func (o OptionalString) IsZero() bool {
	return !o.Set
}

// LinkInput carries the caller-supplied fields of a new link.
type LinkInput struct {
	URL         string  `json:"url" validate:"required,url,max=2000"`
	Title       string  `json:"title" validate:"required,max=500"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=5000"`
	IsPermanent bool    `json:"isPermanent"`
	IsPublic    bool    `json:"isPublic"`
}

// LinkPatch lists the link fields to change. Nil pointers and an unset
// Description leave the stored value untouched.
type LinkPatch struct {
	URL         *string        `json:"url,omitempty" validate:"omitempty,url,max=2000"`
	Title       *string        `json:"title,omitempty" validate:"omitempty,min=1,max=500"`
	Description OptionalString `json:"description,omitzero" validate:"omitempty,max=5000"`
	IsPermanent *bool          `json:"isPermanent,omitempty"`
	IsPublic    *bool          `json:"isPublic,omitempty"`
}

// Apply writes the patch onto l
func (p LinkPatch) Apply(l *Link) {
	if p.URL != nil {
		l.URL = *p.URL
	}
	if p.Title != nil {
		l.Title = *p.Title
	}
	if p.Description.Set {
		if p.Description.Value == nil {
			l.Description = nil
		} else {
			d := *p.Description.Value
			l.Description = &d
		}
	}
	if p.IsPermanent != nil {
		l.IsPermanent = *p.IsPermanent
	}
	if p.IsPublic != nil {
		l.IsPublic = *p.IsPublic
	}
}

// NoteInput carries the fields of a new note.
type NoteInput struct {
	LinkID      string `json:"linkId" validate:"required"`
	Content     string `json:"content" validate:"required"`
	IsPublished bool   `json:"isPublished"`
}

// NotePatch lists the note fields to change.
type NotePatch struct {
	Content     *string `json:"content,omitempty" validate:"omitempty,min=1"`
	IsPublished *bool   `json:"isPublished,omitempty"`
}

// Apply writes the patch onto n
func (p NotePatch) Apply(n *Note) {
	if p.Content != nil {
		n.Content = *p.Content
	}
	if p.IsPublished != nil {
		n.IsPublished = *p.IsPublished
	}
}

// LabelInput carries the name of a label to create or rename.
type LabelInput struct {
	Name string `json:"name" validate:"required,max=100"`
}
