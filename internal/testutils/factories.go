package testutils

import (
	"fmt"
	"sync/atomic"

	"linkedlist-backend/internal/database/models"
)

var sequence atomic.Int64

func next() int64 {
	return sequence.Add(1)
}

// LinkFactory provides methods to create test link input
type LinkFactory struct{}

// NewLinkFactory creates a new LinkFactory
func NewLinkFactory() *LinkFactory {
	return &LinkFactory{}
}

// Create returns a link input with unique URL and title
func (f *LinkFactory) Create() models.LinkInput {
	n := next()
	return models.LinkInput{
		URL:   fmt.Sprintf("https://example-%d.test", n),
		Title: fmt.Sprintf("Example %d", n),
	}
}

// WithDescription returns a link input carrying description
func (f *LinkFactory) WithDescription(description string) models.LinkInput {
	in := f.Create()
	in.Description = &description
	return in
}

// NoteFactory provides methods to create test note input
type NoteFactory struct{}

// NewNoteFactory creates a new NoteFactory
func NewNoteFactory() *NoteFactory {
	return &NoteFactory{}
}

// Create returns a note input for linkID
func (f *NoteFactory) Create(linkID string) models.NoteInput {
	return models.NoteInput{
		LinkID:  linkID,
		Content: fmt.Sprintf("note %d", next()),
	}
}

// UserFactory provides methods to create test users
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create returns a unique user id and email pair
func (f *UserFactory) Create() (id, email string) {
	n := next()
	return fmt.Sprintf("github-%d", n), fmt.Sprintf("user%d@example.test", n)
}
