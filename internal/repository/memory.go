package repository

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"linkedlist-backend/internal/database/models"
	"linkedlist-backend/internal/database/seed"
	apperrors "linkedlist-backend/internal/errors"
	"linkedlist-backend/internal/id"
)

// MemoryStore keeps every row in process memory. Values are copied on the way
// in and on the way out, so callers never hold references into the store.
type MemoryStore struct {
	mu      sync.RWMutex
	latency time.Duration

	users      []models.User
	sessions   map[string]models.Session
	links      []models.Link
	notes      []models.Note
	labels     []models.Label
	linkLabels []models.LinkLabel
}

// Ensure MemoryStore implements Store
var _ Store = (*MemoryStore)(nil)

// MemoryOption configures a MemoryStore
type MemoryOption func(*MemoryStore)

// WithLatency delays every operation by d to imitate a network round trip
func WithLatency(d time.Duration) MemoryOption {
	return func(s *MemoryStore) {
		s.latency = d
	}
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{
		sessions: make(map[string]models.Session),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the store contents with the given data set
func (s *MemoryStore) Load(ds *seed.DataSet) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = make([]models.User, 0, len(ds.Users))
	for _, u := range ds.Users {
		s.users = append(s.users, models.User{ID: u.ID, Email: u.Email, CreatedAt: u.CreatedAt.UTC()})
	}
	s.links = make([]models.Link, 0, len(ds.Links))
	for _, l := range ds.Links {
		link := models.Link{
			ID:          l.ID,
			UserID:      l.UserID,
			URL:         l.URL,
			Title:       l.Title,
			Description: l.Description,
			IsPermanent: l.IsPermanent,
			IsPublic:    l.IsPublic,
			CreatedAt:   l.CreatedAt.UTC(),
			UpdatedAt:   l.UpdatedAt.UTC(),
		}
		s.links = append(s.links, link.Clone())
	}
	s.notes = make([]models.Note, 0, len(ds.Notes))
	for _, n := range ds.Notes {
		s.notes = append(s.notes, models.Note{
			ID:          n.ID,
			LinkID:      n.LinkID,
			Content:     n.Content,
			IsPublished: n.IsPublished,
			CreatedAt:   n.CreatedAt.UTC(),
			UpdatedAt:   n.UpdatedAt.UTC(),
		})
	}
	s.labels = make([]models.Label, 0, len(ds.Labels))
	for _, l := range ds.Labels {
		s.labels = append(s.labels, models.Label{ID: l.ID, UserID: l.UserID, Name: l.Name, CreatedAt: l.CreatedAt.UTC()})
	}
	s.linkLabels = make([]models.LinkLabel, 0, len(ds.LinkLabels))
	for _, ll := range ds.LinkLabels {
		s.linkLabels = append(s.linkLabels, models.LinkLabel{LinkID: ll.LinkID, LabelID: ll.LabelID})
	}
	s.sessions = make(map[string]models.Session)
}

// NewDemoMemoryStore creates a store holding the embedded demo data set
func NewDemoMemoryStore(opts ...MemoryOption) (*MemoryStore, error) {
	ds, err := seed.Demo()
	if err != nil {
		return nil, err
	}
	s := NewMemoryStore(opts...)
	s.Load(ds)
	return s, nil
}

func (s *MemoryStore) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Ping always succeeds for the in-memory store
func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Close is a no-op for the in-memory store
func (s *MemoryStore) Close() error {
	return nil
}

// Links

func (s *MemoryStore) GetLinks(ctx context.Context) ([]models.Link, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	return newestFirst(cloneLinks(s.links, nil)), nil
}

func (s *MemoryStore) GetLinkByID(ctx context.Context, id string) (*models.Link, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.linkIndex(id)
	if i < 0 {
		return nil, nil
	}
	link := s.links[i].Clone()
	return &link, nil
}

func (s *MemoryStore) GetLinksByUser(ctx context.Context, userID string) ([]models.Link, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	return newestFirst(cloneLinks(s.links, func(l models.Link) bool { return l.UserID == userID })), nil
}

func (s *MemoryStore) GetLinkWithNotes(ctx context.Context, id string) (*models.LinkWithNotes, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.linkIndex(id)
	if i < 0 {
		return nil, nil
	}
	return &models.LinkWithNotes{Link: s.links[i].Clone(), Notes: s.notesOf(id)}, nil
}

func (s *MemoryStore) GetLinkWithLabels(ctx context.Context, id string) (*models.LinkWithLabels, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.linkIndex(id)
	if i < 0 {
		return nil, nil
	}
	return &models.LinkWithLabels{Link: s.links[i].Clone(), Labels: s.labelsOf(id)}, nil
}

func (s *MemoryStore) GetFullLink(ctx context.Context, id string) (*models.LinkFull, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.linkIndex(id)
	if i < 0 {
		return nil, nil
	}
	return &models.LinkFull{
		Link:   s.links[i].Clone(),
		Notes:  s.notesOf(id),
		Labels: s.labelsOf(id),
	}, nil
}

func (s *MemoryStore) CreateLink(ctx context.Context, userID string, in models.LinkInput) (*models.Link, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	linkID, err := id.Generate(id.PrefixLink)
	if err != nil {
		return nil, apperrors.NewBackendError("create link", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.userIndex(userID) < 0 {
		return nil, apperrors.NewValidationError("userId", "user does not exist")
	}

	now := models.Now()
	link := models.Link{
		ID:          linkID,
		UserID:      userID,
		URL:         in.URL,
		Title:       in.Title,
		Description: in.Description,
		IsPermanent: in.IsPermanent,
		IsPublic:    in.IsPublic,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.links = append(s.links, link.Clone())
	out := link.Clone()
	return &out, nil
}

func (s *MemoryStore) UpdateLink(ctx context.Context, id string, patch models.LinkPatch) (*models.Link, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.linkIndex(id)
	if i < 0 {
		return nil, nil
	}
	link := &s.links[i]
	patch.Apply(link)
	link.UpdatedAt = models.NextUpdatedAt(link.UpdatedAt, models.Now())

	out := link.Clone()
	return &out, nil
}

func (s *MemoryStore) DeleteLink(ctx context.Context, id string) (bool, error) {
	if err := s.wait(ctx); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.linkIndex(id)
	if i < 0 {
		return false, nil
	}
	s.notes = slices.DeleteFunc(s.notes, func(n models.Note) bool { return n.LinkID == id })
	s.linkLabels = slices.DeleteFunc(s.linkLabels, func(ll models.LinkLabel) bool { return ll.LinkID == id })
	s.links = slices.Delete(s.links, i, i+1)
	return true, nil
}

// Notes

func (s *MemoryStore) GetNotesByLink(ctx context.Context, linkID string) ([]models.Note, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.notesOf(linkID), nil
}

func (s *MemoryStore) GetNoteByID(ctx context.Context, id string) (*models.Note, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.noteIndex(id)
	if i < 0 {
		return nil, nil
	}
	note := s.notes[i]
	return &note, nil
}

func (s *MemoryStore) CreateNote(ctx context.Context, in models.NoteInput) (*models.Note, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	noteID, err := id.Generate(id.PrefixNote)
	if err != nil {
		return nil, apperrors.NewBackendError("create note", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.linkIndex(in.LinkID) < 0 {
		return nil, apperrors.NewValidationError("linkId", "link does not exist")
	}

	now := models.Now()
	note := models.Note{
		ID:          noteID,
		LinkID:      in.LinkID,
		Content:     in.Content,
		IsPublished: in.IsPublished,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.notes = append(s.notes, note)
	return &note, nil
}

func (s *MemoryStore) UpdateNote(ctx context.Context, id string, patch models.NotePatch) (*models.Note, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.noteIndex(id)
	if i < 0 {
		return nil, nil
	}
	note := &s.notes[i]
	patch.Apply(note)
	note.UpdatedAt = models.NextUpdatedAt(note.UpdatedAt, models.Now())

	out := *note
	return &out, nil
}

func (s *MemoryStore) DeleteNote(ctx context.Context, id string) (bool, error) {
	if err := s.wait(ctx); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.noteIndex(id)
	if i < 0 {
		return false, nil
	}
	s.notes = slices.Delete(s.notes, i, i+1)
	return true, nil
}

// Labels

func (s *MemoryStore) GetLabels(ctx context.Context, userID string) ([]models.Label, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	labels := make([]models.Label, 0, len(s.labels))
	for _, l := range s.labels {
		if l.UserID == userID {
			labels = append(labels, l)
		}
	}
	return byName(labels), nil
}

func (s *MemoryStore) GetLabelByID(ctx context.Context, id string) (*models.Label, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.labelIndex(id)
	if i < 0 {
		return nil, nil
	}
	label := s.labels[i]
	return &label, nil
}

func (s *MemoryStore) CreateLabel(ctx context.Context, userID, name string) (*models.Label, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	labelID, err := id.Generate(id.PrefixLabel)
	if err != nil {
		return nil, apperrors.NewBackendError("create label", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.userIndex(userID) < 0 {
		return nil, apperrors.NewValidationError("userId", "user does not exist")
	}

	label := models.Label{ID: labelID, UserID: userID, Name: name, CreatedAt: models.Now()}
	s.labels = append(s.labels, label)
	return &label, nil
}

func (s *MemoryStore) UpdateLabel(ctx context.Context, id, name string) (*models.Label, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.labelIndex(id)
	if i < 0 {
		return nil, nil
	}
	s.labels[i].Name = name
	label := s.labels[i]
	return &label, nil
}

func (s *MemoryStore) DeleteLabel(ctx context.Context, id string) (bool, error) {
	if err := s.wait(ctx); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.labelIndex(id)
	if i < 0 {
		return false, nil
	}
	s.linkLabels = slices.DeleteFunc(s.linkLabels, func(ll models.LinkLabel) bool { return ll.LabelID == id })
	s.labels = slices.Delete(s.labels, i, i+1)
	return true, nil
}

func (s *MemoryStore) AddLabelToLink(ctx context.Context, linkID, labelID string) (bool, error) {
	if err := s.wait(ctx); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.linkIndex(linkID) < 0 || s.labelIndex(labelID) < 0 {
		return false, nil
	}
	if s.linkLabelIndex(linkID, labelID) >= 0 {
		return true, nil
	}
	s.linkLabels = append(s.linkLabels, models.LinkLabel{LinkID: linkID, LabelID: labelID})
	return true, nil
}

func (s *MemoryStore) RemoveLabelFromLink(ctx context.Context, linkID, labelID string) (bool, error) {
	if err := s.wait(ctx); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.linkLabelIndex(linkID, labelID)
	if i < 0 {
		return false, nil
	}
	s.linkLabels = slices.Delete(s.linkLabels, i, i+1)
	return true, nil
}

func (s *MemoryStore) GetLabelsByLink(ctx context.Context, linkID string) ([]models.Label, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.labelsOf(linkID), nil
}

func (s *MemoryStore) GetLinksByLabel(ctx context.Context, labelID string) ([]models.Link, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	linked := make(map[string]bool)
	for _, ll := range s.linkLabels {
		if ll.LabelID == labelID {
			linked[ll.LinkID] = true
		}
	}
	return newestFirst(cloneLinks(s.links, func(l models.Link) bool { return linked[l.ID] })), nil
}

// Users

func (s *MemoryStore) GetUser(ctx context.Context, id string) (*models.User, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.userIndex(id)
	if i < 0 {
		return nil, nil
	}
	user := s.users[i]
	return &user, nil
}

func (s *MemoryStore) FindOrCreateUser(ctx context.Context, id, email string) (*models.User, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.userIndex(id); i >= 0 {
		user := s.users[i]
		return &user, nil
	}
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return nil, apperrors.NewValidationError("email", "email already belongs to another user")
		}
	}
	user := models.User{ID: id, Email: email, CreatedAt: models.Now()}
	s.users = append(s.users, user)
	return &user, nil
}

// Sessions

func (s *MemoryStore) CreateSession(ctx context.Context, session *models.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.userIndex(session.UserID) < 0 {
		return apperrors.NewValidationError("userId", "user does not exist")
	}
	s.sessions[session.ID] = *session
	return nil
}

func (s *MemoryStore) GetSession(ctx context.Context, id string) (*models.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, nil
	}
	return &session, nil
}

func (s *MemoryStore) DeleteSession(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}

func (s *MemoryStore) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int64
	for id, session := range s.sessions {
		if session.Expired(now) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed, nil
}

// helpers; callers hold s.mu

func (s *MemoryStore) userIndex(id string) int {
	return slices.IndexFunc(s.users, func(u models.User) bool { return u.ID == id })
}

func (s *MemoryStore) linkIndex(id string) int {
	return slices.IndexFunc(s.links, func(l models.Link) bool { return l.ID == id })
}

func (s *MemoryStore) noteIndex(id string) int {
	return slices.IndexFunc(s.notes, func(n models.Note) bool { return n.ID == id })
}

func (s *MemoryStore) labelIndex(id string) int {
	return slices.IndexFunc(s.labels, func(l models.Label) bool { return l.ID == id })
}

func (s *MemoryStore) linkLabelIndex(linkID, labelID string) int {
	return slices.IndexFunc(s.linkLabels, func(ll models.LinkLabel) bool {
		return ll.LinkID == linkID && ll.LabelID == labelID
	})
}

func (s *MemoryStore) notesOf(linkID string) []models.Note {
	notes := make([]models.Note, 0)
	for _, n := range s.notes {
		if n.LinkID == linkID {
			notes = append(notes, n)
		}
	}
	slices.SortStableFunc(notes, func(a, b models.Note) int { return a.CreatedAt.Compare(b.CreatedAt) })
	return notes
}

func (s *MemoryStore) labelsOf(linkID string) []models.Label {
	labels := make([]models.Label, 0)
	for _, ll := range s.linkLabels {
		if ll.LinkID != linkID {
			continue
		}
		if i := s.labelIndex(ll.LabelID); i >= 0 {
			labels = append(labels, s.labels[i])
		}
	}
	return byName(labels)
}

func cloneLinks(links []models.Link, keep func(models.Link) bool) []models.Link {
	out := make([]models.Link, 0, len(links))
	for _, l := range links {
		if keep == nil || keep(l) {
			out = append(out, l.Clone())
		}
	}
	return out
}

// newestFirst orders by createdAt descending; ties go to the later insert.
func newestFirst(links []models.Link) []models.Link {
	slices.Reverse(links)
	slices.SortStableFunc(links, func(a, b models.Link) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return links
}

func byName(labels []models.Label) []models.Label {
	slices.SortStableFunc(labels, func(a, b models.Label) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return labels
}
