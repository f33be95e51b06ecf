package repository

import (
	"context"
	"testing"
	"time"

	"linkedlist-backend/internal/database/models"
	apperrors "linkedlist-backend/internal/errors"
	"linkedlist-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// StoreContractSuite exercises the behaviour every Store implementation must share.
type StoreContractSuite struct {
	suite.Suite
	newStore func(t *testing.T) Store

	ctx    context.Context
	store  Store
	userID string
	links  *testutils.LinkFactory
	notes  *testutils.NoteFactory
}

func (s *StoreContractSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = s.newStore(s.T())
	s.links = testutils.NewLinkFactory()
	s.notes = testutils.NewNoteFactory()

	id, email := testutils.NewUserFactory().Create()
	user, err := s.store.FindOrCreateUser(s.ctx, id, email)
	s.Require().NoError(err)
	s.userID = user.ID
}

func (s *StoreContractSuite) createLink() *models.Link {
	link, err := s.store.CreateLink(s.ctx, s.userID, s.links.Create())
	s.Require().NoError(err)
	return link
}

func (s *StoreContractSuite) createLabel(name string) *models.Label {
	label, err := s.store.CreateLabel(s.ctx, s.userID, name)
	s.Require().NoError(err)
	return label
}

func (s *StoreContractSuite) assertSameLink(want, got *models.Link) {
	s.Require().NotNil(got)
	s.Equal(want.ID, got.ID)
	s.Equal(want.UserID, got.UserID)
	s.Equal(want.URL, got.URL)
	s.Equal(want.Title, got.Title)
	s.Equal(want.Description, got.Description)
	s.Equal(want.IsPermanent, got.IsPermanent)
	s.Equal(want.IsPublic, got.IsPublic)
	s.True(want.CreatedAt.Equal(got.CreatedAt), "createdAt %v != %v", want.CreatedAt, got.CreatedAt)
	s.True(want.UpdatedAt.Equal(got.UpdatedAt), "updatedAt %v != %v", want.UpdatedAt, got.UpdatedAt)
}

func linkIDs(links []models.Link) []string {
	ids := make([]string, 0, len(links))
	for _, l := range links {
		ids = append(ids, l.ID)
	}
	return ids
}

func (s *StoreContractSuite) TestCreateLink_RoundTrip() {
	link, err := s.store.CreateLink(s.ctx, s.userID, models.LinkInput{
		URL:   "https://a.test",
		Title: "A",
	})
	s.Require().NoError(err)

	s.NotEmpty(link.ID)
	s.Equal(s.userID, link.UserID)
	s.Nil(link.Description)
	s.False(link.IsPermanent)
	s.False(link.IsPublic)
	s.True(link.CreatedAt.Equal(link.UpdatedAt))

	got, err := s.store.GetLinkByID(s.ctx, link.ID)
	s.Require().NoError(err)
	s.assertSameLink(link, got)
}

func (s *StoreContractSuite) TestCreateLink_UnknownUser() {
	_, err := s.store.CreateLink(s.ctx, "github-does-not-exist", s.links.Create())
	s.True(apperrors.IsValidation(err), "got %v", err)
}

func (s *StoreContractSuite) TestGetLinkByID_Unknown() {
	got, err := s.store.GetLinkByID(s.ctx, uuid.NewString())
	s.NoError(err)
	s.Nil(got)
}

func (s *StoreContractSuite) TestReadsReturnCopies() {
	link, err := s.store.CreateLink(s.ctx, s.userID, s.links.WithDescription("original"))
	s.Require().NoError(err)

	got, err := s.store.GetLinkByID(s.ctx, link.ID)
	s.Require().NoError(err)
	got.Title = "mutated"
	*got.Description = "mutated"

	all, err := s.store.GetLinks(s.ctx)
	s.Require().NoError(err)
	all[0].Title = "mutated again"

	again, err := s.store.GetLinkByID(s.ctx, link.ID)
	s.Require().NoError(err)
	s.Equal(link.Title, again.Title)
	s.Equal("original", *again.Description)
}

func (s *StoreContractSuite) TestGetLinks_NewestFirst() {
	first := s.createLink()
	time.Sleep(2 * time.Millisecond)
	second := s.createLink()
	time.Sleep(2 * time.Millisecond)
	third := s.createLink()

	links, err := s.store.GetLinks(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{third.ID, second.ID, first.ID}, linkIDs(links))
}

func (s *StoreContractSuite) TestGetLinksByUser() {
	mine := s.createLink()

	otherID, otherEmail := testutils.NewUserFactory().Create()
	_, err := s.store.FindOrCreateUser(s.ctx, otherID, otherEmail)
	s.Require().NoError(err)
	_, err = s.store.CreateLink(s.ctx, otherID, s.links.Create())
	s.Require().NoError(err)

	links, err := s.store.GetLinksByUser(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Equal([]string{mine.ID}, linkIDs(links))

	none, err := s.store.GetLinksByUser(s.ctx, "github-nobody")
	s.Require().NoError(err)
	s.Empty(none)
}

func (s *StoreContractSuite) TestUpdateLink_StrictlyIncreasesUpdatedAt() {
	link := s.createLink()

	title := "Renamed"
	updated, err := s.store.UpdateLink(s.ctx, link.ID, models.LinkPatch{Title: &title})
	s.Require().NoError(err)
	s.Require().NotNil(updated)

	s.Equal("Renamed", updated.Title)
	s.Equal(link.URL, updated.URL)
	s.True(updated.CreatedAt.Equal(link.CreatedAt))
	s.True(updated.UpdatedAt.After(link.UpdatedAt))

	public := true
	again, err := s.store.UpdateLink(s.ctx, link.ID, models.LinkPatch{IsPublic: &public})
	s.Require().NoError(err)
	s.True(again.IsPublic)
	s.Equal("Renamed", again.Title)
	s.True(again.UpdatedAt.After(updated.UpdatedAt))

	got, err := s.store.GetLinkByID(s.ctx, link.ID)
	s.Require().NoError(err)
	s.assertSameLink(again, got)
}

func (s *StoreContractSuite) TestUpdateLink_Description() {
	link, err := s.store.CreateLink(s.ctx, s.userID, s.links.WithDescription("first"))
	s.Require().NoError(err)

	updated, err := s.store.UpdateLink(s.ctx, link.ID, models.LinkPatch{Description: models.SetString("second")})
	s.Require().NoError(err)
	s.Equal("second", *updated.Description)

	cleared, err := s.store.UpdateLink(s.ctx, link.ID, models.LinkPatch{Description: models.Null()})
	s.Require().NoError(err)
	s.Nil(cleared.Description)
}

func (s *StoreContractSuite) TestUpdateLink_Unknown() {
	title := "x"
	got, err := s.store.UpdateLink(s.ctx, uuid.NewString(), models.LinkPatch{Title: &title})
	s.NoError(err)
	s.Nil(got)
}

func (s *StoreContractSuite) TestDeleteLink_Cascades() {
	link := s.createLink()
	other := s.createLink()

	for i := 0; i < 2; i++ {
		_, err := s.store.CreateNote(s.ctx, s.notes.Create(link.ID))
		s.Require().NoError(err)
	}
	otherNote, err := s.store.CreateNote(s.ctx, s.notes.Create(other.ID))
	s.Require().NoError(err)

	work := s.createLabel("Work")
	read := s.createLabel("Read")
	for _, label := range []*models.Label{work, read} {
		ok, err := s.store.AddLabelToLink(s.ctx, link.ID, label.ID)
		s.Require().NoError(err)
		s.Require().True(ok)
	}
	ok, err := s.store.AddLabelToLink(s.ctx, other.ID, work.ID)
	s.Require().NoError(err)
	s.Require().True(ok)

	deleted, err := s.store.DeleteLink(s.ctx, link.ID)
	s.Require().NoError(err)
	s.True(deleted)

	full, err := s.store.GetFullLink(s.ctx, link.ID)
	s.NoError(err)
	s.Nil(full)

	notes, err := s.store.GetNotesByLink(s.ctx, link.ID)
	s.NoError(err)
	s.Empty(notes)

	byLabel, err := s.store.GetLinksByLabel(s.ctx, work.ID)
	s.NoError(err)
	s.Equal([]string{other.ID}, linkIDs(byLabel))

	// labels and unrelated rows survive
	labels, err := s.store.GetLabels(s.ctx, s.userID)
	s.NoError(err)
	s.Len(labels, 2)
	note, err := s.store.GetNoteByID(s.ctx, otherNote.ID)
	s.NoError(err)
	s.NotNil(note)

	again, err := s.store.DeleteLink(s.ctx, link.ID)
	s.NoError(err)
	s.False(again)
}

func (s *StoreContractSuite) TestGetFullLink() {
	link := s.createLink()

	first, err := s.store.CreateNote(s.ctx, s.notes.Create(link.ID))
	s.Require().NoError(err)
	time.Sleep(2 * time.Millisecond)
	second, err := s.store.CreateNote(s.ctx, s.notes.Create(link.ID))
	s.Require().NoError(err)

	zeta := s.createLabel("Zeta")
	alpha := s.createLabel("Alpha")
	for _, label := range []*models.Label{zeta, alpha} {
		_, err := s.store.AddLabelToLink(s.ctx, link.ID, label.ID)
		s.Require().NoError(err)
	}

	full, err := s.store.GetFullLink(s.ctx, link.ID)
	s.Require().NoError(err)
	s.Require().NotNil(full)
	s.assertSameLink(link, &full.Link)
	s.Require().Len(full.Notes, 2)
	s.Equal(first.ID, full.Notes[0].ID)
	s.Equal(second.ID, full.Notes[1].ID)
	s.Require().Len(full.Labels, 2)
	s.Equal("Alpha", full.Labels[0].Name)
	s.Equal("Zeta", full.Labels[1].Name)

	withNotes, err := s.store.GetLinkWithNotes(s.ctx, link.ID)
	s.Require().NoError(err)
	s.Len(withNotes.Notes, 2)

	withLabels, err := s.store.GetLinkWithLabels(s.ctx, link.ID)
	s.Require().NoError(err)
	s.Len(withLabels.Labels, 2)

	missing, err := s.store.GetLinkWithNotes(s.ctx, uuid.NewString())
	s.NoError(err)
	s.Nil(missing)
}

func (s *StoreContractSuite) TestAddLabelToLink_Idempotent() {
	link := s.createLink()
	label := s.createLabel("Work")

	for i := 0; i < 2; i++ {
		ok, err := s.store.AddLabelToLink(s.ctx, link.ID, label.ID)
		s.Require().NoError(err)
		s.True(ok)
	}

	labels, err := s.store.GetLabelsByLink(s.ctx, link.ID)
	s.Require().NoError(err)
	s.Len(labels, 1)
}

func (s *StoreContractSuite) TestAddLabelToLink_Unknown() {
	link := s.createLink()
	label := s.createLabel("Work")

	ok, err := s.store.AddLabelToLink(s.ctx, uuid.NewString(), label.ID)
	s.NoError(err)
	s.False(ok)

	ok, err = s.store.AddLabelToLink(s.ctx, link.ID, uuid.NewString())
	s.NoError(err)
	s.False(ok)
}

func (s *StoreContractSuite) TestRemoveLabelFromLink_NonExistentPair() {
	link := s.createLink()
	work := s.createLabel("Work")
	home := s.createLabel("Home")
	_, err := s.store.AddLabelToLink(s.ctx, link.ID, work.ID)
	s.Require().NoError(err)

	ok, err := s.store.RemoveLabelFromLink(s.ctx, link.ID, home.ID)
	s.NoError(err)
	s.False(ok)

	labels, err := s.store.GetLabelsByLink(s.ctx, link.ID)
	s.Require().NoError(err)
	s.Require().Len(labels, 1)
	s.Equal(work.ID, labels[0].ID)
}

func (s *StoreContractSuite) TestLabelAssociationScenario() {
	work := s.createLabel("Work")
	link, err := s.store.CreateLink(s.ctx, s.userID, models.LinkInput{URL: "https://a.test", Title: "A"})
	s.Require().NoError(err)

	ok, err := s.store.AddLabelToLink(s.ctx, link.ID, work.ID)
	s.Require().NoError(err)
	s.True(ok)

	labels, err := s.store.GetLabelsByLink(s.ctx, link.ID)
	s.Require().NoError(err)
	s.Require().Len(labels, 1)
	s.Equal(work.ID, labels[0].ID)
	s.Equal("Work", labels[0].Name)

	links, err := s.store.GetLinksByLabel(s.ctx, work.ID)
	s.Require().NoError(err)
	s.Equal([]string{link.ID}, linkIDs(links))

	ok, err = s.store.RemoveLabelFromLink(s.ctx, link.ID, work.ID)
	s.Require().NoError(err)
	s.True(ok)

	labels, err = s.store.GetLabelsByLink(s.ctx, link.ID)
	s.Require().NoError(err)
	s.Empty(labels)
}

func (s *StoreContractSuite) TestNotes() {
	link := s.createLink()

	note, err := s.store.CreateNote(s.ctx, models.NoteInput{LinkID: link.ID, Content: "hello", IsPublished: true})
	s.Require().NoError(err)
	s.Equal(link.ID, note.LinkID)
	s.True(note.IsPublished)
	s.True(note.CreatedAt.Equal(note.UpdatedAt))

	content := "edited"
	updated, err := s.store.UpdateNote(s.ctx, note.ID, models.NotePatch{Content: &content})
	s.Require().NoError(err)
	s.Require().NotNil(updated)
	s.Equal("edited", updated.Content)
	s.True(updated.IsPublished)
	s.True(updated.UpdatedAt.After(note.UpdatedAt))

	missing, err := s.store.UpdateNote(s.ctx, uuid.NewString(), models.NotePatch{Content: &content})
	s.NoError(err)
	s.Nil(missing)

	deleted, err := s.store.DeleteNote(s.ctx, note.ID)
	s.Require().NoError(err)
	s.True(deleted)

	deleted, err = s.store.DeleteNote(s.ctx, note.ID)
	s.NoError(err)
	s.False(deleted)
}

func (s *StoreContractSuite) TestCreateNote_UnknownLink() {
	_, err := s.store.CreateNote(s.ctx, s.notes.Create(uuid.NewString()))
	s.True(apperrors.IsValidation(err), "got %v", err)
}

func (s *StoreContractSuite) TestLabels() {
	s.createLabel("beta")
	alpha := s.createLabel("alpha")

	otherID, otherEmail := testutils.NewUserFactory().Create()
	_, err := s.store.FindOrCreateUser(s.ctx, otherID, otherEmail)
	s.Require().NoError(err)
	_, err = s.store.CreateLabel(s.ctx, otherID, "foreign")
	s.Require().NoError(err)

	labels, err := s.store.GetLabels(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Require().Len(labels, 2)
	s.Equal("alpha", labels[0].Name)
	s.Equal("beta", labels[1].Name)

	renamed, err := s.store.UpdateLabel(s.ctx, alpha.ID, "gamma")
	s.Require().NoError(err)
	s.Require().NotNil(renamed)
	s.Equal("gamma", renamed.Name)
	s.Equal(alpha.UserID, renamed.UserID)
	s.True(alpha.CreatedAt.Equal(renamed.CreatedAt))

	got, err := s.store.GetLabelByID(s.ctx, alpha.ID)
	s.Require().NoError(err)
	s.Equal("gamma", got.Name)

	missing, err := s.store.UpdateLabel(s.ctx, uuid.NewString(), "nope")
	s.NoError(err)
	s.Nil(missing)

	_, err = s.store.CreateLabel(s.ctx, "github-nobody", "x")
	s.True(apperrors.IsValidation(err), "got %v", err)
}

func (s *StoreContractSuite) TestDeleteLabel_CascadesAssociations() {
	link := s.createLink()
	label := s.createLabel("Work")
	_, err := s.store.AddLabelToLink(s.ctx, link.ID, label.ID)
	s.Require().NoError(err)

	deleted, err := s.store.DeleteLabel(s.ctx, label.ID)
	s.Require().NoError(err)
	s.True(deleted)

	labels, err := s.store.GetLabelsByLink(s.ctx, link.ID)
	s.Require().NoError(err)
	s.Empty(labels)

	stillThere, err := s.store.GetLinkByID(s.ctx, link.ID)
	s.NoError(err)
	s.NotNil(stillThere)

	deleted, err = s.store.DeleteLabel(s.ctx, label.ID)
	s.NoError(err)
	s.False(deleted)
}

func (s *StoreContractSuite) TestFindOrCreateUser() {
	id, email := testutils.NewUserFactory().Create()

	created, err := s.store.FindOrCreateUser(s.ctx, id, email)
	s.Require().NoError(err)
	s.Equal(id, created.ID)
	s.Equal(email, created.Email)

	found, err := s.store.FindOrCreateUser(s.ctx, id, "changed@example.test")
	s.Require().NoError(err)
	s.Equal(email, found.Email)
	s.True(created.CreatedAt.Equal(found.CreatedAt))

	got, err := s.store.GetUser(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(email, got.Email)

	missing, err := s.store.GetUser(s.ctx, "github-nobody")
	s.NoError(err)
	s.Nil(missing)
}

func (s *StoreContractSuite) TestSessions() {
	now := models.Now()
	live := &models.Session{ID: "live-session", UserID: s.userID, ExpiresAt: now.Add(time.Hour)}
	stale := &models.Session{ID: "stale-session", UserID: s.userID, ExpiresAt: now.Add(-time.Hour)}
	s.Require().NoError(s.store.CreateSession(s.ctx, live))
	s.Require().NoError(s.store.CreateSession(s.ctx, stale))

	got, err := s.store.GetSession(s.ctx, live.ID)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal(s.userID, got.UserID)
	s.True(live.ExpiresAt.Equal(got.ExpiresAt))

	removed, err := s.store.DeleteExpiredSessions(s.ctx, now)
	s.Require().NoError(err)
	s.Equal(int64(1), removed)

	gone, err := s.store.GetSession(s.ctx, stale.ID)
	s.NoError(err)
	s.Nil(gone)

	s.Require().NoError(s.store.DeleteSession(s.ctx, live.ID))
	gone, err = s.store.GetSession(s.ctx, live.ID)
	s.NoError(err)
	s.Nil(gone)

	s.NoError(s.store.DeleteSession(s.ctx, "never-existed"))
}

func (s *StoreContractSuite) TestPing() {
	s.NoError(s.store.Ping(s.ctx))
}
