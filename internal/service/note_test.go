package service_test

import (
	"context"
	"errors"
	"testing"

	"linkedlist-backend/internal/database/models"
	apperrors "linkedlist-backend/internal/errors"
	"linkedlist-backend/internal/mocks"
	"linkedlist-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type NoteServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockNoteRepo *mocks.MockNoteRepositoryInterface
	noteService  *service.NoteService
	ctx          context.Context
}

func (suite *NoteServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockNoteRepo = mocks.NewMockNoteRepositoryInterface(suite.ctrl)
	suite.noteService = service.NewNoteService(suite.mockNoteRepo, service.NewValidator())
	suite.ctx = context.Background()
}

func (suite *NoteServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *NoteServiceTestSuite) TestCreateNote_Success() {
	in := models.NoteInput{LinkID: "link-1", Content: "Remember this"}
	suite.mockNoteRepo.EXPECT().CreateNote(suite.ctx, in).Return(&models.Note{ID: "note-9", LinkID: "link-1", Content: in.Content}, nil)

	note, err := suite.noteService.CreateNote(suite.ctx, &in)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "note-9", note.ID)
}

func (suite *NoteServiceTestSuite) TestCreateNote_MissingContent() {
	_, err := suite.noteService.CreateNote(suite.ctx, &models.NoteInput{LinkID: "link-1"})

	var vErr *apperrors.ValidationError
	assert.True(suite.T(), errors.As(err, &vErr))
	assert.Equal(suite.T(), "content", vErr.Field)
}

func (suite *NoteServiceTestSuite) TestCreateNote_UnknownLink() {
	in := models.NoteInput{LinkID: "missing", Content: "x"}
	suite.mockNoteRepo.EXPECT().CreateNote(suite.ctx, in).Return(nil, apperrors.NewValidationError("linkId", "link does not exist"))

	_, err := suite.noteService.CreateNote(suite.ctx, &in)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *NoteServiceTestSuite) TestUpdateNote_EmptyContentRejected() {
	empty := ""
	_, err := suite.noteService.UpdateNote(suite.ctx, "note-1", &models.NotePatch{Content: &empty})
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *NoteServiceTestSuite) TestUpdateNote_NotFound() {
	published := true
	patch := models.NotePatch{IsPublished: &published}
	suite.mockNoteRepo.EXPECT().UpdateNote(suite.ctx, "missing", patch).Return(nil, nil)

	_, err := suite.noteService.UpdateNote(suite.ctx, "missing", &patch)
	assert.True(suite.T(), errors.Is(err, apperrors.ErrNoteNotFound))
}

func (suite *NoteServiceTestSuite) TestGetNoteByID() {
	suite.mockNoteRepo.EXPECT().GetNoteByID(suite.ctx, "note-1").Return(&models.Note{ID: "note-1"}, nil)
	note, err := suite.noteService.GetNoteByID(suite.ctx, "note-1")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "note-1", note.ID)

	suite.mockNoteRepo.EXPECT().GetNoteByID(suite.ctx, "missing").Return(nil, nil)
	_, err = suite.noteService.GetNoteByID(suite.ctx, "missing")
	assert.True(suite.T(), errors.Is(err, apperrors.ErrNoteNotFound))
}

func (suite *NoteServiceTestSuite) TestGetNotesByLink_RepositoryError() {
	suite.mockNoteRepo.EXPECT().GetNotesByLink(suite.ctx, "link-1").Return(nil, errors.New("boom"))

	_, err := suite.noteService.GetNotesByLink(suite.ctx, "link-1")
	assert.Error(suite.T(), err)
}

func (suite *NoteServiceTestSuite) TestDeleteNote_NotFound() {
	suite.mockNoteRepo.EXPECT().DeleteNote(suite.ctx, "missing").Return(false, nil)

	err := suite.noteService.DeleteNote(suite.ctx, "missing")
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

func TestNoteServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NoteServiceTestSuite))
}
