//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"

	"linkedlist-backend/internal/database/models"
	"linkedlist-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

func TestPostgresStoreContract(t *testing.T) {
	suite.Run(t, &StoreContractSuite{
		newStore: func(t *testing.T) Store {
			base := testutils.SetupTestSuite(t)
			base.CleanTestDB()
			return NewPostgresStore(base.DB)
		},
	})
}

// PostgresStoreTestSuite covers behaviour specific to the database backend
type PostgresStoreTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	store         *PostgresStore
	ctx           context.Context
	userID        string
}

// SetupSuite runs before all tests in the suite
func (suite *PostgresStoreTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.store = NewPostgresStore(suite.baseTestSuite.DB)
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *PostgresStoreTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *PostgresStoreTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	id, email := testutils.NewUserFactory().Create()
	user, err := suite.store.FindOrCreateUser(suite.ctx, id, email)
	suite.Require().NoError(err)
	suite.userID = user.ID
}

// TearDownTest runs after each test
func (suite *PostgresStoreTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *PostgresStoreTestSuite) TestNonUUIDIdentifiersAreAbsent() {
	link, err := suite.store.GetLinkByID(suite.ctx, "link-1")
	suite.NoError(err)
	suite.Nil(link)

	deleted, err := suite.store.DeleteLink(suite.ctx, "link-1")
	suite.NoError(err)
	suite.False(deleted)

	ok, err := suite.store.AddLabelToLink(suite.ctx, "link-1", "label-1")
	suite.NoError(err)
	suite.False(ok)

	links, err := suite.store.GetLinksByLabel(suite.ctx, "label-1")
	suite.NoError(err)
	suite.Empty(links)
}

func (suite *PostgresStoreTestSuite) TestDeleteLinkRemovesDependentRows() {
	link, err := suite.store.CreateLink(suite.ctx, suite.userID, testutils.NewLinkFactory().Create())
	suite.Require().NoError(err)
	_, err = suite.store.CreateNote(suite.ctx, testutils.NewNoteFactory().Create(link.ID))
	suite.Require().NoError(err)
	label, err := suite.store.CreateLabel(suite.ctx, suite.userID, "Work")
	suite.Require().NoError(err)
	_, err = suite.store.AddLabelToLink(suite.ctx, link.ID, label.ID)
	suite.Require().NoError(err)

	deleted, err := suite.store.DeleteLink(suite.ctx, link.ID)
	suite.Require().NoError(err)
	suite.True(deleted)

	var notes, linkLabels int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.Note{}).Where("link_id = ?", link.ID).Count(&notes).Error)
	suite.NoError(suite.baseTestSuite.DB.Model(&models.LinkLabel{}).Where("link_id = ?", link.ID).Count(&linkLabels).Error)
	suite.Zero(notes)
	suite.Zero(linkLabels)
}

func (suite *PostgresStoreTestSuite) TestDescriptionStoredAsNull() {
	link, err := suite.store.CreateLink(suite.ctx, suite.userID, models.LinkInput{URL: "https://a.test", Title: "A"})
	suite.Require().NoError(err)

	var nulls int64
	err = suite.baseTestSuite.DB.Model(&models.Link{}).
		Where("id = ? AND description IS NULL", link.ID).
		Count(&nulls).Error
	suite.NoError(err)
	suite.Equal(int64(1), nulls)
}

func (suite *PostgresStoreTestSuite) TestDuplicateEmailIsValidationError() {
	_, email := testutils.NewUserFactory().Create()
	_, err := suite.store.FindOrCreateUser(suite.ctx, "github-a", email)
	suite.Require().NoError(err)

	_, err = suite.store.FindOrCreateUser(suite.ctx, "github-b", email)
	suite.Error(err)
}

// TestPostgresStoreTestSuite runs the test suite
func TestPostgresStoreTestSuite(t *testing.T) {
	suite.Run(t, new(PostgresStoreTestSuite))
}
