package handlers_test

import (
	"net/http"
	"testing"

	"linkedlist-backend/internal/api/handlers"
	"linkedlist-backend/internal/database/models"
	apperrors "linkedlist-backend/internal/errors"
	"linkedlist-backend/internal/mocks"
	"linkedlist-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LabelHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockLabelServiceInterface
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *LabelHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockLabelServiceInterface(suite.ctrl)
	handler := handlers.NewLabelHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()
	labels := suite.httpSuite.Router.Group("/api/labels")
	labels.GET("", handler.ListLabels)
	labels.POST("", handler.CreateLabel)
	labels.PATCH("/:id", handler.UpdateLabel)
	labels.DELETE("/:id", handler.DeleteLabel)
	labels.GET("/:id/links", handler.ListLinks)
}

func (suite *LabelHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *LabelHandlerTestSuite) TestListLabels() {
	suite.mockService.EXPECT().
		GetLabels(gomock.Any(), "").
		Return([]models.Label{{ID: "label-1", Name: "Favorites"}, {ID: "label-2", Name: "Framework"}}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/labels", nil)

	var response []models.Label
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Len(response, 2)
}

func (suite *LabelHandlerTestSuite) TestCreateLabel() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			CreateLabel(gomock.Any(), "", &models.LabelInput{Name: "Reading"}).
			Return(&models.Label{ID: "label-5", UserID: "user-1", Name: "Reading"}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/labels", map[string]interface{}{"name": "Reading"})

		var response models.Label
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.Equal(t, "Reading", response.Name)
	})

	suite.T().Run("Empty name", func(t *testing.T) {
		suite.mockService.EXPECT().
			CreateLabel(gomock.Any(), "", gomock.Any()).
			Return(nil, apperrors.NewValidationError("name", "is required"))

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/labels", map[string]interface{}{"name": ""})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "name is required")
	})
}

func (suite *LabelHandlerTestSuite) TestUpdateLabel() {
	suite.mockService.EXPECT().UpdateLabel(gomock.Any(), "missing", gomock.Any()).Return(nil, apperrors.ErrLabelNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodPatch, "/api/labels/missing", map[string]interface{}{"name": "x"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "Label not found")
}

func (suite *LabelHandlerTestSuite) TestDeleteLabel() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().DeleteLabel(gomock.Any(), "label-1").Return(nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/labels/label-1", nil)

		assert.JSONEq(t, `{"success":true}`, recorder.Body.String())
	})

	suite.T().Run("Unknown id", func(t *testing.T) {
		suite.mockService.EXPECT().DeleteLabel(gomock.Any(), "missing").Return(apperrors.ErrLabelNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/labels/missing", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Failed to delete label")
	})
}

func (suite *LabelHandlerTestSuite) TestListLinks() {
	suite.mockService.EXPECT().
		GetLinksByLabel(gomock.Any(), "label-1").
		Return([]models.Link{{ID: "link-2"}, {ID: "link-1"}}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/labels/label-1/links", nil)

	var response []models.Link
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal("link-2", response[0].ID)
}

func TestLabelHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LabelHandlerTestSuite))
}
