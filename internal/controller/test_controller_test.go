package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"story-pipeline/internal/model"
	"story-pipeline/internal/testdata/mockservice"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type TestControllerTestSuite struct {
	suite.Suite
	app     *fiber.App
	service *mockservice.TestService
}

func TestTestControllerSuite(t *testing.T) {
	suite.Run(t, new(TestControllerTestSuite))
}

func (s *TestControllerTestSuite) SetupTest() {
	s.service = &mockservice.TestService{}
	ctrl := NewTestController(s.service)
	s.app = fiber.New()
	s.app.Get("/v1/tests", ctrl.GetTests)
}

func (s *TestControllerTestSuite) TestGetTests_Success() {
	tests := []model.Test{{StoryID: "story-u1", TestScript: "page.goto('https://x')"}}
	s.service.On("GenerateTests", mock.Anything, "story-u1").Return(tests, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/tests?story_id=story-u1", nil)
	resp, err := s.app.Test(req, -1)

	require.NoError(s.T(), err)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	var body []model.Test
	require.NoError(s.T(), json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(s.T(), tests, body)
}

func (s *TestControllerTestSuite) TestGetTests_NotFound() {
	s.service.On("GenerateTests", mock.Anything, "").Return([]model.Test{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/tests", nil)
	resp, err := s.app.Test(req, -1)

	require.NoError(s.T(), err)
	require.Equal(s.T(), http.StatusNotFound, resp.StatusCode)
}

func (s *TestControllerTestSuite) TestGetTests_ServiceError() {
	s.service.On("GenerateTests", mock.Anything, mock.Anything).Return(nil, fiber.ErrInternalServerError)

	req := httptest.NewRequest(http.MethodGet, "/v1/tests", nil)
	resp, err := s.app.Test(req, -1)

	require.NoError(s.T(), err)
	require.Equal(s.T(), http.StatusInternalServerError, resp.StatusCode)
}
