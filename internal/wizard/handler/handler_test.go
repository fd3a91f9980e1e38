package handler

import (
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	appmemory "certflow/internal/application/store/memory"
	catalogmemory "certflow/internal/catalog/store/memory"
	prefmemory "certflow/internal/preferences/store/memory"
	profilememory "certflow/internal/profile/store/memory"
	"certflow/internal/wizard/models"
	"certflow/internal/wizard/service"
	sessionmemory "certflow/internal/wizard/store/session/memory"
	id "certflow/pkg/domain"
	dErrors "certflow/pkg/domain-errors"
	"certflow/pkg/testutil"
)

var testTime = time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

type HandlerSuite struct {
	suite.Suite
	router chi.Router
	userID id.UserID
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	s.userID = id.UserID(uuid.New())

	svc := service.NewService(
		sessionmemory.NewInMemoryStore(),
		prefmemory.NewInMemoryStore(),
		profilememory.NewInMemoryStore(),
		catalogmemory.NewSeededStore(),
		appmemory.NewInMemoryStore(),
	)
	h := NewHandler(svc, slog.Default())
	s.router = chi.NewRouter()
	h.RegisterRoutes(s.router)
}

func (s *HandlerSuite) do(req *http.Request) *resultResponse {
	req = testutil.WithRequestTime(testutil.WithUserID(req, s.userID.String()), testTime)
	rr := testutil.DoRequest(s.router, req)
	testutil.AssertStatus(s.T(), rr, http.StatusOK)
	return testutil.UnmarshalResponse[resultResponse](s.T(), rr)
}

func completeForm() models.FormData {
	form := models.NewFormData()
	form.FirstName = "Mei"
	form.LastName = "Tan"
	form.Email = "mei.tan@example.com"
	form.Phone = "+65 8123 4567"
	form.CertificationLevel = id.LevelAdvanced2
	form.Purpose = "Compliance analyst"
	form.Amount = "4"
	form.Timeline = testTime.AddDate(0, -6, 0).Format("2006-01-02")
	form.Industry = id.IndustryBanking
	form.TSCsCovered = 80
	form.SelectedRole = "role-compliance-analyst"
	return form
}

func (s *HandlerSuite) TestGetSessionStartsAtFirstStep() {
	resp := s.do(testutil.NewRequest(s.T(), http.MethodGet, "/wizard"))
	s.Equal(models.StepPersonalInfo, resp.Step)
	s.Equal(0, resp.StepIndex)
	s.Equal(models.TabApplicationDetails, resp.Tab)
}

func (s *HandlerSuite) TestUpdateFormReturnsValidation() {
	form := completeForm()
	form.TSCsCovered = 40

	resp := s.do(testutil.NewJSONRequest(s.T(), http.MethodPut, "/wizard/form", form))
	s.False(resp.Validation.TSCs.Valid)
	s.True(resp.Validation.Industry.Valid)
}

func (s *HandlerSuite) TestUpdateFormRejectsUnknownEnum() {
	req := testutil.NewJSONRequest(s.T(), http.MethodPut, "/wizard/form", map[string]any{
		"industry": "agriculture",
	})
	req = testutil.WithRequestTime(testutil.WithUserID(req, s.userID.String()), testTime)
	rr := testutil.DoRequest(s.router, req)
	testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, string(dErrors.CodeInvalidInput))
}

func (s *HandlerSuite) TestNextBlockedCarriesNotification() {
	resp := s.do(testutil.NewRequest(s.T(), http.MethodPost, "/wizard/next"))
	s.Require().NotNil(resp.Notification)
	s.Equal("firstName", resp.Notification.Field)
	s.Equal(0, resp.StepIndex)
}

func (s *HandlerSuite) TestNextAdvancesAfterValidForm() {
	s.do(testutil.NewJSONRequest(s.T(), http.MethodPut, "/wizard/form", completeForm()))

	resp := s.do(testutil.NewRequest(s.T(), http.MethodPost, "/wizard/next"))
	s.Nil(resp.Notification)
	s.Equal(models.StepCertificationLevel, resp.Step)
}

func (s *HandlerSuite) TestBackAndJump() {
	resp := s.do(testutil.NewJSONRequest(s.T(), http.MethodPost, "/wizard/step", map[string]int{"index": 2}))
	s.Equal(models.StepApplicationDetails, resp.Step)

	resp = s.do(testutil.NewRequest(s.T(), http.MethodPost, "/wizard/back"))
	s.Equal(models.StepCertificationLevel, resp.Step)

	resp = s.do(testutil.NewJSONRequest(s.T(), http.MethodPost, "/wizard/tab", map[string]int{"index": 2}))
	s.Equal(models.TabProgramDetails, resp.Tab)
}

func (s *HandlerSuite) TestProgramSelectionLifecycle() {
	s.do(testutil.NewJSONRequest(s.T(), http.MethodPut, "/wizard/form", completeForm()))

	resp := s.do(testutil.NewJSONRequest(s.T(), http.MethodPost, "/wizard/programs",
		map[string]string{"programId": "ibf-ftp-advanced"}))
	s.Nil(resp.Notification)
	s.Equal([]id.ProgramID{"ibf-ftp-advanced"}, resp.Form.SelectedPrograms)

	resp = s.do(testutil.NewRequest(s.T(), http.MethodDelete, "/wizard/programs/ibf-ftp-advanced"))
	s.Empty(resp.Form.SelectedPrograms)
}

func (s *HandlerSuite) TestIneligibleProgramSelectionIsBlocked() {
	form := completeForm()
	form.CertificationLevel = id.LevelQualified
	s.do(testutil.NewJSONRequest(s.T(), http.MethodPut, "/wizard/form", form))

	resp := s.do(testutil.NewJSONRequest(s.T(), http.MethodPost, "/wizard/programs",
		map[string]string{"programId": "gfa-risk-lead"}))
	s.Require().NotNil(resp.Notification)
	s.Empty(resp.Form.SelectedPrograms)
}

func (s *HandlerSuite) TestSubmissionViaNextOnReview() {
	s.do(testutil.NewJSONRequest(s.T(), http.MethodPut, "/wizard/form", completeForm()))
	s.do(testutil.NewJSONRequest(s.T(), http.MethodPost, "/wizard/step", map[string]int{"index": 3}))

	resp := s.do(testutil.NewRequest(s.T(), http.MethodPost, "/wizard/next"))
	s.True(resp.Submitted)
	s.Equal(0, resp.StepIndex)
	s.Equal(models.StepPersonalInfo, resp.Step)
}
