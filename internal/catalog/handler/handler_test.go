package handler

import (
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	catalogmemory "certflow/internal/catalog/store/memory"
	"certflow/internal/eligibility"
	"certflow/internal/wizard/models"
	sessionmemory "certflow/internal/wizard/store/session/memory"
	id "certflow/pkg/domain"
	"certflow/pkg/testutil"
)

type HandlerSuite struct {
	suite.Suite
	router   chi.Router
	sessions *sessionmemory.InMemoryStore
	userID   id.UserID
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	s.sessions = sessionmemory.NewInMemoryStore()
	s.userID = id.UserID(uuid.New())

	h := NewHandler(catalogmemory.NewSeededStore(), s.sessions, slog.Default())
	s.router = chi.NewRouter()
	h.RegisterRoutes(s.router)
}

type programsResponse struct {
	Programs []struct {
		ID           string `json:"id"`
		ProviderName string `json:"providerName"`
		Eligibility  string `json:"eligibility"`
	} `json:"programs"`
}

func (s *HandlerSuite) setLevel(level id.CertificationLevel) {
	session := models.NewSession(s.userID, time.Now())
	session.Form.CertificationLevel = level
	require.NoError(s.T(), s.sessions.Save(s.T().Context(), session))
}

func (s *HandlerSuite) TestProgramsOrderedByProvider() {
	req := testutil.WithUserID(testutil.NewRequest(s.T(), http.MethodGet, "/catalog/programs"), s.userID.String())
	rr := testutil.DoRequest(s.router, req)
	testutil.AssertStatus(s.T(), rr, http.StatusOK)

	resp := testutil.UnmarshalResponse[programsResponse](s.T(), rr)
	s.Require().NotEmpty(resp.Programs)
	for i := 1; i < len(resp.Programs); i++ {
		s.LessOrEqual(resp.Programs[i-1].ProviderName, resp.Programs[i].ProviderName)
	}
}

func (s *HandlerSuite) TestEligibilityAttachedPerApplicant() {
	s.setLevel(id.LevelQualified)

	req := testutil.WithUserID(testutil.NewRequest(s.T(), http.MethodGet, "/catalog/programs"), s.userID.String())
	resp := testutil.UnmarshalResponse[programsResponse](s.T(), testutil.DoRequest(s.router, req))

	byID := map[string]string{}
	for _, p := range resp.Programs {
		byID[p.ID] = p.Eligibility
	}
	s.Equal(eligibility.StatusEligible.String(), byID["ibf-ftp-core"])
	s.Equal(eligibility.StatusIneligible.String(), byID["ibf-ftp-advanced"])
	s.Equal(eligibility.StatusIneligible.String(), byID["gfa-risk-lead"])
}

func (s *HandlerSuite) TestNoLevelYetIsPendingEverywhere() {
	req := testutil.WithUserID(testutil.NewRequest(s.T(), http.MethodGet, "/catalog/programs"), s.userID.String())
	resp := testutil.UnmarshalResponse[programsResponse](s.T(), testutil.DoRequest(s.router, req))

	for _, p := range resp.Programs {
		s.Equal(eligibility.StatusPending.String(), p.Eligibility, p.ID)
	}
}

func (s *HandlerSuite) TestRolesAndCourses() {
	req := testutil.WithUserID(testutil.NewRequest(s.T(), http.MethodGet, "/catalog/roles"), s.userID.String())
	rr := testutil.DoRequest(s.router, req)
	testutil.AssertStatus(s.T(), rr, http.StatusOK)

	req = testutil.WithUserID(testutil.NewRequest(s.T(), http.MethodGet, "/catalog/courses"), s.userID.String())
	rr = testutil.DoRequest(s.router, req)
	testutil.AssertStatus(s.T(), rr, http.StatusOK)
}
