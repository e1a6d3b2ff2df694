package report

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/kartikp-10/weekpulse/internal/access"
	"github.com/kartikp-10/weekpulse/internal/middleware"
	"github.com/kartikp-10/weekpulse/internal/team"
	"github.com/kartikp-10/weekpulse/pkg/apperr"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// --- In-memory fakes ---

type fakeTeamRepo struct {
	teams   map[uint]*team.Team
	members map[uint][]uint
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{
		teams:   make(map[uint]*team.Team),
		members: make(map[uint][]uint),
	}
}

func (f *fakeTeamRepo) addTeam(id, leaderID uint, memberIDs ...uint) {
	t := &team.Team{LeaderID: leaderID, Name: "Team", Type: team.TypeProject}
	t.ID = id
	f.teams[id] = t
	f.members[id] = append([]uint{leaderID}, memberIDs...)
}

func (f *fakeTeamRepo) CreateTeamWithLeader(t *team.Team) error { return nil }

func (f *fakeTeamRepo) GetTeamByID(id uint) (*team.Team, error) {
	t, ok := f.teams[id]
	if !ok {
		return nil, nil
	}
	return t, nil
}

func (f *fakeTeamRepo) GetAllTeams() ([]team.Team, error) { return nil, nil }

func (f *fakeTeamRepo) GetTeamsForUser(userID uint) ([]team.Team, error) {
	var out []team.Team
	for id, members := range f.members {
		for _, m := range members {
			if m == userID {
				out = append(out, *f.teams[id])
				break
			}
		}
	}
	return out, nil
}

func (f *fakeTeamRepo) UpdateTeam(t *team.Team) error           { return nil }
func (f *fakeTeamRepo) AddTeamMember(teamID, userID uint) error { return nil }
func (f *fakeTeamRepo) RemoveTeamMember(teamID, userID uint) error {
	return nil
}

func (f *fakeTeamRepo) GetTeamMember(teamID, userID uint) (*team.TeamMember, error) {
	for _, m := range f.members[teamID] {
		if m == userID {
			return &team.TeamMember{TeamID: teamID, UserID: userID}, nil
		}
	}
	return nil, nil
}

func (f *fakeTeamRepo) GetTeamMembers(teamID uint) ([]team.TeamMember, error) {
	var out []team.TeamMember
	for _, m := range f.members[teamID] {
		out = append(out, team.TeamMember{TeamID: teamID, UserID: m})
	}
	return out, nil
}

func (f *fakeTeamRepo) MemberIDs(teamID uint) ([]uint, error) {
	return f.members[teamID], nil
}

type fakeReportRepo struct {
	reports map[uint]*WeeklyReport
	nextID  uint
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{reports: make(map[uint]*WeeklyReport), nextID: 1}
}

func (f *fakeReportRepo) CreateReport(r *WeeklyReport) error {
	r.ID = f.nextID
	f.nextID++
	f.reports[r.ID] = r
	return nil
}

func (f *fakeReportRepo) GetReportByID(id uint) (*WeeklyReport, error) {
	r, ok := f.reports[id]
	if !ok {
		return nil, nil
	}
	return r, nil
}

func (f *fakeReportRepo) GetReportsByTeam(teamID uint) ([]WeeklyReport, error) {
	var out []WeeklyReport
	for _, r := range f.reports {
		if r.TeamID == teamID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeReportRepo) GetReportsByTeams(teamIDs []uint) ([]WeeklyReport, error) {
	var out []WeeklyReport
	for _, id := range teamIDs {
		byTeam, _ := f.GetReportsByTeam(id)
		out = append(out, byTeam...)
	}
	return out, nil
}

func (f *fakeReportRepo) GetAllReports() ([]WeeklyReport, error) {
	var out []WeeklyReport
	for _, r := range f.reports {
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeReportRepo) MaxWeekNumber(teamID uint) (int, error) {
	max := 0
	for _, r := range f.reports {
		if r.TeamID == teamID && r.WeekNumber > max {
			max = r.WeekNumber
		}
	}
	return max, nil
}

func (f *fakeReportRepo) UpdateReport(r *WeeklyReport) error {
	f.reports[r.ID] = r
	return nil
}

type fakeCascade struct {
	repo           *fakeReportRepo
	deletedReports []uint
}

func (f *fakeCascade) DeleteTeam(teamID uint) error { return nil }

func (f *fakeCascade) DeleteReport(reportID uint) error {
	if _, ok := f.repo.reports[reportID]; !ok {
		return apperr.ErrNotFound
	}
	delete(f.repo.reports, reportID)
	f.deletedReports = append(f.deletedReports, reportID)
	return nil
}

// --- Helpers ---

var (
	adminActor  = access.Actor{ID: 1, Role: access.RoleAdmin}
	leaderActor = access.Actor{ID: 2, Role: access.RoleLeader}
	memberActor = access.Actor{ID: 3, Role: access.RoleMember}
)

func newTestController() (*ReportController, *fakeReportRepo, *fakeTeamRepo, *fakeCascade) {
	teams := newFakeTeamRepo()
	teams.addTeam(10, leaderActor.ID, memberActor.ID)
	repo := newFakeReportRepo()
	co := &fakeCascade{repo: repo}
	return NewReportController(repo, teams, co), repo, teams, co
}

func performJSON(actor access.Actor, body string, params gin.Params, handler gin.HandlerFunc) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(middleware.AuthActorKey, actor)
	c.Set(middleware.AuthUserIDKey, actor.ID)
	c.Params = params
	handler(c)
	return w
}

func reportParam(id uint) gin.Params {
	return gin.Params{{Key: "report_id", Value: strconv.FormatUint(uint64(id), 10)}}
}

func seedReport(repo *fakeReportRepo, teamID uint, week int, submittedBy uint) *WeeklyReport {
	start := time.Date(2026, time.August, 24, 0, 0, 0, 0, time.UTC)
	r := &WeeklyReport{
		TeamID:        teamID,
		WeekNumber:    week,
		StartDate:     start,
		EndDate:       start.AddDate(0, 0, 6),
		Status:        StatusInProgress,
		Goals:         "Finish the API",
		SubmittedByID: submittedBy,
	}
	repo.CreateReport(r)
	return r
}

func decodeReport(t *testing.T, w *httptest.ResponseRecorder) WeeklyReport {
	t.Helper()
	var resp struct {
		Data WeeklyReport `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

// --- Tests ---

func TestCurrentCalendarWeek(t *testing.T) {
	loc := time.UTC
	cases := []struct {
		name      string
		now       time.Time
		wantStart time.Time
	}{
		{"monday", time.Date(2026, time.August, 31, 15, 4, 5, 0, loc), time.Date(2026, time.August, 31, 0, 0, 0, 0, loc)},
		{"wednesday", time.Date(2026, time.September, 2, 8, 0, 0, 0, loc), time.Date(2026, time.August, 31, 0, 0, 0, 0, loc)},
		{"sunday", time.Date(2026, time.September, 6, 23, 59, 0, 0, loc), time.Date(2026, time.August, 31, 0, 0, 0, 0, loc)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, end := currentCalendarWeek(tc.now)
			assert.Equal(t, tc.wantStart, start)
			assert.Equal(t, tc.wantStart.AddDate(0, 0, 6), end)
			assert.Equal(t, time.Monday, start.Weekday())
			assert.Equal(t, time.Sunday, end.Weekday())
		})
	}
}

func TestCreateReportAssignsWeekNumberAndDefaults(t *testing.T) {
	rc, repo, _, _ := newTestController()
	params := gin.Params{{Key: "team_id", Value: "10"}}

	w := performJSON(leaderActor, `{"goals":"Ship the parser"}`, params, rc.CreateReport)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	created := decodeReport(t, w)
	assert.Equal(t, 1, created.WeekNumber)
	assert.Equal(t, StatusNotStarted, created.Status)
	assert.Equal(t, 0, created.CompletionRate)
	assert.Equal(t, leaderActor.ID, created.SubmittedByID)
	assert.Equal(t, time.Monday, created.StartDate.Weekday())
	assert.Equal(t, time.Sunday, created.EndDate.Weekday())

	// The next report for the same team gets the next week number.
	seedReport(repo, 10, 5, leaderActor.ID)
	w = performJSON(leaderActor, `{"goals":"Ship the printer"}`, params, rc.CreateReport)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 6, decodeReport(t, w).WeekNumber)
}

func TestCreateReportDeniedForMembers(t *testing.T) {
	rc, _, _, _ := newTestController()
	params := gin.Params{{Key: "team_id", Value: "10"}}

	w := performJSON(memberActor, `{"goals":"Sneak one in"}`, params, rc.CreateReport)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreateReportUnknownTeam(t *testing.T) {
	rc, _, _, _ := newTestController()
	params := gin.Params{{Key: "team_id", Value: "999"}}

	w := performJSON(adminActor, `{"goals":"Nowhere"}`, params, rc.CreateReport)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateReportRejectsInvertedDates(t *testing.T) {
	rc, _, _, _ := newTestController()
	params := gin.Params{{Key: "team_id", Value: "10"}}

	body := `{"goals":"Backwards week","start_date":"2026-08-31T00:00:00Z","end_date":"2026-08-24T00:00:00Z"}`
	w := performJSON(leaderActor, body, params, rc.CreateReport)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateReportValidation(t *testing.T) {
	rc, _, _, _ := newTestController()
	params := gin.Params{{Key: "team_id", Value: "10"}}

	w := performJSON(leaderActor, `{"status":"paused","completion_rate":140}`, params, rc.CreateReport)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Errors, "goals")
	assert.Contains(t, resp.Errors, "status")
	assert.Contains(t, resp.Errors, "completionrate")
}

func TestGetReportVisibility(t *testing.T) {
	rc, repo, _, _ := newTestController()
	rep := seedReport(repo, 10, 1, leaderActor.ID)

	w := performJSON(memberActor, "", reportParam(rep.ID), rc.GetReport)
	assert.Equal(t, http.StatusOK, w.Code)

	outsider := access.Actor{ID: 42, Role: access.RoleMember}
	w = performJSON(outsider, "", reportParam(rep.ID), rc.GetReport)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = performJSON(adminActor, "", reportParam(999), rc.GetReport)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateReportStripsImmutableFields(t *testing.T) {
	rc, repo, _, _ := newTestController()
	rep := seedReport(repo, 10, 3, leaderActor.ID)

	body := `{"status":"completed","completion_rate":100,"week_number":42,"team_id":77,"submitted_by_id":99}`
	w := performJSON(leaderActor, body, reportParam(rep.ID), rc.UpdateReport)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	updated, _ := repo.GetReportByID(rep.ID)
	assert.Equal(t, StatusCompleted, updated.Status)
	assert.Equal(t, 100, updated.CompletionRate)
	assert.Equal(t, 3, updated.WeekNumber)
	assert.Equal(t, uint(10), updated.TeamID)
	assert.Equal(t, leaderActor.ID, updated.SubmittedByID)
}

func TestUpdateReportRejectsEmptyGoals(t *testing.T) {
	rc, repo, _, _ := newTestController()
	rep := seedReport(repo, 10, 1, leaderActor.ID)

	// An explicit empty string must not clear the required goals field.
	w := performJSON(leaderActor, `{"goals":""}`, reportParam(rep.ID), rc.UpdateReport)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	stored, _ := repo.GetReportByID(rep.ID)
	assert.Equal(t, "Finish the API", stored.Goals)
}

func TestUpdateReportAllowsAnyStatusOrder(t *testing.T) {
	rc, repo, _, _ := newTestController()
	rep := seedReport(repo, 10, 1, leaderActor.ID)
	rep.Status = StatusCompleted
	repo.UpdateReport(rep)

	// Back from completed to not_started is legal.
	w := performJSON(leaderActor, `{"status":"not_started"}`, reportParam(rep.ID), rc.UpdateReport)
	require.Equal(t, http.StatusOK, w.Code)
	updated, _ := repo.GetReportByID(rep.ID)
	assert.Equal(t, StatusNotStarted, updated.Status)
}

func TestUpdateReportDeniedForNonAuthors(t *testing.T) {
	rc, repo, _, _ := newTestController()
	rep := seedReport(repo, 10, 1, leaderActor.ID)

	w := performJSON(memberActor, `{"status":"on_hold"}`, reportParam(rep.ID), rc.UpdateReport)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateReportAllowsAuthorMember(t *testing.T) {
	rc, repo, _, _ := newTestController()
	// A report submitted by a plain member stays editable by that member.
	rep := seedReport(repo, 10, 1, memberActor.ID)

	w := performJSON(memberActor, `{"progress":"halfway"}`, reportParam(rep.ID), rc.UpdateReport)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteReportInvokesCascade(t *testing.T) {
	rc, repo, _, co := newTestController()
	rep := seedReport(repo, 10, 1, leaderActor.ID)

	w := performJSON(leaderActor, "", reportParam(rep.ID), rc.DeleteReport)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []uint{rep.ID}, co.deletedReports)

	w = performJSON(leaderActor, "", reportParam(rep.ID), rc.DeleteReport)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteReportDeniedForNonAuthors(t *testing.T) {
	rc, repo, _, co := newTestController()
	rep := seedReport(repo, 10, 1, leaderActor.ID)

	w := performJSON(memberActor, "", reportParam(rep.ID), rc.DeleteReport)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, co.deletedReports)
}

func TestListReportsFiltered(t *testing.T) {
	rc, repo, teams, _ := newTestController()
	teams.addTeam(20, 8)
	seedReport(repo, 10, 1, leaderActor.ID)
	seedReport(repo, 20, 1, 8)

	decode := func(w *httptest.ResponseRecorder) []WeeklyReport {
		var resp struct {
			Data []WeeklyReport `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		return resp.Data
	}

	// Member of team 10 sees only team 10's report.
	w := performJSON(memberActor, "", nil, rc.ListReports)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode(w)
	require.Len(t, got, 1)
	assert.Equal(t, uint(10), got[0].TeamID)

	// Admin sees both.
	w = performJSON(adminActor, "", nil, rc.ListReports)
	assert.Len(t, decode(w), 2)

	// Outsider sees none.
	outsider := access.Actor{ID: 42, Role: access.RoleMember}
	w = performJSON(outsider, "", nil, rc.ListReports)
	assert.Empty(t, decode(w))
}

func TestListTeamReports(t *testing.T) {
	rc, repo, _, _ := newTestController()
	seedReport(repo, 10, 1, leaderActor.ID)
	seedReport(repo, 10, 2, leaderActor.ID)
	params := gin.Params{{Key: "team_id", Value: "10"}}

	w := performJSON(memberActor, "", params, rc.ListTeamReports)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []WeeklyReport `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)

	outsider := access.Actor{ID: 42, Role: access.RoleMember}
	w = performJSON(outsider, "", params, rc.ListTeamReports)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
