package team

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
	teams   map[uint]*Team
	members map[uint][]TeamMember // by team id
	nextID  uint
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{
		teams:   make(map[uint]*Team),
		members: make(map[uint][]TeamMember),
		nextID:  1,
	}
}

func (f *fakeTeamRepo) CreateTeamWithLeader(t *Team) error {
	t.ID = f.nextID
	f.nextID++
	f.teams[t.ID] = t
	f.members[t.ID] = []TeamMember{{TeamID: t.ID, UserID: t.LeaderID, JoinedAt: time.Now()}}
	return nil
}

func (f *fakeTeamRepo) GetTeamByID(id uint) (*Team, error) {
	t, ok := f.teams[id]
	if !ok {
		return nil, nil
	}
	return t, nil
}

func (f *fakeTeamRepo) GetAllTeams() ([]Team, error) {
	var out []Team
	for _, t := range f.teams {
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeTeamRepo) GetTeamsForUser(userID uint) ([]Team, error) {
	var out []Team
	for id, members := range f.members {
		for _, m := range members {
			if m.UserID == userID {
				out = append(out, *f.teams[id])
				break
			}
		}
	}
	return out, nil
}

func (f *fakeTeamRepo) UpdateTeam(t *Team) error {
	f.teams[t.ID] = t
	return nil
}

func (f *fakeTeamRepo) AddTeamMember(teamID, userID uint) error {
	f.members[teamID] = append(f.members[teamID], TeamMember{TeamID: teamID, UserID: userID, JoinedAt: time.Now()})
	return nil
}

func (f *fakeTeamRepo) RemoveTeamMember(teamID, userID uint) error {
	kept := f.members[teamID][:0]
	for _, m := range f.members[teamID] {
		if m.UserID != userID {
			kept = append(kept, m)
		}
	}
	f.members[teamID] = kept
	return nil
}

func (f *fakeTeamRepo) GetTeamMember(teamID, userID uint) (*TeamMember, error) {
	for _, m := range f.members[teamID] {
		if m.UserID == userID {
			cp := m
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeTeamRepo) GetTeamMembers(teamID uint) ([]TeamMember, error) {
	return f.members[teamID], nil
}

func (f *fakeTeamRepo) MemberIDs(teamID uint) ([]uint, error) {
	var ids []uint
	for _, m := range f.members[teamID] {
		ids = append(ids, m.UserID)
	}
	return ids, nil
}

type fakeUserDirectory struct {
	existing map[uint]bool
}

func (f *fakeUserDirectory) UserExists(id uint) (bool, error) {
	return f.existing[id], nil
}

type fakeCascade struct {
	repo           *fakeTeamRepo
	deletedTeams   []uint
	deletedReports []uint
}

func (f *fakeCascade) DeleteTeam(teamID uint) error {
	if _, ok := f.repo.teams[teamID]; !ok {
		return apperr.ErrNotFound
	}
	delete(f.repo.teams, teamID)
	delete(f.repo.members, teamID)
	f.deletedTeams = append(f.deletedTeams, teamID)
	return nil
}

func (f *fakeCascade) DeleteReport(reportID uint) error {
	f.deletedReports = append(f.deletedReports, reportID)
	return nil
}

// --- Helpers ---

func newTestController(users ...uint) (*TeamController, *fakeTeamRepo, *fakeCascade) {
	repo := newFakeTeamRepo()
	dir := &fakeUserDirectory{existing: make(map[uint]bool)}
	for _, id := range users {
		dir.existing[id] = true
	}
	co := &fakeCascade{repo: repo}
	return NewTeamController(repo, dir, co), repo, co
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

func teamParam(id uint) gin.Params {
	return gin.Params{{Key: "team_id", Value: strconv.FormatUint(uint64(id), 10)}}
}

func mustCreateTeam(t *testing.T, tc *TeamController, actor access.Actor) *Team {
	t.Helper()
	w := performJSON(actor, `{"name":"Alpha","type":"project","description":"first team"}`, nil, tc.CreateTeam)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Data Team `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return &resp.Data
}

var (
	adminActor  = access.Actor{ID: 1, Role: access.RoleAdmin}
	leaderActor = access.Actor{ID: 2, Role: access.RoleLeader}
	memberActor = access.Actor{ID: 3, Role: access.RoleMember}
)

// --- Tests ---

func TestCreateTeamForcesLeaderAndRoster(t *testing.T) {
	tc, repo, _ := newTestController()

	created := mustCreateTeam(t, tc, leaderActor)

	assert.Equal(t, leaderActor.ID, created.LeaderID)
	ids, _ := repo.MemberIDs(created.ID)
	assert.Equal(t, []uint{leaderActor.ID}, ids)
}

func TestCreateTeamDeniedForMembers(t *testing.T) {
	tc, _, _ := newTestController()

	w := performJSON(memberActor, `{"name":"Nope","type":"study"}`, nil, tc.CreateTeam)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreateTeamValidation(t *testing.T) {
	tc, _, _ := newTestController()

	// Missing name and a type outside the enumeration: both violations reported.
	w := performJSON(leaderActor, `{"type":"guild"}`, nil, tc.CreateTeam)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Errors, "name")
	assert.Contains(t, resp.Errors, "type")
}

func TestGetTeamVisibility(t *testing.T) {
	tc, _, _ := newTestController()
	created := mustCreateTeam(t, tc, leaderActor)

	outsider := access.Actor{ID: 42, Role: access.RoleMember}
	w := performJSON(outsider, "", teamParam(created.ID), tc.GetTeam)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = performJSON(adminActor, "", teamParam(created.ID), tc.GetTeam)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performJSON(leaderActor, "", teamParam(9999), tc.GetTeam)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateTeamRejectsLeaderChange(t *testing.T) {
	tc, _, _ := newTestController()
	created := mustCreateTeam(t, tc, leaderActor)

	w := performJSON(leaderActor, `{"name":"Renamed","leader_id":77}`, teamParam(created.ID), tc.UpdateTeam)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUpdateTeamStripsMembers(t *testing.T) {
	tc, repo, _ := newTestController()
	created := mustCreateTeam(t, tc, leaderActor)

	w := performJSON(leaderActor, `{"name":"Renamed","members":[7,8,9]}`, teamParam(created.ID), tc.UpdateTeam)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	updated, _ := repo.GetTeamByID(created.ID)
	assert.Equal(t, "Renamed", updated.Name)

	// The members list from the payload never reaches the roster.
	ids, _ := repo.MemberIDs(created.ID)
	assert.Equal(t, []uint{leaderActor.ID}, ids)
}

func TestUpdateTeamRejectsEmptyName(t *testing.T) {
	tc, repo, _ := newTestController()
	created := mustCreateTeam(t, tc, leaderActor)

	// An explicit empty name must not clear the field.
	w := performJSON(leaderActor, `{"name":""}`, teamParam(created.ID), tc.UpdateTeam)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	stored, _ := repo.GetTeamByID(created.ID)
	assert.Equal(t, "Alpha", stored.Name)
}

func TestUpdateTeamDeniedForMembers(t *testing.T) {
	tc, repo, _ := newTestController()
	created := mustCreateTeam(t, tc, leaderActor)
	repo.AddTeamMember(created.ID, memberActor.ID)

	w := performJSON(memberActor, `{"name":"Hijacked"}`, teamParam(created.ID), tc.UpdateTeam)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeleteTeamInvokesCascade(t *testing.T) {
	tc, _, co := newTestController()
	created := mustCreateTeam(t, tc, leaderActor)

	w := performJSON(leaderActor, "", teamParam(created.ID), tc.DeleteTeam)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []uint{created.ID}, co.deletedTeams)

	// Gone afterwards.
	w = performJSON(leaderActor, "", teamParam(created.ID), tc.GetTeam)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteTeamDeniedForMembers(t *testing.T) {
	tc, repo, co := newTestController()
	created := mustCreateTeam(t, tc, leaderActor)
	repo.AddTeamMember(created.ID, memberActor.ID)

	w := performJSON(memberActor, "", teamParam(created.ID), tc.DeleteTeam)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, co.deletedTeams)
}

func TestAddMember(t *testing.T) {
	tc, repo, _ := newTestController(memberActor.ID)
	created := mustCreateTeam(t, tc, leaderActor)

	w := performJSON(leaderActor, `{"user_id":3}`, teamParam(created.ID), tc.AddMember)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	m, _ := repo.GetTeamMember(created.ID, memberActor.ID)
	require.NotNil(t, m)

	// Adding the same user again conflicts.
	w = performJSON(leaderActor, `{"user_id":3}`, teamParam(created.ID), tc.AddMember)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAddMemberUnknownUser(t *testing.T) {
	tc, _, _ := newTestController()
	created := mustCreateTeam(t, tc, leaderActor)

	w := performJSON(leaderActor, `{"user_id":404}`, teamParam(created.ID), tc.AddMember)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddMemberDeniedForMembers(t *testing.T) {
	tc, repo, _ := newTestController(9)
	created := mustCreateTeam(t, tc, leaderActor)
	repo.AddTeamMember(created.ID, memberActor.ID)

	w := performJSON(memberActor, `{"user_id":9}`, teamParam(created.ID), tc.AddMember)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRemoveMember(t *testing.T) {
	tc, repo, _ := newTestController(memberActor.ID)
	created := mustCreateTeam(t, tc, leaderActor)
	repo.AddTeamMember(created.ID, memberActor.ID)

	params := append(teamParam(created.ID), gin.Param{Key: "user_id", Value: "3"})
	w := performJSON(leaderActor, "", params, tc.RemoveMember)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	m, _ := repo.GetTeamMember(created.ID, memberActor.ID)
	assert.Nil(t, m)

	// Removing again conflicts: no longer a member.
	w = performJSON(leaderActor, "", params, tc.RemoveMember)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRemoveLeaderAlwaysConflicts(t *testing.T) {
	tc, _, _ := newTestController()
	created := mustCreateTeam(t, tc, leaderActor)

	params := append(teamParam(created.ID), gin.Param{Key: "user_id", Value: "2"})

	w := performJSON(leaderActor, "", params, tc.RemoveMember)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Not even an admin can remove the leader.
	w = performJSON(adminActor, "", params, tc.RemoveMember)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRemoveMemberDeniedForMembers(t *testing.T) {
	tc, repo, _ := newTestController()
	created := mustCreateTeam(t, tc, leaderActor)
	repo.AddTeamMember(created.ID, memberActor.ID)

	params := append(teamParam(created.ID), gin.Param{Key: "user_id", Value: "3"})
	w := performJSON(memberActor, "", params, tc.RemoveMember)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestListTeamsFiltered(t *testing.T) {
	tc, repo, _ := newTestController()
	created := mustCreateTeam(t, tc, leaderActor)
	repo.AddTeamMember(created.ID, memberActor.ID)

	// Member sees their team.
	w := performJSON(memberActor, "", nil, tc.GetTeams)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data []Team `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 1)

	// An outsider sees nothing.
	outsider := access.Actor{ID: 42, Role: access.RoleMember}
	w = performJSON(outsider, "", nil, tc.GetTeams)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data)

	// Admin sees everything.
	w = performJSON(adminActor, "", nil, tc.GetTeams)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 1)
}
