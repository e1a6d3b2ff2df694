package team

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/kartikp-10/weekpulse/internal/access"
	"github.com/kartikp-10/weekpulse/internal/cascade"
	"github.com/kartikp-10/weekpulse/internal/middleware"
	"github.com/kartikp-10/weekpulse/pkg/apperr"
	"github.com/kartikp-10/weekpulse/pkg/responses"
	"github.com/kartikp-10/weekpulse/pkg/validator"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TeamController handles team-related HTTP requests.
type TeamController struct {
	repo    TeamRepository
	users   UserDirectory
	cascade cascade.Coordinator
}

// NewTeamController creates a new team controller.
func NewTeamController(repo TeamRepository, users UserDirectory, co cascade.Coordinator) *TeamController {
	return &TeamController{
		repo:    repo,
		users:   users,
		cascade: co,
	}
}

// Facts loads the ownership facts the access evaluator needs for a team.
// Shared with the report and contribution controllers.
func Facts(repo TeamRepository, t *Team) (access.TeamFacts, error) {
	ids, err := repo.MemberIDs(t.ID)
	if err != nil {
		return access.TeamFacts{}, err
	}
	return access.TeamFacts{TeamID: t.ID, LeaderID: t.LeaderID, MemberIDs: ids}, nil
}

// --- DTOs ---

type CreateTeamRequest struct {
	Name        string `json:"name" binding:"required,max=50"`
	Type        string `json:"type" binding:"required,oneof=study project"`
	Description string `json:"description" binding:"max=500"`
}

type UpdateTeamRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=50"`
	Type        *string `json:"type" binding:"omitempty,oneof=study project"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	// Leader changes are rejected with a conflict; member changes must go
	// through the add/remove endpoints and are stripped if supplied.
	LeaderID *uint  `json:"leader_id"`
	Members  []uint `json:"members"`
}

type AddMemberRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}

// TeamResponse is a team plus its roster.
type TeamResponse struct {
	Team    Team         `json:"team"`
	Members []TeamMember `json:"members"`
}

func parseTeamID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("team_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid team ID")
		return 0, false
	}
	return uint(id), true
}

// CreateTeam godoc
// @Summary Create a new team
// @Description Creates a team; the authenticated user becomes its leader and sole initial member.
// @Tags Teams
// @Accept json
// @Produce json
// @Param team body CreateTeamRequest true "Team fields"
// @Success 201 {object} responses.SuccessResponse{data=Team}
// @Failure 400 {object} responses.ValidationErrorResponse
// @Failure 403 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /teams [post]
func (tc *TeamController) CreateTeam(c *gin.Context) {
	actor, err := middleware.GetActorFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	if d := access.CanCreateTeam(actor); !d.Allowed {
		responses.Forbidden(c, d.Reason)
		return
	}

	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationErrors(c, validator.ParseError(err))
		return
	}

	// Leader and roster are never taken from the request body.
	t := Team{
		Name:        req.Name,
		Type:        req.Type,
		Description: req.Description,
		LeaderID:    actor.ID,
	}

	if err := tc.repo.CreateTeamWithLeader(&t); err != nil {
		responses.InternalServerError(c, "Failed to create team")
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Team created successfully", t)
}

// GetTeams godoc
// @Summary List teams
// @Description Admins see every team; everyone else only the teams they belong to.
// @Tags Teams
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]Team}
// @Security ApiKeyAuth
// @Router /teams [get]
func (tc *TeamController) GetTeams(c *gin.Context) {
	actor, err := middleware.GetActorFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	var teams []Team
	if actor.Role == access.RoleAdmin {
		teams, err = tc.repo.GetAllTeams()
	} else {
		teams, err = tc.repo.GetTeamsForUser(actor.ID)
	}
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch teams")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Teams retrieved successfully", teams)
}

// GetTeam godoc
// @Summary Get a team with its roster
// @Tags Teams
// @Produce json
// @Param team_id path int true "Team ID"
// @Success 200 {object} responses.SuccessResponse{data=TeamResponse}
// @Failure 403 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /teams/{team_id} [get]
func (tc *TeamController) GetTeam(c *gin.Context) {
	actor, err := middleware.GetActorFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	teamID, ok := parseTeamID(c)
	if !ok {
		return
	}

	t, err := tc.repo.GetTeamByID(teamID)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch team")
		return
	}
	if t == nil {
		responses.NotFound(c, "Team")
		return
	}

	facts, err := Facts(tc.repo, t)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch team members")
		return
	}

	if d := access.CanViewTeam(actor, facts); !d.Allowed {
		responses.Forbidden(c, d.Reason)
		return
	}

	members, err := tc.repo.GetTeamMembers(teamID)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch team members")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Team retrieved successfully", TeamResponse{Team: *t, Members: members})
}

// UpdateTeam godoc
// @Summary Update a team's name, type, or description
// @Description Leader changes are rejected with 409; membership changes must use the member endpoints.
// @Tags Teams
// @Accept json
// @Produce json
// @Param team_id path int true "Team ID"
// @Param team body UpdateTeamRequest true "Fields to update"
// @Success 200 {object} responses.SuccessResponse{data=Team}
// @Failure 403 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /teams/{team_id} [put]
func (tc *TeamController) UpdateTeam(c *gin.Context) {
	actor, err := middleware.GetActorFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	teamID, ok := parseTeamID(c)
	if !ok {
		return
	}

	t, err := tc.repo.GetTeamByID(teamID)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch team")
		return
	}
	if t == nil {
		responses.NotFound(c, "Team")
		return
	}

	facts, err := Facts(tc.repo, t)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch team members")
		return
	}

	if d := access.CanManageTeam(actor, facts); !d.Allowed {
		responses.Forbidden(c, d.Reason)
		return
	}

	var req UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationErrors(c, validator.ParseError(err))
		return
	}

	if req.LeaderID != nil && *req.LeaderID != t.LeaderID {
		responses.Conflict(c, "The team leader cannot be changed through this endpoint")
		return
	}
	// req.Members is intentionally ignored.

	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.Type != nil {
		t.Type = *req.Type
	}
	if req.Description != nil {
		t.Description = *req.Description
	}

	if err := tc.repo.UpdateTeam(t); err != nil {
		responses.InternalServerError(c, "Failed to update team")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Team updated successfully", t)
}

// DeleteTeam godoc
// @Summary Delete a team and everything under it
// @Description Removes the team, its weekly reports, their contributions, and all roster entries.
// @Tags Teams
// @Produce json
// @Param team_id path int true "Team ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 403 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /teams/{team_id} [delete]
func (tc *TeamController) DeleteTeam(c *gin.Context) {
	actor, err := middleware.GetActorFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	teamID, ok := parseTeamID(c)
	if !ok {
		return
	}

	t, err := tc.repo.GetTeamByID(teamID)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch team")
		return
	}
	if t == nil {
		responses.NotFound(c, "Team")
		return
	}

	facts, err := Facts(tc.repo, t)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch team members")
		return
	}

	if d := access.CanManageTeam(actor, facts); !d.Allowed {
		responses.Forbidden(c, d.Reason)
		return
	}

	if err := tc.cascade.DeleteTeam(teamID); err != nil {
		if apperr.Is(err, apperr.ErrNotFound) {
			responses.NotFound(c, "Team")
			return
		}
		responses.InternalServerError(c, "Failed to delete team")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Team deleted successfully", nil)
}

// AddMember godoc
// @Summary Add a user to the team roster
// @Tags Teams
// @Accept json
// @Produce json
// @Param team_id path int true "Team ID"
// @Param member body AddMemberRequest true "User to add"
// @Success 201 {object} responses.SuccessResponse{data=TeamMember}
// @Failure 403 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /teams/{team_id}/members [post]
func (tc *TeamController) AddMember(c *gin.Context) {
	actor, err := middleware.GetActorFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	teamID, ok := parseTeamID(c)
	if !ok {
		return
	}

	t, err := tc.repo.GetTeamByID(teamID)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch team")
		return
	}
	if t == nil {
		responses.NotFound(c, "Team")
		return
	}

	facts, err := Facts(tc.repo, t)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch team members")
		return
	}

	if d := access.CanManageMembers(actor, facts); !d.Allowed {
		responses.Forbidden(c, d.Reason)
		return
	}

	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationErrors(c, validator.ParseError(err))
		return
	}

	exists, err := tc.users.UserExists(req.UserID)
	if err != nil {
		responses.InternalServerError(c, "Failed to look up user")
		return
	}
	if !exists {
		responses.NotFound(c, "User")
		return
	}

	existing, err := tc.repo.GetTeamMember(teamID, req.UserID)
	if err != nil {
		responses.InternalServerError(c, "Failed to check membership")
		return
	}
	if existing != nil {
		responses.Conflict(c, "User is already a member of this team")
		return
	}

	if err := tc.repo.AddTeamMember(teamID, req.UserID); err != nil {
		// Unique index backstop for two concurrent adds of the same user.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			responses.Conflict(c, "User is already a member of this team")
			return
		}
		responses.InternalServerError(c, "Failed to add team member")
		return
	}

	member, err := tc.repo.GetTeamMember(teamID, req.UserID)
	if err != nil || member == nil {
		responses.SendSuccess(c, http.StatusCreated, "Member added successfully", nil)
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Member added successfully", member)
}

// RemoveMember godoc
// @Summary Remove a user from the team roster
// @Description The leader cannot be removed; that yields 409.
// @Tags Teams
// @Produce json
// @Param team_id path int true "Team ID"
// @Param user_id path int true "User ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 403 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /teams/{team_id}/members/{user_id} [delete]
func (tc *TeamController) RemoveMember(c *gin.Context) {
	actor, err := middleware.GetActorFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	teamID, ok := parseTeamID(c)
	if !ok {
		return
	}

	targetID64, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid user ID")
		return
	}
	targetID := uint(targetID64)

	t, err := tc.repo.GetTeamByID(teamID)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch team")
		return
	}
	if t == nil {
		responses.NotFound(c, "Team")
		return
	}

	facts, err := Facts(tc.repo, t)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch team members")
		return
	}

	if d := access.CanManageMembers(actor, facts); !d.Allowed {
		responses.Forbidden(c, d.Reason)
		return
	}

	// Removing the leader is a lifecycle conflict, not a permission failure.
	if targetID == t.LeaderID {
		responses.Conflict(c, "The team leader cannot be removed from the team")
		return
	}

	existing, err := tc.repo.GetTeamMember(teamID, targetID)
	if err != nil {
		responses.InternalServerError(c, "Failed to check membership")
		return
	}
	if existing == nil {
		responses.Conflict(c, "User is not a member of this team")
		return
	}

	if err := tc.repo.RemoveTeamMember(teamID, targetID); err != nil {
		responses.InternalServerError(c, "Failed to remove team member")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Member removed successfully", nil)
}
