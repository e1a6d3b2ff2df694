package contribution

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/kartikp-10/weekpulse/internal/access"
	"github.com/kartikp-10/weekpulse/internal/middleware"
	"github.com/kartikp-10/weekpulse/internal/report"
	"github.com/kartikp-10/weekpulse/internal/team"
	"github.com/kartikp-10/weekpulse/pkg/responses"
	"github.com/kartikp-10/weekpulse/pkg/validator"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ContributionController handles contribution HTTP requests.
type ContributionController struct {
	repo    ContributionRepository
	reports report.ReportRepository
	teams   team.TeamRepository
}

// NewContributionController creates a new contribution controller.
func NewContributionController(repo ContributionRepository, reports report.ReportRepository, teams team.TeamRepository) *ContributionController {
	return &ContributionController{
		repo:    repo,
		reports: reports,
		teams:   teams,
	}
}

// --- DTOs ---

type AddContributionRequest struct {
	Description string  `json:"description" binding:"required,max=500"`
	Hours       float64 `json:"hours" binding:"required,gt=0"`
	// UserID lets a leader or admin record a contribution on behalf of a
	// current team member; absent, the contribution is the caller's own.
	UserID *uint `json:"user_id"`
}

type UpdateContributionRequest struct {
	Description *string  `json:"description" binding:"omitempty,min=1,max=500"`
	Hours       *float64 `json:"hours" binding:"omitempty,gt=0"`
	// Immutable after creation; stripped if supplied.
	UserID   *uint `json:"user_id"`
	ReportID *uint `json:"report_id"`
}

// teamFactsForReport resolves the report's team and its roster facts.
func (cc *ContributionController) teamFactsForReport(c *gin.Context, rep *report.WeeklyReport) (access.TeamFacts, bool) {
	t, err := cc.teams.GetTeamByID(rep.TeamID)
	if err != nil || t == nil {
		responses.InternalServerError(c, "Failed to fetch report's team")
		return access.TeamFacts{}, false
	}
	facts, err := team.Facts(cc.teams, t)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch team members")
		return access.TeamFacts{}, false
	}
	return facts, true
}

func (cc *ContributionController) loadReport(c *gin.Context) (*report.WeeklyReport, bool) {
	reportID64, err := strconv.ParseUint(c.Param("report_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid report ID")
		return nil, false
	}
	rep, err := cc.reports.GetReportByID(uint(reportID64))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch report")
		return nil, false
	}
	if rep == nil {
		responses.NotFound(c, "Report")
		return nil, false
	}
	return rep, true
}

// ListContributions godoc
// @Summary List a report's contributions
// @Tags Contributions
// @Produce json
// @Param report_id path int true "Report ID"
// @Success 200 {object} responses.SuccessResponse{data=[]Contribution}
// @Failure 403 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /reports/{report_id}/contributions [get]
func (cc *ContributionController) ListContributions(c *gin.Context) {
	actor, err := middleware.GetActorFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	rep, ok := cc.loadReport(c)
	if !ok {
		return
	}

	facts, ok := cc.teamFactsForReport(c, rep)
	if !ok {
		return
	}

	if d := access.CanViewReport(actor, facts); !d.Allowed {
		responses.Forbidden(c, d.Reason)
		return
	}

	contributions, err := cc.repo.GetContributionsByReport(rep.ID)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch contributions")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Contributions retrieved successfully", contributions)
}

// AddContribution godoc
// @Summary Add a contribution to a report
// @Description Members record their own contribution; leaders and admins may record one for any current team member. One contribution per user per report.
// @Tags Contributions
// @Accept json
// @Produce json
// @Param report_id path int true "Report ID"
// @Param contribution body AddContributionRequest true "Contribution fields"
// @Success 201 {object} responses.SuccessResponse{data=Contribution}
// @Failure 400 {object} responses.ValidationErrorResponse
// @Failure 403 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /reports/{report_id}/contributions [post]
func (cc *ContributionController) AddContribution(c *gin.Context) {
	actor, err := middleware.GetActorFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	rep, ok := cc.loadReport(c)
	if !ok {
		return
	}

	var req AddContributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationErrors(c, validator.ParseError(err))
		return
	}

	targetUserID := actor.ID
	if req.UserID != nil {
		targetUserID = *req.UserID
	}

	facts, ok := cc.teamFactsForReport(c, rep)
	if !ok {
		return
	}

	if d := access.CanContribute(actor, facts, targetUserID); !d.Allowed {
		responses.Forbidden(c, d.Reason)
		return
	}

	existing, err := cc.repo.GetContributionForUser(rep.ID, targetUserID)
	if err != nil {
		responses.InternalServerError(c, "Failed to check existing contributions")
		return
	}
	if existing != nil {
		responses.Conflict(c, "A contribution already exists for this user on this report")
		return
	}

	contrib := Contribution{
		ReportID:    rep.ID,
		UserID:      targetUserID,
		Description: req.Description,
		Hours:       req.Hours,
	}

	if err := cc.repo.CreateContribution(&contrib); err != nil {
		// Unique index backstop for two racing creations of the same pair.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			responses.Conflict(c, "A contribution already exists for this user on this report")
			return
		}
		responses.InternalServerError(c, "Failed to create contribution")
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Contribution added successfully", contrib)
}

func (cc *ContributionController) loadContributionContext(c *gin.Context) (*Contribution, access.TeamFacts, bool) {
	contribID64, err := strconv.ParseUint(c.Param("contribution_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid contribution ID")
		return nil, access.TeamFacts{}, false
	}

	contrib, err := cc.repo.GetContributionByID(uint(contribID64))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch contribution")
		return nil, access.TeamFacts{}, false
	}
	if contrib == nil {
		responses.NotFound(c, "Contribution")
		return nil, access.TeamFacts{}, false
	}

	rep, err := cc.reports.GetReportByID(contrib.ReportID)
	if err != nil || rep == nil {
		responses.InternalServerError(c, "Failed to fetch contribution's report")
		return nil, access.TeamFacts{}, false
	}

	facts, ok := cc.teamFactsForReport(c, rep)
	if !ok {
		return nil, access.TeamFacts{}, false
	}
	return contrib, facts, true
}

// UpdateContribution godoc
// @Summary Update a contribution
// @Description The owning user and report are immutable and ignored if supplied.
// @Tags Contributions
// @Accept json
// @Produce json
// @Param contribution_id path int true "Contribution ID"
// @Param contribution body UpdateContributionRequest true "Fields to update"
// @Success 200 {object} responses.SuccessResponse{data=Contribution}
// @Failure 403 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /contributions/{contribution_id} [put]
func (cc *ContributionController) UpdateContribution(c *gin.Context) {
	actor, err := middleware.GetActorFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	contrib, facts, ok := cc.loadContributionContext(c)
	if !ok {
		return
	}

	if d := access.CanModifyContribution(actor, facts, contrib.UserID); !d.Allowed {
		responses.Forbidden(c, d.Reason)
		return
	}

	var req UpdateContributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationErrors(c, validator.ParseError(err))
		return
	}

	// req.UserID and req.ReportID are intentionally ignored.
	if req.Description != nil {
		contrib.Description = *req.Description
	}
	if req.Hours != nil {
		contrib.Hours = *req.Hours
	}

	if err := cc.repo.UpdateContribution(contrib); err != nil {
		responses.InternalServerError(c, "Failed to update contribution")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Contribution updated successfully", contrib)
}

// DeleteContribution godoc
// @Summary Delete a contribution
// @Tags Contributions
// @Produce json
// @Param contribution_id path int true "Contribution ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 403 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /contributions/{contribution_id} [delete]
func (cc *ContributionController) DeleteContribution(c *gin.Context) {
	actor, err := middleware.GetActorFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	contrib, facts, ok := cc.loadContributionContext(c)
	if !ok {
		return
	}

	if d := access.CanModifyContribution(actor, facts, contrib.UserID); !d.Allowed {
		responses.Forbidden(c, d.Reason)
		return
	}

	if err := cc.repo.DeleteContribution(contrib.ID); err != nil {
		responses.InternalServerError(c, "Failed to delete contribution")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Contribution deleted successfully", nil)
}
