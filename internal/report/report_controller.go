package report

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/kartikp-10/weekpulse/internal/access"
	"github.com/kartikp-10/weekpulse/internal/cascade"
	"github.com/kartikp-10/weekpulse/internal/middleware"
	"github.com/kartikp-10/weekpulse/internal/team"
	"github.com/kartikp-10/weekpulse/pkg/apperr"
	"github.com/kartikp-10/weekpulse/pkg/responses"
	"github.com/kartikp-10/weekpulse/pkg/validator"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ReportController handles weekly report HTTP requests.
type ReportController struct {
	repo    ReportRepository
	teams   team.TeamRepository
	cascade cascade.Coordinator
}

// NewReportController creates a new report controller.
func NewReportController(repo ReportRepository, teams team.TeamRepository, co cascade.Coordinator) *ReportController {
	return &ReportController{
		repo:    repo,
		teams:   teams,
		cascade: co,
	}
}

// --- DTOs ---

type CreateReportRequest struct {
	Goals          string     `json:"goals" binding:"required,max=1000"`
	Progress       string     `json:"progress" binding:"max=2000"`
	Challenges     string     `json:"challenges" binding:"max=2000"`
	NextWeekPlan   string     `json:"next_week_plan" binding:"max=2000"`
	Status         string     `json:"status" binding:"omitempty,oneof=not_started in_progress completed on_hold"`
	CompletionRate *int       `json:"completion_rate" binding:"omitempty,gte=0,lte=100"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
}

type UpdateReportRequest struct {
	Goals          *string    `json:"goals" binding:"omitempty,min=1,max=1000"`
	Progress       *string    `json:"progress" binding:"omitempty,max=2000"`
	Challenges     *string    `json:"challenges" binding:"omitempty,max=2000"`
	NextWeekPlan   *string    `json:"next_week_plan" binding:"omitempty,max=2000"`
	Status         *string    `json:"status" binding:"omitempty,oneof=not_started in_progress completed on_hold"`
	CompletionRate *int       `json:"completion_rate" binding:"omitempty,gte=0,lte=100"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	// Immutable after creation; stripped if supplied.
	WeekNumber    *int  `json:"week_number"`
	TeamID        *uint `json:"team_id"`
	SubmittedByID *uint `json:"submitted_by_id"`
}

// currentCalendarWeek returns the Monday and Sunday bounding now.
func currentCalendarWeek(now time.Time) (time.Time, time.Time) {
	offset := (int(now.Weekday()) + 6) % 7 // Monday = 0
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, -offset)
	end := start.AddDate(0, 0, 6)
	return start, end
}

func (rc *ReportController) loadReportContext(c *gin.Context, reportID uint) (*WeeklyReport, access.TeamFacts, bool) {
	rep, err := rc.repo.GetReportByID(reportID)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch report")
		return nil, access.TeamFacts{}, false
	}
	if rep == nil {
		responses.NotFound(c, "Report")
		return nil, access.TeamFacts{}, false
	}

	t, err := rc.teams.GetTeamByID(rep.TeamID)
	if err != nil || t == nil {
		responses.InternalServerError(c, "Failed to fetch report's team")
		return nil, access.TeamFacts{}, false
	}

	facts, err := team.Facts(rc.teams, t)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch team members")
		return nil, access.TeamFacts{}, false
	}
	return rep, facts, true
}

// ListReports godoc
// @Summary List the reports visible to the caller
// @Description Admins see every report; everyone else the reports of their teams.
// @Tags Reports
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]WeeklyReport}
// @Security ApiKeyAuth
// @Router /reports [get]
func (rc *ReportController) ListReports(c *gin.Context) {
	actor, err := middleware.GetActorFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	var reports []WeeklyReport
	if actor.Role == access.RoleAdmin {
		reports, err = rc.repo.GetAllReports()
	} else {
		var teams []team.Team
		teams, err = rc.teams.GetTeamsForUser(actor.ID)
		if err == nil {
			ids := make([]uint, 0, len(teams))
			for _, t := range teams {
				ids = append(ids, t.ID)
			}
			reports, err = rc.repo.GetReportsByTeams(ids)
		}
	}
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch reports")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Reports retrieved successfully", reports)
}

// ListTeamReports godoc
// @Summary List a team's weekly reports
// @Tags Reports
// @Produce json
// @Param team_id path int true "Team ID"
// @Success 200 {object} responses.SuccessResponse{data=[]WeeklyReport}
// @Failure 403 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /teams/{team_id}/reports [get]
func (rc *ReportController) ListTeamReports(c *gin.Context) {
	actor, err := middleware.GetActorFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	teamID64, err := strconv.ParseUint(c.Param("team_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid team ID")
		return
	}

	t, err := rc.teams.GetTeamByID(uint(teamID64))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch team")
		return
	}
	if t == nil {
		responses.NotFound(c, "Team")
		return
	}

	facts, err := team.Facts(rc.teams, t)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch team members")
		return
	}

	if d := access.CanViewReport(actor, facts); !d.Allowed {
		responses.Forbidden(c, d.Reason)
		return
	}

	reports, err := rc.repo.GetReportsByTeam(t.ID)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch reports")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Reports retrieved successfully", reports)
}

// GetReport godoc
// @Summary Get a single weekly report
// @Tags Reports
// @Produce json
// @Param report_id path int true "Report ID"
// @Success 200 {object} responses.SuccessResponse{data=WeeklyReport}
// @Failure 403 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /reports/{report_id} [get]
func (rc *ReportController) GetReport(c *gin.Context) {
	actor, err := middleware.GetActorFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	reportID64, err := strconv.ParseUint(c.Param("report_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid report ID")
		return
	}

	rep, facts, ok := rc.loadReportContext(c, uint(reportID64))
	if !ok {
		return
	}

	if d := access.CanViewReport(actor, facts); !d.Allowed {
		responses.Forbidden(c, d.Reason)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Report retrieved successfully", rep)
}

// CreateReport godoc
// @Summary Create a team's next weekly report
// @Description Only the team leader or an admin publishes reports. The week number is assigned server-side; dates default to the current Monday-Sunday week.
// @Tags Reports
// @Accept json
// @Produce json
// @Param team_id path int true "Team ID"
// @Param report body CreateReportRequest true "Report fields"
// @Success 201 {object} responses.SuccessResponse{data=WeeklyReport}
// @Failure 400 {object} responses.ValidationErrorResponse
// @Failure 403 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /teams/{team_id}/reports [post]
func (rc *ReportController) CreateReport(c *gin.Context) {
	actor, err := middleware.GetActorFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	teamID64, err := strconv.ParseUint(c.Param("team_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid team ID")
		return
	}

	t, err := rc.teams.GetTeamByID(uint(teamID64))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch team")
		return
	}
	if t == nil {
		responses.NotFound(c, "Team")
		return
	}

	facts, err := team.Facts(rc.teams, t)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch team members")
		return
	}

	if d := access.CanCreateReport(actor, facts); !d.Allowed {
		responses.Forbidden(c, d.Reason)
		return
	}

	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationErrors(c, validator.ParseError(err))
		return
	}

	startDate, endDate := currentCalendarWeek(time.Now())
	if req.StartDate != nil {
		startDate = *req.StartDate
	}
	if req.EndDate != nil {
		endDate = *req.EndDate
	}
	if !endDate.After(startDate) {
		responses.SendValidationErrors(c, map[string]string{"end_date": "must be after start_date"})
		return
	}

	maxWeek, err := rc.repo.MaxWeekNumber(t.ID)
	if err != nil {
		responses.InternalServerError(c, "Failed to compute week number")
		return
	}

	rep := WeeklyReport{
		TeamID:        t.ID,
		WeekNumber:    maxWeek + 1,
		StartDate:     startDate,
		EndDate:       endDate,
		Status:        StatusNotStarted,
		Goals:         req.Goals,
		Progress:      req.Progress,
		Challenges:    req.Challenges,
		NextWeekPlan:  req.NextWeekPlan,
		SubmittedByID: actor.ID,
	}
	if req.Status != "" {
		rep.Status = req.Status
	}
	if req.CompletionRate != nil {
		rep.CompletionRate = *req.CompletionRate
	}

	if err := rc.repo.CreateReport(&rep); err != nil {
		// Two concurrent creations can both read the same max; the compound
		// unique index on (team_id, week_number) catches the loser here.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			responses.Conflict(c, "Another report was created for this team at the same time, please retry")
			return
		}
		responses.InternalServerError(c, "Failed to create report")
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Report created successfully", rep)
}

// UpdateReport godoc
// @Summary Update a weekly report
// @Description Week number, team, and author are immutable and ignored if supplied.
// @Tags Reports
// @Accept json
// @Produce json
// @Param report_id path int true "Report ID"
// @Param report body UpdateReportRequest true "Fields to update"
// @Success 200 {object} responses.SuccessResponse{data=WeeklyReport}
// @Failure 403 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /reports/{report_id} [put]
func (rc *ReportController) UpdateReport(c *gin.Context) {
	actor, err := middleware.GetActorFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	reportID64, err := strconv.ParseUint(c.Param("report_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid report ID")
		return
	}

	rep, facts, ok := rc.loadReportContext(c, uint(reportID64))
	if !ok {
		return
	}

	if d := access.CanModifyReport(actor, facts, rep.SubmittedByID); !d.Allowed {
		responses.Forbidden(c, d.Reason)
		return
	}

	var req UpdateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationErrors(c, validator.ParseError(err))
		return
	}

	// req.WeekNumber, req.TeamID, and req.SubmittedByID are intentionally
	// ignored: assigned at creation, immutable thereafter.
	if req.Goals != nil {
		rep.Goals = *req.Goals
	}
	if req.Progress != nil {
		rep.Progress = *req.Progress
	}
	if req.Challenges != nil {
		rep.Challenges = *req.Challenges
	}
	if req.NextWeekPlan != nil {
		rep.NextWeekPlan = *req.NextWeekPlan
	}
	if req.Status != nil {
		// Any enumerated status may be set at any time; the progression
		// not_started -> in_progress -> completed is not enforced.
		rep.Status = *req.Status
	}
	if req.CompletionRate != nil {
		rep.CompletionRate = *req.CompletionRate
	}
	if req.StartDate != nil {
		rep.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		rep.EndDate = *req.EndDate
	}
	if !rep.EndDate.After(rep.StartDate) {
		responses.SendValidationErrors(c, map[string]string{"end_date": "must be after start_date"})
		return
	}

	if err := rc.repo.UpdateReport(rep); err != nil {
		responses.InternalServerError(c, "Failed to update report")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Report updated successfully", rep)
}

// DeleteReport godoc
// @Summary Delete a weekly report and its contributions
// @Tags Reports
// @Produce json
// @Param report_id path int true "Report ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 403 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /reports/{report_id} [delete]
func (rc *ReportController) DeleteReport(c *gin.Context) {
	actor, err := middleware.GetActorFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	reportID64, err := strconv.ParseUint(c.Param("report_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid report ID")
		return
	}

	rep, facts, ok := rc.loadReportContext(c, uint(reportID64))
	if !ok {
		return
	}

	if d := access.CanModifyReport(actor, facts, rep.SubmittedByID); !d.Allowed {
		responses.Forbidden(c, d.Reason)
		return
	}

	if err := rc.cascade.DeleteReport(rep.ID); err != nil {
		if apperr.Is(err, apperr.ErrNotFound) {
			responses.NotFound(c, "Report")
			return
		}
		responses.InternalServerError(c, "Failed to delete report")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Report deleted successfully", nil)
}
