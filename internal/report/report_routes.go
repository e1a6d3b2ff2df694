package report

import (
	"github.com/kartikp-10/weekpulse/config"
	"github.com/kartikp-10/weekpulse/internal/cascade"
	mw "github.com/kartikp-10/weekpulse/internal/middleware"
	"github.com/kartikp-10/weekpulse/internal/team"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ReportRoutes sets up all weekly report routes.
func ReportRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	reportRepo := NewReportRepository(db)
	teamRepo := team.NewTeamRepository(db)
	reportController := NewReportController(reportRepo, teamRepo, cascade.NewCoordinator(db))

	authRoutes := router.Group("/")
	authRoutes.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		authRoutes.GET("/reports", reportController.ListReports)
		authRoutes.GET("/reports/:report_id", reportController.GetReport)
		authRoutes.PUT("/reports/:report_id", reportController.UpdateReport)
		authRoutes.DELETE("/reports/:report_id", reportController.DeleteReport)

		authRoutes.GET("/teams/:team_id/reports", reportController.ListTeamReports)
		authRoutes.POST("/teams/:team_id/reports", reportController.CreateReport)
	}
}
