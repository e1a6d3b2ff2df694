package contribution

import (
	"github.com/kartikp-10/weekpulse/config"
	mw "github.com/kartikp-10/weekpulse/internal/middleware"
	"github.com/kartikp-10/weekpulse/internal/report"
	"github.com/kartikp-10/weekpulse/internal/team"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ContributionRoutes sets up all contribution routes.
func ContributionRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	contribRepo := NewContributionRepository(db)
	reportRepo := report.NewReportRepository(db)
	teamRepo := team.NewTeamRepository(db)
	contribController := NewContributionController(contribRepo, reportRepo, teamRepo)

	authRoutes := router.Group("/")
	authRoutes.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		authRoutes.GET("/reports/:report_id/contributions", contribController.ListContributions)
		authRoutes.POST("/reports/:report_id/contributions", contribController.AddContribution)
		authRoutes.PUT("/contributions/:contribution_id", contribController.UpdateContribution)
		authRoutes.DELETE("/contributions/:contribution_id", contribController.DeleteContribution)
	}
}
