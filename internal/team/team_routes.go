package team

import (
	"github.com/kartikp-10/weekpulse/config"
	"github.com/kartikp-10/weekpulse/internal/cascade"
	mw "github.com/kartikp-10/weekpulse/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TeamRoutes sets up all team-related routes.
func TeamRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	teamRepo := NewTeamRepository(db)
	teamController := NewTeamController(teamRepo, NewUserDirectory(db), cascade.NewCoordinator(db))

	// Every team route requires an authenticated actor; team listings are
	// membership-filtered, so there is no public surface here.
	authRoutes := router.Group("/")
	authRoutes.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		authRoutes.POST("/teams", teamController.CreateTeam)
		authRoutes.GET("/teams", teamController.GetTeams)
		authRoutes.GET("/teams/:team_id", teamController.GetTeam)
		authRoutes.PUT("/teams/:team_id", teamController.UpdateTeam)
		authRoutes.DELETE("/teams/:team_id", teamController.DeleteTeam)

		authRoutes.POST("/teams/:team_id/members", teamController.AddMember)
		authRoutes.DELETE("/teams/:team_id/members/:user_id", teamController.RemoveMember)
	}
}
