package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/kartikp-10/weekpulse/config"
	"github.com/kartikp-10/weekpulse/internal/auth"
	"github.com/kartikp-10/weekpulse/internal/contribution"
	"github.com/kartikp-10/weekpulse/internal/report"
	"github.com/kartikp-10/weekpulse/internal/team"
)

func SetupRoutes(db *gorm.DB, appConfig *config.Config) *gin.Engine {
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{appConfig.App.FrontendURL}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")
	auth.RegisterAuthRoutes(api, db, appConfig)
	team.TeamRoutes(api, db, appConfig)
	report.ReportRoutes(api, db, appConfig)
	contribution.ContributionRoutes(api, db, appConfig)

	return r
}
