package main

import (
	"github.com/sirupsen/logrus"

	"github.com/kartikp-10/weekpulse/config"
	_ "github.com/kartikp-10/weekpulse/docs"
	"github.com/kartikp-10/weekpulse/internal/contribution"
	"github.com/kartikp-10/weekpulse/internal/report"
	"github.com/kartikp-10/weekpulse/internal/team"
	"github.com/kartikp-10/weekpulse/internal/user"
	"github.com/kartikp-10/weekpulse/routes"
)

// @title WeekPulse REST API
// @version 1.0
// @description Team weekly report tracking service.
// @host localhost:8088
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	if err := config.Initialize(); err != nil {
		logrus.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&user.User{}, &user.RefreshToken{},
		&team.Team{}, &team.TeamMember{},
		&report.WeeklyReport{},
		&contribution.Contribution{},
	)
	if err != nil {
		logrus.Fatalf("AutoMigrate failed: %v", err)
	}
	logrus.Info("AutoMigrate successful")

	r := routes.SetupRoutes(config.DB, cfg)

	logrus.Infof("Starting server on port %s in %s mode", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		logrus.Fatalf("Failed to run server: %v", err)
	}
}
