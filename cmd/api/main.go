package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/crewlog/crewlog-backend/internal/config"
	appHTTP "github.com/crewlog/crewlog-backend/internal/handler/http"
	"github.com/crewlog/crewlog-backend/internal/pkg/cron"
	"github.com/crewlog/crewlog-backend/internal/pkg/database"
	"github.com/crewlog/crewlog-backend/internal/pkg/email"
	"github.com/crewlog/crewlog-backend/internal/pkg/jwt"
	"github.com/crewlog/crewlog-backend/internal/pkg/oauth"
	"github.com/crewlog/crewlog-backend/internal/pkg/slack"
	"github.com/crewlog/crewlog-backend/internal/repository/postgresql"
	authService "github.com/crewlog/crewlog-backend/internal/service/auth"
	catalogService "github.com/crewlog/crewlog-backend/internal/service/catalog"
	mailService "github.com/crewlog/crewlog-backend/internal/service/mail"
	projectService "github.com/crewlog/crewlog-backend/internal/service/project"
	timelogService "github.com/crewlog/crewlog-backend/internal/service/timelog"
	userService "github.com/crewlog/crewlog-backend/internal/service/user"
	vacationService "github.com/crewlog/crewlog-backend/internal/service/vacation"
	worklogService "github.com/crewlog/crewlog-backend/internal/service/worklog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	stackRepo := postgresql.NewStackRepository(db)
	timelogRepo := postgresql.NewTimelogRepository(db)
	vacationRepo := postgresql.NewVacationRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	worklogRepo := postgresql.NewWorklogRepository(db)
	facilityRepo := postgresql.NewFacilityRepository(db)
	feedbackRepo := postgresql.NewFeedbackRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	notifier := slack.NewNotifier(cfg.Slack)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	authSvc := authService.NewAuthService(userRepo, jwtService, googleService)
	userSvc := userService.NewUserService(userRepo)
	projectSvc := projectService.NewProjectService(projectRepo)
	timelogSvc := timelogService.NewTimelogService(timelogRepo)
	vacationSvc := vacationService.NewService(vacationRepo, userRepo, notifier, cfg.Leave)
	worklogSvc := worklogService.NewService(worklogRepo)
	catalogSvc := catalogService.NewCatalogService(stackRepo, facilityRepo, feedbackRepo)
	mailSvc := mailService.NewMailService(emailService)

	router := appHTTP.NewRouter(jwtService, appHTTP.Handlers{
		Auth:     appHTTP.NewAuthHandler(authSvc, jwtService, googleService, cfg.App.FrontendURL),
		User:     appHTTP.NewUserHandler(userSvc),
		Project:  appHTTP.NewProjectHandler(projectSvc),
		Timelog:  appHTTP.NewTimelogHandler(timelogSvc),
		Vacation: appHTTP.NewVacationHandler(vacationSvc, userRepo),
		Worklog:  appHTTP.NewWorklogHandler(worklogSvc, vacationSvc),
		Holiday:  appHTTP.NewHolidayHandler(holidayRepo),
		Catalog:  appHTTP.NewCatalogHandler(catalogSvc),
		Mail:     appHTTP.NewMailHandler(mailSvc),
	}, cfg.App.FrontendURL, cfg.App.Env)

	scheduler := cron.NewScheduler()
	if notifier.Enabled() && cfg.Slack.GeneralChannel != "" {
		scheduler.AddJob("birthday-greetings", time.Hour,
			cron.BirthdayGreetingJob(worklogRepo, notifier, cfg.Slack.GeneralChannel))
	}
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
