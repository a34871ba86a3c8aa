package main

import (
	"fmt"
	"net/http"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/config"
	appHTTP "github.com/shiftdesk/shiftdesk-backend-go/internal/handler/http"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/cron"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/database"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/jwt"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/oauth"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/sse"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/repository/postgresql"
	authService "github.com/shiftdesk/shiftdesk-backend-go/internal/service/auth"
	leaveService "github.com/shiftdesk/shiftdesk-backend-go/internal/service/leave"
	reportService "github.com/shiftdesk/shiftdesk-backend-go/internal/service/report"
	shiftService "github.com/shiftdesk/shiftdesk-backend-go/internal/service/shift"
	timeRecordService "github.com/shiftdesk/shiftdesk-backend-go/internal/service/timerecord"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	JWTRepository := postgresql.NewJWTRepository(db)
	timeRecordRepo := postgresql.NewTimeRecordRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	leaveRepo := postgresql.NewLeaveRequestRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	hub := sse.NewHub()

	authSvc := authService.NewAuthService(db, userRepo, JWTService, JWTRepository)
	timeRecordSvc := timeRecordService.NewTimeRecordService(db, timeRecordRepo)
	shiftSvc := shiftService.NewShiftService(db, shiftRepo, hub)
	leaveSvc := leaveService.NewLeaveService(db, leaveRepo)
	reportSvc := reportService.NewReportService(reportRepo)

	scheduler := cron.NewScheduler()
	sessionJobs := cron.NewSessionJobs(timeRecordSvc, cfg.Session.MaxOpenDuration, cfg.Session.SweepInterval)
	sessionJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc, GoogleService, cfg.GoogleLoginEnabled(), cfg.App.FrontendURL)
	attendanceHandler := appHTTP.NewAttendanceHandler(timeRecordSvc)
	shiftHandler := appHTTP.NewShiftHandler(shiftSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	eventsHandler := appHTTP.NewEventsHandler(hub, JWTService)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		attendanceHandler,
		shiftHandler,
		leaveHandler,
		reportHandler,
		eventsHandler,
		cfg.App.FrontendURL,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
