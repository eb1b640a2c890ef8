package main

import (
	"fmt"
	"net/http"

	"github.com/punchlog/punchlog-backend-go/internal/config"
	appHTTP "github.com/punchlog/punchlog-backend-go/internal/handler/http"
	"github.com/punchlog/punchlog-backend-go/internal/pkg/database"
	"github.com/punchlog/punchlog-backend-go/internal/pkg/jwt"
	"github.com/punchlog/punchlog-backend-go/internal/pkg/oauth"
	"github.com/punchlog/punchlog-backend-go/internal/repository/postgresql"
	attendanceService "github.com/punchlog/punchlog-backend-go/internal/service/attendance"
	authService "github.com/punchlog/punchlog-backend-go/internal/service/auth"
	biometricService "github.com/punchlog/punchlog-backend-go/internal/service/biometric"
	dashboardService "github.com/punchlog/punchlog-backend-go/internal/service/dashboard"
	reportService "github.com/punchlog/punchlog-backend-go/internal/service/report"
	settingsService "github.com/punchlog/punchlog-backend-go/internal/service/settings"
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

	logRepo := postgresql.NewLogRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	logSvc := biometricService.NewLogService(db, logRepo)
	attendanceSvc := attendanceService.NewAttendanceService(logRepo, settingsRepo)
	dashboardSvc := dashboardService.NewDashboardService(logRepo, settingsRepo)
	reportSvc := reportService.NewReportService(logRepo, settingsRepo)
	settingsSvc := settingsService.NewSettingsService(settingsRepo)
	authSvc := authService.NewAuthService(JWTService, GoogleService, cfg.Admin)

	router := appHTTP.NewRouter(JWTService, cfg.App.Env, cfg.App.FrontendURL, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(JWTService, authSvc, GoogleService, cfg.App.FrontendURL),
		Log:        appHTTP.NewLogHandler(logSvc),
		Employee:   appHTTP.NewEmployeeHandler(logSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
		Settings:   appHTTP.NewSettingsHandler(settingsSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
