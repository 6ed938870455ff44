package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/clubops/clubops-backend-go/internal/config"
	appHTTP "github.com/clubops/clubops-backend-go/internal/handler/http"
	"github.com/clubops/clubops-backend-go/internal/pkg/cron"
	"github.com/clubops/clubops-backend-go/internal/pkg/database"
	"github.com/clubops/clubops-backend-go/internal/pkg/jwt"
	"github.com/clubops/clubops-backend-go/internal/pkg/oauth"
	"github.com/clubops/clubops-backend-go/internal/repository/postgresql"
	authService "github.com/clubops/clubops-backend-go/internal/service/auth"
	clubService "github.com/clubops/clubops-backend-go/internal/service/club"
	compensationService "github.com/clubops/clubops-backend-go/internal/service/compensation"
	employeeService "github.com/clubops/clubops-backend-go/internal/service/employee"
	maintenanceService "github.com/clubops/clubops-backend-go/internal/service/maintenance"
	shiftService "github.com/clubops/clubops-backend-go/internal/service/shift"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	clubRepo := postgresql.NewClubRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	schemeRepo := postgresql.NewSchemeRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	taskRepo := postgresql.NewMaintenanceTaskRepository(db)
	kpiConfigRepo := postgresql.NewKPIConfigRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	var googleSvc oauth.GoogleService
	if cfg.OAuth2Google.ClientID != "" {
		googleSvc = oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	}

	salaryCalculator := compensationService.NewSalaryCalculator()
	kpiCalculator := maintenanceService.NewKPICalculator()

	authSvc := authService.NewAuthService(db, userRepo, clubRepo, refreshTokenRepo, jwtSvc)
	clubSvc := clubService.NewClubService(clubRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, schemeRepo)
	schemeSvc := compensationService.NewSchemeService(schemeRepo, salaryCalculator)
	shiftSvc := shiftService.NewShiftService(db, shiftRepo, employeeRepo, schemeRepo, salaryCalculator)
	maintenanceSvc := maintenanceService.NewMaintenanceService(db, taskRepo, kpiConfigRepo, employeeRepo, kpiCalculator)

	authHandler := appHTTP.NewAuthHandler(jwtSvc, authSvc, googleSvc, cfg.App.FrontendURL)
	clubHandler := appHTTP.NewClubHandler(clubSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	compensationHandler := appHTTP.NewCompensationHandler(schemeSvc)
	shiftHandler := appHTTP.NewShiftHandler(shiftSvc)
	maintenanceHandler := appHTTP.NewMaintenanceHandler(maintenanceSvc)

	scheduler := cron.NewScheduler()
	scheduler.AddJob("maintenance-roll-forward", 24*time.Hour, func(ctx context.Context) error {
		created, err := maintenanceSvc.RollForwardRecurring(ctx)
		if err != nil {
			return err
		}
		if created > 0 {
			slog.Info("Recurring maintenance tasks rolled forward", "created", created)
		}
		return nil
	})
	scheduler.AddJob("refresh-token-cleanup", time.Hour, func(ctx context.Context) error {
		deleted, err := refreshTokenRepo.DeleteExpired(ctx)
		if err != nil {
			return err
		}
		if deleted > 0 {
			slog.Info("Expired refresh tokens deleted", "deleted", deleted)
		}
		return nil
	})
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		jwtSvc,
		authHandler,
		clubHandler,
		employeeHandler,
		compensationHandler,
		shiftHandler,
		maintenanceHandler,
		[]string{cfg.App.FrontendURL},
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
