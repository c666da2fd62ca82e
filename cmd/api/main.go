package main

import (
	"fmt"
	"net/http"

	"github.com/clockwork-hr/worktime-backend-go/internal/config"
	appHTTP "github.com/clockwork-hr/worktime-backend-go/internal/handler/http"
	"github.com/clockwork-hr/worktime-backend-go/internal/pkg/database"
	"github.com/clockwork-hr/worktime-backend-go/internal/pkg/jwt"
	"github.com/clockwork-hr/worktime-backend-go/internal/repository/postgresql"
	analyticsService "github.com/clockwork-hr/worktime-backend-go/internal/service/analytics"
	attendanceService "github.com/clockwork-hr/worktime-backend-go/internal/service/attendance"
	authService "github.com/clockwork-hr/worktime-backend-go/internal/service/auth"
	leaveService "github.com/clockwork-hr/worktime-backend-go/internal/service/leave"
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

	employeeRepo := postgresql.NewEmployeeRepository(db)
	sessionRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(db, employeeRepo, jwtService, refreshTokenRepo)
	sessionSvc := attendanceService.NewSessionService(sessionRepo)
	leaveSvc := leaveService.NewLeaveService(db, leaveRequestRepo, employeeRepo)
	analyticsSvc := analyticsService.NewAnalyticsService(sessionRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtService)
	attendanceHandler := appHTTP.NewAttendanceHandler(sessionSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	analyticsHandler := appHTTP.NewAnalyticsHandler(analyticsSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		attendanceHandler,
		leaveHandler,
		analyticsHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
