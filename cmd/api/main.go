package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/httplog/v3"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/config"
	appHTTP "github.com/shiftdesk/shiftdesk-backend-go/internal/handler/http"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/cron"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/database"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/jwt"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/sse"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/repository/postgresql"
	attendanceService "github.com/shiftdesk/shiftdesk-backend-go/internal/service/attendance"
	authService "github.com/shiftdesk/shiftdesk-backend-go/internal/service/auth"
	dashboardService "github.com/shiftdesk/shiftdesk-backend-go/internal/service/dashboard"
	employeeService "github.com/shiftdesk/shiftdesk-backend-go/internal/service/employee"
	leaveService "github.com/shiftdesk/shiftdesk-backend-go/internal/service/leave"
	notificationService "github.com/shiftdesk/shiftdesk-backend-go/internal/service/notification"
	shiftService "github.com/shiftdesk/shiftdesk-backend-go/internal/service/shift"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logFormat := httplog.SchemaECS.Concise(cfg.App.Env == "development")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "shiftdesk"),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	hub := sse.NewHub()
	sink := notificationService.NewNotificationService(hub, logger)

	shiftSvc := shiftService.NewShiftService(db, shiftRepo, employeeRepo)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, shiftRepo, sink)
	authSvc := authService.NewAuthService(db, employeeRepo, employeeSvc, jwtService)
	leaveSvc := leaveService.NewLeaveService(db, leaveRepo, employeeRepo, sink)
	dashboardSvc := dashboardService.NewDashboardService(db, employeeRepo, shiftRepo, leaveRepo, attendanceRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, employeeRepo, sink)

	scheduler := cron.NewScheduler(logger)
	cron.NewStatusJobs(dashboardSvc, employeeRepo, logger).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(jwtService, logger, []string{cfg.App.FrontendURL}, appHTTP.Handlers{
		Auth:      appHTTP.NewAuthHandler(authSvc),
		Employee:  appHTTP.NewEmployeeHandler(employeeSvc, dashboardSvc, attendanceSvc),
		Shift:     appHTTP.NewShiftHandler(shiftSvc, employeeRepo),
		Leave:     appHTTP.NewLeaveHandler(leaveSvc),
		Dashboard: appHTTP.NewDashboardHandler(dashboardSvc),
		Events:    appHTTP.NewEventsHandler(hub, jwtService),
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("server listening", "addr", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
