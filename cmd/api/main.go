package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/avis-hq/avis-backend-go/internal/config"
	appHTTP "github.com/avis-hq/avis-backend-go/internal/handler/http"
	"github.com/avis-hq/avis-backend-go/internal/pkg/database"
	"github.com/avis-hq/avis-backend-go/internal/pkg/jwt"
	"github.com/avis-hq/avis-backend-go/internal/repository/postgresql"
	attendanceService "github.com/avis-hq/avis-backend-go/internal/service/attendance"
	authService "github.com/avis-hq/avis-backend-go/internal/service/auth"
	dashboardService "github.com/avis-hq/avis-backend-go/internal/service/dashboard"
	leaveService "github.com/avis-hq/avis-backend-go/internal/service/leave"
	taskService "github.com/avis-hq/avis-backend-go/internal/service/task"
	userService "github.com/avis-hq/avis-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	if err := database.Migrate(dsn, "migrations"); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRequestRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiration)

	authSvc := authService.NewAuthService(db, userRepo, jwtSvc)
	userSvc := userService.NewUserService(userRepo)
	taskSvc := taskService.NewTaskService(taskRepo, userRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, userRepo, cfg.Leave)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo)

	router := appHTTP.NewRouter(cfg, jwtSvc, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		User:       appHTTP.NewUserHandler(userSvc),
		Task:       appHTTP.NewTaskHandler(taskSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server stopped: ", err)
	}
}
