package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/attendly/attendly-backend-go/internal/config"
	appHTTP "github.com/attendly/attendly-backend-go/internal/handler/http"
	"github.com/attendly/attendly-backend-go/internal/pkg/cron"
	"github.com/attendly/attendly-backend-go/internal/pkg/database"
	"github.com/attendly/attendly-backend-go/internal/pkg/jwt"
	"github.com/attendly/attendly-backend-go/internal/pkg/sse"
	"github.com/attendly/attendly-backend-go/internal/repository/postgresql"
	attendanceService "github.com/attendly/attendly-backend-go/internal/service/attendance"
	employeeService "github.com/attendly/attendly-backend-go/internal/service/employee"
	leaveService "github.com/attendly/attendly-backend-go/internal/service/leave"
	notificationService "github.com/attendly/attendly-backend-go/internal/service/notification"
	policyService "github.com/attendly/attendly-backend-go/internal/service/policy"
	statsService "github.com/attendly/attendly-backend-go/internal/service/stats"
	verificationService "github.com/attendly/attendly-backend-go/internal/service/verification"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	policyRepo := postgresql.NewPolicyRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	attemptRepo := postgresql.NewAttemptRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret)
	hub := sse.NewHub()

	policySvc := policyService.NewPolicyService(policyRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, policyRepo)
	notificationSvc := notificationService.NewNotificationService(notificationRepo, hub)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo, employeeRepo, notificationSvc)
	statsSvc := statsService.NewStatsService(attendanceRepo, leaveRequestRepo, employeeRepo, policyRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	verificationSvc := verificationService.NewVerificationService(attemptRepo, employeeRepo, notificationSvc, policyRepo)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceRepo, policyRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc, jwtService),
		Leave:        appHTTP.NewLeaveHandler(leaveSvc, jwtService),
		Policy:       appHTTP.NewPolicyHandler(policySvc),
		Stats:        appHTTP.NewStatsHandler(statsSvc, jwtService),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		Verification: appHTTP.NewVerificationHandler(verificationSvc, jwtService),
		Notification: appHTTP.NewNotificationHandler(notificationSvc, hub),
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
