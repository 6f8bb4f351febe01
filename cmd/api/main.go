package main

import (
	"fmt"
	"net/http"

	"github.com/synthbit-group/attendance-backend-go/internal/config"
	appHTTP "github.com/synthbit-group/attendance-backend-go/internal/handler/http"
	"github.com/synthbit-group/attendance-backend-go/internal/pkg/clock"
	"github.com/synthbit-group/attendance-backend-go/internal/pkg/cron"
	"github.com/synthbit-group/attendance-backend-go/internal/pkg/database"
	"github.com/synthbit-group/attendance-backend-go/internal/pkg/geo"
	"github.com/synthbit-group/attendance-backend-go/internal/pkg/jwt"
	"github.com/synthbit-group/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/synthbit-group/attendance-backend-go/internal/service/attendance"
	authService "github.com/synthbit-group/attendance-backend-go/internal/service/auth"
	employeeService "github.com/synthbit-group/attendance-backend-go/internal/service/employee"
	reportService "github.com/synthbit-group/attendance-backend-go/internal/service/report"
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

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	userRepo := postgresql.NewUserRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	officeClock := clock.New(cfg.Attendance.Location)
	geoValidator := geo.NewValidator(
		geo.Point{Lat: cfg.Office.Latitude, Lng: cfg.Office.Longitude},
		cfg.Office.RadiusMeters,
	)

	attendanceSvc := attendanceService.NewAttendanceService(
		attendanceRepo,
		employeeRepo,
		geoValidator,
		officeClock,
		cfg.Attendance.HalfDayThreshold,
	)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	reportSvc := reportService.NewReportService(attendanceRepo, employeeRepo)
	authSvc := authService.NewAuthService(userRepo, JWTService)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceRepo, officeClock).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	authHandler := appHTTP.NewAuthHandler(authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	qrCodeHandler := appHTTP.NewQRCodeHandler(cfg.Attendance.AttendancePageURL)

	router := appHTTP.NewRouter(
		JWTService,
		cfg.App.Env,
		cfg.App.FrontendURL,
		authHandler,
		attendanceHandler,
		employeeHandler,
		reportHandler,
		qrCodeHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
