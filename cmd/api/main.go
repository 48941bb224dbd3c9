package main

import (
	"fmt"
	"net/http"

	"github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/config"
	appHTTP "github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/handler/http"
	"github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/pkg/database"
	"github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/pkg/identity"
	"github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/pkg/jwt"
	"github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/repository/postgresql"
	attendanceService "github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/service/attendance"
	authService "github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/service/auth"
	dashboardService "github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/service/dashboard"
	departmentService "github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/service/department"
	employeeService "github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/service/employee"
	leaveService "github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/service/leave"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: int32(cfg.Database.MaxConns),
		MinConns: int32(cfg.Database.MinConns),
	})
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var provider identity.Provider
	if cfg.Identity.Enabled() {
		provider = identity.NewProvider(cfg.Identity.URL, cfg.Identity.APIKey)
	}

	authSvc := authService.NewAuthService(db, provider, jwtService, jwtRepo, userRepo)
	departmentSvc := departmentService.NewDepartmentService(departmentRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, departmentRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, employeeRepo)

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(jwtService, authSvc),
		Department: appHTTP.NewDepartmentHandler(departmentSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
