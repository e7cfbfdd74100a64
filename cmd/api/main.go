package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/hrcore/leave-backend-go/internal/config"
	appHTTP "github.com/hrcore/leave-backend-go/internal/handler/http"
	"github.com/hrcore/leave-backend-go/internal/pkg/cron"
	"github.com/hrcore/leave-backend-go/internal/pkg/crypto"
	"github.com/hrcore/leave-backend-go/internal/pkg/database"
	"github.com/hrcore/leave-backend-go/internal/pkg/jwt"
	"github.com/hrcore/leave-backend-go/internal/repository/postgresql"
	authService "github.com/hrcore/leave-backend-go/internal/service/auth"
	clientService "github.com/hrcore/leave-backend-go/internal/service/client"
	employeeService "github.com/hrcore/leave-backend-go/internal/service/employee"
	holidayService "github.com/hrcore/leave-backend-go/internal/service/holiday"
	"github.com/hrcore/leave-backend-go/internal/service/leave"
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
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	clientRepo := postgresql.NewClientRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	cryptoService := crypto.New(cfg.Crypto.DataEncryptionKey)

	calendar := leave.NewCalendar(holidayRepo, cfg.Leave.WeekendDays)
	requestSvc := leave.NewRequestService(db, leaveRepo, employeeRepo, calendar)
	accrualSvc := leave.NewAccrualService(db, employeeRepo, cfg.Leave)
	authSvc := authService.NewAuthService(userRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)
	clientSvc := clientService.NewClientService(clientRepo, cryptoService)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	leaveHandler := appHTTP.NewLeaveHandler(requestSvc, employeeSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)
	clientHandler := appHTTP.NewClientHandler(clientSvc)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		employeeHandler,
		leaveHandler,
		holidayHandler,
		clientHandler,
	)

	scheduler := cron.NewScheduler()
	cron.NewAccrualJobs(accrualSvc, cfg.Leave).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{Addr: port, Handler: router}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("Shutting down...")
	_ = server.Close()
}
