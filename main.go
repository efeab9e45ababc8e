// File: main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"backmoney/config"
	"backmoney/cron"
	"backmoney/database"
	"backmoney/database/repository"
	appointmentRepoPkg "backmoney/database/repository/appointment"
	employeeRepoPkg "backmoney/database/repository/employee"
	"backmoney/handlers"
	"backmoney/routes"
	apptsvc "backmoney/services/appointment"
	catalogsvc "backmoney/services/catalog"
	empsvc "backmoney/services/employee"
	ordersvc "backmoney/services/order"
	usersvc "backmoney/services/user"
	"backmoney/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	tenantRepo := repository.NewMongoTenantRepo()
	userRepo := repository.NewMongoUserRepo()
	clientRepo := repository.NewMongoClientRepo()
	catalogRepo := repository.NewMongoCatalogRepo()
	orderRepo := repository.NewMongoOrderRepo()
	employeeRepo := employeeRepoPkg.NewMongoEmployeeRepo()
	appointmentRepo := appointmentRepoPkg.NewMongoAppointmentRepo()

	// services.
	userService := &usersvc.DefaultUserService{Repo: userRepo}
	employeeService := &empsvc.DefaultEmployeeService{Repo: employeeRepo}
	catalogService := &catalogsvc.DefaultCatalogService{Repo: catalogRepo}
	orderService := &ordersvc.DefaultOrderService{
		Repo:    orderRepo,
		Catalog: catalogRepo,
		Clients: clientRepo,
	}
	appointmentService := &apptsvc.DefaultAppointmentService{
		Repo:     appointmentRepo,
		Employee: employeeService,
		Catalog:  catalogRepo,
	}

	// Reminder queue: background worker plus the enqueue side used by the
	// booking handler.
	cron.InitReminderWorker()
	reminderScheduler := cron.NewReminderScheduler()
	defer reminderScheduler.Close()

	// handlers.
	authHandler := &handlers.AuthHandler{Service: userService}
	employeeHandler := &handlers.EmployeeHandler{Service: employeeService}
	clientHandler := &handlers.ClientHandler{Repo: clientRepo}
	catalogHandler := &handlers.CatalogHandler{Service: catalogService}
	orderHandler := &handlers.OrderHandler{Service: orderService}
	appointmentHandler := &handlers.AppointmentHandler{
		Service:   appointmentService,
		Reminders: reminderScheduler,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo:   userRepo,
		TenantRepo: tenantRepo,

		// Auth endpoints.
		RegisterUserHandler:     authHandler.RegisterUserHandler,
		AuthenticateUserHandler: authHandler.AuthenticateUserHandler,
		GetCurrentUserHandler:   authHandler.GetCurrentUserHandler,
		RevokeTokenHandler:      authHandler.RevokeTokenHandler,

		// Employee endpoints.
		CreateEmployeeHandler:     employeeHandler.CreateEmployeeHandler,
		GetEmployeeHandler:        employeeHandler.GetEmployeeHandler,
		ListEmployeesHandler:      employeeHandler.ListEmployeesHandler,
		UpdateEmployeeHandler:     employeeHandler.UpdateEmployeeHandler,
		DeleteEmployeeHandler:     employeeHandler.DeleteEmployeeHandler,
		SetupWorkingHoursHandler:  employeeHandler.SetupWorkingHoursHandler,
		GetWorkingHoursHandler:    employeeHandler.GetWorkingHoursHandler,
		ImportAvailabilityHandler: employeeHandler.ImportAvailabilityHandler,

		// Client endpoints.
		CreateClientHandler: clientHandler.CreateClientHandler,
		GetClientHandler:    clientHandler.GetClientHandler,
		ListClientsHandler:  clientHandler.ListClientsHandler,
		DeleteClientHandler: clientHandler.DeleteClientHandler,

		// Appointment endpoints.
		BookAppointmentHandler:         appointmentHandler.BookAppointmentHandler,
		GetAppointmentHandler:          appointmentHandler.GetAppointmentHandler,
		ListAppointmentsByDateHandler:  appointmentHandler.ListAppointmentsByDateHandler,
		ListClientAppointmentsHandler:  appointmentHandler.ListClientAppointmentsHandler,
		UpdateAppointmentStatusHandler: appointmentHandler.UpdateAppointmentStatusHandler,
		CancelAppointmentHandler:       appointmentHandler.CancelAppointmentHandler,

		// Catalog endpoints.
		SaveServiceHandler:  catalogHandler.SaveServiceHandler,
		ListServicesHandler: catalogHandler.ListServicesHandler,
		SaveProductHandler:  catalogHandler.SaveProductHandler,
		ListProductsHandler: catalogHandler.ListProductsHandler,

		// Order endpoints.
		PlaceOrderHandler:        orderHandler.PlaceOrderHandler,
		GetOrderHandler:          orderHandler.GetOrderHandler,
		ListOrdersHandler:        orderHandler.ListOrdersHandler,
		UpdateOrderStatusHandler: orderHandler.UpdateOrderStatusHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
