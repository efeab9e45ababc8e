// File: handlers/bundle.go
package handlers

import (
	"backmoney/database/repository"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct so route
// registration only needs a single value. The repositories are carried
// alongside because the middleware needs them.
type HandlerBundle struct {
	UserRepo   repository.UserRepository
	TenantRepo repository.TenantRepository

	// Auth endpoints
	RegisterUserHandler     gin.HandlerFunc
	AuthenticateUserHandler gin.HandlerFunc
	GetCurrentUserHandler   gin.HandlerFunc
	RevokeTokenHandler      gin.HandlerFunc

	// Employee endpoints
	CreateEmployeeHandler     gin.HandlerFunc
	GetEmployeeHandler        gin.HandlerFunc
	ListEmployeesHandler      gin.HandlerFunc
	UpdateEmployeeHandler     gin.HandlerFunc
	DeleteEmployeeHandler     gin.HandlerFunc
	SetupWorkingHoursHandler  gin.HandlerFunc
	GetWorkingHoursHandler    gin.HandlerFunc
	ImportAvailabilityHandler gin.HandlerFunc

	// Client endpoints
	CreateClientHandler gin.HandlerFunc
	GetClientHandler    gin.HandlerFunc
	ListClientsHandler  gin.HandlerFunc
	DeleteClientHandler gin.HandlerFunc

	// Appointment endpoints
	BookAppointmentHandler         gin.HandlerFunc
	GetAppointmentHandler          gin.HandlerFunc
	ListAppointmentsByDateHandler  gin.HandlerFunc
	ListClientAppointmentsHandler  gin.HandlerFunc
	UpdateAppointmentStatusHandler gin.HandlerFunc
	CancelAppointmentHandler       gin.HandlerFunc

	// Catalog endpoints
	SaveServiceHandler  gin.HandlerFunc
	ListServicesHandler gin.HandlerFunc
	SaveProductHandler  gin.HandlerFunc
	ListProductsHandler gin.HandlerFunc

	// Order endpoints
	PlaceOrderHandler        gin.HandlerFunc
	GetOrderHandler          gin.HandlerFunc
	ListOrdersHandler        gin.HandlerFunc
	UpdateOrderStatusHandler gin.HandlerFunc
}
