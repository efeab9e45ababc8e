// File: routes/routes.go
package routes

import (
	"net/http"
	"time"

	"backmoney/handlers"
	"backmoney/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires middleware and all endpoint groups onto the engine.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Tenant-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)

	// Every business route runs behind tenant resolution.
	api := r.Group("/api", middleware.TenantMiddleware(hb.TenantRepo))

	RegisterAuthRoutes(api, hb)
	RegisterEmployeeRoutes(api, hb)
	RegisterClientRoutes(api, hb)
	RegisterAppointmentRoutes(api, hb)
	RegisterCatalogRoutes(api, hb)
	RegisterOrderRoutes(api, hb)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "backmoney up"})
	})
}

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", hb.RegisterUserHandler)
		auth.POST("/login", hb.AuthenticateUserHandler)

		// Protected routes (require authentication)
		auth.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		auth.GET("/me", hb.GetCurrentUserHandler)
		auth.DELETE("/revoke", hb.RevokeTokenHandler)
	}
}

// RegisterEmployeeRoutes registers employee management and working-hours
// endpoints.
func RegisterEmployeeRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	emp := api.Group("/employees")
	{
		emp.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		emp.POST("", hb.CreateEmployeeHandler)
		emp.GET("", hb.ListEmployeesHandler)
		emp.GET("/:id", hb.GetEmployeeHandler)
		emp.PATCH("/:id", hb.UpdateEmployeeHandler)
		emp.DELETE("/:id", middleware.RequireAdmin(), hb.DeleteEmployeeHandler)

		emp.GET("/:id/working-hours", hb.GetWorkingHoursHandler)
		emp.PUT("/:id/working-hours", hb.SetupWorkingHoursHandler)
		emp.POST("/:id/working-hours/import", hb.ImportAvailabilityHandler)
	}
}

// RegisterClientRoutes registers customer record endpoints.
func RegisterClientRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	cl := api.Group("/clients")
	{
		cl.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		cl.POST("", hb.CreateClientHandler)
		cl.GET("", hb.ListClientsHandler)
		cl.GET("/:id", hb.GetClientHandler)
		cl.GET("/:id/appointments", hb.ListClientAppointmentsHandler)
		cl.DELETE("/:id", hb.DeleteClientHandler)
	}
}

// RegisterAppointmentRoutes registers booking endpoints.
func RegisterAppointmentRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	appt := api.Group("/appointments")
	{
		appt.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		appt.POST("", hb.BookAppointmentHandler)
		appt.GET("", hb.ListAppointmentsByDateHandler)
		appt.GET("/:id", hb.GetAppointmentHandler)
		appt.PUT("/:id/status", hb.UpdateAppointmentStatusHandler)
		appt.DELETE("/:id", hb.CancelAppointmentHandler)
	}
}

// RegisterCatalogRoutes registers service and product catalog endpoints.
func RegisterCatalogRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	cat := api.Group("/catalog")
	{
		// Reads are open to any resolved tenant; writes require a login.
		cat.GET("/services", hb.ListServicesHandler)
		cat.GET("/products", hb.ListProductsHandler)

		cat.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		cat.PUT("/services", hb.SaveServiceHandler)
		cat.PUT("/products", hb.SaveProductHandler)
	}
}

// RegisterOrderRoutes registers e-commerce order endpoints.
func RegisterOrderRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	ord := api.Group("/orders")
	{
		ord.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		ord.POST("", hb.PlaceOrderHandler)
		ord.GET("", hb.ListOrdersHandler)
		ord.GET("/:id", hb.GetOrderHandler)
		ord.PUT("/:id/status", hb.UpdateOrderStatusHandler)
	}
}
