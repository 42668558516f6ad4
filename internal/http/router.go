package api

import (
	"log"
	stdhttp "net/http"

	intconfig "carrental/internal/config"
	h "carrental/internal/http/handlers"
	"carrental/internal/http/middleware"
	"carrental/internal/repositories"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.Configure(env)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	auth := middleware.RequireAuth([]byte(env.JWTSecret), repositories.UserRepository{})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		// Auth
		authGroup := api.Group("/auth")
		authGroup.POST("/login", h.Login)
		authGroup.POST("/register", h.Register)
		authGroup.GET("/me", auth, h.Me)

		// Catalog (public reads)
		cars := api.Group("/cars")
		cars.GET("", h.GetCars)
		cars.GET("/:id", h.GetCarByID)

		// Driver roster
		drivers := api.Group("/drivers", auth)
		drivers.GET("", h.GetDrivers)
		drivers.GET("/assign", h.AssignDriver)

		// Bookings (renter side)
		bookings := api.Group("/bookings", auth)
		bookings.POST("/create", h.CreateBooking)
		bookings.GET("/my", h.GetMyBookings)
		bookings.GET("/:id/receipt", h.GetBookingReceipt)

		// Owner surface
		owner := api.Group("/owner", auth)
		owner.POST("/change-role", h.ChangeRoleToOwner)

		ownerOnly := owner.Group("", middleware.RequireRoles("owner"))
		ownerOnly.GET("/dashboard", h.GetDashboard)
		ownerOnly.GET("/bookings", h.GetOwnerBookings)
		ownerOnly.PUT("/bookings/:id/status", h.UpdateBookingStatus)
		ownerOnly.GET("/cars", h.GetOwnerCars)
		ownerOnly.POST("/cars", h.CreateCar)
		ownerOnly.DELETE("/cars/:id", h.DeleteCar)
	}

	h.SetRouter(r)

	return r
}
