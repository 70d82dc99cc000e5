package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/staymarket-dev/staymarket/db"
	"github.com/staymarket-dev/staymarket/internal/catalog"
	"github.com/staymarket-dev/staymarket/internal/config"
	"github.com/staymarket-dev/staymarket/internal/handlers"
	"github.com/staymarket-dev/staymarket/internal/middleware"
	"github.com/staymarket-dev/staymarket/internal/store"
	"github.com/staymarket-dev/staymarket/internal/types"
)

// NewRouter wires the route table. Paths mirror the original site: public
// catalog reads, session-gated booking and dashboard, owner-gated listing
// management.
func NewRouter(cfg *config.Config) *gin.Engine {
	h := handlers.New(store.New(db.DB), catalog.NewCache(), cfg.Domain)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", h.HealthCheck)

	r.GET("/", h.ListProperties)
	r.GET("/property/:id", h.GetProperty)

	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)

	authed := r.Group("", middleware.AuthMiddleware())
	{
		authed.GET("/me", h.Me)
		authed.GET("/dashboard", h.Dashboard)
		authed.POST("/book/:id", h.CreateBooking)

		owner := authed.Group("", middleware.RequireOwner())
		{
			owner.POST("/add_property", h.CreateProperty)
			owner.GET("/edit_property/:id", h.EditProperty)
			owner.POST("/edit_property/:id", h.UpdateProperty)
			owner.POST("/delete_property/:id", h.DeleteProperty)
		}
	}

	return r
}
