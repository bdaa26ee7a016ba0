package auth

import (
	"time"

	"hr-admin/internal/middleware"
	"hr-admin/internal/session"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RegisterRoutes mounts the auth endpoints directly on the API group so
// login and registration are reachable without a session.
func RegisterRoutes(api *gin.RouterGroup, handler *Handler, sessions session.Store) {
	api.POST("/register", handler.Register)
	api.POST("/login", middleware.RateLimitByIP(rate.Every(time.Second), 10), handler.Login)
	api.POST("/logout", middleware.SessionAuth(sessions), handler.Logout)
	api.GET("/whoami", middleware.OptionalSessionAuth(sessions), handler.Whoami)
}
