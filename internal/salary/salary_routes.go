package salary

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authn, admin gin.HandlerFunc) {
	salaries := r.Group("/salary")
	salaries.Use(authn, admin)
	{
		salaries.GET("/:id", handler.Get)
		salaries.POST("/:id", handler.Set)
	}
}
