package training

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authn, admin gin.HandlerFunc) {
	trainings := r.Group("/trainings")
	trainings.Use(authn)
	{
		trainings.GET("", handler.List)
		trainings.POST("", admin, handler.Create)
		trainings.DELETE("/:id", admin, handler.Delete)
	}
}
