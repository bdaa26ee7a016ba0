package leave

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authn, admin gin.HandlerFunc) {
	leaves := r.Group("/leaves")
	leaves.Use(authn)
	{
		leaves.GET("", handler.List)
		leaves.POST("", handler.File)
		leaves.POST("/:id/action", admin, handler.Act)
	}
}
