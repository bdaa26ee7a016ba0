package employee

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authn, admin, employeeOnly gin.HandlerFunc) {
	employees := r.Group("/employees")
	employees.Use(authn, admin)
	{
		employees.GET("", handler.List)
		employees.POST("", handler.Create)
		employees.PUT("/:id", handler.Update)
		employees.DELETE("/:id", handler.Delete)
	}

	me := r.Group("/me")
	me.Use(authn, employeeOnly)
	{
		me.GET("/employee", handler.Profile)
	}
}
