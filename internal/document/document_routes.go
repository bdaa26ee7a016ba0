package document

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authn, admin, employeeOnly gin.HandlerFunc) {
	me := r.Group("/me")
	me.Use(authn, employeeOnly)
	{
		me.GET("/documents", handler.ListOwn)
		me.POST("/upload", handler.Upload)
	}

	employees := r.Group("/employees")
	employees.Use(authn, admin)
	{
		employees.GET("/:id/documents", handler.ListForEmployee)
	}
}
