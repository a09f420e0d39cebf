package activities

import (
	"junkrun/controllers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Register(g *gin.RouterGroup, db *gorm.DB) {
	g.GET("/api/activities", controllers.ListActivities(db))
	g.PATCH("/api/activities/:id/read", controllers.MarkActivityRead(db))
}
