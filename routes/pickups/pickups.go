package pickups

import (
	"junkrun/controllers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Register(g *gin.RouterGroup, db *gorm.DB) {
	g.POST("/api/pickup-requests", controllers.CreatePickupRequest(db))
	g.GET("/api/pickup-requests", controllers.ListPickupRequests(db))
}
