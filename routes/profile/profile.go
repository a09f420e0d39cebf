package profile

import (
	"junkrun/controllers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Register registers protected profile routes on the supplied router group;
// expects the group to already have AuthMiddleware applied
func Register(g *gin.RouterGroup, db *gorm.DB) {
	g.GET("/api/profile", controllers.Profile(db))
	g.PUT("/api/profile", controllers.Profile(db))
}
