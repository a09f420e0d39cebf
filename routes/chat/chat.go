package chat

import (
	"junkrun/controllers"
	"junkrun/middleware"
	"junkrun/pkg/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Register registers chat message routes (protected).
func Register(g *gin.RouterGroup, db *gorm.DB, messages store.ChatStore) {
	g.GET("/api/dump-runs/:id/messages", controllers.ListMessages(messages))
	// rate limit durable writes
	g.POST("/api/dump-runs/:id/messages", middleware.RateLimit(), controllers.CreateMessage(db, messages))
}
