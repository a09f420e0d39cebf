package routes

import (
	"net/http"

	"junkrun/middleware"
	"junkrun/pkg/cache"
	"junkrun/pkg/hub"
	"junkrun/pkg/store"
	tokenstore "junkrun/pkg/token"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	activityRoutes "junkrun/routes/activities"
	authRoutes "junkrun/routes/auth"
	chatRoutes "junkrun/routes/chat"
	pickupRoutes "junkrun/routes/pickups"
	profileRoutes "junkrun/routes/profile"
	runRoutes "junkrun/routes/runs"
	siteRoutes "junkrun/routes/sites"
	websocketRoutes "junkrun/routes/websocket"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, h *hub.Hub, messages store.ChatStore, sites *cache.Cache, tokens *tokenstore.Store) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"msg": "junkrun backend running"})
	})

	websocketRoutes.Register(r, h)
	authRoutes.RegisterPublic(r, db)
	siteRoutes.Register(r, db, sites)
	runRoutes.RegisterPublic(r, db, messages)

	protected := r.Group("/")
	protected.Use(middleware.AuthMiddleware(tokens))
	authRoutes.RegisterProtected(protected, tokens)
	profileRoutes.Register(protected, db)
	runRoutes.RegisterProtected(protected, db, messages)
	chatRoutes.Register(protected, db, messages)
	pickupRoutes.Register(protected, db)
	activityRoutes.Register(protected, db)
}
