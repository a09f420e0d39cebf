package websocket

import (
	"junkrun/controllers"
	"junkrun/middleware"
	"junkrun/pkg/hub"

	"github.com/gin-gonic/gin"
)

func Register(r *gin.Engine, h *hub.Hub) {
	r.GET("/ws", middleware.RateLimit(), controllers.ChatWS(h))
}
