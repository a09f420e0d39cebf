package auth

import (
	"junkrun/controllers"
	tokenstore "junkrun/pkg/token"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterPublic registers public auth routes: /api/register, /api/login
func RegisterPublic(r *gin.Engine, db *gorm.DB) {
	r.POST("/api/register", controllers.Register(db))
	r.POST("/api/login", controllers.Login(db))
}

// RegisterProtected registers protected auth routes (e.g. logout)
func RegisterProtected(g *gin.RouterGroup, tokens *tokenstore.Store) {
	g.POST("/api/logout", controllers.Logout(tokens))
}
