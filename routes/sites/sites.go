package sites

import (
	"junkrun/controllers"
	"junkrun/pkg/cache"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Register(r *gin.Engine, db *gorm.DB, sites *cache.Cache) {
	r.GET("/api/dump-sites", controllers.ListDumpSites(db, sites))
}
