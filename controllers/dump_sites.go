package controllers

import (
	"net/http"
	"time"

	"junkrun/models"
	"junkrun/pkg/cache"
	"junkrun/pkg/config"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const dumpSitesCacheKey = "dump-sites:all"

// ListDumpSites serves the disposal site directory. The listing changes only
// at seed time, so it is cached with a TTL.
func ListDumpSites(db *gorm.DB, sites *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		if v, ok := sites.Get(dumpSitesCacheKey); ok {
			c.JSON(http.StatusOK, v)
			return
		}

		var all []models.DumpSite
		if err := db.Order("id ASC").Find(&all).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to fetch dump sites"})
			return
		}
		sites.Set(dumpSitesCacheKey, all, time.Duration(config.DumpSiteCacheTTLSeconds)*time.Second)
		c.JSON(http.StatusOK, all)
	}
}
