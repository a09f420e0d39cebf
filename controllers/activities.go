package controllers

import (
	"net/http"

	"junkrun/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ListActivities(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := currentUserID(c)
		var activities []models.Activity
		if err := db.Where("user_id = ?", uid).Order("created_at DESC, id DESC").Find(&activities).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to fetch activities"})
			return
		}
		c.JSON(http.StatusOK, activities)
	}
}

// MarkActivityRead flags one of the caller's own feed entries as read.
func MarkActivityRead(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := currentUserID(c)
		id, ok := pathID(c, "id")
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid activity id"})
			return
		}

		var activity models.Activity
		if err := db.First(&activity, id).Error; err != nil || activity.UserID != uid {
			c.JSON(http.StatusForbidden, gin.H{"msg": "Not authorized to update this activity"})
			return
		}

		activity.IsRead = true
		if err := db.Save(&activity).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to mark activity as read"})
			return
		}
		c.JSON(http.StatusOK, activity)
	}
}
