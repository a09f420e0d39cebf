package controllers

import (
	"net/http"
	"strings"

	"junkrun/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Profile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := currentUserID(c)

		var user models.User
		if err := db.First(&user, uid).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"msg": "User not found"})
			return
		}

		if c.Request.Method == http.MethodGet {
			c.JSON(http.StatusOK, user.Public())
			return
		}

		// PUT
		var body struct {
			Email           string `json:"email"`
			Username        string `json:"username"`
			Password        string `json:"password"`
			FirstName       string `json:"firstName"`
			LastName        string `json:"lastName"`
			Phone           string `json:"phone"`
			HasTruck        *bool  `json:"hasTruck"`
			ProfileImageURL string `json:"profileImageUrl"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid request"})
			return
		}

		newEmail := strings.TrimSpace(strings.ToLower(body.Email))
		if newEmail == "" {
			newEmail = user.Email
		}
		newUsername := strings.TrimSpace(body.Username)
		if newUsername == "" {
			newUsername = user.Username
		}

		// check email uniqueness
		if newEmail != user.Email {
			var t models.User
			if err := db.Where("email = ?", newEmail).First(&t).Error; err == nil {
				c.JSON(http.StatusConflict, gin.H{"msg": "Email already exists"})
				return
			}
		}
		// check username uniqueness
		if newUsername != user.Username {
			var t models.User
			if err := db.Where("username = ?", newUsername).First(&t).Error; err == nil {
				c.JSON(http.StatusConflict, gin.H{"msg": "Username already exists"})
				return
			}
		}

		user.Email = newEmail
		user.Username = newUsername
		if v := strings.TrimSpace(body.FirstName); v != "" {
			user.FirstName = v
		}
		if v := strings.TrimSpace(body.LastName); v != "" {
			user.LastName = v
		}
		if v := strings.TrimSpace(body.Phone); v != "" {
			user.Phone = v
		}
		if body.HasTruck != nil {
			user.HasTruck = *body.HasTruck
		}
		if v := strings.TrimSpace(body.ProfileImageURL); v != "" {
			user.ProfileImageURL = v
		}
		if body.Password != "" {
			if !hasLetter(body.Password) || !hasNumber(body.Password) {
				c.JSON(http.StatusBadRequest, gin.H{"msg": "New password must contain at least one letter and one number"})
				return
			}
			if err := user.SetPassword(body.Password); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"msg": "failed to set password"})
				return
			}
		}
		if err := db.Save(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "failed to update profile"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"msg": "Profile updated successfully"})
	}
}
