package controllers

import (
	"net/http"
	"strings"
	"time"

	"junkrun/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func CreatePickupRequest(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := currentUserID(c)

		var body struct {
			Address             string    `json:"address"`
			Date                time.Time `json:"date"`
			TimeSlot            string    `json:"timeSlot"`
			ItemSize            string    `json:"itemSize"`
			ItemDescription     string    `json:"itemDescription"`
			SpecialInstructions string    `json:"specialInstructions"`
			EstimatedPrice      int       `json:"estimatedPrice"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid request"})
			return
		}
		if strings.TrimSpace(body.Address) == "" || body.Date.IsZero() || body.TimeSlot == "" || body.ItemSize == "" {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Address, date, time slot and item size are required"})
			return
		}

		request := models.PickupRequest{
			UserID:              uid,
			Address:             strings.TrimSpace(body.Address),
			Date:                body.Date,
			TimeSlot:            body.TimeSlot,
			ItemSize:            body.ItemSize,
			ItemDescription:     body.ItemDescription,
			SpecialInstructions: body.SpecialInstructions,
			Status:              "pending",
			EstimatedPrice:      body.EstimatedPrice,
		}
		if err := db.Create(&request).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to create pickup request"})
			return
		}
		c.JSON(http.StatusCreated, request)
	}
}

func ListPickupRequests(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := currentUserID(c)
		var requests []models.PickupRequest
		if err := db.Where("user_id = ?", uid).Order("created_at DESC, id DESC").Find(&requests).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to fetch pickup requests"})
			return
		}
		c.JSON(http.StatusOK, requests)
	}
}
