package controllers

import (
	"net/http"

	"junkrun/models"
	"junkrun/pkg/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ListMessages returns a run's chat history, oldest first.
func ListMessages(messages store.ChatStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		runID, ok := pathID(c, "id")
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid dump run id"})
			return
		}
		history, err := messages.History(runID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to fetch chat messages"})
			return
		}
		c.JSON(http.StatusOK, history)
	}
}

// CreateMessage is the durable write path for chat: it appends to the run's
// thread and returns the stored record. The websocket relay does not wait on
// this; clients that also push over the socket get at-least-once delivery.
func CreateMessage(db *gorm.DB, messages store.ChatStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := currentUserID(c)
		runID, ok := pathID(c, "id")
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid dump run id"})
			return
		}

		var run models.DumpRun
		if err := db.First(&run, runID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Dump run not found"})
			return
		}

		var body struct {
			Message string `json:"message"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "message is required"})
			return
		}

		msg, err := messages.Append(runID, uid, body.Message)
		if err == store.ErrEmptyMessage {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "message is required"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to create chat message"})
			return
		}
		c.JSON(http.StatusCreated, msg)
	}
}
