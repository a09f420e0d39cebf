package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"junkrun/models"
	"junkrun/pkg/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ListDumpRuns returns all runs, newest first.
func ListDumpRuns(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var runs []models.DumpRun
		if err := db.Order("created_at DESC, id DESC").Find(&runs).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to fetch dump runs"})
			return
		}
		c.JSON(http.StatusOK, runs)
	}
}

// GetDumpRun returns one run with organizer, participants, site and messages.
func GetDumpRun(db *gorm.DB, messages store.ChatStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid dump run id"})
			return
		}
		details, err := dumpRunDetails(db, messages, id)
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Dump run not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to fetch dump run"})
			return
		}
		c.JSON(http.StatusOK, details)
	}
}

func CreateDumpRun(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := currentUserID(c)

		var body struct {
			Title           string    `json:"title"`
			Location        string    `json:"location"`
			Description     string    `json:"description"`
			Date            time.Time `json:"date"`
			DumpSiteID      *uint     `json:"dumpSiteId"`
			MaxParticipants int       `json:"maxParticipants"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid request"})
			return
		}
		if strings.TrimSpace(body.Title) == "" || strings.TrimSpace(body.Location) == "" || body.Date.IsZero() {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Title, location and date are required"})
			return
		}
		if body.MaxParticipants <= 0 {
			body.MaxParticipants = 3
		}

		run := models.DumpRun{
			Title:           strings.TrimSpace(body.Title),
			Location:        strings.TrimSpace(body.Location),
			Description:     body.Description,
			Date:            body.Date,
			DumpSiteID:      body.DumpSiteID,
			OrganizerID:     uid,
			MaxParticipants: body.MaxParticipants,
			Status:          models.RunStatusActive,
		}
		if err := db.Create(&run).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to create dump run"})
			return
		}
		c.JSON(http.StatusCreated, run)
	}
}

// JoinDumpRun files a pending join request and notifies the organizer.
func JoinDumpRun(db *gorm.DB) gin.HandlerFunc {
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
			ItemSize        string `json:"itemSize"`
			ItemDescription string `json:"itemDescription"`
		}
		_ = c.ShouldBindJSON(&body)

		participant := models.DumpRunParticipant{
			DumpRunID:       runID,
			UserID:          uid,
			Status:          models.ParticipantPending,
			ItemSize:        body.ItemSize,
			ItemDescription: body.ItemDescription,
		}
		if err := db.Create(&participant).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to join dump run"})
			return
		}

		activity := models.Activity{
			UserID:            run.OrganizerID,
			Type:              models.ActivityRequestReceived,
			Content:           fmt.Sprintf("Someone requested to join your %q dump run", run.Title),
			RelatedEntityID:   run.ID,
			RelatedEntityType: "dumpRun",
		}
		if err := db.Create(&activity).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to join dump run"})
			return
		}

		c.JSON(http.StatusCreated, participant)
	}
}

// UpdateParticipant lets the organizer approve or reject a join request.
func UpdateParticipant(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := currentUserID(c)
		runID, ok := pathID(c, "id")
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid dump run id"})
			return
		}
		participantID, ok := pathID(c, "participant_id")
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid participant id"})
			return
		}

		var run models.DumpRun
		if err := db.First(&run, runID).Error; err != nil || run.OrganizerID != uid {
			c.JSON(http.StatusForbidden, gin.H{"msg": "Not authorized to update participants"})
			return
		}

		var body struct {
			Status string `json:"status"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid request"})
			return
		}
		if body.Status != models.ParticipantApproved && body.Status != models.ParticipantRejected {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid status"})
			return
		}

		var participant models.DumpRunParticipant
		if err := db.Where("id = ? AND dump_run_id = ?", participantID, runID).First(&participant).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Participant not found"})
			return
		}
		participant.Status = body.Status
		if err := db.Save(&participant).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to update participant status"})
			return
		}

		activityType := models.ActivityRequestApproved
		if body.Status == models.ParticipantRejected {
			activityType = models.ActivityRequestRejected
		}
		activity := models.Activity{
			UserID:            participant.UserID,
			Type:              activityType,
			Content:           fmt.Sprintf("Your request to join %q was %s", run.Title, body.Status),
			RelatedEntityID:   run.ID,
			RelatedEntityType: "dumpRun",
		}
		_ = db.Create(&activity).Error

		c.JSON(http.StatusOK, participant)
	}
}

// MyDumpRuns returns runs organized by the caller, newest first.
func MyDumpRuns(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := currentUserID(c)
		var runs []models.DumpRun
		if err := db.Where("organizer_id = ?", uid).Order("created_at DESC, id DESC").Find(&runs).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to fetch user dump runs"})
			return
		}
		c.JSON(http.StatusOK, runs)
	}
}

// MyJoinedRuns returns runs the caller was approved into, with details.
func MyJoinedRuns(db *gorm.DB, messages store.ChatStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := currentUserID(c)

		var participations []models.DumpRunParticipant
		if err := db.Where("user_id = ? AND status = ?", uid, models.ParticipantApproved).Find(&participations).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to fetch joined runs"})
			return
		}

		joined := make([]gin.H, 0, len(participations))
		for _, p := range participations {
			details, err := dumpRunDetails(db, messages, p.DumpRunID)
			if err == gorm.ErrRecordNotFound {
				continue
			}
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to fetch joined runs"})
				return
			}
			joined = append(joined, details)
		}
		c.JSON(http.StatusOK, joined)
	}
}

// dumpRunDetails assembles the run with its organizer, participants (each with
// their user), optional dump site, and ordered chat history.
func dumpRunDetails(db *gorm.DB, messages store.ChatStore, id uint) (gin.H, error) {
	var run models.DumpRun
	if err := db.First(&run, id).Error; err != nil {
		return nil, err
	}

	var organizer models.User
	if err := db.First(&organizer, run.OrganizerID).Error; err != nil {
		return nil, err
	}

	var participants []models.DumpRunParticipant
	if err := db.Where("dump_run_id = ?", id).Order("id ASC").Find(&participants).Error; err != nil {
		return nil, err
	}
	withUsers := make([]gin.H, 0, len(participants))
	for _, p := range participants {
		var u models.User
		if err := db.First(&u, p.UserID).Error; err != nil {
			return nil, err
		}
		withUsers = append(withUsers, gin.H{
			"id":              p.ID,
			"dumpRunId":       p.DumpRunID,
			"userId":          p.UserID,
			"status":          p.Status,
			"itemSize":        p.ItemSize,
			"itemDescription": p.ItemDescription,
			"createdAt":       p.CreatedAt,
			"user":            u.Public(),
		})
	}

	details := gin.H{
		"id":              run.ID,
		"title":           run.Title,
		"location":        run.Location,
		"description":     run.Description,
		"date":            run.Date,
		"dumpSiteId":      run.DumpSiteID,
		"organizerId":     run.OrganizerID,
		"maxParticipants": run.MaxParticipants,
		"status":          run.Status,
		"createdAt":       run.CreatedAt,
		"organizer":       organizer.Public(),
		"participants":    withUsers,
	}

	if run.DumpSiteID != nil {
		var site models.DumpSite
		if err := db.First(&site, *run.DumpSiteID).Error; err == nil {
			details["dumpSite"] = site
		}
	}

	history, err := messages.History(id)
	if err != nil {
		return nil, err
	}
	details["messages"] = history

	return details, nil
}
