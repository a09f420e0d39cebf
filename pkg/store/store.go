// Package store holds the durable record of chat messages per dump run.
package store

import (
	"errors"
	"strings"

	"junkrun/models"

	"gorm.io/gorm"
)

// ErrEmptyMessage is returned when a message body is blank.
var ErrEmptyMessage = errors.New("message body is empty")

// ChatStore appends and reads the chat thread of a dump run. A conversation
// exists implicitly once its first message is appended; History of an unknown
// run is empty, not an error.
type ChatStore interface {
	Append(dumpRunID, userID uint, body string) (models.ChatMessage, error)
	History(dumpRunID uint) ([]models.ChatMessage, error)
}

// GormChatStore is the database-backed ChatStore. Message ids come from the
// autoincrement primary key, so concurrent Appends still get unique,
// increasing ids.
type GormChatStore struct {
	db *gorm.DB
}

func NewChatStore(db *gorm.DB) *GormChatStore {
	return &GormChatStore{db: db}
}

func (s *GormChatStore) Append(dumpRunID, userID uint, body string) (models.ChatMessage, error) {
	if strings.TrimSpace(body) == "" {
		return models.ChatMessage{}, ErrEmptyMessage
	}
	msg := models.ChatMessage{DumpRunID: dumpRunID, UserID: userID, Message: body}
	if err := s.db.Create(&msg).Error; err != nil {
		return models.ChatMessage{}, err
	}
	return msg, nil
}

func (s *GormChatStore) History(dumpRunID uint) ([]models.ChatMessage, error) {
	msgs := []models.ChatMessage{}
	err := s.db.
		Where("dump_run_id = ?", dumpRunID).
		Order("created_at ASC, id ASC").
		Find(&msgs).Error
	if err != nil {
		return nil, err
	}
	return msgs, nil
}
