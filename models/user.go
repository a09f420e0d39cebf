package models

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email           string `gorm:"uniqueIndex;size:120;not null"`
	Username        string `gorm:"uniqueIndex;size:80;not null"`
	PasswordHash    string `gorm:"size:255;not null"`
	FirstName       string `gorm:"size:80;not null"`
	LastName        string `gorm:"size:80;not null"`
	Phone           string `gorm:"size:40"`
	HasTruck        bool
	ProfileImageURL string `gorm:"size:500"`
}

func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}

// Public returns the fields safe to expose over the API.
func (u *User) Public() map[string]any {
	return map[string]any{
		"id":              u.ID,
		"username":        u.Username,
		"email":           u.Email,
		"firstName":       u.FirstName,
		"lastName":        u.LastName,
		"phone":           u.Phone,
		"hasTruck":        u.HasTruck,
		"profileImageUrl": u.ProfileImageURL,
	}
}
