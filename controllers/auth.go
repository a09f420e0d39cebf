package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"junkrun/middleware"
	"junkrun/models"
	"junkrun/pkg/config"
	tokenstore "junkrun/pkg/token"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Register handler
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Email           string `json:"email"`
			Username        string `json:"username"`
			Password        string `json:"password"`
			ConfirmPassword string `json:"confirm_password"`
			FirstName       string `json:"firstName"`
			LastName        string `json:"lastName"`
			Phone           string `json:"phone"`
			HasTruck        bool   `json:"hasTruck"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid request"})
			return
		}

		email := strings.TrimSpace(strings.ToLower(body.Email))
		username := strings.TrimSpace(body.Username)
		firstName := strings.TrimSpace(body.FirstName)
		lastName := strings.TrimSpace(body.LastName)

		if email == "" || username == "" || body.Password == "" || firstName == "" || lastName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Email, username, password, and name are required"})
			return
		}
		if body.ConfirmPassword != "" && body.Password != body.ConfirmPassword {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Passwords do not match"})
			return
		}
		if !hasLetter(body.Password) || !hasNumber(body.Password) {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Password must contain at least one letter and one number"})
			return
		}

		var exists models.User
		if err := db.Where("email = ? OR username = ?", email, username).First(&exists).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"msg": "Email or username already exists"})
			return
		} else if err != gorm.ErrRecordNotFound {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "db error"})
			return
		}

		user := models.User{
			Email:     email,
			Username:  username,
			FirstName: firstName,
			LastName:  lastName,
			Phone:     strings.TrimSpace(body.Phone),
			HasTruck:  body.HasTruck,
		}
		if err := user.SetPassword(body.Password); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "failed to set password"})
			return
		}
		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "failed to create user"})
			return
		}

		c.JSON(http.StatusCreated, user.Public())
	}
}

// Login handler
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Username string `json:"username"`
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid request"})
			return
		}
		login := strings.TrimSpace(strings.ToLower(body.Email))
		if login == "" {
			login = strings.TrimSpace(body.Username)
		}
		if login == "" || body.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Credentials are required"})
			return
		}

		var user models.User
		if err := db.Where("email = ? OR username = ?", login, login).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Invalid credentials"})
			return
		}
		if !user.CheckPassword(body.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Invalid credentials"})
			return
		}

		// JWT with 1 day expiry
		jti := uuid.NewString()
		claims := jwt.MapClaims{
			"sub": strconv.Itoa(int(user.ID)),
			"exp": time.Now().Add(24 * time.Hour).Unix(),
			"jti": jti,
		}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		tokenStr, err := token.SignedString([]byte(config.JWTSecret))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "failed to create token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"access_token": tokenStr, "user": user.Public()})
	}
}

// Logout handler
func Logout(tokens *tokenstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		jti, _ := c.Get(middleware.ContextJTIKey)
		if s, ok := jti.(string); ok && s != "" {
			tokens.Revoke(s)
		}
		c.JSON(http.StatusOK, gin.H{"msg": "logged out"})
	}
}

// hasLetter reports whether s contains at least one ASCII letter.
func hasLetter(s string) bool {
	for _, r := range s {
		if ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') {
			return true
		}
	}
	return false
}

// hasNumber reports whether s contains at least one ASCII digit.
func hasNumber(s string) bool {
	for _, r := range s {
		if '0' <= r && r <= '9' {
			return true
		}
	}
	return false
}
