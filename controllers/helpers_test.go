package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"junkrun/middleware"
	"junkrun/models"
	"junkrun/pkg/cache"
	"junkrun/pkg/hub"
	"junkrun/pkg/store"
	tokenstore "junkrun/pkg/token"
	"junkrun/routes"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestEnv(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	// generous limits so tests never trip the limiter
	middleware.SetRateLimitConfig(time.Second, 10000)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	// a single in-memory sqlite database per test
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.DumpSite{},
		&models.DumpRun{},
		&models.DumpRunParticipant{},
		&models.PickupRequest{},
		&models.ChatMessage{},
		&models.Activity{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	messages := store.NewChatStore(db)
	h := hub.New(messages)
	go h.Run()
	t.Cleanup(h.Shutdown)

	r := gin.New()
	routes.RegisterRoutes(r, db, h, messages, cache.New(time.Minute), tokenstore.New())
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.RemoteAddr = "127.0.0.1:9999"
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

var userSeq int

// registerAndLogin creates a fresh user through the API and returns its token and id.
func registerAndLogin(t *testing.T, r *gin.Engine) (string, uint) {
	t.Helper()
	userSeq++
	username := fmt.Sprintf("hauler%d", userSeq)

	w := doJSON(t, r, http.MethodPost, "/api/register", "", gin.H{
		"email":     username + "@example.com",
		"username":  username,
		"password":  "pass1234",
		"firstName": "Test",
		"lastName":  "Hauler",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/api/login", "", gin.H{
		"email":    username + "@example.com",
		"password": "pass1234",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		AccessToken string `json:"access_token"`
		User        struct {
			ID uint `json:"id"`
		} `json:"user"`
	}
	decode(t, w, &resp)
	if resp.AccessToken == "" {
		t.Fatalf("login returned empty token")
	}
	return resp.AccessToken, resp.User.ID
}

func runMessagesPath(runID uint) string {
	return fmt.Sprintf("/api/dump-runs/%d/messages", runID)
}

// createRun makes a dump run owned by the token's user and returns its id.
func createRun(t *testing.T, r *gin.Engine, token, title string) uint {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/dump-runs", token, gin.H{
		"title":    title,
		"location": "North Yard",
		"date":     time.Now().Add(48 * time.Hour).Format(time.RFC3339),
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create run: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var run models.DumpRun
	decode(t, w, &run)
	if run.ID == 0 {
		t.Fatalf("created run has no id")
	}
	return run.ID
}
