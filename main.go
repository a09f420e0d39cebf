package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"junkrun/middleware"
	"junkrun/models"
	"junkrun/pkg/cache"
	"junkrun/pkg/config"
	"junkrun/pkg/hub"
	"junkrun/pkg/store"
	tokenstore "junkrun/pkg/token"
	"junkrun/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	// config init via package init()

	db, err := gorm.Open(sqlite.Open(config.DatabasePath), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.DumpSite{},
		&models.DumpRun{},
		&models.DumpRunParticipant{},
		&models.PickupRequest{},
		&models.ChatMessage{},
		&models.Activity{},
	); err != nil {
		log.Fatalf("failed migrate: %v", err)
	}

	if err := models.SeedDumpSites(db); err != nil {
		log.Fatalf("failed to seed dump sites: %v", err)
	}

	middleware.SetRateLimitConfig(
		time.Duration(config.RateLimitWindowSeconds)*time.Second,
		config.RateLimitCapacity,
	)

	messages := store.NewChatStore(db)
	h := hub.New(messages)
	go h.Run()

	sites := cache.New(time.Minute)
	tokens := tokenstore.New()

	r := gin.Default()

	// CORS configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "http://localhost:5173", "http://127.0.0.1:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, db, h, messages, sites, tokens)

	srv := &http.Server{Addr: ":" + config.Port, Handler: r}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server exited: %v", err)
		}
	}()
	log.Printf("[main] listening on :%s", config.Port)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Println("[main] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[main] http shutdown: %v", err)
	}
	h.Shutdown()
}
