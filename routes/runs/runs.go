package runs

import (
	"junkrun/controllers"
	"junkrun/pkg/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterPublic registers the read-only dump run routes.
func RegisterPublic(r *gin.Engine, db *gorm.DB, messages store.ChatStore) {
	r.GET("/api/dump-runs", controllers.ListDumpRuns(db))
	r.GET("/api/dump-runs/:id", controllers.GetDumpRun(db, messages))
}

// RegisterProtected registers the routes that mutate runs and membership.
func RegisterProtected(g *gin.RouterGroup, db *gorm.DB, messages store.ChatStore) {
	g.POST("/api/dump-runs", controllers.CreateDumpRun(db))
	g.POST("/api/dump-runs/:id/join", controllers.JoinDumpRun(db))
	g.PATCH("/api/dump-runs/:id/participants/:participant_id", controllers.UpdateParticipant(db))
	g.GET("/api/my-dump-runs", controllers.MyDumpRuns(db))
	g.GET("/api/my-joined-runs", controllers.MyJoinedRuns(db, messages))
}
