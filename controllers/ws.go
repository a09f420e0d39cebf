package controllers

import (
	"log"
	"net/http"

	"junkrun/pkg/hub"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// CORS handled at HTTP level; allow WS here
		return true
	},
}

// ChatWS upgrades the request and hands the socket to the relay hub.
// The socket only relays; durable writes go through the authenticated
// HTTP message endpoint, so no token check happens here.
func ChatWS(h *hub.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("[ws] upgrade error: %v", err)
			return
		}
		h.Attach(conn)
	}
}
