package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"haunted-house-be/internal/api/ws"
	"haunted-house-be/internal/game"
)

// NewRouter wires the REST surface and the websocket upgrade route. Both
// talk to the same engine; realtime play happens over the hub.
func NewRouter(engine *game.Engine, hub *ws.Hub) *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Realtime intent channel.
	r.GET("/ws", hub.HandleWS)

	// --- SESSION ENDPOINTS ---
	r.POST("/sessions", CreateSessionHandler(engine))
	r.POST("/sessions/:id/join", JoinSessionHandler(engine))
	r.GET("/sessions/:id", SessionStateHandler(engine))

	// --- STATIC CONTENT ---
	r.GET("/characters", CharactersHandler(engine))
	r.GET("/room-pool", RoomPoolHandler(engine))

	return r
}
