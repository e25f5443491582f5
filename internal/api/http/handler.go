package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"haunted-house-be/internal/game"
)

// CreateSessionHandler opens a new session over REST. The caller receives
// a minted player id to present on its websocket connection.
func CreateSessionHandler(engine *game.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateSessionRequest
		if err := c.BindJSON(&req); err != nil || req.PlayerName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "playerName required"})
			return
		}
		playerID := uuid.NewString()
		s := engine.CreateSession(playerID, req.PlayerName, req.MaxPlayers)
		c.JSON(http.StatusOK, gin.H{
			"playerId":  playerID,
			"sessionId": s.Code,
			"session":   s,
		})
	}
}

// JoinSessionHandler joins an existing session over REST.
func JoinSessionHandler(engine *game.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req JoinSessionRequest
		if err := c.BindJSON(&req); err != nil || req.PlayerName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "playerName required"})
			return
		}
		playerID := uuid.NewString()
		s, err := engine.JoinSession(c.Param("id"), playerID, req.PlayerName)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": game.Reason(err)})
			return
		}
		c.JSON(http.StatusOK, gin.H{"playerId": playerID, "session": s})
	}
}

// SessionStateHandler returns the full broadcast snapshot for a session.
func SessionStateHandler(engine *game.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		state, err := engine.State(c.Param("id"))
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": game.Reason(err)})
			return
		}
		c.JSON(http.StatusOK, state)
	}
}

// CharactersHandler lists the playable characters with their trait tracks.
func CharactersHandler(engine *game.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"characters": engine.Content().Characters})
	}
}

// RoomPoolHandler lists the room templates the reveal pool draws from.
func RoomPoolHandler(engine *game.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"rooms": engine.Content().Templates})
	}
}

func statusFor(err error) int {
	switch err {
	case game.ErrSessionNotFound, game.ErrRoomNotFound, game.ErrMemberNotFound:
		return http.StatusNotFound
	case game.ErrSessionFull:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
