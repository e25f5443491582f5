package http

// CreateSessionRequest is the payload for POST /sessions.
type CreateSessionRequest struct {
	PlayerName string `json:"playerName"`
	MaxPlayers int    `json:"maxPlayers,omitempty"`
}

// JoinSessionRequest is the payload for POST /sessions/:id/join.
type JoinSessionRequest struct {
	PlayerName string `json:"playerName"`
}
