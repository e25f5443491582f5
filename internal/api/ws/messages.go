package ws

import (
	"encoding/json"

	"haunted-house-be/internal/game"
)

// Envelope is the wire format both ways: an action name plus an
// action-specific payload.
type Envelope struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data,omitempty"`
}

// Client intent payloads.
type createPayload struct {
	PlayerName string `json:"playerName"`
	MaxPlayers int    `json:"maxPlayers,omitempty"`
}

type joinPayload struct {
	SessionID  string `json:"sessionId"`
	PlayerName string `json:"playerName"`
}

type statusPayload struct {
	Status game.MemberStatus `json:"status"`
}

type namePayload struct {
	Name string `json:"name"`
}

type characterPayload struct {
	CharacterID string `json:"characterId"`
}

type rollPayload struct {
	Value int `json:"value"`
}

type setMovesPayload struct {
	PlayerID string `json:"playerId,omitempty"`
	Moves    int    `json:"moves"`
}

type movePayload struct {
	Direction game.Direction `json:"direction"`
}

type reconnectPayload struct {
	SessionID string `json:"sessionId"`
	OldID     string `json:"oldId"`
}

type statePayload struct {
	SessionID string `json:"sessionId,omitempty"`
}

// unmarshalPayload decodes an intent payload. An absent payload is fine
// (some intents carry none); a present one must be well-formed.
func unmarshalPayload(data json.RawMessage, out any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, out)
}

// ack is the per-intent response sent back to the submitting connection.
type ack struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func okAck(data any) ack {
	return ack{Success: true, Data: data}
}

func errAck(err error) ack {
	return ack{Success: false, Error: game.Reason(err)}
}
