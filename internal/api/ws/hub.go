package ws

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"haunted-house-be/internal/game"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// client is one websocket connection. Writes are serialized through mu
// because broadcasts arrive from other connections' goroutines.
type client struct {
	id   string
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) send(action string, data any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(Envelope{Action: action, Data: mustMarshal(data)})
}

func mustMarshal(data any) json.RawMessage {
	raw, err := json.Marshal(data)
	if err != nil {
		return json.RawMessage(`{}`)
	}
	return raw
}

// Hub routes intents from websocket connections into the engine and
// fans full-state snapshots back out to session members.
type Hub struct {
	mu       sync.RWMutex
	log      *zap.Logger
	engine   *game.Engine
	sessions map[string]map[*client]struct{}
	members  map[string]*client // connection id -> client
}

func NewHub(engine *game.Engine, log *zap.Logger) *Hub {
	return &Hub{
		log:      log,
		engine:   engine,
		sessions: make(map[string]map[*client]struct{}),
		members:  make(map[string]*client),
	}
}

// HandleWS upgrades the request and runs the connection's read loop. Each
// connection gets a fresh opaque id; reconnecting clients trade their old
// id back in via session:reconnect.
func (h *Hub) HandleWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	cl := &client{id: uuid.NewString(), conn: conn}
	h.mu.Lock()
	h.members[cl.id] = cl
	h.mu.Unlock()

	h.log.Info("client connected", zap.String("id", cl.id))
	cl.send("connected", gin.H{"id": cl.id})

	defer h.drop(cl)

	for {
		var msg Envelope
		if err := conn.ReadJSON(&msg); err != nil {
			h.log.Debug("read failed, closing", zap.String("id", cl.id), zap.Error(err))
			return
		}
		h.dispatch(cl, msg)
	}
}

// drop unregisters the connection. A member mid-game is kept in its
// session so a reconnect can remap onto it; lobby members leave outright.
func (h *Hub) drop(cl *client) {
	cl.conn.Close()

	h.mu.Lock()
	delete(h.members, cl.id)
	for _, set := range h.sessions {
		delete(set, cl)
	}
	h.mu.Unlock()

	s, err := h.engine.SessionByMember(cl.id)
	if err != nil {
		return
	}
	if s.Phase != game.PhaseLobby {
		h.log.Info("member disconnected mid-game, keeping seat",
			zap.String("id", cl.id), zap.String("session", s.Code))
		return
	}
	if res, err := h.engine.LeaveSession(cl.id); err == nil && !res.Deleted {
		h.broadcastState(res.Session.Code)
	}
}

// dispatch routes one intent. Any panic escaping an intent handler is
// converted into a generic failure ack; the engine never takes the
// process down over a bad message.
func (h *Hub) dispatch(cl *client, msg Envelope) {
	defer func() {
		if r := recover(); r != nil {
			h.log.Error("intent handler panicked",
				zap.String("action", msg.Action), zap.Any("panic", r))
			cl.send(msg.Action+":result", errAck(game.ErrInternal))
		}
	}()

	switch msg.Action {
	case "session:create":
		h.handleCreate(cl, msg.Data)
	case "session:join":
		h.handleJoin(cl, msg.Data)
	case "session:leave":
		h.handleLeave(cl)
	case "session:status":
		h.handleStatus(cl, msg.Data)
	case "session:name":
		h.handleName(cl, msg.Data)
	case "session:character":
		h.handleCharacter(cl, msg.Data)
	case "session:ready":
		h.handleReady(cl)
	case "session:start":
		h.handleStart(cl)
	case "session:state":
		h.handleState(cl, msg.Data)
	case "session:reconnect":
		h.handleReconnect(cl, msg.Data)
	case "game:roll":
		h.handleRoll(cl, msg.Data)
	case "game:set-moves":
		h.handleSetMoves(cl, msg.Data)
	case "game:move":
		h.handleMove(cl, msg.Data)
	case "game:sync":
		h.handleSync(cl, msg.Data)
	default:
		h.log.Debug("unknown action", zap.String("action", msg.Action))
	}
}

func (h *Hub) join(cl *client, code string) {
	h.mu.Lock()
	if _, ok := h.sessions[code]; !ok {
		h.sessions[code] = make(map[*client]struct{})
	}
	h.sessions[code][cl] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) leave(cl *client, code string) {
	h.mu.Lock()
	delete(h.sessions[code], cl)
	h.mu.Unlock()
}

// broadcastState pushes the full session snapshot to every connected
// member. The snapshot is detached from engine state, so marshalling here
// cannot race later intents.
func (h *Hub) broadcastState(code string) {
	state, err := h.engine.State(code)
	if err != nil {
		return
	}

	h.mu.RLock()
	clients := make([]*client, 0, len(h.sessions[code]))
	for cl := range h.sessions[code] {
		clients = append(clients, cl)
	}
	h.mu.RUnlock()

	for _, cl := range clients {
		if err := cl.send("session:state", state); err != nil {
			h.log.Debug("broadcast write failed", zap.String("id", cl.id), zap.Error(err))
		}
	}
}

func (h *Hub) handleCreate(cl *client, data json.RawMessage) {
	var p createPayload
	if err := unmarshalPayload(data, &p); err != nil {
		cl.send("session:create:result", errAck(game.ErrInvalidPayload))
		return
	}
	s := h.engine.CreateSession(cl.id, p.PlayerName, p.MaxPlayers)
	h.join(cl, s.Code)
	cl.send("session:create:result", okAck(gin.H{"sessionId": s.Code, "session": s}))
	h.broadcastState(s.Code)
}

func (h *Hub) handleJoin(cl *client, data json.RawMessage) {
	var p joinPayload
	if err := unmarshalPayload(data, &p); err != nil {
		cl.send("session:join:result", errAck(game.ErrInvalidPayload))
		return
	}
	s, err := h.engine.JoinSession(p.SessionID, cl.id, p.PlayerName)
	if err != nil {
		cl.send("session:join:result", errAck(err))
		return
	}
	h.join(cl, s.Code)
	cl.send("session:join:result", okAck(gin.H{"session": s}))
	h.broadcastState(s.Code)
}

func (h *Hub) handleLeave(cl *client) {
	res, err := h.engine.LeaveSession(cl.id)
	if err != nil {
		cl.send("session:leave:result", errAck(err))
		return
	}
	cl.send("session:leave:result", okAck(gin.H{"wasHost": res.WasHost, "deleted": res.Deleted}))
	if res.Session != nil {
		h.leave(cl, res.Session.Code)
		h.broadcastState(res.Session.Code)
	}
}

func (h *Hub) handleStatus(cl *client, data json.RawMessage) {
	var p statusPayload
	if err := unmarshalPayload(data, &p); err != nil {
		cl.send("session:status:result", errAck(game.ErrInvalidPayload))
		return
	}
	s, err := h.engine.UpdateStatus(cl.id, p.Status)
	if err != nil {
		cl.send("session:status:result", errAck(err))
		return
	}
	cl.send("session:status:result", okAck(nil))
	h.broadcastState(s.Code)
}

func (h *Hub) handleName(cl *client, data json.RawMessage) {
	var p namePayload
	if err := unmarshalPayload(data, &p); err != nil {
		cl.send("session:name:result", errAck(game.ErrInvalidPayload))
		return
	}
	s, err := h.engine.UpdateName(cl.id, p.Name)
	if err != nil {
		cl.send("session:name:result", errAck(err))
		return
	}
	cl.send("session:name:result", okAck(nil))
	h.broadcastState(s.Code)
}

func (h *Hub) handleCharacter(cl *client, data json.RawMessage) {
	var p characterPayload
	if err := unmarshalPayload(data, &p); err != nil {
		cl.send("session:character:result", errAck(game.ErrInvalidPayload))
		return
	}
	s, err := h.engine.SelectCharacter(cl.id, p.CharacterID)
	if err != nil {
		cl.send("session:character:result", errAck(err))
		return
	}
	cl.send("session:character:result", okAck(nil))
	h.broadcastState(s.Code)
}

func (h *Hub) handleReady(cl *client) {
	s, err := h.engine.ToggleReady(cl.id)
	if err != nil {
		cl.send("session:ready:result", errAck(err))
		return
	}
	cl.send("session:ready:result", okAck(nil))
	h.broadcastState(s.Code)
}

func (h *Hub) handleStart(cl *client) {
	s, err := h.engine.Start(cl.id)
	if err != nil {
		cl.send("session:start:result", errAck(err))
		return
	}
	cl.send("session:start:result", okAck(gin.H{"gamePhase": s.Phase}))
	h.broadcastState(s.Code)
}

func (h *Hub) handleState(cl *client, data json.RawMessage) {
	var p statePayload
	if err := unmarshalPayload(data, &p); err != nil {
		cl.send("session:state:result", errAck(game.ErrInvalidPayload))
		return
	}
	code := p.SessionID
	if code == "" {
		s, err := h.engine.SessionByMember(cl.id)
		if err != nil {
			cl.send("session:state:result", errAck(err))
			return
		}
		code = s.Code
	}
	state, err := h.engine.State(code)
	if err != nil {
		cl.send("session:state:result", errAck(err))
		return
	}
	cl.send("session:state:result", okAck(state))
}

func (h *Hub) handleReconnect(cl *client, data json.RawMessage) {
	var p reconnectPayload
	if err := unmarshalPayload(data, &p); err != nil {
		cl.send("session:reconnect:result", errAck(game.ErrInvalidPayload))
		return
	}
	s, err := h.engine.RemapIdentity(p.SessionID, p.OldID, cl.id)
	if err != nil {
		cl.send("session:reconnect:result", errAck(err))
		return
	}
	h.join(cl, s.Code)
	cl.send("session:reconnect:result", okAck(gin.H{"id": cl.id, "session": s}))
	h.broadcastState(s.Code)
}

func (h *Hub) handleRoll(cl *client, data json.RawMessage) {
	var p rollPayload
	if err := unmarshalPayload(data, &p); err != nil {
		cl.send("game:roll:result", errAck(game.ErrInvalidPayload))
		return
	}
	res, err := h.engine.SubmitRoll(cl.id, p.Value)
	if err != nil {
		cl.send("game:roll:result", errAck(err))
		return
	}
	cl.send("game:roll:result", okAck(res))
	if s, err := h.engine.SessionByMember(cl.id); err == nil {
		h.broadcastState(s.Code)
	}
}

func (h *Hub) handleSetMoves(cl *client, data json.RawMessage) {
	var p setMovesPayload
	if err := unmarshalPayload(data, &p); err != nil {
		cl.send("game:set-moves:result", errAck(game.ErrInvalidPayload))
		return
	}
	_, err := h.engine.SetMoves(cl.id, p.PlayerID, p.Moves)
	if err != nil {
		cl.send("game:set-moves:result", errAck(err))
		return
	}
	cl.send("game:set-moves:result", okAck(nil))
	if s, err := h.engine.SessionByMember(cl.id); err == nil {
		h.broadcastState(s.Code)
	}
}

func (h *Hub) handleMove(cl *client, data json.RawMessage) {
	var p movePayload
	if err := unmarshalPayload(data, &p); err != nil {
		cl.send("game:move:result", errAck(game.ErrInvalidPayload))
		return
	}
	res, err := h.engine.Move(cl.id, p.Direction)
	if err != nil {
		cl.send("game:move:result", errAck(err))
		return
	}
	cl.send("game:move:result", okAck(res))
	if s, err := h.engine.SessionByMember(cl.id); err == nil {
		h.broadcastState(s.Code)
	}
}

func (h *Hub) handleSync(cl *client, data json.RawMessage) {
	var p game.SyncPayload
	if err := unmarshalPayload(data, &p); err != nil {
		cl.send("game:sync:result", errAck(game.ErrInvalidPayload))
		return
	}
	if err := h.engine.SyncState(cl.id, p); err != nil {
		cl.send("game:sync:result", errAck(err))
		return
	}
	cl.send("game:sync:result", okAck(nil))
	if s, err := h.engine.SessionByMember(cl.id); err == nil {
		h.broadcastState(s.Code)
	}
}
