package server

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pflow-xyz/go-lindenmayer/animate"
	"github.com/pflow-xyz/go-lindenmayer/scene"
)

// MessageType tags WebSocket envelope payloads.
type MessageType string

const (
	MsgTypeApply    MessageType = "apply"    // client: build a new scene
	MsgTypeSpeed    MessageType = "speed"    // client: change animation speed
	MsgTypeReset    MessageType = "reset"    // client: progress back to zero
	MsgTypeScene    MessageType = "scene"    // server: full scene after apply
	MsgTypeProgress MessageType = "progress" // server: animation tick
	MsgTypeError    MessageType = "error"
	MsgTypePing     MessageType = "ping"
	MsgTypePong     MessageType = "pong"
)

// Message is the WebSocket envelope.
type Message struct {
	Type      MessageType     `json:"type"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	Timestamp int64           `json:"timestamp"`
}

// SpeedPayload carries an animation speed change.
type SpeedPayload struct {
	Speed float64 `json:"speed"`
}

// ScenePayload is pushed once after each apply.
type ScenePayload struct {
	Scene          *scene.Scene `json:"scene"`
	PrimitiveCount int          `json:"primitiveCount"`
}

// ProgressPayload is pushed on every animation tick.
type ProgressPayload struct {
	Progress float64 `json:"progress"`
	Total    int     `json:"total"`
	Complete bool    `json:"complete"`
}

const tickInterval = 33 * time.Millisecond

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// wsSession is the per-connection animation state. The read loop
// applies client events and the write loop ticks the clock, so the
// mutable fields are guarded by mu.
type wsSession struct {
	conn   *websocket.Conn
	server *Server
	out    chan Message

	mu       sync.Mutex
	scene    *scene.Scene
	progress float64
	clock    animate.Clock
	lastTick time.Time
	animated bool
}

// handleWebSocket upgrades the connection and runs the animation
// session: apply builds a scene from the same request body as /scene,
// then the server-side clock advances progress and streams it until
// the reveal completes.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", "err", err)
		return
	}

	sess := &wsSession{
		conn:   conn,
		server: s,
		scene:  scene.New(),
		clock:  animate.Clock{Speed: 1},
		out:    make(chan Message, 16),
	}
	s.log.Info("websocket session started", "remote", r.RemoteAddr)

	done := make(chan struct{})
	go sess.writeLoop(done)
	sess.readLoop()
	close(done)
	conn.Close()
	s.log.Info("websocket session ended", "remote", r.RemoteAddr)
}

func (sess *wsSession) writeLoop(done <-chan struct{}) {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case msg := <-sess.out:
			if err := sess.conn.WriteJSON(msg); err != nil {
				return
			}
		case <-ticker.C:
			if msg, ok := sess.tick(); ok {
				if err := sess.conn.WriteJSON(msg); err != nil {
					return
				}
			}
		case <-done:
			return
		}
	}
}

// tick advances progress from elapsed wall time. It reports false when
// no animation is running.
func (sess *wsSession) tick() (Message, bool) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if !sess.animated {
		return Message{}, false
	}

	now := time.Now()
	elapsed := now.Sub(sess.lastTick)
	sess.lastTick = now

	total := sess.scene.PrimitiveCount()
	sess.progress = sess.clock.Advance(sess.progress, elapsed, total)
	complete := sess.progress >= float64(total)
	if complete {
		sess.animated = false
	}

	return envelope(MsgTypeProgress, ProgressPayload{
		Progress: sess.progress,
		Total:    total,
		Complete: complete,
	}), true
}

func (sess *wsSession) readLoop() {
	for {
		var msg Message
		if err := sess.conn.ReadJSON(&msg); err != nil {
			return
		}

		switch msg.Type {
		case MsgTypeApply:
			var req SceneRequest
			if err := json.Unmarshal(msg.Payload, &req); err != nil {
				sess.out <- errorMessage("invalid apply payload")
				continue
			}
			sc, _, err := sess.server.build(req)
			if err != nil {
				sess.out <- errorMessage(err.Error())
				continue
			}
			// A new scene wholly supersedes the previous one.
			sess.mu.Lock()
			sess.scene = sc
			sess.progress = 0
			sess.lastTick = time.Now()
			sess.animated = !sc.Empty()
			sess.mu.Unlock()
			sess.out <- envelope(MsgTypeScene, ScenePayload{
				Scene:          sc,
				PrimitiveCount: sc.PrimitiveCount(),
			})

		case MsgTypeSpeed:
			var payload SpeedPayload
			if err := json.Unmarshal(msg.Payload, &payload); err != nil {
				sess.out <- errorMessage("invalid speed payload")
				continue
			}
			sess.mu.Lock()
			sess.clock.Speed = payload.Speed
			sess.mu.Unlock()

		case MsgTypeReset:
			sess.mu.Lock()
			sess.progress = 0
			sess.lastTick = time.Now()
			sess.animated = !sess.scene.Empty()
			sess.mu.Unlock()

		case MsgTypePing:
			sess.out <- envelope(MsgTypePong, nil)
		}
	}
}

func envelope(msgType MessageType, payload any) Message {
	msg := Message{Type: msgType, Timestamp: time.Now().UnixMilli()}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err == nil {
			msg.Payload = data
		}
	}
	return msg
}

func errorMessage(text string) Message {
	return envelope(MsgTypeError, map[string]string{"message": text})
}
