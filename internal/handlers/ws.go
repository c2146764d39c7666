package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/thatcatcamp/colorpick/internal/auth"
	"github.com/thatcatcamp/colorpick/internal/stage"
	"github.com/thatcatcamp/colorpick/internal/workspace"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Pointer events are small; anything larger is not one.
	maxMessageSize = 4096
)

// Default CheckOrigin rejects cross-origin upgrades
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
}

// stageConn streams one workspace over one websocket. Pointer events come
// in; a fresh snapshot goes out after every change to the workspace.
type stageConn struct {
	conn *websocket.Conn
	ws   *workspace.Workspace
	done chan struct{}
	log  zerolog.Logger
}

// StageSocket upgrades the request and serves the caller's workspace
func (s *Server) StageSocket(c *gin.Context) {
	if auth.IsNewWorkspace(c) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session required"})
		return
	}
	ws := s.workspace(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already replied
		s.log.Debug().Err(err).Msg("websocket upgrade failed")
		return
	}

	sc := &stageConn{
		conn: conn,
		ws:   ws,
		done: make(chan struct{}),
		log:  s.log.With().Str("workspace", ws.ID()).Logger(),
	}
	go sc.writePump()
	sc.readPump()
}

// readPump applies pointer events until the peer goes away
func (sc *stageConn) readPump() {
	defer close(sc.done)

	sc.conn.SetReadLimit(maxMessageSize)
	_ = sc.conn.SetReadDeadline(time.Now().Add(pongWait))
	sc.conn.SetPongHandler(func(string) error {
		_ = sc.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := sc.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				sc.log.Debug().Err(err).Msg("websocket closed")
			}
			return
		}
		_ = sc.conn.SetReadDeadline(time.Now().Add(pongWait))
		sc.ws.Touch()

		var ev stage.Event
		if err := json.Unmarshal(data, &ev); err != nil {
			sc.log.Debug().Err(err).Msg("ignoring malformed pointer event")
			continue
		}
		if err := binding.Validator.ValidateStruct(&ev); err != nil {
			sc.log.Debug().Err(err).Msg("ignoring invalid pointer event")
			continue
		}
		sc.ws.Pointer(ev)
	}
}

// writePump sends the current snapshot, then one per change, and keeps the
// connection alive with pings
func (sc *stageConn) writePump() {
	changes, cancel := sc.ws.Subscribe()
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		cancel()
		ticker.Stop()
		_ = sc.conn.Close()
	}()

	if err := sc.send(); err != nil {
		return
	}

	for {
		select {
		case <-sc.done:
			_ = sc.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = sc.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return

		case <-changes:
			if err := sc.send(); err != nil {
				return
			}

		case <-ticker.C:
			_ = sc.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := sc.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (sc *stageConn) send() error {
	_ = sc.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := sc.conn.WriteJSON(sc.ws.Snapshot()); err != nil {
		if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
			sc.log.Debug().Err(err).Msg("websocket write failed")
		}
		return err
	}
	return nil
}
