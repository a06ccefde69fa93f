package live

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

var ErrBackpressure = errors.New("backpressure")

const writeWait = 5 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WSController upgrades seminar signaling connections and pumps their
// messages through the Service.
type WSController struct {
	svc        *Service
	readLimit  int64
	pingPeriod time.Duration
}

func NewWSController(svc *Service, readLimit int64, pingPeriod time.Duration) *WSController {
	return &WSController{svc: svc, readLimit: readLimit, pingPeriod: pingPeriod}
}

// wsConn adapts a gorilla connection to the live.Conn interface. Writes go
// through a buffered channel drained by writePump, so Send never blocks a
// broadcast loop on a slow peer.
type wsConn struct {
	id   string
	conn *websocket.Conn
	send chan []byte

	mu     sync.RWMutex
	closed bool
}

func (c *wsConn) ID() string { return c.id }

func (c *wsConn) Send(data []byte) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return errors.New("connection closed")
	}
	select {
	case c.send <- data:
	default:
		return ErrBackpressure
	}
	return nil
}

func (c *wsConn) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	close(c.send)
	_ = c.conn.Close()
	c.mu.Unlock()
}

// Handle accepts GET /ws/live/:seminarID. The room key is the seminar path
// segment; a connection never changes rooms for its lifetime.
func (ctl *WSController) Handle(ctx context.Context, c *gin.Context) {
	roomKey := c.Param("seminarID")

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error().Err(err).Str("module", "live.ws").Msg("ws upgrade")
		return
	}

	conn := &wsConn{
		id:   uuid.NewString(),
		conn: ws,
		send: make(chan []byte, 32),
	}
	if ctl.readLimit > 0 {
		ws.SetReadLimit(ctl.readLimit)
	}

	log.Info().Str("module", "live.ws").Str("room", roomKey).Str("sid", conn.id).Msg("new WS connection")
	ctl.svc.Connect(roomKey, conn)

	ctx, cancel := context.WithCancel(ctx)
	go ctl.writePump(ctx, conn)
	go ctl.readPump(ctx, cancel, roomKey, conn)
}

func (ctl *WSController) readPump(ctx context.Context, cancel context.CancelFunc, roomKey string, c *wsConn) {
	defer func() {
		log.Info().Str("module", "live.ws").Str("sid", c.id).Msg("readPump closing")
		ctl.svc.Disconnect(roomKey, c)
		cancel()
		c.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			return
		default:
			_, data, err := c.conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Error().Err(err).Str("module", "live.ws").Str("sid", c.id).Msg("readPump read error")
				}
				return
			}
			ctl.svc.HandleMessage(roomKey, c, data)
		}
	}
}

func (ctl *WSController) writePump(ctx context.Context, c *wsConn) {
	ticker := time.NewTicker(ctl.pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case data, ok := <-c.send:
			if !ok {
				return
			}
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				log.Error().Err(err).Str("module", "live.ws").Msg("writePump set deadline")
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Error().Err(err).Str("module", "live.ws").Msg("writePump write error")
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
