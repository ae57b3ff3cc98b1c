package api

import (
	"net/http"
	"time"

	"github.com/umaydie-cyber/promotion/internal/constants"
	"github.com/umaydie-cyber/promotion/internal/engine"
	"github.com/umaydie-cyber/promotion/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const streamWriteWait = 5 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// StreamEvents upgrades to a websocket and sends one JSON message per
// battle event: first the backlog after ?after=N, then live events. The
// server closes the socket once the battle is over.
func (h *BattleHandler) StreamEvents(c *gin.Context) {
	id, ok := battleIDParam(c)
	if !ok {
		abortWithError(c, http.StatusBadRequest, constants.CodeInvalidRequest, constants.ErrInvalidBattleID)
		return
	}
	after, ok := queryInt(c, constants.QueryAfter, 0)
	if !ok {
		abortWithError(c, http.StatusBadRequest, constants.CodeInvalidRequest, constants.ErrInvalidRequest)
		return
	}
	sub, err := h.svc.Subscribe(id, after)
	if err != nil {
		respondError(c, err)
		return
	}
	defer sub.Close()

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logging.Error("websocket upgrade failed", err, logging.Fields{constants.LogFieldBattleID: id})
		return
	}
	defer conn.Close()

	// The client never sends anything we act on, but reading is what
	// notices a closed connection.
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for _, e := range sub.Backlog {
		if err := writeEvent(conn, e); err != nil {
			return
		}
	}
	for {
		select {
		case e, open := <-sub.Events:
			if !open {
				msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "battle stream ended")
				_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(streamWriteWait))
				return
			}
			if err := writeEvent(conn, e); err != nil {
				return
			}
		case <-gone:
			return
		}
	}
}

func writeEvent(conn *websocket.Conn, e engine.Event) error {
	if err := conn.SetWriteDeadline(time.Now().Add(streamWriteWait)); err != nil {
		return err
	}
	return conn.WriteJSON(e)
}
