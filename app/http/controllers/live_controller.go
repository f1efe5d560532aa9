package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/km-arc/go-signup/app/live"
)

const maxEventBytes = 64 << 10

var errMalformedEvent = errors.New("malformed event")

// LiveController upgrades GET /ws and runs one registration session per
// connection. The read loop is the only goroutine touching the form.
type LiveController struct {
	Controller
	deps     Deps
	logger   *zap.Logger
	upgrader websocket.Upgrader
}

// NewLiveController wires the controller.
func NewLiveController(deps Deps, logger *zap.Logger) *LiveController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LiveController{
		deps:   deps,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// Serve handles GET /ws.
func (lc *LiveController) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := lc.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied with an HTTP error.
		lc.logger.Debug("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	// Server shutdown cancels the request context; closing the conn unblocks the read.
	stop := context.AfterFunc(r.Context(), func() { _ = conn.Close() })
	defer stop()

	if m := lc.deps.Metrics; m != nil {
		m.SessionOpened()
		defer m.SessionClosed()
	}

	logger := lc.logger.With(zap.String("remote", r.RemoteAddr))
	logger.Debug("live session opened")
	defer logger.Debug("live session closed")

	conn.SetReadLimit(maxEventBytes)
	f := lc.deps.newForm()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("live session read", zap.Error(err))
			}
			return
		}

		// A frame that does not decode is answered, not fatal.
		var ev live.Event
		if err := json.Unmarshal(data, &ev); err != nil {
			if err := conn.WriteJSON(live.NewFailure(errMalformedEvent)); err != nil {
				return
			}
			continue
		}

		var reply any
		state, err := live.Apply(f, ev)
		if err != nil {
			logger.Debug("live event rejected", zap.String("type", ev.Type), zap.Error(err))
			reply = live.NewFailure(err)
		} else {
			reply = state
		}
		if err := conn.WriteJSON(reply); err != nil {
			logger.Debug("live session write", zap.Error(err))
			return
		}
	}
}
