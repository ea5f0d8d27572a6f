package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/linskybing/form-console/internal/application"
	"github.com/linskybing/form-console/internal/session"
	"github.com/linskybing/form-console/pkg/response"
	"github.com/linskybing/form-console/pkg/utils"
	"go.uber.org/zap"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	// Browsers are already held to the CORS origins on the HTTP routes; the
	// console is not a browser and sends no Origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type SessionHandler struct {
	hub  *session.Hub
	auth *application.AuthService
	log  *zap.Logger
}

func NewSessionHandler(hub *session.Hub, auth *application.AuthService, log *zap.Logger) *SessionHandler {
	return &SessionHandler{hub: hub, auth: auth, log: log}
}

// Stream godoc
// @Summary Session change stream
// @Description WebSocket. The first message describes the current session; later
// @Description messages are signed_in and signed_out events for the same account.
// @Tags auth
// @Security BearerAuth
// @Param token query string false "Session token when headers cannot be set"
// @Success 101
// @Failure 401 {object} response.ErrorResponse "No valid session"
// @Router /ws/session [get]
func (h *SessionHandler) Stream(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	isAdmin, err := h.auth.IsAdmin(claims.AccountID)
	if err != nil {
		serviceError(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer func() { _ = conn.Close() }()

	events, cancel := h.hub.Subscribe(claims.AccountID)
	defer cancel()

	snapshot := session.Event{
		Type:      session.EventSnapshot,
		AccountID: claims.AccountID,
		Email:     claims.Email,
		IsAdmin:   isAdmin,
		At:        time.Now(),
	}
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(snapshot); err != nil {
		return
	}

	// The reader only services control frames and notices the peer leaving.
	closed := make(chan struct{})
	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	pingTicker := time.NewTicker(pingPeriod)
	defer pingTicker.Stop()

	for {
		select {
		case <-closed:
			return
		case e, ok := <-events:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
					time.Now().Add(writeWait))
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(e); err != nil {
				return
			}
		case <-pingTicker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
