package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"tycord/config"
	"tycord/internal/presence"
	"tycord/internal/realtime"
	"tycord/pkg/utils"
)

type WSHandler struct {
	Registry *presence.Registry
	Notifier *realtime.Notifier
	Config   *config.Config
}

// Handle upgrades the connection and pumps inbound events until the client
// disconnects. Browsers cannot set Authorization headers on native
// WebSockets, so the token rides in as a query param.
func (h *WSHandler) Handle(c *gin.Context) {
	tokenStr := c.Query("token")
	if tokenStr == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "missing token"})
		return
	}

	userID, err := utils.ValidateJWTToken(tokenStr, h.Config)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
		return
	}

	opts := &websocket.AcceptOptions{}
	// Dev frontends run on a different origin; outside production the
	// origin check is relaxed.
	if h.Config.Server.Environment != "production" {
		opts.InsecureSkipVerify = true
	}

	conn, err := websocket.Accept(c.Writer, c.Request, opts)
	if err != nil {
		return
	}

	client := h.Registry.Register(userID, conn)
	defer h.Registry.Unregister(client)

	ctx := c.Request.Context()
	events := make(chan realtime.InboundEvent)
	go func() {
		defer close(events)
		for {
			var ev realtime.InboundEvent
			if err := wsjson.Read(ctx, conn, &ev); err != nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	h.Notifier.HandleInbound(ctx, client, events)
}
