package ws

import (
	"net/http"

	"github.com/coder/websocket"
	"github.com/rs/zerolog/log"

	"github.com/bhv360/platform/internal/server/middleware"
	redisstore "github.com/bhv360/platform/internal/store/redis"
)

// Hub streams module activation events to WebSocket clients, backed by Redis
// pub/sub so events reach clients regardless of which instance handled the
// originating API call.
type Hub struct {
	pubsub *redisstore.PubSub
}

// NewHub creates a new WebSocket hub.
func NewHub(pubsub *redisstore.PubSub) *Hub {
	return &Hub{pubsub: pubsub}
}

// ServeActivations handles WebSocket connections for the tenant's module
// activation feed. Subscribes to the tenant's activation channel and forwards
// every event payload as a text message until the client disconnects.
func (h *Hub) ServeActivations(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantIDFromContext(r.Context())
	if !ok {
		http.Error(w, "missing tenant", http.StatusBadRequest)
		return
	}

	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("websocket accept")
		return
	}
	defer conn.CloseNow()

	ctx := r.Context()
	channel := redisstore.ActivationChannel(tenantID)

	messages, cleanup, err := h.pubsub.Subscribe(ctx, channel)
	if err != nil {
		log.Error().Err(err).Str("channel", channel).Msg("websocket subscribe")
		_ = conn.Close(websocket.StatusInternalError, "subscribe failed")
		return
	}
	defer cleanup()

	for {
		select {
		case <-ctx.Done():
			_ = conn.Close(websocket.StatusNormalClosure, "connection closed")
			return
		case msg, msgOK := <-messages:
			if !msgOK {
				_ = conn.Close(websocket.StatusNormalClosure, "channel closed")
				return
			}
			if writeErr := conn.Write(ctx, websocket.MessageText, msg); writeErr != nil {
				log.Debug().Err(writeErr).Msg("websocket write")
				return
			}
		}
	}
}
