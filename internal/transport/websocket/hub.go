package websocket

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/roomloop/tictactoe-backend/internal/apperror"
	"github.com/roomloop/tictactoe-backend/internal/metrics"
	"github.com/roomloop/tictactoe-backend/internal/router"
)

type dispatcher interface {
	Dispatch(ev router.Event) []router.Outbound
}

type inbound struct {
	client  *client
	message *Message
}

// Hub keeps the set of live connections and moves messages between them and
// the coordinator. All registration, unregistration and inbound traffic runs
// through a single loop, so delivery happens in arrival order.
type Hub struct {
	logger *slog.Logger
	router dispatcher

	register   chan *client
	unregister chan *client
	inbound    chan inbound

	conns map[string]*client
}

func NewHub(logger *slog.Logger, dispatch dispatcher) *Hub {
	return &Hub{
		logger:     logger.With("component", "hub"),
		router:     dispatch,
		register:   make(chan *client),
		unregister: make(chan *client),
		inbound:    make(chan inbound, 64),
		conns:      make(map[string]*client),
	}
}

// Run - the hub's event loop. Returns when the context is canceled.
func (that *Hub) Run(ctx context.Context) {
	for {
		select {
		case cl := <-that.register:
			that.conns[cl.id] = cl
			metrics.ActiveConnections.Set(float64(len(that.conns)))
			that.logger.Info("connection registered", "conn", cl.id)
			that.deliver(that.router.Dispatch(router.Event{Conn: cl.id, Kind: router.KindConnect}))

		case cl := <-that.unregister:
			if _, ok := that.conns[cl.id]; ok {
				delete(that.conns, cl.id)
				close(cl.send)
			}
			metrics.ActiveConnections.Set(float64(len(that.conns)))
			that.logger.Info("connection unregistered", "conn", cl.id)
			// Unseating must run even when the connection was already
			// dropped for being slow.
			that.deliver(that.router.Dispatch(router.Event{Conn: cl.id, Kind: router.KindDisconnect}))

		case in := <-that.inbound:
			that.handleInbound(in)

		case <-ctx.Done():
			for _, cl := range that.conns {
				cl.conn.Close()
			}
			return
		}
	}
}

func (that *Hub) handleInbound(in inbound) {
	ev, err := parseEvent(in.client.id, in.message)
	if err != nil {
		that.logger.Warn("rejected inbound message", "conn", in.client.id, "action", in.message.Action, "error", err)
		that.deliver([]router.Outbound{{
			To:     []string{in.client.id},
			Action: router.ActionError,
			Payload: router.ErrorPayload{
				Code:    apperror.Code(err),
				Message: err.Error(),
			},
		}})
		return
	}

	that.deliver(that.router.Dispatch(ev))
}

// deliver - fans outbound events out to their recipient sets. State is
// already updated by the time this runs, so a slow or gone recipient can
// never block the mutation path.
func (that *Hub) deliver(outs []router.Outbound) {
	for _, out := range outs {
		payload, err := json.Marshal(out.Payload)
		if err != nil {
			that.logger.Error("failed to marshal outbound payload", "action", out.Action, "error", err)
			continue
		}

		data, err := json.Marshal(Message{Action: out.Action, Payload: payload})
		if err != nil {
			that.logger.Error("failed to marshal outbound message", "action", out.Action, "error", err)
			continue
		}

		if out.Broadcast {
			for _, cl := range that.conns {
				that.send(cl, data)
			}
			continue
		}

		for _, id := range out.To {
			if cl, ok := that.conns[id]; ok {
				that.send(cl, data)
			}
		}
	}
}

// send - enqueues without blocking; a client whose buffer is full is dropped.
func (that *Hub) send(cl *client, data []byte) {
	select {
	case cl.send <- data:
	default:
		that.logger.Warn("dropping slow connection", "conn", cl.id)
		delete(that.conns, cl.id)
		close(cl.send)
		// Tear the socket down directly; the failing readPump then drives
		// the unregister path that unseats the connection.
		cl.conn.Close()
	}
}
