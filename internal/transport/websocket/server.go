package websocket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(_ *http.Request) bool {
		// The coordinator has no identity layer; origin policy belongs to
		// whatever fronts this server in production.
		return true
	},
}

type Server struct {
	logger *slog.Logger
	hub    *Hub
}

func New(logger *slog.Logger, dispatch dispatcher) *Server {
	return &Server{
		logger: logger.With("component", "websocket"),
		hub:    NewHub(logger, dispatch),
	}
}

// Start - starts the WebSocket server and blocks until the context is
// canceled or the listener fails.
func (that *Server) Start(ctx context.Context, port string) error {
	go that.hub.Run(ctx)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", that.serveWS)

	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     mux,
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 90 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// serveWS - upgrades the connection and hands it to the hub. Every
// connection gets a fresh random identifier for its lifetime.
func (that *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		that.logger.Error("failed to upgrade connection", "error", err)
		return
	}

	cl := &client{
		id:   uuid.NewString(),
		hub:  that.hub,
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}

	that.hub.register <- cl

	go cl.writePump()
	go cl.readPump()
}
