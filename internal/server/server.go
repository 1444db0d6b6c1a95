package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/roomloop/tictactoe-backend/internal/config"
	"github.com/roomloop/tictactoe-backend/pkg/handlers"
)

func StartHTTPServer(cfg *config.Config) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ping", handlers.PingHandler)
	mux.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(":"+cfg.HTTPPort, mux)
}
