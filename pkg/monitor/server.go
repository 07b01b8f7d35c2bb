// Package monitor provides live observation of suite runs. A
// Server broadcasts the events recorded by an event.Collector to
// WebSocket and Server-Sent-Events clients; it transports events
// only and never interprets them.
package monitor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"digital.vasic.spec/pkg/event"
	"digital.vasic.spec/pkg/logging"
)

// Server serves run events over /events/ws (WebSocket) and
// /events (SSE), plus a /health endpoint.
type Server struct {
	mu        sync.RWMutex
	collector *event.Collector
	clients   map[chan []byte]struct{}
	addr      string
	server    *http.Server
	upgrader  websocket.Upgrader
	logger    logging.Logger
}

// NewServer creates a monitor server broadcasting events from
// the given collector.
func NewServer(
	addr string,
	collector *event.Collector,
	logger logging.Logger,
) *Server {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	s := &Server{
		addr:      addr,
		collector: collector,
		clients:   make(map[chan []byte]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(*http.Request) bool {
				return true
			},
		},
		logger: logger,
	}

	collector.OnEvent(func(e event.Event) {
		data, err := json.Marshal(e)
		if err != nil {
			return
		}
		s.broadcast(data)
	})

	return s
}

// Handler returns the HTTP handler serving the monitor
// endpoints.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/events/ws", s.handleWebSocket)
	mux.HandleFunc("/events", s.handleSSE)
	mux.HandleFunc("/health", func(
		w http.ResponseWriter, _ *http.Request,
	) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	return mux
}

// Start begins serving and blocks until the context is cancelled
// or the listener fails.
func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:    s.addr,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		s.server.Close()
	}()

	if err := s.server.ListenAndServe(); err != http.ErrServerClosed {
		return fmt.Errorf("monitor server: %w", err)
	}
	return nil
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

func (s *Server) handleWebSocket(
	w http.ResponseWriter, r *http.Request,
) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed",
			logging.Field{Key: "error", Value: err.Error()},
		)
		return
	}
	defer conn.Close()

	s.logger.Debug("websocket client connected",
		logging.Field{Key: "remote", Value: conn.RemoteAddr().String()},
	)

	ch := s.subscribe()
	defer s.unsubscribe(ch)

	// Send the stats snapshot first so late joiners see the
	// run state.
	if snap, err := json.Marshal(s.collector.Stats()); err == nil {
		if err := conn.WriteMessage(
			websocket.TextMessage, snap,
		); err != nil {
			return
		}
	}

	// Drain client frames so pings and close frames are
	// processed; the stream is one-directional otherwise.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				s.unsubscribe(ch)
				return
			}
		}
	}()

	for data := range ch {
		if err := conn.WriteMessage(
			websocket.TextMessage, data,
		); err != nil {
			return
		}
	}
}

func (s *Server) handleSSE(
	w http.ResponseWriter, r *http.Request,
) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(
			w, "streaming not supported",
			http.StatusInternalServerError,
		)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	ch := s.subscribe()
	defer s.unsubscribe(ch)

	if snap, err := json.Marshal(s.collector.Stats()); err == nil {
		fmt.Fprintf(w, "event: stats\ndata: %s\n\n", snap)
		flusher.Flush()
	}

	for {
		select {
		case <-r.Context().Done():
			return
		case data, ok := <-ch:
			if !ok {
				return
			}
			fmt.Fprintf(w, "event: run\ndata: %s\n\n", data)
			flusher.Flush()
		}
	}
}

func (s *Server) subscribe() chan []byte {
	ch := make(chan []byte, 32)
	s.mu.Lock()
	s.clients[ch] = struct{}{}
	s.mu.Unlock()
	return ch
}

func (s *Server) unsubscribe(ch chan []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clients[ch]; ok {
		delete(s.clients, ch)
		close(ch)
	}
}

func (s *Server) broadcast(data []byte) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for ch := range s.clients {
		select {
		case ch <- data:
		default:
			// Slow client; drop the event rather than
			// blocking the run.
		}
	}
}
