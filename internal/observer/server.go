// Package observer publishes the cycle state over HTTP: a JSON snapshot at
// /state and a websocket stream at /ws with one message per tick.
package observer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/Faultbox/leaf-daycycle/internal/daynight"
)

const (
	clientBuffer = 8
	writeTimeout = 5 * time.Second
)

// Snapshotter provides the state to publish.
type Snapshotter interface {
	Snapshot() daynight.Snapshot
}

// Server streams snapshots. Publish must be called on the goroutine that
// drives the cycle; HTTP handlers only read the last encoded snapshot.
type Server struct {
	source Snapshotter
	log    *zap.Logger

	upgrader websocket.Upgrader
	latest   atomic.Pointer[[]byte]

	mu      sync.Mutex
	clients map[uint64]chan []byte
	nextID  uint64
}

// NewServer creates a server reading from source.
func NewServer(source Snapshotter, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		source: source,
		log:    log.Named("observer"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(r *http.Request) bool { return true }, // dev default
		},
		clients: make(map[uint64]chan []byte),
	}
}

// NotifyFormattedTime publishes a snapshot. It lets the server sit in the
// cycle's HUD slot so it is called once per tick.
func (s *Server) NotifyFormattedTime(string) {
	s.Publish()
}

// Publish encodes the current snapshot and sends it to every client. Clients
// whose buffer is full are disconnected.
func (s *Server) Publish() {
	b, err := json.Marshal(s.source.Snapshot())
	if err != nil {
		s.log.Error("encode snapshot", zap.Error(err))
		return
	}
	s.latest.Store(&b)

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, ch := range s.clients {
		select {
		case ch <- b:
		default:
			close(ch)
			delete(s.clients, id)
			s.log.Warn("dropped slow client", zap.Uint64("id", id))
		}
	}
}

// Clients returns the number of connected stream clients.
func (s *Server) Clients() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/state", s.handleState)
	mux.HandleFunc("/ws", s.handleWS)
	return mux
}

func (s *Server) handleState(rw http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		rw.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	b := s.latest.Load()
	if b == nil {
		http.Error(rw, "no state yet", http.StatusServiceUnavailable)
		return
	}
	rw.Header().Set("Content-Type", "application/json")
	_, _ = rw.Write(*b)
}

func (s *Server) handleWS(rw http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(rw, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	id, out := s.join()
	defer s.leave(id)
	s.log.Debug("client connected", zap.Uint64("id", id), zap.String("remote", r.RemoteAddr))

	// Reader: only control frames and close are expected.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			return
		case b, ok := <-out:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseTryAgainLater, "too slow"),
					time.Now().Add(time.Second))
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
				return
			}
		}
	}
}

// join registers a client and primes it with the last snapshot.
func (s *Server) join() (uint64, chan []byte) {
	ch := make(chan []byte, clientBuffer)
	if b := s.latest.Load(); b != nil {
		ch <- *b
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	s.clients[s.nextID] = ch
	return s.nextID, ch
}

func (s *Server) leave(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ch, ok := s.clients[id]; ok {
		close(ch)
		delete(s.clients, id)
	}
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("observer listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
