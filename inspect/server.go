package inspect

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/phanxgames/scenegraph/logging"
)

const (
	writeWait      = 2 * time.Second
	clientQueueLen = 4
)

// Server serves the last published snapshot.
//
//	GET /scene           the whole tree
//	GET /nodes/{handle}  one node and its subtree
//	GET /ws              every published snapshot, pushed as a text message
//	GET /metrics         Prometheus metrics
//
// Publish is safe to call from the render loop while handlers run.
type Server struct {
	router   *mux.Router
	log      *zap.Logger
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	current *Snapshot
	encoded []byte
	clients map[*client]struct{}
	closed  bool
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// NewServer creates a server. metrics may be nil, in which case /metrics is
// not routed. A nil logger discards output.
func NewServer(metrics *Metrics, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		router:  mux.NewRouter(),
		log:     log.Named("inspect"),
		clients: make(map[*client]struct{}),
	}
	s.router.HandleFunc("/scene", s.getScene).Methods("GET")
	s.router.HandleFunc("/nodes/{handle:[0-9]+}", s.getNode).Methods("GET")
	s.router.HandleFunc("/ws", s.serveWS).Methods("GET")
	if metrics != nil {
		s.router.Handle("/metrics", metrics.Handler()).Methods("GET")
	}
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Publish makes snap the snapshot served from now on and pushes it to every
// websocket client. Clients that fall behind miss snapshots rather than
// slowing the caller down.
func (s *Server) Publish(snap *Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("inspect: encode snapshot: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.current = snap
	s.encoded = data
	for c := range s.clients {
		select {
		case c.send <- data:
		default:
			s.log.Debug("dropping snapshot for slow client", zap.Stringer("remote", c.conn.RemoteAddr()))
		}
	}
	return nil
}

// Current returns the last published snapshot, or nil.
func (s *Server) Current() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Close disconnects every websocket client. Later publishes are ignored.
func (s *Server) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for c := range s.clients {
		close(c.send)
		delete(s.clients, c)
	}
}

// ListenAndServe serves on addr until ctx is cancelled. Lifecycle messages go
// to the logger carried by ctx.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	log, ctx := logging.FromWithFields(ctx, zap.String("addr", addr))
	log = log.Named("inspect")
	srv := &http.Server{Addr: addr, Handler: s, ReadHeaderTimeout: 5 * time.Second}
	errc := make(chan error, 1)
	go func() {
		log.Info("listening")
		errc <- srv.ListenAndServe()
	}()
	select {
	case err := <-errc:
		return fmt.Errorf("inspect: %w", err)
	case <-ctx.Done():
	}
	log.Info("shutting down")
	s.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("inspect: shutdown: %w", err)
	}
	return nil
}

func (s *Server) getScene(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	data := s.encoded
	s.mu.RUnlock()
	if data == nil {
		respondWithError(w, http.StatusServiceUnavailable, errors.New("no snapshot published yet"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (s *Server) getNode(w http.ResponseWriter, r *http.Request) {
	h, err := strconv.ParseUint(mux.Vars(r)["handle"], 10, 32)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err)
		return
	}
	snap := s.Current()
	if snap == nil {
		respondWithError(w, http.StatusServiceUnavailable, errors.New("no snapshot published yet"))
		return
	}
	n := snap.Node(uint32(h))
	if n == nil {
		respondWithError(w, http.StatusNotFound, fmt.Errorf("node %d not found", h))
		return
	}
	respondWithJSON(w, http.StatusOK, n)
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	c := &client{conn: conn, send: make(chan []byte, clientQueueLen)}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		conn.Close()
		return
	}
	s.clients[c] = struct{}{}
	if s.encoded != nil {
		c.send <- s.encoded
	}
	s.mu.Unlock()
	s.log.Debug("websocket client connected", zap.Stringer("remote", conn.RemoteAddr()))

	go s.writeLoop(c)
	s.readLoop(c)
}

// readLoop discards client messages and unregisters the client once the
// connection fails or closes.
func (s *Server) readLoop(c *client) {
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
	s.mu.Lock()
	if _, ok := s.clients[c]; ok {
		delete(s.clients, c)
		close(c.send)
	}
	s.mu.Unlock()
}

func (s *Server) writeLoop(c *client) {
	defer c.conn.Close()
	for data := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			s.log.Debug("websocket write failed", zap.Error(err))
			return
		}
	}
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	c.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

func respondWithError(w http.ResponseWriter, status int, err error) {
	respondWithJSON(w, status, map[string]string{"error": err.Error()})
}

func respondWithJSON(w http.ResponseWriter, status int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(response)
}
