// Package wsbridge recognizes gestures for browser clients over WebSocket.
//
// Each connection gets its own surface and recognizer. The client streams
// TouchMessage JSON for every touch event and receives a ServerMessage for
// every recognized gesture.
package wsbridge

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/phanxgames/gesture"
	"github.com/sirupsen/logrus"
)

// DefaultPollInterval is how often a connection polls its long-press timer.
const DefaultPollInterval = 16 * time.Millisecond

var (
	errBinaryMessage = errors.New("only text messages are accepted")
	errUnknownType   = errors.New("unknown message type")
)

// Config configures a Handler.
type Config struct {
	// Options is the template for every connection's recognizer. Its
	// Scheduler is ignored; each connection owns a TimerQueue.
	Options gesture.Options
	// PollInterval defaults to DefaultPollInterval.
	PollInterval time.Duration
	// EnableCORS accepts upgrades from any origin. Otherwise the Origin
	// header must match the request host.
	EnableCORS bool
	// Logger defaults to logrus.StandardLogger().
	Logger logrus.FieldLogger
}

// Handler is an http.Handler that upgrades connections and runs one
// recognizer per connection.
type Handler struct {
	cfg      Config
	upgrader websocket.Upgrader
	log      logrus.FieldLogger
	active   atomic.Int64
	readers  atomic.Int64 // live reader goroutines
}

// NewHandler creates a handler.
func NewHandler(cfg Config) *Handler {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.StandardLogger()
	}
	h := &Handler{
		cfg: cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		log: cfg.Logger.WithField("component", "wsbridge"),
	}
	if cfg.EnableCORS {
		h.upgrader.CheckOrigin = func(r *http.Request) bool { return true }
	} else {
		h.upgrader.CheckOrigin = isSameOrigin
	}
	return h
}

// Active returns the number of open connections.
func (h *Handler) Active() int {
	return int(h.active.Load())
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	h.active.Add(1)
	defer h.active.Add(-1)

	log := h.log.WithField("remote", r.RemoteAddr)
	log.Info("client connected")
	s := newSession(conn, h.cfg, log)
	s.readers = &h.readers
	s.run()
	log.Info("client disconnected")
}

func isSameOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	originURL, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return originURL.Host == r.Host
}

// inbound is one frame read from the client.
type inbound struct {
	kind int
	data []byte
}

// session owns one connection. Only run's goroutine touches the recognizer
// and writes to the connection; the reader goroutine only forwards frames.
type session struct {
	conn     *websocket.Conn
	surface  *Surface
	rec      *gesture.Recognizer
	interval time.Duration
	log      logrus.FieldLogger
	writeErr error
	readers  *atomic.Int64
}

func newSession(conn *websocket.Conn, cfg Config, log logrus.FieldLogger) *session {
	opts := cfg.Options
	opts.Scheduler = gesture.NewTimerQueue(nil)
	if opts.Logger == nil {
		opts.Logger = log
	}
	s := &session{
		conn:     conn,
		surface:  NewSurface(),
		interval: cfg.PollInterval,
		log:      log,
	}
	s.rec = gesture.New(opts, gesture.Handlers{})
	s.rec.SetEventSink(gesture.EventSinkFunc(func(ev gesture.Event) {
		s.send(gestureMessage(ev))
	}))
	gesture.NewBinding(s.rec, true).Attach(s.surface)
	return s
}

// run returns when the client disconnects or a write fails. Closing done
// releases a reader blocked on a full frames buffer.
func (s *session) run() {
	frames := make(chan inbound, 64)
	done := make(chan struct{})
	defer close(done)
	if s.readers != nil {
		s.readers.Add(1)
	}
	go s.readLoop(frames, done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for s.writeErr == nil {
		select {
		case f, ok := <-frames:
			if !ok {
				return
			}
			s.handle(f)
		case <-ticker.C:
			s.rec.Update()
		}
	}
	s.log.WithError(s.writeErr).Debug("write failed")
}

func (s *session) readLoop(frames chan<- inbound, done <-chan struct{}) {
	defer close(frames)
	if s.readers != nil {
		defer s.readers.Add(-1)
	}
	for {
		kind, data, err := s.conn.ReadMessage()
		if err != nil {
			s.log.WithError(err).Debug("read loop stopped")
			return
		}
		select {
		case frames <- inbound{kind: kind, data: data}:
		case <-done:
			return
		}
	}
}

func (s *session) handle(f inbound) {
	if f.kind != websocket.TextMessage {
		s.send(errorMessage(errBinaryMessage))
		return
	}
	var msg TouchMessage
	if err := json.Unmarshal(f.data, &msg); err != nil {
		s.send(errorMessage(fmt.Errorf("parse touch message: %w", err)))
		return
	}
	if err := s.surface.Dispatch(&msg); err != nil {
		s.send(errorMessage(err))
	}
}

func (s *session) send(msg ServerMessage) {
	if s.writeErr != nil {
		return
	}
	s.writeErr = s.conn.WriteJSON(msg)
}
