// Package net is the browser front end: an HTTP server whose WebSocket
// endpoint gives every connection its own drawing session, plus mDNS
// advertisement so boards can be found on the local network.
//
// Protocol on /ws: the client sends JSON actions ({"op":"down","x":1,"y":2},
// {"op":"color","value":"#ff0000"}, {"op":"undo"}, ...). The server answers
// with a binary PNG frame whenever the surface changed and a JSON "state"
// message after every accepted action, or a JSON "error" message.
package net

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"

	"MyPaintBoard/internal/state"
)

//go:embed static/index.html
var static embed.FS

// maxMessageSize bounds one client message. Actions are a few dozen bytes.
const maxMessageSize = 4096

// Options configures a Server.
type Options struct {
	Addr string
	// NewSession creates the private session of each connection.
	NewSession func() (*state.Session, error)
	// MDNS advertises the board under Name while serving.
	MDNS   bool
	Name   string
	Logger *log.Logger
}

type Server struct {
	opts     Options
	logger   *log.Logger
	peers    *PeerManager
	upgrader websocket.Upgrader
	router   chi.Router
}

func NewServer(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Server{
		opts:   opts,
		logger: logger,
		peers:  NewPeerManager(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 64 * 1024,
		},
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)
	r.Get("/", s.handleIndex)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Get("/ws", s.handleWS)
	return r
}

func (s *Server) Handler() http.Handler { return s.router }

// Peers is the number of open board connections.
func (s *Server) Peers() int { return s.peers.Count() }

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("http", "method", r.Method, "path", r.URL.Path, "remote", r.RemoteAddr, "took", time.Since(start).Round(time.Microsecond))
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	page, err := static.ReadFile("static/index.html")
	if err != nil {
		http.Error(w, "page missing", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxMessageSize)

	sess, err := s.opts.NewSession()
	if err != nil {
		s.logger.Error("could not create session", "err", err)
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "session unavailable"))
		return
	}

	peer := &Peer{Conn: conn, Session: sess, logger: s.logger.With("session", sess.ID().String()[:8])}
	s.peers.Add(peer)
	defer s.peers.Remove(peer)
	peer.logger.Info("board opened", "remote", r.RemoteAddr, "peers", s.peers.Count())

	if err := peer.sendFrame(); err != nil {
		peer.logger.Warn("initial frame failed", "err", err)
		return
	}
	if err := peer.sendState(); err != nil {
		return
	}

	for {
		kind, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				peer.logger.Warn("connection lost", "err", err)
			}
			peer.logger.Info("board closed", "remote", r.RemoteAddr)
			return
		}
		if kind != websocket.TextMessage {
			continue
		}
		if err := peer.handle(data); err != nil {
			peer.logger.Warn("write failed", "err", err)
			return
		}
	}
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
// ready, if non-nil, is called with the bound address once listening.
func (s *Server) ListenAndServe(ctx context.Context, ready func(addr *net.TCPAddr)) error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.opts.Addr, err)
	}
	addr := ln.Addr().(*net.TCPAddr)

	if s.opts.MDNS {
		adv, err := Advertise(s.opts.Name, addr.Port)
		if err != nil {
			s.logger.Warn("mDNS advertisement disabled", "err", err)
		} else {
			defer adv.Shutdown()
			s.logger.Info("advertising board", "service", ServiceType, "port", addr.Port)
		}
	}

	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	if ready != nil {
		ready(addr)
	}

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down", "peers", s.peers.Count())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	// hijacked websocket connections are not closed by Shutdown
	s.peers.CloseAll()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
