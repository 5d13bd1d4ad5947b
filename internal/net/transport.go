package net

import (
	"bytes"
	"encoding/json"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"MyPaintBoard/internal/errors"
	"MyPaintBoard/internal/export"
	"MyPaintBoard/internal/state"
)

// StateMessage reports the session's tool selection and history depth.
type StateMessage struct {
	Type string `json:"type"`
	state.Info
}

// ErrorMessage reports rejected input. The session is unchanged.
type ErrorMessage struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Peer is one browser connection and the private session it draws on.
type Peer struct {
	Conn    *websocket.Conn
	Session *state.Session
	logger  *log.Logger
}

// sendFrame writes the whole surface as one binary PNG message.
func (p *Peer) sendFrame() error {
	var buf bytes.Buffer
	if err := export.PNG(&buf, p.Session.Frame()); err != nil {
		return err
	}
	return p.Conn.WriteMessage(websocket.BinaryMessage, buf.Bytes())
}

func (p *Peer) sendState() error {
	return p.Conn.WriteJSON(StateMessage{Type: "state", Info: p.Session.Info()})
}

func (p *Peer) sendError(err error) error {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	return p.Conn.WriteJSON(ErrorMessage{Type: "error", Code: string(code), Message: errors.Message(err)})
}

// handle applies one client message and answers it: a frame when pixels or
// history changed, then the session state, or an error message. A move that
// changed nothing gets no answer.
func (p *Peer) handle(data []byte) error {
	var a state.Action
	if err := json.Unmarshal(data, &a); err != nil {
		return p.sendError(errors.Wrap(errors.ErrCodeInvalidAction, err, "decode action"))
	}
	changed, err := p.Session.Apply(a)
	if err != nil {
		p.logger.Debug("action rejected", "op", a.Op, "err", err)
		return p.sendError(err)
	}
	if changed {
		if err := p.sendFrame(); err != nil {
			return err
		}
	} else if a.Op == state.PointerMove.String() {
		// hover moves outside a stroke change nothing the client shows
		return nil
	}
	return p.sendState()
}

// PeerManager tracks the live browser connections.
type PeerManager struct {
	peers map[*Peer]bool
	mu    sync.RWMutex
}

func NewPeerManager() *PeerManager {
	return &PeerManager{
		peers: make(map[*Peer]bool),
	}
}

func (pm *PeerManager) Add(p *Peer) {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	pm.peers[p] = true
}

func (pm *PeerManager) Remove(p *Peer) {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	delete(pm.peers, p)
}

func (pm *PeerManager) Count() int {
	pm.mu.RLock()
	defer pm.mu.RUnlock()
	return len(pm.peers)
}

// CloseAll drops every connection; their read loops then exit on their own.
func (pm *PeerManager) CloseAll() {
	pm.mu.RLock()
	defer pm.mu.RUnlock()
	for p := range pm.peers {
		p.Conn.Close()
	}
}
