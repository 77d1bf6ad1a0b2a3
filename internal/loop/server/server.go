// Package server tracks the players connected to a shared host process.
// Every player runs an independent game; the registry only knows who is
// connected, their best scores, and how to tell them the server is going away.
package server

import (
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/asteroids-arcade/internal/loop/config"
)

// Lobby is what a client needs from the server.
// Decouples the client from the concrete Registry.
type Lobby interface {
	Register(username string) *ClientHandle
	Unregister(clientID int)
	RecordScore(clientID int, score int)
	TopScores(n int) []ScoreEntry
}

// ClientHandle represents a client's connection to the registry.
type ClientHandle struct {
	ID       int
	Username string
	Events   chan ClientEvent // Closed on Unregister
}

// ClientEvent is sent from the registry to a client.
type ClientEvent struct {
	Type     ClientEventType
	Username string // For high score events
	Score    int
}

// ClientEventType identifies the type of client event.
type ClientEventType int

const (
	EventServerShutdown ClientEventType = iota
	EventHighScore                      // Someone else took first place
)

// Registry is a Lobby shared by all sessions of one process.
type Registry struct {
	mu           sync.RWMutex
	clients      map[int]*ClientHandle
	nextClientID int
	scores       scoreboard
	shuttingDown bool
	logger       *log.Logger

	// PollInterval is how often Shutdown checks for remaining clients.
	PollInterval time.Duration
}

var _ Lobby = (*Registry)(nil)

// NewRegistry creates an empty registry. A nil logger uses log.Default().
func NewRegistry(logger *log.Logger) *Registry {
	if logger == nil {
		logger = log.Default()
	}
	return &Registry{
		clients:      make(map[int]*ClientHandle),
		nextClientID: 1,
		logger:       logger,
		PollInterval: 200 * time.Millisecond,
	}
}

// Register adds a client. Clients joining during shutdown are told right away.
func (r *Registry) Register(username string) *ClientHandle {
	r.mu.Lock()
	defer r.mu.Unlock()

	handle := &ClientHandle{
		ID:       r.nextClientID,
		Username: SanitizeUsername(username),
		Events:   make(chan ClientEvent, 16),
	}
	r.nextClientID++
	r.clients[handle.ID] = handle
	if r.shuttingDown {
		handle.Events <- ClientEvent{Type: EventServerShutdown}
	}
	r.logger.Info("client registered", "id", handle.ID, "user", handle.Username, "clients", len(r.clients))
	return handle
}

// Unregister removes a client and closes its event channel.
func (r *Registry) Unregister(clientID int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	handle, ok := r.clients[clientID]
	if !ok {
		return
	}
	close(handle.Events)
	delete(r.clients, clientID)
	r.logger.Info("client unregistered", "id", clientID, "user", handle.Username, "clients", len(r.clients))
}

// RecordScore stores a finished game's score. When it takes first place the
// other clients are notified.
func (r *Registry) RecordScore(clientID int, score int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	handle, ok := r.clients[clientID]
	if !ok {
		return
	}
	if !r.scores.add(ScoreEntry{Username: handle.Username, Score: score, clientID: clientID}) {
		return
	}
	r.logger.Info("new high score", "user", handle.Username, "score", score)
	for id, other := range r.clients {
		if id == clientID {
			continue
		}
		select {
		case other.Events <- ClientEvent{Type: EventHighScore, Username: handle.Username, Score: score}:
		default:
		}
	}
}

// TopScores returns up to n best scores, highest first.
func (r *Registry) TopScores(n int) []ScoreEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.scores.top(n)
}

// Count returns the number of connected clients.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.clients)
}

// Shutdown notifies all connected clients and waits for them to disconnect,
// up to the given timeout. Reports whether every client left in time.
func (r *Registry) Shutdown(timeout time.Duration) bool {
	r.mu.Lock()
	r.shuttingDown = true
	for _, handle := range r.clients {
		select {
		case handle.Events <- ClientEvent{Type: EventServerShutdown}:
		default:
		}
	}
	r.logger.Info("shutdown notice sent", "clients", len(r.clients))
	r.mu.Unlock()

	deadline := time.After(timeout)
	ticker := time.NewTicker(r.PollInterval)
	defer ticker.Stop()

	for {
		if r.Count() == 0 {
			return true
		}
		select {
		case <-deadline:
			r.logger.Warn("shutdown timed out", "clients", r.Count())
			return false
		case <-ticker.C:
		}
	}
}

// SanitizeUsername trims and shortens a display name.
func SanitizeUsername(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "anonymous"
	}
	runes := []rune(name)
	if len(runes) > config.MaxUsernameLength {
		runes = runes[:config.MaxUsernameLength]
	}
	return string(runes)
}
