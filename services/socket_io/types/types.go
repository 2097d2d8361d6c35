package socketio_types

import (
	"sync"

	"Gimmi/services/morpion"

	"github.com/zishang520/socket.io/v2/socket"
)

// GameSession holds the realtime state of one running morpion game:
// the connected players, whose turn it is and the engine process.
type GameSession struct {
	Players []string
	Turn    string
	Runner  *morpion.Runner
	Started bool
}

// HasPlayer tells whether the pseudo is part of the session.
func (g *GameSession) HasPlayer(pseudo string) bool {
	for _, p := range g.Players {
		if p == pseudo {
			return true
		}
	}
	return false
}

// NextTurn flips the turn to the other player and returns it.
func (g *GameSession) NextTurn() string {
	for _, p := range g.Players {
		if p != g.Turn {
			g.Turn = p
			break
		}
	}
	return g.Turn
}

// SocketServer is a struct that contains the socket.io server, a map of
// socket connections and the game session registry.
type SocketServer struct {
	Sio_server *socket.Server
	// Map to track pseudo -> socket connections
	UserConnections map[string]*socket.Socket
	mutex           sync.RWMutex

	// Session is the single shared morpion session
	Session     GameSession
	sessionLock sync.Mutex
}

func NewSocketServer() *SocketServer {
	return &SocketServer{
		UserConnections: make(map[string]*socket.Socket),
	}
}

// Add methods to manage connections
func (s *SocketServer) AddConnection(pseudo string, socket *socket.Socket) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.UserConnections[pseudo] = socket
}

func (s *SocketServer) RemoveConnection(pseudo string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.UserConnections, pseudo)
}

func (s *SocketServer) GetConnection(pseudo string) (*socket.Socket, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	socket, exists := s.UserConnections[pseudo]
	return socket, exists
}

// WithSession runs fn while holding the session lock. All reads and
// writes of the shared session go through here.
func (s *SocketServer) WithSession(fn func(session *GameSession)) {
	s.sessionLock.Lock()
	defer s.sessionLock.Unlock()
	fn(&s.Session)
}
