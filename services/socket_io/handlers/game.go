package handlers

import (
	"log"

	"Gimmi/constants/game"
	"Gimmi/services/morpion"
	socketio_types "Gimmi/services/socket_io/types"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

func emitConnectedPlayers(sio *socketio_types.SocketServer, players []string) {
	sio.Sio_server.Emit("game_connected_users", gin.H{"players": players})
}

// HandleConnectGame enrolls a connected user into the shared game session.
func HandleConnectGame(client *socket.Socket, pseudo string,
	sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		var players []string
		var full bool
		sio.WithSession(func(session *socketio_types.GameSession) {
			if !session.HasPlayer(pseudo) {
				if len(session.Players) >= game.MaxPlayersMorpion {
					full = true
					return
				}
				session.Players = append(session.Players, pseudo)
			}
			players = append([]string(nil), session.Players...)
		})
		if full {
			client.Emit("error", gin.H{"error": "The game is already full"})
			return
		}
		log.Printf("User %s joined the game, players: %v", pseudo, players)
		emitConnectedPlayers(sio, players)
	}
}

// HandleDisconnectGame removes a user from the session, stopping the
// engine if a game was running.
func HandleDisconnectGame(client *socket.Socket, pseudo string,
	sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		var players []string
		var stopped *morpion.Runner
		sio.WithSession(func(session *socketio_types.GameSession) {
			if !session.HasPlayer(pseudo) {
				players = append([]string(nil), session.Players...)
				return
			}
			remaining := session.Players[:0]
			for _, p := range session.Players {
				if p != pseudo {
					remaining = append(remaining, p)
				}
			}
			session.Players = remaining
			if session.Started {
				stopped = session.Runner
				session.Runner = nil
				session.Started = false
				session.Turn = ""
			}
			players = append([]string(nil), session.Players...)
		})
		if stopped != nil {
			stopped.Stop()
			sio.Sio_server.Emit("game_stopped", gin.H{"reason": pseudo + " left the game"})
		}
		log.Printf("User %s left the game, players: %v", pseudo, players)
		emitConnectedPlayers(sio, players)
	}
}

// HandleStartGame spawns the engine once both players are connected.
// The starter plays first.
func HandleStartGame(client *socket.Socket, pseudo string,
	sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		var startErr string
		var started bool
		sio.WithSession(func(session *socketio_types.GameSession) {
			if session.Started {
				startErr = "The game has already started"
				return
			}
			if !session.HasPlayer(pseudo) {
				startErr = "You must connect to the game before starting it"
				return
			}
			if len(session.Players) < game.MaxPlayersMorpion {
				startErr = "The game needs two connected players to start"
				return
			}

			runner, err := morpion.StartWithPlayers(morpion.ScriptCommand(), game.MaxPlayersMorpion)
			if err != nil {
				log.Printf("Could not start the game engine. Details => %v", err)
				startErr = "Could not start the game engine"
				return
			}
			session.Runner = runner
			session.Started = true
			session.Turn = pseudo
			started = true

			go relayEngineOutput(sio, runner)
		})
		if startErr != "" {
			client.Emit("error", gin.H{"error": startErr})
			return
		}
		if started {
			sio.Sio_server.Emit("game_started", gin.H{"turn": pseudo})
		}
	}
}

// relayEngineOutput streams engine stdout lines to every client until
// the engine exits, then clears the session.
func relayEngineOutput(sio *socketio_types.SocketServer, runner *morpion.Runner) {
	for line := range runner.Lines() {
		var turn string
		sio.WithSession(func(session *socketio_types.GameSession) {
			turn = session.Turn
		})
		sio.Sio_server.Emit("game_data_to_client", gin.H{"data": line, "turn": turn})
	}

	var wasRunning bool
	sio.WithSession(func(session *socketio_types.GameSession) {
		if session.Runner == runner {
			wasRunning = session.Started
			session.Runner = nil
			session.Started = false
			session.Turn = ""
		}
	})
	if wasRunning {
		sio.Sio_server.Emit("game_terminated", gin.H{})
	}
}

// HandleGameData forwards a player move to the engine stdin and flips
// the turn to the other player.
func HandleGameData(client *socket.Socket, pseudo string,
	sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		if len(args) < 1 {
			client.Emit("error", gin.H{"error": "Missing game data"})
			return
		}
		payload, ok := args[0].(string)
		if !ok || payload == "" {
			client.Emit("error", gin.H{"error": "Game data must be a non empty string"})
			return
		}

		var sendErr string
		sio.WithSession(func(session *socketio_types.GameSession) {
			if !session.Started || session.Runner == nil {
				sendErr = "No game is running"
				return
			}
			if session.Turn != pseudo {
				sendErr = "It is not your turn"
				return
			}
			if err := session.Runner.WriteLine(payload); err != nil {
				log.Printf("Could not forward move to the engine. Details => %v", err)
				sendErr = "Could not forward the move to the engine"
				return
			}
			session.NextTurn()
		})
		if sendErr != "" {
			client.Emit("error", gin.H{"error": sendErr})
		}
	}
}
