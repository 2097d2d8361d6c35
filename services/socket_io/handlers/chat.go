package handlers

import (
	"log"
	"time"

	redis_models "Gimmi/models/redis"
	"Gimmi/services/redis"
	"Gimmi/services/social"
	socketio_types "Gimmi/services/socket_io/types"
	"Gimmi/utils"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
	"gorm.io/gorm"
)

// HandleSendMessage broadcasts a chat message to every connected client
// and appends it to the Redis history.
func HandleSendMessage(redisClient *redis.RedisClient, client *socket.Socket,
	pseudo string, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		if len(args) < 1 {
			client.Emit("error", gin.H{"error": "Missing message"})
			return
		}
		text, ok := args[0].(string)
		if !ok || text == "" {
			client.Emit("error", gin.H{"error": "Message must be a non empty string"})
			return
		}

		message := redis_models.ChatMessage{
			Message:   text,
			Pseudo:    pseudo,
			Timestamp: time.Now(),
		}

		if redisClient != nil {
			if err := redisClient.PushChatMessage(&message); err != nil {
				log.Printf("Could not store chat message. Details => %v", err)
			}
		}

		// Everyone gets the message, sender included
		sio.Sio_server.Emit("received_message", gin.H{
			"message":   message.Message,
			"pseudo":    message.Pseudo,
			"timestamp": message.Timestamp,
		})
	}
}

// HandleJoinRoomChannel subscribes a room member to that room's chat
// channel. Membership is checked against the stored roster.
func HandleJoinRoomChannel(client *socket.Socket, db *gorm.DB,
	pseudo string) func(args ...interface{}) {
	return func(args ...interface{}) {
		roomName, ok := firstString(args)
		if !ok {
			client.Emit("error", gin.H{"error": "Missing room name"})
			return
		}

		user, err := social.ResolveHandle(db, pseudo)
		if err != nil {
			client.Emit("error", gin.H{"error": err.Error()})
			return
		}
		isMember, err := utils.IsPlayerInRoom(db, roomName, user.ID)
		if err != nil {
			client.Emit("error", gin.H{"error": err.Error()})
			return
		}
		if !isMember {
			client.Emit("error", gin.H{"error": "You must join the room before subscribing to its chat"})
			return
		}

		client.Join(socket.Room(roomName))
		client.Emit("room_joined", gin.H{"room": roomName})
	}
}

// HandleRoomMessage broadcasts a message to one room's channel only.
func HandleRoomMessage(client *socket.Socket, db *gorm.DB, pseudo string,
	sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		if len(args) < 2 {
			client.Emit("error", gin.H{"error": "Missing room name or message"})
			return
		}
		roomName, ok := args[0].(string)
		if !ok || roomName == "" {
			client.Emit("error", gin.H{"error": "Room name must be a non empty string"})
			return
		}
		text, ok := args[1].(string)
		if !ok || text == "" {
			client.Emit("error", gin.H{"error": "Message must be a non empty string"})
			return
		}

		if _, err := utils.CheckRoomExists(db, roomName); err != nil {
			client.Emit("error", gin.H{"error": err.Error()})
			return
		}

		sio.Sio_server.To(socket.Room(roomName)).Emit("new_room_message", gin.H{
			"room":      roomName,
			"message":   text,
			"pseudo":    pseudo,
			"timestamp": time.Now(),
		})
	}
}

func firstString(args []interface{}) (string, bool) {
	if len(args) < 1 {
		return "", false
	}
	s, ok := args[0].(string)
	return s, ok && s != ""
}

// HandleChatHistory replays the recent chat history to the requesting client.
func HandleChatHistory(redisClient *redis.RedisClient, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		if redisClient == nil {
			client.Emit("chat_history", []redis_models.ChatMessage{})
			return
		}
		messages, err := redisClient.GetRecentChatMessages()
		if err != nil {
			log.Printf("Could not load chat history. Details => %v", err)
			client.Emit("error", gin.H{"error": "Could not load chat history"})
			return
		}
		client.Emit("chat_history", messages)
	}
}
