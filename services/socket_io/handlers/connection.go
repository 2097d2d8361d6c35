package handlers

import (
	"log"

	models "Gimmi/models/postgres"
	"Gimmi/services/redis"
	socketio_types "Gimmi/services/socket_io/types"

	"github.com/zishang520/socket.io/v2/socket"
	"gorm.io/gorm"
)

// Function to handle socket.io client disconnections.
func HandleDisconnecting(client *socket.Socket, pseudo string, db *gorm.DB,
	redisClient *redis.RedisClient, sio *socketio_types.SocketServer) func(args ...interface{}) {
	leaveGame := HandleDisconnectGame(client, pseudo, sio)
	return func(args ...interface{}) {
		log.Printf("User %s is disconnecting", pseudo)

		// Drop the user from the game session first
		leaveGame()

		sio.RemoveConnection(pseudo)

		if err := db.Model(&models.User{}).Where("pseudo = ?", pseudo).
			Update("status", models.UserStatusOffline).Error; err != nil {
			log.Printf("Could not mark %s offline. Details => %v", pseudo, err)
		}
		if redisClient != nil {
			if err := redisClient.DeletePlayerPresence(pseudo); err != nil {
				log.Printf("Could not clear presence of %s. Details => %v", pseudo, err)
			}
		}
	}
}
