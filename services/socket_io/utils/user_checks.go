package socketio_utils

import (
	"Gimmi/middleware"
	models "Gimmi/models/postgres"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
	"gorm.io/gorm"
)

// Function that verifies a socket.io client connection using JWT authentication.
// It extracts the pseudo from the JWT token and checks it against the database.
func VerifyUserConnection(client *socket.Socket, db *gorm.DB) (success bool, pseudo string) {
	// Checks if we have auth data in the connection
	authData, ok := client.Handshake().Auth.(map[string]interface{})
	if !ok {
		fmt.Println("No auth data provided in handshake!")
		client.Emit("error", gin.H{"error": "Authentication failed: missing auth data"})
		return false, ""
	}

	pseudo, err := middleware.Socketio_JWT_decoder(authData)
	if err != nil {
		fmt.Println("Error decoding JWT:", err)
		client.Emit("error", gin.H{
			"error": "Authentication failed: invalid JWT. Remember to set it on the 'authorization' field and with the 'Bearer ' prefix.",
		})
		return false, ""
	}

	var user models.User
	if err := db.Where("pseudo = ?", pseudo).First(&user).Error; err != nil {
		fmt.Println("Error fetching user from database:", err)
		client.Emit("error", gin.H{"error": "Authentication failed: could not find user"})
		return false, pseudo
	}

	return true, user.Pseudo
}
