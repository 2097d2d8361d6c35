package routes

import (
	"Gimmi/controllers"
	"Gimmi/middleware"
	"Gimmi/services/redis"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, db *gorm.DB, redisClient *redis.RedisClient) {
	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes group
	api := router.Group("/gimmiAPI")

	api.GET("/ping", controllers.Ping())

	// Accounts
	api.POST("/users/signup", controllers.SignUp(db, redisClient))
	api.POST("/users/signin", controllers.SignIn(db, redisClient))
	api.GET("/users", controllers.GetAllUsers(db))
	api.GET("/users/:pseudo", controllers.GetUserByPseudo(db))

	// Read only social data
	api.GET("/friendlists", controllers.GetAllFriendLists(db))
	api.GET("/friendlists/friendship/check", controllers.AreFriends(db))
	api.GET("/friendlists/:pseudo", controllers.GetFriendListByOwner(db))

	api.GET("/friendrequests", controllers.GetAllFriendRequests(db))
	api.GET("/friendrequests/from/:pseudo", controllers.GetFriendRequestsFrom(db))
	api.GET("/friendrequests/to/:pseudo", controllers.GetFriendRequestsTo(db))

	api.GET("/gamerooms", controllers.GetAllGameRooms(db))
	api.GET("/gamerooms/:id", controllers.GetGameRoomByID(db))

	api.GET("/gameinvitations", controllers.GetAllGameInvitations(db))
	api.GET("/gameinvitations/:id", controllers.GetGameInvitationByID(db))

	// Routes that require authentication
	authentication := api.Group("/auth")
	authentication.Use(middleware.AuthRequired)
	{
		authentication.PATCH("/users/signout/:pseudo", controllers.SignOut(db, redisClient))

		authentication.POST("/friendlists", controllers.CreateFriendList(db))
		authentication.DELETE("/friendlists/friendship", controllers.SuppressFriendship(db))

		authentication.POST("/friendrequests", controllers.SendFriendRequest(db))
		authentication.PATCH("/friendrequests/accept/:id", controllers.AcceptFriendRequest(db))
		authentication.PATCH("/friendrequests/refuse/:id", controllers.RefuseFriendRequest(db))
		authentication.DELETE("/friendrequests/:id", controllers.DeleteFriendRequest(db))

		authentication.POST("/gamerooms", controllers.CreateGameRoom(db))
		authentication.POST("/gamerooms/:roomName/join", controllers.JoinGameRoom(db))
		authentication.POST("/gamerooms/:roomName/exit", controllers.ExitGameRoom(db))
		authentication.PATCH("/gamerooms/:roomName", controllers.UpdateGameRoom(db))
		authentication.DELETE("/gamerooms/:roomName", controllers.DeleteGameRoom(db))

		authentication.POST("/gameinvitations", controllers.SendGameInvitation(db))
		authentication.PATCH("/gameinvitations/accept/:id", controllers.AcceptGameInvitation(db))
		authentication.PATCH("/gameinvitations/refuse/:id", controllers.RefuseGameInvitation(db))
		authentication.DELETE("/gameinvitations/:id", controllers.DeleteGameInvitation(db))
	}
}
