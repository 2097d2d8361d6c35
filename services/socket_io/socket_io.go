package socket_io

import (
	redis_models "Gimmi/models/redis"
	"Gimmi/services/redis"
	"Gimmi/services/socket_io/handlers"

	socketio_types "Gimmi/services/socket_io/types"
	socketio_utils "Gimmi/services/socket_io/utils"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gorm.io/gorm"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io/v2/socket"
)

type MySocketServer socketio_types.SocketServer

func (sio *MySocketServer) Start(router *gin.Engine, db *gorm.DB, redisClient *redis.RedisClient) {
	c := socket.DefaultServerOptions()
	c.SetServeClient(true)
	// NOTE: higher ping interval and timeout to 1) reduce network load and 2) support slower networks
	c.SetPingInterval(5 * time.Second)
	c.SetPingTimeout(3 * time.Second)
	c.SetMaxHttpBufferSize(1000000)
	c.SetConnectTimeout(10 * time.Second)
	c.SetTransports(types.NewSet("polling", "websocket"))
	c.SetCors(&types.Cors{
		Origin:      "*",
		Credentials: true,
	})

	sio.UserConnections = make(map[string]*socket.Socket)

	sio.Sio_server = socket.NewServer(nil, nil)
	sio.Sio_server.On("connection", func(clients ...interface{}) {
		client := clients[0].(*socket.Socket)

		// Check if the client is authenticated
		success, pseudo := socketio_utils.VerifyUserConnection(client, db)
		if !success {
			return
		}

		server := (*socketio_types.SocketServer)(sio)
		server.AddConnection(pseudo, client)
		log.Printf("User %s connected, %d users online", pseudo, len(sio.UserConnections))

		if redisClient != nil {
			presence := &redis_models.PlayerPresence{
				Pseudo:   pseudo,
				Status:   redis_models.StatusOnline,
				LastPing: time.Now().Unix(),
				SocketID: string(client.Id()),
			}
			if err := redisClient.SavePlayerPresence(presence); err != nil {
				log.Printf("Could not save presence of %s. Details => %v", pseudo, err)
			}
		}

		// Global chat
		client.On("send_message", handlers.HandleSendMessage(redisClient, client, pseudo, server))
		client.On("get_chat_history", handlers.HandleChatHistory(redisClient, client))

		// Room scoped chat
		client.On("join_room", handlers.HandleJoinRoomChannel(client, db, pseudo))
		client.On("send_room_message", handlers.HandleRoomMessage(client, db, pseudo, server))

		// Morpion gateway
		client.On("connect_game", handlers.HandleConnectGame(client, pseudo, server))
		client.On("disconnect_game", handlers.HandleDisconnectGame(client, pseudo, server))
		client.On("start_game", handlers.HandleStartGame(client, pseudo, server))
		client.On("game_data_to_server", handlers.HandleGameData(client, pseudo, server))
		client.On("send_case", handlers.HandleGameData(client, pseudo, server))

		// NOTE: will remove sio connection from map
		client.On("disconnecting", handlers.HandleDisconnecting(client, pseudo, db, redisClient, server))
	})

	router.POST("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))
	router.GET("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))

	SignalC := make(chan os.Signal, 1)

	signal.Notify(SignalC, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		for s := range SignalC {
			switch s {
			case syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT:
				sio.Sio_server.Close(nil)
				os.Exit(0)
			}
		}
	}()

	fmt.Println("Socket server started")
}
