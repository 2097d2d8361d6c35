package controllers

import (
	"net/http"

	"Gimmi/constants/game"
	"Gimmi/services/social"
	"Gimmi/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateGameRoomBody is the JSON body of the room creation endpoint
type CreateGameRoomBody struct {
	RoomName    string `json:"roomName" binding:"required,min=1,max=50"`
	CurrentGame string `json:"currentGame"`
	Creator     string `json:"creator" binding:"required"`
	MaxPlayers  int    `json:"maxPlayers" binding:"omitempty,min=2"`
}

// RoomMembershipBody carries the player of a join or exit operation
type RoomMembershipBody struct {
	Pseudo string `json:"pseudo" binding:"required"`
}

// @Summary Get every game room
// @Description Returns all game rooms with their players resolved to pseudos
// @Tags GameRoom
// @Produce json
// @Success 200 {array} social.GameRoomView
// @Router /gimmiAPI/gamerooms [get]
func GetAllGameRooms(db *gorm.DB) gin.HandlerFunc {
	service := &social.GameRoomService{DB: db}
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, service.List())
	}
}

// @Summary Get one game room
// @Tags GameRoom
// @Produce json
// @Param id path int true "Room id"
// @Success 200 {object} social.GameRoomView
// @Failure 404 {object} object{error=string}
// @Router /gimmiAPI/gamerooms/{id} [get]
func GetGameRoomByID(db *gorm.DB) gin.HandlerFunc {
	service := &social.GameRoomService{DB: db}
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		view, err := service.GetByID(id)
		if err != nil {
			c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

// @Summary Create a game room
// @Description Creates a room with the creator already enrolled as a player
// @Tags GameRoom
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param body body CreateGameRoomBody true "Room data"
// @Success 201 {object} object{message=string}
// @Failure 409 {object} object{error=string}
// @Router /gimmiAPI/auth/gamerooms [post]
// @Security ApiKeyAuth
func CreateGameRoom(db *gorm.DB) gin.HandlerFunc {
	service := &social.GameRoomService{DB: db}
	return func(c *gin.Context) {
		var req CreateGameRoomBody
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.CurrentGame == "" {
			req.CurrentGame = game.Morpion
		}
		if req.MaxPlayers == 0 {
			req.MaxPlayers = game.MaxPlayersMorpion
		}
		if err := service.Create(req.RoomName, req.CurrentGame, req.Creator, req.MaxPlayers); err != nil {
			c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Game room " + req.RoomName + " created"})
	}
}

// @Summary Join a game room
// @Tags GameRoom
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param roomName path string true "Room name"
// @Param body body RoomMembershipBody true "Joining player"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /gimmiAPI/auth/gamerooms/{roomName}/join [post]
// @Security ApiKeyAuth
func JoinGameRoom(db *gorm.DB) gin.HandlerFunc {
	service := &social.GameRoomService{DB: db}
	return func(c *gin.Context) {
		var req RoomMembershipBody
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := service.Join(c.Param("roomName"), req.Pseudo); err != nil {
			c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "User " + req.Pseudo + " joined the room"})
	}
}

// @Summary Exit a game room
// @Description Removes the player from the room, deleting the room when it becomes empty
// @Tags GameRoom
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param roomName path string true "Room name"
// @Param body body RoomMembershipBody true "Leaving player"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /gimmiAPI/auth/gamerooms/{roomName}/exit [post]
// @Security ApiKeyAuth
func ExitGameRoom(db *gorm.DB) gin.HandlerFunc {
	service := &social.GameRoomService{DB: db}
	return func(c *gin.Context) {
		var req RoomMembershipBody
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := service.Exit(c.Param("roomName"), req.Pseudo); err != nil {
			c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "User " + req.Pseudo + " left the room"})
	}
}

// @Summary Update a game room
// @Description Patches the mutable fields of a room, lifecycle flags included
// @Tags GameRoom
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param roomName path string true "Room name"
// @Param body body social.GameRoomUpdate true "Fields to update"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{error=string}
// @Router /gimmiAPI/auth/gamerooms/{roomName} [patch]
// @Security ApiKeyAuth
func UpdateGameRoom(db *gorm.DB) gin.HandlerFunc {
	service := &social.GameRoomService{DB: db}
	return func(c *gin.Context) {
		var req social.GameRoomUpdate
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := service.Update(c.Param("roomName"), req); err != nil {
			c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Game room updated"})
	}
}

// @Summary Delete a game room
// @Tags GameRoom
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param roomName path string true "Room name"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{error=string}
// @Router /gimmiAPI/auth/gamerooms/{roomName} [delete]
// @Security ApiKeyAuth
func DeleteGameRoom(db *gorm.DB) gin.HandlerFunc {
	service := &social.GameRoomService{DB: db}
	return func(c *gin.Context) {
		if err := service.Delete(c.Param("roomName")); err != nil {
			c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Game room deleted"})
	}
}
