package controllers

import (
	"net/http"

	"Gimmi/services/social"
	"Gimmi/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SendGameInvitationBody carries a room invitation between two users
type SendGameInvitationBody struct {
	RoomName string `json:"roomName" binding:"required"`
	From     string `json:"from" binding:"required"`
	To       string `json:"to" binding:"required"`
}

// @Summary Get every game room invitation
// @Tags GameInvitation
// @Produce json
// @Success 200 {array} social.GameRoomInvitationView
// @Router /gimmiAPI/gameinvitations [get]
func GetAllGameInvitations(db *gorm.DB) gin.HandlerFunc {
	service := &social.GameRoomInvitationService{DB: db}
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, service.GetAll())
	}
}

// @Summary Get one game room invitation
// @Tags GameInvitation
// @Produce json
// @Param id path int true "Invitation id"
// @Success 200 {object} social.GameRoomInvitationView
// @Failure 404 {object} object{error=string}
// @Router /gimmiAPI/gameinvitations/{id} [get]
func GetGameInvitationByID(db *gorm.DB) gin.HandlerFunc {
	service := &social.GameRoomInvitationService{DB: db}
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

// @Summary Invite a user to a game room
// @Description Creates a pending invitation, or resets a refused or accepted one
// @Tags GameInvitation
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param body body SendGameInvitationBody true "Room, sender and recipient"
// @Success 201 {object} object{message=string}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /gimmiAPI/auth/gameinvitations [post]
// @Security ApiKeyAuth
func SendGameInvitation(db *gorm.DB) gin.HandlerFunc {
	service := &social.GameRoomInvitationService{DB: db}
	return func(c *gin.Context) {
		var req SendGameInvitationBody
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := service.Create(req.RoomName, req.From, req.To); err != nil {
			c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Invitation sent"})
	}
}

// @Summary Accept a game room invitation
// @Description Joins the recipient to the room and marks the invitation accepted
// @Tags GameInvitation
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param id path int true "Invitation id"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /gimmiAPI/auth/gameinvitations/accept/{id} [patch]
// @Security ApiKeyAuth
func AcceptGameInvitation(db *gorm.DB) gin.HandlerFunc {
	service := &social.GameRoomInvitationService{DB: db}
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		if err := service.Accept(id); err != nil {
			c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Invitation accepted"})
	}
}

// @Summary Refuse a game room invitation
// @Description Removes the invitation so it can be sent again later
// @Tags GameInvitation
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param id path int true "Invitation id"
// @Success 200 {object} object{message=string}
// @Router /gimmiAPI/auth/gameinvitations/refuse/{id} [patch]
// @Security ApiKeyAuth
func RefuseGameInvitation(db *gorm.DB) gin.HandlerFunc {
	service := &social.GameRoomInvitationService{DB: db}
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		if err := service.Refuse(id); err != nil {
			c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Invitation refused"})
	}
}

// @Summary Delete a game room invitation
// @Tags GameInvitation
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param id path int true "Invitation id"
// @Success 200 {object} object{message=string}
// @Router /gimmiAPI/auth/gameinvitations/{id} [delete]
// @Security ApiKeyAuth
func DeleteGameInvitation(db *gorm.DB) gin.HandlerFunc {
	service := &social.GameRoomInvitationService{DB: db}
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		if err := service.Delete(id); err != nil {
			c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Invitation deleted"})
	}
}
