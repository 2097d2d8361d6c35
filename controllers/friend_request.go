package controllers

import (
	"net/http"
	"strconv"

	"Gimmi/services/social"
	"Gimmi/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SendFriendRequestBody carries the sender and the recipient of a request
type SendFriendRequestBody struct {
	From string `json:"from" binding:"required"`
	To   string `json:"to" binding:"required"`
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

// @Summary Get every friend request
// @Description Returns all friend requests with sender and recipient resolved
// @Tags FriendRequest
// @Produce json
// @Success 200 {array} social.FriendRequestView
// @Router /gimmiAPI/friendrequests [get]
func GetAllFriendRequests(db *gorm.DB) gin.HandlerFunc {
	service := &social.FriendRequestService{DB: db}
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, service.GetAll())
	}
}

// @Summary Get the friend requests sent by a user
// @Tags FriendRequest
// @Produce json
// @Param pseudo path string true "Sender"
// @Success 200 {array} social.FriendRequestView
// @Failure 404 {object} object{error=string}
// @Router /gimmiAPI/friendrequests/from/{pseudo} [get]
func GetFriendRequestsFrom(db *gorm.DB) gin.HandlerFunc {
	service := &social.FriendRequestService{DB: db}
	return func(c *gin.Context) {
		views, err := service.GetBySender(c.Param("pseudo"))
		if err != nil {
			c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, views)
	}
}

// @Summary Get the friend requests received by a user
// @Tags FriendRequest
// @Produce json
// @Param pseudo path string true "Recipient"
// @Success 200 {array} social.FriendRequestView
// @Failure 404 {object} object{error=string}
// @Router /gimmiAPI/friendrequests/to/{pseudo} [get]
func GetFriendRequestsTo(db *gorm.DB) gin.HandlerFunc {
	service := &social.FriendRequestService{DB: db}
	return func(c *gin.Context) {
		views, err := service.GetByRecipient(c.Param("pseudo"))
		if err != nil {
			c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, views)
	}
}

// @Summary Send a friend request
// @Description Creates a pending friend request, or resets a refused or accepted one
// @Tags FriendRequest
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param body body SendFriendRequestBody true "Sender and recipient"
// @Success 201 {object} social.FriendRequestView
// @Failure 400 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /gimmiAPI/auth/friendrequests [post]
// @Security ApiKeyAuth
func SendFriendRequest(db *gorm.DB) gin.HandlerFunc {
	service := &social.FriendRequestService{DB: db}
	return func(c *gin.Context) {
		var req SendFriendRequestBody
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := service.Create(req.From, req.To); err != nil {
			c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Friend request sent"})
	}
}

// @Summary Accept a friend request
// @Description Makes the two users friends and marks the request accepted
// @Tags FriendRequest
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param id path int true "Request id"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /gimmiAPI/auth/friendrequests/accept/{id} [patch]
// @Security ApiKeyAuth
func AcceptFriendRequest(db *gorm.DB) gin.HandlerFunc {
	service := &social.FriendRequestService{DB: db}
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		if err := service.Accept(id); err != nil {
			c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Friend request accepted"})
	}
}

// @Summary Refuse a friend request
// @Description Removes the request so it can be sent again later
// @Tags FriendRequest
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param id path int true "Request id"
// @Success 200 {object} object{message=string}
// @Router /gimmiAPI/auth/friendrequests/refuse/{id} [patch]
// @Security ApiKeyAuth
func RefuseFriendRequest(db *gorm.DB) gin.HandlerFunc {
	service := &social.FriendRequestService{DB: db}
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		if err := service.Refuse(id); err != nil {
			c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Friend request refused"})
	}
}

// @Summary Delete a friend request
// @Tags FriendRequest
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param id path int true "Request id"
// @Success 200 {object} object{message=string}
// @Router /gimmiAPI/auth/friendrequests/{id} [delete]
// @Security ApiKeyAuth
func DeleteFriendRequest(db *gorm.DB) gin.HandlerFunc {
	service := &social.FriendRequestService{DB: db}
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		if err := service.Delete(id); err != nil {
			c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Friend request deleted"})
	}
}
