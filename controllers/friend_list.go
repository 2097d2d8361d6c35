package controllers

import (
	"net/http"

	"Gimmi/services/social"
	"Gimmi/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// FriendshipRequest carries the two pseudos of a friendship operation
type FriendshipRequest struct {
	Pseudo       string `json:"pseudo" binding:"required"`
	FriendPseudo string `json:"friendPseudo" binding:"required"`
}

// @Summary Get every friend list
// @Description Returns all friend lists with the friends resolved to pseudos
// @Tags FriendList
// @Produce json
// @Success 200 {array} social.FriendListView
// @Router /gimmiAPI/friendlists [get]
func GetAllFriendLists(db *gorm.DB) gin.HandlerFunc {
	service := &social.FriendListService{DB: db}
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, service.GetAll())
	}
}

// @Summary Get the friend list of a user
// @Description Returns the friend list owned by the given pseudo
// @Tags FriendList
// @Produce json
// @Param pseudo path string true "Owner of the list"
// @Success 200 {object} social.FriendListView
// @Failure 404 {object} object{error=string}
// @Router /gimmiAPI/friendlists/{pseudo} [get]
func GetFriendListByOwner(db *gorm.DB) gin.HandlerFunc {
	service := &social.FriendListService{DB: db}
	return func(c *gin.Context) {
		view, err := service.GetByOwner(c.Param("pseudo"))
		if err != nil {
			c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

// @Summary Check a friendship
// @Description Tells whether the two given users are friends
// @Tags FriendList
// @Produce json
// @Param pseudo query string true "First user"
// @Param friendPseudo query string true "Second user"
// @Success 200 {object} object{areFriends=bool}
// @Failure 404 {object} object{error=string}
// @Router /gimmiAPI/friendlists/friendship/check [get]
func AreFriends(db *gorm.DB) gin.HandlerFunc {
	service := &social.FriendListService{DB: db}
	return func(c *gin.Context) {
		pseudo := c.Query("pseudo")
		friend := c.Query("friendPseudo")
		if pseudo == "" || friend == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "pseudo and friendPseudo query parameters are required"})
			return
		}
		areFriends, err := service.AreFriends(pseudo, friend)
		if err != nil {
			c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"areFriends": areFriends})
	}
}

// @Summary Create a friend list
// @Description Creates an empty friend list for the given owner
// @Tags FriendList
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param body body object{pseudo=string} true "Owner of the list"
// @Success 201 {object} social.FriendListView
// @Failure 409 {object} object{error=string}
// @Router /gimmiAPI/auth/friendlists [post]
// @Security ApiKeyAuth
func CreateFriendList(db *gorm.DB) gin.HandlerFunc {
	service := &social.FriendListService{DB: db}
	return func(c *gin.Context) {
		var req struct {
			Pseudo string `json:"pseudo" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		view, err := service.Create(req.Pseudo)
		if err != nil {
			c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, view)
	}
}

// @Summary Remove a friendship
// @Description Removes each user from the other's friend list
// @Tags FriendList
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param body body FriendshipRequest true "The two users"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} object{error=string}
// @Router /gimmiAPI/auth/friendlists/friendship [delete]
// @Security ApiKeyAuth
func SuppressFriendship(db *gorm.DB) gin.HandlerFunc {
	service := &social.FriendListService{DB: db}
	return func(c *gin.Context) {
		var req FriendshipRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := service.SuppressFriendship(req.Pseudo, req.FriendPseudo); err != nil {
			c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Friendship successfully removed"})
	}
}
