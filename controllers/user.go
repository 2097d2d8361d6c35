package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"Gimmi/middleware"
	models "Gimmi/models/postgres"
	redis_models "Gimmi/models/redis"
	"Gimmi/services/redis"
	"Gimmi/services/social"
	"Gimmi/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const defaultDescription = "Hello, I'm a new user !"

// SignUpRequest is the JSON body of POST /users/signup
type SignUpRequest struct {
	Pseudo      string `json:"pseudo" binding:"required,min=1,max=50"`
	Password    string `json:"password" binding:"required,min=4,max=72"`
	Email       string `json:"email" binding:"omitempty,email"`
	Description string `json:"description" binding:"max=255"`
}

// AuthCredentials is the JSON body of POST /users/signin
type AuthCredentials struct {
	Pseudo   string `json:"pseudo" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the public shape of an account
type UserResponse struct {
	ID          uint   `json:"id"`
	Pseudo      string `json:"pseudo"`
	Email       string `json:"email,omitempty"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

func userResponse(user *models.User) UserResponse {
	resp := UserResponse{
		ID:          user.ID,
		Pseudo:      user.Pseudo,
		Description: user.Description,
		Status:      user.Status,
	}
	if user.Email != nil {
		resp.Email = *user.Email
	}
	return resp
}

// mirrorPresence pushes the account status into Redis, best effort.
func mirrorPresence(redisClient *redis.RedisClient, pseudo string, status redis_models.PlayerStatus) {
	if redisClient == nil {
		return
	}
	presence := &redis_models.PlayerPresence{
		Pseudo:   pseudo,
		Status:   status,
		LastPing: time.Now().Unix(),
	}
	if err := redisClient.SavePlayerPresence(presence); err != nil {
		log.Printf("Could not mirror presence of %s. Details => %v", pseudo, err)
	}
}

// @Summary Create a new account
// @Description Registers a user, initialises their friend list and returns a JWT
// @Tags User
// @Accept json
// @Produce json
// @Param body body SignUpRequest true "Account data"
// @Success 201 {object} object{token=string}
// @Failure 400 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /users/signup [post]
func SignUp(db *gorm.DB, redisClient *redis.RedisClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignUpRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var existing models.User
		err := db.Where("pseudo = ?", req.Pseudo).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "User " + req.Pseudo + " already exists. Connect with your password or change your pseudo"})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error while checking the pseudo"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error while hashing the password"})
			return
		}

		description := req.Description
		if description == "" {
			description = defaultDescription
		}
		user := models.User{
			Pseudo:       req.Pseudo,
			PasswordHash: string(hash),
			Description:  description,
			Status:       models.UserStatusOnline,
		}
		if req.Email != "" {
			user.Email = &req.Email
		}
		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error while saving the user"})
			return
		}

		// Init user linked attributes (important)
		lists := &social.FriendListService{DB: db}
		if _, err := lists.Create(user.Pseudo); err != nil {
			log.Printf("Could not init friend list for %s. Details => %v", user.Pseudo, err)
		}

		mirrorPresence(redisClient, user.Pseudo, redis_models.StatusOnline)

		token, err := middleware.GenerateToken(user.Pseudo, user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error while generating the token"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"token": token})
	}
}

// @Summary Sign in as a user
// @Description Validates the credentials, marks the account online and returns a JWT
// @Tags User
// @Accept json
// @Produce json
// @Param body body AuthCredentials true "Credentials"
// @Success 200 {object} object{token=string}
// @Failure 401 {object} object{error=string}
// @Router /users/signin [post]
func SignIn(db *gorm.DB, redisClient *redis.RedisClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AuthCredentials
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var user models.User
		if err := db.Where("pseudo = ?", req.Pseudo).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}

		if err := db.Model(&user).Update("status", models.UserStatusOnline).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update the user status"})
			return
		}
		mirrorPresence(redisClient, user.Pseudo, redis_models.StatusOnline)

		session := sessions.Default(c)
		session.Set("Pseudo", user.Pseudo)
		if err := session.Save(); err != nil {
			log.Printf("Could not save session for %s. Details => %v", user.Pseudo, err)
		}

		token, err := middleware.GenerateToken(user.Pseudo, user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error while generating the token"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}

// @Summary Sign out as a user
// @Description Marks the account offline and clears its presence
// @Tags User
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param pseudo path string true "Handle of the account"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{error=string}
// @Router /gimmiAPI/auth/users/signout/{pseudo} [patch]
// @Security ApiKeyAuth
func SignOut(db *gorm.DB, redisClient *redis.RedisClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		pseudo := c.Param("pseudo")

		user, err := social.ResolveHandle(db, pseudo)
		if err != nil {
			c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}

		if err := db.Model(user).Update("status", models.UserStatusOffline).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update the user status"})
			return
		}
		if redisClient != nil {
			if err := redisClient.DeletePlayerPresence(user.Pseudo); err != nil {
				log.Printf("Could not clear presence of %s. Details => %v", user.Pseudo, err)
			}
		}

		session := sessions.Default(c)
		session.Delete("Pseudo")
		if err := session.Save(); err != nil {
			log.Printf("Could not clear session for %s. Details => %v", user.Pseudo, err)
		}

		c.JSON(http.StatusOK, gin.H{"message": "User " + pseudo + " successfully disconnected"})
	}
}

// @Summary Get every account
// @Description Returns the public information of all users
// @Tags User
// @Produce json
// @Success 200 {array} UserResponse
// @Router /gimmiAPI/users [get]
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.Find(&users).Error; err != nil {
			log.Printf("No users found. Details => %v", err)
			c.JSON(http.StatusOK, []UserResponse{})
			return
		}

		resp := make([]UserResponse, 0, len(users))
		for i := range users {
			resp = append(resp, userResponse(&users[i]))
		}
		c.JSON(http.StatusOK, resp)
	}
}

// @Summary Get one account by pseudo
// @Description Returns the public information of a single user
// @Tags User
// @Produce json
// @Param pseudo path string true "Handle of the account"
// @Success 200 {object} UserResponse
// @Failure 404 {object} object{error=string}
// @Router /gimmiAPI/users/{pseudo} [get]
func GetUserByPseudo(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := social.ResolveHandle(db, c.Param("pseudo"))
		if err != nil {
			c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, userResponse(user))
	}
}
