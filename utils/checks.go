package utils

import (
	"errors"

	models "Gimmi/models/postgres"

	"gorm.io/gorm"
)

// CheckRoomExists looks a game room up by name
func CheckRoomExists(db *gorm.DB, roomName string) (*models.GameRoom, error) {
	var room models.GameRoom
	err := db.Where("room_name = ?", roomName).First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("This room does not exist", err)
		}
		return nil, Internal("Could not load the room", err)
	}
	return &room, nil
}

// IsPlayerInRoom tells whether the user id is part of the room roster
func IsPlayerInRoom(db *gorm.DB, roomName string, userID uint) (bool, error) {
	room, err := CheckRoomExists(db, roomName)
	if err != nil {
		return false, err
	}
	return room.HasPlayer(userID), nil
}
