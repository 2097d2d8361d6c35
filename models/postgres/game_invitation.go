package postgres

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

/*
 * 'GameRoomInvitation' represents an invitation to join a specific game
 * room. At most one invitation exists per (room, from, to) triple. It
 * contains references to GameRoom and User.
 */
type GameRoomInvitation struct {
	ID          uint      `gorm:"primaryKey"`
	RoomID      uint      `gorm:"not null;uniqueIndex:idx_game_invitations_triple"`
	FromID      uint      `gorm:"not null;uniqueIndex:idx_game_invitations_triple"`
	ToID        uint      `gorm:"not null;uniqueIndex:idx_game_invitations_triple"`
	SendingDate time.Time `gorm:"default:CURRENT_TIMESTAMP"`
	Status      string    `gorm:"size:20;not null;default:'PENDING'"`

	// Relationships
	Room GameRoom `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE"`
	From User     `gorm:"foreignKey:FromID;constraint:OnDelete:CASCADE"`
	To   User     `gorm:"foreignKey:ToID;constraint:OnDelete:CASCADE"`
}

// GORM hook to ensure a user never invites themselves
func (gi *GameRoomInvitation) BeforeSave(tx *gorm.DB) error {
	if gi.FromID == gi.ToID {
		return errors.New("cannot invite yourself to a game room")
	}
	return nil
}
