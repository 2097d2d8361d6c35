package postgres

import (
	"time"

	"gorm.io/datatypes"
)

/*
 * 'GameRoom' defines the structure of a Gimmi game room. The roster is a
 * jsonb array of account IDs; the creator is enrolled at creation time and
 * the room disappears when the last player exits. It contains a reference
 * to User.
 */
type GameRoom struct {
	ID          uint                      `gorm:"primaryKey"`
	RoomName    string                    `gorm:"size:50;not null;uniqueIndex"`
	CurrentGame string                    `gorm:"size:50;not null"`
	CreatorID   uint                      `gorm:"not null;index:idx_game_rooms_creator"`
	Players     datatypes.JSONSlice[uint] `gorm:"type:jsonb;default:'[]'"`
	MaxPlayers  int                       `gorm:"default:2"`
	CreatedAt   time.Time                 `gorm:"default:CURRENT_TIMESTAMP"`

	// Game lifecycle flags
	GameStarted    bool `gorm:"default:false"`
	GameTerminated bool `gorm:"default:false"`
	GameSaved      bool `gorm:"default:false"`

	// Relationship with the creator's account
	Creator User `gorm:"foreignKey:CreatorID"`
}

// HasPlayer reports whether the given account is enrolled in the room.
func (gr *GameRoom) HasPlayer(userID uint) bool {
	for _, id := range gr.Players {
		if id == userID {
			return true
		}
	}
	return false
}

// RemovePlayer takes the given account out of the roster. Returns false
// when the account was not enrolled.
func (gr *GameRoom) RemovePlayer(userID uint) bool {
	for i, id := range gr.Players {
		if id == userID {
			gr.Players = append(gr.Players[:i], gr.Players[i+1:]...)
			return true
		}
	}
	return false
}
