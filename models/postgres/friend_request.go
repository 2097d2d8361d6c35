package postgres

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

/*
 * 'FriendRequest' represents the pending/accepted/refused lifecycle between
 * two accounts. At most one active request exists per ordered (from,to)
 * pair. It contains references to User.
 */
type FriendRequest struct {
	ID          uint      `gorm:"primaryKey"`
	FromID      uint      `gorm:"not null;uniqueIndex:idx_friend_requests_pair"`
	ToID        uint      `gorm:"not null;uniqueIndex:idx_friend_requests_pair"`
	SendingDate time.Time `gorm:"default:CURRENT_TIMESTAMP"`
	Status      string    `gorm:"size:20;not null;default:'PENDING'"`

	// Relationships
	From User `gorm:"foreignKey:FromID;constraint:OnDelete:CASCADE"`
	To   User `gorm:"foreignKey:ToID;constraint:OnDelete:CASCADE"`
}

// GORM hook to ensure a user never sends a request to themselves
func (fr *FriendRequest) BeforeSave(tx *gorm.DB) error {
	if fr.FromID == fr.ToID {
		return errors.New("cannot send a friend request to yourself")
	}
	return nil
}
