package postgres

import (
	"time"
)

// Presence values stored in User.Status
const (
	UserStatusOnline  = "online"
	UserStatusOffline = "offline"
)

/*
 * 'User' contains the blueprint definition of a Gimmi account. The pseudo
 * is the public handle, unique across the platform; the numeric ID is what
 * every other table references.
 */
type User struct {
	ID           uint      `gorm:"primaryKey"`
	Pseudo       string    `gorm:"size:50;not null;uniqueIndex"`
	Email        *string   `gorm:"size:100"`
	PasswordHash string    `gorm:"size:255;not null"`
	Description  string    `gorm:"size:255"`
	Status       string    `gorm:"size:20;not null;default:'offline'"`
	MemberSince  time.Time `gorm:"default:CURRENT_TIMESTAMP"`
}
