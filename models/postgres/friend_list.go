package postgres

import (
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/*
 * 'FriendList' holds the confirmed friends of one account. There is at most
 * one list per owner; the roster is a jsonb array of account IDs. It contains
 * a reference to User.
 */
type FriendList struct {
	ID      uint                      `gorm:"primaryKey"`
	OwnerID uint                      `gorm:"not null;uniqueIndex"`
	Friends datatypes.JSONSlice[uint] `gorm:"type:jsonb;default:'[]'"`

	// Relationship with the owning account
	Owner User `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
}

// HasFriend reports whether the given account is already in the roster.
func (fl *FriendList) HasFriend(userID uint) bool {
	for _, id := range fl.Friends {
		if id == userID {
			return true
		}
	}
	return false
}

// RemoveFriend deletes the given account from the roster. Returns false
// when the account was not there.
func (fl *FriendList) RemoveFriend(userID uint) bool {
	for i, id := range fl.Friends {
		if id == userID {
			fl.Friends = append(fl.Friends[:i], fl.Friends[i+1:]...)
			return true
		}
	}
	return false
}

// GORM hook to keep the roster free of the owner itself and of duplicates
func (fl *FriendList) BeforeSave(tx *gorm.DB) error {
	seen := make(map[uint]bool, len(fl.Friends))
	for _, id := range fl.Friends {
		if id == fl.OwnerID {
			return errors.New("friend list cannot contain its own owner")
		}
		if seen[id] {
			return errors.New("friend list cannot contain duplicates")
		}
		seen[id] = true
	}
	return nil
}
