package social

import (
	"errors"
	"fmt"

	"Gimmi/models/postgres"
	"Gimmi/utils"

	"gorm.io/gorm"
)

// Timestamp layout used by every populated view
const dateTimeLayout = "2006-01-02 15:04:05"

// ResolveHandle turns a public pseudo into the stored account. Callers must
// resolve both ends of a relationship before mutating it.
func ResolveHandle(db *gorm.DB, pseudo string) (*postgres.User, error) {
	var user postgres.User
	if err := db.Where("pseudo = ?", pseudo).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFound("User "+pseudo+" does not exist", nil)
		}
		return nil, utils.Internal("Could not look up user "+pseudo, err)
	}
	return &user, nil
}

// ResolveID fetches an account by its generated identifier.
func ResolveID(db *gorm.DB, id uint) (*postgres.User, error) {
	var user postgres.User
	if err := db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFound(fmt.Sprintf("No user found with id %d", id), nil)
		}
		return nil, utils.Internal(fmt.Sprintf("Could not look up user %d", id), err)
	}
	return &user, nil
}

// pseudosFor expands a roster of account IDs into their pseudos, keeping the
// roster order. Unknown IDs are skipped rather than failing the whole read.
func pseudosFor(db *gorm.DB, ids []uint) ([]string, error) {
	pseudos := make([]string, 0, len(ids))
	if len(ids) == 0 {
		return pseudos, nil
	}

	var users []postgres.User
	if err := db.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, utils.Internal("Could not expand account references", err)
	}

	byID := make(map[uint]string, len(users))
	for _, u := range users {
		byID[u.ID] = u.Pseudo
	}
	for _, id := range ids {
		if pseudo, ok := byID[id]; ok {
			pseudos = append(pseudos, pseudo)
		}
	}
	return pseudos, nil
}
