package social

import (
	"errors"
	"log"

	"Gimmi/models/postgres"
	"Gimmi/utils"

	"gorm.io/gorm"
)

// FriendListService is the store of confirmed friendships. One list per
// owner; friendship acceptance writes both directions.
type FriendListService struct {
	DB *gorm.DB
}

// FriendListView is the populated response shape of a friend list.
type FriendListView struct {
	ID      uint     `json:"id"`
	Owner   string   `json:"owner"`
	Friends []string `json:"friends"`
}

// GetAll returns every friend list with owner and friends expanded to
// pseudos. An empty platform yields an empty slice, never an error.
func (s *FriendListService) GetAll() []FriendListView {
	var lists []postgres.FriendList
	if err := s.DB.Preload("Owner").Find(&lists).Error; err != nil {
		log.Printf("No friend list found. Details => %v", err)
		return []FriendListView{}
	}

	views := make([]FriendListView, 0, len(lists))
	for _, list := range lists {
		friends, err := pseudosFor(s.DB, list.Friends)
		if err != nil {
			log.Printf("Could not expand friend list %d. Details => %v", list.ID, err)
			continue
		}
		views = append(views, FriendListView{ID: list.ID, Owner: list.Owner.Pseudo, Friends: friends})
	}
	return views
}

// GetByOwner returns the populated friend list of one account.
func (s *FriendListService) GetByOwner(ownerPseudo string) (*FriendListView, error) {
	owner, err := ResolveHandle(s.DB, ownerPseudo)
	if err != nil {
		return nil, err
	}

	var list postgres.FriendList
	if err := s.DB.Where("owner_id = ?", owner.ID).First(&list).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFound("No friend list found for this user", nil)
		}
		return nil, utils.Internal("Could not find friend list", err)
	}

	friends, err := pseudosFor(s.DB, list.Friends)
	if err != nil {
		return nil, err
	}
	return &FriendListView{ID: list.ID, Owner: owner.Pseudo, Friends: friends}, nil
}

// Create makes an empty friend list for the given account. Each account
// owns at most one list.
func (s *FriendListService) Create(ownerPseudo string) (*FriendListView, error) {
	owner, err := ResolveHandle(s.DB, ownerPseudo)
	if err != nil {
		return nil, err
	}

	var existing postgres.FriendList
	err = s.DB.Where("owner_id = ?", owner.ID).First(&existing).Error
	if err == nil {
		return nil, utils.Conflict("Friend list already exists. Useless to create a new one", nil)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.Internal("Could not check for an existing friend list", err)
	}

	list := postgres.FriendList{OwnerID: owner.ID, Friends: []uint{}}
	if err := s.DB.Create(&list).Error; err != nil {
		return nil, utils.Internal("Could not save friend list", err)
	}
	return &FriendListView{ID: list.ID, Owner: owner.Pseudo, Friends: []string{}}, nil
}

// AreFriends is true when either side's list contains the other account.
// Symmetry is not required: each direction is checked on its own.
func (s *FriendListService) AreFriends(aPseudo, bPseudo string) (bool, error) {
	a, err := ResolveHandle(s.DB, aPseudo)
	if err != nil {
		return false, err
	}
	b, err := ResolveHandle(s.DB, bPseudo)
	if err != nil {
		return false, err
	}
	return areFriends(s.DB, a, b)
}

// AcceptFriendship adds each account to the other's list, lazily creating
// missing lists. Both writes run in one transaction.
func (s *FriendListService) AcceptFriendship(aPseudo, bPseudo string) error {
	a, err := ResolveHandle(s.DB, aPseudo)
	if err != nil {
		return err
	}
	b, err := ResolveHandle(s.DB, bPseudo)
	if err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return acceptFriendship(tx, a, b)
	})
}

// SuppressFriendship removes each account from the other's list. Both
// removals run in one transaction.
func (s *FriendListService) SuppressFriendship(aPseudo, bPseudo string) error {
	a, err := ResolveHandle(s.DB, aPseudo)
	if err != nil {
		return err
	}
	b, err := ResolveHandle(s.DB, bPseudo)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		aList, err := listOf(tx, a.ID)
		if err != nil {
			return err
		}
		bList, err := listOf(tx, b.ID)
		if err != nil {
			return err
		}

		if !aList.RemoveFriend(b.ID) {
			return utils.BadRequest("Friend is not in friend list", nil)
		}
		if !bList.RemoveFriend(a.ID) {
			return utils.BadRequest("Friend is not in friend list", nil)
		}

		if err := tx.Save(aList).Error; err != nil {
			return utils.Internal("Could not save friend list", err)
		}
		if err := tx.Save(bList).Error; err != nil {
			return utils.Internal("Could not save friend list", err)
		}
		return nil
	})
}

// listOf loads an existing friend list or fails with BadRequest.
func listOf(db *gorm.DB, ownerID uint) (*postgres.FriendList, error) {
	var list postgres.FriendList
	if err := db.Where("owner_id = ?", ownerID).First(&list).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.BadRequest("Friend list does not exist", nil)
		}
		return nil, utils.Internal("Could not find friend list", err)
	}
	return &list, nil
}

// getOrCreateList loads an account's friend list, creating an empty one on
// first friendship.
func getOrCreateList(db *gorm.DB, ownerID uint) (*postgres.FriendList, error) {
	var list postgres.FriendList
	err := db.Where("owner_id = ?", ownerID).First(&list).Error
	if err == nil {
		return &list, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.Internal("Could not find friend list", err)
	}

	list = postgres.FriendList{OwnerID: ownerID, Friends: []uint{}}
	if err := db.Create(&list).Error; err != nil {
		return nil, utils.Internal("Could not save friend list", err)
	}
	return &list, nil
}

// acceptFriendship appends both directions of a friendship on the given
// handle (a transaction when called from the services).
func acceptFriendship(tx *gorm.DB, a, b *postgres.User) error {
	aList, err := getOrCreateList(tx, a.ID)
	if err != nil {
		return err
	}
	bList, err := getOrCreateList(tx, b.ID)
	if err != nil {
		return err
	}

	if aList.HasFriend(b.ID) || bList.HasFriend(a.ID) {
		return utils.BadRequest("Friend is already in friend list", nil)
	}

	aList.Friends = append(aList.Friends, b.ID)
	bList.Friends = append(bList.Friends, a.ID)

	if err := tx.Save(aList).Error; err != nil {
		return utils.Internal("Could not save friend list", err)
	}
	if err := tx.Save(bList).Error; err != nil {
		return utils.Internal("Could not save friend list", err)
	}
	return nil
}

// areFriends checks both directions without requiring either list to exist.
func areFriends(db *gorm.DB, a, b *postgres.User) (bool, error) {
	var aList postgres.FriendList
	err := db.Where("owner_id = ?", a.ID).First(&aList).Error
	if err == nil && aList.HasFriend(b.ID) {
		return true, nil
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, utils.Internal("Could not find friend list", err)
	}

	var bList postgres.FriendList
	err = db.Where("owner_id = ?", b.ID).First(&bList).Error
	if err == nil && bList.HasFriend(a.ID) {
		return true, nil
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, utils.Internal("Could not find friend list", err)
	}
	return false, nil
}
