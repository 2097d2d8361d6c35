package social

import (
	"errors"
	"fmt"
	"log"
	"time"

	"Gimmi/models/postgres"
	"Gimmi/utils"

	"gorm.io/gorm"
)

// FriendRequestService drives the PENDING -> {ACCEPTED, REFUSED} lifecycle
// between two accounts. Refusing a request deletes the record.
type FriendRequestService struct {
	DB *gorm.DB
}

// FriendRequestView is the populated response shape of a friend request.
type FriendRequestView struct {
	ID          uint   `json:"id"`
	From        string `json:"from"`
	To          string `json:"to"`
	SendingDate string `json:"sendingDate"`
	Status      string `json:"status"`
}

func friendRequestView(fr *postgres.FriendRequest) FriendRequestView {
	return FriendRequestView{
		ID:          fr.ID,
		From:        fr.From.Pseudo,
		To:          fr.To.Pseudo,
		SendingDate: fr.SendingDate.Format(dateTimeLayout),
		Status:      fr.Status,
	}
}

// GetAll returns every friend request with both ends populated.
func (s *FriendRequestService) GetAll() []FriendRequestView {
	var requests []postgres.FriendRequest
	if err := s.DB.Preload("From").Preload("To").Find(&requests).Error; err != nil {
		log.Printf("Could not get friend requests. Details => %v", err)
		return []FriendRequestView{}
	}

	views := make([]FriendRequestView, 0, len(requests))
	for i := range requests {
		views = append(views, friendRequestView(&requests[i]))
	}
	return views
}

// GetBySender returns the requests a user has sent. Nothing matching is an
// empty slice, not an error.
func (s *FriendRequestService) GetBySender(senderPseudo string) ([]FriendRequestView, error) {
	sender, err := ResolveHandle(s.DB, senderPseudo)
	if err != nil {
		return nil, err
	}
	return s.findRequests("from_id = ?", sender.ID)
}

// GetByRecipient returns the requests sent to a user.
func (s *FriendRequestService) GetByRecipient(recipientPseudo string) ([]FriendRequestView, error) {
	recipient, err := ResolveHandle(s.DB, recipientPseudo)
	if err != nil {
		return nil, err
	}
	return s.findRequests("to_id = ?", recipient.ID)
}

func (s *FriendRequestService) findRequests(query string, arg interface{}) ([]FriendRequestView, error) {
	var requests []postgres.FriendRequest
	if err := s.DB.Preload("From").Preload("To").Where(query, arg).Find(&requests).Error; err != nil {
		return nil, utils.Internal("Could not get friend requests", err)
	}

	views := make([]FriendRequestView, 0, len(requests))
	for i := range requests {
		views = append(views, friendRequestView(&requests[i]))
	}
	return views, nil
}

// Create opens a request from one account to another. Sending again while a
// request is PENDING fails; sending again after a terminal state resets the
// existing record to PENDING with a fresh date.
func (s *FriendRequestService) Create(fromPseudo, toPseudo string) error {
	sender, err := ResolveHandle(s.DB, fromPseudo)
	if err != nil {
		return err
	}
	receiver, err := ResolveHandle(s.DB, toPseudo)
	if err != nil {
		return err
	}

	alreadyFriends, err := areFriends(s.DB, sender, receiver)
	if err != nil {
		return err
	}
	if alreadyFriends {
		return utils.Conflict("Users are already friends", nil)
	}

	var existing postgres.FriendRequest
	err = s.DB.Where("from_id = ? AND to_id = ?", sender.ID, receiver.ID).First(&existing).Error
	if err == nil {
		return s.resetExistingRequest(&existing)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.Internal("Could not get friend request", err)
	}

	request := postgres.FriendRequest{
		FromID:      sender.ID,
		ToID:        receiver.ID,
		SendingDate: time.Now(),
		Status:      postgres.StatusPending,
	}
	if err := s.DB.Create(&request).Error; err != nil {
		return utils.Internal("Could not create friend request", err)
	}
	return nil
}

// resetExistingRequest applies the existing-request rule: a PENDING request
// cannot be resent; a terminal one flips back to PENDING with a new date.
func (s *FriendRequestService) resetExistingRequest(request *postgres.FriendRequest) error {
	switch request.Status {
	case postgres.StatusPending:
		return utils.BadRequest("Friend request already exists and is PENDING", nil)
	default:
		err := s.DB.Model(&postgres.FriendRequest{}).Where("id = ?", request.ID).
			Updates(map[string]interface{}{
				"status":       postgres.StatusPending,
				"sending_date": time.Now(),
			}).Error
		if err != nil {
			return utils.Internal("Could not update friend request", err)
		}
		return nil
	}
}

// Accept moves a PENDING request to ACCEPTED and records the friendship on
// both lists. List writes and the status flip run in one transaction so a
// partial failure cannot leave the users friends with a request still open.
func (s *FriendRequestService) Accept(id uint) error {
	var request postgres.FriendRequest
	if err := s.DB.First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound("Friend request does not exist", nil)
		}
		return utils.Internal("Could not get friend request", err)
	}

	if request.Status != postgres.StatusPending {
		return utils.BadRequest("Friend request status is refused or already accepted", nil)
	}

	sender, err := ResolveID(s.DB, request.FromID)
	if err != nil {
		return err
	}
	receiver, err := ResolveID(s.DB, request.ToID)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := acceptFriendship(tx, sender, receiver); err != nil {
			return err
		}
		err := tx.Model(&postgres.FriendRequest{}).Where("id = ?", request.ID).
			Update("status", postgres.StatusAccepted).Error
		if err != nil {
			return utils.Internal("Could not update friend request", err)
		}
		return nil
	})
}

// Refuse drops the request record. Refusal does not keep history.
func (s *FriendRequestService) Refuse(id uint) error {
	if err := s.DB.Delete(&postgres.FriendRequest{}, id).Error; err != nil {
		return utils.Internal(fmt.Sprintf("Could not refuse friend request %d", id), err)
	}
	return nil
}

// Delete removes the request record by id.
func (s *FriendRequestService) Delete(id uint) error {
	if err := s.DB.Delete(&postgres.FriendRequest{}, id).Error; err != nil {
		return utils.Internal(fmt.Sprintf("Could not delete friend request %d", id), err)
	}
	return nil
}
