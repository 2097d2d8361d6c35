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

// GameRoomInvitationService mirrors the friend-request lifecycle, scoped to
// a game room: accepting an invitation enrolls the target in the room.
type GameRoomInvitationService struct {
	DB *gorm.DB
}

// GameRoomInvitationView is the populated response shape of an invitation.
type GameRoomInvitationView struct {
	ID          uint   `json:"id"`
	RoomName    string `json:"roomName"`
	From        string `json:"from"`
	To          string `json:"to"`
	SendingDate string `json:"sendingDate"`
	Status      string `json:"status"`
}

func invitationView(inv *postgres.GameRoomInvitation) GameRoomInvitationView {
	return GameRoomInvitationView{
		ID:          inv.ID,
		RoomName:    inv.Room.RoomName,
		From:        inv.From.Pseudo,
		To:          inv.To.Pseudo,
		SendingDate: inv.SendingDate.Format(dateTimeLayout),
		Status:      inv.Status,
	}
}

// GetAll returns every invitation with room and both ends populated.
func (s *GameRoomInvitationService) GetAll() []GameRoomInvitationView {
	var invitations []postgres.GameRoomInvitation
	if err := s.DB.Preload("From").Preload("Room").Preload("To").Find(&invitations).Error; err != nil {
		log.Printf("No game invitations found. Details => %v", err)
		return []GameRoomInvitationView{}
	}

	views := make([]GameRoomInvitationView, 0, len(invitations))
	for i := range invitations {
		views = append(views, invitationView(&invitations[i]))
	}
	return views
}

// GetByID returns one populated invitation.
func (s *GameRoomInvitationService) GetByID(id uint) (*GameRoomInvitationView, error) {
	var invitation postgres.GameRoomInvitation
	if err := s.DB.Preload("From").Preload("Room").Preload("To").First(&invitation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFound(fmt.Sprintf("No game invitation found with id %d", id), nil)
		}
		return nil, utils.Internal("Could not get game invitation", err)
	}
	view := invitationView(&invitation)
	return &view, nil
}

// Create invites a user into a room. A PENDING invitation between the same
// triple cannot be resent; a terminal one resets to PENDING.
func (s *GameRoomInvitationService) Create(roomName, fromPseudo, toPseudo string) error {
	room, err := roomByName(s.DB, roomName)
	if err != nil {
		return err
	}
	from, err := ResolveHandle(s.DB, fromPseudo)
	if err != nil {
		return err
	}
	to, err := ResolveHandle(s.DB, toPseudo)
	if err != nil {
		return err
	}

	if room.HasPlayer(to.ID) {
		return utils.BadRequest("User is already in the game room", nil)
	}

	var existing postgres.GameRoomInvitation
	err = s.DB.Where("room_id = ? AND from_id = ? AND to_id = ?", room.ID, from.ID, to.ID).
		First(&existing).Error
	if err == nil {
		return s.resetExistingInvitation(&existing)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.Internal("Could not check if the user is already invited", err)
	}

	invitation := postgres.GameRoomInvitation{
		RoomID:      room.ID,
		FromID:      from.ID,
		ToID:        to.ID,
		SendingDate: time.Now(),
		Status:      postgres.StatusPending,
	}
	if err := s.DB.Create(&invitation).Error; err != nil {
		return utils.Internal("Could not create the invitation", err)
	}
	return nil
}

func (s *GameRoomInvitationService) resetExistingInvitation(invitation *postgres.GameRoomInvitation) error {
	switch invitation.Status {
	case postgres.StatusPending:
		return utils.BadRequest("Invitation is still pending", nil)
	default:
		err := s.DB.Model(&postgres.GameRoomInvitation{}).Where("id = ?", invitation.ID).
			Updates(map[string]interface{}{
				"status":       postgres.StatusPending,
				"sending_date": time.Now(),
			}).Error
		if err != nil {
			return utils.Internal("Could not update invitation", err)
		}
		return nil
	}
}

// Accept enrolls the target in the room and flips the invitation to
// ACCEPTED, both inside one transaction.
func (s *GameRoomInvitationService) Accept(id uint) error {
	var invitation postgres.GameRoomInvitation
	if err := s.DB.First(&invitation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound("Invitation does not exist", nil)
		}
		return utils.Internal("Could not get invitation", err)
	}

	if invitation.Status == postgres.StatusAccepted {
		return utils.BadRequest("Invitation was already accepted", nil)
	}

	var room postgres.GameRoom
	if err := s.DB.First(&room, invitation.RoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound("Game room does not exist", nil)
		}
		return utils.Internal("Could not get game room", err)
	}

	target, err := ResolveID(s.DB, invitation.ToID)
	if err != nil {
		return err
	}

	if room.HasPlayer(target.ID) {
		return utils.BadRequest("User is already in the game room", nil)
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := joinRoom(tx, &room, target.ID); err != nil {
			return err
		}
		err := tx.Model(&postgres.GameRoomInvitation{}).Where("id = ?", invitation.ID).
			Update("status", postgres.StatusAccepted).Error
		if err != nil {
			return utils.Internal("Could not accept invitation", err)
		}
		return nil
	})
}

// Refuse drops the invitation record, same as Delete.
func (s *GameRoomInvitationService) Refuse(id uint) error {
	return s.Delete(id)
}

// Delete removes the invitation record by id.
func (s *GameRoomInvitationService) Delete(id uint) error {
	if err := s.DB.Delete(&postgres.GameRoomInvitation{}, id).Error; err != nil {
		return utils.Internal(fmt.Sprintf("Could not delete invitation %d", id), err)
	}
	return nil
}
