package social

import (
	"errors"
	"fmt"
	"log"

	"Gimmi/models/postgres"
	"Gimmi/utils"

	"gorm.io/gorm"
)

// GameRoomService is the registry of named rooms. The creator is enrolled
// at creation and the room is dropped when the last player exits.
type GameRoomService struct {
	DB *gorm.DB
}

// GameRoomView is the populated response shape of a game room.
type GameRoomView struct {
	ID             uint     `json:"id"`
	RoomName       string   `json:"roomName"`
	CurrentGame    string   `json:"currentGame"`
	Creator        string   `json:"creator"`
	Players        []string `json:"players"`
	MaxPlayers     int      `json:"maxPlayers"`
	GameStarted    bool     `json:"gameStarted"`
	GameTerminated bool     `json:"gameTerminated"`
	GameSaved      bool     `json:"gameSaved"`
}

// GameRoomUpdate lists the fields a partial room update may touch.
type GameRoomUpdate struct {
	CurrentGame    *string `json:"currentGame"`
	MaxPlayers     *int    `json:"maxPlayers"`
	GameStarted    *bool   `json:"gameStarted"`
	GameTerminated *bool   `json:"gameTerminated"`
	GameSaved      *bool   `json:"gameSaved"`
}

func (s *GameRoomService) roomView(room *postgres.GameRoom) (*GameRoomView, error) {
	players, err := pseudosFor(s.DB, room.Players)
	if err != nil {
		return nil, err
	}
	return &GameRoomView{
		ID:             room.ID,
		RoomName:       room.RoomName,
		CurrentGame:    room.CurrentGame,
		Creator:        room.Creator.Pseudo,
		Players:        players,
		MaxPlayers:     room.MaxPlayers,
		GameStarted:    room.GameStarted,
		GameTerminated: room.GameTerminated,
		GameSaved:      room.GameSaved,
	}, nil
}

// List returns every room with creator and roster expanded to pseudos.
func (s *GameRoomService) List() []GameRoomView {
	var rooms []postgres.GameRoom
	if err := s.DB.Preload("Creator").Find(&rooms).Error; err != nil {
		log.Printf("No game rooms found. Details => %v", err)
		return []GameRoomView{}
	}

	views := make([]GameRoomView, 0, len(rooms))
	for i := range rooms {
		view, err := s.roomView(&rooms[i])
		if err != nil {
			log.Printf("Could not expand game room %d. Details => %v", rooms[i].ID, err)
			continue
		}
		views = append(views, *view)
	}
	return views
}

// GetByID returns one populated room.
func (s *GameRoomService) GetByID(id uint) (*GameRoomView, error) {
	var room postgres.GameRoom
	if err := s.DB.Preload("Creator").First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFound(fmt.Sprintf("No game room found with id %d", id), nil)
		}
		return nil, utils.Internal("Could not get game room", err)
	}
	return s.roomView(&room)
}

// Create registers a room under a unique name and enrolls the creator as
// its first player.
func (s *GameRoomService) Create(roomName, currentGame, creatorPseudo string, maxPlayers int) error {
	creator, err := ResolveHandle(s.DB, creatorPseudo)
	if err != nil {
		return err
	}

	var existing postgres.GameRoom
	err = s.DB.Where("room_name = ?", roomName).First(&existing).Error
	if err == nil {
		return utils.Conflict("A game room named "+roomName+" already exists", nil)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.Internal("Could not check for an existing game room", err)
	}

	room := postgres.GameRoom{
		RoomName:    roomName,
		CurrentGame: currentGame,
		CreatorID:   creator.ID,
		Players:     []uint{creator.ID},
		MaxPlayers:  maxPlayers,
	}
	if err := s.DB.Create(&room).Error; err != nil {
		return utils.Internal("Could not save new game room", err)
	}
	return nil
}

// Join enrolls a user in a room.
func (s *GameRoomService) Join(roomName, pseudo string) error {
	room, err := roomByName(s.DB, roomName)
	if err != nil {
		return err
	}
	user, err := ResolveHandle(s.DB, pseudo)
	if err != nil {
		return err
	}
	return joinRoom(s.DB, room, user.ID)
}

// Exit removes a user from a room; the room is deleted together with its
// last player.
func (s *GameRoomService) Exit(roomName, pseudo string) error {
	room, err := roomByName(s.DB, roomName)
	if err != nil {
		return err
	}
	user, err := ResolveHandle(s.DB, pseudo)
	if err != nil {
		return err
	}

	if !room.RemovePlayer(user.ID) {
		return utils.BadRequest("User is not in this room", nil)
	}

	if len(room.Players) == 0 {
		if err := s.DB.Delete(room).Error; err != nil {
			return utils.Internal("Could not delete empty game room", err)
		}
		return nil
	}
	if err := s.DB.Save(room).Error; err != nil {
		return utils.Internal("Could not remove the player from the game room", err)
	}
	return nil
}

// Update merges the provided fields into the room.
func (s *GameRoomService) Update(roomName string, update GameRoomUpdate) error {
	room, err := roomByName(s.DB, roomName)
	if err != nil {
		return err
	}

	fields := map[string]interface{}{}
	if update.CurrentGame != nil {
		fields["current_game"] = *update.CurrentGame
	}
	if update.MaxPlayers != nil {
		fields["max_players"] = *update.MaxPlayers
	}
	if update.GameStarted != nil {
		fields["game_started"] = *update.GameStarted
	}
	if update.GameTerminated != nil {
		fields["game_terminated"] = *update.GameTerminated
	}
	if update.GameSaved != nil {
		fields["game_saved"] = *update.GameSaved
	}
	if len(fields) == 0 {
		return nil
	}

	if err := s.DB.Model(room).Updates(fields).Error; err != nil {
		return utils.Internal("Could not update game room", err)
	}
	return nil
}

// Delete removes a room by name.
func (s *GameRoomService) Delete(roomName string) error {
	if err := s.DB.Where("room_name = ?", roomName).Delete(&postgres.GameRoom{}).Error; err != nil {
		return utils.Internal("No game room found with name "+roomName+" to delete", err)
	}
	return nil
}

// roomByName loads a room or fails with NotFound.
func roomByName(db *gorm.DB, roomName string) (*postgres.GameRoom, error) {
	var room postgres.GameRoom
	if err := db.Where("room_name = ?", roomName).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFound("This room does not exist", nil)
		}
		return nil, utils.Internal("Could not get game room", err)
	}
	return &room, nil
}

// joinRoom appends a player to the roster on the given handle. Shared with
// the invitation state machine, which joins inside its own transaction.
func joinRoom(db *gorm.DB, room *postgres.GameRoom, userID uint) error {
	if room.HasPlayer(userID) {
		return utils.BadRequest("User is already in this room", nil)
	}
	room.Players = append(room.Players, userID)
	if err := db.Save(room).Error; err != nil {
		return utils.Internal("Could not add the player to the game room", err)
	}
	return nil
}
