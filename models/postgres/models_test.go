package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFriendListRoster(t *testing.T) {
	list := FriendList{OwnerID: 1, Friends: []uint{2, 3}}

	assert.True(t, list.HasFriend(2))
	assert.False(t, list.HasFriend(4))

	assert.True(t, list.RemoveFriend(2))
	assert.False(t, list.HasFriend(2))
	assert.False(t, list.RemoveFriend(2))
}

func TestFriendListRejectsOwner(t *testing.T) {
	list := FriendList{OwnerID: 1, Friends: []uint{1}}
	assert.Error(t, list.BeforeSave(nil))
}

func TestFriendListRejectsDuplicates(t *testing.T) {
	list := FriendList{OwnerID: 1, Friends: []uint{2, 2}}
	assert.Error(t, list.BeforeSave(nil))
}

func TestFriendListValidRosterPasses(t *testing.T) {
	list := FriendList{OwnerID: 1, Friends: []uint{2, 3}}
	assert.NoError(t, list.BeforeSave(nil))
}

func TestFriendRequestRejectsSelf(t *testing.T) {
	request := FriendRequest{FromID: 1, ToID: 1}
	assert.Error(t, request.BeforeSave(nil))

	request.ToID = 2
	assert.NoError(t, request.BeforeSave(nil))
}

func TestGameRoomRoster(t *testing.T) {
	room := GameRoom{RoomName: "sala", Players: []uint{1, 2}}

	assert.True(t, room.HasPlayer(1))
	assert.False(t, room.HasPlayer(3))

	assert.True(t, room.RemovePlayer(1))
	assert.Equal(t, 1, len(room.Players))
	assert.False(t, room.RemovePlayer(1))
}

func TestGameRoomInvitationRejectsSelf(t *testing.T) {
	invitation := GameRoomInvitation{RoomID: 7, FromID: 1, ToID: 1}
	assert.Error(t, invitation.BeforeSave(nil))

	invitation.ToID = 2
	assert.NoError(t, invitation.BeforeSave(nil))
}
