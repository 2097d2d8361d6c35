package social

import (
	"testing"

	"Gimmi/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestAcceptFriendshipWritesBothLists(t *testing.T) {
	db, mock := newMockDB(t)
	service := &FriendListService{DB: db}

	expectUserByPseudo(mock, "Mouss", userRows(1, "Mouss"))
	expectUserByPseudo(mock, "toto", userRows(2, "toto"))

	mock.ExpectBegin()
	expectFriendListByOwner(mock, 1, friendListRows(10, 1, "[]"))
	expectFriendListByOwner(mock, 2, friendListRows(20, 2, "[]"))
	mock.ExpectExec(`UPDATE "friend_lists" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "friend_lists" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := service.AcceptFriendship("Mouss", "toto")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcceptFriendshipCreatesMissingList(t *testing.T) {
	db, mock := newMockDB(t)
	service := &FriendListService{DB: db}

	expectUserByPseudo(mock, "Mouss", userRows(1, "Mouss"))
	expectUserByPseudo(mock, "toto", userRows(2, "toto"))

	mock.ExpectBegin()
	expectFriendListByOwner(mock, 1, noFriendListRows())
	mock.ExpectQuery(`INSERT INTO "friend_lists"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
	expectFriendListByOwner(mock, 2, friendListRows(20, 2, "[]"))
	mock.ExpectExec(`UPDATE "friend_lists" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "friend_lists" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := service.AcceptFriendship("Mouss", "toto")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcceptFriendshipAlreadyFriends(t *testing.T) {
	db, mock := newMockDB(t)
	service := &FriendListService{DB: db}

	expectUserByPseudo(mock, "Mouss", userRows(1, "Mouss"))
	expectUserByPseudo(mock, "toto", userRows(2, "toto"))

	mock.ExpectBegin()
	expectFriendListByOwner(mock, 1, friendListRows(10, 1, "[2]"))
	expectFriendListByOwner(mock, 2, friendListRows(20, 2, "[1]"))
	mock.ExpectRollback()

	err := service.AcceptFriendship("Mouss", "toto")
	assert.Error(t, err)
	assert.Equal(t, utils.KindBadRequest, utils.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAreFriendsOneDirectionIsEnough(t *testing.T) {
	db, mock := newMockDB(t)
	service := &FriendListService{DB: db}

	expectUserByPseudo(mock, "Mouss", userRows(1, "Mouss"))
	expectUserByPseudo(mock, "toto", userRows(2, "toto"))
	expectFriendListByOwner(mock, 1, friendListRows(10, 1, "[2]"))

	areFriends, err := service.AreFriends("Mouss", "toto")
	assert.NoError(t, err)
	assert.True(t, areFriends)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAreFriendsToleratesMissingLists(t *testing.T) {
	db, mock := newMockDB(t)
	service := &FriendListService{DB: db}

	expectUserByPseudo(mock, "Mouss", userRows(1, "Mouss"))
	expectUserByPseudo(mock, "toto", userRows(2, "toto"))
	expectFriendListByOwner(mock, 1, noFriendListRows())
	expectFriendListByOwner(mock, 2, noFriendListRows())

	areFriends, err := service.AreFriends("Mouss", "toto")
	assert.NoError(t, err)
	assert.False(t, areFriends)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSuppressFriendshipRemovesBothDirections(t *testing.T) {
	db, mock := newMockDB(t)
	service := &FriendListService{DB: db}

	expectUserByPseudo(mock, "Mouss", userRows(1, "Mouss"))
	expectUserByPseudo(mock, "toto", userRows(2, "toto"))

	mock.ExpectBegin()
	expectFriendListByOwner(mock, 1, friendListRows(10, 1, "[2]"))
	expectFriendListByOwner(mock, 2, friendListRows(20, 2, "[1]"))
	mock.ExpectExec(`UPDATE "friend_lists" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "friend_lists" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := service.SuppressFriendship("Mouss", "toto")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSuppressFriendshipNotFriends(t *testing.T) {
	db, mock := newMockDB(t)
	service := &FriendListService{DB: db}

	expectUserByPseudo(mock, "Mouss", userRows(1, "Mouss"))
	expectUserByPseudo(mock, "toto", userRows(2, "toto"))

	mock.ExpectBegin()
	expectFriendListByOwner(mock, 1, friendListRows(10, 1, "[]"))
	expectFriendListByOwner(mock, 2, friendListRows(20, 2, "[]"))
	mock.ExpectRollback()

	err := service.SuppressFriendship("Mouss", "toto")
	assert.Error(t, err)
	assert.Equal(t, utils.KindBadRequest, utils.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateFriendListAlreadyExists(t *testing.T) {
	db, mock := newMockDB(t)
	service := &FriendListService{DB: db}

	expectUserByPseudo(mock, "Mouss", userRows(1, "Mouss"))
	expectFriendListByOwner(mock, 1, friendListRows(10, 1, "[]"))

	_, err := service.Create("Mouss")
	assert.Error(t, err)
	assert.Equal(t, utils.KindConflict, utils.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByOwnerUnknownUser(t *testing.T) {
	db, mock := newMockDB(t)
	service := &FriendListService{DB: db}

	expectUserByPseudo(mock, "ghost", noUserRows())

	_, err := service.GetByOwner("ghost")
	assert.Error(t, err)
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
