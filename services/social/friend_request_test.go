package social

import (
	"testing"
	"time"

	models "Gimmi/models/postgres"
	"Gimmi/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func friendRequestRows(id, fromID, toID uint, status string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "from_id", "to_id", "sending_date", "status"}).
		AddRow(id, fromID, toID, time.Now(), status)
}

func noFriendRequestRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "from_id", "to_id", "sending_date", "status"})
}

func expectRequestByPair(mock sqlmock.Sqlmock, fromID, toID uint, rows *sqlmock.Rows) {
	mock.ExpectQuery(`SELECT (.+) FROM "friend_requests" WHERE from_id = (.+) AND to_id =`).
		WithArgs(fromID, toID, 1).
		WillReturnRows(rows)
}

func expectRequestByID(mock sqlmock.Sqlmock, id uint, rows *sqlmock.Rows) {
	mock.ExpectQuery(`SELECT (.+) FROM "friend_requests" WHERE "friend_requests"."id" =`).
		WithArgs(id, 1).
		WillReturnRows(rows)
}

func TestSendFriendRequestCreatesPending(t *testing.T) {
	db, mock := newMockDB(t)
	service := &FriendRequestService{DB: db}

	expectUserByPseudo(mock, "Mouss", userRows(1, "Mouss"))
	expectUserByPseudo(mock, "toto", userRows(2, "toto"))
	expectFriendListByOwner(mock, 1, noFriendListRows())
	expectFriendListByOwner(mock, 2, noFriendListRows())
	expectRequestByPair(mock, 1, 2, noFriendRequestRows())

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "friend_requests"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	mock.ExpectCommit()

	err := service.Create("Mouss", "toto")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSendFriendRequestAlreadyFriends(t *testing.T) {
	db, mock := newMockDB(t)
	service := &FriendRequestService{DB: db}

	expectUserByPseudo(mock, "Mouss", userRows(1, "Mouss"))
	expectUserByPseudo(mock, "toto", userRows(2, "toto"))
	expectFriendListByOwner(mock, 1, friendListRows(10, 1, "[2]"))

	err := service.Create("Mouss", "toto")
	assert.Error(t, err)
	assert.Equal(t, utils.KindConflict, utils.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSendFriendRequestStillPending(t *testing.T) {
	db, mock := newMockDB(t)
	service := &FriendRequestService{DB: db}

	expectUserByPseudo(mock, "Mouss", userRows(1, "Mouss"))
	expectUserByPseudo(mock, "toto", userRows(2, "toto"))
	expectFriendListByOwner(mock, 1, noFriendListRows())
	expectFriendListByOwner(mock, 2, noFriendListRows())
	expectRequestByPair(mock, 1, 2, friendRequestRows(5, 1, 2, models.StatusPending))

	err := service.Create("Mouss", "toto")
	assert.Error(t, err)
	assert.Equal(t, utils.KindBadRequest, utils.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSendFriendRequestResetsRefusedOne(t *testing.T) {
	db, mock := newMockDB(t)
	service := &FriendRequestService{DB: db}

	expectUserByPseudo(mock, "Mouss", userRows(1, "Mouss"))
	expectUserByPseudo(mock, "toto", userRows(2, "toto"))
	expectFriendListByOwner(mock, 1, noFriendListRows())
	expectFriendListByOwner(mock, 2, noFriendListRows())
	expectRequestByPair(mock, 1, 2, friendRequestRows(5, 1, 2, models.StatusRefused))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "friend_requests" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := service.Create("Mouss", "toto")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcceptFriendRequest(t *testing.T) {
	db, mock := newMockDB(t)
	service := &FriendRequestService{DB: db}

	expectRequestByID(mock, 5, friendRequestRows(5, 1, 2, models.StatusPending))
	expectUserByID(mock, 1, userRows(1, "Mouss"))
	expectUserByID(mock, 2, userRows(2, "toto"))

	mock.ExpectBegin()
	expectFriendListByOwner(mock, 1, friendListRows(10, 1, "[]"))
	expectFriendListByOwner(mock, 2, friendListRows(20, 2, "[]"))
	mock.ExpectExec(`UPDATE "friend_lists" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "friend_lists" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "friend_requests" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := service.Accept(5)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcceptFriendRequestTwice(t *testing.T) {
	db, mock := newMockDB(t)
	service := &FriendRequestService{DB: db}

	expectRequestByID(mock, 5, friendRequestRows(5, 1, 2, models.StatusAccepted))

	err := service.Accept(5)
	assert.Error(t, err)
	assert.Equal(t, utils.KindBadRequest, utils.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcceptFriendRequestUnknown(t *testing.T) {
	db, mock := newMockDB(t)
	service := &FriendRequestService{DB: db}

	expectRequestByID(mock, 99, noFriendRequestRows())

	err := service.Accept(99)
	assert.Error(t, err)
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRefuseFriendRequestDeletesRecord(t *testing.T) {
	db, mock := newMockDB(t)
	service := &FriendRequestService{DB: db}

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "friend_requests"`).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := service.Refuse(5)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetFriendRequestsBySender(t *testing.T) {
	db, mock := newMockDB(t)
	service := &FriendRequestService{DB: db}

	expectUserByPseudo(mock, "Mouss", userRows(1, "Mouss"))
	mock.ExpectQuery(`SELECT (.+) FROM "friend_requests" WHERE from_id =`).
		WithArgs(1).
		WillReturnRows(friendRequestRows(5, 1, 2, models.StatusPending))
	// Preloads execute alphabetically: From before To
	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE "users"."id"`).
		WillReturnRows(userRows(1, "Mouss"))
	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE "users"."id"`).
		WillReturnRows(userRows(2, "toto"))

	views, err := service.GetBySender("Mouss")
	assert.NoError(t, err)
	assert.Len(t, views, 1)
	assert.Equal(t, "Mouss", views[0].From)
	assert.Equal(t, "toto", views[0].To)
	assert.Equal(t, models.StatusPending, views[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
