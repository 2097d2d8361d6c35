package social

import (
	"testing"

	"Gimmi/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func noGameRoomRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "room_name", "current_game", "creator_id", "players", "max_players"})
}

func TestCreateGameRoomEnrollsCreator(t *testing.T) {
	db, mock := newMockDB(t)
	service := &GameRoomService{DB: db}

	expectUserByPseudo(mock, "Mouss", userRows(1, "Mouss"))
	expectRoomByName(mock, "sala", noGameRoomRows())

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "game_rooms"`).
		WithArgs("sala", "morpion", 1, []byte("[1]"), 2, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectCommit()

	err := service.Create("sala", "morpion", "Mouss", 2)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateGameRoomNameTaken(t *testing.T) {
	db, mock := newMockDB(t)
	service := &GameRoomService{DB: db}

	expectUserByPseudo(mock, "Mouss", userRows(1, "Mouss"))
	expectRoomByName(mock, "sala", gameRoomRows(7, "sala", 1, "[1]", 2))

	err := service.Create("sala", "morpion", "Mouss", 2)
	assert.Error(t, err)
	assert.Equal(t, utils.KindConflict, utils.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJoinGameRoom(t *testing.T) {
	db, mock := newMockDB(t)
	service := &GameRoomService{DB: db}

	expectRoomByName(mock, "sala", gameRoomRows(7, "sala", 1, "[1]", 2))
	expectUserByPseudo(mock, "toto", userRows(2, "toto"))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "game_rooms" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := service.Join("sala", "toto")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJoinGameRoomAlreadyMember(t *testing.T) {
	db, mock := newMockDB(t)
	service := &GameRoomService{DB: db}

	expectRoomByName(mock, "sala", gameRoomRows(7, "sala", 1, "[1,2]", 2))
	expectUserByPseudo(mock, "toto", userRows(2, "toto"))

	err := service.Join("sala", "toto")
	assert.Error(t, err)
	assert.Equal(t, utils.KindBadRequest, utils.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExitGameRoomKeepsNonEmptyRoom(t *testing.T) {
	db, mock := newMockDB(t)
	service := &GameRoomService{DB: db}

	expectRoomByName(mock, "sala", gameRoomRows(7, "sala", 1, "[1,2]", 2))
	expectUserByPseudo(mock, "toto", userRows(2, "toto"))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "game_rooms" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := service.Exit("sala", "toto")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExitGameRoomLastPlayerDeletesRoom(t *testing.T) {
	db, mock := newMockDB(t)
	service := &GameRoomService{DB: db}

	expectRoomByName(mock, "sala", gameRoomRows(7, "sala", 1, "[1]", 2))
	expectUserByPseudo(mock, "Mouss", userRows(1, "Mouss"))

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "game_rooms"`).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := service.Exit("sala", "Mouss")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExitGameRoomNotAMember(t *testing.T) {
	db, mock := newMockDB(t)
	service := &GameRoomService{DB: db}

	expectRoomByName(mock, "sala", gameRoomRows(7, "sala", 1, "[1]", 2))
	expectUserByPseudo(mock, "toto", userRows(2, "toto"))

	err := service.Exit("sala", "toto")
	assert.Error(t, err)
	assert.Equal(t, utils.KindBadRequest, utils.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateGameRoomLifecycleFlags(t *testing.T) {
	db, mock := newMockDB(t)
	service := &GameRoomService{DB: db}

	expectRoomByName(mock, "sala", gameRoomRows(7, "sala", 1, "[1,2]", 2))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "game_rooms" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	started := true
	err := service.Update("sala", GameRoomUpdate{GameStarted: &started})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetGameRoomByIDUnknown(t *testing.T) {
	db, mock := newMockDB(t)
	service := &GameRoomService{DB: db}

	mock.ExpectQuery(`SELECT (.+) FROM "game_rooms" WHERE "game_rooms"."id" =`).
		WithArgs(99, 1).
		WillReturnRows(noGameRoomRows())

	_, err := service.GetByID(99)
	assert.Error(t, err)
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
