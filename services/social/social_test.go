package social

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newMockDB opens a GORM handle over a sqlmock connection, same setup the
// production code uses minus the real socket.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return db, mock
}

func userRows(id uint, pseudo string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "pseudo", "password_hash", "status"}).
		AddRow(id, pseudo, "x", "online")
}

func noUserRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "pseudo"})
}

func friendListRows(id, ownerID uint, friends string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "owner_id", "friends"}).
		AddRow(id, ownerID, []byte(friends))
}

func noFriendListRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "owner_id", "friends"})
}

func gameRoomRows(id uint, roomName string, creatorID uint, players string, maxPlayers int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "room_name", "current_game", "creator_id", "players", "max_players"}).
		AddRow(id, roomName, "morpion", creatorID, []byte(players), maxPlayers)
}

func expectUserByPseudo(mock sqlmock.Sqlmock, pseudo string, rows *sqlmock.Rows) {
	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE pseudo =`).
		WithArgs(pseudo, 1).
		WillReturnRows(rows)
}

func expectUserByID(mock sqlmock.Sqlmock, id uint, rows *sqlmock.Rows) {
	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE "users"."id" =`).
		WithArgs(id, 1).
		WillReturnRows(rows)
}

func expectFriendListByOwner(mock sqlmock.Sqlmock, ownerID uint, rows *sqlmock.Rows) {
	mock.ExpectQuery(`SELECT (.+) FROM "friend_lists" WHERE owner_id =`).
		WithArgs(ownerID, 1).
		WillReturnRows(rows)
}

func expectRoomByName(mock sqlmock.Sqlmock, roomName string, rows *sqlmock.Rows) {
	mock.ExpectQuery(`SELECT (.+) FROM "game_rooms" WHERE room_name =`).
		WithArgs(roomName, 1).
		WillReturnRows(rows)
}
