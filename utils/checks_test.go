package utils

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func mockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
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

func TestCheckRoomExists(t *testing.T) {
	db, mock := mockDB(t)

	mock.ExpectQuery(`SELECT (.+) FROM "game_rooms" WHERE room_name =`).
		WithArgs("sala", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "room_name", "players"}).
			AddRow(7, "sala", []byte("[1]")))

	room, err := CheckRoomExists(db, "sala")
	require.NoError(t, err)
	assert.Equal(t, "sala", room.RoomName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckRoomExistsUnknown(t *testing.T) {
	db, mock := mockDB(t)

	mock.ExpectQuery(`SELECT (.+) FROM "game_rooms" WHERE room_name =`).
		WithArgs("nowhere", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "room_name", "players"}))

	_, err := CheckRoomExists(db, "nowhere")
	assert.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsPlayerInRoom(t *testing.T) {
	db, mock := mockDB(t)

	mock.ExpectQuery(`SELECT (.+) FROM "game_rooms" WHERE room_name =`).
		WithArgs("sala", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "room_name", "players"}).
			AddRow(7, "sala", []byte("[1,2]")))

	isMember, err := IsPlayerInRoom(db, "sala", 2)
	require.NoError(t, err)
	assert.True(t, isMember)
	assert.NoError(t, mock.ExpectationsWereMet())
}
