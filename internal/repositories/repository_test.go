package repositories

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"raahi/internal/models/db_models"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestHotelRepository_ListInStoreOrder(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "hotels" WHERE "hotels"."deleted_at" IS NULL ORDER BY created_at ASC, id ASC`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "location", "price", "available"}).
			AddRow(uuid.NewString(), "Sea View", "Goa", 1200.0, true).
			AddRow(uuid.NewString(), "Hill Top", "Shimla", 800.0, nil))

	hotels, err := NewHotelRepository(db).List(context.Background())

	require.NoError(t, err)
	require.Len(t, hotels, 2)
	assert.Equal(t, "Sea View", hotels[0].Name)
	assert.True(t, hotels[1].IsAvailable())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPOIRepository_ListByCityEscapesWildcards(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "pois" WHERE city ILIKE $1 AND "pois"."deleted_at" IS NULL ORDER BY created_at ASC, id ASC`)).
		WithArgs(`%goa\_100\%%`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "city"}))

	pois, err := NewPOIRepository(db).ListByCity(context.Background(), "goa_100%")

	require.NoError(t, err)
	assert.Empty(t, pois)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_FindByEmailNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "accounts" WHERE email = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}))

	account, err := NewAccountRepository(db).FindByEmail(context.Background(), "nobody@example.com")

	assert.NoError(t, err)
	assert.Nil(t, account)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPOIRepository_InsertMany(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "pois"`)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := NewPOIRepository(db).InsertMany(context.Background(), []db_models.POI{
		{Name: "Hawa Mahal", City: "Jaipur", Category: "historical"},
		{Name: "Baga Beach", City: "Goa", Category: "beach"},
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHotelRepository_InsertManyEmptyIsNoop(t *testing.T) {
	db, mock := newMockDB(t)

	err := NewHotelRepository(db).InsertMany(context.Background(), nil)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWeatherRepository_DeleteAllHardDeletes(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "weather"`)).
		WillReturnResult(sqlmock.NewResult(0, 100))
	mock.ExpectCommit()

	err := NewWeatherRepository(db).DeleteAll(context.Background())

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, "%Jaipur%", containsPattern("Jaipur"))
	assert.Equal(t, `%a\\b%`, containsPattern(`a\b`))
}
