package repository

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newMockDB wires a sqlmock connection behind GORM so statement-level behavior
// can be checked without a database.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	return gdb, mock
}

// TestNextEventIDUpsert checks that sequence allocation is a single atomic
// upsert returning the new value, not a read-then-write pair.
func TestNextEventIDUpsert(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewRegistrationRepository(gdb)

	mock.ExpectQuery(`INSERT INTO registration_counters \(id, value\) VALUES \(1, 1\)\s+ON CONFLICT \(id\) DO UPDATE SET value = registration_counters\.value \+ 1\s+RETURNING value`).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(int64(7)))

	id, err := repo.NextEventID()

	assert.NoError(t, err)
	assert.Equal(t, 7, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestExistsByEmailQuery checks the duplicate fast-path count query
func TestExistsByEmailQuery(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewRegistrationRepository(gdb)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "registrations" WHERE email = $1`)).
		WithArgs("a.verma@test.edu").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))

	exists, err := repo.ExistsByEmail("a.verma@test.edu")

	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestFlagDeliveryUpdate checks the follow-up flag update
func TestFlagDeliveryUpdate(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewRegistrationRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "registrations" SET "delivery_flagged"=$1,"updated_at"=$2 WHERE id = $3`)).
		WithArgs(true, sqlmock.AnyArg(), uint(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.FlagDelivery(42)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
