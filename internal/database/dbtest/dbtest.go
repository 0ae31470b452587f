// Package dbtest opens gorm on top of go-sqlmock for handler tests.
package dbtest

import (
	"database/sql"
	"testing"

	"goldencitizen-backend/internal/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// New returns a postgres-dialect gorm session backed by sqlmock. Unmet
// expectations fail the test on cleanup.
func New(t testing.TB) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	return open(t, sqlDB, mock)
}

// NewWithPings is New with ping monitoring on, for health checks. The ping
// gorm sends while opening is already expected.
func NewWithPings(t testing.TB) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	mock.ExpectPing()
	return open(t, sqlDB, mock)
}

func open(t testing.TB, sqlDB *sql.DB, mock sqlmock.Sqlmock) (*gorm.DB, sqlmock.Sqlmock) {
	db, err := database.Open(postgres.New(postgres.Config{Conn: sqlDB}), gormlogger.Silent)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = sqlDB.Close()
	})
	return db, mock
}
