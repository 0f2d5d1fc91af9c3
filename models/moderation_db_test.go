package models

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func openMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

func TestApproveUpdatesPendingRow(t *testing.T) {
	db, mock := openMockDB(t)

	mock.ExpectExec("UPDATE `events` SET `status`=").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, ModerateEvents.Approve(db, 7))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApproveAlreadyApprovedIsNoOp(t *testing.T) {
	db, mock := openMockDB(t)

	mock.ExpectExec("UPDATE `events` SET `status`=").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `events`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	require.NoError(t, ModerateEvents.Approve(db, 7))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApproveMissingRowIsNotFound(t *testing.T) {
	db, mock := openMockDB(t)

	mock.ExpectExec("UPDATE `events` SET `status`=").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `events`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	err := ModerateEvents.Approve(db, 404)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRejectDeletesRow(t *testing.T) {
	db, mock := openMockDB(t)

	mock.ExpectExec("DELETE FROM `business_listings`").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, ModerateBusinessListings.Reject(db, 3))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRejectMissingRowIsNotFound(t *testing.T) {
	db, mock := openMockDB(t)

	mock.ExpectExec("DELETE FROM `devotional_gatherings`").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := ModerateDevotionalGatherings.Reject(db, 404)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
