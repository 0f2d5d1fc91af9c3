package controllers

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestIsDuplicateKey(t *testing.T) {
	assert.True(t, isDuplicateKey(gorm.ErrDuplicatedKey))
	assert.True(t, isDuplicateKey(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}))
	assert.False(t, isDuplicateKey(nil))
	assert.False(t, isDuplicateKey(errors.New("connection reset")))
	assert.False(t, isDuplicateKey(&mysql.MySQLError{Number: 1451}))
}

func subscriberRow(subscribed bool) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "email", "name", "unsubscribe_token", "subscribed", "created_at"}).
		AddRow(1, "jane@example.com", "Jane", "tok-1", subscribed, time.Now())
}

func TestSubscribeNewAddressCreated(t *testing.T) {
	db, mock := newMockDB(t)
	n := NewNewsletterController(db)

	mock.ExpectQuery("SELECT (.+) FROM `email_subscribers`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec("INSERT INTO `email_subscribers`").
		WillReturnResult(sqlmock.NewResult(1, 1))

	w := postJSON(t, n.Subscribe, `{"email":"jane@example.com","name":"Jane"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscribeLosingInsertRaceIsSuccess(t *testing.T) {
	db, mock := newMockDB(t)
	n := NewNewsletterController(db)

	mock.ExpectQuery("SELECT (.+) FROM `email_subscribers`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec("INSERT INTO `email_subscribers`").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	w := postJSON(t, n.Subscribe, `{"email":"jane@example.com"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscribeResubscribeKeepsToken(t *testing.T) {
	db, mock := newMockDB(t)
	n := NewNewsletterController(db)

	mock.ExpectQuery("SELECT (.+) FROM `email_subscribers`").
		WillReturnRows(subscriberRow(true))
	// Only name and subscribed may be written; a SET clause touching the
	// token would not match and the test would fail.
	mock.ExpectExec("UPDATE `email_subscribers` SET `name`=\\?,`subscribed`=\\? WHERE").
		WillReturnResult(sqlmock.NewResult(0, 1))

	w := postJSON(t, n.Subscribe, `{"email":"jane@example.com","name":"Janet"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUnsubscribeUnknownToken(t *testing.T) {
	db, mock := newMockDB(t)
	n := NewNewsletterController(db)

	mock.ExpectQuery("SELECT (.+) FROM `email_subscribers`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := getJSON(t, n.Unsubscribe, "/?token=nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"link not found"}`, w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUnsubscribeAlreadyUnsubscribedWritesNothing(t *testing.T) {
	db, mock := newMockDB(t)
	n := NewNewsletterController(db)

	mock.ExpectQuery("SELECT (.+) FROM `email_subscribers`").
		WillReturnRows(subscriberRow(false))
	// No UPDATE is expected; ExpectationsWereMet catches a stray write.

	w := getJSON(t, n.Unsubscribe, "/?token=tok-1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"already unsubscribed"}`, w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUnsubscribeActiveSubscriber(t *testing.T) {
	db, mock := newMockDB(t)
	n := NewNewsletterController(db)

	mock.ExpectQuery("SELECT (.+) FROM `email_subscribers`").
		WillReturnRows(subscriberRow(true))
	mock.ExpectExec("UPDATE `email_subscribers` SET `subscribed`=\\?").
		WillReturnResult(sqlmock.NewResult(0, 1))

	w := getJSON(t, n.Unsubscribe, "/?token=tok-1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}
