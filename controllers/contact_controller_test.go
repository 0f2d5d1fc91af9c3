package controllers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkMessageReadUnknownID(t *testing.T) {
	db, mock := newMockDB(t)
	c := NewContactController(db)

	mock.ExpectExec("UPDATE `contact_messages` SET").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `contact_messages`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	w := postJSON(t, c.MarkMessageRead, `{"id":404}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"message not found"}`, w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkMessageReadAlreadyRead(t *testing.T) {
	db, mock := newMockDB(t)
	c := NewContactController(db)

	mock.ExpectExec("UPDATE `contact_messages` SET").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `contact_messages`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	w := postJSON(t, c.MarkMessageRead, `{"id":5}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkMessageReadExistenceCheckFailure(t *testing.T) {
	db, mock := newMockDB(t)
	c := NewContactController(db)

	mock.ExpectExec("UPDATE `contact_messages` SET").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `contact_messages`").
		WillReturnError(errors.New("connection reset"))

	// A store failure must not be misreported as a missing message.
	w := postJSON(t, c.MarkMessageRead, `{"id":5}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"failed to update message"}`, w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}
