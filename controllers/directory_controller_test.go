package controllers

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListListingsFeaturedFirstThenNewest(t *testing.T) {
	db, mock := newMockDB(t)
	d := NewDirectoryController(db)

	mock.ExpectQuery("SELECT (.+) FROM `business_listings` WHERE status IN (.+) " +
		"ORDER BY status = 'featured' DESC, created_at DESC").
		WillReturnRows(sqlmock.NewRows([]string{"id", "business_name", "status"}).
			AddRow(2, "Nine Pointed Cafe", "featured").
			AddRow(1, "Rose Garden Books", "approved"))

	w := getJSON(t, d.ListListings, "/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Nine Pointed Cafe")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListListingsCategoryFilter(t *testing.T) {
	db, mock := newMockDB(t)
	d := NewDirectoryController(db)

	mock.ExpectQuery("SELECT (.+) FROM `business_listings` WHERE status IN (.+) " +
		"AND category = (.+) ORDER BY status = 'featured' DESC, created_at DESC").
		WillReturnRows(sqlmock.NewRows([]string{"id", "business_name", "status"}))

	w := getJSON(t, d.ListListings, "/?category=food")
	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
