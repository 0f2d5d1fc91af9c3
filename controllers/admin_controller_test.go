package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/flbahai/community/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func postJSON(t *testing.T, handler gin.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	ctx.Request.Header.Set("Content-Type", "application/json")
	handler(ctx)
	return w
}

func TestModerateRejectsUnknownTable(t *testing.T) {
	a := NewAdminController(nil)

	w := postJSON(t, a.Moderate, `{"table":"users","id":1,"action":"approve"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"invalid table"}`, w.Body.String())
}

func TestModerateRejectsUnknownAction(t *testing.T) {
	a := NewAdminController(nil)

	w := postJSON(t, a.Moderate, `{"table":"events","id":1,"action":"escalate"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"invalid action"}`, w.Body.String())
}

func TestModerateRequiresID(t *testing.T) {
	a := NewAdminController(nil)

	w := postJSON(t, a.Moderate, `{"table":"events","action":"approve"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"missing id"}`, w.Body.String())
}

func TestCachePrefixCoversEveryKind(t *testing.T) {
	for _, kind := range []models.ModerationKind{
		models.ModerateEvents,
		models.ModerateBusinessListings,
		models.ModerateDevotionalGatherings,
	} {
		assert.NotEmpty(t, cachePrefixFor(kind), kind.String())
	}
}
