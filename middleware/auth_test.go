package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/flbahai/community/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performAs(t *testing.T, identity *Identity, handlers ...gin.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if identity != nil {
		SetIdentity(ctx, *identity)
	}
	for _, h := range handlers {
		h(ctx)
		if ctx.IsAborted() {
			break
		}
	}
	return w
}

func TestAdminRequiredWithoutIdentity(t *testing.T) {
	w := performAs(t, nil, AdminRequired())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"unauthorized"}`, w.Body.String())
}

func TestAdminRequiredRejectsMemberRole(t *testing.T) {
	w := performAs(t, &Identity{UserID: 2, Username: "jane"}, AdminRequired())
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"forbidden"}`, w.Body.String())
}

func TestAdminRequiredPassesAdminRole(t *testing.T) {
	called := false
	w := performAs(t,
		&Identity{UserID: 1, Username: "site-admin", Role: utils.RoleAdmin},
		AdminRequired(),
		func(ctx *gin.Context) { called = true },
	)
	assert.True(t, called)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthRequiredMissingHeader(t *testing.T) {
	w := performAs(t, nil, AuthRequired())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredMalformedHeader(t *testing.T) {
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	ctx.Request.Header.Set("Authorization", "Token abc")
	AuthRequired()(ctx)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestIdentityIsAdmin(t *testing.T) {
	assert.False(t, Identity{Role: ""}.IsAdmin())
	assert.False(t, Identity{Role: "member"}.IsAdmin())
	assert.True(t, Identity{Role: utils.RoleAdmin}.IsAdmin())
}
