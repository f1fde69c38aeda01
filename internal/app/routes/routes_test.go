package routes

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/wish2work/internal/app/controllers"
	"github.com/yigit/wish2work/internal/app/models"
	"github.com/yigit/wish2work/internal/middleware"
	"github.com/yigit/wish2work/internal/pkg/auth"
)

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

// Apart from health, only requests rejected by middleware are sent, so the nil
// controllers are never invoked.
func newTestRouter(dbErr error) (*gin.Engine, *auth.JWTService) {
	gin.SetMode(gin.TestMode)
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "routes-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "wish2work-test",
	})
	r := gin.New()
	SetupRouter(r, Controllers{Health: controllers.NewHealthController(stubPinger{err: dbErr})}, middleware.NewAuthMiddleware(jwtService))
	return r, jwtService
}

func call(t *testing.T, r http.Handler, svc *auth.JWTService, role models.RoleType, method, path string) int {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if role != "" {
		token, _, err := svc.GenerateAccessToken(&models.Account{ID: 1, Email: "caller@uni.ac.za", Role: role, SubjectID: 1})
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestHealth(t *testing.T) {
	r, svc := newTestRouter(nil)
	assert.Equal(t, http.StatusOK, call(t, r, svc, "", http.MethodGet, "/api/v1/health"))

	r, svc = newTestRouter(errors.New("connection refused"))
	assert.Equal(t, http.StatusServiceUnavailable, call(t, r, svc, "", http.MethodGet, "/api/v1/health"))
}

func TestAuthenticatedRoutesRequireToken(t *testing.T) {
	r, svc := newTestRouter(nil)
	for _, path := range []string{
		"/api/v1/auth/me",
		"/api/v1/requests",
		"/api/v1/students/1",
		"/api/v1/departments/1/students/search",
		"/api/v1/student-rating/1",
	} {
		assert.Equal(t, http.StatusUnauthorized, call(t, r, svc, "", http.MethodGet, path), path)
	}
}

func TestRoleGates(t *testing.T) {
	r, svc := newTestRouter(nil)

	tests := []struct {
		role   models.RoleType
		method string
		path   string
	}{
		{models.RoleStudent, http.MethodGet, "/api/v1/departments/1/students/search"},
		{models.RoleStudent, http.MethodGet, "/api/v1/departments/1/students"},
		{models.RoleStudent, http.MethodGet, "/api/v1/students"},
		{models.RoleStudent, http.MethodGet, "/api/v1/staff/1/requests"},
		{models.RoleStaff, http.MethodPost, "/api/v1/departments"},
		{models.RoleStaff, http.MethodDelete, "/api/v1/courses/1"},
		{models.RoleStaff, http.MethodGet, "/api/v1/admins"},
		{models.RoleStaff, http.MethodPost, "/api/v1/staff"},
		{models.RoleStaff, http.MethodPatch, "/api/v1/students/1/deactivate"},
		{models.RoleStudent, http.MethodPost, "/api/v1/students/1/recompute-rating"},
	}
	for _, tt := range tests {
		assert.Equal(t, http.StatusForbidden, call(t, r, svc, tt.role, tt.method, tt.path), "%s %s as %s", tt.method, tt.path, tt.role)
	}
}
