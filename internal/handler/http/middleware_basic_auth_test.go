package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/holiday-planner/internal/config"
	"github.com/MKhiriev/holiday-planner/models"
)

func authTestConfig(t *testing.T, password string) config.Server {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return config.Server{
		HTTPAddress:      ":8080",
		AuthUser:         "alice",
		AuthPasswordHash: string(hash),
	}
}

func TestBasicAuth_DisabledWithoutHash(t *testing.T) {
	router, svcs := newTestRouter(t, config.Server{HTTPAddress: ":8080"})
	svcs.planner.EXPECT().ListAll(gomock.Any()).Return(models.PlannerSnapshot{}, nil)

	rec := doRequest(t, router, http.MethodGet, "/api/planner", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBasicAuth_MissingCredentials(t *testing.T) {
	router, _ := newTestRouter(t, authTestConfig(t, "s3cret"))

	rec := doRequest(t, router, http.MethodGet, "/api/planner", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Header().Get("WWW-Authenticate"), "Basic")
}

func TestBasicAuth_WrongPassword(t *testing.T) {
	router, _ := newTestRouter(t, authTestConfig(t, "s3cret"))

	req := httptest.NewRequest(http.MethodGet, "/api/planner", nil)
	req.SetBasicAuth("alice", "wrong")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBasicAuth_WrongUser(t *testing.T) {
	router, _ := newTestRouter(t, authTestConfig(t, "s3cret"))

	req := httptest.NewRequest(http.MethodGet, "/api/planner", nil)
	req.SetBasicAuth("bob", "s3cret")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBasicAuth_ValidCredentials(t *testing.T) {
	router, svcs := newTestRouter(t, authTestConfig(t, "s3cret"))
	svcs.planner.EXPECT().ListAll(gomock.Any()).Return(models.PlannerSnapshot{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/planner", nil)
	req.SetBasicAuth("alice", "s3cret")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

// версия доступна без авторизации
func TestBasicAuth_VersionStaysPublic(t *testing.T) {
	router, svcs := newTestRouter(t, authTestConfig(t, "s3cret"))
	svcs.appInfo.EXPECT().GetBuildInfo(gomock.Any()).Return(models.AppBuildInfo{Version: "1.0.0"})

	rec := doRequest(t, router, http.MethodGet, "/api/version", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}
