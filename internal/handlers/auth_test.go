package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Callymags/task-manager-api/internal/constants"
	"github.com/Callymags/task-manager-api/internal/dto"
	"github.com/Callymags/task-manager-api/internal/middleware"
	"github.com/Callymags/task-manager-api/internal/repository"
	"github.com/Callymags/task-manager-api/internal/services"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type authTestEnv struct {
	router      *gin.Engine
	authService *services.AuthService
}

func setupAuthTestEnv(t *testing.T) authTestEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	userRepo := repository.NewMemoryUserRepository()
	taskRepo := repository.NewMemoryTaskRepository()
	authService := services.NewAuthService(userRepo, taskRepo)
	handler := NewAuthHandler(authService)

	r := gin.New()
	store := cookie.NewStore([]byte("secret"))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))
	r.POST("/register", handler.Register)
	r.POST("/login", handler.Login)
	r.GET("/logout", handler.Logout)
	r.GET("/profile/:username", middleware.RequireAuth(), handler.Profile)

	return authTestEnv{
		router:      r,
		authService: authService,
	}
}

func postJSON(t *testing.T, r *gin.Engine, url string, payload interface{}, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Register(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := postJSON(t, env.router, "/register", map[string]string{
		"username": "NewUser",
		"password": "supersecret",
	}, nil)

	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "newuser", response.Username)

	require.NotEmpty(t, w.Result().Cookies(), "expected session cookie to be set")
}

func TestAuthHandler_Register_UsernameTaken(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := postJSON(t, env.router, "/register", map[string]string{
		"username": "Alice", "password": "password1",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, env.router, "/register", map[string]string{
		"username": "alice", "password": "password2",
	}, nil)
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandler_LoginScenario(t *testing.T) {
	env := setupAuthTestEnv(t)

	// register "Alice"/"pw1xx" -> success, session for "alice"
	w := postJSON(t, env.router, "/register", map[string]string{
		"username": "Alice", "password": "pw1xx",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	// register "alice"/"pw2xx" -> username taken
	w = postJSON(t, env.router, "/register", map[string]string{
		"username": "alice", "password": "pw2xx",
	}, nil)
	require.Equal(t, http.StatusConflict, w.Code)

	// login "alice"/"pw2xx" -> invalid credentials
	w = postJSON(t, env.router, "/login", map[string]string{
		"username": "alice", "password": "pw2xx",
	}, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// login "alice"/"pw1xx" -> success
	w = postJSON(t, env.router, "/login", map[string]string{
		"username": "alice", "password": "pw1xx",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "alice", response.Username)
	require.NotEmpty(t, w.Result().Cookies())
}

func TestAuthHandler_Logout(t *testing.T) {
	env := setupAuthTestEnv(t)

	// Logging out with no session is not an error
	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestAuthHandler_Profile(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := postJSON(t, env.router, "/register", map[string]string{
		"username": "bob", "password": "supersecret",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	cookies := w.Result().Cookies()

	// Unauthenticated access is rejected
	req := httptest.NewRequest(http.MethodGet, "/profile/bob", nil)
	w2 := httptest.NewRecorder()
	env.router.ServeHTTP(w2, req)
	require.Equal(t, http.StatusUnauthorized, w2.Code)

	// With a session the profile comes back
	req = httptest.NewRequest(http.MethodGet, "/profile/bob", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w2 = httptest.NewRecorder()
	env.router.ServeHTTP(w2, req)
	require.Equal(t, http.StatusOK, w2.Code)

	var profile dto.ProfileResponse
	require.NoError(t, json.Unmarshal(w2.Body.Bytes(), &profile))
	require.Equal(t, "bob", profile.Username)
	require.Empty(t, profile.Tasks)

	// Unknown profile is a 404
	req = httptest.NewRequest(http.MethodGet, "/profile/nobody", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w2 = httptest.NewRecorder()
	env.router.ServeHTTP(w2, req)
	require.Equal(t, http.StatusNotFound, w2.Code)
}
