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

type categoryTestEnv struct {
	router *gin.Engine
}

func setupCategoryTestEnv(t *testing.T) categoryTestEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	userRepo := repository.NewMemoryUserRepository()
	taskRepo := repository.NewMemoryTaskRepository()
	categoryRepo := repository.NewMemoryCategoryRepository()

	authService := services.NewAuthService(userRepo, taskRepo)
	categoryService := services.NewCategoryService(categoryRepo)

	authHandler := NewAuthHandler(authService)
	categoryHandler := NewCategoryHandler(categoryService)

	r := gin.New()
	store := cookie.NewStore([]byte("secret"))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	r.GET("/categories", categoryHandler.List)
	r.POST("/register", authHandler.Register)

	auth := r.Group("", middleware.RequireAuth())
	auth.POST("/categories/new", categoryHandler.Create)
	auth.GET("/categories/:id/edit", categoryHandler.EditForm)
	auth.POST("/categories/:id/edit", categoryHandler.Update)
	auth.GET("/categories/:id/delete", categoryHandler.Delete)

	return categoryTestEnv{router: r}
}

func registerAs(t *testing.T, r *gin.Engine, username string) []*http.Cookie {
	t.Helper()

	body, err := json.Marshal(map[string]string{
		"username": username,
		"password": "supersecret",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	return w.Result().Cookies()
}

func TestCategoryHandler_Create_Unauthenticated(t *testing.T) {
	env := setupCategoryTestEnv(t)

	w := postJSON(t, env.router, "/categories/new", map[string]string{
		"category_name": "Home",
	}, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCategoryHandler_CRUD(t *testing.T) {
	env := setupCategoryTestEnv(t)
	cookies := registerAs(t, env.router, "bob")

	// Create
	w := postJSON(t, env.router, "/categories/new", map[string]string{
		"category_name": "Home",
	}, cookies)
	require.Equal(t, http.StatusCreated, w.Code)

	var created dto.CategoryDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	require.Equal(t, "Home", created.CategoryName)

	// Edit form
	req := httptest.NewRequest(http.MethodGet, "/categories/"+created.ID+"/edit", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// Update
	w = postJSON(t, env.router, "/categories/"+created.ID+"/edit", map[string]string{
		"category_name": "House",
	}, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	var updated dto.CategoryDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.Equal(t, "House", updated.CategoryName)

	// List reflects the rename
	req = httptest.NewRequest(http.MethodGet, "/categories", nil)
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var list dto.CategoryListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Categories, 1)
	require.Equal(t, "House", list.Categories[0].CategoryName)

	// Delete
	req = httptest.NewRequest(http.MethodGet, "/categories/"+created.ID+"/delete", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// Edit form now 404s
	req = httptest.NewRequest(http.MethodGet, "/categories/"+created.ID+"/edit", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCategoryHandler_InvalidID(t *testing.T) {
	env := setupCategoryTestEnv(t)
	cookies := registerAs(t, env.router, "bob")

	req := httptest.NewRequest(http.MethodGet, "/categories/not-a-hex-id/edit", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
