package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Callymags/task-manager-api/internal/constants"
	"github.com/Callymags/task-manager-api/internal/dto"
	apierrors "github.com/Callymags/task-manager-api/internal/errors"
	"github.com/Callymags/task-manager-api/internal/services"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// RegisterForm serves the registration form route. The view layer needs no
// data to render an empty form.
func (h *AuthHandler) RegisterForm(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Register creates a new user and logs them straight in.
func (h *AuthHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.authService.Register(c.Request.Context(), services.RegisterInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, services.ErrUsernameRequired) || errors.Is(err, services.ErrPasswordTooShort) {
			apierrors.BadRequestWithForm(c, validationMessage(err), gin.H{"username": req.Username})
			return
		}
		respondAuthError(c, err)
		return
	}

	if err := establishSession(c, user.Username); err != nil {
		apierrors.InternalError(c, "Failed to save session")
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserDTO(*user))
}

// LoginForm serves the login form route.
func (h *AuthHandler) LoginForm(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Login authenticates a user and initializes the session.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.authService.Login(c.Request.Context(), services.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	if err := establishSession(c, user.Username); err != nil {
		apierrors.InternalError(c, "Failed to save session")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// Logout clears the session unconditionally; logging out an anonymous
// session is not an error.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to logout")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

// Profile returns a user's profile with the tasks they created.
func (h *AuthHandler) Profile(c *gin.Context) {
	username := c.Param("username")

	user, tasks, err := h.authService.Profile(c.Request.Context(), username)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(*user, tasks))
}

func establishSession(c *gin.Context, username string) error {
	session := sessions.Default(c)
	session.Set(constants.SessionKeyUsername, username)
	return session.Save()
}

func validationMessage(err error) string {
	if errors.Is(err, services.ErrPasswordTooShort) {
		return fmt.Sprintf("Password must be at least %d characters", constants.MinPasswordLength)
	}
	return err.Error()
}

func respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUsernameTaken):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.InvalidCredentials(c, "")
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrFailedToHashPassword):
		apierrors.InternalError(c, err.Error())
	default:
		apierrors.StoreUnavailable(c, "")
	}
}
