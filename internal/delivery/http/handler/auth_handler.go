package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HailNail/MindArc/internal/auth"
	"github.com/HailNail/MindArc/internal/delivery/http/middleware"
	"github.com/HailNail/MindArc/internal/usecase"
)

type AuthHandler struct {
	authUseCase  *usecase.AuthUseCase
	userUseCase  *usecase.UserUseCase
	tokens       *auth.TokenManager
	cookieSecure bool
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase, userUseCase *usecase.UserUseCase, tokens *auth.TokenManager, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		authUseCase:  authUseCase,
		userUseCase:  userUseCase,
		tokens:       tokens,
		cookieSecure: cookieSecure,
	}
}

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "please fill all the inputs")
		return
	}

	user, err := h.authUseCase.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		mapError(c, err)
		return
	}

	if err := h.setSessionCookie(c, user.ID); err != nil {
		mapError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "please fill all the inputs")
		return
	}

	user, err := h.authUseCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		mapError(c, err)
		return
	}

	if err := h.setSessionCookie(c, user.ID); err != nil {
		mapError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

type providerLoginRequest struct {
	Credential string `json:"credential" binding:"required"`
}

func (h *AuthHandler) LoginWithGoogle(c *gin.Context) {
	var req providerLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "credential is required")
		return
	}

	user, err := h.authUseCase.LoginWithProvider(c.Request.Context(), req.Credential)
	if err != nil {
		mapError(c, err)
		return
	}

	if err := h.setSessionCookie(c, user.ID); err != nil {
		mapError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(auth.CookieName, "", -1, "/", "", h.cookieSecure, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out successfully"})
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	user := middleware.CurrentUser(c)

	profile, err := h.userUseCase.GetProfile(c.Request.Context(), user.ID)
	if err != nil {
		mapError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

type updateProfileRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	updated, err := h.userUseCase.UpdateProfile(c.Request.Context(), user.ID, req.Username, req.Email, req.Password)
	if err != nil {
		mapError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, userID string) error {
	token, err := h.tokens.Generate(userID)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(auth.CookieName, token, int(auth.SessionTTL.Seconds()), "/", "", h.cookieSecure, true)
	return nil
}
