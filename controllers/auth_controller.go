package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type MagicLinkRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	auth AuthAPI
}

func NewAuthController(auth AuthAPI) *AuthController {
	return &AuthController{auth: auth}
}

// RequestMagicLink starts the passwordless flow.
func (ac *AuthController) RequestMagicLink(c *gin.Context) {
	var req MagicLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailure(c, http.StatusBadRequest, "A valid email is required")
		return
	}

	link, err := ac.auth.RequestMagicLink(c.Request.Context(), req.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Magic link sent", gin.H{"magicLink": link})
}

// Verify exchanges a magic-link token for a bearer token.
func (ac *AuthController) Verify(c *gin.Context) {
	session, err := ac.auth.Verify(c.Request.Context(), c.Query("token"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Signed in successfully", session)
}

// Login authenticates with email and password.
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailure(c, http.StatusBadRequest, "email and password are required")
		return
	}

	session, err := ac.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Signed in successfully", session)
}
