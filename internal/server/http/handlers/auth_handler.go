package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/loopbakery/bakeshop/internal/domain/errors"
	"github.com/loopbakery/bakeshop/internal/server/http/dto"
	"github.com/loopbakery/bakeshop/internal/server/http/middleware"
	"github.com/loopbakery/bakeshop/internal/usecase"
)

// AuthHandler processes registration, login and profile lookup.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Signup handles POST /api/auth/signup.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	user, token, err := h.facade.Signup(c.Request.Context(), usecase.SignupInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrValidation):
			respondError(c, http.StatusBadRequest, "all fields are required")
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			respondError(c, http.StatusBadRequest, "user already exists")
		default:
			respondError(c, http.StatusInternalServerError, "signup failed")
		}
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusCreated, dto.AuthResponse{
		Success: true,
		Message: "account created",
		Token:   token,
		User:    toUserResponse(user),
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	user, token, err := h.facade.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			respondError(c, http.StatusUnauthorized, "invalid email or password")
		default:
			respondError(c, http.StatusInternalServerError, "login failed")
		}
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.AuthResponse{
		Success: true,
		Message: "login successful",
		Token:   token,
		User:    toUserResponse(user),
	})
}

// Profile handles GET /api/auth/profile.
func (h *AuthHandler) Profile(c *gin.Context) {
	user, err := h.facade.Profile(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			respondError(c, http.StatusNotFound, "user not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "profile lookup failed")
		return
	}

	c.JSON(http.StatusOK, dto.ProfileResponse{Success: true, User: toUserResponse(user)})
}
