package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/hiremind/backend/api/http/presenter"
	"github.com/hiremind/backend/pkg/auth"
)

type AuthHandler struct {
	useCase auth.AuthUseCase
}

func NewAuthHandler(useCase auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{useCase: useCase}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles user registration. The account starts unverified; a
// verification link is mailed and no session token is issued yet.
// @Summary Register user
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body registerRequest true "registration payload"
// @Success 201 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return presenter.Error(c, http.StatusBadRequest, "email and password are required")
	}

	user, err := h.useCase.Register(c.Context(), req.Email, req.Password)
	if err != nil {
		switch err {
		case auth.ErrUserAlreadyExists:
			return presenter.Error(c, http.StatusConflict, "user already exists")
		case auth.ErrInvalidCredentials:
			return presenter.Error(c, http.StatusBadRequest, "email and password are required")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to register user")
		}
	}

	return presenter.JSON(c, http.StatusCreated, fiber.Map{
		"id":        user.ID.String(),
		"email":     user.Email,
		"createdAt": user.CreatedAt,
		"message":   "verification email sent",
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles user login.
// @Summary Login
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body loginRequest true "login payload"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Router  /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return presenter.Error(c, http.StatusBadRequest, "email and password are required")
	}

	result, err := h.useCase.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		switch err {
		case auth.ErrInvalidCredentials:
			return presenter.Error(c, http.StatusUnauthorized, "invalid credentials")
		case auth.ErrEmailNotVerified:
			return presenter.Error(c, http.StatusForbidden, "email not verified")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to login")
		}
	}

	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"id":    result.User.ID.String(),
		"email": result.User.Email,
		"token": result.Token,
	})
}

// Verify confirms an email address from the mailed link.
// @Summary Verify email
// @Tags    auth
// @Produce json
// @Param   token query string true "verification token"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /auth/verify [get]
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	token := c.Query("token")
	user, err := h.useCase.Verify(c.Context(), token)
	if err != nil {
		if err == auth.ErrInvalidVerifyToken {
			return presenter.Error(c, http.StatusBadRequest, "invalid or already used verification token")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to verify email")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"email":    user.Email,
		"verified": true,
	})
}
