package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"humanatlas/internal/auth"
	apperrors "humanatlas/internal/errors"
	"humanatlas/internal/model"
	"humanatlas/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignUpRequest represents a registration request.
type SignUpRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Region   string `json:"region" validate:"required"`
}

// SignInRequest represents a sign-in request.
type SignInRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse represents a successful authentication.
type AuthResponse struct {
	User  *model.SafeUser `json:"user"`
	Token string          `json:"token"`
}

// SignUp godoc
// @Summary Register a new pseudonymous user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignUpRequest true "Registration data"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /auth/signup [post]
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req SignUpRequest
	if err := c.Bind(&req); err != nil {
		return httpError(apperrors.NewValidation("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return httpError(apperrors.NewValidation("Missing required fields"))
	}

	user, token, err := h.authService.SignUp(c.Request().Context(), req.Username, req.Password, model.Region(req.Region))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, AuthResponse{User: user, Token: token})
}

// SignIn godoc
// @Summary Authenticate and open a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignInRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/signin [post]
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req SignInRequest
	if err := c.Bind(&req); err != nil {
		return httpError(apperrors.NewValidation("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return httpError(apperrors.NewValidation("Missing credentials"))
	}

	user, token, err := h.authService.SignIn(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, AuthResponse{User: user, Token: token})
}

// SignOut godoc
// @Summary Revoke the current session
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/signout [post]
func (h *AuthHandler) SignOut(c echo.Context) error {
	claims, ok := c.Get("user").(*auth.SessionClaims)
	if !ok {
		return httpError(apperrors.ErrUnauthorized)
	}
	if err := h.authService.SignOut(c.Request().Context(), claims); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "signed out"})
}

// Me godoc
// @Summary Current session's user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]model.SafeUser
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	claims, ok := c.Get("user").(*auth.SessionClaims)
	if !ok {
		return httpError(apperrors.ErrUnauthorized)
	}
	return c.JSON(http.StatusOK, map[string]model.SafeUser{"user": claims.User})
}

// httpError converts a domain error into the standardized error response.
func httpError(err error) *echo.HTTPError {
	he := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
}
