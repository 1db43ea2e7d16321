package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fortune-labs/task-tracker/internal/api/metrics"
	"github.com/fortune-labs/task-tracker/internal/api/session"
	"github.com/fortune-labs/task-tracker/internal/core/ports"
)

// AuthHandler exposes sign-up, sign-in and sign-out. On success the
// session token is attached via the cookie carrier; it never appears in
// a response body.
type AuthHandler struct {
	authService ports.AuthService
	carrier     *session.Carrier
}

func NewAuthHandler(authService ports.AuthService, carrier *session.Carrier) *AuthHandler {
	return &AuthHandler{authService: authService, carrier: carrier}
}

type signUpRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type signInRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// SignUp registers a new user and starts a session.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signUpRequest  true  "Registration details"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /signUp [post]
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.authService.SignUp(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		return err
	}

	h.carrier.Attach(c, token)
	metrics.SignUpsTotal.Inc()

	return c.JSON(http.StatusCreated, messageResponse{Message: "User registered successfully"})
}

// SignIn authenticates a user and starts a session.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signInRequest  true  "Credentials"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Router       /signIn [post]
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.authService.SignIn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	h.carrier.Attach(c, token)
	metrics.SignInsTotal.Inc()

	return c.JSON(http.StatusOK, messageResponse{Message: "Logged in successfully"})
}

// SignOut ends the session. Idempotent: succeeds with or without an
// active session, and always clears the client-side cookie.
//
// @Summary      Sign out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /signOut [post]
func (h *AuthHandler) SignOut(c echo.Context) error {
	token, err := h.carrier.Extract(c)
	if err == nil {
		if err := h.authService.SignOut(c.Request().Context(), token); err != nil {
			return err
		}
	}

	h.carrier.Clear(c)

	return c.JSON(http.StatusOK, messageResponse{Message: "User signed out successfully"})
}

type userResponse struct {
	ID string `json:"id"`
}

// GetUser returns the identity resolved from the session token.
//
// @Summary      Get the authenticated user's id
// @Tags         auth
// @Produce      json
// @Success      200  {object}  userResponse
// @Failure      401  {object}  messageResponse
// @Router       /get-user [get]
func (h *AuthHandler) GetUser(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse{ID: userID})
}
