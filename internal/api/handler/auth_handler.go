package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/claimcheck/claimcheck-api/internal/core/domain"
	"github.com/claimcheck/claimcheck-api/internal/core/ports"
)

// AuthHandler serves POST /api/auth, multiplexing login and register on the
// body's action field.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Auth registers a new account or logs an existing one in.
//
// @Summary      Register or login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      authRequest  true  "action is \"login\" or \"register\""
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/auth [post]
func (h *AuthHandler) Auth(c echo.Context) error {
	var req authRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return domain.ErrInvalidAction
	}

	var (
		result *ports.AuthResult
		err    error
	)
	switch req.Action {
	case "register":
		result, err = h.authService.Register(c.Request().Context(), ports.RegisterInput{
			Name:     req.Name,
			Phone:    req.Phone,
			Email:    req.Email,
			Password: req.Password,
		})
	case "login":
		// The phone field doubles as the identifier and may hold an email.
		result, err = h.authService.Login(c.Request().Context(), req.Phone, req.Password)
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResponse{
		Success:      true,
		User:         result.User,
		SessionToken: result.SessionToken,
	})
}
