package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/claimcheck/claimcheck-api/internal/core/ports"
)

// UserHandler serves PUT /api/users.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UpdatePartner replaces the caller's partner record.
//
// @Summary      Replace the partner sub-record
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      updateUserRequest  true  "userId + sessionToken act as the bearer credential"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/users [put]
func (h *UserHandler) UpdatePartner(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.userService.UpdatePartner(c.Request().Context(), ports.UpdatePartnerInput{
		UserID:       req.UserID,
		SessionToken: req.SessionToken,
		PartnerName:  req.PartnerName,
		PartnerPhone: req.PartnerPhone,
		PartnerEmail: req.PartnerEmail,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userResponse{Success: true, User: user})
}
