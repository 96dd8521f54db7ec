package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/claimcheck/claimcheck-api/internal/core/ports"
)

// SearchHandler serves GET /api/search. No authentication: anyone may ask
// whether an identity has been claimed.
type SearchHandler struct {
	searchService ports.SearchService
}

func NewSearchHandler(searchService ports.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// Search looks up a phone number, email, or name among claimed partners.
//
// @Summary      Search claimed partner identities
// @Tags         search
// @Produce      json
// @Param        q    query     string  true  "free-text query, matched literally"
// @Success      200  {object}  searchResponse
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/search [get]
func (h *SearchHandler) Search(c echo.Context) error {
	result, err := h.searchService.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, searchResponse{
		Success: true,
		Count:   result.Count,
		Matches: result.Matches,
	})
}
