package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lingorelay/internal/auth"
	"lingorelay/internal/errors"
	"lingorelay/internal/service"
)

// HistoryHandler handles translation history endpoints. The owning identity
// always comes from the request context set by the auth middleware.
type HistoryHandler struct {
	historyService service.HistoryService
}

// NewHistoryHandler creates a new history handler.
func NewHistoryHandler(historyService service.HistoryService) *HistoryHandler {
	return &HistoryHandler{historyService: historyService}
}

// SaveHistoryRequest represents a save request.
type SaveHistoryRequest struct {
	Original   string `json:"original" validate:"required"`
	Translated string `json:"translated" validate:"required"`
	FromLang   string `json:"fromLang" validate:"required"`
	ToLang     string `json:"toLang" validate:"required"`
}

// Save godoc
// @Summary Save a translation to the caller's history
// @Tags history
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SaveHistoryRequest true "Translation data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /history/save [post]
func (h *HistoryHandler) Save(c echo.Context) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing identity")
	}

	var req SaveHistoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.historyService.Save(c.Request().Context(), identity, req.Original, req.Translated, req.FromLang, req.ToLang); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"success": true})
}

// Get godoc
// @Summary List the caller's translation history, newest first
// @Tags history
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.TranslationRecord
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /history/get [get]
func (h *HistoryHandler) Get(c echo.Context) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing identity")
	}

	records, err := h.historyService.List(c.Request().Context(), identity)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, records)
}

// Clear godoc
// @Summary Delete all of the caller's history
// @Tags history
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /history/clear [delete]
func (h *HistoryHandler) Clear(c echo.Context) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing identity")
	}

	count, err := h.historyService.Clear(c.Request().Context(), identity)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"success": true, "count": count})
}

// Delete godoc
// @Summary Delete one history record by id
// @Tags history
// @Produce json
// @Security BearerAuth
// @Param id path string true "Record id"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /history/delete/{id} [delete]
func (h *HistoryHandler) Delete(c echo.Context) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing identity")
	}

	if err := h.historyService.Delete(c.Request().Context(), identity, c.Param("id")); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"success": true})
}
