package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"lingorelay/internal/errors"
	"lingorelay/internal/service"
)

// maxTranslateBody bounds the request payload relayed upstream.
const maxTranslateBody = 1 << 20

// TranslateHandler relays completion requests to the upstream API.
type TranslateHandler struct {
	translateService service.TranslateService
}

// NewTranslateHandler creates a new translate handler.
func NewTranslateHandler(translateService service.TranslateService) *TranslateHandler {
	return &TranslateHandler{translateService: translateService}
}

// Translate godoc
// @Summary Relay a translation request to the completion API
// @Tags translate
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "Completion payload (messages, max_tokens)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /translate [post]
func (h *TranslateHandler) Translate(c echo.Context) error {
	payload, err := io.ReadAll(io.LimitReader(c.Request().Body, maxTranslateBody))
	if err != nil || len(payload) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	status, body, err := h.translateService.Relay(c.Request().Context(), payload)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	// The upstream response passes through verbatim, status included.
	return c.Blob(status, echo.MIMEApplicationJSON, body)
}
