package handlers

import (
	"errors"
	"log"
	"net/http"

	request "quote_service/internal/adapter/http/dto/request"
	response "quote_service/internal/adapter/http/dto/response"
	"quote_service/internal/usecase"
	"quote_service/pkg"

	"github.com/gin-gonic/gin"
)

// SettingsHandler serves the issuer details printed on every quote.
type SettingsHandler struct {
	usecase usecase.ISettingsUseCase
}

func NewSettingsHandler(uc usecase.ISettingsUseCase) *SettingsHandler {
	return &SettingsHandler{usecase: uc}
}

// GetSettings godoc
// @Summary      Get company settings
// @Tags         settings
// @Produce      json
// @Success      200  {object}  response.SettingsResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	s, err := h.usecase.Get(c.Request.Context())
	if err != nil {
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSettings(s))
}

// SaveSettings godoc
// @Summary      Save company settings
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body      request.SettingsRequest  true  "Company settings"
// @Success      200   {object}  response.SettingsResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /settings [put]
func (h *SettingsHandler) SaveSettings(c *gin.Context) {
	var payload request.SettingsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	saved, err := h.usecase.Save(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSettings(saved))
}

func mapSettingsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRegistrationNumber):
		return pkg.NewFieldError("VALIDATION_ERROR", "Registration number must be T followed by 13 digits", "registration_number", err, http.StatusBadRequest)
	default:
		log.Printf("[settings][handler] internal error err=%v", err)
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
