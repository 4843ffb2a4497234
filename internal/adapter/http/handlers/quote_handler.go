package handlers

import (
	"errors"
	"log"
	"net/http"

	request "quote_service/internal/adapter/http/dto/request"
	response "quote_service/internal/adapter/http/dto/response"
	"quote_service/internal/domain/quote"
	"quote_service/internal/usecase"
	"quote_service/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler handles HTTP requests for the quote editor.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// ListQuotes godoc
// @Summary      List quotes
// @Description  Every stored quote, most recently updated first.
// @Tags         quotes
// @Produce      json
// @Success      200  {array}   response.QuoteResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

// NewQuote godoc
// @Summary      New quote template
// @Description  Unsaved quote prefilled with today's dates, the default tax rate and one sample line.
// @Tags         quotes
// @Produce      json
// @Success      200  {object}  response.QuoteResponse
// @Router       /quotes/new [get]
func (h *QuoteHandler) NewQuote(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromQuote(h.usecase.NewTemplate(c.Request.Context())))
}

// ComputeTotals godoc
// @Summary      Compute totals
// @Description  Subtotal, tax (rounded down) and total for an unsaved item list.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        body  body      request.TotalsRequest  true  "Items and tax rate"
// @Success      200   {object}  response.TotalsResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /quotes/totals [post]
func (h *QuoteHandler) ComputeTotals(c *gin.Context) {
	var payload request.TotalsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	totals, err := h.usecase.ComputeTotals(c.Request.Context(), payload.ResolveItems(), payload.ResolveTaxRate())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTotals(totals))
}

// CreateQuote godoc
// @Summary      Create quote
// @Description  Validates the draft, issues a quote number and saves it with the requested status.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        body  body      request.QuoteRequest  true  "Quote draft"
// @Success      201   {object}  response.QuoteResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Router       /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[quote][handler] invalid create payload err=%v", err)
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToDraft())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromQuote(created))
}

// GetQuote godoc
// @Summary      Get quote
// @Tags         quotes
// @Produce      json
// @Param        id   path      string  true  "Quote ID"
// @Success      200  {object}  response.QuoteResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quotes/{id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	q, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// UpdateQuote godoc
// @Summary      Update quote
// @Description  Reassembles a stored quote. The quote number and creation time are kept.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Quote ID"
// @Param        body  body      request.QuoteRequest  true  "Quote draft"
// @Success      200   {object}  response.QuoteResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /quotes/{id} [put]
func (h *QuoteHandler) UpdateQuote(c *gin.Context) {
	id := c.Param("id")
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[quote][handler] invalid update payload id=%s err=%v", id, err)
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), id, payload.ToDraft())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(updated))
}

// DeleteQuote godoc
// @Summary      Delete quote
// @Tags         quotes
// @Param        id   path  string  true  "Quote ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quotes/{id} [delete]
func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// RemoveQuoteItem godoc
// @Summary      Remove quote item
// @Description  Removes one line and saves the recomputed quote. The last line cannot be removed.
// @Tags         quotes
// @Produce      json
// @Param        id       path      string  true  "Quote ID"
// @Param        item_id  path      string  true  "Item ID"
// @Success      200      {object}  response.QuoteResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /quotes/{id}/items/{item_id} [delete]
func (h *QuoteHandler) RemoveQuoteItem(c *gin.Context) {
	q, err := h.usecase.RemoveItem(c.Request.Context(), c.Param("id"), c.Param("item_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

func mapQuoteError(err error) *pkg.AppError {
	var validation *quote.ValidationError
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidItemID), errors.Is(err, usecase.ErrInvalidTaxRate):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, quote.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Item not found", http.StatusNotFound)
	case errors.As(err, &validation):
		return pkg.NewFieldError("VALIDATION_ERROR", validation.Message, validation.Field, err, http.StatusBadRequest)
	default:
		log.Printf("[quote][handler] internal error err=%v", err)
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
