package response

import (
	"time"

	"quote_service/internal/domain/entities"
	"quote_service/internal/domain/quote"
)

type QuoteItemResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Spec             string `json:"spec"`
	Quantity         int64  `json:"quantity"`
	UnitPrice        int64  `json:"unit_price"`
	UnitPriceDisplay string `json:"unit_price_display"`
	Amount           int64  `json:"amount"`
	AmountDisplay    string `json:"amount_display"`
}

type QuoteResponse struct {
	ID                 string              `json:"id"`
	QuoteNumber        string              `json:"quote_number"`
	Status             string              `json:"status"`
	CustomerName       string              `json:"customer_name"`
	Honorific          string              `json:"honorific"`
	IssueDate          string              `json:"issue_date"`
	ExpiryDate         string              `json:"expiry_date"`
	Items              []QuoteItemResponse `json:"items"`
	TaxRate            int64               `json:"tax_rate"`
	Subtotal           int64               `json:"subtotal"`
	TaxAmount          int64               `json:"tax_amount"`
	TotalAmount        int64               `json:"total_amount"`
	SubtotalDisplay    string              `json:"subtotal_display"`
	TaxAmountDisplay   string              `json:"tax_amount_display"`
	TotalAmountDisplay string              `json:"total_amount_display"`
	Remarks            string              `json:"remarks"`
	CreatedAt          *time.Time          `json:"created_at,omitempty"`
	UpdatedAt          *time.Time          `json:"updated_at,omitempty"`
}

type TotalsResponse struct {
	Subtotal           int64  `json:"subtotal"`
	TaxAmount          int64  `json:"tax_amount"`
	TotalAmount        int64  `json:"total_amount"`
	SubtotalDisplay    string `json:"subtotal_display"`
	TaxAmountDisplay   string `json:"tax_amount_display"`
	TotalAmountDisplay string `json:"total_amount_display"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	items := make([]QuoteItemResponse, 0, len(q.Items))
	for _, it := range q.Items {
		amount := it.Quantity * it.UnitPrice
		items = append(items, QuoteItemResponse{
			ID:               it.ID,
			Name:             it.Name,
			Spec:             it.Spec,
			Quantity:         it.Quantity,
			UnitPrice:        it.UnitPrice,
			UnitPriceDisplay: quote.FormatYen(it.UnitPrice),
			Amount:           amount,
			AmountDisplay:    quote.FormatYen(amount),
		})
	}
	return QuoteResponse{
		ID:                 q.ID,
		QuoteNumber:        q.QuoteNumber,
		Status:             string(q.Status),
		CustomerName:       q.CustomerName,
		Honorific:          string(q.Honorific),
		IssueDate:          q.IssueDate,
		ExpiryDate:         q.ExpiryDate,
		Items:              items,
		TaxRate:            q.TaxRate,
		Subtotal:           q.Subtotal,
		TaxAmount:          q.TaxAmount,
		TotalAmount:        q.TotalAmount,
		SubtotalDisplay:    quote.FormatYen(q.Subtotal),
		TaxAmountDisplay:   quote.FormatYen(q.TaxAmount),
		TotalAmountDisplay: quote.FormatYen(q.TotalAmount),
		Remarks:            q.Remarks,
		CreatedAt:          timePtr(q.CreatedAt),
		UpdatedAt:          timePtr(q.UpdatedAt),
	}
}

func FromQuotes(qs []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, FromQuote(q))
	}
	return out
}

func FromTotals(t quote.Totals) TotalsResponse {
	return TotalsResponse{
		Subtotal:           t.Subtotal,
		TaxAmount:          t.TaxAmount,
		TotalAmount:        t.TotalAmount,
		SubtotalDisplay:    quote.FormatYen(t.Subtotal),
		TaxAmountDisplay:   quote.FormatYen(t.TaxAmount),
		TotalAmountDisplay: quote.FormatYen(t.TotalAmount),
	}
}

// timePtr hides unset timestamps, e.g. on the unsaved new-quote template.
func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
