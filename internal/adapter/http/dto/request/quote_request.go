package request

import (
	"quote_service/internal/domain/entities"
	"quote_service/internal/domain/quote"
)

type QuoteItemRequest struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Spec      string `json:"spec"`
	Quantity  int64  `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

// QuoteRequest is the editor payload for create and update. Totals, the
// quote number and timestamps are never accepted from clients.
type QuoteRequest struct {
	CustomerName string             `json:"customer_name"`
	Honorific    string             `json:"honorific"`
	IssueDate    string             `json:"issue_date"`
	ExpiryDate   string             `json:"expiry_date"`
	Items        []QuoteItemRequest `json:"items"`
	TaxRate      *int64             `json:"tax_rate" binding:"required"`
	Remarks      string             `json:"remarks"`
	Status       string             `json:"status"`
}

// TotalsRequest asks for live totals of an unsaved item list.
type TotalsRequest struct {
	Items   []QuoteItemRequest `json:"items"`
	TaxRate *int64             `json:"tax_rate" binding:"required"`
}

func (r QuoteRequest) ToDraft() quote.Draft {
	return quote.Draft{
		CustomerName: r.CustomerName,
		Honorific:    entities.Honorific(r.Honorific),
		IssueDate:    r.IssueDate,
		ExpiryDate:   r.ExpiryDate,
		Items:        toItems(r.Items),
		TaxRate:      resolveTaxRate(r.TaxRate),
		Remarks:      r.Remarks,
		Status:       entities.QuoteStatus(r.Status),
	}
}

func (r TotalsRequest) ResolveItems() []entities.QuoteItem {
	return toItems(r.Items)
}

func (r TotalsRequest) ResolveTaxRate() int64 {
	return resolveTaxRate(r.TaxRate)
}

func resolveTaxRate(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

func toItems(in []QuoteItemRequest) []entities.QuoteItem {
	items := make([]entities.QuoteItem, 0, len(in))
	for _, it := range in {
		items = append(items, entities.QuoteItem{
			ID:        it.ID,
			Name:      it.Name,
			Spec:      it.Spec,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return items
}
