package entities

import "time"

// QuoteStatus represents the lifecycle of a quote (見積書).
//
// Domain notes:
//   - A quote starts as a draft and becomes issued once sent to the customer.
//   - The service honors the status requested by the caller on every save;
//     moving an issued quote back to draft is left to the caller's policy.
type QuoteStatus string

const (
	QuoteStatusDraft  QuoteStatus = "draft"
	QuoteStatusIssued QuoteStatus = "issued"
)

func (s QuoteStatus) Valid() bool {
	return s == QuoteStatusDraft || s == QuoteStatusIssued
}

// Honorific is the suffix printed after the customer name.
type Honorific string

const (
	HonorificOnchu Honorific = "御中" // companies and organizations
	HonorificSama  Honorific = "様"  // individuals
)

func (h Honorific) Valid() bool {
	return h == HonorificOnchu || h == HonorificSama
}

// QuoteItem is one priced line of a quote.
//
// Monetary representation:
//   - UnitPrice is expressed in yen, which has no subunit.
type QuoteItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Spec      string `json:"spec"`
	Quantity  int64  `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

// Quote is the persisted quotation document.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Derived fields:
//   - Subtotal, TaxAmount and TotalAmount are always recomputed from Items and
//     TaxRate when the quote is assembled; they are never edited directly.
//
// IssueDate and ExpiryDate hold canonical YYYY-MM-DD dates, or "" when unset.
type Quote struct {
	ID          string      `json:"id"`
	QuoteNumber string      `json:"quote_number"`
	Status      QuoteStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`

	CustomerName string    `json:"customer_name"`
	Honorific    Honorific `json:"honorific"`

	IssueDate  string `json:"issue_date"`
	ExpiryDate string `json:"expiry_date"`

	Items       []QuoteItem `json:"items"`
	TaxRate     int64       `json:"tax_rate"`
	Subtotal    int64       `json:"subtotal"`
	TaxAmount   int64       `json:"tax_amount"`
	TotalAmount int64       `json:"total_amount"`

	Remarks string `json:"remarks,omitempty"`
}
