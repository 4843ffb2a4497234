package quote

import (
	"context"
	"strings"
	"time"

	"quote_service/internal/domain/entities"

	"github.com/google/uuid"
)

// Draft is what the editor holds before a save: the user-entered fields of
// a quote. Derived totals, timestamps and the quote number are not part of it.
type Draft struct {
	CustomerName string
	Honorific    entities.Honorific
	IssueDate    string
	ExpiryDate   string
	Items        []entities.QuoteItem
	TaxRate      int64
	Remarks      string
	Status       entities.QuoteStatus
}

// Assembler validates a Draft and builds the persist-ready Quote.
type Assembler struct {
	issuer *Issuer
	now    Clock
}

func NewAssembler(issuer *Issuer, now Clock) *Assembler {
	if now == nil {
		now = time.Now
	}
	return &Assembler{issuer: issuer, now: now}
}

// Assemble builds a Quote from d. existing is nil for a new quote and the
// stored record when editing.
//
// For a new quote the id is left empty for the repository to assign, a quote
// number is issued and both timestamps are set to now. For an existing quote
// id, CreatedAt and QuoteNumber are carried over (a number is issued only when
// a legacy record lacks one) and UpdatedAt is refreshed.
//
// Either a fully populated Quote or an error is returned. All validation runs
// before a number is issued so a rejected draft never consumes a sequence.
func (a *Assembler) Assemble(ctx context.Context, d Draft, existing *entities.Quote) (entities.Quote, error) {
	customerName := strings.TrimSpace(d.CustomerName)
	if customerName == "" {
		return entities.Quote{}, ErrMissingCustomerName
	}

	status := d.Status
	if status == "" {
		status = entities.QuoteStatusDraft
	}
	if !status.Valid() {
		return entities.Quote{}, ErrInvalidStatus
	}

	honorific := d.Honorific
	if honorific == "" {
		honorific = entities.HonorificOnchu
	}
	if !honorific.Valid() {
		return entities.Quote{}, ErrInvalidHonorific
	}

	if d.TaxRate < 0 {
		return entities.Quote{}, ErrNegativeTaxRate
	}

	items, err := prepareItems(d.Items)
	if err != nil {
		return entities.Quote{}, err
	}

	issueDate, _ := NormalizeDate(d.IssueDate)
	expiryDate, _ := NormalizeDate(d.ExpiryDate)
	totals, err := ComputeTotals(items, d.TaxRate)
	if err != nil {
		return entities.Quote{}, err
	}
	now := a.now()

	q := entities.Quote{
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
		CustomerName: customerName,
		Honorific:    honorific,
		IssueDate:    issueDate,
		ExpiryDate:   expiryDate,
		Items:        items,
		TaxRate:      d.TaxRate,
		Subtotal:     totals.Subtotal,
		TaxAmount:    totals.TaxAmount,
		TotalAmount:  totals.TotalAmount,
		Remarks:      d.Remarks,
	}

	if existing != nil {
		q.ID = existing.ID
		q.QuoteNumber = existing.QuoteNumber
		if !existing.CreatedAt.IsZero() {
			q.CreatedAt = existing.CreatedAt
		}
	}

	if q.QuoteNumber == "" {
		number, err := a.issuer.Issue(ctx)
		if err != nil {
			return entities.Quote{}, err
		}
		q.QuoteNumber = number
	}

	return q, nil
}

// prepareItems copies the lines, assigns ids to lines that have none and
// rejects empty lists, duplicate ids and negative amounts.
func prepareItems(in []entities.QuoteItem) ([]entities.QuoteItem, error) {
	if len(in) == 0 {
		return nil, ErrNoItems
	}

	out := make([]entities.QuoteItem, len(in))
	seen := make(map[string]struct{}, len(in))
	for i, it := range in {
		if it.Quantity < 0 {
			return nil, ErrNegativeQuantity
		}
		if it.UnitPrice < 0 {
			return nil, ErrNegativeUnitPrice
		}
		if it.ID == "" {
			it.ID = uuid.NewString()
		}
		if _, dup := seen[it.ID]; dup {
			return nil, ErrDuplicateItemID
		}
		seen[it.ID] = struct{}{}
		out[i] = it
	}
	return out, nil
}
