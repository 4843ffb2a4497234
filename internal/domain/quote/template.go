package quote

import (
	"time"

	"quote_service/internal/domain/entities"
)

const (
	templateItemName      = "Webサイト制作"
	templateItemSpec      = "コーポレートサイト"
	templateItemUnitPrice = 300000
)

// NewTemplate returns the blank quote shown when the user starts a new one:
// issued today, valid for validityDays, one sample line. It has no id and no
// quote number; both are assigned on the first save.
func NewTemplate(today time.Time, taxRate int64, validityDays int) entities.Quote {
	item := NewItem()
	item.Name = templateItemName
	item.Spec = templateItemSpec
	item.UnitPrice = templateItemUnitPrice

	items := []entities.QuoteItem{item}
	// Only an absurd configured tax rate can overflow; totals stay zero then.
	totals, _ := ComputeTotals(items, taxRate)

	return entities.Quote{
		Status:      entities.QuoteStatusDraft,
		Honorific:   entities.HonorificOnchu,
		IssueDate:   today.Format(time.DateOnly),
		ExpiryDate:  today.AddDate(0, 0, validityDays).Format(time.DateOnly),
		Items:       items,
		TaxRate:     taxRate,
		Subtotal:    totals.Subtotal,
		TaxAmount:   totals.TaxAmount,
		TotalAmount: totals.TotalAmount,
	}
}
