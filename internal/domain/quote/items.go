package quote

import (
	"quote_service/internal/domain/entities"

	"github.com/google/uuid"
)

// NewItem returns a blank line with a fresh id and quantity 1.
func NewItem() entities.QuoteItem {
	return entities.QuoteItem{
		ID:       uuid.NewString(),
		Quantity: 1,
	}
}

// AddItem appends a blank line. The input slice is not modified.
func AddItem(items []entities.QuoteItem) []entities.QuoteItem {
	out := make([]entities.QuoteItem, 0, len(items)+1)
	out = append(out, items...)
	return append(out, NewItem())
}

// ItemPatch carries the fields to change on one line; nil fields are kept.
type ItemPatch struct {
	Name      *string
	Spec      *string
	Quantity  *int64
	UnitPrice *int64
}

// UpdateItem applies patch to the line with the given id, keeping order.
func UpdateItem(items []entities.QuoteItem, id string, patch ItemPatch) ([]entities.QuoteItem, error) {
	out := make([]entities.QuoteItem, len(items))
	copy(out, items)

	for i := range out {
		if out[i].ID != id {
			continue
		}
		if patch.Name != nil {
			out[i].Name = *patch.Name
		}
		if patch.Spec != nil {
			out[i].Spec = *patch.Spec
		}
		if patch.Quantity != nil {
			out[i].Quantity = *patch.Quantity
		}
		if patch.UnitPrice != nil {
			out[i].UnitPrice = *patch.UnitPrice
		}
		return out, nil
	}
	return nil, ErrItemNotFound
}

// RemoveItem drops the line with the given id. Unknown ids fail with
// ErrItemNotFound. A quote never loses its last line, so removing the only
// line fails with ErrLastItem.
func RemoveItem(items []entities.QuoteItem, id string) ([]entities.QuoteItem, error) {
	out := make([]entities.QuoteItem, 0, len(items))
	for _, it := range items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	if len(out) == len(items) {
		return nil, ErrItemNotFound
	}
	if len(out) == 0 {
		return nil, ErrLastItem
	}
	return out, nil
}
