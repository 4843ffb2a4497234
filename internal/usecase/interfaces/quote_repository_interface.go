package interfaces

import (
	"context"
	"quote_service/internal/domain/entities"
)

//go:generate mockgen -source=quote_repository_interface.go -destination=mocks/quote_repository_interface_mock.go -package=mock_interfaces

// IQuoteRepository abstracts persistence for Quote.
//
// The quote service must be able to:
//   - list every quote for the overview page
//   - load one quote for editing (zero Quote when absent)
//   - save an assembled quote, assigning the id when it has none
//   - delete a quote (false when it did not exist)
//
// Writes are last-write-wins; there is no optimistic concurrency token.
type IQuoteRepository interface {
	List(ctx context.Context) ([]entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	Save(ctx context.Context, q entities.Quote) (entities.Quote, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// IQuoteSequenceRepository is the authoritative per-year quote number counter.
// Next must increment atomically in storage and return the new value.
type IQuoteSequenceRepository interface {
	Next(ctx context.Context, year int) (int64, error)
}
