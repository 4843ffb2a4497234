package postgres

import (
	"context"
	"fmt"

	"quote_service/internal/usecase/interfaces"
)

// QuoteSequenceRepository hands out per-year quote numbers. The upsert takes
// a row lock, so concurrent callers are serialized by Postgres.
type QuoteSequenceRepository struct {
	db DBTX
}

var _ interfaces.IQuoteSequenceRepository = (*QuoteSequenceRepository)(nil)

func NewQuoteSequenceRepository(db DBTX) *QuoteSequenceRepository {
	return &QuoteSequenceRepository{db: db}
}

func (r *QuoteSequenceRepository) Next(ctx context.Context, year int) (int64, error) {
	var next int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO quote_sequences (year, last_value) VALUES ($1, 1)
		ON CONFLICT (year) DO UPDATE SET last_value = quote_sequences.last_value + 1
		RETURNING last_value`, year).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("quote sequence %d: %w", year, err)
	}
	return next, nil
}
