package quote

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const (
	quoteNumberPrefix = "QUO"
	maxSequence       = 999999
)

var ErrSequenceOutOfRange = errors.New("quote sequence out of range")

// Clock returns the current time. It is injected so timestamps and the quote
// number year can be fixed in tests.
type Clock func() time.Time

// SequenceSource is the single authoritative per-year counter. Implementations
// must increment atomically in storage; the service never caches or predicts
// the next value.
type SequenceSource interface {
	Next(ctx context.Context, year int) (int64, error)
}

// Issuer produces quote numbers of the form QUO-YYYY-NNNNNN.
type Issuer struct {
	source SequenceSource
	now    Clock
}

func NewIssuer(source SequenceSource, now Clock) *Issuer {
	if now == nil {
		now = time.Now
	}
	return &Issuer{source: source, now: now}
}

// Issue allocates the next number for the current year. The year comes from
// the clock at issuance time, not from the quote's issue date. Counter errors
// are returned unchanged.
func (i *Issuer) Issue(ctx context.Context) (string, error) {
	year := i.now().Year()
	seq, err := i.source.Next(ctx, year)
	if err != nil {
		return "", err
	}
	if seq < 1 || seq > maxSequence {
		return "", fmt.Errorf("%w: year=%d seq=%d", ErrSequenceOutOfRange, year, seq)
	}
	return FormatQuoteNumber(year, seq), nil
}

func FormatQuoteNumber(year int, seq int64) string {
	return fmt.Sprintf("%s-%04d-%06d", quoteNumberPrefix, year, seq)
}
