package usecase

import (
	"context"
	"errors"
	"log"
	"slices"
	"strings"
	"time"

	"quote_service/internal/domain/entities"
	"quote_service/internal/domain/quote"
	"quote_service/internal/usecase/interfaces"
)

var (
	ErrQuoteNotFound   = errors.New("quote not found")
	ErrInvalidQuoteID  = errors.New("invalid quote id")
	ErrInvalidItemID   = errors.New("invalid item id")
	ErrInvalidTaxRate  = errors.New("invalid tax rate")
	ErrRepoUnavailable = errors.New("quote storage not configured")
)

// QuoteDefaults are the values a new quote starts from.
type QuoteDefaults struct {
	TaxRate      int64
	ValidityDays int
}

//go:generate mockgen -source=quote_usecase.go -destination=../adapter/http/handlers/mocks/quote_usecase_mock.go -package=mocks

// IQuoteUseCase exposes the quote editor operations.
//
//   - NewTemplate: blank quote for the "new" form
//   - ComputeTotals: live totals while the user edits lines or tax rate
//   - Create / Update: assemble and persist (status requested by the caller)
//   - RemoveItem: drop one line from a stored quote, never the last one
//   - GetByID / List / Delete: plain persistence passthroughs
type IQuoteUseCase interface {
	NewTemplate(ctx context.Context) entities.Quote
	ComputeTotals(ctx context.Context, items []entities.QuoteItem, taxRate int64) (quote.Totals, error)
	Create(ctx context.Context, d quote.Draft) (entities.Quote, error)
	Update(ctx context.Context, id string, d quote.Draft) (entities.Quote, error)
	RemoveItem(ctx context.Context, id, itemID string) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	List(ctx context.Context) ([]entities.Quote, error)
	Delete(ctx context.Context, id string) error
}

type QuoteUseCase struct {
	repo      interfaces.IQuoteRepository
	assembler *quote.Assembler
	now       quote.Clock
	defaults  QuoteDefaults
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, sequences interfaces.IQuoteSequenceRepository, now quote.Clock, defaults QuoteDefaults) *QuoteUseCase {
	if now == nil {
		now = time.Now
	}
	var assembler *quote.Assembler
	if sequences != nil {
		assembler = quote.NewAssembler(quote.NewIssuer(sequences, now), now)
	}
	return &QuoteUseCase{repo: repo, assembler: assembler, now: now, defaults: defaults}
}

func (u *QuoteUseCase) NewTemplate(_ context.Context) entities.Quote {
	return quote.NewTemplate(u.now(), u.defaults.TaxRate, u.defaults.ValidityDays)
}

func (u *QuoteUseCase) ComputeTotals(_ context.Context, items []entities.QuoteItem, taxRate int64) (quote.Totals, error) {
	if taxRate < 0 {
		return quote.Totals{}, ErrInvalidTaxRate
	}
	return quote.ComputeTotals(items, taxRate)
}

func (u *QuoteUseCase) Create(ctx context.Context, d quote.Draft) (entities.Quote, error) {
	log.Printf("[quote][usecase] create start customer=%q items=%d status=%s", d.CustomerName, len(d.Items), d.Status)
	if u.repo == nil || u.assembler == nil {
		return entities.Quote{}, ErrRepoUnavailable
	}

	q, err := u.assembler.Assemble(ctx, d, nil)
	if err != nil {
		log.Printf("[quote][usecase] create rejected err=%v", err)
		return entities.Quote{}, err
	}

	saved, err := u.repo.Save(ctx, q)
	if err != nil {
		log.Printf("[quote][usecase] create save failed quote_number=%s err=%v", q.QuoteNumber, err)
		return entities.Quote{}, err
	}
	log.Printf("[quote][usecase] create success id=%s quote_number=%s total=%d", saved.ID, saved.QuoteNumber, saved.TotalAmount)
	return saved, nil
}

func (u *QuoteUseCase) Update(ctx context.Context, id string, d quote.Draft) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	if u.repo == nil || u.assembler == nil {
		return entities.Quote{}, ErrRepoUnavailable
	}

	existing, err := u.load(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if existing.Status == entities.QuoteStatusIssued && d.Status == entities.QuoteStatusDraft {
		log.Printf("[quote][usecase] reopening issued quote as draft id=%s quote_number=%s", id, existing.QuoteNumber)
	}

	return u.reassemble(ctx, d, existing)
}

func (u *QuoteUseCase) RemoveItem(ctx context.Context, id, itemID string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.Quote{}, ErrInvalidItemID
	}
	if u.repo == nil || u.assembler == nil {
		return entities.Quote{}, ErrRepoUnavailable
	}

	existing, err := u.load(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}

	items, err := quote.RemoveItem(existing.Items, itemID)
	if err != nil {
		return entities.Quote{}, err
	}

	d := draftFromQuote(existing)
	d.Items = items
	return u.reassemble(ctx, d, existing)
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	if u.repo == nil {
		return entities.Quote{}, ErrRepoUnavailable
	}
	return u.load(ctx, id)
}

// List returns every quote, most recently updated first.
func (u *QuoteUseCase) List(ctx context.Context) ([]entities.Quote, error) {
	if u.repo == nil {
		return nil, ErrRepoUnavailable
	}
	quotes, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(quotes, func(a, b entities.Quote) int {
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})
	return quotes, nil
}

func (u *QuoteUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidQuoteID
	}
	if u.repo == nil {
		return ErrRepoUnavailable
	}

	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		log.Printf("[quote][usecase] delete failed id=%s err=%v", id, err)
		return err
	}
	if !found {
		return ErrQuoteNotFound
	}
	log.Printf("[quote][usecase] deleted id=%s", id)
	return nil
}

func (u *QuoteUseCase) load(ctx context.Context, id string) (entities.Quote, error) {
	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) reassemble(ctx context.Context, d quote.Draft, existing entities.Quote) (entities.Quote, error) {
	q, err := u.assembler.Assemble(ctx, d, &existing)
	if err != nil {
		log.Printf("[quote][usecase] update rejected id=%s err=%v", existing.ID, err)
		return entities.Quote{}, err
	}

	saved, err := u.repo.Save(ctx, q)
	if err != nil {
		log.Printf("[quote][usecase] update save failed id=%s err=%v", existing.ID, err)
		return entities.Quote{}, err
	}
	log.Printf("[quote][usecase] update success id=%s quote_number=%s status=%s total=%d", saved.ID, saved.QuoteNumber, saved.Status, saved.TotalAmount)
	return saved, nil
}

func draftFromQuote(q entities.Quote) quote.Draft {
	return quote.Draft{
		CustomerName: q.CustomerName,
		Honorific:    q.Honorific,
		IssueDate:    q.IssueDate,
		ExpiryDate:   q.ExpiryDate,
		Items:        q.Items,
		TaxRate:      q.TaxRate,
		Remarks:      q.Remarks,
		Status:       q.Status,
	}
}
