package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"quote_service/internal/domain/entities"
	"quote_service/internal/domain/quote"
	mock_interfaces "quote_service/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 2, 6, 9, 30, 0, 0, time.UTC)

func testClock() time.Time { return testNow }

func testDraft() quote.Draft {
	return quote.Draft{
		CustomerName: "株式会社クライアント",
		Honorific:    entities.HonorificOnchu,
		IssueDate:    "2026年2月6日",
		ExpiryDate:   "2026-02-20",
		Items:        []entities.QuoteItem{{ID: "1", Name: "Webサイト制作", Quantity: 2, UnitPrice: 1500}},
		TaxRate:      10,
		Status:       entities.QuoteStatusDraft,
	}
}

func storedQuote() entities.Quote {
	created := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	return entities.Quote{
		ID:           "q-1",
		QuoteNumber:  "QUO-2026-000001",
		Status:       entities.QuoteStatusDraft,
		CreatedAt:    created,
		UpdatedAt:    created,
		CustomerName: "株式会社クライアント",
		Honorific:    entities.HonorificOnchu,
		Items: []entities.QuoteItem{
			{ID: "1", Name: "design", Quantity: 1, UnitPrice: 1000},
			{ID: "2", Name: "build", Quantity: 2, UnitPrice: 2000},
		},
		TaxRate:     10,
		Subtotal:    5000,
		TaxAmount:   500,
		TotalAmount: 5500,
	}
}

func TestQuoteUseCase_NewTemplate(t *testing.T) {
	uc := NewQuoteUseCase(nil, nil, testClock, QuoteDefaults{TaxRate: 8, ValidityDays: 30})
	q := uc.NewTemplate(context.Background())
	if q.TaxRate != 8 || q.IssueDate != "2026-02-06" || q.ExpiryDate != "2026-03-08" {
		t.Fatalf("unexpected template: %+v", q)
	}
}

func TestQuoteUseCase_ComputeTotals(t *testing.T) {
	uc := NewQuoteUseCase(nil, nil, testClock, QuoteDefaults{})

	t.Run("negative tax rate", func(t *testing.T) {
		_, err := uc.ComputeTotals(context.Background(), nil, -5)
		if !errors.Is(err, ErrInvalidTaxRate) {
			t.Fatalf("expected ErrInvalidTaxRate, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		totals, err := uc.ComputeTotals(context.Background(), []entities.QuoteItem{{Quantity: 1, UnitPrice: 999}}, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if totals.TaxAmount != 99 || totals.TotalAmount != 1098 {
			t.Fatalf("unexpected totals: %+v", totals)
		}
	})

	t.Run("amount out of range", func(t *testing.T) {
		_, err := uc.ComputeTotals(context.Background(), []entities.QuoteItem{{Quantity: 4_000_000_000, UnitPrice: 4_000_000_000}}, 10)
		if !errors.Is(err, quote.ErrAmountOutOfRange) {
			t.Fatalf("expected ErrAmountOutOfRange, got %v", err)
		}
	})
}

func TestQuoteUseCase_Create(t *testing.T) {
	t.Run("storage not configured", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, testClock, QuoteDefaults{})
		_, err := uc.Create(context.Background(), testDraft())
		if !errors.Is(err, ErrRepoUnavailable) {
			t.Fatalf("expected ErrRepoUnavailable, got %v", err)
		}
	})

	t.Run("missing customer name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		seq := mock_interfaces.NewMockIQuoteSequenceRepository(ctrl)
		uc := NewQuoteUseCase(repo, seq, testClock, QuoteDefaults{})

		d := testDraft()
		d.CustomerName = ""
		_, err := uc.Create(context.Background(), d)
		if !errors.Is(err, quote.ErrMissingCustomerName) {
			t.Fatalf("expected ErrMissingCustomerName, got %v", err)
		}
	})

	t.Run("sequence error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		seq := mock_interfaces.NewMockIQuoteSequenceRepository(ctrl)
		uc := NewQuoteUseCase(repo, seq, testClock, QuoteDefaults{})

		seq.EXPECT().Next(gomock.Any(), 2026).Return(int64(0), errors.New("db"))

		_, err := uc.Create(context.Background(), testDraft())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("save error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		seq := mock_interfaces.NewMockIQuoteSequenceRepository(ctrl)
		uc := NewQuoteUseCase(repo, seq, testClock, QuoteDefaults{})

		seq.EXPECT().Next(gomock.Any(), 2026).Return(int64(1), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.Quote{}, errors.New("db"))

		_, err := uc.Create(context.Background(), testDraft())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		seq := mock_interfaces.NewMockIQuoteSequenceRepository(ctrl)
		uc := NewQuoteUseCase(repo, seq, testClock, QuoteDefaults{})

		seq.EXPECT().Next(gomock.Any(), 2026).Return(int64(12), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.ID != "" {
					t.Fatalf("expected empty id before save, got %q", q.ID)
				}
				if q.QuoteNumber != "QUO-2026-000012" || q.Subtotal != 3000 || q.TaxAmount != 300 || q.TotalAmount != 3300 {
					t.Fatalf("unexpected quote: %+v", q)
				}
				if !q.CreatedAt.Equal(testNow) || !q.UpdatedAt.Equal(testNow) {
					t.Fatalf("unexpected timestamps: %+v", q)
				}
				q.ID = "new-id"
				return q, nil
			},
		)

		res, err := uc.Create(context.Background(), testDraft())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "new-id" {
			t.Fatalf("expected persisted id, got %q", res.ID)
		}
	})
}

func TestQuoteUseCase_Update(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, testClock, QuoteDefaults{})
		_, err := uc.Update(context.Background(), "  ", testDraft())
		if !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		seq := mock_interfaces.NewMockIQuoteSequenceRepository(ctrl)
		uc := NewQuoteUseCase(repo, seq, testClock, QuoteDefaults{})

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)

		_, err := uc.Update(context.Background(), "q-1", testDraft())
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		seq := mock_interfaces.NewMockIQuoteSequenceRepository(ctrl)
		uc := NewQuoteUseCase(repo, seq, testClock, QuoteDefaults{})

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, errors.New("db"))

		_, err := uc.Update(context.Background(), "q-1", testDraft())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("keeps number and createdAt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		seq := mock_interfaces.NewMockIQuoteSequenceRepository(ctrl)
		uc := NewQuoteUseCase(repo, seq, testClock, QuoteDefaults{})

		existing := storedQuote()
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(existing, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) { return q, nil },
		)

		d := testDraft()
		d.Status = entities.QuoteStatusIssued
		res, err := uc.Update(context.Background(), " q-1 ", d)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "q-1" || res.QuoteNumber != existing.QuoteNumber {
			t.Fatalf("identity changed: %+v", res)
		}
		if !res.CreatedAt.Equal(existing.CreatedAt) || !res.UpdatedAt.Equal(testNow) {
			t.Fatalf("unexpected timestamps: %v %v", res.CreatedAt, res.UpdatedAt)
		}
		if res.Status != entities.QuoteStatusIssued || res.TotalAmount != 3300 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("legacy record without number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		seq := mock_interfaces.NewMockIQuoteSequenceRepository(ctrl)
		uc := NewQuoteUseCase(repo, seq, testClock, QuoteDefaults{})

		legacy := storedQuote()
		legacy.QuoteNumber = ""
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(legacy, nil)
		seq.EXPECT().Next(gomock.Any(), 2026).Return(int64(3), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) { return q, nil },
		)

		res, err := uc.Update(context.Background(), "q-1", testDraft())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.QuoteNumber != "QUO-2026-000003" {
			t.Fatalf("unexpected number %s", res.QuoteNumber)
		}
	})
}

func TestQuoteUseCase_RemoveItem(t *testing.T) {
	t.Run("invalid ids", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, testClock, QuoteDefaults{})
		if _, err := uc.RemoveItem(context.Background(), "", "1"); !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
		if _, err := uc.RemoveItem(context.Background(), "q-1", " "); !errors.Is(err, ErrInvalidItemID) {
			t.Fatalf("expected ErrInvalidItemID, got %v", err)
		}
	})

	t.Run("last item rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		seq := mock_interfaces.NewMockIQuoteSequenceRepository(ctrl)
		uc := NewQuoteUseCase(repo, seq, testClock, QuoteDefaults{})

		single := storedQuote()
		single.Items = single.Items[:1]
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(single, nil)

		_, err := uc.RemoveItem(context.Background(), "q-1", "1")
		if !errors.Is(err, quote.ErrLastItem) {
			t.Fatalf("expected ErrLastItem, got %v", err)
		}
	})

	t.Run("success recomputes totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		seq := mock_interfaces.NewMockIQuoteSequenceRepository(ctrl)
		uc := NewQuoteUseCase(repo, seq, testClock, QuoteDefaults{})

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(storedQuote(), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) { return q, nil },
		)

		res, err := uc.RemoveItem(context.Background(), "q-1", "2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Items) != 1 || res.Items[0].ID != "1" {
			t.Fatalf("unexpected items: %+v", res.Items)
		}
		if res.Subtotal != 1000 || res.TaxAmount != 100 || res.TotalAmount != 1100 {
			t.Fatalf("unexpected totals: %+v", res)
		}
		if res.QuoteNumber != "QUO-2026-000001" || res.Status != entities.QuoteStatusDraft {
			t.Fatalf("unexpected identity: %+v", res)
		}
	})
}

func TestQuoteUseCase_Getters(t *testing.T) {
	t.Run("GetByID", func(t *testing.T) {
		t.Run("invalid id", func(t *testing.T) {
			uc := NewQuoteUseCase(nil, nil, testClock, QuoteDefaults{})
			_, err := uc.GetByID(context.Background(), "")
			if !errors.Is(err, ErrInvalidQuoteID) {
				t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
			}
		})

		t.Run("not found", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
			uc := NewQuoteUseCase(repo, nil, testClock, QuoteDefaults{})
			repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)

			_, err := uc.GetByID(context.Background(), "q-1")
			if !errors.Is(err, ErrQuoteNotFound) {
				t.Fatalf("expected ErrQuoteNotFound, got %v", err)
			}
		})

		t.Run("success", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
			uc := NewQuoteUseCase(repo, nil, testClock, QuoteDefaults{})
			repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(storedQuote(), nil)

			res, err := uc.GetByID(context.Background(), " q-1 ")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.ID != "q-1" {
				t.Fatalf("unexpected result: %+v", res)
			}
		})
	})

	t.Run("List sorts by updatedAt desc", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, testClock, QuoteDefaults{})

		older := entities.Quote{ID: "a", UpdatedAt: testNow.Add(-time.Hour)}
		newer := entities.Quote{ID: "b", UpdatedAt: testNow}
		repo.EXPECT().List(gomock.Any()).Return([]entities.Quote{older, newer}, nil)

		res, err := uc.List(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 2 || res[0].ID != "b" || res[1].ID != "a" {
			t.Fatalf("unexpected order: %+v", res)
		}
	})

	t.Run("List repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, testClock, QuoteDefaults{})
		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		_, err := uc.List(context.Background())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestQuoteUseCase_Delete(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, testClock, QuoteDefaults{})
		if err := uc.Delete(context.Background(), " "); !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, testClock, QuoteDefaults{})
		repo.EXPECT().Delete(gomock.Any(), "q-1").Return(false, nil)

		if err := uc.Delete(context.Background(), "q-1"); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, testClock, QuoteDefaults{})
		repo.EXPECT().Delete(gomock.Any(), "q-1").Return(false, errors.New("db"))

		if err := uc.Delete(context.Background(), "q-1"); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, testClock, QuoteDefaults{})
		repo.EXPECT().Delete(gomock.Any(), "q-1").Return(true, nil)

		if err := uc.Delete(context.Background(), "q-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
