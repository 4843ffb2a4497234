package repository

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"quote_service/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func sampleQuote() entities.Quote {
	now := time.Date(2026, 2, 6, 9, 0, 0, 123, time.UTC)
	return entities.Quote{
		QuoteNumber:  "QUO-2026-000001",
		Status:       entities.QuoteStatusDraft,
		CreatedAt:    now,
		UpdatedAt:    now,
		CustomerName: "株式会社クライアント",
		Honorific:    entities.HonorificOnchu,
		IssueDate:    "2026-02-06",
		ExpiryDate:   "2026-02-20",
		Items: []entities.QuoteItem{
			{ID: "1", Name: "Webサイト制作", Spec: "コーポレートサイト", Quantity: 1, UnitPrice: 300000},
			{ID: "2", Name: "保守", Quantity: 12, UnitPrice: 10000},
		},
		TaxRate:     10,
		Subtotal:    420000,
		TaxAmount:   42000,
		TotalAmount: 462000,
		Remarks:     "納期: 契約後1ヶ月",
	}
}

func TestQuoteDynamoRepository_SaveAndGet(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewQuoteDynamoRepository(ddb)
	ctx := context.Background()

	saved, err := repo.Save(ctx, sampleQuote())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.ID == "" {
		t.Fatalf("expected generated id")
	}

	got, err := repo.GetByID(ctx, saved.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.CreatedAt.Equal(saved.CreatedAt) || !got.UpdatedAt.Equal(saved.UpdatedAt) {
		t.Fatalf("timestamps changed: %v %v", got.CreatedAt, got.UpdatedAt)
	}
	got.CreatedAt, got.UpdatedAt = saved.CreatedAt, saved.UpdatedAt
	if !reflect.DeepEqual(got, saved) {
		t.Fatalf("round trip mismatch:\n got  %+v\n want %+v", got, saved)
	}
}

func TestQuoteDynamoRepository_SaveExistingOverwrites(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewQuoteDynamoRepository(ddb)
	ctx := context.Background()

	saved, err := repo.Save(ctx, sampleQuote())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	saved.Status = entities.QuoteStatusIssued
	saved.Remarks = ""

	again, err := repo.Save(ctx, saved)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.ID != saved.ID {
		t.Fatalf("id changed on update")
	}

	got, _ := repo.GetByID(ctx, saved.ID)
	if got.Status != entities.QuoteStatusIssued || got.Remarks != "" {
		t.Fatalf("unexpected stored quote: %+v", got)
	}
	all, _ := repo.List(ctx)
	if len(all) != 1 {
		t.Fatalf("expected one stored quote, got %d", len(all))
	}
}

func TestQuoteDynamoRepository_GetMissing(t *testing.T) {
	repo := NewQuoteDynamoRepository(newFakeDynamo())
	got, err := repo.GetByID(context.Background(), "nope")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "" {
		t.Fatalf("expected zero quote, got %+v", got)
	}
}

func TestQuoteDynamoRepository_ListAndDelete(t *testing.T) {
	repo := NewQuoteDynamoRepository(newFakeDynamo())
	ctx := context.Background()

	a, _ := repo.Save(ctx, sampleQuote())
	b, _ := repo.Save(ctx, sampleQuote())

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 quotes, got %d", len(all))
	}

	found, err := repo.Delete(ctx, a.ID)
	if err != nil || !found {
		t.Fatalf("expected delete to find %s, got %v %v", a.ID, found, err)
	}
	found, err = repo.Delete(ctx, a.ID)
	if err != nil || found {
		t.Fatalf("expected second delete to miss, got %v %v", found, err)
	}

	all, _ = repo.List(ctx)
	if len(all) != 1 || all[0].ID != b.ID {
		t.Fatalf("unexpected remaining quotes: %+v", all)
	}
}

func TestQuoteDynamoRepository_ErrorsPropagate(t *testing.T) {
	ddb := newFakeDynamo()
	ddb.err = errors.New("network")
	repo := NewQuoteDynamoRepository(ddb)
	ctx := context.Background()

	if _, err := repo.Save(ctx, sampleQuote()); !errors.Is(err, ddb.err) {
		t.Fatalf("Save: expected network error, got %v", err)
	}
	if _, err := repo.GetByID(ctx, "x"); !errors.Is(err, ddb.err) {
		t.Fatalf("GetByID: expected network error, got %v", err)
	}
	if _, err := repo.List(ctx); !errors.Is(err, ddb.err) {
		t.Fatalf("List: expected network error, got %v", err)
	}
	if _, err := repo.Delete(ctx, "x"); !errors.Is(err, ddb.err) {
		t.Fatalf("Delete: expected network error, got %v", err)
	}
}

func TestQuoteSequenceDynamoRepository_Next(t *testing.T) {
	repo := NewQuoteSequenceDynamoRepository(newFakeDynamo())
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		got, err := repo.Next(ctx, 2026)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != want {
			t.Fatalf("expected %d, got %d", want, got)
		}
	}

	got, err := repo.Next(ctx, 2027)
	if err != nil || got != 1 {
		t.Fatalf("expected a fresh counter for 2027, got %d %v", got, err)
	}
}

func TestQuoteSequenceDynamoRepository_Concurrent(t *testing.T) {
	repo := NewQuoteSequenceDynamoRepository(newFakeDynamo())

	const n = 100
	var wg sync.WaitGroup
	var mu sync.Mutex
	seen := map[int64]bool{}
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := repo.Next(context.Background(), 2026)
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			mu.Lock()
			defer mu.Unlock()
			if seen[v] {
				t.Errorf("duplicate sequence %d", v)
			}
			seen[v] = true
		}()
	}
	wg.Wait()
	if len(seen) != n {
		t.Fatalf("expected %d distinct values, got %d", n, len(seen))
	}
}

func TestSettingsDynamoRepository(t *testing.T) {
	repo := NewSettingsDynamoRepository(newFakeDynamo())
	ctx := context.Background()

	empty, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if empty != (entities.CompanySettings{}) {
		t.Fatalf("expected zero settings, got %+v", empty)
	}

	s := entities.CompanySettings{
		CompanyName:        "株式会社サンプル",
		ZipCode:            "100-0001",
		Address:            "東京都千代田区1-1",
		Tel:                "03-0000-0000",
		Email:              "info@example.com",
		RegistrationNumber: "T1234567890123",
	}
	if err := repo.Save(ctx, s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != s {
		t.Fatalf("expected %+v, got %+v", s, got)
	}
}

func TestQuoteDynamoRepository_CorruptTimestamp(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewQuoteDynamoRepository(ddb)
	ctx := context.Background()

	saved, err := repo.Save(ctx, sampleQuote())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ddb.tables[repo.tableName][saved.ID]["created_at"] = &types.AttributeValueMemberS{Value: "yesterday"}

	if _, err := repo.GetByID(ctx, saved.ID); err == nil {
		t.Fatalf("expected an error for an unreadable created_at")
	}
	if _, err := repo.List(ctx); err == nil {
		t.Fatalf("expected List to fail on an unreadable created_at")
	}
}
