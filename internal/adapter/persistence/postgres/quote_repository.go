package postgres

import (
	"context"
	"errors"
	"log"

	"quote_service/internal/domain/entities"
	"quote_service/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const quoteColumns = `id, quote_number, status, created_at, updated_at, customer_name,
	honorific, issue_date, expiry_date, items, tax_rate, subtotal, tax_amount,
	total_amount, remarks`

// QuoteRepository persists quotes in Postgres with line items as jsonb.
type QuoteRepository struct {
	db DBTX
}

var _ interfaces.IQuoteRepository = (*QuoteRepository)(nil)

func NewQuoteRepository(db DBTX) *QuoteRepository {
	return &QuoteRepository{db: db}
}

func (r *QuoteRepository) List(ctx context.Context) ([]entities.Quote, error) {
	rows, err := r.db.Query(ctx, `SELECT `+quoteColumns+` FROM quotes ORDER BY updated_at DESC`)
	if err != nil {
		return nil, err
	}
	quotes, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entities.Quote, error) {
		return scanQuote(row)
	})
	if err != nil {
		return nil, err
	}
	if quotes == nil {
		quotes = make([]entities.Quote, 0)
	}
	return quotes, nil
}

func (r *QuoteRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	row := r.db.QueryRow(ctx, `SELECT `+quoteColumns+` FROM quotes WHERE id = $1`, id)
	q, err := scanQuote(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Quote{}, nil
	}
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

// Save inserts the quote when it has no id yet (assigning a UUID) and
// upserts it otherwise.
func (r *QuoteRepository) Save(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	stmt := `INSERT INTO quotes (` + quoteColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	if q.ID == "" {
		q.ID = uuid.NewString()
	} else {
		stmt += ` ON CONFLICT (id) DO UPDATE SET
			quote_number = EXCLUDED.quote_number,
			status = EXCLUDED.status,
			created_at = EXCLUDED.created_at,
			updated_at = EXCLUDED.updated_at,
			customer_name = EXCLUDED.customer_name,
			honorific = EXCLUDED.honorific,
			issue_date = EXCLUDED.issue_date,
			expiry_date = EXCLUDED.expiry_date,
			items = EXCLUDED.items,
			tax_rate = EXCLUDED.tax_rate,
			subtotal = EXCLUDED.subtotal,
			tax_amount = EXCLUDED.tax_amount,
			total_amount = EXCLUDED.total_amount,
			remarks = EXCLUDED.remarks`
	}

	items := q.Items
	if items == nil {
		items = []entities.QuoteItem{}
	}
	_, err := r.db.Exec(ctx, stmt,
		q.ID, q.QuoteNumber, string(q.Status), q.CreatedAt, q.UpdatedAt, q.CustomerName,
		string(q.Honorific), q.IssueDate, q.ExpiryDate, items, q.TaxRate, q.Subtotal,
		q.TaxAmount, q.TotalAmount, q.Remarks,
	)
	if err != nil {
		log.Printf("[quote][repo] postgres save failed id=%s err=%v", q.ID, err)
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM quotes WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func scanQuote(row pgx.Row) (entities.Quote, error) {
	var (
		q         entities.Quote
		status    string
		honorific string
	)
	err := row.Scan(
		&q.ID, &q.QuoteNumber, &status, &q.CreatedAt, &q.UpdatedAt, &q.CustomerName,
		&honorific, &q.IssueDate, &q.ExpiryDate, &q.Items, &q.TaxRate, &q.Subtotal,
		&q.TaxAmount, &q.TotalAmount, &q.Remarks,
	)
	if err != nil {
		return entities.Quote{}, err
	}
	q.Status = entities.QuoteStatus(status)
	q.Honorific = entities.Honorific(honorific)
	q.CreatedAt = q.CreatedAt.UTC()
	q.UpdatedAt = q.UpdatedAt.UTC()
	return q, nil
}
