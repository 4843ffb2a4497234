// Package cli holds the quotectl subcommands.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"quote_service/internal/adapter/persistence/postgres"
	"quote_service/internal/adapter/persistence/repository"
	"quote_service/internal/domain/entities"
	"quote_service/internal/domain/quote"
	"quote_service/internal/infrastructure/config"
	"quote_service/internal/infrastructure/database"

	"github.com/google/subcommands"
)

// Commands lists every quotectl subcommand.
var Commands = []subcommands.Command{
	&createTablesCmd{out: os.Stdout},
	&totalsCmd{out: os.Stdout},
	&normalizeDateCmd{out: os.Stdout},
}

type createTablesCmd struct {
	out io.Writer
}

func (*createTablesCmd) Name() string     { return "create-tables" }
func (*createTablesCmd) Synopsis() string { return "create the storage tables for STORAGE_DRIVER" }
func (*createTablesCmd) Usage() string {
	return `quotectl create-tables

  Creates the quotes, settings and quote sequence tables in the backend
  selected by STORAGE_DRIVER (dynamodb or postgres). Existing tables are kept.
`
}
func (*createTablesCmd) SetFlags(*flag.FlagSet) {}

func (c *createTablesCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := config.MustLoad()
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		pool, err := database.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		defer pool.Close()
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	default:
		if err := repository.EnsureTables(ctx, database.ConnectDynamoDB(cfg)); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}
	fmt.Fprintf(c.out, "tables ready (%s)\n", cfg.StorageDriver)
	return subcommands.ExitSuccess
}

type totalsCmd struct {
	out     io.Writer
	taxRate int64
}

func (*totalsCmd) Name() string     { return "totals" }
func (*totalsCmd) Synopsis() string { return "compute subtotal, tax and total for item lines" }
func (*totalsCmd) Usage() string {
	return `quotectl totals [-tax <percent>] <quantity>x<unit_price>...

  Prints the totals a quote with these lines would carry. Tax is rounded down
  to the yen.

  Example: quotectl totals -tax 10 1x300000 12x10000
`
}

func (c *totalsCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.taxRate, "tax", 10, "Tax rate in percent.")
}

func (c *totalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	if c.taxRate < 0 {
		fmt.Fprintln(os.Stderr, "tax rate must not be negative")
		return subcommands.ExitUsageError
	}

	items := make([]entities.QuoteItem, 0, f.NArg())
	for _, arg := range f.Args() {
		it, err := parseLine(arg)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		items = append(items, it)
	}

	t, err := quote.ComputeTotals(items, c.taxRate)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(c.out, "subtotal %s\n", quote.FormatYen(t.Subtotal))
	fmt.Fprintf(c.out, "tax(%d%%) %s\n", c.taxRate, quote.FormatYen(t.TaxAmount))
	fmt.Fprintf(c.out, "total    %s\n", quote.FormatYen(t.TotalAmount))
	return subcommands.ExitSuccess
}

var errBadLine = errors.New("line must look like <quantity>x<unit_price>")

func parseLine(s string) (entities.QuoteItem, error) {
	qty, price, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return entities.QuoteItem{}, fmt.Errorf("%q: %w", s, errBadLine)
	}
	q, err := strconv.ParseInt(qty, 10, 64)
	if err != nil {
		return entities.QuoteItem{}, fmt.Errorf("%q: %w", s, errBadLine)
	}
	p, err := strconv.ParseInt(price, 10, 64)
	if err != nil {
		return entities.QuoteItem{}, fmt.Errorf("%q: %w", s, errBadLine)
	}
	return entities.QuoteItem{Quantity: q, UnitPrice: p}, nil
}

type normalizeDateCmd struct {
	out io.Writer
}

func (*normalizeDateCmd) Name() string     { return "normalize-date" }
func (*normalizeDateCmd) Synopsis() string { return "print dates in canonical YYYY-MM-DD form" }
func (*normalizeDateCmd) Usage() string {
	return `quotectl normalize-date <date>...

  Accepts YYYY-MM-DD or Japanese long form (2026年2月6日). Fails if any
  argument is not a date.
`
}
func (*normalizeDateCmd) SetFlags(*flag.FlagSet) {}

func (c *normalizeDateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	status := subcommands.ExitSuccess
	for _, arg := range f.Args() {
		d, ok := quote.NormalizeDate(arg)
		if !ok {
			fmt.Fprintf(os.Stderr, "%q: not a date\n", arg)
			status = subcommands.ExitFailure
			continue
		}
		fmt.Fprintln(c.out, d)
	}
	return status
}
