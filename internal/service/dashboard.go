package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/jarenas/migasto/internal/model"
	"github.com/jarenas/migasto/internal/repository"
)

var (
	ErrInvalidType   = errors.New("transaction type must be income or expense")
	ErrInvalidAmount = errors.New("amount must be a non-negative number with at most two decimals")
	ErrInvalidDate   = errors.New("date must be in YYYY-MM-DD form")
	ErrInvalidMonth  = errors.New("month must be between 1 and 12")
	ErrMissingID     = errors.New("transaction id is required")
)

// Dashboard owns the cached transaction collection and the active
// period filter, and recomputes every derived metric from them on
// demand. The cache is only ever replaced wholesale by Refresh; writes
// go to the store first and reconcile through a full re-fetch, so the
// displayed state always reflects the last successful store read.
type Dashboard struct {
	store repository.Store
	log   zerolog.Logger

	mu           sync.Mutex
	transactions []model.Transaction
	filterYear   int
	filterMonth  int
	refreshSeq   uint64
}

// NewDashboard creates a dashboard filtered to the current calendar month.
func NewDashboard(store repository.Store, log zerolog.Logger) *Dashboard {
	now := time.Now()
	return &Dashboard{
		store:       store,
		log:         log.With().Str("component", "dashboard").Logger(),
		filterYear:  now.Year(),
		filterMonth: int(now.Month()),
	}
}

// SetFilter changes the active period. Purely local: no network call,
// derived metrics are recomputed on the next Snapshot.
func (d *Dashboard) SetFilter(year, month int) error {
	if month < 1 || month > 12 {
		return ErrInvalidMonth
	}
	d.mu.Lock()
	d.filterYear = year
	d.filterMonth = month
	d.mu.Unlock()
	return nil
}

// Filter returns the active period.
func (d *Dashboard) Filter() (year, month int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.filterYear, d.filterMonth
}

// Refresh replaces the cached collection with a full fetch from the
// store. On failure the previous cache is kept and the error returned
// for the caller to surface. Each refresh carries a generation number:
// if a newer refresh started while this one was in flight, the stale
// response is discarded instead of overwriting fresher data.
func (d *Dashboard) Refresh(ctx context.Context) error {
	d.mu.Lock()
	d.refreshSeq++
	seq := d.refreshSeq
	d.mu.Unlock()

	transactions, err := d.store.ListTransactions(ctx)
	if err != nil {
		return fmt.Errorf("connecting to backend: %w", err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if seq < d.refreshSeq {
		d.log.Debug().Uint64("seq", seq).Uint64("latest", d.refreshSeq).Msg("discarding stale refresh")
		return nil
	}
	d.transactions = transactions
	d.log.Debug().Int("count", len(transactions)).Msg("cache replaced")
	return nil
}

// AddTransaction validates the draft, creates it in the store and
// reconciles the cache with a full refresh. There is no optimistic
// local insert.
func (d *Dashboard) AddTransaction(ctx context.Context, draft model.Transaction) error {
	if err := validateDraft(&draft); err != nil {
		return err
	}
	if err := d.store.CreateTransaction(ctx, &draft); err != nil {
		return fmt.Errorf("saving transaction: %w", err)
	}
	return d.Refresh(ctx)
}

// DeleteTransaction removes a transaction by ID and reconciles the
// cache with a full refresh. Asking the user for confirmation is the
// presentation layer's concern.
func (d *Dashboard) DeleteTransaction(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrMissingID
	}
	if err := d.store.DeleteTransaction(ctx, id); err != nil {
		return fmt.Errorf("deleting transaction: %w", err)
	}
	return d.Refresh(ctx)
}

// Snapshot is everything the presentation layer needs for the active
// period, computed in one pass from the cached collection.
type Snapshot struct {
	Year        int
	Month       int
	PeriodLabel string

	// Transactions holds the active month's records, newest first.
	Transactions []model.Transaction
	Totals       Summary
	ByCategory   []CategoryAmount
	Yearly       []MonthTotals
}

// Snapshot recomputes the derived metrics for the active filter.
func (d *Dashboard) Snapshot() Snapshot {
	d.mu.Lock()
	transactions := make([]model.Transaction, len(d.transactions))
	copy(transactions, d.transactions)
	year, month := d.filterYear, d.filterMonth
	d.mu.Unlock()

	subset := SelectPeriod(transactions, year, month)
	return Snapshot{
		Year:         year,
		Month:        month,
		PeriodLabel:  PeriodLabel(year, month),
		Transactions: SortNewestFirst(subset),
		Totals:       Totals(subset),
		ByCategory:   CategoryBreakdown(subset),
		Yearly:       YearlySeries(transactions, year),
	}
}

func validateDraft(draft *model.Transaction) error {
	if draft.Type != model.TypeIncome && draft.Type != model.TypeExpense {
		return ErrInvalidType
	}

	amount := float64(draft.Amount)
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return ErrInvalidAmount
	}
	// At most two fractional digits; anything finer never came from the
	// input form.
	if math.Abs(amount*100-math.Round(amount*100)) > 1e-9 {
		return ErrInvalidAmount
	}

	if _, err := time.Parse(model.DateLayout, draft.Date); err != nil {
		return ErrInvalidDate
	}

	draft.Category = strings.TrimSpace(draft.Category)
	draft.Description = strings.TrimSpace(draft.Description)
	return nil
}
