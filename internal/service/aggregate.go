package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jarenas/migasto/internal/model"
)

// Spanish month names, indexed by month-1. Labels in period headers,
// export titles and the yearly series all come from here.
var monthNames = [12]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// MonthName returns the full Spanish name for a month (1-12).
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}

// MonthAbbr returns the three-letter month abbreviation used in chart
// labels and export filenames.
func MonthAbbr(month int) string {
	name := MonthName(month)
	if name == "" {
		return ""
	}
	// Spanish month names are ASCII up to the third letter, so a byte
	// slice is safe here.
	return name[:3]
}

// PeriodPrefix is the YYYY-MM prefix a transaction date must carry to
// fall inside the given calendar month.
func PeriodPrefix(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// PeriodLabel formats a period for display, e.g. "Marzo 2024".
func PeriodLabel(year, month int) string {
	return fmt.Sprintf("%s %d", MonthName(month), year)
}

// Summary holds the headline numbers for one period.
type Summary struct {
	Income       float64
	Expense      float64
	Balance      float64
	IncomeCount  int
	ExpenseCount int
}

// CategoryAmount is an amount aggregated under one category name.
type CategoryAmount struct {
	Name   string
	Amount float64
}

// MonthTotals is one entry of the yearly comparison series.
type MonthTotals struct {
	Month   int // 1-12
	Label   string
	Income  float64
	Expense float64
}

// SelectPeriod returns the transactions whose date falls inside the
// given calendar month, matched on the YYYY-MM prefix of the date
// string. Records with missing or malformed dates simply never match.
// The input is not mutated and relative order is preserved.
func SelectPeriod(transactions []model.Transaction, year, month int) []model.Transaction {
	prefix := PeriodPrefix(year, month)
	subset := make([]model.Transaction, 0)
	for _, t := range transactions {
		if strings.HasPrefix(t.Date, prefix) {
			subset = append(subset, t)
		}
	}
	return subset
}

// Totals sums the subset into income, expense and balance. Income is
// everything typed "income"; everything else lands in the expense
// bucket, so a record with an unknown type weighs on the expense side
// of the balance rather than disappearing from it.
func Totals(subset []model.Transaction) Summary {
	var s Summary
	for _, t := range subset {
		if t.IsIncome() {
			s.Income += float64(t.Amount)
			s.IncomeCount++
		} else {
			s.Expense += float64(t.Amount)
			s.ExpenseCount++
		}
	}
	s.Balance = s.Income - s.Expense
	return s
}

// CategoryBreakdown groups the expense-typed transactions of the
// subset by their literal category string. Groups appear in order of
// first occurrence; callers wanting them sorted by amount sort
// explicitly. Categories without any transaction never appear.
func CategoryBreakdown(subset []model.Transaction) []CategoryAmount {
	index := make(map[string]int)
	breakdown := make([]CategoryAmount, 0)
	for _, t := range subset {
		if t.Type != model.TypeExpense {
			continue
		}
		i, ok := index[t.Category]
		if !ok {
			i = len(breakdown)
			index[t.Category] = i
			breakdown = append(breakdown, CategoryAmount{Name: t.Category})
		}
		breakdown[i].Amount += float64(t.Amount)
	}
	return breakdown
}

// YearlySeries computes income and expense totals for every month of
// the given year, in calendar order. The result always has exactly 12
// entries; months without transactions are zero-filled.
func YearlySeries(transactions []model.Transaction, year int) []MonthTotals {
	series := make([]MonthTotals, 0, 12)
	for month := 1; month <= 12; month++ {
		sum := Totals(SelectPeriod(transactions, year, month))
		series = append(series, MonthTotals{
			Month:   month,
			Label:   MonthAbbr(month),
			Income:  sum.Income,
			Expense: sum.Expense,
		})
	}
	return series
}

// SortNewestFirst returns a copy of the transactions ordered for
// display, most recent date first. Records with unparsable dates sink
// to the end. The sort is stable so same-day records keep their
// relative order.
func SortNewestFirst(transactions []model.Transaction) []model.Transaction {
	sorted := make([]model.Transaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		di, oki := sorted[i].ParsedDate()
		dj, okj := sorted[j].ParsedDate()
		if oki != okj {
			return oki
		}
		return di.After(dj)
	})
	return sorted
}
