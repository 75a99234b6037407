// Package render draws the dashboard on a terminal: summary cards,
// expense/income history tables and the yearly comparison. It is the
// local stand-in for the web presentation layer and holds no state of
// its own.
package render

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/jarenas/migasto/internal/model"
	"github.com/jarenas/migasto/internal/service"
)

// FormatCurrency formats a value with two decimals, thousands dots and
// a decimal comma, e.g. 1234.5 -> "1.234,50".
func FormatCurrency(v float64) string {
	neg := math.Signbit(v) && v != 0
	s := fmt.Sprintf("%.2f", math.Abs(v))
	intPart := s[:len(s)-3]
	fracPart := s[len(s)-2:]

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	out := b.String() + "," + fracPart
	if neg {
		return "-" + out
	}
	return out
}

// Summary prints the three headline cards for the active period.
func Summary(w io.Writer, snap service.Snapshot) {
	fmt.Fprintf(w, "MiGasto · %s\n\n", snap.PeriodLabel)
	fmt.Fprintf(w, "  💰 Total Ingresos  $%s  (%d transacciones)\n",
		FormatCurrency(snap.Totals.Income), snap.Totals.IncomeCount)
	fmt.Fprintf(w, "  💸 Total Gastos    $%s  (%d transacciones)\n",
		FormatCurrency(snap.Totals.Expense), snap.Totals.ExpenseCount)
	fmt.Fprintf(w, "  📊 Balance         $%s\n", FormatCurrency(snap.Totals.Balance))
}

// Categories prints the expense-by-category breakdown.
func Categories(w io.Writer, snap service.Snapshot) {
	if len(snap.ByCategory) == 0 {
		return
	}
	fmt.Fprintf(w, "\nGastos por Categoría\n")
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	for _, cat := range snap.ByCategory {
		fmt.Fprintf(tw, "  %s %s\t$%s\n", model.CategoryIcon(cat.Name), cat.Name, FormatCurrency(cat.Amount))
	}
	tw.Flush()
}

// History prints the month's transactions as two tables, expenses
// first, each closed with its total.
func History(w io.Writer, snap service.Snapshot) {
	historyTable(w, "💸 Gastos", snap.Transactions, false, snap.Totals.Expense)
	historyTable(w, "💰 Ingresos", snap.Transactions, true, snap.Totals.Income)
}

func historyTable(w io.Writer, title string, transactions []model.Transaction, income bool, total float64) {
	fmt.Fprintf(w, "\n%s\n", title)
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  Fecha\tCategoría\tMonto\tDescripción\tID")
	for _, t := range transactions {
		if t.IsIncome() != income {
			continue
		}
		fmt.Fprintf(tw, "  %s\t%s\t$%s\t%s\t%s\n",
			t.Date, t.Category, FormatCurrency(float64(t.Amount)), t.Description, t.ID)
	}
	fmt.Fprintf(tw, "  Total\t\t$%s\t\t\n", FormatCurrency(total))
	tw.Flush()
}

// Yearly prints the 12-month comparison table.
func Yearly(w io.Writer, snap service.Snapshot) {
	fmt.Fprintf(w, "\nComparativa Anual %d\n", snap.Year)
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  Mes\tIngresos\tGastos")
	for _, m := range snap.Yearly {
		fmt.Fprintf(tw, "  %s\t$%s\t$%s\n", m.Label, FormatCurrency(m.Income), FormatCurrency(m.Expense))
	}
	tw.Flush()
}
