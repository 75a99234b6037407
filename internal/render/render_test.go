package render

import (
	"strings"
	"testing"

	"github.com/jarenas/migasto/internal/model"
	"github.com/jarenas/migasto/internal/service"
)

func TestFormatCurrency(t *testing.T) {
	cases := map[float64]string{
		0:          "0,00",
		75.5:       "75,50",
		1000:       "1.000,00",
		1234567.89: "1.234.567,89",
		-50:        "-50,00",
		999.999:    "1.000,00",
	}
	for in, want := range cases {
		if got := FormatCurrency(in); got != want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", in, got, want)
		}
	}
}

func sampleSnapshot() service.Snapshot {
	transactions := []model.Transaction{
		{ID: "2", Type: model.TypeIncome, Category: "Sueldo", Amount: 1000, Date: "2024-03-15"},
		{ID: "1", Type: model.TypeExpense, Category: "Comida", Amount: 50, Date: "2024-03-01", Description: "almuerzo"},
	}
	return service.Snapshot{
		Year:         2024,
		Month:        3,
		PeriodLabel:  service.PeriodLabel(2024, 3),
		Transactions: transactions,
		Totals:       service.Totals(transactions),
		ByCategory:   service.CategoryBreakdown(transactions),
		Yearly:       service.YearlySeries(transactions, 2024),
	}
}

func TestSummary(t *testing.T) {
	var b strings.Builder
	Summary(&b, sampleSnapshot())
	out := b.String()

	for _, want := range []string{"Marzo 2024", "Total Ingresos", "$1.000,00", "Total Gastos", "$50,00", "Balance", "$950,00"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestHistorySplitsByType(t *testing.T) {
	var b strings.Builder
	History(&b, sampleSnapshot())
	out := b.String()

	gastos := strings.Index(out, "Gastos")
	ingresos := strings.Index(out, "Ingresos")
	if gastos < 0 || ingresos < 0 || gastos > ingresos {
		t.Fatalf("expected Gastos table before Ingresos table:\n%s", out)
	}
	if !strings.Contains(out, "almuerzo") {
		t.Errorf("history missing description:\n%s", out)
	}
}

func TestYearlyHasTwelveRows(t *testing.T) {
	var b strings.Builder
	Yearly(&b, sampleSnapshot())
	out := b.String()

	for _, label := range []string{"Ene", "Mar", "Dic"} {
		if !strings.Contains(out, label) {
			t.Errorf("yearly table missing %q:\n%s", label, out)
		}
	}
}
