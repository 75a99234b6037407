// Package export serializes a filtered transaction subset to the
// spreadsheet and document formats the dashboard offers for download.
// Both adapters are pure functions of (subset, period); they never
// touch view state.
package export

import (
	"fmt"

	"github.com/jarenas/migasto/internal/model"
	"github.com/jarenas/migasto/internal/service"
)

var columns = []string{"Fecha", "Tipo", "Categoría", "Monto", "Descripción"}

// Title is the heading placed at the top of every export,
// e.g. "MiGasto - Marzo 2024".
func Title(year, month int) string {
	return fmt.Sprintf("MiGasto - %s", service.PeriodLabel(year, month))
}

// FileName builds the download name for an export,
// e.g. "MiGasto_Mar_2024.xlsx".
func FileName(year, month int, ext string) string {
	return fmt.Sprintf("MiGasto_%s_%d.%s", service.MonthAbbr(month), year, ext)
}

// row flattens a transaction into the shared column shape.
func row(t model.Transaction) []string {
	return []string{
		t.Date,
		localizedType(t.Type),
		t.Category,
		fmt.Sprintf("%.2f", float64(t.Amount)),
		t.Description,
	}
}

func localizedType(txType string) string {
	if txType == model.TypeIncome {
		return "Ingreso"
	}
	return "Gasto"
}
