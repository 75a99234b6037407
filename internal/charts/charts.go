package charts

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/jarenas/migasto/internal/service"
)

// Generator renders the dashboard charts as PNG images.
type Generator struct{}

// NewGenerator creates a new chart generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// IncomeVsExpensePie renders the month's income against its expenses.
// Returns nil bytes when there is nothing to plot.
func (g *Generator) IncomeVsExpensePie(totals service.Summary) ([]byte, error) {
	if totals.Income == 0 && totals.Expense == 0 {
		return nil, nil
	}

	values := make([]chart.Value, 0, 2)
	if totals.Income > 0 {
		values = append(values, chart.Value{
			Label: fmt.Sprintf("Ingresos: $%.2f", totals.Income),
			Value: totals.Income,
			Style: chart.Style{FillColor: chart.ColorGreen},
		})
	}
	if totals.Expense > 0 {
		values = append(values, chart.Value{
			Label: fmt.Sprintf("Gastos: $%.2f", totals.Expense),
			Value: totals.Expense,
			Style: chart.Style{FillColor: chart.ColorRed},
		})
	}

	pie := chart.PieChart{
		Title:  "Ingresos vs Gastos",
		Width:  800,
		Height: 800,
		Values: values,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   50,
				Right:  50,
				Bottom: 50,
			},
			FillColor: chart.ColorWhite,
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := pie.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render income vs expense pie: %w", err)
	}
	return buffer.Bytes(), nil
}

// CategoryPie renders the month's expense distribution by category.
// Slivers under 1% are dropped so the labels stay readable.
func (g *Generator) CategoryPie(breakdown []service.CategoryAmount) ([]byte, error) {
	if len(breakdown) == 0 {
		return nil, nil
	}

	total := 0.0
	for _, cat := range breakdown {
		total += cat.Amount
	}
	if total <= 0 {
		return nil, nil
	}

	values := make([]chart.Value, 0, len(breakdown))
	for _, cat := range breakdown {
		percentage := (cat.Amount / total) * 100
		if percentage > 1.0 {
			values = append(values, chart.Value{
				Label: fmt.Sprintf("%s: $%.2f (%.1f%%)", cat.Name, cat.Amount, percentage),
				Value: cat.Amount,
				Style: chart.Style{
					FontSize:  12,
					FontColor: chart.ColorBlack,
				},
			})
		}
	}

	pie := chart.PieChart{
		Title:  "Gastos por Categoría",
		Width:  800,
		Height: 800,
		Values: values,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   50,
				Right:  50,
				Bottom: 50,
			},
			FillColor: chart.ColorWhite,
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := pie.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render category pie: %w", err)
	}
	return buffer.Bytes(), nil
}

// YearlyComparison renders the 12-month income/expense bar comparison.
// Each month contributes a green income bar and a red expense bar.
func (g *Generator) YearlyComparison(series []service.MonthTotals) ([]byte, error) {
	hasData := false
	for _, m := range series {
		if m.Income != 0 || m.Expense != 0 {
			hasData = true
			break
		}
	}
	if !hasData {
		return nil, nil
	}

	bars := make([]chart.Value, 0, len(series)*2)
	for _, m := range series {
		bars = append(bars, chart.Value{
			Label: m.Label,
			Value: m.Income,
			Style: chart.Style{
				StrokeColor: chart.ColorGreen,
				FillColor:   chart.ColorGreen,
			},
		})
		bars = append(bars, chart.Value{
			Label: "",
			Value: m.Expense,
			Style: chart.Style{
				StrokeColor: chart.ColorRed,
				FillColor:   chart.ColorRed,
			},
		})
	}

	graph := chart.BarChart{
		Title: "Comparativa Anual",
		TitleStyle: chart.Style{
			FontSize:  14,
			FontColor: chart.ColorBlack,
		},
		Width:    1200,
		Height:   600,
		BarWidth: 30,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   50,
				Right:  50,
				Bottom: 50,
			},
			FillColor: chart.ColorWhite,
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("$%.0f", v.(float64))
			},
			Style: chart.Style{
				FontSize:  12,
				FontColor: chart.ColorBlack,
			},
		},
		Bars: bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render yearly comparison: %w", err)
	}
	return buffer.Bytes(), nil
}
