package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jarenas/migasto/internal/charts"
	"github.com/jarenas/migasto/internal/config"
	"github.com/jarenas/migasto/internal/export"
	"github.com/jarenas/migasto/internal/model"
	"github.com/jarenas/migasto/internal/render"
	"github.com/jarenas/migasto/internal/repository"
	"github.com/jarenas/migasto/internal/service"
)

func main() {
	year := flag.Int("year", 0, "filter year (default: current)")
	month := flag.Int("month", 0, "filter month 1-12 (default: current)")

	addType := flag.String("add", "", "add a transaction of this type (income|expense)")
	category := flag.String("category", "", "category for -add (free text; see -categories)")
	amount := flag.String("amount", "", "amount for -add, up to two decimals")
	date := flag.String("date", time.Now().Format(model.DateLayout), "date for -add, YYYY-MM-DD")
	description := flag.String("desc", "", "description for -add")
	listCategories := flag.Bool("categories", false, "print the recommended categories and exit")

	deleteID := flag.String("delete", "", "delete the transaction with this id")
	yes := flag.Bool("yes", false, "skip delete confirmation")

	exportXLSX := flag.Bool("export-xlsx", false, "export the active month to a spreadsheet")
	exportPDF := flag.Bool("export-pdf", false, "export the active month to a PDF document")
	chartsDir := flag.String("charts", "", "write chart PNGs into this directory")
	flag.Parse()

	if *listCategories {
		printCategories()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error de configuración:", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.LogLevel)
	store := repository.NewRESTStore(cfg.APIBaseURL, cfg.TokenSource(), logger)
	dashboard := service.NewDashboard(store, logger)

	if *year != 0 || *month != 0 {
		y, m := dashboard.Filter()
		if *year != 0 {
			y = *year
		}
		if *month != 0 {
			m = *month
		}
		if err := dashboard.SetFilter(y, m); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
	}

	ctx := context.Background()
	if err := dashboard.Refresh(ctx); err != nil {
		logger.Error().Err(err).Msg("refresh failed")
		fmt.Fprintln(os.Stderr, "Error al conectar al backend")
		os.Exit(1)
	}

	if *deleteID != "" {
		if !*yes && !confirm("¿Eliminar transacción? [y/N] ") {
			return
		}
		if err := dashboard.DeleteTransaction(ctx, *deleteID); err != nil {
			logger.Error().Err(err).Str("id", *deleteID).Msg("delete failed")
			fmt.Fprintln(os.Stderr, "Error al eliminar")
			os.Exit(1)
		}
		fmt.Println("Transacción eliminada.")
	}

	if *addType != "" {
		draft, err := buildDraft(*addType, *category, *amount, *date, *description)
		if err == nil {
			err = dashboard.AddTransaction(ctx, draft)
		}
		if err != nil {
			logger.Error().Err(err).Msg("add failed")
			fmt.Fprintln(os.Stderr, "Error al guardar:", err)
			os.Exit(1)
		}
		fmt.Println("Transacción guardada.")
	}

	snap := dashboard.Snapshot()
	render.Summary(os.Stdout, snap)
	render.Categories(os.Stdout, snap)
	render.History(os.Stdout, snap)
	render.Yearly(os.Stdout, snap)

	if *exportXLSX {
		data, err := export.Excel(snap.Transactions, snap.Year, snap.Month)
		writeExport(logger, export.FileName(snap.Year, snap.Month, "xlsx"), data, err)
	}
	if *exportPDF {
		data, err := export.PDF(snap.Transactions, snap.Year, snap.Month)
		writeExport(logger, export.FileName(snap.Year, snap.Month, "pdf"), data, err)
	}
	if *chartsDir != "" {
		writeCharts(logger, *chartsDir, snap)
	}
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger().Level(lvl)
}

func buildDraft(txType, category, amount, date, description string) (model.Transaction, error) {
	parsed, err := model.ParseAmount(amount)
	if err != nil {
		return model.Transaction{}, err
	}
	if category == "" {
		category = model.RecommendedCategories(txType)[0]
	}
	return model.Transaction{
		Type:        txType,
		Category:    category,
		Amount:      parsed,
		Date:        date,
		Description: description,
	}, nil
}

func confirm(prompt string) bool {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "s" || answer == "si"
}

func printCategories() {
	fmt.Println("Gastos:")
	for _, c := range model.ExpenseCategories {
		fmt.Printf("  %s %s\n", model.CategoryIcon(c), c)
	}
	fmt.Println("Ingresos:")
	for _, c := range model.IncomeCategories {
		fmt.Printf("  %s %s\n", model.CategoryIcon(c), c)
	}
}

func writeExport(logger zerolog.Logger, name string, data []byte, err error) {
	if err != nil {
		logger.Error().Err(err).Str("file", name).Msg("export failed")
		fmt.Fprintln(os.Stderr, "Error al generar", name+":", err)
		return
	}
	if err := os.WriteFile(name, data, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "Error al guardar", name+":", err)
		return
	}
	fmt.Println("Exportado:", name)
}

func writeCharts(logger zerolog.Logger, dir string, snap service.Snapshot) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, "Error al crear", dir+":", err)
		return
	}

	generator := charts.NewGenerator()
	renderers := []struct {
		name   string
		render func() ([]byte, error)
	}{
		{"ingresos_vs_gastos.png", func() ([]byte, error) { return generator.IncomeVsExpensePie(snap.Totals) }},
		{"gastos_por_categoria.png", func() ([]byte, error) { return generator.CategoryPie(snap.ByCategory) }},
		{"comparativa_anual.png", func() ([]byte, error) { return generator.YearlyComparison(snap.Yearly) }},
	}

	for _, r := range renderers {
		data, err := r.render()
		if err != nil {
			logger.Error().Err(err).Str("chart", r.name).Msg("chart render failed")
			continue
		}
		if data == nil {
			continue
		}
		path := filepath.Join(dir, r.name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			fmt.Fprintln(os.Stderr, "Error al guardar", path+":", err)
			continue
		}
		fmt.Println("Gráfico:", path)
	}
}
