package model

// Recommended categories offered at input time. They are suggestions
// only: aggregation groups by the literal category string and accepts
// anything the user typed.
var (
	ExpenseCategories = []string{"Comida", "Transporte", "Salud", "Entretenimiento", "Educación", "Hogar", "Otros"}
	IncomeCategories  = []string{"Sueldo", "Dinero Extra", "Ventas", "Inversiones", "Regalos", "Intereses", "Otros"}
)

// CategoryIcons maps the recommended categories to their dashboard icons.
var CategoryIcons = map[string]string{
	"Comida":          "🍔",
	"Transporte":      "🚌",
	"Sueldo":          "💼",
	"Salud":           "💊",
	"Entretenimiento": "🎮",
	"Educación":       "📚",
	"Hogar":           "🏠",
	"Otros":           "✨",
	"Dinero Extra":    "💸",
	"Ventas":          "🛍️",
	"Inversiones":     "📈",
	"Regalos":         "🎁",
	"Intereses":       "🏦",
}

// RecommendedCategories returns the suggestion list for a transaction type.
func RecommendedCategories(txType string) []string {
	if txType == TypeIncome {
		return IncomeCategories
	}
	return ExpenseCategories
}

// CategoryIcon returns the icon for a category, falling back to a
// generic tag for custom categories.
func CategoryIcon(name string) string {
	if icon, ok := CategoryIcons[name]; ok {
		return icon
	}
	return "🔖"
}
