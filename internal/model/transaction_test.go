package model

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestAmountUnmarshalLenient(t *testing.T) {
	cases := []struct {
		name string
		json string
		want float64
	}{
		{"number", `{"amount": 1000.5}`, 1000.5},
		{"quoted number", `{"amount": "75.50"}`, 75.5},
		{"garbage", `{"amount": "abc"}`, 0},
		{"null", `{"amount": null}`, 0},
		{"missing", `{}`, 0},
		{"empty string", `{"amount": ""}`, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var tx Transaction
			if err := json.Unmarshal([]byte(tc.json), &tx); err != nil {
				t.Fatalf("unmarshal should never fail on amounts: %v", err)
			}
			if float64(tx.Amount) != tc.want {
				t.Errorf("got %v, want %v", tx.Amount, tc.want)
			}
		})
	}
}

func TestAmountMarshalRoundsToTwoDecimals(t *testing.T) {
	data, err := json.Marshal(Amount(75.567))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "75.57" {
		t.Errorf("got %s, want 75.57", data)
	}
}

func TestParseAmount(t *testing.T) {
	valid := map[string]float64{
		"1000":    1000,
		"1000.00": 1000,
		"25.5":    25.5,
		"0":       0,
		".5":      0.5,
	}
	for in, want := range valid {
		got, err := ParseAmount(in)
		if err != nil {
			t.Errorf("ParseAmount(%q) unexpected error: %v", in, err)
			continue
		}
		if float64(got) != want {
			t.Errorf("ParseAmount(%q) = %v, want %v", in, got, want)
		}
	}

	invalid := []string{"", "abc", "-5", "12.345", "1,5", ".", "1e3"}
	for _, in := range invalid {
		if _, err := ParseAmount(in); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("ParseAmount(%q) should fail with ErrInvalidAmount, got %v", in, err)
		}
	}
}

func TestParsedDate(t *testing.T) {
	tx := Transaction{Date: "2024-03-15"}
	d, ok := tx.ParsedDate()
	if !ok {
		t.Fatal("expected valid date")
	}
	if d.Year() != 2024 || int(d.Month()) != 3 || d.Day() != 15 {
		t.Errorf("parsed wrong date: %v", d)
	}

	for _, bad := range []string{"", "15/03/2024", "2024-13-01", "not-a-date"} {
		if _, ok := (Transaction{Date: bad}).ParsedDate(); ok {
			t.Errorf("date %q should not parse", bad)
		}
	}
}

func TestRecommendedCategories(t *testing.T) {
	if got := RecommendedCategories(TypeIncome)[0]; got != "Sueldo" {
		t.Errorf("first income category = %q, want Sueldo", got)
	}
	if got := RecommendedCategories(TypeExpense)[0]; got != "Comida" {
		t.Errorf("first expense category = %q, want Comida", got)
	}
	if icon := CategoryIcon("Categoría Inventada"); icon != "🔖" {
		t.Errorf("custom category icon = %q, want fallback", icon)
	}
}
