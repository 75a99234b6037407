package model

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
)

// Discriminator values accepted by the backend.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// DateLayout is the ISO form every transaction date travels in.
// Period filtering relies on the YYYY-MM prefix of this layout.
const DateLayout = "2006-01-02"

var ErrInvalidAmount = errors.New("invalid amount")

// Transaction is one record of the remote store. The ID is assigned
// by the server at creation; a draft sent for creation leaves it empty.
type Transaction struct {
	ID          string `json:"id,omitempty"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	Amount      Amount `json:"amount"`
	Date        string `json:"date"`
	Description string `json:"description,omitempty"`
}

// IsIncome reports whether the record contributes to the income bucket.
// Everything else counts against the expense side of the balance.
func (t Transaction) IsIncome() bool {
	return t.Type == TypeIncome
}

// ParsedDate returns the calendar date of the transaction. The second
// return value is false for missing or malformed dates; such records
// are excluded from period filtering rather than failing it.
func (t Transaction) ParsedDate() (time.Time, bool) {
	d, err := time.Parse(DateLayout, t.Date)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// Amount is a currency value with two fractional digits. Decoding is
// deliberately lenient: the backend has been seen returning amounts as
// numbers, quoted numbers, null and occasionally garbage, and a single
// bad record must degrade to a zero contribution instead of blanking
// the whole dashboard.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	s = strings.Trim(s, `"`)
	if s == "" || s == "null" {
		*a = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		*a = 0
		return nil
	}
	*a = Amount(v)
	return nil
}

// MarshalJSON emits the amount rounded to two decimals, matching what
// the backend stores.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(math.Round(float64(a)*100) / 100)
}

// ParseAmount converts user input into an Amount. Only non-negative
// decimals with at most two fractional digits are accepted; this is
// the input-side guard, aggregation itself never validates.
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}
	if len(fracPart) > 2 || (intPart == "" && fracPart == "") {
		return 0, ErrInvalidAmount
	}
	for _, r := range intPart + fracPart {
		if r < '0' || r > '9' {
			return 0, ErrInvalidAmount
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	return Amount(v), nil
}
