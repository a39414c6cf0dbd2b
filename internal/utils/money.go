package utils

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
)

// FormatMoney keeps consistent decimal formatting for currency fields.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// DecimalToFloat converts a DECIMAL aggregate scanned as a nullable string
// into a plain float for transport. A NULL sum (empty group) becomes 0.
func DecimalToFloat(v sql.NullString) float64 {
	if !v.Valid {
		return 0
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v.String), 64)
	if err != nil {
		return 0
	}
	return f
}
