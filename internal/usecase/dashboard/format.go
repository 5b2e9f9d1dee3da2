package dashboard

import (
	"math/big"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	// TableTimeLayout is used by the dashboard transaction table
	TableTimeLayout = "2006-01-02 15:04:05"
	// PassbookTimeLayout is used by the passbook preview
	PassbookTimeLayout = "2006-01-02 15:04"
)

var printer = message.NewPrinter(language.English)

// FormatCurrency renders an amount as dollars with thousands separators, e.g. "$1,234.56".
// The amount is rounded to cents exactly; no float conversion is involved.
func FormatCurrency(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	whole, cents, _ := strings.Cut(fixed, ".")
	return sign + "$" + groupThousands(whole) + "." + cents
}

// FormatPlainCurrency renders an amount as dollars without separators, e.g. "$1234.56".
// Action messages use this form.
func FormatPlainCurrency(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// groupThousands inserts separators into a run of decimal digits
func groupThousands(digits string) string {
	n, ok := new(big.Int).SetString(digits, 10)
	if ok && n.IsInt64() {
		return printer.Sprint(number.Decimal(n.Int64()))
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatTime renders t in the given layout
func FormatTime(t time.Time, layout string) string {
	return t.Format(layout)
}

// Initials returns the upper-cased first letters of the first and last name parts.
// A single part yields one letter; no parts yield "?".
func Initials(name string) string {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return "?"
	case 1:
		return firstLetter(parts[0])
	default:
		return firstLetter(parts[0]) + firstLetter(parts[len(parts)-1])
	}
}

func firstLetter(s string) string {
	for _, r := range s {
		return string(unicode.ToUpper(r))
	}
	return ""
}
