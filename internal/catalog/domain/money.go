package domain

import "github.com/shopspring/decimal"

// DefaultCurrency is used when the catalog does not name one.
const DefaultCurrency = "RUB"

// FormatPrice renders an amount held in minor units, e.g. 21980 -> "219.80 RUB".
func FormatPrice(amount int64, currency string) string {
	if currency == "" {
		currency = DefaultCurrency
	}
	return decimal.New(amount, -2).StringFixed(2) + " " + currency
}
