package entity

import "github.com/shopspring/decimal"

// Price is an amount in minor currency units plus its server formatted display string.
type Price struct {
	AmountInCents  int64  `json:"amount_in_cents" validate:"gte=0"`
	CurrencySymbol string `json:"currency_symbol"`
	DisplayString  string `json:"display_string"`
}

// Amount returns the price in major units as an exact decimal.
func (p Price) Amount() decimal.Decimal {
	return decimal.New(p.AmountInCents, -2)
}
