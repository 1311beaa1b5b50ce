package entity

import (
	"math"
	"net/url"
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

const regularPricePrefix = "Reg."

// DealsResponse is the payload of the deal list endpoint.
type DealsResponse struct {
	Products []Deal `json:"products" validate:"dive"`
}

// Deal is a catalog item as decoded from the remote service. Values are
// treated as immutable.
type Deal struct {
	ID           int64  `json:"id" validate:"required"`
	Title        string `json:"title"`
	Aisle        string `json:"aisle"`
	Description  string `json:"description"`
	ImageURL     string `json:"image_url"`
	RegularPrice Price  `json:"regular_price"`
	SalePrice    *Price `json:"sale_price"`
	Fulfillment  string `json:"fulfillment"`
	Availability string `json:"availability"`
}

// Equal compares all fields, dereferencing the sale price.
func (d Deal) Equal(other Deal) bool {
	if d.SalePrice == nil || other.SalePrice == nil {
		if d.SalePrice != other.SalePrice {
			return false
		}
	} else if *d.SalePrice != *other.SalePrice {
		return false
	}

	return d.ID == other.ID &&
		d.Title == other.Title &&
		d.Aisle == other.Aisle &&
		d.Description == other.Description &&
		d.ImageURL == other.ImageURL &&
		d.RegularPrice == other.RegularPrice &&
		d.Fulfillment == other.Fulfillment &&
		d.Availability == other.Availability
}

// Image returns the parsed image reference, if the deal has a usable one.
func (d Deal) Image() (*url.URL, bool) {
	if d.ImageURL == "" {
		return nil, false
	}

	u, err := url.Parse(d.ImageURL)
	if err != nil || !u.IsAbs() {
		return nil, false
	}

	return u, true
}

func (d Deal) CurrentPrice() Price {
	return lo.FromPtrOr(d.SalePrice, d.RegularPrice)
}

func (d Deal) IsOnSale() bool {
	return d.SalePrice != nil
}

// DiscountPercentage is nil when the deal is not on sale or its regular
// price is zero.
func (d Deal) DiscountPercentage() *int {
	if d.SalePrice == nil || d.RegularPrice.AmountInCents == 0 {
		return nil
	}

	discount := d.RegularPrice.AmountInCents - d.SalePrice.AmountInCents
	percentage := float64(discount) / float64(d.RegularPrice.AmountInCents) * 100 //nolint:mnd

	return lo.ToPtr(int(math.Round(percentage)))
}

// SavingsInCents is nil when the deal is not on sale.
func (d Deal) SavingsInCents() *int64 {
	if d.SalePrice == nil {
		return nil
	}

	return lo.ToPtr(d.RegularPrice.AmountInCents - d.SalePrice.AmountInCents)
}

func (d Deal) Savings() (decimal.Decimal, bool) {
	cents := d.SavingsInCents()
	if cents == nil {
		return decimal.Zero, false
	}

	return decimal.New(*cents, -2), true
}

func (d Deal) AvailabilityStatus() AvailabilityStatus {
	return ParseAvailability(d.Availability)
}

func (d Deal) FulfillmentType() FulfillmentType {
	return ParseFulfillment(d.Fulfillment)
}

func (d Deal) IsAvailable() bool {
	status := d.AvailabilityStatus()

	return status == AvailabilityInStock || status == AvailabilityLimitedStock
}

func (d Deal) DisplayPrice() string {
	return d.CurrentPrice().DisplayString
}

// DisplayRegularPrice returns the struck-through regular price, only for deals on sale.
func (d Deal) DisplayRegularPrice() (string, bool) {
	if !d.IsOnSale() {
		return "", false
	}

	return regularPricePrefix + " " + d.RegularPrice.DisplayString, true
}

// AisleText is shown only for available deals with a non-blank aisle.
func (d Deal) AisleText() (string, bool) {
	aisle := strings.TrimSpace(d.Aisle)
	if aisle == "" || !d.IsAvailable() {
		return "", false
	}

	return "in aisle " + aisle, true
}
