package entity

import "strings"

type AvailabilityStatus int

const (
	AvailabilityUnknown AvailabilityStatus = iota
	AvailabilityInStock
	AvailabilityLimitedStock
	AvailabilityOutOfStock
)

// ParseAvailability classifies a raw availability string. Matching ignores
// case and surrounding whitespace.
func ParseAvailability(raw string) AvailabilityStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "in stock", "instock":
		return AvailabilityInStock
	case "limited stock", "limitedstock":
		return AvailabilityLimitedStock
	case "out of stock", "outofstock":
		return AvailabilityOutOfStock
	default:
		return AvailabilityUnknown
	}
}

func (a AvailabilityStatus) String() string {
	switch a {
	case AvailabilityInStock:
		return "in-stock"
	case AvailabilityLimitedStock:
		return "limited-stock"
	case AvailabilityOutOfStock:
		return "out-of-stock"
	default:
		return "unknown"
	}
}

// Text is the label shown next to a deal.
func (a AvailabilityStatus) Text() string {
	switch a {
	case AvailabilityInStock:
		return "In stock"
	case AvailabilityLimitedStock:
		return "Limited stock"
	case AvailabilityOutOfStock:
		return "Out of stock"
	default:
		return "Availability unknown"
	}
}

type FulfillmentType int

const (
	FulfillmentUnknown FulfillmentType = iota
	FulfillmentOnline
	FulfillmentInStore
)

// ParseFulfillment matches the raw string exactly.
func ParseFulfillment(raw string) FulfillmentType {
	switch raw {
	case "Online":
		return FulfillmentOnline
	case "In Store":
		return FulfillmentInStore
	default:
		return FulfillmentUnknown
	}
}

func (f FulfillmentType) String() string {
	switch f {
	case FulfillmentOnline:
		return "online"
	case FulfillmentInStore:
		return "in-store"
	default:
		return "unknown"
	}
}

func (f FulfillmentType) Text() string {
	switch f {
	case FulfillmentOnline:
		return "Online"
	case FulfillmentInStore:
		return "In store"
	default:
		return "Unavailable"
	}
}
