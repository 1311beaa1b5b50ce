// Renderer payloads. Kept in sync with the screens served under /v1.
package rest

type Price struct {
	AmountInCents  int64  `json:"amountInCents"`
	Amount         string `json:"amount"`
	CurrencySymbol string `json:"currencySymbol"`
	DisplayString  string `json:"displayString"`
}

type Deal struct {
	ID                  int64   `json:"id"`
	Title               string  `json:"title"`
	Description         string  `json:"description"`
	Aisle               string  `json:"aisle"`
	AisleText           *string `json:"aisleText,omitempty"`
	ImageURL            string  `json:"imageUrl"`
	RegularPrice        Price   `json:"regularPrice"`
	SalePrice           *Price  `json:"salePrice,omitempty"`
	DisplayPrice        string  `json:"displayPrice"`
	DisplayRegularPrice *string `json:"displayRegularPrice,omitempty"`
	IsOnSale            bool    `json:"isOnSale"`
	DiscountPercentage  *int    `json:"discountPercentage,omitempty"`
	Savings             *string `json:"savings,omitempty"`
	Fulfillment         string  `json:"fulfillment"`
	FulfillmentText     string  `json:"fulfillmentText"`
	Availability        string  `json:"availability"`
	AvailabilityText    string  `json:"availabilityText"`
	IsAvailable         bool    `json:"isAvailable"`
}

type ListState struct {
	State   string `json:"state"`
	Deals   []Deal `json:"deals"`
	Message string `json:"message,omitempty"`
}

type DetailError struct {
	Title    string `json:"title"`
	Message  string `json:"message"`
	Icon     string `json:"icon"`
	CanRetry bool   `json:"canRetry"`
}

type DetailState struct {
	State        string       `json:"state"`
	Deal         Deal         `json:"deal"`
	Error        *DetailError `json:"error,omitempty"`
	Quantity     int          `json:"quantity"`
	IsInCart     bool         `json:"isInCart"`
	CanIncrement bool         `json:"canIncrement"`
	CanDecrement bool         `json:"canDecrement"`
}

type CartAction string

const (
	CartActionAdd       CartAction = "add"
	CartActionIncrement CartAction = "increment"
	CartActionDecrement CartAction = "decrement"
	CartActionRemove    CartAction = "remove"
)

type CartRequest struct {
	Action CartAction `json:"action" validate:"required,oneof=add increment decrement remove"`
}

// Error is the body of every failed request.
type Error struct {
	Code ErrorCode `json:"code"`

	// Message is safe to show to the user.
	Message string `json:"message"`

	// SupportID is the trace id of the failed request.
	SupportID string `json:"supportId"`
}

type ErrorCode string
