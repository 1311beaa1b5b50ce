package network

import (
	"net/url"
	"strconv"
)

// DefaultBaseURL is the deals service root.
const DefaultBaseURL = "https://api.target.com/mobile_case_study_deals/v1"

type endpointKind int

const (
	endpointDeals endpointKind = iota
	endpointDealDetail
)

// Endpoint is a logical resource of the deals service.
type Endpoint struct {
	kind endpointKind
	id   int64
}

func DealsEndpoint() Endpoint {
	return Endpoint{kind: endpointDeals}
}

func DealDetailEndpoint(id int64) Endpoint {
	return Endpoint{kind: endpointDealDetail, id: id}
}

func (e Endpoint) String() string {
	switch e.kind {
	case endpointDealDetail:
		return "deals/" + strconv.FormatInt(e.id, 10)
	default:
		return "deals"
	}
}

// URL resolves the endpoint against baseURL. The base must be absolute.
func (e Endpoint) URL(baseURL string) (*url.URL, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, NewInvalidURLError(err.Error())
	}

	if !base.IsAbs() || base.Host == "" {
		return nil, NewInvalidURLError("base url is not absolute: " + baseURL)
	}

	switch e.kind {
	case endpointDeals:
		return base.JoinPath("deals"), nil
	case endpointDealDetail:
		return base.JoinPath("deals", strconv.FormatInt(e.id, 10)), nil
	default:
		return nil, NewInvalidURLError("unknown endpoint")
	}
}
