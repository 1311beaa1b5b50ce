package logx

const (
	FieldAppName         = "app-name"
	FieldAppVersion      = "app-version"
	FieldCacheCost       = "cache-cost"
	FieldCacheCount      = "cache-count"
	FieldCacheKey        = "cache-key"
	FieldDealID          = "deal-id"
	FieldDealsCount      = "deals-count"
	FieldDurationMs      = "duration-ms"
	FieldError           = "error"
	FieldHTTPMethod      = "http-method"
	FieldHTTPRequest     = "http-request"
	FieldHTTPResponse    = "http-response"
	FieldRequestBody     = "request-body"
	FieldRequestID       = "request-id"
	FieldResponseBody    = "response-body"
	FieldResponseHeaders = "response-headers"
	FieldResponseStatus  = "response-status"
	FieldScreen          = "screen"
	FieldSize            = "size"
	FieldStack           = "stack"
	FieldState           = "state"
	FieldTraceID         = "trace-id"
	FieldURL             = "url"
)
