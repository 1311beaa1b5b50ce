package logx

import (
	"regexp"
)

type SensitiveDataMaskerInterface interface {
	Mask(input []byte) []byte
}

//nolint:gochecknoglobals
var sensitiveDataPatterns = []*regexp.Regexp{
	// Headers.
	regexp.MustCompile("(?s)(Authorization: ).+?(\r)"),
	regexp.MustCompile("(?s)(Cookie: ).+?(\r)"),
	regexp.MustCompile("(?s)(Set-Cookie: ).+?(\r)"),
	regexp.MustCompile("(?s)(X-Api-Key: ).+?(\r)"),
	// JSON fields.
	regexp.MustCompile(`(?s)("[Aa]pi[Kk]ey":\s?").+?(")`),
	regexp.MustCompile(`(?s)("key":\s?").+?(")`),
	// Query parameters.
	regexp.MustCompile(`([?&](?:key|api_key|apikey|token)=)[^&\s]+()`),
}

type SensitiveDataMasker struct{}

func NewSensitiveDataMasker() SensitiveDataMasker {
	return SensitiveDataMasker{}
}

func (s SensitiveDataMasker) Mask(input []byte) []byte {
	for _, pattern := range sensitiveDataPatterns {
		input = pattern.ReplaceAll(input, []byte("${1}[MASKED]${2}"))
	}

	return input
}
