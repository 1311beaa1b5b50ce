package logx

import (
	"mime"
	"strings"
)

// IsTextualContentType reports whether a body with this content type is
// worth dumping into logs. An empty content type is treated as textual so
// that error pages without headers are still visible.
func IsTextualContentType(contentType string) bool {
	if contentType == "" {
		return true
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	return strings.HasPrefix(mediaType, "text/") ||
		strings.HasSuffix(mediaType, "json") ||
		strings.HasSuffix(mediaType, "xml")
}
