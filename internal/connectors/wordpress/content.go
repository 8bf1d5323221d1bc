package wordpress

import (
	"html"
	"regexp"
	"strings"
)

var blankRuns = regexp.MustCompile(`\n{2,}`)

// NormaliseContent prepares raw post content for chunking: CRLF line
// endings become LF, runs of blank lines collapse to one boundary and
// HTML entities are decoded.
func NormaliseContent(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = blankRuns.ReplaceAllString(content, "\n")
	return html.UnescapeString(content)
}
