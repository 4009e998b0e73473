package feed

import "strings"

type Format string

const (
	FORMAT_RSS  Format = "rss"
	FORMAT_ATOM Format = "atom"
	FORMAT_JSON Format = "json"
)

// ParseFormat maps a URL extension to a feed format. Anything unrecognised is RSS.
func ParseFormat(ext string) Format {
	switch format := Format(strings.ToLower(strings.TrimPrefix(ext, "."))); format {
	case FORMAT_ATOM, FORMAT_JSON:
		return format
	default:
		return FORMAT_RSS
	}
}
