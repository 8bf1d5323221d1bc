package telegram

import (
	"strconv"
	"strings"
)

// Media kinds the export format defines. Anything else renders through
// the fallback placeholder rather than failing.
const (
	mediaPhoto       = "photo"
	mediaWebpage     = "webpage"
	mediaDocument    = "document"
	mediaVideo       = "video"
	mediaAudio       = "audio"
	mediaGeo         = "geo"
	mediaUnsupported = "unsupported"
)

// enrichTokens bounds each webpage enrichment field.
const enrichTokens = 20

// mediaText renders a media payload as a fixed textual placeholder,
// enriched per kind.
func (n *Normaliser) mediaText(media *Media) string {
	if media == nil {
		return ""
	}

	switch media.Type {
	case mediaPhoto:
		text := "[PHOTO]"
		if caption := strings.TrimSpace(string(media.Caption)); caption != "" {
			text += " " + caption
		}
		return text

	case mediaWebpage:
		var parts []string
		for _, field := range []string{string(media.Title), string(media.Description), string(media.Author)} {
			if field == "" {
				continue
			}
			parts = append(parts, n.counter.Truncate(field, enrichTokens))
		}
		if len(parts) == 0 {
			return "[WEBPAGE]"
		}
		return "[WEBPAGE] " + strings.Join(parts, " - ")

	case mediaDocument:
		return "[DOCUMENT]"

	case mediaVideo:
		return "[VIDEO]"

	case mediaAudio:
		return "[AUDIO]"

	case mediaGeo:
		if media.Latitude != nil && media.Longitude != nil {
			lat := strconv.FormatFloat(*media.Latitude, 'g', -1, 64)
			lon := strconv.FormatFloat(*media.Longitude, 'g', -1, 64)
			return "[LOCATION] (" + lat + ", " + lon + ")"
		}
		return "[LOCATION]"

	case mediaUnsupported:
		return "[UNSUPPORTED MEDIA]"

	default:
		return "[UNKNOWN MEDIA TYPE: " + media.Type + "]"
	}
}
