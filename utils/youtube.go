// utils/youtube.go - channel/video identifier extraction
package utils

import (
	"regexp"
	"strings"
)

var (
	channelIDPattern = regexp.MustCompile(`(UC[0-9A-Za-z_-]{10,})`)
	watchIDPattern   = regexp.MustCompile(`watch\?v=([0-9A-Za-z_-]{6,})`)
	shortIDPattern   = regexp.MustCompile(`youtu\.be/([0-9A-Za-z_-]{6,})`)
	hyperlinkPattern = regexp.MustCompile(`(?i)HYPERLINK\("[^"]*youtu(?:\.be/|be\.com/watch\?v=)([^"&?#]+)`)
	bareIDPattern    = regexp.MustCompile(`^[0-9A-Za-z_-]{6,}$`)
)

// ExtractChannelID pulls a YouTube channel ID out of a URL or free text.
// Returns "" when none is present.
func ExtractChannelID(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if m := channelIDPattern.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return ""
}

// ExtractVideoID pulls a YouTube video ID out of a spreadsheet formula, a
// watch/short URL, or a bare ID. Returns "" when none is present.
func ExtractVideoID(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	// Spreadsheet formulas wrap the link in HYPERLINK(...).
	if strings.HasPrefix(s, "=") {
		if m := watchIDPattern.FindStringSubmatch(s); m != nil {
			return m[1]
		}
		if m := hyperlinkPattern.FindStringSubmatch(s); m != nil {
			return m[1]
		}
	}

	if m := watchIDPattern.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	if m := shortIDPattern.FindStringSubmatch(s); m != nil {
		return m[1]
	}

	if bareIDPattern.MatchString(s) {
		return s
	}
	return ""
}

// NormalizeYoutubeChannelInput resolves a raw channel field (URL or bare
// ID) into an (id, canonical URL) pair. A URL keeps its original link; a
// bare UC-prefixed ID gets a synthesized channel URL.
func NormalizeYoutubeChannelInput(raw string) (id string, link string) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", ""
	}

	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		if cid := ExtractChannelID(s); cid != "" {
			return cid, s
		}
		return s, s
	}

	cid := ExtractChannelID(s)
	if cid == "" {
		cid = s
	}
	if strings.HasPrefix(cid, "UC") {
		return cid, "https://www.youtube.com/channel/" + cid
	}
	return cid, ""
}
