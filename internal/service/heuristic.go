package service

import (
	"regexp"
	"strings"
	"unicode"
)

// UnknownChannel is the placeholder returned when a title yields no usable
// channel name. The exact string matters: the confidence scorer matches it
// case-sensitively.
const UnknownChannel = "Unknown Channel"

// Noise commonly embedded in video titles, stripped before any separator
// matching. Order matters: bracketed segments go first so a hashtag inside
// brackets disappears with its brackets.
var stripPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\[.*?\]`),
	regexp.MustCompile(`\(.*?\)`),
	regexp.MustCompile(`#\w+`),
	regexp.MustCompile(`(?i)ft\.|feat\.|featuring`),
	regexp.MustCompile(`(?i)official.*?video|official.*?audio|music.*?video`),
}

var weakSeparators = []string{" by ", " from ", " on "}

// GuessChannelName infers a channel name from a video title. Best-effort
// and lossy by contract: it favors the "Channel - Title" and
// "Channel | Title" conventions and degrades to the first words of the
// cleaned title.
func GuessChannelName(title string) string {
	cleaned := title
	for _, re := range stripPatterns {
		cleaned = re.ReplaceAllString(cleaned, "")
	}

	if left, ok := splitBefore(cleaned, " - "); ok {
		return left
	}
	if left, ok := splitBefore(cleaned, " | "); ok {
		return left
	}

	lower := strings.ToLower(cleaned)
	for _, sep := range weakSeparators {
		if idx := strings.Index(lower, sep); idx >= 0 {
			return titleCase(strings.TrimSpace(lower[:idx]))
		}
	}

	words := strings.Fields(cleaned)
	switch {
	case len(words) >= 2:
		return words[0] + " " + words[1]
	case len(words) == 1:
		return words[0]
	}
	return UnknownChannel
}

// splitBefore returns the trimmed text before the first occurrence of sep,
// or ok=false when sep is absent or the left side is empty.
func splitBefore(s, sep string) (string, bool) {
	idx := strings.Index(s, sep)
	if idx < 0 {
		return "", false
	}
	left := strings.TrimSpace(s[:idx])
	if left == "" {
		return "", false
	}
	return left, true
}

// ConfidenceFromTitle scores a heuristically inferred channel name against
// the original (uncleaned) title it came from.
func ConfidenceFromTitle(title, channelName string) float64 {
	if channelName == UnknownChannel {
		return 0.1
	}

	if strings.Contains(title, " - ") || strings.Contains(title, " | ") {
		return 0.8
	}

	lower := strings.ToLower(title)
	for _, sep := range weakSeparators {
		if strings.Contains(lower, sep) {
			return 0.7
		}
	}

	return 0.5
}

// ConfidenceFromLabel scores a channel name the provider supplied directly,
// based on whether it appears inside the video title.
func ConfidenceFromLabel(channelName, videoTitle string) float64 {
	if channelName == "" || strings.EqualFold(channelName, "unknown") {
		return 0.1
	}
	if strings.Contains(strings.ToLower(videoTitle), strings.ToLower(channelName)) {
		return 0.9
	}
	return 0.7
}

func titleCase(s string) string {
	prevLetter := false
	return strings.Map(func(r rune) rune {
		wasLetter := prevLetter
		prevLetter = unicode.IsLetter(r)
		if prevLetter && !wasLetter {
			return unicode.ToUpper(r)
		}
		return r
	}, s)
}
