package detect

import (
	"regexp"
	"strings"
)

// linkPattern covers the four URL shapes in one alternation so a single
// left-to-right scan finds every URL-like substring without double-counting
// overlaps: scheme-qualified, www-qualified, youtu.be/youtube.com short
// links, and a generic label.tld token over a whitelist of common TLDs.
var linkPattern = regexp.MustCompile(`(?i)(?:https?://\S+` +
	`|www\.\S+` +
	`|youtu\.be/\S+` +
	`|youtube\.com/\S+` +
	`|\b[a-z0-9][a-z0-9-]*\.(?:com|net|org|io|me|ly|gg|co|tv|cc|gl|gd|to|at|xyz|info|online|site|club|live|app)(?:/\S*)?\b)`)

// countLinks returns the number of distinct URL-like substrings in text.
// Shortener domains outside the TLD whitelist are counted afterwards,
// skipping any occurrence already inside a regex match span.
func countLinks(text string, shorteners []string) int {
	spans := linkPattern.FindAllStringIndex(text, -1)
	count := len(spans)

	lower := strings.ToLower(text)
	for _, dom := range shorteners {
		from := 0
		for {
			i := strings.Index(lower[from:], dom)
			if i < 0 {
				break
			}
			start := from + i
			if !insideSpan(spans, start) {
				count++
				spans = append(spans, []int{start, start + len(dom)})
			}
			from = start + len(dom)
		}
	}
	return count
}

func insideSpan(spans [][]int, pos int) bool {
	for _, s := range spans {
		if pos >= s[0] && pos < s[1] {
			return true
		}
	}
	return false
}
