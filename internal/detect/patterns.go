package detect

import (
	"regexp"
	"strings"
)

var (
	emailPattern    = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	intlPhoneShape  = regexp.MustCompile(`^\+[0-9]{8,15}$`)
	digitRunPattern = regexp.MustCompile(`[0-9]{10,15}`)
)

// hasEmail reports whether text contains a local@domain.tld shaped token.
func hasEmail(text string) bool {
	return emailPattern.MatchString(text)
}

// hasPhoneNumber reports whether text looks like it carries a phone number:
// either the text stripped to digits and plus signs forms +<8..15 digits>,
// or the original text contains a run of 10 or more consecutive digits.
func hasPhoneNumber(text string) bool {
	var stripped strings.Builder
	for _, r := range text {
		if r == '+' || (r >= '0' && r <= '9') {
			stripped.WriteRune(r)
		}
	}
	if intlPhoneShape.MatchString(stripped.String()) {
		return true
	}
	return digitRunPattern.MatchString(text)
}
