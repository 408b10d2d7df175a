package detect

import (
	"strings"
	"testing"
)

func TestCountLinks(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"scheme url", "check this out http://bit.ly/xyz", 1},
		{"https url", "https://example.com/page", 1},
		{"www url", "go to www.spam-site.com now", 1},
		{"youtube short link", "watch youtu.be/dQw4w9WgXcQ", 1},
		{"bare domain", "visit freemoney.xyz for cash", 1},
		{"shortener without scheme", "click bit.ly/abc123", 1},
		{"two links", "http://a.com and www.b.org", 2},
		{"no links", "i love this song", 0},
		{"plain sentence", "this is great. really enjoyed it", 0},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := countLinks(tt.text, DefaultShorteners)
			if got != tt.want {
				t.Errorf("countLinks(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestCountLinksNoDoubleCount(t *testing.T) {
	// The shortener domain sits inside the scheme-qualified match and must
	// not be counted again.
	if got := countLinks("http://bit.ly/xyz", DefaultShorteners); got != 1 {
		t.Errorf("countLinks = %d, want 1", got)
	}
}

func TestHasEmail(t *testing.T) {
	if !hasEmail("contact me at winner@scam-mail.com today") {
		t.Error("expected email match")
	}
	if hasEmail("no at sign here dot com") {
		t.Error("unexpected email match")
	}
	if hasEmail("just an @ mention") {
		t.Error("mention should not look like an email")
	}
}

func TestHasPhoneNumber(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"plus format", "+14155550123", true},
		{"plus with separators", "call +1 (415) 555-0123", true},
		{"digit run", "text me on 4155550123456", true},
		{"short number", "only 12345 here", false},
		{"no digits", "call me maybe", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hasPhoneNumber(tt.text); got != tt.want {
				t.Errorf("hasPhoneNumber(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestEmojiCounter(t *testing.T) {
	count := newEmojiCounter()

	if got := count("🎉🎉🔥"); got != 3 {
		t.Errorf("emoji count = %d, want 3", got)
	}
	if got := count("no emoji at all"); got != 0 {
		t.Errorf("emoji count = %d, want 0", got)
	}
}

func TestEmojiRangeFallback(t *testing.T) {
	// The fallback strategy must agree with the property scan on the
	// common blocks.
	if got := countEmojiByRange("🎉🚀☀️"); got < 3 {
		t.Errorf("range scan count = %d, want >= 3", got)
	}
	if got := countEmojiByRange("plain text"); got != 0 {
		t.Errorf("range scan count = %d, want 0", got)
	}
}

func TestUppercaseRatio(t *testing.T) {
	ratio, letters := uppercaseRatio("THISISALLUPPERCASEXX")
	if letters != 20 {
		t.Fatalf("letters = %d, want 20", letters)
	}
	if ratio != 1.0 {
		t.Errorf("ratio = %f, want 1.0", ratio)
	}

	ratio, letters = uppercaseRatio("thisisalllowercasexx")
	if letters != 20 || ratio != 0 {
		t.Errorf("ratio = %f letters = %d, want 0 and 20", ratio, letters)
	}

	ratio, letters = uppercaseRatio("1234 !!!")
	if ratio != 0 || letters != 0 {
		t.Errorf("no-letter input: ratio = %f letters = %d, want 0 and 0", ratio, letters)
	}
}

func TestLongestCharRun(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"aaaa", 4},
		{"abab", 1},
		{"wooooow", 5},
		{"", 0},
		{"aabbbbcc", 4},
	}
	for _, tt := range tests {
		if got := longestCharRun(tt.text); got != tt.want {
			t.Errorf("longestCharRun(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestCountRepeatedWords(t *testing.T) {
	if got := countRepeatedWords("buy buy buy now now"); got != 3 {
		t.Errorf("repeated words = %d, want 3", got)
	}
	if got := countRepeatedWords("all words are different"); got != 0 {
		t.Errorf("repeated words = %d, want 0", got)
	}
	if got := countRepeatedWords("Case CASE case"); got != 2 {
		t.Errorf("case-folded repeats = %d, want 2", got)
	}
}

func TestCountHashtags(t *testing.T) {
	if got := countHashtags("#one #two #three plain"); got != 3 {
		t.Errorf("hashtags = %d, want 3", got)
	}
	if got := countHashtags("no tags here"); got != 0 {
		t.Errorf("hashtags = %d, want 0", got)
	}
}

func TestSymbolDominant(t *testing.T) {
	if !symbolDominant("$$$ +++ %%% ###") {
		t.Error("symbol string should be dominant")
	}
	if symbolDominant("$$") {
		t.Error("short string must not trip the symbol test")
	}
	if symbolDominant("perfectly normal words here") {
		t.Error("letter-heavy text should not be dominant")
	}
}

func TestLengthExtremes(t *testing.T) {
	short, long := lengthExtremes("ok")
	if !short || long {
		t.Errorf("lengthExtremes(short) = %v %v", short, long)
	}

	short, long = lengthExtremes(strings.Repeat("spam ", 60))
	if short || !long {
		t.Errorf("lengthExtremes(long) = %v %v", short, long)
	}

	short, long = lengthExtremes("a normal comment")
	if short || long {
		t.Errorf("lengthExtremes(normal) = %v %v", short, long)
	}
}

func TestInspectEmptyText(t *testing.T) {
	d := New()
	sig := d.Inspect("")
	if sig.LinkCount != 0 || sig.HasEmail || sig.HasPhone || sig.EmojiCount != 0 {
		t.Errorf("empty text produced evidence: %+v", sig)
	}
}
