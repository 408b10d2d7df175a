package textnorm

import "testing"

func TestFingerprintStripsNoise(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "urls removed",
			input: "Check this out http://bit.ly/xyz now",
			want:  "check this out now",
		},
		{
			name:  "mentions and hashtags removed",
			input: "@someone great video #viral #fyp",
			want:  "great video",
		},
		{
			name:  "punctuation collapsed",
			input: "WOW!!! So... cool???",
			want:  "wow so cool",
		},
		{
			name:  "whitespace collapsed",
			input: "  hello \t world \n again  ",
			want:  "hello world again",
		},
		{
			name:  "www link removed",
			input: "visit www.example.com today",
			want:  "visit today",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fingerprint(tt.input)
			if got != tt.want {
				t.Errorf("Fingerprint(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFingerprintIdempotent(t *testing.T) {
	inputs := []string{
		"Check this out http://bit.ly/xyz now!!!",
		"@user #tag some TEXT with    spaces",
		"простой русский текст",
		"🎉🎉🎉 emoji heavy 🎉🎉🎉",
		"mixed اللغة العربية and english",
	}
	for _, in := range inputs {
		once := Fingerprint(in)
		twice := Fingerprint(once)
		if once != twice {
			t.Errorf("Fingerprint not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestMatchableKeepsPunctuation(t *testing.T) {
	got := Matchable("DM me!!! Check http://spam.example.com now...")
	want := "dm me!!! check now..."
	if got != want {
		t.Errorf("Matchable = %q, want %q", got, want)
	}
}

func TestMatchableIdempotent(t *testing.T) {
	inputs := []string{
		"DM me!!! on WhatsApp",
		"visit www.example.com, it's great",
		"plain text, no noise here.",
	}
	for _, in := range inputs {
		once := Matchable(in)
		if twice := Matchable(once); once != twice {
			t.Errorf("Matchable not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestNormalizerTotalOnArbitraryInput(t *testing.T) {
	// Must never panic, whatever the input.
	inputs := []string{
		string([]byte{0xff, 0xfe, 0xfd}),
		"‮right-to-left‬",
		"\x00\x01\x02",
		"👨‍👩‍👧‍👦 family emoji with joiners",
	}
	for _, in := range inputs {
		_ = Fingerprint(in)
		_ = Matchable(in)
	}
}
