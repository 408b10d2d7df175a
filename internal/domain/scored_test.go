package domain

import (
	"encoding/json"
	"testing"
)

func TestClampScore(t *testing.T) {
	tests := []struct{ in, want int }{
		{-5, 0},
		{0, 0},
		{55, 55},
		{100, 100},
		{140, 100},
	}
	for _, tt := range tests {
		if got := ClampScore(tt.in); got != tt.want {
			t.Errorf("ClampScore(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestOpinionLabelUnmarshal(t *testing.T) {
	tests := []struct {
		raw  string
		want OpinionLabel
	}{
		{`"bot"`, LabelBot},
		{`"human"`, LabelHuman},
		{`"uncertain"`, LabelUncertain},
		{`"robot"`, LabelUncertain},
		{`42`, LabelUncertain},
		{`null`, LabelUncertain},
	}
	for _, tt := range tests {
		var l OpinionLabel
		if err := json.Unmarshal([]byte(tt.raw), &l); err != nil {
			t.Errorf("Unmarshal(%s) error: %v", tt.raw, err)
			continue
		}
		if l != tt.want {
			t.Errorf("Unmarshal(%s) = %q, want %q", tt.raw, l, tt.want)
		}
	}
}

func TestOpinionLabelValid(t *testing.T) {
	if !LabelBot.Valid() || !LabelHuman.Valid() || !LabelUncertain.Valid() {
		t.Error("known labels must be valid")
	}
	if OpinionLabel("spam").Valid() {
		t.Error("unknown label must be invalid")
	}
}
