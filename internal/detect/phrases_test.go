package detect

import (
	"reflect"
	"testing"
)

func TestPhraseSetMatchListOrder(t *testing.T) {
	set := NewPhraseSet([]string{"dm me", "check my channel", "free gift"})

	got := set.Match("free gift inside, just dm me now")
	want := []string{"dm me", "free gift"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Match = %v, want %v", got, want)
	}
}

func TestPhraseSetMatchDistinct(t *testing.T) {
	set := NewPhraseSet([]string{"dm me"})

	got := set.Match("dm me dm me dm me")
	if len(got) != 1 || got[0] != "dm me" {
		t.Errorf("Match = %v, want single hit", got)
	}
}

func TestPhraseSetNoMatch(t *testing.T) {
	set := NewPhraseSet([]string{"free gift"})
	if got := set.Match("a perfectly ordinary comment"); got != nil {
		t.Errorf("Match = %v, want nil", got)
	}
	if got := set.Match(""); got != nil {
		t.Errorf("Match on empty = %v, want nil", got)
	}
}

func TestPhraseSetEmpty(t *testing.T) {
	set := NewPhraseSet(nil)
	if got := set.Match("anything"); got != nil {
		t.Errorf("empty set matched %v", got)
	}
}

func TestPhraseSetUpdate(t *testing.T) {
	set := NewPhraseSet([]string{"old phrase"})
	set.Update([]string{"new phrase"})

	if got := set.Match("the old phrase is gone"); got != nil {
		t.Errorf("stale phrase matched: %v", got)
	}
	if got := set.Match("here is the new phrase"); len(got) != 1 || got[0] != "new phrase" {
		t.Errorf("Match after Update = %v", got)
	}

	phrases := set.Phrases()
	if !reflect.DeepEqual(phrases, []string{"new phrase"}) {
		t.Errorf("Phrases = %v", phrases)
	}
}

func TestPhraseSetCleansInput(t *testing.T) {
	set := NewPhraseSet([]string{"  Mixed Case  ", "", "   "})
	if got := set.Phrases(); !reflect.DeepEqual(got, []string{"mixed case"}) {
		t.Errorf("Phrases = %v, want cleaned lowercase list", got)
	}
}

func TestDefaultListsDisjoint(t *testing.T) {
	seen := map[string]string{}
	lists := map[string][]string{
		"contact": DefaultContactBait,
		"scam":    DefaultScamKeywords,
		"crypto":  DefaultCryptoKeywords,
		"promo":   DefaultPromoKeywords,
	}
	for name, list := range lists {
		for _, phrase := range list {
			if prev, ok := seen[phrase]; ok {
				t.Errorf("phrase %q appears in both %s and %s", phrase, prev, name)
			}
			seen[phrase] = name
		}
	}
}
