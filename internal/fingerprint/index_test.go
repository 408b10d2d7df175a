package fingerprint

import (
	"testing"

	"github.com/siftworks/botsift/internal/domain"
)

func comments(texts ...string) []domain.Comment {
	out := make([]domain.Comment, len(texts))
	for i, t := range texts {
		out[i] = domain.Comment{ID: string(rune('a' + i)), Text: t}
	}
	return out
}

func TestBuildCountsDuplicates(t *testing.T) {
	dup := "check out my channel for free gift cards"
	ix := Build(comments(dup, "a unique comment about the actual video", dup, dup))

	if ix.Len() != 4 {
		t.Fatalf("Len = %d, want 4", ix.Len())
	}
	for _, pos := range []int{0, 2, 3} {
		if got := ix.At(pos).Count; got != 3 {
			t.Errorf("At(%d).Count = %d, want 3", pos, got)
		}
	}
	if got := ix.At(1).Count; got != 1 {
		t.Errorf("unique comment Count = %d, want 1", got)
	}
}

func TestBuildNormalizesBeforeCounting(t *testing.T) {
	// Same message dressed up with case, punctuation and a tracking link
	// must collapse to one fingerprint.
	ix := Build(comments(
		"Free V-Bucks at the link below, claim yours now!",
		"FREE v-bucks at the link below... claim yours NOW http://bit.ly/x",
	))
	if ix.At(0).Key != ix.At(1).Key {
		t.Fatalf("keys differ: %q vs %q", ix.At(0).Key, ix.At(1).Key)
	}
	if ix.At(0).Count != 2 {
		t.Errorf("Count = %d, want 2", ix.At(0).Count)
	}
}

func TestBuildLengthFloor(t *testing.T) {
	// "nice" is far below the fingerprint length floor; five of them must
	// never register as duplicates.
	ix := Build(comments("nice", "nice", "nice!", "Nice", "nice"))
	for i := 0; i < ix.Len(); i++ {
		if got := ix.At(i).Count; got != 0 {
			t.Errorf("At(%d).Count = %d, want 0 below length floor", i, got)
		}
	}
}

func TestBuildEmptyBatch(t *testing.T) {
	ix := Build(nil)
	if ix.Len() != 0 {
		t.Errorf("Len = %d, want 0", ix.Len())
	}
	if got := ix.At(0); got != (Entry{}) {
		t.Errorf("At out of range = %+v, want zero entry", got)
	}
}

func TestFloorBoundary(t *testing.T) {
	// Exactly at the floor the fingerprint counts; one rune shorter it
	// does not.
	at := make([]rune, domain.FingerprintMinLen)
	for i := range at {
		at[i] = 'x'
	}
	under := at[:domain.FingerprintMinLen-1]

	ix := Build(comments(string(at), string(at), string(under), string(under)))
	if got := ix.At(0).Count; got != 2 {
		t.Errorf("at-floor Count = %d, want 2", got)
	}
	if got := ix.At(2).Count; got != 0 {
		t.Errorf("under-floor Count = %d, want 0", got)
	}
}
