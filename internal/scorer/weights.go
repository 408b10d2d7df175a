package scorer

// Canonical weight table. Point values are tunable policy, not correctness
// invariants; the invariant is the fixed evaluation order and the [0,100]
// clamp on the final score.
const (
	linkBaseWeight = 25
	linkExtra      = 8
	linkCap        = 45

	contactBaseWeight = 20
	contactExtra      = 8
	contactCap        = 36

	scamBaseWeight = 18
	scamExtra      = 7
	scamCap        = 32

	cryptoBaseWeight = 16
	cryptoExtra      = 6
	cryptoCap        = 28

	promoBaseWeight = 10
	promoExtra      = 5
	promoCap        = 20

	emailWeight = 15
	phoneWeight = 18

	emojiFloodCount  = 6
	emojiFloodWeight = 8
	emojiHeavyCount  = 12
	emojiHeavyWeight = 14

	uppercaseCutoff = 0.8
	uppercaseWeight = 12

	punctBurstCount  = 10
	punctBurstWeight = 8

	charRunLength    = 5
	charRunWeight    = 8
	repeatWordCount  = 3
	repeatWordWeight = 8

	hashtagFloodCount  = 4
	hashtagFloodWeight = 10

	symbolHeavyWeight = 12

	veryShortWeight = 3
	veryLongWeight  = 4

	duplicateBaseWeight = 20
	duplicateExtra      = 5
	duplicateCap        = 40
)

// scaled applies a monotonic clamp: base points for the first unit of
// evidence plus extra points per additional unit, capped.
func scaled(count, base, extra, cap_ int) int {
	if count <= 0 {
		return 0
	}
	points := base + (count-1)*extra
	if points > cap_ {
		return cap_
	}
	return points
}
