package domain

import "encoding/json"

// Scoring thresholds shared between the scorer and the aggregator so both
// agree on what "suspicious" means.
const (
	// SuspiciousThreshold is the minimum bot score for a comment to count
	// as suspicious in a Summary.
	SuspiciousThreshold = 60

	// FingerprintMinLen is the minimum fingerprint length counted by the
	// duplicate index. Shorter fingerprints ("nice", "lol") are too generic
	// to indicate a template.
	FingerprintMinLen = 18

	// DuplicateMinCount is the minimum table-wide frequency before shared
	// text is judged a template rather than coincidence.
	DuplicateMinCount = 3

	// TopFlagLimit is the number of flags reported by a Summary.
	TopFlagLimit = 12

	// SecondaryCandidateCap bounds how many scored comments are sent to the
	// secondary classifier.
	SecondaryCandidateCap = 30
)

// Flag is a short label describing one triggered heuristic signal.
type Flag string

// ScoredComment is a Comment plus its heuristic verdict. Flags appear in
// detector evaluation order, which is fixed, so output is deterministic for
// identical input.
type ScoredComment struct {
	Comment

	BotScore int    `json:"bot_score"` // clamped to [0,100]
	Flags    []Flag `json:"flags"`

	// Opinion is attached only for comments sent to the secondary
	// classifier; nil means no opinion was requested.
	Opinion *SecondaryOpinion `json:"opinion,omitempty"`
}

// OpinionLabel is the closed set of verdicts the secondary classifier may
// return. Anything else decodes as LabelUncertain.
type OpinionLabel string

const (
	LabelBot       OpinionLabel = "bot"
	LabelHuman     OpinionLabel = "human"
	LabelUncertain OpinionLabel = "uncertain"
)

// Valid reports whether l is one of the three known labels.
func (l OpinionLabel) Valid() bool {
	switch l {
	case LabelBot, LabelHuman, LabelUncertain:
		return true
	}
	return false
}

// UnmarshalJSON decodes a label, falling back to LabelUncertain for unknown
// or malformed values so a sloppy collaborator response never fails here.
func (l *OpinionLabel) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*l = LabelUncertain
		return nil
	}
	v := OpinionLabel(s)
	if !v.Valid() {
		v = LabelUncertain
	}
	*l = v
	return nil
}

// SecondaryOpinion is the sanitized verdict from the secondary classifier
// for one candidate. Score is nil when the collaborator returned no usable
// score for this comment.
type SecondaryOpinion struct {
	Score  *int         `json:"score"` // clamped to [0,100] when present
	Label  OpinionLabel `json:"label"`
	Reason string       `json:"reason"`
}

// ClampScore bounds a raw score into [0,100].
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
