package domain

// FlagCount pairs a flag with its total occurrence count across a batch.
type FlagCount struct {
	Flag  Flag `json:"flag"`
	Count int  `json:"count"`
}

// Summary is the batch-level reduction of a scored comment sequence. It is
// derived entirely from the ScoredComments it was built from and can be
// regenerated at any time.
type Summary struct {
	Total         int         `json:"total"`
	Suspicious    int         `json:"suspicious"`
	SuspiciousPct float64     `json:"suspicious_pct"` // one decimal
	TopFlags      []FlagCount `json:"top_flags"`
}
