package api

import "github.com/siftworks/botsift/internal/domain"

// AnalyzeRequest is the body for POST /api/v1/analyze. The comment batch is
// supplied directly by the caller.
type AnalyzeRequest struct {
	Comments      []domain.Comment `json:"comments" binding:"required,min=1"`
	WithSecondary bool             `json:"with_secondary"`
}

// AnalyzeVideoRequest is the body for POST /api/v1/analyze/video. Comments
// are fetched from the comment API before scoring.
type AnalyzeVideoRequest struct {
	VideoID       string `json:"video_id" binding:"required"`
	MaxComments   int    `json:"max_comments"`
	WithSecondary bool   `json:"with_secondary"`
}

// AnalyzeResponse is the scored batch plus its summary. SecondaryError is
// set when the secondary classifier was requested but returned an
// unusable response; the heuristic results are still present.
type AnalyzeResponse struct {
	Video          *domain.VideoMeta      `json:"video,omitempty"`
	Summary        domain.Summary         `json:"summary"`
	Comments       []domain.ScoredComment `json:"comments"`
	SecondaryError string                 `json:"secondary_error,omitempty"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}
